// Package strictjson decodes JSON documents into structs, requiring every
// json-tagged field to be present in the document. encoding/json silently
// zero-fills missing fields; here a missing field is a decode error, so an
// incomplete payload can never masquerade as a valid one. Unknown keys in the
// document are ignored.
package strictjson

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
)

var unmarshalerType = reflect.TypeOf((*json.Unmarshaler)(nil)).Elem()

// Unmarshal decodes data into v, which must be a non-nil pointer. Structs are
// walked recursively: each exported field (under its json tag name) must
// appear in the corresponding JSON object.
func Unmarshal(data []byte, v interface{}) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return errors.New("strictjson: target must be a non-nil pointer")
	}
	return decodeValue(data, rv.Elem(), "")
}

func decodeValue(data json.RawMessage, rv reflect.Value, path string) error {
	// Types with their own UnmarshalJSON know best; hand off wholesale.
	if rv.CanAddr() && rv.Addr().Type().Implements(unmarshalerType) {
		return decodePlain(data, rv, path)
	}

	switch rv.Kind() {
	case reflect.Struct:
		return decodeStruct(data, rv, path)
	case reflect.Slice:
		return decodeSlice(data, rv, path)
	case reflect.Ptr:
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		return decodeValue(data, rv.Elem(), path)
	default:
		return decodePlain(data, rv, path)
	}
}

func decodeStruct(data json.RawMessage, rv reflect.Value, path string) error {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return pathError(path, err)
	}
	if obj == nil {
		return pathError(path, errors.New("expected a JSON object"))
	}

	t := rv.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		name := field.Name
		if tag, ok := field.Tag.Lookup("json"); ok {
			tagName, _, _ := strings.Cut(tag, ",")
			if tagName == "-" {
				continue
			}
			if tagName != "" {
				name = tagName
			}
		}

		fieldPath := joinPath(path, name)
		raw, present := obj[name]
		if !present {
			return fmt.Errorf("missing required field %q", fieldPath)
		}
		if err := decodeValue(raw, rv.Field(i), fieldPath); err != nil {
			return err
		}
	}
	return nil
}

func decodeSlice(data json.RawMessage, rv reflect.Value, path string) error {
	if isNull(data) {
		return pathError(path, errors.New("unexpected null"))
	}

	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return pathError(path, err)
	}

	out := reflect.MakeSlice(rv.Type(), len(raws), len(raws))
	for i, raw := range raws {
		elemPath := fmt.Sprintf("%s[%d]", path, i)
		if err := decodeValue(raw, out.Index(i), elemPath); err != nil {
			return err
		}
	}
	rv.Set(out)
	return nil
}

func decodePlain(data json.RawMessage, rv reflect.Value, path string) error {
	// encoding/json treats null as a no-op for scalars, which would let a
	// null field pass as a zero value; reject it like any other mismatch.
	if isNull(data) {
		return pathError(path, errors.New("unexpected null"))
	}
	if err := json.Unmarshal(data, rv.Addr().Interface()); err != nil {
		return pathError(path, err)
	}
	return nil
}

func isNull(data json.RawMessage) bool {
	return string(bytes.TrimSpace(data)) == "null"
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func pathError(path string, err error) error {
	if path == "" {
		return err
	}
	return fmt.Errorf("field %q: %w", path, err)
}
