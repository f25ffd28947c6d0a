package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"weathervane/internal/config"
	"weathervane/internal/logger"
	"weathervane/services/weather"
)

const requestTimeout = 30 * time.Second

func main() {
	logger.Init()

	apiKey := flag.String("key", "", "WeatherAPI key (overrides WEATHER_API_KEY from the environment or .env)")
	flag.Parse()

	query, err := resolveQuery(flag.Args(), os.Stdin, os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cfg := config.Load()

	key, err := cfg.ResolveAPIKey(*apiKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	cfg.WeatherAPIKey = key

	service := weather.NewService(cfg)
	defer service.Close()

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	payload, err := service.FetchData(ctx, query)
	if err != nil {
		logger.Error("Failed to fetch weather data: %v", err)
		os.Exit(1)
	}

	data, err := service.ParseData(payload)
	if err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}

	for _, line := range weather.Render(data) {
		fmt.Println(line)
	}
}

// resolveQuery picks the location from the single optional positional
// argument, or prompts for one on stdin.
func resolveQuery(args []string, in io.Reader, out io.Writer) (string, error) {
	if len(args) > 1 {
		return "", errors.New(`invalid argument: quote the location ("New York") if it contains whitespace`)
	}
	if len(args) == 1 && strings.TrimSpace(args[0]) != "" {
		return args[0], nil
	}
	return promptQuery(in, out)
}

func promptQuery(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, "Enter Location: ")

	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read location: %w", err)
	}

	query := strings.TrimSpace(line)
	if query == "" {
		return "", errors.New("no location provided\n" +
			"Enter a city name, IP address, latitude/longitude (decimal degrees),\n" +
			"US zip code, UK postcode or Canada postal code.")
	}
	return query, nil
}
