//go:build ignore

// Ручная проверка запущенного сервиса: обходит основные эндпоинты
// и печатает краткую сводку ответов.
//
// Запуск: go run scripts/smoke_api.go -addr http://localhost:8080 -year 2000 -month 6
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"
)

func main() {
	addr := flag.String("addr", "http://localhost:8080", "base URL of the running service")
	year := flag.Int("year", 2000, "year to query")
	month := flag.Int("month", 6, "month to query")
	flag.Parse()

	client := &http.Client{Timeout: 30 * time.Second}

	paths := []string{
		"/api/v1/health",
		"/api/v1/catalog/regions",
		"/api/v1/catalog/time-range",
		fmt.Sprintf("/api/v1/slice?year=%d&month=%d&region=Africa", *year, *month),
		fmt.Sprintf("/api/v1/regions/%s/stats?year=%d&month=%d", url.PathEscape("Africa"), *year, *month),
		fmt.Sprintf("/api/v1/regions/%s/breakdown?year=%d&month=%d", url.PathEscape("Australia"), *year, *month),
		"/api/v1/config/mapbox",
	}

	for _, p := range paths {
		checkEndpoint(client, *addr+p)
	}
}

func checkEndpoint(client *http.Client, fullURL string) {
	start := time.Now()
	resp, err := client.Get(fullURL)
	if err != nil {
		log.Printf("FAIL %s: %v", fullURL, err)
		return
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("FAIL %s: read body: %v", fullURL, err)
		return
	}

	status := "OK  "
	if resp.StatusCode != http.StatusOK {
		status = "FAIL"
	}

	summary := fmt.Sprintf("%d bytes", len(body))
	var envelope struct {
		Data json.RawMessage `json:"data"`
		Meta *struct {
			Total int `json:"total"`
		} `json:"meta"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Meta != nil {
		summary = fmt.Sprintf("total=%d", envelope.Meta.Total)
	}

	log.Printf("%s %-70s %d %-12s %s", status, fullURL, resp.StatusCode, summary, time.Since(start).Round(time.Millisecond))
}
