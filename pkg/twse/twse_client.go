package twse_client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// client for the TWSE daily exchange report. returns the most recent
// closing price for a listed symbol.

const stockDayUrl = "https://www.twse.com.tw/exchangeReport/STOCK_DAY?response=json&stockNo=%s"

// lazy, in-memory cache to keep repeated valuations from hammering the
// exchange endpoint. keyed by symbol + date
var cache map[string]float64 = map[string]float64{}

type stockDayResponse struct {
	Stat   string     `json:"stat"`
	Fields []string   `json:"fields"`
	Data   [][]string `json:"data"`
}

func getBytes(symbol string) ([]byte, error) {
	client := http.DefaultClient
	url := fmt.Sprintf(stockDayUrl, symbol)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	response, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}

	if response.StatusCode != 200 {
		return nil, fmt.Errorf("failed with status code %d: %s", response.StatusCode, string(responseBytes))
	}

	return responseBytes, nil
}

// GetClosingPrice fetches the latest available closing price for a
// TWSE-listed symbol from the current month's exchange report.
func GetClosingPrice(symbol string) (float64, error) {
	cacheKey := symbol + ":" + time.Now().Format(time.DateOnly)
	if price, ok := cache[cacheKey]; ok {
		return price, nil
	}

	responseBytes, err := getBytes(symbol)
	if err != nil {
		return 0, err
	}

	responseBody := stockDayResponse{}
	err = json.Unmarshal(responseBytes, &responseBody)
	if err != nil {
		return 0, fmt.Errorf("failed to decode exchange report for %s: %w", symbol, err)
	}

	if responseBody.Stat != "OK" || len(responseBody.Data) == 0 {
		return 0, fmt.Errorf("no exchange report rows for %s (stat %q)", symbol, responseBody.Stat)
	}

	price, err := closingPriceFromRow(responseBody.Data[len(responseBody.Data)-1])
	if err != nil {
		return 0, fmt.Errorf("failed to parse exchange report for %s: %w", symbol, err)
	}

	cache[cacheKey] = price
	return price, nil
}

// row format: date, volume, value, open, high, low, close, change, count
const closingPriceField = 6

func closingPriceFromRow(row []string) (float64, error) {
	if len(row) <= closingPriceField {
		return 0, fmt.Errorf("report row has %d fields, expected at least %d", len(row), closingPriceField+1)
	}
	cleaned := strings.ReplaceAll(row[closingPriceField], ",", "")
	price, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, err
	}
	return price, nil
}
