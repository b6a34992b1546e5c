// Package weather fetches raw forecast samples from OpenWeatherMap.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/safuramariyam/greenthumb/internal/model"
)

// Client talks to the OpenWeatherMap 5-day/3-hour forecast API.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewClient builds a client. An empty apiKey makes every Fetch fail, which
// callers are expected to absorb with their fallback forecast.
func NewClient(apiKey, baseURL string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type forecastResponse struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp     float64 `json:"temp"`
			Humidity float64 `json:"humidity"`
		} `json:"main"`
		Rain struct {
			ThreeHour float64 `json:"3h"`
		} `json:"rain"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
		Weather []struct {
			Main        string `json:"main"`
			Icon        string `json:"icon"`
			Description string `json:"description"`
		} `json:"weather"`
	} `json:"list"`
}

// Fetch returns the raw 3-hourly samples for the location.
func (c *Client) Fetch(ctx context.Context, lat, lon float64) ([]model.WeatherSample, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("openweather: api key not configured")
	}

	query := url.Values{}
	query.Set("lat", fmt.Sprintf("%g", lat))
	query.Set("lon", fmt.Sprintf("%g", lon))
	query.Set("appid", c.apiKey)
	query.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/forecast?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("openweather: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openweather: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openweather: unexpected status %d", resp.StatusCode)
	}

	var payload forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("openweather: decode: %w", err)
	}

	samples := make([]model.WeatherSample, 0, len(payload.List))
	for _, item := range payload.List {
		sample := model.WeatherSample{
			Timestamp:     time.Unix(item.Dt, 0),
			Temperature:   item.Main.Temp,
			Humidity:      item.Main.Humidity,
			Precipitation: item.Rain.ThreeHour,
			WindSpeed:     item.Wind.Speed,
		}
		if len(item.Weather) > 0 {
			sample.Condition = item.Weather[0].Main
			sample.Icon = item.Weather[0].Icon
			sample.Description = item.Weather[0].Description
		}
		samples = append(samples, sample)
	}
	return samples, nil
}
