// Package analysis proxies the plant-disease and soil prediction services.
// Both are opaque, possibly slow collaborators; their failures surface to
// the caller and never touch task or notification state.
package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// PlantPrediction is the classifier's labeled result.
type PlantPrediction struct {
	CropType        string   `json:"crop_type"`
	DiseaseStatus   string   `json:"disease_status"`
	SeverityLevel   int      `json:"severity_level"`
	Confidence      float64  `json:"confidence"`
	Recommendations []string `json:"recommendations"`
}

// SoilFeatures is the manual parameter input for soil analysis.
type SoilFeatures struct {
	PH         float64 `json:"pH"`
	Nitrogen   float64 `json:"nitrogen"`
	Phosphorus float64 `json:"phosphorus"`
	Potassium  float64 `json:"potassium"`
	Moisture   float64 `json:"moisture"`
}

// SoilReport is the analyzer's labeled result.
type SoilReport struct {
	PH               float64        `json:"pH"`
	Moisture         float64        `json:"moisture"`
	Nitrogen         float64        `json:"nitrogen"`
	Phosphorus       float64        `json:"phosphorus"`
	Potassium        float64        `json:"potassium"`
	Texture          string         `json:"texture"`
	TextureBreakdown map[string]int `json:"texture_breakdown"`
	Recommendations  []string       `json:"recommendations"`
	Confidence       float64        `json:"confidence"`
}

// Client calls the remote model service over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// AnalyzePlant submits a plant image for disease classification.
func (c *Client) AnalyzePlant(ctx context.Context, filename string, image []byte) (PlantPrediction, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return PlantPrediction{}, fmt.Errorf("analysis: %w", err)
	}
	if _, err := part.Write(image); err != nil {
		return PlantPrediction{}, fmt.Errorf("analysis: %w", err)
	}
	if err := writer.Close(); err != nil {
		return PlantPrediction{}, fmt.Errorf("analysis: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/analyze", &body)
	if err != nil {
		return PlantPrediction{}, fmt.Errorf("analysis: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var prediction PlantPrediction
	if err := c.do(req, &prediction); err != nil {
		return PlantPrediction{}, err
	}
	return prediction, nil
}

// AnalyzeSoil submits manual soil parameters for analysis.
func (c *Client) AnalyzeSoil(ctx context.Context, features SoilFeatures) (SoilReport, error) {
	payload, err := json.Marshal(features)
	if err != nil {
		return SoilReport{}, fmt.Errorf("analysis: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/soil/analyze-manual", bytes.NewReader(payload))
	if err != nil {
		return SoilReport{}, fmt.Errorf("analysis: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var report SoilReport
	if err := c.do(req, &report); err != nil {
		return SoilReport{}, err
	}
	return report, nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("analysis: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("analysis: status %d: %s", resp.StatusCode, snippet)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("analysis: decode: %w", err)
	}
	return nil
}
