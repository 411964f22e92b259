package models

import (
	"math"
	"strconv"
)

// ModelRecord is one listing in the hub catalog.
type ModelRecord struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	// Crop is a free-form label such as "Maize" or "Multi‑Crop"; it is not
	// restricted to CropTypes.
	Crop        string  `json:"crop"`
	Tags        []Tag   `json:"tags"`
	Accuracy    float64 `json:"accuracy"` // percent, 0 when not reported
	Downloads   int64   `json:"downloads"`
	LastUpdated Date    `json:"last_updated"`
	Version     string  `json:"version"`
	ModelFile   string  `json:"model_file"`
	Author      string  `json:"author"`
	ImageURL    string  `json:"image_url,omitempty"`
	AppLink     string  `json:"app_link,omitempty"`
	ModelLink   string  `json:"model_link,omitempty"`
}

func (m ModelRecord) AccuracyReported() bool {
	return m.Accuracy > 0
}

// DisplayVersion prefixes the version with "v".
func (m ModelRecord) DisplayVersion() string {
	return "v" + m.Version
}

// FormatDownloads renders a card download count: 1200 -> "1.2k".
func FormatDownloads(n int64) string {
	if n >= 1000 {
		return FormatTenths(float64(n)/1000) + "k"
	}
	return strconv.FormatInt(n, 10)
}

// FormatTenths renders x with one decimal place, rounding halves away from
// zero: 1.25 -> "1.3".
func FormatTenths(x float64) string {
	return strconv.FormatFloat(math.Round(x*10)/10, 'f', 1, 64)
}

// FormatCompact renders a headline figure: 1200 -> "1.2K", 10000000 -> "10.0M".
func FormatCompact(n int64) string {
	switch {
	case n >= 1000000:
		return FormatTenths(float64(n)/1000000) + "M"
	case n >= 1000:
		return FormatTenths(float64(n)/1000) + "K"
	}
	return strconv.FormatInt(n, 10)
}
