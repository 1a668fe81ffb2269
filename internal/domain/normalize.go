package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedResponse marks an upstream payload that is not a JSON object at
// all (an HTML error page, a bare array, truncated bytes). Missing or odd
// fields inside an object never trigger it; they get defaults instead.
var ErrMalformedResponse = errors.New("malformed prediction response")

// defaultConfidence substitutes for a missing or unparseable confidence
// string, matching the upstream model's typical certainty.
const defaultConfidence = 85.0

// defaultRiskLabel is the upstream label for "nothing to report".
const defaultRiskLabel = "No Significant Risk"

// PredictionSummary is one location's current assessment.
type PredictionSummary struct {
	Location   string    `json:"location,omitempty"`
	RiskLevel  RiskLevel `json:"risk_level"`
	RiskLabel  string    `json:"risk_label"`
	RiskDate   string    `json:"risk_date"`
	Confidence float64   `json:"confidence"` // percent, 0-100
}

// ForecastDay is one day of the rainfall outlook. Slice order is temporal
// order: index 0 is the nearest day.
type ForecastDay struct {
	Date       string    `json:"date"`
	RainfallMM float64   `json:"rainfall_mm"`
	RiskLevel  RiskLevel `json:"risk_level"`
	Confidence float64   `json:"confidence"` // fraction, 0.0-1.0
}

// PredictionResponse is the normalized form of one upstream prediction call.
type PredictionResponse struct {
	MainPrediction   PredictionSummary   `json:"main_prediction"`
	RegionalAnalysis []PredictionSummary `json:"regional_analysis"`
	DetailedForecast []ForecastDay       `json:"detailed_forecast"`
}

// Raw upstream shapes. The model API emits Title-Case keys with string
// values on summaries and snake_case keys with numeric values on forecast
// entries; both are normalized here and nowhere else.

type rawSummary struct {
	Location   string `json:"Location"`
	RiskLevel  string `json:"Risk Level"`
	RiskDate   string `json:"Risk Date"`
	Confidence string `json:"Confidence"`
}

type rawForecastDay struct {
	Date       string  `json:"date"`
	RainfallMM float64 `json:"rainfall_mm"`
	RiskLevel  string  `json:"risk_level"`
	Confidence float64 `json:"confidence"`
}

type rawResponse struct {
	MainPrediction   *rawSummary      `json:"main_prediction"`
	RegionalAnalysis []rawSummary     `json:"regional_analysis"`
	DetailedForecast []rawForecastDay `json:"detailed_forecast"`
}

// Normalize converts a raw prediction payload into a PredictionResponse.
// Every optional field has a default: confidence 85.0, risk date today,
// rainfall 0, risk level "No Significant Risk", absent arrays empty. The only
// error it returns is ErrMalformedResponse, for payloads that are not a JSON
// object. Pure apart from reading the package clock for the date default.
func Normalize(raw []byte) (PredictionResponse, error) {
	var payload rawResponse
	if err := json.Unmarshal(raw, &payload); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) || typeErr.Field == "" {
			return PredictionResponse{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
		// A nested field of an unexpected type: keep what decoded and
		// let the defaults cover the rest.
	}

	resp := PredictionResponse{
		MainPrediction:   normalizeSummary(payload.MainPrediction),
		RegionalAnalysis: make([]PredictionSummary, 0, len(payload.RegionalAnalysis)),
		DetailedForecast: make([]ForecastDay, 0, len(payload.DetailedForecast)),
	}

	for i := range payload.RegionalAnalysis {
		resp.RegionalAnalysis = append(resp.RegionalAnalysis, normalizeSummary(&payload.RegionalAnalysis[i]))
	}
	for _, day := range payload.DetailedForecast {
		label := day.RiskLevel
		if label == "" {
			label = defaultRiskLabel
		}
		resp.DetailedForecast = append(resp.DetailedForecast, ForecastDay{
			Date:       day.Date,
			RainfallMM: day.RainfallMM,
			RiskLevel:  riskLevelFor(label, day.RainfallMM),
			Confidence: day.Confidence,
		})
	}

	return resp, nil
}

func normalizeSummary(raw *rawSummary) PredictionSummary {
	if raw == nil {
		raw = &rawSummary{}
	}

	label := raw.RiskLevel
	if label == "" {
		label = defaultRiskLabel
	}

	// "-" is the upstream sentinel for "no risk day found" and is kept
	// verbatim; only a fully absent date gets today's date.
	riskDate := raw.RiskDate
	if riskDate == "" {
		riskDate = clock.Now().UTC().Format("2006-01-02")
	}

	return PredictionSummary{
		Location:   raw.Location,
		RiskLevel:  riskLevelFor(label, 0),
		RiskLabel:  label,
		RiskDate:   riskDate,
		Confidence: parseConfidence(raw.Confidence),
	}
}

// riskLevelFor prefers the exact canonical label and falls back to the
// substring classifier for free text like "API/Processing Error".
func riskLevelFor(label string, rainfallMM float64) RiskLevel {
	if level, ok := ParseRiskLabel(label); ok {
		return level
	}
	return Classify(label, rainfallMM)
}

// parseConfidence strips a trailing percent sign and parses the remainder,
// defaulting when the source is missing or unparseable (including the "-"
// sentinel).
func parseConfidence(s string) float64 {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	if s == "" {
		return defaultConfidence
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return defaultConfidence
	}
	return v
}
