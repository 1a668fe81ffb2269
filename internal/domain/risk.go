package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// RiskLevel is the ordinal flood-risk scale. Comparisons use the ordinal
// value, never the label text: RiskSafe < RiskLow < RiskMedium < RiskHigh <
// RiskCritical.
type RiskLevel int

const (
	RiskSafe RiskLevel = iota
	RiskLow
	RiskMedium
	RiskHigh
	RiskCritical
)

// Rainfall thresholds (mm) for the numeric fallback classification.
// Comparisons are strict: exactly 220 mm is still RiskHigh.
const (
	rainfallMediumMM   = 100.0
	rainfallHighMM     = 150.0
	rainfallCriticalMM = 220.0
)

// riskLabels are the canonical upstream label strings, indexed by ordinal.
var riskLabels = [...]string{
	RiskSafe:     "No Significant Risk",
	RiskLow:      "Low Risk",
	RiskMedium:   "Medium Risk",
	RiskHigh:     "High Risk",
	RiskCritical: "Critical",
}

// riskNames are the short lowercase names used in accuracy records.
var riskNames = [...]string{
	RiskSafe:     "safe",
	RiskLow:      "low",
	RiskMedium:   "medium",
	RiskHigh:     "high",
	RiskCritical: "critical",
}

func (r RiskLevel) String() string {
	if r < RiskSafe || r > RiskCritical {
		return fmt.Sprintf("RiskLevel(%d)", int(r))
	}
	return riskLabels[r]
}

// Name returns the short lowercase name, e.g. "medium".
func (r RiskLevel) Name() string {
	if r < RiskSafe || r > RiskCritical {
		return fmt.Sprintf("risklevel(%d)", int(r))
	}
	return riskNames[r]
}

// Score converts the level to the 1-5 numeric scale used by regional
// averaging: Safe=1, Low=2, Medium=3, High=4, Critical=5.
func (r RiskLevel) Score() int {
	return int(r) + 1
}

// Color returns the hex color used for chart and map rendering.
func (r RiskLevel) Color() string {
	switch r {
	case RiskHigh:
		return "#ef4444"
	case RiskMedium:
		return "#f97316"
	case RiskLow:
		return "#eab308"
	case RiskCritical:
		return "#dc2626"
	default:
		return "#22c55e"
	}
}

// TextColor returns a contrasting text color for badges on Color.
func (r RiskLevel) TextColor() string {
	if r == RiskLow {
		return "black"
	}
	return "white"
}

// MarshalJSON emits the canonical label string.
func (r RiskLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// UnmarshalJSON accepts canonical labels, short names, or any free-text
// label the classifier recognizes.
func (r *RiskLevel) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("risk level: %w", err)
	}
	if level, ok := ParseRiskLabel(s); ok {
		*r = level
		return nil
	}
	for i, name := range riskNames {
		if strings.EqualFold(s, name) {
			*r = RiskLevel(i)
			return nil
		}
	}
	*r = Classify(s, 0)
	return nil
}

// ParseRiskLabel maps a canonical upstream label to its level by exact match.
// Distribution bucketing relies on exact labels; free-text goes through
// Classify instead.
func ParseRiskLabel(label string) (RiskLevel, bool) {
	for i, l := range riskLabels {
		if label == l {
			return RiskLevel(i), true
		}
	}
	return RiskSafe, false
}

// Classify maps a free-text risk label and a rainfall quantity to a level.
//
// When the label is present, substrings are tested in priority order:
// "no significant"/"minimal", then "medium"/"moderate", then "high" (upgraded
// to Critical above 220 mm), then "critical"/"severe". An empty or
// unrecognized label falls back to the rainfall thresholds. A plain "low"
// label carries none of the tested substrings and deliberately takes the
// rainfall path, matching the upstream model's behavior.
func Classify(label string, rainfallMM float64) RiskLevel {
	if label != "" {
		normalized := strings.ToLower(label)
		switch {
		case strings.Contains(normalized, "no significant"), strings.Contains(normalized, "minimal"):
			return RiskSafe
		case strings.Contains(normalized, "medium"), strings.Contains(normalized, "moderate"):
			return RiskMedium
		case strings.Contains(normalized, "high"):
			if rainfallMM > rainfallCriticalMM {
				return RiskCritical
			}
			return RiskHigh
		case strings.Contains(normalized, "critical"), strings.Contains(normalized, "severe"):
			return RiskCritical
		}
	}

	switch {
	case rainfallMM > rainfallCriticalMM:
		return RiskCritical
	case rainfallMM > rainfallHighMM:
		return RiskHigh
	case rainfallMM > rainfallMediumMM:
		return RiskMedium
	default:
		return RiskSafe
	}
}
