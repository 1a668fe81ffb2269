package domain

import (
	"errors"
	"fmt"
	"math"
)

// ErrMisalignedSeries marks predicted/actual series that cannot be paired by
// date: one side has an event date the other lacks.
var ErrMisalignedSeries = errors.New("predicted and actual series are misaligned")

// PairingStrategy selects how predicted and actual events are matched.
type PairingStrategy string

const (
	// PairByPosition pairs predicted[i] with actual[i]. This reproduces the
	// historical dashboard behavior and silently assumes both series were
	// built in lockstep.
	PairByPosition PairingStrategy = "position"

	// PairByDate joins events on their date and fails on any date present
	// in only one series.
	PairByDate PairingStrategy = "date"
)

// Event is one historical flood event, predicted or observed.
type Event struct {
	Date       string    `json:"date"`
	Severity   RiskLevel `json:"severity"`
	RainfallMM float64   `json:"rainfall_mm"`
}

// EventAccuracy is the per-pair comparison outcome.
type EventAccuracy struct {
	Date      string    `json:"date"`
	Predicted RiskLevel `json:"predicted"`
	Actual    RiskLevel `json:"actual"`

	// SeverityMatch is true when the ordinal gap is at most one level.
	SeverityMatch bool `json:"severity_match"`

	// RainfallAccuracyPercent is 100*(1 - |Δrainfall|/actual), nil when the
	// actual rainfall is zero and the ratio is undefined.
	RainfallAccuracyPercent *float64 `json:"rainfall_accuracy_percent"`
}

// AccuracyReport aggregates pairwise comparisons into headline metrics.
// Precision, recall, and F1 are percentages rounded to one decimal, as is
// the overall score.
type AccuracyReport struct {
	Records []EventAccuracy `json:"records"`

	TruePositives  int `json:"true_positives"`
	FalsePositives int `json:"false_positives"`
	FalseNegatives int `json:"false_negatives"`
	Correct        int `json:"correct"`
	Total          int `json:"total"`

	Precision      float64 `json:"precision"`
	Recall         float64 `json:"recall"`
	F1             float64 `json:"f1"`
	OverallPercent float64 `json:"overall_percent"`
}

// EvaluateAccuracy compares predicted severities against actual outcomes.
//
// A pair within one ordinal level counts as correct and a true positive.
// Over-predictions (predicted above actual by more than one level) are false
// positives, under-predictions false negatives. Total is the number of
// predicted events, so unmatched predictions under positional pairing drag
// the overall score down rather than vanishing.
func EvaluateAccuracy(predicted, actual []Event, strategy PairingStrategy) (AccuracyReport, error) {
	pairs, err := pairEvents(predicted, actual, strategy)
	if err != nil {
		return AccuracyReport{}, err
	}

	report := AccuracyReport{
		Records: make([]EventAccuracy, 0, len(pairs)),
		Total:   len(predicted),
	}

	for _, pair := range pairs {
		levelDiff := int(pair.predicted.Severity) - int(pair.actual.Severity)

		record := EventAccuracy{
			Date:                    pair.predicted.Date,
			Predicted:               pair.predicted.Severity,
			Actual:                  pair.actual.Severity,
			RainfallAccuracyPercent: rainfallAccuracy(pair.predicted.RainfallMM, pair.actual.RainfallMM),
		}

		switch {
		case levelDiff >= -1 && levelDiff <= 1:
			record.SeverityMatch = true
			report.Correct++
			report.TruePositives++
		case levelDiff > 0:
			report.FalsePositives++
		default:
			report.FalseNegatives++
		}
		report.Records = append(report.Records, record)
	}

	precision := ratio(report.TruePositives, report.TruePositives+report.FalsePositives)
	recall := ratio(report.TruePositives, report.TruePositives+report.FalseNegatives)
	f1 := 0.0
	if precision+recall > 0 {
		f1 = 2 * precision * recall / (precision + recall)
	}

	report.Precision = roundPercentOfFraction(precision)
	report.Recall = roundPercentOfFraction(recall)
	report.F1 = roundPercentOfFraction(f1)
	if report.Total > 0 {
		report.OverallPercent = round1(100 * float64(report.Correct) / float64(report.Total))
	}

	return report, nil
}

type eventPair struct {
	predicted Event
	actual    Event
}

func pairEvents(predicted, actual []Event, strategy PairingStrategy) ([]eventPair, error) {
	switch strategy {
	case PairByPosition, "":
		// Indexes beyond the shorter series are skipped, matching the
		// reference behavior of iterating the predicted series.
		n := min(len(predicted), len(actual))
		pairs := make([]eventPair, 0, n)
		for i := 0; i < n; i++ {
			pairs = append(pairs, eventPair{predicted: predicted[i], actual: actual[i]})
		}
		return pairs, nil

	case PairByDate:
		byDate := make(map[string]Event, len(actual))
		for _, a := range actual {
			byDate[a.Date] = a
		}
		pairs := make([]eventPair, 0, len(predicted))
		for _, p := range predicted {
			a, ok := byDate[p.Date]
			if !ok {
				return nil, fmt.Errorf("%w: no actual event for predicted date %s", ErrMisalignedSeries, p.Date)
			}
			delete(byDate, p.Date)
			pairs = append(pairs, eventPair{predicted: p, actual: a})
		}
		if len(byDate) > 0 {
			for date := range byDate {
				return nil, fmt.Errorf("%w: no predicted event for actual date %s", ErrMisalignedSeries, date)
			}
		}
		return pairs, nil

	default:
		return nil, fmt.Errorf("unknown pairing strategy %q", strategy)
	}
}

// rainfallAccuracy returns 100*(1 - |predicted-actual|/actual), or nil when
// the actual rainfall is zero. The result is rounded to one decimal and can
// go negative for wildly wrong predictions.
func rainfallAccuracy(predictedMM, actualMM float64) *float64 {
	if actualMM == 0 {
		return nil
	}
	v := round1(100 * (1 - math.Abs(predictedMM-actualMM)/actualMM))
	return &v
}

func ratio(numerator, denominator int) float64 {
	if denominator == 0 {
		return 0
	}
	return float64(numerator) / float64(denominator)
}

// roundPercentOfFraction turns a 0-1 fraction into a percentage with one
// decimal: round(v*1000)/10.
func roundPercentOfFraction(v float64) float64 {
	return math.Round(v*1000) / 10
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
