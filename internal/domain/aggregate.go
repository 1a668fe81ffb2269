package domain

import "sort"

// RiskStats counts locations per risk bucket. Critical predictions land in
// High: the four-bucket view is a deliberate lossy simplification for the
// dashboard pie chart, while the underlying levels keep all five values.
type RiskStats struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
	None   int `json:"none"`
	Total  int `json:"total"`
}

// Distribution buckets the main prediction of each response by exact level.
// The bucket sum always equals len(predictions).
func Distribution(predictions []PredictionResponse) RiskStats {
	stats := RiskStats{Total: len(predictions)}
	for i := range predictions {
		switch predictions[i].MainPrediction.RiskLevel {
		case RiskHigh, RiskCritical:
			stats.High++
		case RiskMedium:
			stats.Medium++
		case RiskLow:
			stats.Low++
		default:
			stats.None++
		}
	}
	return stats
}

// RegionAverage is the mean risk score of one state's predictions.
type RegionAverage struct {
	Region       string  `json:"region"`
	AverageScore float64 `json:"average_score"`
	Count        int     `json:"count"`
}

// RegionalAverages folds predictions into a per-state running mean of risk
// scores. Locations missing from the registry group under "Unknown". Results
// are sorted by region name; iteration order cannot affect the means beyond
// float rounding since the incremental mean is commutative.
func RegionalAverages(predictions []PredictionResponse) []RegionAverage {
	byRegion := make(map[string]*RegionAverage)
	for i := range predictions {
		main := predictions[i].MainPrediction
		region := "Unknown"
		if loc, ok := Resolve(main.Location); ok {
			region = loc.State
		}

		score := float64(main.RiskLevel.Score())
		avg, ok := byRegion[region]
		if !ok {
			byRegion[region] = &RegionAverage{Region: region, AverageScore: score, Count: 1}
			continue
		}
		avg.AverageScore = (avg.AverageScore*float64(avg.Count) + score) / float64(avg.Count+1)
		avg.Count++
	}

	averages := make([]RegionAverage, 0, len(byRegion))
	for _, avg := range byRegion {
		averages = append(averages, *avg)
	}
	sort.Slice(averages, func(i, j int) bool { return averages[i].Region < averages[j].Region })
	return averages
}

// CumulativePoint pairs a forecast day with the rainfall accumulated through it.
type CumulativePoint struct {
	Date         string  `json:"date"`
	DailyMM      float64 `json:"daily_mm"`
	CumulativeMM float64 `json:"cumulative_mm"`
}

// CumulativeRainfall computes the running prefix sum over the forecast in
// array order. Day 0's cumulative equals its daily value.
func CumulativeRainfall(days []ForecastDay) []CumulativePoint {
	points := make([]CumulativePoint, 0, len(days))
	var running float64
	for _, day := range days {
		running += day.RainfallMM
		points = append(points, CumulativePoint{
			Date:         day.Date,
			DailyMM:      day.RainfallMM,
			CumulativeMM: running,
		})
	}
	return points
}
