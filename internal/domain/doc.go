// Package domain models flood-risk predictions for Indian cities.
//
// # Data Source
//
// Predictions come from the JanRakshak pre-alert model, a remote inference
// API fed by Windy point forecasts. The API exposes POST /predict_regional
// (named location plus its state siblings), POST /predict_by_coords, and
// POST /predict_regional_with_weather. Responses carry a main_prediction
// summary, an optional detailed_forecast of up to seven days ordered by
// ascending date, and an optional regional_analysis list of sibling
// summaries.
//
// # Upstream Conventions
//
// Summary fields are Title-Case strings:
//
//	"Risk Level"  → "No Significant Risk" | "Low Risk" | "Medium Risk" | "High Risk" | "Critical"
//	"Risk Date"   → "2006-01-02", or "-" when no risk day was found
//	"Confidence"  → "91.2%", or "-" alongside a "-" risk date
//
// Forecast entries use snake_case with numeric values: date, rainfall_mm,
// risk_level, confidence (a 0-1 fraction, unlike the summary's percent).
// [Normalize] is the only place these conventions are interpreted; every
// missing field has a single documented default there.
//
// # Severity Scale
//
// RiskLevel is a five-value total order: Safe < Low < Medium < High <
// Critical. Critical only surfaces in accuracy validation; live summaries
// top out at High, and the four-bucket distribution folds Critical into the
// high bucket. Free-text labels classify by substring with a rainfall
// fallback at the 100/150/220 mm thresholds (strict comparisons); a "high"
// label above 220 mm upgrades to Critical. See [Classify].
//
// # Accuracy Evaluation
//
// Predicted and actual event series compare pairwise with a one-level
// ordinal tolerance; over-predictions count as false positives and
// under-predictions as false negatives. Pairing is positional by default to
// match the historical dashboard, with an opt-in date join that treats
// misalignment as a data error. See [EvaluateAccuracy].
package domain
