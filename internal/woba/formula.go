package woba

import "salary-lab/internal/domain"

// Denominator returns AB + BB - IBB + SF + HBP.
func Denominator(b domain.BattingRecord) int {
	return b.AB + b.BB - b.IBB + b.SF + b.HBP
}

// Numerator returns the weighted sum of on-base events:
// wBB*uBB + wHBP*HBP + w1B*1B + w2B*2B + w3B*3B + wHR*HR.
func Numerator(b domain.BattingRecord, f domain.WeightingFactor) float64 {
	return f.WBB*float64(b.UBB()) +
		f.WHBP*float64(b.HBP) +
		f.W1B*float64(b.Singles()) +
		f.W2B*float64(b.H2B) +
		f.W3B*float64(b.H3B) +
		f.WHR*float64(b.HR)
}

// Value computes wOBA for one line with the factors of its own season.
// A zero denominator yields an undefined metric.
func Value(b domain.BattingRecord, f domain.WeightingFactor) domain.DerivedMetricRecord {
	den := Denominator(b)
	if den == 0 {
		return domain.MissingMetric(b.Key(), domain.MetricZeroDenominator)
	}
	return domain.DerivedMetricRecord{
		Key:    b.Key(),
		Value:  Numerator(b, f) / float64(den),
		Status: domain.MetricOK,
	}
}
