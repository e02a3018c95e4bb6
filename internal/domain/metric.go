package domain

import "math"

// MetricStatus tells whether a derived metric could be computed.
type MetricStatus int

const (
	MetricOK MetricStatus = iota
	MetricMissingFactor
	MetricZeroDenominator
)

// String returns the status code used in reports.
func (s MetricStatus) String() string {
	switch s {
	case MetricOK:
		return "ok"
	case MetricMissingFactor:
		return "missing_factor"
	case MetricZeroDenominator:
		return "zero_denominator"
	default:
		return "unknown"
	}
}

// DerivedMetricRecord is the wOBA composite for one player-season-stint.
type DerivedMetricRecord struct {
	Key    StintKey
	Value  float64 // NaN unless Status == MetricOK
	Status MetricStatus
}

// Defined reports whether Value holds a computed number.
func (m DerivedMetricRecord) Defined() bool {
	return m.Status == MetricOK
}

// MissingMetric returns an undefined metric for key with the given status.
func MissingMetric(key StintKey, status MetricStatus) DerivedMetricRecord {
	return DerivedMetricRecord{Key: key, Value: math.NaN(), Status: status}
}

// WOBARecord is a cleaned batting row with its composite metric attached.
type WOBARecord struct {
	CleanBattingRecord
	WOBA DerivedMetricRecord
}
