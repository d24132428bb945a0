package stats

import (
	"errors"
	"math"
	"testing"

	"github.com/sartorproj/tabstat"
)

func TestSummarize(t *testing.T) {
	s, err := Summarize([]float64{1, 2, 3, 4, 5})
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"mean", s.Mean, 3},
		{"sum", s.Sum, 15},
		{"median", s.Median, 3},
		{"mode", s.Mode, 1},
		{"variance", s.Variance, 2},
		{"stdDev", s.StdDev, 1.41},
		{"min", s.Min, 1},
		{"max", s.Max, 5},
		{"range", s.Range, 4},
		{"q1", s.Q1, 2},
		{"q3", s.Q3, 4},
		{"iqr", s.IQR, 2},
		{"skewness", s.Skewness, 0},
		{"kurtosis", s.Kurtosis, -1.2},
		{"rms", s.RMS, 3.32},
		{"sumOfSquares", s.SumOfSquares, 10},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, tt.got)
		}
	}
	if s.Count != 5 {
		t.Errorf("count: expected 5, got %d", s.Count)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	_, err := Summarize(nil)
	if !errors.Is(err, tabstat.ErrEmptySeries) {
		t.Errorf("Expected ErrEmptySeries, got %v", err)
	}
}

func TestSummarizeSingleValue(t *testing.T) {
	s, err := Summarize([]float64{7})
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if s.Variance != 0 || s.StdDev != 0 || s.IQR != 0 {
		t.Errorf("Expected zero spread, got variance=%v stdDev=%v iqr=%v", s.Variance, s.StdDev, s.IQR)
	}
	if s.Skewness != 0 || s.Kurtosis != 0 {
		t.Errorf("Expected zero skewness/kurtosis, got %v/%v", s.Skewness, s.Kurtosis)
	}
	if s.Median != 7 || s.Mode != 7 || s.Q1 != 7 || s.Q3 != 7 {
		t.Errorf("Unexpected location statistics %+v", s)
	}
}

func TestSummarizeConstantSeries(t *testing.T) {
	s, err := Summarize([]float64{4, 4, 4, 4, 4, 4})
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if s.Skewness != 0 || s.Kurtosis != 0 {
		t.Errorf("Expected zero skewness/kurtosis for constant data, got %v/%v", s.Skewness, s.Kurtosis)
	}
}

func TestSummarizeProperties(t *testing.T) {
	series := [][]float64{
		{3.5, -1, 8, 2, 2, 9.25, -4},
		{10, 10, 11},
		{0.001, 0.002},
		{-5, -3, -1, 100, 42, 17, 17, 6},
	}

	for _, values := range series {
		s, err := Summarize(values)
		if err != nil {
			t.Fatalf("Summarize(%v) failed: %v", values, err)
		}
		if s.Variance < 0 {
			t.Errorf("%v: negative variance %v", values, s.Variance)
		}
		if math.Abs(s.StdDev-math.Sqrt(PopulationVariance(values))) > 0.005 {
			t.Errorf("%v: stdDev %v is not sqrt of variance", values, s.StdDev)
		}
		if s.Min > s.Median || s.Median > s.Max {
			t.Errorf("%v: expected min <= median <= max, got %v %v %v", values, s.Min, s.Median, s.Max)
		}
		if s.Q1 > s.Median || s.Median > s.Q3 {
			t.Errorf("%v: expected q1 <= median <= q3, got %v %v %v", values, s.Q1, s.Median, s.Q3)
		}
	}
}

func TestSummarizeIdempotent(t *testing.T) {
	values := []float64{3.14159, 2.71828, 1.41421, 1.73205, 0.57721}
	a, err := Summarize(values)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	b, _ := Summarize(values)
	if *a != *b {
		t.Errorf("Summaries differ: %+v vs %+v", a, b)
	}
}

func TestSummarizeDoesNotReorderInput(t *testing.T) {
	values := []float64{5, 1, 4, 2, 3}
	if _, err := Summarize(values); err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if values[0] != 5 || values[4] != 3 {
		t.Errorf("Input was modified: %v", values)
	}
}

func TestSummarizeRejectsNonFinite(t *testing.T) {
	_, err := Summarize([]float64{1, math.NaN()})
	if !errors.Is(err, tabstat.ErrUndefined) {
		t.Errorf("Expected ErrUndefined, got %v", err)
	}
}

func TestModeTieBreak(t *testing.T) {
	tests := []struct {
		values []float64
		want   float64
	}{
		{[]float64{2, 1, 1, 2}, 2},
		{[]float64{3, 1, 2}, 3},
		{[]float64{1, 5, 5, 1, 5}, 5},
	}
	for _, tt := range tests {
		if got := Mode(tt.values); got != tt.want {
			t.Errorf("Mode(%v) = %v, want %v", tt.values, got, tt.want)
		}
	}
}

func TestQuantile(t *testing.T) {
	sorted := []float64{1, 2, 3, 4}
	tests := []struct {
		p    float64
		want float64
	}{
		{0, 1},
		{0.25, 1.75},
		{0.5, 2.5},
		{0.75, 3.25},
		{1, 4},
	}
	for _, tt := range tests {
		if got := Quantile(sorted, tt.p); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Quantile(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestSkewnessSign(t *testing.T) {
	right := []float64{1, 1, 1, 2, 2, 3, 10}
	if Skewness(right) <= 0 {
		t.Errorf("Expected positive skewness for right-tailed data, got %v", Skewness(right))
	}
	if Skewness([]float64{1, 2}) != 0 {
		t.Error("Skewness of two values should be 0")
	}
	if Kurtosis([]float64{1, 2, 3}) != 0 {
		t.Error("Kurtosis of three values should be 0")
	}
}
