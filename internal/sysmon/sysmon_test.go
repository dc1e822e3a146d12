package sysmon

import "testing"

func TestSample_ReturnsValidRanges(t *testing.T) {
	s := Sample()
	for name, v := range map[string]float64{
		"CPUPercent":  s.CPUPercent,
		"BusiestCore": s.BusiestCore,
		"MemPercent":  s.MemPercent,
	} {
		if v < 0 || v > 100 {
			t.Errorf("%s out of range: %f", name, v)
		}
	}
}

func TestSample_MemPercentNonZero(t *testing.T) {
	s := Sample()
	if s.MemPercent == 0 {
		t.Error("expected non-zero MemPercent on a running system")
	}
}

func TestBusiest(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   []float64
		want float64
	}{
		{nil, 0},
		{[]float64{3, 97.5, 12}, 97.5},
		{[]float64{-1}, 0},
		{[]float64{100.4}, 100},
	}
	for _, tt := range tests {
		if got := busiest(tt.in); got != tt.want {
			t.Errorf("busiest(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
