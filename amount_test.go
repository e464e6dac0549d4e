package wealthpulse

import "testing"

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"1,23,456.78", 123456.78},
		{"₹2,500", 2500},
		{"$149.99", 149.99},
		{"(500)", -500},
		{"", 0},
		{"-", 0},
		{"N/A", 0},
		{"garbage", 0},
		{" 42 ", 42},
		{"12.5%", 12.5},
	}
	for _, c := range cases {
		if got := ParseAmount(c.in); got != c.want {
			t.Errorf("ParseAmount(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestBlendedAvg(t *testing.T) {
	if got := BlendedAvg(38000, 15); got != 2533.33 {
		t.Errorf("BlendedAvg(38000, 15) = %v, want 2533.33", got)
	}
	if got := BlendedAvg(1000, 0); got != 0 {
		t.Errorf("BlendedAvg with zero quantity = %v, want 0", got)
	}
}

func TestWeightedAvg(t *testing.T) {
	got := WeightedAvg([]float64{10, 16}, []float64{10000, 20000})
	if got != 14.0 {
		t.Errorf("WeightedAvg = %v, want 14.0", got)
	}
	if got := WeightedAvg(nil, nil); got != 0 {
		t.Errorf("WeightedAvg(nil, nil) = %v, want 0", got)
	}
}
