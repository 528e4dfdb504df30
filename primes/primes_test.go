package primes

import "testing"

func TestFactorize(t *testing.T) {
	tests := []struct {
		name string
		in   int64
		want []int64
	}{
		{"below two", 1, nil},
		{"prime", 13, []int64{13}},
		{"composite", 60, []int64{2, 2, 3, 5}},
		{"square", 49, []int64{7, 7}},
		{"power of two", 128, []int64{2, 2, 2, 2, 2, 2, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Factorize(tt.in)
			if !int64SliceEqual(got, tt.want) {
				t.Errorf("Factorize(%d) = %v, want %v", tt.in, got, tt.want)
			}
			product := int64(1)
			for _, p := range got {
				product *= p
			}
			if len(got) > 0 && product != tt.in {
				t.Errorf("Factorize(%d) product = %d, want %d", tt.in, product, tt.in)
			}
		})
	}
}

func TestGCD(t *testing.T) {
	tests := []struct {
		vals []int64
		want int64
	}{
		{[]int64{12, 18}, 6},
		{[]int64{7, 13}, 1},
		{[]int64{24, 36, 48}, 12},
		{[]int64{5, 0}, 5},
	}
	for _, tt := range tests {
		if got := GCD(tt.vals...); got != tt.want {
			t.Errorf("GCD(%v) = %d, want %d", tt.vals, got, tt.want)
		}
	}
}

func TestLCM(t *testing.T) {
	tests := []struct {
		vals []int64
		want int64
	}{
		{[]int64{4, 6}, 12},
		{[]int64{3, 5}, 15},
		{[]int64{2, 3, 4}, 12},
	}
	for _, tt := range tests {
		if got := LCM(tt.vals...); got != tt.want {
			t.Errorf("LCM(%v) = %d, want %d", tt.vals, got, tt.want)
		}
	}
}

func int64SliceEqual(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
