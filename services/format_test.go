package services

import "testing"

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"zero", 0, "$0.00"},
		{"small", 42.5, "$42.50"},
		{"hundreds", 999.99, "$999.99"},
		{"thousands", 2970, "$2,970.00"},
		{"tens_of_thousands", 12540, "$12,540.00"},
		{"millions", 1234567.89, "$1,234,567.89"},
		{"negative", -1500, "-$1,500.00"},
		{"rounding", 10.005, "$10.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatUSD(tt.amount)
			if got != tt.want {
				t.Errorf("FormatUSD(%v) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}

func TestGroupThousands(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1", "1"},
		{"123", "123"},
		{"1234", "1,234"},
		{"123456", "123,456"},
		{"1234567", "1,234,567"},
	}

	for _, tt := range tests {
		got := groupThousands(tt.input)
		if got != tt.want {
			t.Errorf("groupThousands(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
