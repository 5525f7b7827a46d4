package usecase

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string // "" means nil
	}{
		{name: "iso date", in: "2024-03-05", want: "2024-03-05"},
		{name: "iso datetime", in: "2024-03-05 14:30:00", want: "2024-03-05"},
		{name: "latin date", in: "05/03/2024", want: "2024-03-05"},
		{name: "excel serial", in: "45356", want: "2024-03-05"},
		{name: "blank", in: "   ", want: ""},
		{name: "garbage", in: "sin fecha", want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := parseDate(tc.in)
			if tc.want == "" {
				if got != nil {
					t.Fatalf("expected nil, got %v", got)
				}
				return
			}
			if got == nil {
				t.Fatalf("expected %s, got nil", tc.want)
			}
			if got.Format("2006-01-02") != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got.Format("2006-01-02"))
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{in: "1,500.50", want: 1500.50},
		{in: "$250", want: 250},
		{in: "", want: 0},
		{in: "n/a", want: 0},
	}
	for _, tc := range cases {
		if got := parseAmount(tc.in); got != tc.want {
			t.Fatalf("parseAmount(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseNumericKey(t *testing.T) {
	if k := parseNumericKey("1001.0"); k == nil || *k != 1001 {
		t.Fatalf("expected 1001, got %v", k)
	}
	if k := parseNumericKey("SUC-1001"); k != nil {
		t.Fatalf("expected nil for non-numeric, got %d", *k)
	}
	if k := parseNumericKey(""); k != nil {
		t.Fatalf("expected nil for blank, got %d", *k)
	}
}

func TestDaysBetween(t *testing.T) {
	from := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC)

	if d := daysBetween(&from, &to); d == nil || *d != 3 {
		t.Fatalf("expected 3, got %v", d)
	}
	if d := daysBetween(nil, &to); d != nil {
		t.Fatalf("expected nil when start missing, got %d", *d)
	}
	if d := daysBetween(&from, nil); d != nil {
		t.Fatalf("expected nil when end missing, got %d", *d)
	}
}
