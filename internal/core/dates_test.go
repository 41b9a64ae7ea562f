package core

import (
	"testing"
	"time"
)

func TestParseDueDate(t *testing.T) {
	cases := []struct {
		in   string
		ok   bool
		want string // ISO, when ok
	}{
		{"2024-03-15", true, "2024-03-15"},
		{"15/03/24", true, "2024-03-15"},
		{"01/01/00", true, "2000-01-01"},
		{"15/03/70", true, "2070-03-15"}, // above the Parse pivot, still 20YY
		{"15/03/95", true, "2095-03-15"},
		{"31/12/99", true, "2099-12-31"},
		{" 2024-03-15 ", true, "2024-03-15"},
		{"", false, ""},
		{"not-a-date", false, ""},
		{"15-03-2024", false, ""},
		{"32/01/24", false, ""},
	}
	for _, c := range cases {
		got, ok := ParseDueDate(c.in)
		if ok != c.ok {
			t.Errorf("ParseDueDate(%q) ok = %v, want %v", c.in, ok, c.ok)
			continue
		}
		if ok && FormatISO(got) != c.want {
			t.Errorf("ParseDueDate(%q) = %s, want %s", c.in, FormatISO(got), c.want)
		}
	}
}

func TestAddMonthClamped(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"2024-03-15", "2024-04-15"},
		{"2024-01-31", "2024-02-29"}, // leap year clamp
		{"2023-01-31", "2023-02-28"},
		{"2024-03-31", "2024-04-30"},
		{"2024-01-29", "2024-02-29"},
		{"2023-01-30", "2023-02-28"},
		{"2024-12-15", "2025-01-15"}, // year boundary
		{"2024-02-29", "2024-03-29"},
	}
	for _, c := range cases {
		in, err := time.Parse("2006-01-02", c.in)
		if err != nil {
			t.Fatalf("bad case %q: %v", c.in, err)
		}
		if got := FormatISO(AddMonthClamped(in)); got != c.want {
			t.Errorf("AddMonthClamped(%s) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestFormatAmountBRL(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", "-"},
		{"50", "R$ 50,00"},
		{"99.9", "R$ 99,90"},
		{"120,50", "R$ 120,50"},
		{"abc", "R$ abc"},
	}
	for _, c := range cases {
		if got := FormatAmountBRL(c.in); got != c.want {
			t.Errorf("FormatAmountBRL(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
