package utils

import "testing"

func TestIsValidHHMM(t *testing.T) {
	valid := []string{"00:00", "09:05", "12:00", "23:59"}
	for _, s := range valid {
		if !IsValidHHMM(s) {
			t.Errorf("IsValidHHMM(%q) = false, want true", s)
		}
	}

	invalid := []string{"24:00", "12:60", "9:05", "12:5", "noon", ""}
	for _, s := range invalid {
		if IsValidHHMM(s) {
			t.Errorf("IsValidHHMM(%q) = true, want false", s)
		}
	}
}

func TestFormatTimeTo12Hour(t *testing.T) {
	cases := map[string]string{
		"00:00": "12:00 AM",
		"00:30": "12:30 AM",
		"09:05": "09:05 AM",
		"12:00": "12:00 PM",
		"17:30": "05:30 PM",
		"23:59": "11:59 PM",
	}
	for in, want := range cases {
		if got := FormatTimeTo12Hour(in); got != want {
			t.Errorf("FormatTimeTo12Hour(%q) = %q, want %q", in, got, want)
		}
	}

	// Invalid input passes through untouched.
	if got := FormatTimeTo12Hour("25:00"); got != "25:00" {
		t.Errorf("FormatTimeTo12Hour(25:00) = %q, want passthrough", got)
	}
}

func TestToTitleCase(t *testing.T) {
	cases := map[string]string{
		"mg road":      "Mg Road",
		"ELECTRONIC":   "Electronic",
		"hSR layout":   "Hsr Layout",
		"":             "",
		"  two spaces": "  Two Spaces",
	}
	for in, want := range cases {
		if got := ToTitleCase(in); got != want {
			t.Errorf("ToTitleCase(%q) = %q, want %q", in, got, want)
		}
	}
}
