package utils

import "testing"

func TestFormatWithCommas(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{7, "7"},
		{999, "999"},
		{1000, "1,000"},
		{12345, "12,345"},
		{123456, "123,456"},
		{1234567, "1,234,567"},
		{-1234, "-1,234"},
		{-999, "-999"},
	}
	for _, tc := range cases {
		if got := FormatWithCommas(tc.in); got != tc.want {
			t.Errorf("FormatWithCommas(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestHasIndexableLetter(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"blue moon", true},
		{"B", true},
		{"99 Luftballons", true},
		{"12345", false},
		{"!!!", false},
		{"", false},
		{"   ", false},
	}
	for _, tc := range cases {
		if got := HasIndexableLetter(tc.in); got != tc.want {
			t.Errorf("HasIndexableLetter(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestIsBlank(t *testing.T) {
	if !IsBlank("") || !IsBlank("  \t ") {
		t.Error("blank strings not detected")
	}
	if IsBlank(" x ") {
		t.Error("non-blank string reported blank")
	}
}
