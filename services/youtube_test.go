package services

import "testing"

func TestFormatISODuration(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"PT1H23M45S", "1:23:45"},
		{"PT15M2S", "15:02"},
		{"PT45S", "0:45"},
		{"PT2H", "2:00:00"},
		{"", "N/A"},
	}
	for _, c := range cases {
		if got := formatISODuration(c.in); got != c.want {
			t.Errorf("formatISODuration(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
