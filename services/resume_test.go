package services

import "testing"

func TestParseATSResponse(t *testing.T) {
	report := parseATSResponse(`{"atsScore": 85, "feedback": "Add more quantifiable achievements."}`)

	if report.Score != 85 {
		t.Errorf("Expected score 85, got %d", report.Score)
	}
	if report.Feedback != "Add more quantifiable achievements." {
		t.Errorf("Unexpected feedback: %q", report.Feedback)
	}
	if report.Fallback {
		t.Errorf("Valid response should not be tagged fallback")
	}
}

func TestParseATSResponseStripsFences(t *testing.T) {
	report := parseATSResponse("```json\n{\"atsScore\": 72, \"feedback\": \"Solid.\"}\n```")

	if report.Score != 72 || report.Fallback {
		t.Errorf("Fenced JSON not parsed: %+v", report)
	}
}

func TestParseATSResponseFallback(t *testing.T) {
	report := parseATSResponse("Sorry, I can't produce JSON today.")

	if !report.Fallback {
		t.Errorf("Unparseable response should be tagged fallback")
	}
	if report.Score != 70 {
		t.Errorf("Expected stock score 70, got %d", report.Score)
	}
}

func TestCleanModelOutput(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{`{"a":1}`, `{"a":1}`},
		{"  {\"a\":1}  ", `{"a":1}`},
	}
	for _, c := range cases {
		if got := cleanModelOutput(c.in); got != c.want {
			t.Errorf("cleanModelOutput(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
