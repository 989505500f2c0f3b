package sanitizer

import (
	"strings"
	"testing"
)

func TestCleanText(t *testing.T) {
	s := New()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text unchanged",
			input: "John Smith",
			want:  "John Smith",
		},
		{
			name:  "trim spaces",
			input: "  John Smith  ",
			want:  "John Smith",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "only whitespace",
			input: "   \t\n  ",
			want:  "",
		},
		{
			name:  "strip simple tag keep content",
			input: "<b>hello</b>",
			want:  "hello",
		},
		{
			name:  "strip nested tags keep content",
			input: "<p>hello <b>world</b></p>",
			want:  "hello world",
		},
		{
			name:  "script element removed with its body",
			input: "<script>alert(1)</script>",
			want:  "",
		},
		{
			name:  "image with event handler removed",
			input: `<img src=x onerror=alert(1)>`,
			want:  "",
		},
		{
			name:  "phone number unchanged",
			input: "0501234567",
			want:  "0501234567",
		},
		{
			name:  "email unchanged",
			input: "a@b.com",
			want:  "a@b.com",
		},
		{
			name:  "markup around text",
			input: "  <div>inquiry about gifts</div> ",
			want:  "inquiry about gifts",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.CleanText(tt.input)
			if got != tt.want {
				t.Errorf("CleanText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCleanTextIdempotent(t *testing.T) {
	s := New()

	inputs := []string{
		"John Smith",
		"  padded  ",
		"<b>hello</b>",
		"<script>alert(1)</script>",
		"Tom & Jerry",
		"price < 100 > 50",
		"a@b.com",
		"0501234567",
		"<p>multi <i>level</i> <b>markup</b></p>",
		"&lt;already escaped&gt;",
	}

	for _, in := range inputs {
		once := s.CleanText(in)
		twice := s.CleanText(once)
		if once != twice {
			t.Errorf("CleanText not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestCleanTextNeverContainsAngleBrackets(t *testing.T) {
	s := New()

	inputs := []string{
		"<script>alert(1)</script>",
		"<b>hello</b>",
		"a < b",
		"a > b",
		"<<<<double>>>>",
		"<a href='x'>link</a>",
		"plain",
		"<!-- comment -->",
	}

	for _, in := range inputs {
		got := s.CleanText(in)
		if strings.ContainsAny(got, "<>") {
			t.Errorf("CleanText(%q) = %q, contains angle bracket", in, got)
		}
	}
}

func TestPipelineApply(t *testing.T) {
	p := Pipeline{
		strings.TrimSpace,
		strings.ToLower,
	}
	if got := p.Apply("  HeLLo  "); got != "hello" {
		t.Errorf("Pipeline.Apply = %q, want %q", got, "hello")
	}
}
