package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestSlogLoggerWritesFields(t *testing.T) {
	var buf bytes.Buffer
	lgr := NewText(&buf, "info").With(Field{Key: "form", Value: "button"})

	lgr.Debug("hidden")
	lgr.Warn("invalid value", Field{Key: "field", Value: "link_url"})

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line written at info level: %s", out)
	}
	for _, want := range []string{"level=WARN", `msg="invalid value"`, "form=button", "field=link_url"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %s", want, out)
		}
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]string{"": "INFO", "DEBUG": "DEBUG", "warning": "WARN", "error": "ERROR", "bogus": "INFO"}
	for in, want := range cases {
		if got := ParseLevel(in).String(); got != want {
			t.Fatalf("ParseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}
