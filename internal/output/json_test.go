package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	data := map[string]any{
		"shape": "ACROSS_DAYS",
		"text":  "Jan 1 - 12",
		"year":  2023,
	}
	err := JSON(&buf, data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := buf.String()
	if !strings.Contains(got, `"shape": "ACROSS_DAYS"`) {
		t.Errorf("expected JSON to contain shape field, got:\n%s", got)
	}
	if !strings.Contains(got, `"text": "Jan 1 - 12"`) {
		t.Errorf("expected JSON to contain text field, got:\n%s", got)
	}
}

func TestJSONSlice(t *testing.T) {
	var buf bytes.Buffer
	data := []map[string]string{
		{"text": "Jan 1 - 12"},
		{"text": "Sun, Jan 1"},
	}
	err := JSON(&buf, data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := buf.String()
	if !strings.HasPrefix(got, "[") {
		t.Errorf("expected JSON array, got:\n%s", got)
	}
}

func TestIsJSON(t *testing.T) {
	if !IsJSON("json") {
		t.Error("expected IsJSON(\"json\") = true")
	}
	if IsJSON("") {
		t.Error("expected IsJSON(\"\") = false")
	}
	if IsJSON("text") {
		t.Error("expected IsJSON(\"text\") = false")
	}
}

func TestJSONKeepsSeparators(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, map[string]string{"text": "Jan 3 & Apr 20"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"Jan 3 & Apr 20"`) {
		t.Errorf("expected unescaped separator, got:\n%s", buf.String())
	}
}

func TestJSONUnsupportedValue(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, make(chan int)); err == nil {
		t.Error("expected error for unsupported value")
	}
}
