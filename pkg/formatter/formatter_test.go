package formatter

import (
	"strings"
	"testing"

	webidl "github.com/perbu/webidlparse"
	"github.com/perbu/webidlparse/pkg/parser"
)

func TestFormatSourceWithDefinitions_TagsOwningLines(t *testing.T) {
	src := "interface Foo {\n  long bar();\n};\n"
	defs, err := webidl.Parse(src)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	out := FormatSourceWithDefinitions(src, defs, false)
	lines := strings.Split(out, "\n")
	if len(lines) < 3 {
		t.Fatalf("expected at least 3 rendered lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "interf") {
		t.Errorf("first line not tagged with interface abbreviation: %q", lines[0])
	}
}

func TestFormatParseFailure_IncludesLineContext(t *testing.T) {
	src := "interface Foo {\n  long bar(;\n};\n"
	_, err := webidl.Parse(src)
	if err == nil {
		t.Fatal("expected a parse error")
	}

	perr, ok := err.(*parser.ParseError)
	if !ok {
		t.Fatalf("error is not a *parser.ParseError: %v", err)
	}

	out := FormatParseFailure("test.webidl", src, perr, false)
	if !strings.Contains(out, "FAILED: test.webidl") {
		t.Errorf("missing FAILED header: %q", out)
	}
	if !strings.Contains(out, "near line") {
		t.Errorf("missing line context: %q", out)
	}
}

func TestAbbreviate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"interface", "interf"},
		{"enum", "enum"},
		{"dictionary", "dictio"},
	}
	for _, tt := range tests {
		if got := abbreviate(tt.in); got != tt.want {
			t.Errorf("abbreviate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
