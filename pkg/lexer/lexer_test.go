package lexer

import (
	"strings"
	"testing"
)

func concatText(lexemes []Lexeme) string {
	var sb strings.Builder
	for _, l := range lexemes {
		sb.WriteString(l.Text)
	}
	return sb.String()
}

func TestTokenizeAll_Lossless(t *testing.T) {
	inputs := []string{
		`interface Foo { };`,
		"interface Foo {\n  // a comment\n  readonly attribute DOMString bar;\n};",
		`dictionary D { required long x; DOMString y = "hi, there"; };`,
		`typedef sequence<DOMString> Names;`,
		"",
	}

	for _, in := range inputs {
		lexemes, err := New(in).TokenizeAll()
		if err != nil {
			t.Fatalf("TokenizeAll(%q): %v", in, err)
		}
		if got := concatText(lexemes); got != in {
			t.Errorf("TokenizeAll(%q): concatenated text = %q", in, got)
		}
		if len(lexemes) == 0 || lexemes[len(lexemes)-1].Kind != EOF {
			t.Errorf("TokenizeAll(%q): missing trailing EOF lexeme", in)
		}
	}
}

func TestTokenizeAll_RetainsWhitespaceAndComments(t *testing.T) {
	lexemes, err := New("a /* c */ b").TokenizeAll()
	if err != nil {
		t.Fatalf("TokenizeAll: %v", err)
	}

	var kinds []Kind
	for _, l := range lexemes {
		kinds = append(kinds, l.Kind)
	}
	want := []Kind{Identifier, Whitespace, Comment, Whitespace, Identifier, EOF}
	if len(kinds) != len(want) {
		t.Fatalf("kinds = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("kinds[%d] = %s, want %s", i, kinds[i], want[i])
		}
	}
}

func TestMatchInteger(t *testing.T) {
	cases := map[string]int{
		"123":   3,
		"-123":  4,
		"0":     1,
		"0x1F":  4,
		"0X1f":  4,
		"017":   3,
		"":      0,
		"abc":   0,
		"0xg":   1, // the leading "0" octal digit run matches, "x" does not
	}
	for in, want := range cases {
		if got := matchInteger(in); got != want {
			t.Errorf("matchInteger(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestMatchFloat(t *testing.T) {
	cases := map[string]int{
		"1.5":    3,
		"-1.5":   4,
		".5":     2,
		"1.":     2,
		"1e10":   4,
		"1.5e-3": 6,
		"123":    0, // plain integer, not a float
		".":      0,
		"abc":    0,
	}
	for in, want := range cases {
		if got := matchFloat(in); got != want {
			t.Errorf("matchFloat(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestMatchIdentifier(t *testing.T) {
	if n := matchIdentifier("DOMString rest"); n != len("DOMString") {
		t.Errorf("matchIdentifier = %d, want %d", n, len("DOMString"))
	}
	if n := matchIdentifier("_private-name more"); n != len("_private-name") {
		t.Errorf("matchIdentifier = %d, want %d", n, len("_private-name"))
	}
	if n := matchIdentifier("123abc"); n != 0 {
		t.Errorf("matchIdentifier(123abc) = %d, want 0", n)
	}
}

func TestUnterminatedStringFallsThroughToOther(t *testing.T) {
	lexemes, err := New(`"unterminated`).TokenizeAll()
	if err != nil {
		t.Fatalf("TokenizeAll: %v", err)
	}
	if lexemes[0].Kind != Other {
		t.Errorf("first lexeme kind = %s, want other", lexemes[0].Kind)
	}
}

func TestUnterminatedBlockCommentConsumesToEOF(t *testing.T) {
	lexemes, err := New("/* never closed").TokenizeAll()
	if err != nil {
		t.Fatalf("TokenizeAll: %v", err)
	}
	if lexemes[0].Kind != Comment || lexemes[0].Text != "/* never closed" {
		t.Errorf("unexpected first lexeme: %+v", lexemes[0])
	}
}
