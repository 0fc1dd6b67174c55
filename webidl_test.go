package webidl

import (
	"testing"

	"github.com/perbu/webidlparse/pkg/ast"
)

func TestParse_SimpleInterface(t *testing.T) {
	defs, err := Parse("interface Foo { };")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(defs) != 1 {
		t.Fatalf("got %d definitions, want 1", len(defs))
	}
	if defs[0].DefinitionName() != "Foo" || defs[0].DefinitionType() != "interface" {
		t.Errorf("unexpected definition: %+v", defs[0])
	}
}

func TestParse_ReturnsParseErrorOnFailure(t *testing.T) {
	_, err := Parse("interface A {}; interface A {};")
	if err == nil {
		t.Fatal("expected an error for a duplicate definition name")
	}
}

func TestParse_OptionsAreIndependentPerCall(t *testing.T) {
	src := "interface I { attribute long x; };"

	defsNoTrivia, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse without trivia: %v", err)
	}
	defsTrivia, err := Parse(src, WithTrivia())
	if err != nil {
		t.Fatalf("Parse with trivia: %v", err)
	}

	ifaceNoTrivia := defsNoTrivia[0].(*ast.Interface)
	ifaceTrivia := defsTrivia[0].(*ast.Interface)
	if ifaceNoTrivia.Trivia.BeforeName != "" {
		t.Errorf("trivia should be empty when WithTrivia is not passed")
	}
	if ifaceTrivia.Trivia.BeforeName == "" {
		t.Errorf("trivia should be captured when WithTrivia is passed")
	}
}
