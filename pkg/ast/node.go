// Package ast defines the Web IDL abstract syntax tree produced by
// pkg/parser. Node variants are a closed set of Go structs discriminated
// by a Type string field, so JSON-serialized nodes match the shape
// external tooling (validators, binding generators, documentation tools)
// already expects.
package ast

import (
	"encoding/json"

	"github.com/perbu/webidlparse/pkg/lexer"
)

// Node is implemented by every AST node, definitions and nested
// sub-records alike.
type Node interface {
	Pos() lexer.Position
	End() lexer.Position
}

// Base carries the span every node has, mirroring the teacher's BaseNode
// embedding pattern (vclparser/pkg/ast/node.go).
type Base struct {
	Start lexer.Position `json:"-"`
	Stop  lexer.Position `json:"-"`
}

func (b Base) Pos() lexer.Position { return b.Start }
func (b Base) End() lexer.Position { return b.Stop }

// Definition is any top-level construct parse() can return.
type Definition interface {
	Node
	DefinitionName() string // "" for implements/includes, which have no name
	DefinitionType() string // the "type" discriminator, e.g. "interface"
}

// Trivia holds whitespace/comment text captured between syntactic anchors
// when Options.Trivia is enabled (spec.md §4.2.8). Every field is the
// empty string when trivia capture is disabled, so the AST shape never
// changes based on options.
//
// BeforeName, BeforeOpen, and BeforeTermination are captured. BeforeClose
// is captured only for an empty body: the end-position lookahead after a
// member drains the trivia that follows it, so it is empty once the body
// has members. BeforeBase is never set.
type Trivia struct {
	BeforeBase        string
	BeforeName        string
	BeforeOpen        string
	BeforeClose       string
	BeforeTermination string
}

// ExtendedAttribute is a single `[Name]`, `[Name=rhs]`, `[Name(args)]`, or
// combined bracketed annotation.
type ExtendedAttribute struct {
	Base
	Name      string      `json:"name"`
	Arguments []*Argument `json:"arguments"` // nil if no "(...)" was present
	RHS       *ExtAttrRHS `json:"rhs"`       // nil if no "=rhs" was present
}

// ExtAttrRHS is the right-hand side of "Name=RHS": either a single lexeme
// value (identifier/float/integer/string) or an identifier list
// "(a, b, c)".
type ExtAttrRHS struct {
	Kind  string // "identifier", "float", "integer", "string", "identifier-list"
	Value string   // set when Kind != "identifier-list"
	List  []string // set when Kind == "identifier-list"
}

// MarshalJSON renders an identifier-list RHS as {type, values} and every
// other kind as {type, value}, per spec.md §3.
func (r *ExtAttrRHS) MarshalJSON() ([]byte, error) {
	if r.Kind == "identifier-list" {
		return json.Marshal(struct {
			Type   string   `json:"type"`
			Values []string `json:"values"`
		}{Type: r.Kind, Values: jsonStrings(r.List)})
	}
	return json.Marshal(struct {
		Type  string `json:"type"`
		Value string `json:"value"`
	}{Type: r.Kind, Value: r.Value})
}

// Argument is a single operation/callback argument.
type Argument struct {
	Base
	ExtAttrs []*ExtendedAttribute `json:"extAttrs"`
	Name     string               `json:"name"`
	IDLType  *Type                `json:"idlType"`
	Optional bool                 `json:"optional"`
	Variadic bool                 `json:"variadic"`
	Default  *DefaultValue        `json:"default"` // non-nil only if Optional and a default was given
}

// Type is the IDL type descriptor (spec.md §3 "IDL type descriptor").
type Type struct {
	Base
	// Role is the syntactic position this type occupies: "return-type",
	// "attribute-type", "argument-type", "dictionary-type",
	// "typedef-type", "const-type", or "" for a type nested inside
	// another type (e.g. sequence<T>'s T).
	Role string
	// IDLType is exactly one of:
	//   - a plain type name (Name != "", Union == false, Inner == nil)
	//   - a single nested type (Generic != "", Inner has len 1 or 2)
	//   - a union's member list (Union == true, Inner has len >= 2)
	Name     string
	Inner    []*Type
	Union    bool
	Nullable bool
	// Generic is the generic constructor name ("sequence", "record",
	// "Promise", "FrozenArray", ...) or "" for a non-generic type.
	Generic  string
	ExtAttrs []*ExtendedAttribute
}

// Sequence reports whether this type is exactly sequence<T>, mirroring
// spec.md's "legacy sequence boolean" invariant: Sequence == (Generic ==
// "sequence").
func (t *Type) Sequence() bool { return t.Generic == "sequence" }

// MarshalJSON renders idlType polymorphically (spec.md §3 "IDL type
// descriptor"): a plain name for a simple type, a single nested
// descriptor for a one-argument generic, and a list of descriptors for
// unions and two-argument generics such as record<K, V>.
func (t *Type) MarshalJSON() ([]byte, error) {
	var idlType any
	switch {
	case t.Union, t.Generic == "record", len(t.Inner) > 1:
		idlType = jsonTypes(t.Inner)
	case t.Generic != "":
		if len(t.Inner) > 0 {
			idlType = t.Inner[0]
		}
	default:
		idlType = t.Name
	}
	return json.Marshal(struct {
		Type     *string              `json:"type"`
		IDLType  any                  `json:"idlType"`
		Nullable bool                 `json:"nullable"`
		Union    bool                 `json:"union"`
		Generic  *string              `json:"generic"`
		Sequence bool                 `json:"sequence"`
		ExtAttrs []*ExtendedAttribute `json:"extAttrs"`
	}{
		Type:     jsonString(t.Role),
		IDLType:  idlType,
		Nullable: t.Nullable,
		Union:    t.Union,
		Generic:  jsonString(t.Generic),
		Sequence: t.Sequence(),
		ExtAttrs: jsonExtAttrs(t.ExtAttrs),
	})
}

// DefaultValue is a dictionary field's or argument's "= ..." value.
type DefaultValue struct {
	Base
	// Kind is one of "boolean", "null", "Infinity", "NaN", "number",
	// "sequence" (empty only), "string".
	Kind     string
	Negative bool // only meaningful when Kind == "Infinity"
	Value    string
}

// MarshalJSON tags the value by Kind, omitting "value" for the kinds
// that carry none ("null", "NaN", "Infinity", empty "sequence") and
// "negative" for every kind but "Infinity" (spec.md §3 "Default value").
func (d *DefaultValue) MarshalJSON() ([]byte, error) {
	m := map[string]any{"type": d.Kind}
	switch d.Kind {
	case "Infinity":
		m["negative"] = d.Negative
	case "null", "NaN", "sequence":
	default:
		m["value"] = d.Value
	}
	return json.Marshal(m)
}
