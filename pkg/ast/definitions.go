package ast

import "encoding/json"

// Interface covers the three bracket-bodied, keyword-`interface`-shaped
// top-level forms: plain interfaces, callback interfaces, and interface
// mixins. DefinitionType distinguishes them ("interface", "callback
// interface", "interface mixin").
type Interface struct {
	Base
	Kind        string // "interface", "callback interface", "interface mixin"
	Name        string
	Partial     bool
	Inheritance string // parent interface name, "" if none
	Members     []Member
	ExtAttrs    []*ExtendedAttribute
	Trivia      *Trivia
}

func (i *Interface) DefinitionName() string { return i.Name }
func (i *Interface) DefinitionType() string { return i.Kind }

// MarshalJSON renders the "type" discriminator from Kind rather than the
// Go field name "Kind" (spec.md §6).
func (i *Interface) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type        string               `json:"type"`
		Name        string               `json:"name"`
		Partial     *bool                `json:"partial"`
		Inheritance *string              `json:"inheritance"`
		Members     []Member             `json:"members"`
		ExtAttrs    []*ExtendedAttribute `json:"extAttrs"`
	}{
		Type:        i.Kind,
		Name:        i.Name,
		Partial:     jsonBool(i.Partial),
		Inheritance: jsonString(i.Inheritance),
		Members:     jsonMembers(i.Members),
		ExtAttrs:    jsonExtAttrs(i.ExtAttrs),
	})
}

// Namespace is a `namespace Name { ... }` definition.
type Namespace struct {
	Base
	Name     string
	Partial  bool
	Members  []Member
	ExtAttrs []*ExtendedAttribute
	Trivia   *Trivia
}

func (n *Namespace) DefinitionName() string { return n.Name }
func (n *Namespace) DefinitionType() string { return "namespace" }

func (n *Namespace) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type     string               `json:"type"`
		Name     string               `json:"name"`
		Partial  *bool                `json:"partial"`
		Members  []Member             `json:"members"`
		ExtAttrs []*ExtendedAttribute `json:"extAttrs"`
	}{
		Type:     "namespace",
		Name:     n.Name,
		Partial:  jsonBool(n.Partial),
		Members:  jsonMembers(n.Members),
		ExtAttrs: jsonExtAttrs(n.ExtAttrs),
	})
}

// Dictionary is a `dictionary Name : Parent { field... }` definition.
type Dictionary struct {
	Base
	Name        string
	Partial     bool
	Inheritance string
	Members     []*Field
	ExtAttrs    []*ExtendedAttribute
	Trivia      *Trivia
}

func (d *Dictionary) DefinitionName() string { return d.Name }
func (d *Dictionary) DefinitionType() string { return "dictionary" }

func (d *Dictionary) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type        string               `json:"type"`
		Name        string               `json:"name"`
		Partial     *bool                `json:"partial"`
		Inheritance *string              `json:"inheritance"`
		Members     []*Field             `json:"members"`
		ExtAttrs    []*ExtendedAttribute `json:"extAttrs"`
	}{
		Type:        "dictionary",
		Name:        d.Name,
		Partial:     jsonBool(d.Partial),
		Inheritance: jsonString(d.Inheritance),
		Members:     jsonFields(d.Members),
		ExtAttrs:    jsonExtAttrs(d.ExtAttrs),
	})
}

// Enum is an `enum Name { "a", "b" }` definition.
type Enum struct {
	Base
	Name   string
	Values []string
	Trivia *Trivia
}

func (e *Enum) DefinitionName() string { return e.Name }
func (e *Enum) DefinitionType() string { return "enum" }

func (e *Enum) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type   string   `json:"type"`
		Name   string   `json:"name"`
		Values []string `json:"values"`
	}{Type: "enum", Name: e.Name, Values: jsonStrings(e.Values)})
}

// Typedef is a `typedef Type Name;` definition. It also satisfies Member
// (via memberNode) so it can appear as an interface member when
// Options.AllowNestedTypedefs is set (spec.md §4.2.3).
type Typedef struct {
	Base
	Name     string
	IDLType  *Type
	ExtAttrs []*ExtendedAttribute
	Leading  string // "-pea" trivia, set only when used as a member and Options.Trivia is on
}

func (t *Typedef) DefinitionName() string { return t.Name }
func (t *Typedef) DefinitionType() string { return "typedef" }
func (t *Typedef) memberNode()            {}

func (t *Typedef) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type     string               `json:"type"`
		Name     string               `json:"name"`
		IDLType  *Type                `json:"idlType"`
		ExtAttrs []*ExtendedAttribute `json:"extAttrs"`
	}{Type: "typedef", Name: t.Name, IDLType: t.IDLType, ExtAttrs: jsonExtAttrs(t.ExtAttrs)})
}

// Callback is a standalone `callback Name = ReturnType(args);` function
// type declaration (not a callback interface).
type Callback struct {
	Base
	Name      string
	IDLType   *Type // return type
	Arguments []*Argument
	ExtAttrs  []*ExtendedAttribute
}

func (c *Callback) DefinitionName() string { return c.Name }
func (c *Callback) DefinitionType() string { return "callback" }

func (c *Callback) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type      string               `json:"type"`
		Name      string               `json:"name"`
		IDLType   *Type                `json:"idlType"`
		Arguments []*Argument          `json:"arguments"`
		ExtAttrs  []*ExtendedAttribute `json:"extAttrs"`
	}{
		Type:      "callback",
		Name:      c.Name,
		IDLType:   c.IDLType,
		Arguments: jsonArguments(c.Arguments),
		ExtAttrs:  jsonExtAttrs(c.ExtAttrs),
	})
}

// Implements is an `A implements B;` definition.
type Implements struct {
	Base
	Target     string
	Implements string
}

func (i *Implements) DefinitionName() string { return "" }
func (i *Implements) DefinitionType() string { return "implements" }

func (i *Implements) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type   string `json:"type"`
		Target string `json:"target"`
		Name   string `json:"name"`
	}{Type: "implements", Target: i.Target, Name: i.Implements})
}

// Includes is an `A includes B;` definition.
type Includes struct {
	Base
	Target   string
	Includes string
}

func (i *Includes) DefinitionName() string { return "" }
func (i *Includes) DefinitionType() string { return "includes" }

func (i *Includes) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type   string `json:"type"`
		Target string `json:"target"`
		Name   string `json:"name"`
	}{Type: "includes", Target: i.Target, Name: i.Includes})
}
