package ast

import "encoding/json"

// Member is any node that can occur inside an interface, mixin, or
// namespace body.
type Member interface {
	Node
	memberNode()
}

// Const is a `const TYPE name = value;` interface/mixin member.
type Const struct {
	Base
	Name     string
	IDLType  *Type
	Nullable bool
	Value    *DefaultValue
	ExtAttrs []*ExtendedAttribute
	Leading  string // "-pea" trivia, set only when Options.Trivia is on
}

func (c *Const) memberNode() {}

func (c *Const) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type     string               `json:"type"`
		Name     string               `json:"name"`
		IDLType  *Type                `json:"idlType"`
		Nullable bool                 `json:"nullable"`
		Value    *DefaultValue        `json:"value"`
		ExtAttrs []*ExtendedAttribute `json:"extAttrs"`
	}{
		Type:     "const",
		Name:     c.Name,
		IDLType:  c.IDLType,
		Nullable: c.Nullable,
		Value:    c.Value,
		ExtAttrs: jsonExtAttrs(c.ExtAttrs),
	})
}

// Attribute is an `[inherit] [readonly] attribute TYPE name;` member.
type Attribute struct {
	Base
	Name        string
	IDLType     *Type
	Readonly    bool
	Inherit     bool
	Static      bool
	Stringifier bool
	ExtAttrs    []*ExtendedAttribute
	Leading     string
}

func (a *Attribute) memberNode() {}

func (a *Attribute) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type        string               `json:"type"`
		Name        string               `json:"name"`
		IDLType     *Type                `json:"idlType"`
		Readonly    bool                 `json:"readonly"`
		Inherit     bool                 `json:"inherit"`
		Static      bool                 `json:"static"`
		Stringifier bool                 `json:"stringifier"`
		ExtAttrs    []*ExtendedAttribute `json:"extAttrs"`
	}{
		Type:        "attribute",
		Name:        a.Name,
		IDLType:     a.IDLType,
		Readonly:    a.Readonly,
		Inherit:     a.Inherit,
		Static:      a.Static,
		Stringifier: a.Stringifier,
		ExtAttrs:    jsonExtAttrs(a.ExtAttrs),
	})
}

// OperationFlags captures an operation's prefix keywords.
type OperationFlags struct {
	Getter      bool `json:"getter"`
	Setter      bool `json:"setter"`
	Deleter     bool `json:"deleter"`
	Static      bool `json:"static"`
	Stringifier bool `json:"stringifier"`
}

// Operation is a regular, getter/setter/deleter, static, or stringifier
// operation member. Name is empty for an unnamed special operation (e.g.
// a bare `getter long (DOMString name);`).
type Operation struct {
	Base
	Name      string
	IDLType   *Type // return type; for `void`, a Type whose Name is "void" (not a bare string)
	Arguments []*Argument
	Flags     OperationFlags
	ExtAttrs  []*ExtendedAttribute
	Leading   string
}

func (o *Operation) memberNode() {}

func (o *Operation) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type      string               `json:"type"`
		Name      *string              `json:"name"`
		IDLType   *Type                `json:"idlType"`
		Arguments []*Argument          `json:"arguments"`
		Flags     OperationFlags       `json:"flags"`
		ExtAttrs  []*ExtendedAttribute `json:"extAttrs"`
	}{
		Type:      "operation",
		Name:      jsonString(o.Name),
		IDLType:   o.IDLType,
		Arguments: jsonArguments(o.Arguments),
		Flags:     o.Flags,
		ExtAttrs:  jsonExtAttrs(o.ExtAttrs),
	})
}

// IterableLike covers iterable<T>, iterable<K,V>, legacyiterable<T>,
// maplike<K,V>, and setlike<T> members. Kind records which production
// matched.
type IterableLike struct {
	Base
	Kind     string // "iterable", "legacyiterable", "maplike", "setlike"
	IDLType  []*Type // 1 or 2 slots, per Kind's arity
	Readonly bool    // maplike/setlike only
	Leading  string
}

func (i *IterableLike) memberNode() {}

func (i *IterableLike) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type     string  `json:"type"`
		IDLType  []*Type `json:"idlType"`
		Readonly bool    `json:"readonly"`
	}{Type: i.Kind, IDLType: jsonTypes(i.IDLType), Readonly: i.Readonly})
}

// Field is a dictionary member.
type Field struct {
	Base
	Name     string
	IDLType  *Type
	Required bool
	Default  *DefaultValue // present only if !Required and "= ..." was given
	ExtAttrs []*ExtendedAttribute
	Leading  string
}

func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type     string               `json:"type"`
		Name     string               `json:"name"`
		IDLType  *Type                `json:"idlType"`
		Required bool                 `json:"required"`
		Default  *DefaultValue        `json:"default"`
		ExtAttrs []*ExtendedAttribute `json:"extAttrs"`
	}{
		Type:     "field",
		Name:     f.Name,
		IDLType:  f.IDLType,
		Required: f.Required,
		Default:  f.Default,
		ExtAttrs: jsonExtAttrs(f.ExtAttrs),
	})
}
