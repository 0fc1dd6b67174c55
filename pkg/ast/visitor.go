package ast

// Walk traverses defs depth-first, calling fn once for every node
// reachable from the file's top level (definitions, their members,
// nested types, arguments, and extended attributes). Default values are
// not visited. If fn returns false for a node, Walk does not descend into
// that node's children.
//
// This is pure traversal sugar for external tooling (validators, binding
// generators, documentation tools); it has no effect on parsing and adds
// no new AST fields.
func Walk(defs []Definition, fn func(Node) bool) {
	for _, d := range defs {
		walkNode(d, fn)
	}
}

func walkNode(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}

	switch v := n.(type) {
	case *Interface:
		walkExtAttrs(v.ExtAttrs, fn)
		for _, m := range v.Members {
			walkNode(m, fn)
		}
	case *Namespace:
		walkExtAttrs(v.ExtAttrs, fn)
		for _, m := range v.Members {
			walkNode(m, fn)
		}
	case *Dictionary:
		walkExtAttrs(v.ExtAttrs, fn)
		for _, f := range v.Members {
			walkNode(f, fn)
		}
	case *Typedef:
		walkExtAttrs(v.ExtAttrs, fn)
		walkNode(v.IDLType, fn)
	case *Callback:
		walkExtAttrs(v.ExtAttrs, fn)
		walkNode(v.IDLType, fn)
		for _, a := range v.Arguments {
			walkNode(a, fn)
		}
	case *Const:
		walkExtAttrs(v.ExtAttrs, fn)
		walkNode(v.IDLType, fn)
	case *Attribute:
		walkExtAttrs(v.ExtAttrs, fn)
		walkNode(v.IDLType, fn)
	case *Operation:
		walkExtAttrs(v.ExtAttrs, fn)
		walkNode(v.IDLType, fn)
		for _, a := range v.Arguments {
			walkNode(a, fn)
		}
	case *IterableLike:
		for _, t := range v.IDLType {
			walkNode(t, fn)
		}
	case *Field:
		walkExtAttrs(v.ExtAttrs, fn)
		walkNode(v.IDLType, fn)
	case *Argument:
		walkExtAttrs(v.ExtAttrs, fn)
		walkNode(v.IDLType, fn)
	case *Type:
		walkExtAttrs(v.ExtAttrs, fn)
		for _, inner := range v.Inner {
			walkNode(inner, fn)
		}
	case *ExtendedAttribute:
		for _, a := range v.Arguments {
			walkNode(a, fn)
		}
	case *Enum, *Implements, *Includes:
		// leaves: no children beyond what their own fields already expose
	}
}

func walkExtAttrs(attrs []*ExtendedAttribute, fn func(Node) bool) {
	for _, a := range attrs {
		walkNode(a, fn)
	}
}
