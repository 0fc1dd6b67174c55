package parser

import (
	"testing"

	"github.com/perbu/webidlparse/pkg/ast"
	"github.com/perbu/webidlparse/pkg/lexer"
)

func parseSource(t *testing.T, src string, opts Options) []ast.Definition {
	t.Helper()
	toks, err := lexer.New(src).TokenizeAll()
	if err != nil {
		t.Fatalf("tokenise %q: %v", src, err)
	}
	defs, err := Parse(toks, opts)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return defs
}

func parseSourceExpectError(t *testing.T, src string) error {
	t.Helper()
	toks, err := lexer.New(src).TokenizeAll()
	if err != nil {
		t.Fatalf("tokenise %q: %v", src, err)
	}
	_, err = Parse(toks, Options{})
	if err == nil {
		t.Fatalf("parse %q: expected error, got none", src)
	}
	return err
}

func TestEmptyInterface(t *testing.T) {
	defs := parseSource(t, "interface Foo { };", Options{})
	if len(defs) != 1 {
		t.Fatalf("got %d definitions, want 1", len(defs))
	}
	iface, ok := defs[0].(*ast.Interface)
	if !ok {
		t.Fatalf("defs[0] is %T, want *ast.Interface", defs[0])
	}
	if iface.Name != "Foo" || iface.Kind != "interface" || iface.Partial || iface.Inheritance != "" || len(iface.Members) != 0 {
		t.Errorf("unexpected interface: %+v", iface)
	}
}

func TestInterfaceWithInheritanceAndReadonlyAttribute(t *testing.T) {
	defs := parseSource(t, "interface Foo : Bar { readonly attribute DOMString baz; };", Options{})
	iface := defs[0].(*ast.Interface)
	if iface.Inheritance != "Bar" {
		t.Errorf("inheritance = %q, want Bar", iface.Inheritance)
	}
	if len(iface.Members) != 1 {
		t.Fatalf("got %d members, want 1", len(iface.Members))
	}
	attr := iface.Members[0].(*ast.Attribute)
	if !attr.Readonly || attr.Inherit || attr.Static || attr.Stringifier || attr.Name != "baz" {
		t.Errorf("unexpected attribute: %+v", attr)
	}
	if attr.IDLType.Name != "DOMString" || attr.IDLType.Nullable {
		t.Errorf("unexpected attribute type: %+v", attr.IDLType)
	}
}

func TestDictionaryRequiredAndDefaultFields(t *testing.T) {
	defs := parseSource(t, `dictionary D { required long x; DOMString y = "hi"; };`, Options{})
	dict := defs[0].(*ast.Dictionary)
	if len(dict.Members) != 2 {
		t.Fatalf("got %d fields, want 2", len(dict.Members))
	}
	x, y := dict.Members[0], dict.Members[1]
	if !x.Required || x.Default != nil {
		t.Errorf("field x = %+v, want required with no default", x)
	}
	if y.Required || y.Default == nil || y.Default.Kind != "string" || y.Default.Value != "hi" {
		t.Errorf("field y = %+v, want default string \"hi\"", y)
	}
}

func TestTypedefSequence(t *testing.T) {
	defs := parseSource(t, "typedef sequence<DOMString> Names;", Options{})
	td := defs[0].(*ast.Typedef)
	if td.Name != "Names" {
		t.Errorf("name = %q, want Names", td.Name)
	}
	if !td.IDLType.Sequence() {
		t.Errorf("idlType.Sequence() = false, want true")
	}
	if len(td.IDLType.Inner) != 1 || td.IDLType.Inner[0].Name != "DOMString" {
		t.Errorf("unexpected inner types: %+v", td.IDLType.Inner)
	}
}

func TestDuplicateTopLevelNameIsFatal(t *testing.T) {
	err := parseSourceExpectError(t, "interface A {}; interface A {};")
	if want := `The name "A" of type "interface" is already seen`; !contains(err.Error(), want) {
		t.Errorf("error = %q, want to contain %q", err.Error(), want)
	}
}

func TestNullableAnyIsFatal(t *testing.T) {
	err := parseSourceExpectError(t, "interface X { attribute any? v; };")
	if want := "Type any cannot be made nullable"; !contains(err.Error(), want) {
		t.Errorf("error = %q, want to contain %q", err.Error(), want)
	}
}

func TestSequenceArityMismatchIsFatal(t *testing.T) {
	err := parseSourceExpectError(t, "typedef sequence<DOMString, DOMString> Bad;")
	if want := "A sequence must have exactly one subtype"; !contains(err.Error(), want) {
		t.Errorf("error = %q, want to contain %q", err.Error(), want)
	}
}

func TestRecordKeyTypeIsFatal(t *testing.T) {
	err := parseSourceExpectError(t, "typedef record<long, DOMString> Bad;")
	if want := "Record key must be"; !contains(err.Error(), want) {
		t.Errorf("error = %q, want to contain %q", err.Error(), want)
	}
}

func TestUnderscoreEscapedIdentifier(t *testing.T) {
	defs := parseSource(t, "interface _typedef { };", Options{})
	iface := defs[0].(*ast.Interface)
	if iface.Name != "typedef" {
		t.Errorf("name = %q, want typedef (escape stripped)", iface.Name)
	}
}

func TestPartialInterfaceNameNotRegistered(t *testing.T) {
	defs := parseSource(t, "partial interface A { }; interface A { };", Options{})
	if len(defs) != 2 {
		t.Fatalf("got %d definitions, want 2", len(defs))
	}
	if !defs[0].(*ast.Interface).Partial {
		t.Error("first interface should be partial")
	}
}

func TestImplementsAndIncludes(t *testing.T) {
	defs := parseSource(t, "A implements B; C includes D;", Options{})
	impl := defs[0].(*ast.Implements)
	if impl.Target != "A" || impl.Implements != "B" {
		t.Errorf("unexpected implements: %+v", impl)
	}
	inc := defs[1].(*ast.Includes)
	if inc.Target != "C" || inc.Includes != "D" {
		t.Errorf("unexpected includes: %+v", inc)
	}
}

func TestEnum(t *testing.T) {
	defs := parseSource(t, `enum Color { "red", "green", "blue", };`, Options{})
	en := defs[0].(*ast.Enum)
	want := []string{"red", "green", "blue"}
	if len(en.Values) != len(want) {
		t.Fatalf("got %v, want %v", en.Values, want)
	}
	for i := range want {
		if en.Values[i] != want[i] {
			t.Errorf("Values[%d] = %q, want %q", i, en.Values[i], want[i])
		}
	}
}

func TestEmptyEnumBodyIsPermitted(t *testing.T) {
	defs := parseSource(t, "enum E { };", Options{})
	if len(defs[0].(*ast.Enum).Values) != 0 {
		t.Errorf("expected no values")
	}
}

func TestUnionType(t *testing.T) {
	defs := parseSource(t, "typedef (DOMString or long) U;", Options{})
	td := defs[0].(*ast.Typedef)
	if !td.IDLType.Union || len(td.IDLType.Inner) != 2 {
		t.Errorf("unexpected union type: %+v", td.IDLType)
	}
}

func TestCallbackFunctionType(t *testing.T) {
	defs := parseSource(t, "callback AsyncOp = void (long progress);", Options{})
	cb := defs[0].(*ast.Callback)
	if cb.Name != "AsyncOp" || cb.IDLType.Name != "void" || len(cb.Arguments) != 1 {
		t.Errorf("unexpected callback: %+v", cb)
	}
}

func TestCallbackInterface(t *testing.T) {
	defs := parseSource(t, "callback interface EventListener { void handleEvent(); };", Options{})
	iface := defs[0].(*ast.Interface)
	if iface.Kind != "callback interface" || len(iface.Members) != 1 {
		t.Errorf("unexpected callback interface: %+v", iface)
	}
}

func TestInterfaceMixin(t *testing.T) {
	defs := parseSource(t, "interface mixin Mixin { readonly attribute long x; };", Options{})
	iface := defs[0].(*ast.Interface)
	if iface.Kind != "interface mixin" {
		t.Errorf("kind = %q, want interface mixin", iface.Kind)
	}
}

func TestNamespace(t *testing.T) {
	defs := parseSource(t, "namespace Console { void log(DOMString msg); };", Options{})
	ns := defs[0].(*ast.Namespace)
	if ns.Name != "Console" || len(ns.Members) != 1 {
		t.Errorf("unexpected namespace: %+v", ns)
	}
}

func TestVariadicArgument(t *testing.T) {
	defs := parseSource(t, "interface I { void f(long... rest); };", Options{})
	iface := defs[0].(*ast.Interface)
	op := iface.Members[0].(*ast.Operation)
	if len(op.Arguments) != 1 || !op.Arguments[0].Variadic {
		t.Errorf("unexpected arguments: %+v", op.Arguments)
	}
}

func TestOptionalArgumentWithDefault(t *testing.T) {
	defs := parseSource(t, "interface I { void f(optional long x = 5); };", Options{})
	op := defs[0].(*ast.Interface).Members[0].(*ast.Operation)
	arg := op.Arguments[0]
	if !arg.Optional || arg.Default == nil || arg.Default.Value != "5" {
		t.Errorf("unexpected argument: %+v", arg)
	}
}

func TestUnnamedGetterOperation(t *testing.T) {
	defs := parseSource(t, "interface I { getter DOMString (unsigned long index); };", Options{})
	op := defs[0].(*ast.Interface).Members[0].(*ast.Operation)
	if !op.Flags.Getter || op.Name != "" {
		t.Errorf("unexpected operation: %+v", op)
	}
}

func TestIterable(t *testing.T) {
	defs := parseSource(t, "interface I { iterable<DOMString>; };", Options{})
	it := defs[0].(*ast.Interface).Members[0].(*ast.IterableLike)
	if it.Kind != "iterable" || len(it.IDLType) != 1 {
		t.Errorf("unexpected iterable: %+v", it)
	}
}

func TestMaplikeRequiresTwoTypeArgs(t *testing.T) {
	err := parseSourceExpectError(t, "interface I { maplike<DOMString>; };")
	if want := "maplike must have exactly two subtypes"; !contains(err.Error(), want) {
		t.Errorf("error = %q, want to contain %q", err.Error(), want)
	}
}

func TestStaticAndStringifierMembers(t *testing.T) {
	defs := parseSource(t, "interface I { static void f(); stringifier; };", Options{})
	iface := defs[0].(*ast.Interface)
	if len(iface.Members) != 2 {
		t.Fatalf("got %d members, want 2", len(iface.Members))
	}
	if !iface.Members[0].(*ast.Operation).Flags.Static {
		t.Error("first member should be static")
	}
	if !iface.Members[1].(*ast.Operation).Flags.Stringifier {
		t.Error("second member should be stringifier")
	}
}

func TestExtendedAttributeWithIdentifierList(t *testing.T) {
	defs := parseSource(t, `[Exposed=(Window,Worker)] interface I { [CEReactions] attribute DOMString x; };`, Options{})
	iface := defs[0].(*ast.Interface)
	if len(iface.ExtAttrs) != 1 || iface.ExtAttrs[0].Name != "Exposed" {
		t.Fatalf("unexpected ext attrs: %+v", iface.ExtAttrs)
	}
	rhs := iface.ExtAttrs[0].RHS
	if rhs == nil || rhs.Kind != "identifier-list" || len(rhs.List) != 2 {
		t.Errorf("unexpected rhs: %+v", rhs)
	}
}

func TestStrayExtendedAttributesIsFatal(t *testing.T) {
	err := parseSourceExpectError(t, "[Exposed=Window]")
	if want := "Stray extended attributes"; !contains(err.Error(), want) {
		t.Errorf("error = %q, want to contain %q", err.Error(), want)
	}
}

func TestAttributeRejectsSequenceType(t *testing.T) {
	err := parseSourceExpectError(t, "interface I { attribute sequence<long> s; };")
	if want := "Attributes cannot accept sequence/record types"; !contains(err.Error(), want) {
		t.Errorf("error = %q, want to contain %q", err.Error(), want)
	}
}

func TestErrorPrefixedWithCurrentDefinition(t *testing.T) {
	err := parseSourceExpectError(t, "partial interface Foo { readonly attribute DOMString baz }")
	if want := "Got an error during or right after parsing `partial interface Foo`"; !contains(err.Error(), want) {
		t.Errorf("error = %q, want to contain %q", err.Error(), want)
	}
}

func TestNestedTypedefAllowed(t *testing.T) {
	defs := parseSource(t, "interface Foo { typedef long Bar; };", Options{AllowNestedTypedefs: true})
	iface, ok := defs[0].(*ast.Interface)
	if !ok {
		t.Fatalf("defs[0] = %T, want *ast.Interface", defs[0])
	}
	if len(iface.Members) != 1 {
		t.Fatalf("len(Members) = %d, want 1", len(iface.Members))
	}
	td, ok := iface.Members[0].(*ast.Typedef)
	if !ok {
		t.Fatalf("Members[0] = %T, want *ast.Typedef", iface.Members[0])
	}
	if td.Name != "Bar" || td.DefinitionType() != "typedef" {
		t.Errorf("typedef member = %+v, want Name=Bar", td)
	}
}

func TestNestedTypedefRejectedByDefault(t *testing.T) {
	err := parseSourceExpectError(t, "interface Foo { typedef long Bar; };")
	if want := "Unknown member"; !contains(err.Error(), want) {
		t.Errorf("error = %q, want to contain %q", err.Error(), want)
	}
}

func contains(haystack, needle string) bool {
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			return true
		}
	}
	return false
}
