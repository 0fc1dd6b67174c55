package parser

// Options controls optional parser behaviour (spec.md's options record).
type Options struct {
	// Trivia, when true, attaches whitespace/comment text captured between
	// syntactic anchors to container nodes and member Leading fields.
	// Only the first member or field of a body gets a non-empty Leading:
	// the end-position lookahead after each member drains the trivia that
	// follows it (see ast.Trivia for the container fields).
	Trivia bool
	// AllowNestedTypedefs, when true, permits a typedef member inside an
	// interface body.
	AllowNestedTypedefs bool
}
