package parser

import "github.com/perbu/webidlparse/pkg/lexer"

// refineTrivia re-lexes a raw whitespace/comment run drained by
// advanceTrivia into finer-grained sub-lexemes tagged ws, line-comment, or
// multiline-comment, each optionally suffixed (e.g. "-pea" for trivia
// collected just before a member or dictionary field). Concatenating the
// sub-lexemes' Text fields reproduces raw exactly.
//
// Callers currently only need the raw concatenation for AST Trivia/Leading
// fields, so this refinement exists to match spec.md §4.2.8's contract for
// consumers that do want per-run tagging (e.g. a formatter walking the
// sub-lexemes instead of re-splitting the raw string itself).
func refineTrivia(raw, suffix string) []lexer.Lexeme {
	var out []lexer.Lexeme
	i := 0
	for i < len(raw) {
		switch {
		case raw[i] == ' ' || raw[i] == '\t' || raw[i] == '\n' || raw[i] == '\r':
			j := i
			for j < len(raw) && (raw[j] == ' ' || raw[j] == '\t' || raw[j] == '\n' || raw[j] == '\r') {
				j++
			}
			out = append(out, lexer.Lexeme{Kind: lexer.Whitespace, Text: raw[i:j], Refined: lexer.RefinedWS + suffix})
			i = j

		case i+1 < len(raw) && raw[i] == '/' && raw[i+1] == '/':
			j := i
			for j < len(raw) && raw[j] != '\n' {
				j++
			}
			out = append(out, lexer.Lexeme{Kind: lexer.Comment, Text: raw[i:j], Refined: lexer.RefinedLineComment + suffix})
			i = j

		case i+1 < len(raw) && raw[i] == '/' && raw[i+1] == '*':
			j := i + 2
			for j+1 < len(raw) && !(raw[j] == '*' && raw[j+1] == '/') {
				j++
			}
			end := j + 2
			if end > len(raw) {
				end = len(raw)
			}
			out = append(out, lexer.Lexeme{Kind: lexer.Comment, Text: raw[i:end], Refined: lexer.RefinedMultilineComment + suffix})
			i = end

		default:
			// Shouldn't occur: advanceTrivia only drains Whitespace/Comment
			// lexeme text, which is already one of the three shapes above.
			out = append(out, lexer.Lexeme{Kind: lexer.Other, Text: raw[i : i+1]})
			i++
		}
	}
	return out
}
