// Package formatter renders parsed Web IDL source with per-definition
// highlighting, and formats a parser.ParseError as a source-context
// failure report, the way a terminal test reporter annotates a failing
// run against the source it ran against.
package formatter

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/perbu/webidlparse/pkg/ast"
	"github.com/perbu/webidlparse/pkg/parser"
)

// ANSI color codes.
const (
	ColorReset  = "\033[0m"
	ColorGreen  = "\033[32m"
	ColorGray   = "\033[90m"
	ColorRed    = "\033[31m"
	ColorYellow = "\033[33m"
	ColorBold   = "\033[1m"
)

// ShouldUseColor reports whether stdout is a terminal (not piped to a
// file or another program).
func ShouldUseColor() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// FormatSourceWithDefinitions renders source with each line tagged by
// the top-level definition it falls within, e.g. for spotting which
// lines an `interface` body spans in a long file.
func FormatSourceWithDefinitions(source string, defs []ast.Definition, useColor bool) string {
	lines := strings.Split(source, "\n")
	owner := make(map[int]ast.Definition, len(lines))
	for _, d := range defs {
		for line := d.Pos().Line; line <= d.End().Line && line <= len(lines); line++ {
			owner[line] = d
		}
	}

	var out strings.Builder
	for i, line := range lines {
		lineNum := i + 1
		d, tagged := owner[lineNum]

		label := "      "
		if tagged {
			label = fmt.Sprintf("%-6s", abbreviate(d.DefinitionType()))
		}

		if useColor && tagged {
			fmt.Fprintf(&out, "%s%s %4d | %s%s\n", ColorGreen, label, lineNum, line, ColorReset)
		} else if useColor {
			fmt.Fprintf(&out, "%s%s %4d | %s%s\n", ColorGray, label, lineNum, line, ColorReset)
		} else {
			fmt.Fprintf(&out, "%s %4d | %s\n", label, lineNum, line)
		}
	}
	return out.String()
}

func abbreviate(definitionType string) string {
	if len(definitionType) <= 6 {
		return definitionType
	}
	return definitionType[:6]
}

// FormatParseFailure formats a parse failure against the source it was
// reading, highlighting the line the error was reported against.
func FormatParseFailure(path string, source string, perr *parser.ParseError, useColor bool) string {
	var out strings.Builder

	if useColor {
		fmt.Fprintf(&out, "\n%s%sFAILED:%s %s\n", ColorBold, ColorRed, ColorReset, path)
		fmt.Fprintf(&out, "  %s✗%s %s\n", ColorRed, ColorReset, perr.Error())
	} else {
		fmt.Fprintf(&out, "\nFAILED: %s\n", path)
		fmt.Fprintf(&out, "  ✗ %s\n", perr.Error())
	}

	lines := strings.Split(source, "\n")
	if perr.Line < 1 || perr.Line > len(lines) {
		return out.String()
	}

	if useColor {
		fmt.Fprintf(&out, "\n%s%snear line %d:%s\n", ColorBold, ColorYellow, perr.Line, ColorReset)
	} else {
		fmt.Fprintf(&out, "\nnear line %d:\n", perr.Line)
	}

	start := max(1, perr.Line-2)
	end := min(len(lines), perr.Line+2)
	for lineNum := start; lineNum <= end; lineNum++ {
		text := lines[lineNum-1]
		marker := "  "
		if lineNum == perr.Line {
			marker = "> "
		}
		if useColor && lineNum == perr.Line {
			fmt.Fprintf(&out, "%s%s%4d | %s%s\n", ColorRed, marker, lineNum, text, ColorReset)
		} else {
			fmt.Fprintf(&out, "%s%4d | %s\n", marker, lineNum, text)
		}
	}

	return out.String()
}
