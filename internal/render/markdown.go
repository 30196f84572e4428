// Package render converts a restricted Markdown subset into display nodes.
//
// The supported grammar is deliberately small: headings levels 1-3, flat
// unordered/ordered list items, triple-backtick fenced code blocks, and
// paragraphs with **bold** spans. Anything else falls through to a literal
// paragraph. Nested lists, blockquotes, tables, links, and italics are out.
package render

import (
	"regexp"
	"strings"
)

// Kind tags the variant held by a Node.
type Kind int

const (
	KindHeading Kind = iota
	KindListItem
	KindCodeBlock
	KindParagraph
	KindBlank
)

// Span is a run of paragraph text with a single bold flag.
type Span struct {
	Text string
	Bold bool
}

// Node is one display element produced from a source line (or, for code
// blocks, a fenced run of lines). Only the fields for its Kind are set.
type Node struct {
	Kind    Kind
	Level   int      // headings: 1-3
	Ordered bool     // list items
	Text    string   // headings and list items, prefix stripped
	Lines   []string // code blocks, verbatim
	Spans   []Span   // paragraphs
}

// state is the line classifier's mode. The fence handling is the only
// stateful part of the renderer.
type state int

const (
	stateNormal state = iota
	stateInCodeBlock
)

const fence = "```"

var (
	boldPattern    = regexp.MustCompile(`\*\*(.+?)\*\*`)
	orderedPattern = regexp.MustCompile(`^\d+\.`)
)

// Parse converts Markdown content into an ordered node sequence.
// It is a pure function: identical input yields identical output.
//
// A fence line toggles between Normal and InCodeBlock and is never emitted
// itself. An unterminated fence at end of input drops its accumulated buffer.
func Parse(content string) []Node {
	var nodes []Node
	st := stateNormal
	var code []string

	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), fence) {
			if st == stateInCodeBlock {
				nodes = append(nodes, Node{Kind: KindCodeBlock, Lines: code})
				code = nil
				st = stateNormal
			} else {
				st = stateInCodeBlock
			}
			continue
		}
		if st == stateInCodeBlock {
			// Verbatim, blank lines included.
			code = append(code, line)
			continue
		}
		nodes = append(nodes, classify(line))
	}
	return nodes
}

// classify maps a single Normal-state line to its node, in priority order:
// headings, unordered item, ordered item, blank, paragraph.
func classify(line string) Node {
	switch {
	case strings.HasPrefix(line, "# "):
		return Node{Kind: KindHeading, Level: 1, Text: strings.TrimPrefix(line, "# ")}
	case strings.HasPrefix(line, "## "):
		return Node{Kind: KindHeading, Level: 2, Text: strings.TrimPrefix(line, "## ")}
	case strings.HasPrefix(line, "### "):
		return Node{Kind: KindHeading, Level: 3, Text: strings.TrimPrefix(line, "### ")}
	case strings.HasPrefix(line, "- "), strings.HasPrefix(line, "* "):
		return Node{Kind: KindListItem, Text: line[2:]}
	case orderedPattern.MatchString(line):
		loc := orderedPattern.FindStringIndex(line)
		return Node{Kind: KindListItem, Ordered: true, Text: strings.TrimLeft(line[loc[1]:], " ")}
	case strings.TrimSpace(line) == "":
		return Node{Kind: KindBlank}
	default:
		return Node{Kind: KindParagraph, Spans: splitBold(line)}
	}
}

// splitBold cuts a paragraph line into bold and plain spans around
// non-greedy **...** pairs. Delimiters are removed; everything outside a
// matched pair passes through unmodified.
func splitBold(line string) []Span {
	var spans []Span
	last := 0
	for _, m := range boldPattern.FindAllStringSubmatchIndex(line, -1) {
		if m[0] > last {
			spans = append(spans, Span{Text: line[last:m[0]]})
		}
		spans = append(spans, Span{Text: line[m[2]:m[3]], Bold: true})
		last = m[1]
	}
	if last < len(line) {
		spans = append(spans, Span{Text: line[last:]})
	}
	return spans
}
