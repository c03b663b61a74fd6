// internal/linerec/linerec.go
package linerec

import (
	"strconv"
	"strings"
)

// FieldType describes what kind of token a record's value was.
type FieldType int

const (
	FieldText FieldType = iota
	FieldNumeric
	FieldQuoted
	FieldBoolean
)

// Record is the classified form of one deck line. It is ephemeral: the
// scanner folds it into the document and never retains it.
type Record struct {
	Value     string
	Label     string
	Descr     string
	IsComment bool
	Type      FieldType
}

// commentPrefixes open a comment line. "--" also covers the "----" rules
// that separate deck sections.
var commentPrefixes = []string{"!", "#", "%", "=", "--"}

// Tokenize classifies a single raw line. Comment lines keep the whole line
// in Descr; record lines carry value, label, and the verbatim remainder.
func Tokenize(line string) Record {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return Record{IsComment: true, Descr: line}
	}
	for _, p := range commentPrefixes {
		if strings.HasPrefix(trimmed, p) {
			return Record{IsComment: true, Descr: line}
		}
	}

	value, rest := scanToken(trimmed)
	rec := Record{Value: value, Type: classify(value)}

	label, rest := scanToken(rest)
	rec.Label = strings.Trim(label, `"`)
	rec.Descr = rest
	return rec
}

// Fields splits a line into tokens on spaces, tabs, and commas. Quoted
// tokens are atomic and returned without their quotes.
func Fields(line string) []string {
	var out []string
	rest := line
	for {
		var tok string
		tok, rest = scanToken(rest)
		if tok == "" {
			return out
		}
		out = append(out, strings.Trim(tok, `"`))
	}
}

// FirstToken returns the first quote-stripped token of a line and the
// verbatim remainder after it.
func FirstToken(line string) (tok, rest string) {
	tok, rest = scanToken(line)
	return strings.Trim(tok, `"`), rest
}

func classify(value string) FieldType {
	if strings.HasPrefix(value, `"`) {
		return FieldQuoted
	}
	if _, err := strconv.ParseFloat(value, 64); err == nil {
		return FieldNumeric
	}
	if strings.EqualFold(value, "true") || strings.EqualFold(value, "false") {
		return FieldBoolean
	}
	return FieldText
}

func isSeparator(c byte) bool {
	return c == ' ' || c == '\t' || c == ','
}

// scanToken reads the next token of s, keeping surrounding quotes on
// quoted tokens. The remainder after the token is returned untrimmed so
// callers can preserve trailing text verbatim.
func scanToken(s string) (tok, rest string) {
	start := 0
	for start < len(s) && isSeparator(s[start]) {
		start++
	}
	if start == len(s) {
		return "", ""
	}

	if s[start] == '"' {
		if end := strings.IndexByte(s[start+1:], '"'); end >= 0 {
			end += start + 2 // past the closing quote
			return s[start:end], s[end:]
		}
		// Unterminated quote: the rest of the line is one token.
		return s[start:], ""
	}

	end := start
	for end < len(s) && !isSeparator(s[end]) {
		end++
	}
	return s[start:end], s[end:]
}
