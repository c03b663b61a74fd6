// internal/table/parsers.go
package table

import (
	"strconv"
	"strings"

	"github.com/vk/fastdeck/internal/linerec"
	"github.com/zclconf/go-cty/cty"
)

// ParseNumeric reads a numeric table. headerLine is the already-consumed
// line whose whitespace-delimited tokens name the columns; the line after
// it is discarded unconditionally as the units line. Then up to rows data
// lines are read, each contributing one row of floats. A line that does not
// parse as a full row of numbers stops the read early with no error; the
// caller sees the shortfall in len(Rows).
func ParseNumeric(src Source, headerLine string, rows int) *Table {
	t := &Table{Headers: linerec.Fields(headerLine)}
	if _, ok := src.NextLine(); !ok {
		return t
	}

	for i := 0; i < rows; i++ {
		line, ok := src.NextLine()
		if !ok {
			break
		}
		row, ok := numericRow(line, t.Cols())
		if !ok {
			break
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// ParseMixed reads a table whose cells may independently be numbers or
// text. skipUnits controls whether the line after the header is discarded;
// the blade-node table carries no units line. Each data line is split into
// the first Cols() tokens, quoted tokens atomic; every token that parses as
// a float becomes a number cell, anything else keeps its text. Early stop
// on exhausted input, same as ParseNumeric.
func ParseMixed(src Source, headerLine string, rows int, skipUnits bool) *Table {
	t := &Table{Headers: linerec.Fields(headerLine)}
	if skipUnits {
		if _, ok := src.NextLine(); !ok {
			return t
		}
	}

	for i := 0; i < rows; i++ {
		line, ok := src.NextLine()
		if !ok {
			break
		}
		fields := linerec.Fields(line)
		if len(fields) < t.Cols() {
			break
		}
		row := make([]cty.Value, t.Cols())
		for j, f := range fields[:t.Cols()] {
			if n, err := strconv.ParseFloat(f, 64); err == nil {
				row[j] = cty.NumberFloatVal(n)
			} else {
				row[j] = cty.StringVal(f)
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// ParseFileList collects the entries of a quoted-filename list. The first
// entry is
// the first token of currentLine, which the scanner already consumed; each
// of the following entries is the first token of its own line, up to a
// total of count. A line with no token, or exhausted input, stops the read
// early.
func ParseFileList(src Source, currentLine string, count int) []string {
	if count < 1 {
		return nil
	}
	first, _ := linerec.FirstToken(currentLine)
	entries := []string{first}

	for len(entries) < count {
		line, ok := src.NextLine()
		if !ok {
			break
		}
		tok, _ := linerec.FirstToken(line)
		if tok == "" {
			break
		}
		entries = append(entries, tok)
	}
	return entries
}

// ParseOutputList reads the trailing output-variable section: one variable
// per line until a line whose first token is END, or end of input. Blank
// lines are skipped. Each entry's name is the first token re-wrapped in
// literal quotes; the comment is the verbatim remainder of the line, or a
// single space when nothing follows the name.
func ParseOutputList(src Source) []OutputVar {
	vars := []OutputVar{}
	for {
		line, ok := src.NextLine()
		if !ok {
			return vars
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		tok, rest := linerec.FirstToken(line)
		if strings.EqualFold(tok, "END") {
			return vars
		}
		comment := rest
		if comment == "" {
			comment = " "
		}
		vars = append(vars, OutputVar{Name: `"` + tok + `"`, Comment: comment})
	}
}

func numericRow(line string, cols int) ([]cty.Value, bool) {
	fields := linerec.Fields(line)
	if len(fields) < cols {
		return nil, false
	}
	row := make([]cty.Value, cols)
	for i, f := range fields[:cols] {
		n, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, false
		}
		row[i] = cty.NumberFloatVal(n)
	}
	return row, true
}
