// internal/table/table.go
package table

import (
	"encoding/json"
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// Source is the scanner's forward-only line cursor. NextLine reports false
// when input is exhausted; a parser never pushes a line back.
type Source interface {
	NextLine() (line string, ok bool)
}

// Table is one parsed tabular section: ordered column headers and a matrix
// of cells, one row per data line consumed. Numeric tables hold only
// cty.Number cells; mixed tables hold cty.Number or cty.String per cell.
type Table struct {
	Headers []string
	Rows    [][]cty.Value
}

// Cols returns the column count, which always equals the header count.
func (t *Table) Cols() int {
	return len(t.Headers)
}

// Float returns the numeric value of the cell at (row, col). It reports
// false for a text cell.
func (t *Table) Float(row, col int) (float64, bool) {
	v := t.Rows[row][col]
	if v.Type() != cty.Number {
		return 0, false
	}
	f, _ := v.AsBigFloat().Float64()
	return f, true
}

// MatchCell dispatches on a cell's variant arm. Cells are only ever
// cty.Number or cty.String, so the two callbacks cover every case.
func MatchCell(v cty.Value, num func(float64), str func(string)) {
	if v.Type() == cty.Number {
		f, _ := v.AsBigFloat().Float64()
		num(f)
		return
	}
	str(v.AsString())
}

// MarshalJSON renders the table with each cell as a JSON number or string
// according to its variant arm.
func (t *Table) MarshalJSON() ([]byte, error) {
	rows := make([][]any, len(t.Rows))
	for i, row := range t.Rows {
		cells := make([]any, len(row))
		for j, v := range row {
			MatchCell(v,
				func(f float64) { cells[j] = f },
				func(s string) { cells[j] = s },
			)
		}
		rows[i] = cells
	}
	return json.Marshal(struct {
		Headers []string `json:"headers"`
		Rows    [][]any  `json:"rows"`
	}{Headers: t.Headers, Rows: rows})
}

// OutputVar is one entry of the trailing output-variable list: the quoted
// variable name and the verbatim trailing comment.
type OutputVar struct {
	Name    string `json:"name"`
	Comment string `json:"comment"`
}

// String implements fmt.Stringer for diagnostics.
func (v OutputVar) String() string {
	return fmt.Sprintf("%s%s", v.Name, v.Comment)
}
