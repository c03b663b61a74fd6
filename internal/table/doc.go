// internal/table/doc.go

/*
Package table holds the four sub-parsers for the structured sections that a
deck embeds between its scalar records: numeric property tables, the
mixed-type blade-node table, quoted filename lists, and the trailing
output-variable list.

Each parser consumes lines directly from the scanner's cursor through the
Source interface and returns control when its section is done. Running out
of input mid-section is not an error: the parsers return whatever rows they
accumulated, and callers that need strictness compare the returned row
count against the one they requested. The format tolerates a short trailing
section and that tolerance is part of the contract.

Cells are cty values restricted to cty.Number and cty.String, so a
downstream consumer matches the two arms exhaustively instead of poking at
an untyped container.
*/
package table
