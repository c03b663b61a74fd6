// internal/linerec/doc.go

/*
Package linerec classifies one raw line of a simulation input deck into a
structured record.

A deck line is either a comment (blank lines, separator rules, and lines
opened by a comment character) or a scalar record of the form

	value  Label  - free-form description

The first token is the value, the second the label, and everything after
the label is kept verbatim as the description. Double-quoted tokens are
atomic and the quotes are preserved on the value, because quoted values
are how table header lines announce themselves to the scanner.
*/
package linerec
