// internal/labelindex/labelindex.go

// Package labelindex accumulates the scalar records seen so far during a
// deck scan and resolves table-size references against them.
//
// The deck format sizes its embedded tables with scalar records that appear
// earlier in the same document, so the scanner needs an ordered, queryable
// view of everything it has read. Lookup is first-match by label,
// case-insensitive, and fails loudly when the reference is missing or the
// matched value is not numeric; it never defaults.
package labelindex

import (
	"fmt"
	"strconv"
	"strings"
)

// UnresolvedReferenceError reports a table-size label that could not be
// resolved to a numeric value.
type UnresolvedReferenceError struct {
	Label  string
	Reason string
}

// Error implements the error interface for UnresolvedReferenceError.
func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("unresolved reference %q: %s", e.Label, e.Reason)
}

// Index is an insertion-ordered sequence of (label, value) pairs. Duplicate
// labels are appended, not overwritten; Lookup returns the first match.
type Index struct {
	labels []string
	values []string
}

// New creates an empty index.
func New() *Index {
	return &Index{}
}

// Seed creates an index pre-populated with existing pairs, used when a
// parse appends into a document that already holds records. The slices are
// copied; the caller's backing arrays are not shared.
func Seed(labels, values []string) *Index {
	x := &Index{
		labels: make([]string, len(labels)),
		values: make([]string, len(values)),
	}
	copy(x.labels, labels)
	copy(x.values, values)
	return x
}

// Record appends one (label, value) pair.
func (x *Index) Record(label, value string) {
	x.labels = append(x.labels, label)
	x.values = append(x.values, value)
}

// Len returns the number of recorded pairs.
func (x *Index) Len() int {
	return len(x.labels)
}

// Lookup scans pairs in insertion order and returns the first value whose
// label matches name case-insensitively, coerced to a number. A missing
// label or a non-numeric value is an UnresolvedReferenceError.
func (x *Index) Lookup(name string) (float64, error) {
	for i, label := range x.labels {
		if !strings.EqualFold(label, name) {
			continue
		}
		n, err := strconv.ParseFloat(strings.Trim(x.values[i], `"`), 64)
		if err != nil {
			return 0, &UnresolvedReferenceError{
				Label:  name,
				Reason: fmt.Sprintf("value %q is not numeric", x.values[i]),
			}
		}
		return n, nil
	}
	return 0, &UnresolvedReferenceError{Label: name, Reason: "no prior record with that label"}
}
