// internal/deck/doc.go

/*
Package deck parses simulation input decks into structured documents.

A deck is line-oriented: mostly scalar "value label description" records,
with heterogeneous tables embedded between them. A table announces itself
with a trigger token on its header line, and its row count comes not from
an in-file terminator but from a scalar record parsed earlier in the same
document. The scanner therefore keeps an ordered label index of everything
it has read and resolves each table size against it the moment the trigger
appears.

The scan is a single forward pass. The scanner owns the only cursor over
the input; a table parser borrows that cursor, consumes exactly its own
lines, and hands control back. Nothing ever seeks backward and nothing is
re-read.

Parse reads one deck into a fresh Document. ParseInto appends a deck into
an existing Document, which is how several physical files merge into one
logical document; in that mode header lines are consumed but never stored.
*/
package deck
