// internal/deck/scanner.go
package deck

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vk/fastdeck/internal/ctxlog"
	"github.com/vk/fastdeck/internal/labelindex"
	"github.com/vk/fastdeck/internal/linerec"
	"github.com/vk/fastdeck/internal/table"
)

// Options control one parse pass.
type Options struct {
	// HeaderLines is the number of leading lines consumed before record
	// scanning starts.
	HeaderLines int
	// KeepHeader stores the consumed header lines verbatim on the
	// document. Ignored when appending into an existing document.
	KeepHeader bool
}

// ParseFile opens and parses one deck into a fresh document. A file that
// cannot be opened is the one fatal boundary condition; the error names the
// file.
func ParseFile(ctx context.Context, name string, opts Options) (*Document, error) {
	doc := NewDocument()
	if err := parseFile(ctx, name, opts, doc, opts.KeepHeader); err != nil {
		return nil, err
	}
	return doc, nil
}

// ParseFileInto opens and parses one deck, appending its records into an
// existing document. Header lines are consumed but not stored, and prior
// Label/Val entries are preserved with the new ones appended after them.
func ParseFileInto(ctx context.Context, name string, opts Options, doc *Document) error {
	return parseFile(ctx, name, opts, doc, false)
}

// Parse reads a deck from r into a fresh document.
func Parse(ctx context.Context, r io.Reader, opts Options) (*Document, error) {
	doc := NewDocument()
	if err := scan(ctx, r, opts, doc, opts.KeepHeader); err != nil {
		return nil, err
	}
	return doc, nil
}

// ParseInto reads a deck from r, appending into doc. Header lines are
// consumed but not stored.
func ParseInto(ctx context.Context, r io.Reader, opts Options, doc *Document) error {
	return scan(ctx, r, opts, doc, false)
}

func parseFile(ctx context.Context, name string, opts Options, doc *Document, keepHeader bool) error {
	f, err := os.Open(name)
	if err != nil {
		return fmt.Errorf("open deck %s: %w", name, err)
	}
	defer f.Close()

	ctx = ctxlog.With(ctx, "deck", name)
	return scan(ctx, f, opts, doc, keepHeader)
}

// parserKind selects which sub-parser a trigger dispatches to.
type parserKind int

const (
	numericTable parserKind = iota
	mixedTable
	fileList
)

// trigger describes one recognized table announcement: which record field
// it matches on, which sub-parser runs, where the result attaches, and
// which prior scalar record sizes it.
type trigger struct {
	onLabel   bool
	kind      parserKind
	section   string
	sizeLabel string
	skipUnits bool
}

// triggers is keyed by the lowercased matching token. Value triggers keep
// their surrounding quotes because table header lines carry quoted values.
// Adding a new table means adding a row here, not touching the scan loop.
var triggers = map[string]trigger{
	`"htfract"`:    {kind: numericTable, section: TableTowerProps, sizeLabel: "NTwInpSt"},
	`"blfract"`:    {kind: numericTable, section: TableBladeProps, sizeLabel: "NBlInpSt"},
	`"genspd_tlu"`: {kind: numericTable, section: TableDLLTorque, sizeLabel: "DLL_NumTrq"},
	`"rnodes"`:     {kind: mixedTable, section: TableBladeNodes, sizeLabel: "BldNodes"},
	`foilnm`:       {onLabel: true, kind: fileList, section: "FoilNm", sizeLabel: "NumFoil"},
}

func matchTrigger(rec linerec.Record) (trigger, bool) {
	if trg, ok := triggers[strings.ToLower(rec.Value)]; ok && !trg.onLabel {
		return trg, true
	}
	if trg, ok := triggers[strings.ToLower(rec.Label)]; ok && trg.onLabel {
		return trg, true
	}
	return trigger{}, false
}

// scanner is the forward-only cursor shared between the record loop and
// the table parsers. It implements table.Source.
type scanner struct {
	sc  *bufio.Scanner
	doc *Document
	idx *labelindex.Index
}

// NextLine advances the cursor one line.
func (s *scanner) NextLine() (string, bool) {
	if s.sc.Scan() {
		return s.sc.Text(), true
	}
	return "", false
}

func (s *scanner) record(rec linerec.Record) {
	s.doc.record(rec.Label, rec.Value)
	s.idx.Record(rec.Label, rec.Value)
}

// parseTable resolves the trigger's size reference and runs its sub-parser.
// An unresolvable reference fails the parse: a table cannot be sized.
func (s *scanner) parseTable(trg trigger, headerLine string) error {
	n, err := s.idx.Lookup(trg.sizeLabel)
	if err != nil {
		return fmt.Errorf("sizing table %s: %w", trg.section, err)
	}
	rows := int(n)

	switch trg.kind {
	case numericTable:
		s.doc.attach(trg.section, table.ParseNumeric(s, headerLine, rows))
	case mixedTable:
		s.doc.attach(trg.section, table.ParseMixed(s, headerLine, rows, trg.skipUnits))
	case fileList:
		s.doc.FoilNm = table.ParseFileList(s, headerLine, rows)
	}
	return nil
}

// scan drives the state machine: header lines, then records, until the
// output list or end of input.
func scan(ctx context.Context, r io.Reader, opts Options, doc *Document, keepHeader bool) error {
	logger := ctxlog.FromContext(ctx)
	s := &scanner{
		sc:  bufio.NewScanner(r),
		doc: doc,
		idx: labelindex.Seed(doc.Label, doc.Val),
	}

	for i := 0; i < opts.HeaderLines; i++ {
		line, ok := s.NextLine()
		if !ok {
			break
		}
		if keepHeader {
			doc.HdrLines = append(doc.HdrLines, line)
		}
	}

	for {
		line, ok := s.NextLine()
		if !ok {
			break
		}

		// The output list is defined to be the final section: once its
		// marker appears nothing after it is read.
		if strings.Contains(strings.ToLower(line), "outlist") {
			vars := table.ParseOutputList(s)
			if len(vars) == 0 {
				logger.Warn("Output list section contained no entries.")
			}
			doc.OutList = vars
			break
		}

		rec := linerec.Tokenize(line)
		if rec.IsComment {
			continue
		}
		if trg, ok := matchTrigger(rec); ok {
			if err := s.parseTable(trg, line); err != nil {
				return err
			}
			continue
		}
		s.record(rec)
	}

	if err := s.sc.Err(); err != nil {
		return fmt.Errorf("read deck: %w", err)
	}
	logger.Debug("Deck scan complete.", "records", s.idx.Len(), "tables", len(doc.Tables))
	return nil
}
