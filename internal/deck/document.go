// internal/deck/document.go
package deck

import "github.com/vk/fastdeck/internal/table"

// Names of the tabular sections a deck can carry, used as keys in
// Document.Tables.
const (
	TableTowerProps = "TowProp"
	TableBladeProps = "BldProp"
	TableDLLTorque  = "DLLProp"
	TableBladeNodes = "BldNodes"
)

// Document is the structured result of scanning one or more decks. It is
// built incrementally during the scan and never mutated afterwards.
//
// Label and Val are parallel: Val[i] is the raw value of the scalar record
// labeled Label[i], in file order. Duplicate labels keep both entries.
type Document struct {
	HdrLines []string `json:"hdr_lines,omitempty"`
	Label    []string `json:"label"`
	Val      []string `json:"val"`

	// Tables maps section name to its parsed table. The tower, blade, and
	// DLL torque tables hold only number cells; the blade-node table mixes
	// numbers and text per cell.
	Tables map[string]*table.Table `json:"tables,omitempty"`

	// FoilNm lists airfoil data files, one entry per expected foil.
	FoilNm []string `json:"foil_nm,omitempty"`

	// OutList holds the trailing output-variable section. Empty but
	// non-nil when the section was present with no entries.
	OutList []table.OutputVar `json:"out_list,omitempty"`
}

// NewDocument creates an empty document ready to be appended into.
func NewDocument() *Document {
	return &Document{Tables: make(map[string]*table.Table)}
}

// record appends one scalar record to the parallel label/value sequences.
func (d *Document) record(label, value string) {
	d.Label = append(d.Label, label)
	d.Val = append(d.Val, value)
}

// attach stores a parsed table under its section name.
func (d *Document) attach(name string, t *table.Table) {
	if d.Tables == nil {
		d.Tables = make(map[string]*table.Table)
	}
	d.Tables[name] = t
}
