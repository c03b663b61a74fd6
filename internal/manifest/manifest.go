// internal/manifest/manifest.go

// Package manifest loads the HCL file that describes a multi-deck merge:
// which deck files to parse, in what order, and how many header lines each
// one carries. The decks listed here are parsed sequentially into one
// logical document.
package manifest

import (
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Deck is one `deck "name" { ... }` block. Path is resolved relative to
// the manifest file's directory.
type Deck struct {
	Name        string `hcl:"name,label"`
	Path        string `hcl:"path"`
	HeaderLines int    `hcl:"header_lines,optional"`
}

// root is the decode target for a whole manifest file.
type root struct {
	Decks []*Deck `hcl:"deck,block"`
}

// Load parses and validates a manifest file. Deck order follows block
// declaration order; duplicate block labels are rejected.
func Load(path string) ([]*Deck, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, diags)
	}

	var r root
	if diags := gohcl.DecodeBody(file.Body, nil, &r); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode manifest %s: %w", path, diags)
	}
	if len(r.Decks) == 0 {
		return nil, fmt.Errorf("manifest %s declares no decks", path)
	}

	base := filepath.Dir(path)
	seen := make(map[string]bool, len(r.Decks))
	for _, d := range r.Decks {
		if seen[d.Name] {
			return nil, fmt.Errorf("manifest %s declares deck %q twice", path, d.Name)
		}
		seen[d.Name] = true

		if d.HeaderLines < 0 {
			return nil, fmt.Errorf("deck %q: header_lines must be non-negative", d.Name)
		}
		if !filepath.IsAbs(d.Path) {
			d.Path = filepath.Join(base, d.Path)
		}
	}
	return r.Decks, nil
}
