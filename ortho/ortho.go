// Package ortho resolves gene names to per-strain locus identifiers
// through the pan-genome presence/absence table.
package ortho

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Number of metadata columns preceding the per-strain columns in a
// presence/absence table produced by the pan-genome step.
const metaColumns = 14

// ErrSchemaMismatch reports that the table's strain columns do not
// line up with the annotation directories. Resolving against a
// misaligned table would corrupt every row, so callers must abort.
var ErrSchemaMismatch = errors.New("ortho: strain columns do not match annotation directories")

// Table maps gene clusters to the locus identifier each strain's
// annotation uses for its member of the cluster.
type Table struct {
	strains []string            // strain names in header column order.
	cols    map[string]int      // strain name -> cell offset.
	rows    map[string][]string // gene name -> per-strain cells.
}

// ReadTable reads the presence/absence table from a file.
func ReadTable(fileName string) (*Table, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("ortho: open %s: %v", fileName, err)
	}
	defer f.Close()

	return ReadFrom(f)
}

// ReadFrom parses the comma-separated, quoted-field presence/absence
// table. The strain columns are taken from the table's own header row
// rather than assumed, so the name-to-column mapping is explicit.
func ReadFrom(r io.Reader) (*Table, error) {
	csvRd := csv.NewReader(r)
	records, err := csvRd.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("ortho: parse table: %v", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("ortho: table is empty")
	}

	header := records[0]
	if len(header) <= metaColumns {
		return nil, fmt.Errorf("ortho: header has %d columns, expect more than %d", len(header), metaColumns)
	}

	t := &Table{
		strains: header[metaColumns:],
		cols:    make(map[string]int),
		rows:    make(map[string][]string),
	}
	for i, name := range t.strains {
		t.cols[name] = i
	}

	for i := 1; i < len(records); i++ {
		row := records[i]
		gene := row[0]
		if _, found := t.rows[gene]; found {
			continue // first row wins for duplicated gene names.
		}
		t.rows[gene] = row[metaColumns:]
	}

	return t, nil
}

// Strains returns the strain names in table column order.
func (t *Table) Strains() []string {
	names := make([]string, len(t.strains))
	copy(names, t.strains)

	return names
}

// Verify checks that names equals the table's strain columns, in both
// membership and order. Both orders derive from the same directory
// listing when the pipeline produced the table; an external table may
// not line up, and silent misalignment would assign every amino acid
// to the wrong strain.
func (t *Table) Verify(names []string) error {
	if len(names) != len(t.strains) {
		return fmt.Errorf("%w: %d directories, %d table columns",
			ErrSchemaMismatch, len(names), len(t.strains))
	}
	for i, name := range names {
		if name != t.strains[i] {
			return fmt.Errorf("%w: column %d is %q, directory is %q",
				ErrSchemaMismatch, i+1, t.strains[i], name)
		}
	}

	return nil
}

// Resolve returns the locus identifier strain's annotation uses for
// gene. The second return is false when the gene is absent from that
// strain's genome or unknown to the table; absence is a normal
// outcome, not an error. A cell listing several locus tags (paralogs
// collapsed into one cluster) resolves to its first tag.
func (t *Table) Resolve(gene, strain string) (string, bool) {
	row, found := t.rows[gene]
	if !found {
		return "", false
	}
	c, found := t.cols[strain]
	if !found || c >= len(row) {
		return "", false
	}

	cell := row[c]
	if i := strings.IndexByte(cell, '\t'); i >= 0 {
		cell = cell[:i]
	}
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return "", false
	}

	return cell, true
}

// Len reports the number of gene rows.
func (t *Table) Len() int {
	return len(t.rows)
}
