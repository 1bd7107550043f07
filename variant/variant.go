// Package variant reads the core variant table and maps nucleotide
// positions to codon indexes.
package variant

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Site is one row of the core variant table: a mutated gene and the
// 1-based nucleotide offset of the mutation within its coding sequence.
type Site struct {
	Gene  string
	NtPos int
}

// Table is the parsed core variant table.
type Table struct {
	Header string // original header line, reproduced in outputs.
	Sites  []Site // in table row order.
}

// CodonIndex converts a 1-based nucleotide offset within a coding
// sequence into the 1-based index of the codon containing it.
// Codon boundaries are [1-3], [4-6], and so on.
func CodonIndex(ntPos int) (int, error) {
	if ntPos < 1 {
		return 0, fmt.Errorf("variant: nucleotide position %d is not positive", ntPos)
	}

	return (ntPos + 2) / 3, nil
}

// ReadTable reads the core variant table from a file.
func ReadTable(fileName string) (*Table, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("variant: open %s: %v", fileName, err)
	}
	defer f.Close()

	return ReadFrom(f)
}

// ReadFrom parses a tab-delimited variant table: a header line, then
// one row per site with the gene name in column 1 and the nucleotide
// position in column 2. Later columns are ignored. Each row becomes
// one Site, so gene and position can never skew apart.
func ReadFrom(r io.Reader) (*Table, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("variant: read table: %v", err)
		}
		return nil, fmt.Errorf("variant: table is empty")
	}
	t := &Table{Header: scanner.Text()}

	line := 1
	for scanner.Scan() {
		line++
		row := scanner.Text()
		if strings.TrimSpace(row) == "" {
			continue
		}

		fields := strings.Split(row, "\t")
		if len(fields) < 2 {
			return nil, fmt.Errorf("variant: line %d: expect at least 2 columns, got %q", line, row)
		}

		gene := strings.TrimSpace(fields[0])
		if gene == "" {
			return nil, fmt.Errorf("variant: line %d: empty gene name", line)
		}

		pos, err := strconv.Atoi(strings.TrimSpace(fields[1]))
		if err != nil {
			return nil, fmt.Errorf("variant: line %d: bad position %q", line, fields[1])
		}
		if pos < 1 {
			return nil, fmt.Errorf("variant: line %d: position %d is not positive", line, pos)
		}

		t.Sites = append(t.Sites, Site{Gene: gene, NtPos: pos})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("variant: read table: %v", err)
	}

	return t, nil
}

// Genes returns the distinct genes of the table in first-appearance
// order.
func (t *Table) Genes() []string {
	seen := make(map[string]bool)
	genes := []string{}
	for _, s := range t.Sites {
		if !seen[s.Gene] {
			seen[s.Gene] = true
			genes = append(genes, s.Gene)
		}
	}

	return genes
}
