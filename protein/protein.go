// Package protein indexes the translated protein records of one
// strain's annotation, keyed by locus identifier.
package protein

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mingzhi/biogo/seq"
)

// Record is one entry of a protein annotation file.
type Record struct {
	Header string // full header line, without the leading '>'.
	ID     string // first whitespace-delimited token of the header.
	Seq    string // amino-acid letters, no internal whitespace.
}

// Index holds the protein records of one annotation file. The zero
// value is an empty index; every lookup on it reports not found.
type Index struct {
	records []Record
	byID    map[string]int
}

// ReadFile builds an index from a .faa file.
func ReadFile(fileName string) (*Index, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("protein: open %s: %v", fileName, err)
	}
	defer f.Close()

	x, err := NewIndex(f)
	if err != nil {
		return nil, fmt.Errorf("protein: read %s: %v", fileName, err)
	}

	return x, nil
}

// NewIndex reads FASTA records from r and indexes them by the first
// header token. For duplicated identifiers the first record wins,
// matching a scan from the top of the file.
func NewIndex(r io.Reader) (*Index, error) {
	fastaRd := seq.NewFastaReader(r)
	seqs, err := fastaRd.ReadAll()
	if err != nil {
		return nil, err
	}

	x := &Index{byID: make(map[string]int)}
	for _, s := range seqs {
		header := strings.TrimSpace(s.Id)
		if header == "" {
			continue
		}
		rec := Record{
			Header: header,
			ID:     strings.Fields(header)[0],
			Seq:    strings.Join(strings.Fields(string(s.Seq)), ""),
		}
		x.records = append(x.records, rec)
		if _, found := x.byID[rec.ID]; !found {
			x.byID[rec.ID] = len(x.records) - 1
		}
	}

	return x, nil
}

// Get returns the amino-acid sequence recorded for a locus
// identifier. An exact match on the header's first token always wins;
// otherwise the first record whose header contains id as a substring
// is returned, which tolerates locus-tag prefixes and suffixes the
// way the annotation tools emit them. The second return is false when
// no record matches.
func (x *Index) Get(id string) (string, bool) {
	if id == "" {
		return "", false
	}
	if i, found := x.byID[id]; found {
		return x.records[i].Seq, true
	}
	for _, rec := range x.records {
		if strings.Contains(rec.Header, id) {
			return rec.Seq, true
		}
	}

	return "", false
}

// Len reports the number of indexed records.
func (x *Index) Len() int {
	return len(x.records)
}
