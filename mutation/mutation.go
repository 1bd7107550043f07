// Package mutation translates nucleotide-level variant sites into the
// per-strain amino-acid matrix and the per-gene sequence extracts.
package mutation

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Kouyos-Group/Pipeline-GenomeAnalysis/ortho"
	"github.com/Kouyos-Group/Pipeline-GenomeAnalysis/protein"
	"github.com/Kouyos-Group/Pipeline-GenomeAnalysis/strain"
	"github.com/Kouyos-Group/Pipeline-GenomeAnalysis/variant"
	"gopkg.in/cheggaaa/pb.v1"
)

// MatrixFileName is the consolidated output of WriteMatrix.
const MatrixFileName = "SNPs_AA_allgenes.txt"

// Builder assembles the mutation outputs for one run. Strains must be
// in collection order; it fixes the column order of the matrix.
type Builder struct {
	Strains   []strain.Strain
	Variants  *variant.Table
	Orthologs *ortho.Table
	OutDir    string

	// ShowProgress draws a progress bar over the variant sites.
	ShowProgress bool

	indexes map[string]*protein.Index // strain name -> .faa index.
}

// NewBuilder returns a Builder over the given inputs.
func NewBuilder(strains []strain.Strain, variants *variant.Table, orthologs *ortho.Table, outDir string) *Builder {
	return &Builder{
		Strains:   strains,
		Variants:  variants,
		Orthologs: orthologs,
		OutDir:    outDir,
		indexes:   make(map[string]*protein.Index),
	}
}

// Run verifies the table schema against the strain collection, then
// writes the per-gene extracts and the consolidated matrix.
func (b *Builder) Run() error {
	if err := b.Orthologs.Verify(strain.Names(b.Strains)); err != nil {
		return err
	}
	if err := b.WriteGeneSeqs(); err != nil {
		return err
	}

	return b.WriteMatrix()
}

// GeneFileName names the extract file of one gene.
func GeneFileName(gene string) string {
	return "SNPs_AA_" + gene + ".txt"
}

// WriteGeneSeqs writes one multi-record sequence file per mutated
// gene: for every strain carrying the gene under its own name, a
// >strain_gene header and the sequence on a single line. Each file is
// truncated first, so re-running never mixes old and new records.
// Strains without a matching record are omitted; the gene is
// genuinely absent there.
func (b *Builder) WriteGeneSeqs() error {
	for _, gene := range b.Variants.Genes() {
		fileName := filepath.Join(b.OutDir, GeneFileName(gene))
		w, err := os.Create(fileName)
		if err != nil {
			return fmt.Errorf("mutation: create %s: %v", fileName, err)
		}

		for _, s := range b.Strains {
			x, err := b.index(s)
			if err != nil {
				w.Close()
				return err
			}
			aa, found := x.Get(gene)
			if !found {
				continue
			}
			fmt.Fprintf(w, ">%s_%s\n%s\n", s.Name, gene, aa)
		}

		if err := w.Close(); err != nil {
			return fmt.Errorf("mutation: write %s: %v", fileName, err)
		}
	}

	return nil
}

// WriteMatrix writes the consolidated amino-acid matrix: the variant
// table's original header line, then one tab-separated row per site
// with the gene, the codon index and the residue each strain carries
// there. Missing orthologs and missing records yield empty fields.
// Identical inputs produce byte-identical output.
func (b *Builder) WriteMatrix() error {
	fileName := filepath.Join(b.OutDir, MatrixFileName)
	f, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("mutation: create %s: %v", fileName, err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)

	fmt.Fprintln(w, b.Variants.Header)

	var bar *pb.ProgressBar
	if b.ShowProgress {
		bar = pb.StartNew(len(b.Variants.Sites))
		defer bar.Finish()
	}

	fields := make([]string, 0, 2+len(b.Strains))
	for _, site := range b.Variants.Sites {
		aaPos, err := variant.CodonIndex(site.NtPos)
		if err != nil {
			return err
		}

		fields = fields[:0]
		fields = append(fields, site.Gene, strconv.Itoa(aaPos))
		for _, s := range b.Strains {
			aa, err := b.aminoAcid(site.Gene, aaPos, s)
			if err != nil {
				return err
			}
			fields = append(fields, aa)
		}
		fmt.Fprintln(w, strings.Join(fields, "\t"))

		if bar != nil {
			bar.Increment()
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("mutation: write %s: %v", fileName, err)
	}

	return nil
}

// aminoAcid returns the residue strain s carries at the mutated
// codon, or empty when the ortholog or its record is missing, or the
// resolved sequence is shorter than the codon index.
func (b *Builder) aminoAcid(gene string, aaPos int, s strain.Strain) (string, error) {
	locus, found := b.Orthologs.Resolve(gene, s.Name)
	if !found {
		return "", nil
	}

	x, err := b.index(s)
	if err != nil {
		return "", err
	}
	aa, found := x.Get(locus)
	if !found || aaPos > len(aa) {
		return "", nil
	}

	return string(aa[aaPos-1]), nil
}

// index loads and caches the protein index of one strain. A strain
// without a .faa file gets an empty index, so every lookup against it
// reports not found.
func (b *Builder) index(s strain.Strain) (*protein.Index, error) {
	if x, found := b.indexes[s.Name]; found {
		return x, nil
	}

	var x *protein.Index
	if s.FaaPath == "" {
		x = &protein.Index{}
	} else {
		var err error
		x, err = protein.ReadFile(s.FaaPath)
		if err != nil {
			return nil, err
		}
	}
	b.indexes[s.Name] = x

	return x, nil
}
