package mutation

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Kouyos-Group/Pipeline-GenomeAnalysis/ortho"
	"github.com/Kouyos-Group/Pipeline-GenomeAnalysis/strain"
	"github.com/Kouyos-Group/Pipeline-GenomeAnalysis/variant"
)

const panHeader = `"Gene","Non-unique Gene name","Annotation","No. isolates","No. sequences","Avg sequences per isolate","Genome Fragment","Order within Fragment","Accessory Fragment","Accessory Order with Fragment","QC","Min group size nuc","Max group size nuc","Avg group size nuc","S1","S2"`

const meta14 = `"","","","","","","","","","","","","",`

// writeAnnot lays out an annotation base directory with one .faa per
// strain.
func writeAnnot(t *testing.T, faas map[string]string) string {
	t.Helper()
	base := t.TempDir()
	for name, content := range faas {
		dir := filepath.Join(base, name)
		if err := os.Mkdir(dir, 0755); err != nil {
			t.Fatal(err)
		}
		if content == "" {
			continue
		}
		if err := os.WriteFile(filepath.Join(dir, name+".faa"), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return base
}

func newTestBuilder(t *testing.T, annotBase, variantTable, panTable, outDir string) *Builder {
	t.Helper()
	strains, err := strain.Collect(annotBase)
	if err != nil {
		t.Fatal(err)
	}
	variants, err := variant.ReadFrom(strings.NewReader(variantTable))
	if err != nil {
		t.Fatal(err)
	}
	orthologs, err := ortho.ReadFrom(strings.NewReader(panTable))
	if err != nil {
		t.Fatal(err)
	}
	return NewBuilder(strains, variants, orthologs, outDir)
}

func TestWriteMatrix(t *testing.T) {
	annotBase := writeAnnot(t, map[string]string{
		"S1": ">locus_S1_7 hypothetical protein\nMKTAYIAK\n",
		"S2": ">locus_S2_9 hypothetical protein\nWWWWWWWW\n",
	})
	outDir := t.TempDir()

	// geneA is present in S1 only; position 4 falls in codon 2, where
	// S1 carries T. The second site's codon index lies past the end of
	// the sequence, so both fields stay empty.
	variantTable := "Gene\tPosition\ngeneA\t4\ngeneA\t25\n"
	panTable := panHeader + "\n" + `"geneA",` + meta14 + `"locus_S1_7",""` + "\n"

	b := newTestBuilder(t, annotBase, variantTable, panTable, outDir)
	if err := b.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(outDir, MatrixFileName))
	if err != nil {
		t.Fatal(err)
	}
	want := "Gene\tPosition\ngeneA\t2\tT\t\ngeneA\t9\t\t\n"
	if string(data) != want {
		t.Errorf("matrix = %q, want %q", data, want)
	}

	// One row per variant site, 2 + strain count columns per row.
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 1+len(b.Variants.Sites) {
		t.Fatalf("matrix has %d lines, want %d", len(lines), 1+len(b.Variants.Sites))
	}
	for _, line := range lines[1:] {
		if got := len(strings.Split(line, "\t")); got != 2+len(b.Strains) {
			t.Errorf("row %q has %d columns, want %d", line, got, 2+len(b.Strains))
		}
	}
}

func TestWriteMatrixIdempotent(t *testing.T) {
	annotBase := writeAnnot(t, map[string]string{
		"S1": ">locus_S1_7\nMKTAYIAK\n",
		"S2": ">locus_S2_9\nWWWWWWWW\n",
	})
	outDir := t.TempDir()

	variantTable := "Gene\tPosition\ngeneA\t4\n"
	panTable := panHeader + "\n" + `"geneA",` + meta14 + `"locus_S1_7","locus_S2_9"` + "\n"

	b := newTestBuilder(t, annotBase, variantTable, panTable, outDir)
	if err := b.Run(); err != nil {
		t.Fatalf("first Run() error = %v", err)
	}
	first, err := os.ReadFile(filepath.Join(outDir, MatrixFileName))
	if err != nil {
		t.Fatal(err)
	}

	if err := b.Run(); err != nil {
		t.Fatalf("second Run() error = %v", err)
	}
	second, err := os.ReadFile(filepath.Join(outDir, MatrixFileName))
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(first, second) {
		t.Error("re-running produced different matrix bytes")
	}
}

func TestWriteGeneSeqs(t *testing.T) {
	// Both strains carry geneA under their own locus tags; the third
	// strain does not and must be omitted from the extract.
	annotBase := writeAnnot(t, map[string]string{
		"strain1": ">geneA_00010 hypothetical protein\nMKTAYIAK\n",
		"strain2": ">geneA_00020 hypothetical protein\nAAAA\n",
		"strain3": ">other_00030 hypothetical protein\nCCCC\n",
	})
	outDir := t.TempDir()

	variantTable := "Gene\tPosition\ngeneA\t4\n"
	panTable := strings.Replace(panHeader, `"S1","S2"`, `"strain1","strain2","strain3"`, 1) + "\n" +
		`"geneA",` + meta14 + `"geneA_00010","geneA_00020",""` + "\n"

	b := newTestBuilder(t, annotBase, variantTable, panTable, outDir)
	if err := b.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(outDir, GeneFileName("geneA")))
	if err != nil {
		t.Fatal(err)
	}
	want := ">strain1_geneA\nMKTAYIAK\n>strain2_geneA\nAAAA\n"
	if string(data) != want {
		t.Errorf("extract = %q, want %q", data, want)
	}

	// Stale records must not survive a re-run.
	if err := b.WriteGeneSeqs(); err != nil {
		t.Fatalf("second WriteGeneSeqs() error = %v", err)
	}
	again, err := os.ReadFile(filepath.Join(outDir, GeneFileName("geneA")))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, again) {
		t.Error("re-running appended to the extract file")
	}
}

func TestRunSchemaMismatch(t *testing.T) {
	annotBase := writeAnnot(t, map[string]string{
		"S1": ">locus_S1_7\nMKTAYIAK\n",
		"S2": ">locus_S2_9\nWWWWWWWW\n",
	})
	outDir := t.TempDir()

	variantTable := "Gene\tPosition\ngeneA\t4\n"
	// Table columns in the reverse of collection order.
	panTable := strings.Replace(panHeader, `"S1","S2"`, `"S2","S1"`, 1) + "\n" +
		`"geneA",` + meta14 + `"locus_S2_9","locus_S1_7"` + "\n"

	b := newTestBuilder(t, annotBase, variantTable, panTable, outDir)
	err := b.Run()
	if err == nil {
		t.Fatal("Run() accepted misaligned strain columns")
	}
	if !errors.Is(err, ortho.ErrSchemaMismatch) {
		t.Errorf("Run() error = %v, want ErrSchemaMismatch", err)
	}
}

func TestStrainWithoutFaa(t *testing.T) {
	// S2 has an annotation directory but no .faa file: every lookup
	// against it reports not found, yielding empty fields.
	annotBase := writeAnnot(t, map[string]string{
		"S1": ">locus_S1_7\nMKTAYIAK\n",
		"S2": "",
	})
	outDir := t.TempDir()

	variantTable := "Gene\tPosition\ngeneA\t1\n"
	panTable := panHeader + "\n" + `"geneA",` + meta14 + `"locus_S1_7","locus_S2_9"` + "\n"

	b := newTestBuilder(t, annotBase, variantTable, panTable, outDir)
	if err := b.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(outDir, MatrixFileName))
	if err != nil {
		t.Fatal(err)
	}
	want := "Gene\tPosition\ngeneA\t1\tM\t\n"
	if string(data) != want {
		t.Errorf("matrix = %q, want %q", data, want)
	}
}
