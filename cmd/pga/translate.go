package main

import (
	"path/filepath"

	"github.com/Kouyos-Group/Pipeline-GenomeAnalysis/mutation"
	"github.com/Kouyos-Group/Pipeline-GenomeAnalysis/ortho"
	"github.com/Kouyos-Group/Pipeline-GenomeAnalysis/strain"
	"github.com/Kouyos-Group/Pipeline-GenomeAnalysis/variant"
)

// Command to translate the core variant sites into the per-gene
// sequence extracts and the consolidated amino-acid matrix.
type cmdTranslate struct {
	cmdConfig // embed cmdConfig.
}

// Run command.
func (cmd *cmdTranslate) Run(args []string) {
	cmd.ParseConfig()
	annotBase := filepath.Join(*cmd.workspace, cmd.annotBase)
	outBase := filepath.Join(*cmd.workspace, cmd.outBase)
	MakeDir(outBase)

	strains, err := strain.Collect(annotBase)
	if err != nil {
		ERROR.Fatalln(err)
	}
	if len(strains) == 0 {
		ERROR.Fatalf("no annotation directories found in %s\n", annotBase)
	}

	variants, err := variant.ReadTable(filepath.Join(*cmd.workspace, cmd.variantTable))
	if err != nil {
		ERROR.Fatalln(err)
	}
	orthologs, err := ortho.ReadTable(filepath.Join(*cmd.workspace, cmd.panTable))
	if err != nil {
		ERROR.Fatalln(err)
	}

	if cmd.reference != "" {
		// Positions are computed against the external reference, but
		// the reference is not a member of the strain collection and
		// therefore never a column of the matrix.
		WARN.Printf("reference %s has no column in %s\n", cmd.reference, mutation.MatrixFileName)
	}

	builder := mutation.NewBuilder(strains, variants, orthologs, outBase)
	builder.ShowProgress = cmd.showProgress
	if err := builder.Run(); err != nil {
		ERROR.Fatalln(err)
	}

	INFO.Printf("mutation outputs were saved to %s\n", outBase)
}
