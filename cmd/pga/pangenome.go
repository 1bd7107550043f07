package main

import (
	"path/filepath"

	pipeline "github.com/Kouyos-Group/Pipeline-GenomeAnalysis"
	"github.com/Kouyos-Group/Pipeline-GenomeAnalysis/strain"
)

// Command to compare the annotated genomes and build the pan-genome
// presence/absence table.
type cmdPanGenome struct {
	cmdConfig // embed cmdConfig.
}

// Run command.
func (cmd *cmdPanGenome) Run(args []string) {
	cmd.ParseConfig()
	annotBase := filepath.Join(*cmd.workspace, cmd.annotBase)

	strains, err := strain.Collect(annotBase)
	if err != nil {
		ERROR.Fatalln(err)
	}
	if len(strains) == 0 {
		ERROR.Fatalf("no annotation directories found in %s\n", annotBase)
	}

	// Strain order and table column order both derive from the same
	// alphabetical directory listing.
	gffs := []string{}
	for _, s := range strains {
		gff := filepath.Join(s.Path, s.Name+".gff")
		gffs = append(gffs, gff)
	}

	outDir := filepath.Join(annotBase, "roary_output")
	if pipeline.IsOutputExist(outDir) {
		INFO.Printf("%s already exists, skipping pan-genome step\n", outDir)
		return
	}
	INFO.Printf("comparing %d genomes\n", len(strains))
	pipeline.RunRoary(outDir, gffs...)
}
