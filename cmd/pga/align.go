package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	pipeline "github.com/Kouyos-Group/Pipeline-GenomeAnalysis"
	"github.com/Kouyos-Group/Pipeline-GenomeAnalysis/mutation"
	"github.com/Kouyos-Group/Pipeline-GenomeAnalysis/variant"
)

// Command to align the per-gene sequence extracts with muscle.
type cmdAlign struct {
	cmdConfig // embed cmdConfig.
}

// Run command.
func (cmd *cmdAlign) Run(args []string) {
	cmd.ParseConfig()
	outBase := filepath.Join(*cmd.workspace, cmd.outBase)

	variants, err := variant.ReadTable(filepath.Join(*cmd.workspace, cmd.variantTable))
	if err != nil {
		ERROR.Fatalln(err)
	}

	for _, gene := range variants.Genes() {
		fileName := filepath.Join(outBase, mutation.GeneFileName(gene))
		if _, err := os.Stat(fileName); err != nil {
			WARN.Printf("no extract for %s, skipping\n", gene)
			continue
		}

		alns, err := pipeline.MultiAlign(fileName, pipeline.Muscle)
		if err != nil {
			ERROR.Fatalln(err)
		}

		outName := strings.TrimSuffix(fileName, ".txt") + "_aln.txt"
		w, err := os.Create(outName)
		if err != nil {
			ERROR.Fatalln(err)
		}
		for _, aln := range alns {
			fmt.Fprintf(w, ">%s\n%s\n", aln.Id, aln.Seq)
		}
		w.Close()
		INFO.Printf("alignment of %s was saved to %s\n", gene, outName)
	}
}
