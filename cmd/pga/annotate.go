package main

import (
	"os"
	"path/filepath"

	pipeline "github.com/Kouyos-Group/Pipeline-GenomeAnalysis"
)

// Command to annotate the assembled contigs of each strain. The
// output directory is named after the strain, so the annotation base
// folder itself defines the strain collection.
type cmdAnnotate struct {
	cmdConfig // embed cmdConfig.
}

// Run command.
func (cmd *cmdAnnotate) Run(args []string) {
	cmd.ParseConfig()
	assemblyBase := filepath.Join(*cmd.workspace, cmd.assemblyBase)
	annotBase := filepath.Join(*cmd.workspace, cmd.annotBase)
	MakeDir(annotBase)

	entries, err := os.ReadDir(assemblyBase)
	if err != nil {
		ERROR.Fatalln(err)
	}

	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		name := e.Name()
		contigs := filepath.Join(assemblyBase, name, "contigs.fasta")
		if _, err := os.Stat(contigs); err != nil {
			WARN.Printf("%s has no contigs.fasta, skipping\n", name)
			continue
		}
		outDir := filepath.Join(annotBase, name)
		if pipeline.IsOutputExist(outDir) {
			INFO.Printf("%s is already annotated, skipping\n", name)
			continue
		}
		INFO.Printf("annotating %s\n", name)
		pipeline.RunProkka(contigs, outDir, name)
	}
}
