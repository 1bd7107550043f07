package main

import (
	"path/filepath"

	pipeline "github.com/Kouyos-Group/Pipeline-GenomeAnalysis"
	"github.com/Kouyos-Group/Pipeline-GenomeAnalysis/strain"
)

// Command to call variants of every strain against the reference and
// aggregate them into the core variant table.
type cmdSnp struct {
	cmdConfig // embed cmdConfig.
}

// Run command.
func (cmd *cmdSnp) Run(args []string) {
	cmd.ParseConfig()
	if cmd.reference == "" {
		ERROR.Fatalln("variant.reference is required for the snp command")
	}
	ref := filepath.Join(*cmd.workspace, cmd.reference)
	annotBase := filepath.Join(*cmd.workspace, cmd.annotBase)
	assemblyBase := filepath.Join(*cmd.workspace, cmd.assemblyBase)

	strains, err := strain.Collect(annotBase)
	if err != nil {
		ERROR.Fatalln(err)
	}

	outDirs := []string{}
	for _, s := range strains {
		contigs := filepath.Join(assemblyBase, s.Name, "contigs.fasta")
		outDir := filepath.Join(annotBase, "snippy_"+s.Name)
		outDirs = append(outDirs, outDir)
		if pipeline.IsOutputExist(outDir) {
			INFO.Printf("variants of %s already called, skipping\n", s.Name)
			continue
		}
		INFO.Printf("calling variants of %s\n", s.Name)
		pipeline.RunSnippy(outDir, ref, contigs)
	}

	INFO.Println("aggregating core variants")
	pipeline.RunSnippyCore(ref, outDirs...)
}
