package main

import (
	"path/filepath"
	"strings"

	pipeline "github.com/Kouyos-Group/Pipeline-GenomeAnalysis"
)

// Command to assemble raw paired-end reads, one strain per read pair.
type cmdAssemble struct {
	cmdConfig // embed cmdConfig.
}

// Run command.
func (cmd *cmdAssemble) Run(args []string) {
	cmd.ParseConfig()
	readsBase := filepath.Join(*cmd.workspace, cmd.readsBase)
	assemblyBase := filepath.Join(*cmd.workspace, cmd.assemblyBase)
	MakeDir(assemblyBase)

	reads1List, err := filepath.Glob(filepath.Join(readsBase, "*_1.fastq*"))
	if err != nil {
		ERROR.Fatalln(err)
	}
	if len(reads1List) == 0 {
		WARN.Printf("no read pairs found in %s\n", readsBase)
	}

	for _, reads1 := range reads1List {
		name := strings.Split(filepath.Base(reads1), "_1.fastq")[0]
		reads2 := strings.Replace(reads1, "_1.fastq", "_2.fastq", 1)
		outDir := filepath.Join(assemblyBase, name)
		if pipeline.IsOutputExist(outDir) {
			INFO.Printf("%s is already assembled, skipping\n", name)
			continue
		}
		INFO.Printf("assembling %s\n", name)
		pipeline.RunSpades(reads1, reads2, outDir)
	}
}
