package main

import (
	"log"
	"os"
	"runtime"

	pipeline "github.com/Kouyos-Group/Pipeline-GenomeAnalysis"
	"github.com/rakyll/command"
)

var (
	DefaultMaxProcs = runtime.NumCPU()
	INFO            *log.Logger
	WARN            *log.Logger
	ERROR           *log.Logger
)

func main() {
	runtime.GOMAXPROCS(DefaultMaxProcs)
	// Register loggers.
	INFO = log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	WARN = log.New(os.Stdout, "WARN: ", log.Ldate|log.Ltime|log.Lshortfile)
	ERROR = log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
	// Register commands.
	command.On("assemble", "assemble raw reads into contigs", &cmdAssemble{}, []string{})
	command.On("annotate", "annotate assembled contigs", &cmdAnnotate{}, []string{})
	command.On("pangenome", "build the pan-genome presence/absence table", &cmdPanGenome{}, []string{})
	command.On("snp", "call core-genome variants against the reference", &cmdSnp{}, []string{})
	command.On("translate", "translate variant sites into per-strain amino acids", &cmdTranslate{}, []string{})
	command.On("align", "align the per-gene sequence extracts", &cmdAlign{}, []string{})
	// Parse and run commands.
	command.ParseAndRun()
}

func registerLogger() {
	pipeline.Info = log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	pipeline.Warn = log.New(os.Stdout, "WARN: ", log.Ldate|log.Ltime|log.Lshortfile)
}
