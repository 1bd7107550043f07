package main

import (
	"flag"
	"runtime"
	"strings"

	"github.com/jacobstr/confer"
)

// Config to read flags and configure file.
type cmdConfig struct {
	// Flags.
	workspace *string // workspace.
	config    *string // configure file name.
	ncpu      *int    // number of CPUs for using.

	// Data directories and paths, relative to the workspace.
	readsBase    string // raw reads folder.
	assemblyBase string // assembly output folder.
	annotBase    string // per-strain annotation folder.
	panTable     string // pan-genome presence/absence table.
	variantTable string // core variant table.
	reference    string // external reference genome, optional.
	outBase      string // mutation output folder.

	showProgress bool // draw progress bars.
}

func (cmd *cmdConfig) Flags(fs *flag.FlagSet) *flag.FlagSet {
	cmd.workspace = fs.String("w", "", "workspace.")
	cmd.config = fs.String("c", "config.yaml", "configure files in YAML format, which are separeted by comma.")
	cmd.ncpu = fs.Int("ncpu", runtime.NumCPU(), "number of CPUs for using.")
	return fs
}

// Parse configs.
func (cmd *cmdConfig) ParseConfig() {
	// Use confer package to parse configure files.
	config := confer.NewConfig()
	// Set root path, which contains configure files.
	config.SetRootPath(*cmd.workspace)
	// Read configure files.
	configPaths := strings.Split(*cmd.config, ",")
	if err := config.ReadPaths(configPaths...); err != nil {
		ERROR.Fatalln(err)
	}
	// Automatic binding.
	config.AutomaticEnv()
	cmd.readsBase = config.GetString("reads.dir")
	cmd.assemblyBase = config.GetString("assembly.dir")
	cmd.annotBase = config.GetString("annotation.dir")
	cmd.panTable = config.GetString("pangenome.table")
	cmd.variantTable = config.GetString("variant.table")
	cmd.reference = config.GetString("variant.reference")
	cmd.outBase = config.GetString("out.dir")
	cmd.showProgress = config.GetBool("progress")

	runtime.GOMAXPROCS(*cmd.ncpu)
	registerLogger()
}
