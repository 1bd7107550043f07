package main

import (
	"log"
	"os"

	"github.com/Kouyos-Group/Pipeline-GenomeAnalysis/mutation"
	"github.com/Kouyos-Group/Pipeline-GenomeAnalysis/ortho"
	"github.com/Kouyos-Group/Pipeline-GenomeAnalysis/strain"
	"github.com/Kouyos-Group/Pipeline-GenomeAnalysis/variant"
	"gopkg.in/alecthomas/kingpin.v2"
)

// snp2aa runs the mutation translation engine on its own, outside the
// pipeline, against explicitly named inputs.
func main() {
	var variantFile string
	var panFile string
	var annotDir string
	var outDir string
	var reference string
	var showProgress bool

	app := kingpin.New("snp2aa", "Translate core variant sites into per-strain amino acids")
	app.Version("v0.1")

	variantFileArg := app.Arg("variant-table", "core variant table (tab-delimited)").Required().String()
	panFileArg := app.Arg("pan-table", "pan-genome presence/absence table (csv)").Required().String()
	annotDirArg := app.Arg("annotation-dir", "folder of per-strain annotation directories").Required().String()
	outDirArg := app.Arg("out-dir", "output folder").Required().String()
	referenceFlag := app.Flag("reference", "external reference genome used for variant calling").Default("").String()
	progressFlag := app.Flag("progress", "show progress").Default("false").Bool()
	kingpin.MustParse(app.Parse(os.Args[1:]))

	variantFile = *variantFileArg
	panFile = *panFileArg
	annotDir = *annotDirArg
	outDir = *outDirArg
	reference = *referenceFlag
	showProgress = *progressFlag

	strains, err := strain.Collect(annotDir)
	if err != nil {
		log.Fatalln(err)
	}
	if len(strains) == 0 {
		log.Fatalf("no annotation directories found in %s\n", annotDir)
	}

	variants, err := variant.ReadTable(variantFile)
	if err != nil {
		log.Fatalln(err)
	}
	orthologs, err := ortho.ReadTable(panFile)
	if err != nil {
		log.Fatalln(err)
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		log.Fatalln(err)
	}

	if reference != "" {
		log.Printf("reference %s has no column in %s\n", reference, mutation.MatrixFileName)
	}

	builder := mutation.NewBuilder(strains, variants, orthologs, outDir)
	builder.ShowProgress = showProgress
	if err := builder.Run(); err != nil {
		log.Fatalln(err)
	}
}
