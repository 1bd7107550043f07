package pipeline

import (
	"bytes"
	"log"
	"os"
	"os/exec"
)

// Cmd running spades.py,
// assembling paired-end reads into contigs.
func RunSpades(reads1, reads2, outDir string) {
	cmd := exec.Command("spades.py", "-1", reads1, "-2", reads2,
		"--careful", "-o", outDir)
	run(cmd)

	return
}

// Cmd running prokka,
// annotating assembled contigs of one strain.
// The prefix names the .faa and .gff outputs.
func RunProkka(contigs, outDir, prefix string) {
	cmd := exec.Command("prokka", "--outdir", outDir, "--prefix", prefix,
		"--force", contigs)
	run(cmd)

	return
}

// Cmd running roary over the annotation .gff files,
// producing the pan-genome presence/absence table.
func RunRoary(outDir string, gffs ...string) {
	args := []string{"-f", outDir, "-e", "-n"}
	args = append(args, gffs...)
	cmd := exec.Command("roary", args...)
	run(cmd)

	return
}

// Cmd running snippy,
// calling variants of one strain's contigs against the reference.
func RunSnippy(outDir, ref, contigs string) {
	cmd := exec.Command("snippy", "--outdir", outDir, "--ref", ref,
		"--ctgs", contigs)
	run(cmd)

	return
}

// Cmd running snippy-core,
// aggregating per-strain snippy outputs into the core variant table.
func RunSnippyCore(ref string, dirs ...string) {
	args := []string{"--ref", ref}
	args = append(args, dirs...)
	cmd := exec.Command("snippy-core", args...)
	run(cmd)

	return
}

// A helper to run command.
func run(cmd *exec.Cmd) {
	stderr := new(bytes.Buffer)
	cmd.Stderr = stderr
	if err := cmd.Run(); err != nil {
		log.Panicf("Error when %s: %s\n", cmd.Args[0], stderr.String())
	}

	return
}

// Check if a tool has already produced its output folder.
func IsOutputExist(dir string) bool {
	if _, err := os.Stat(dir); err == nil {
		return true
	} else {
		return false
	}
}
