package pipeline

import (
	"bytes"
	"io"
	"os"
	"os/exec"

	"github.com/mingzhi/biogo/seq"
)

type AlignFunc func(stdin io.Reader, stdout, stderr io.Writer, options ...string) error

// Multiple sequence alignment of a per-gene extract file.
// The extract records keep their >strain_gene identifiers,
// so aligned sequences map back to strains by Id.
func MultiAlign(fileName string, alignFunc AlignFunc, options ...string) ([]*seq.Sequence, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	if err := alignFunc(f, stdout, stderr, options...); err != nil {
		Warn.Printf("align %s: %s\n", fileName, stderr.String())
		return nil, err
	}

	fr := seq.NewFastaReader(stdout)
	alns, err := fr.ReadAll()
	if err != nil {
		return nil, err
	}

	return alns, nil
}

// do multiple sequence alignment using muscle
func Muscle(stdin io.Reader, stdout, stderr io.Writer, options ...string) (err error) {
	cmd := exec.Command("muscle", options...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	err = cmd.Run()
	return
}
