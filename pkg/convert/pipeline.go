package convert

import (
	"fmt"
	"io"
	"os"

	"github.com/solidata/solidata/pkg/errors"
)

// Pipeline chains conversion steps. Each step's output becomes the next
// step's input via an intermediate temp file, so every step still streams
// in bounded memory.
type Pipeline struct {
	steps []*Converter
}

// NewPipeline builds a pipeline from conversion steps, run in order.
func NewPipeline(steps ...*Converter) *Pipeline {
	return &Pipeline{steps: steps}
}

// Convert runs every step, threading the data from in to out through
// intermediate temp files. Temp files are removed on all exit paths.
func (p *Pipeline) Convert(in io.Reader, out io.Writer) error {
	if len(p.steps) == 0 {
		return fmt.Errorf("%w: pipeline has no steps", errors.ErrInvalidInput)
	}

	current := in
	for ix, step := range p.steps {
		last := ix == len(p.steps)-1
		if last {
			if err := step.Convert(current, out); err != nil {
				return err
			}
			break
		}

		tmp, err := os.CreateTemp("", "solidata-convert-*.csv")
		if err != nil {
			return errors.WrapIO("create", "temp file", err)
		}
		defer os.Remove(tmp.Name())
		defer tmp.Close()

		if err := step.Convert(current, tmp); err != nil {
			return err
		}
		if _, err := tmp.Seek(0, io.SeekStart); err != nil {
			return errors.WrapIO("seek", tmp.Name(), err)
		}
		current = tmp
	}
	return nil
}

// ConvertFile runs the pipeline between two file paths.
func (p *Pipeline) ConvertFile(inPath, outPath string) error {
	in, err := os.Open(inPath)
	if err != nil {
		return errors.WrapIO("open", inPath, err)
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return errors.WrapIO("create", outPath, err)
	}
	defer out.Close()

	if err := p.Convert(in, out); err != nil {
		return err
	}
	return out.Close()
}
