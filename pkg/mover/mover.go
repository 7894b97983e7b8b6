// Package mover flattens student submission folders into a single
// folder of solution files.
package mover

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/harrybrwn/hemtal/pkg/files"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// DefaultSolutionFile is the file expected inside every
// submission folder.
const DefaultSolutionFile = "0.pdf"

// ErrNotDir is returned when the input or output path is
// missing or is not a directory.
var ErrNotDir = errors.New("needs to be a directory")

// Mover copies solution files out of submission folders.
type Mover struct {
	// Input is the folder holding one sub-folder per student.
	Input string
	// Output is the folder the flattened solutions are copied to.
	Output string
	// Overwrite replaces solutions that already exist in Output.
	Overwrite bool
	// SolutionFile is the path of the solution relative to each
	// submission folder. Defaults to DefaultSolutionFile.
	SolutionFile string
	// Replacements are applied to the submission folder name
	// before it is used as the output file name.
	Replacements []files.Replacement

	Log logrus.FieldLogger
}

// Report holds the counts from one run.
type Report struct {
	Moved   int
	Missing int
	Skipped int
}

// Run copies every submission folder's solution file into
// the output folder.
func (m *Mover) Run() (*Report, error) {
	log := m.logger()
	if !isDir(m.Input) {
		return nil, errors.WithMessage(ErrNotDir, "INPUT")
	}
	if !isDir(m.Output) {
		return nil, errors.WithMessage(ErrNotDir, "OUTPUT")
	}
	solution := m.SolutionFile
	if solution == "" {
		solution = DefaultSolutionFile
	}

	entries, err := os.ReadDir(m.Input)
	if err != nil {
		return nil, errors.Wrap(err, "could not read input folder")
	}
	report := &Report{}
	for _, entry := range entries {
		if !isDir(filepath.Join(m.Input, entry.Name())) {
			continue
		}
		name := entry.Name()
		solutionFile := filepath.Join(m.Input, name, solution)
		if !isRegular(solutionFile) {
			log.Warnf("%s does not exist (or the student sent something other than a %s)",
				solutionFile, filepath.Ext(solution))
			report.Missing++
			continue
		}
		outname, err := files.DoReplacements(m.Replacements, name)
		if err != nil {
			return report, errors.Wrap(err, "bad replacement pattern")
		}
		outputFile := filepath.Join(m.Output, fmt.Sprintf("%s.pdf", outname))
		if exists(outputFile) && !m.Overwrite {
			log.Infof("%s already exists, skipping", name)
			report.Skipped++
			continue
		}
		n, err := copyFile(solutionFile, outputFile)
		if err != nil {
			return report, errors.Wrapf(err, "could not copy %s", solutionFile)
		}
		log.Debugf("copied %s to %s (%d bytes)", solutionFile, outputFile, n)
		report.Moved++
	}
	log.Infof("Successfully moved %d solutions to %s", report.Moved, m.Output)
	return report, nil
}

func (m *Mover) logger() logrus.FieldLogger {
	if m.Log == nil {
		return logrus.StandardLogger()
	}
	return m.Log
}
