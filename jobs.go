package larreco

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/sirupsen/logrus"
)

const (
	DefaultWorkDir = "PandoraCondor/work"
	DefaultNJobs   = 1023
)

// DefaultSuffixes are the output variants produced by every job.
var DefaultSuffixes = []string{"", "2", "3", "4", "5", "d"}

// JobLayout locates job outputs. Jobs run in <Base>/<WorkDir>/job<i> and
// write output<suffix>.root there; collected copies live in
// <Base>/job<i><suffix>.root.
type JobLayout struct {
	Base     string
	WorkDir  string
	NJobs    int
	Suffixes []string
	Logger   logrus.FieldLogger
}

// NewJobLayout returns a layout rooted at base with the default work
// directory, job count and suffixes.
func NewJobLayout(base string) *JobLayout {
	return &JobLayout{
		Base:     base,
		WorkDir:  DefaultWorkDir,
		NJobs:    DefaultNJobs,
		Suffixes: DefaultSuffixes,
		Logger:   logrus.StandardLogger(),
	}
}

func (l *JobLayout) JobDir(job int) string {
	return filepath.Join(l.Base, l.WorkDir, fmt.Sprintf("job%d", job))
}

// OutputPath is the file a job writes in its own directory.
func (l *JobLayout) OutputPath(job int, suffix string) string {
	return filepath.Join(l.JobDir(job), "output"+suffix+".root")
}

// CollectedPath is the file a job output is gathered into under Base.
func (l *JobLayout) CollectedPath(job int, suffix string) string {
	return filepath.Join(l.Base, fmt.Sprintf("job%d%s.root", job, suffix))
}

// MoveOutputs returns every collected output to its job directory, renamed
// to output<suffix>.root. Missing files are skipped. It returns the number
// of files moved.
func (l *JobLayout) MoveOutputs() (int, error) {
	moved := 0
	for _, suffix := range l.Suffixes {
		for job := 0; job < l.NJobs; job++ {
			src := l.CollectedPath(job, suffix)
			ok, err := exists(src)
			if err != nil {
				return moved, err
			}
			if !ok {
				continue
			}

			dst := l.OutputPath(job, suffix)
			if err := moveFile(src, dst); err != nil {
				return moved, err
			}
			l.Logger.Debugf("moved %s -> %s", src, dst)
			moved++
		}
	}
	return moved, nil
}

// CollectOutputs gathers output<suffix>.root of every job into Base and
// returns the collected paths in job order, together with the number of
// jobs that had no such output.
func (l *JobLayout) CollectOutputs(suffix string) (collected []string, missing int, err error) {
	for job := 0; job < l.NJobs; job++ {
		src := l.OutputPath(job, suffix)
		ok, err := exists(src)
		if err != nil {
			return collected, missing, err
		}
		if !ok {
			missing++
			continue
		}

		dst := l.CollectedPath(job, suffix)
		if err := moveFile(src, dst); err != nil {
			return collected, missing, err
		}
		l.Logger.Debugf("collected %s -> %s", src, dst)
		collected = append(collected, dst)
	}
	return collected, missing, nil
}

// RemoveJobDirs deletes every existing job directory and returns how many
// were removed.
func (l *JobLayout) RemoveJobDirs() (int, error) {
	removed := 0
	for job := 0; job < l.NJobs; job++ {
		dir := l.JobDir(job)
		ok, err := exists(dir)
		if err != nil {
			return removed, err
		}
		if !ok {
			continue
		}

		if err := os.RemoveAll(dir); err != nil {
			return removed, &FileError{Op: "removing", Path: dir, Err: err}
		}
		l.Logger.Debugf("removed %s", dir)
		removed++
	}
	return removed, nil
}

func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, &FileError{Op: "checking", Path: path, Err: err}
	}
}

// moveFile renames src to dst, copying when they are on different
// filesystems. The destination directory must exist.
func moveFile(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	if !errors.Is(err, syscall.EXDEV) {
		return &FileError{Op: "renaming", Path: src, Err: err}
	}

	in, err := os.Open(src)
	if err != nil {
		return &FileError{Op: "opening", Path: src, Err: err}
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return &FileError{Op: "creating", Path: dst, Err: err}
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return &FileError{Op: "copying", Path: dst, Err: err}
	}
	if err := out.Close(); err != nil {
		return &FileError{Op: "closing", Path: dst, Err: err}
	}

	in.Close()
	if err := os.Remove(src); err != nil {
		return &FileError{Op: "removing", Path: src, Err: err}
	}
	return nil
}
