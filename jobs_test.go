package larreco

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLayout(t *testing.T, nJobs int) *JobLayout {
	t.Helper()
	logger := logrus.New()
	logger.Out = io.Discard

	layout := NewJobLayout(t.TempDir())
	layout.NJobs = nJobs
	layout.Logger = logger
	for job := 0; job < nJobs; job++ {
		require.NoError(t, os.MkdirAll(layout.JobDir(job), 0o755))
	}
	return layout
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestJobLayoutPaths(t *testing.T) {
	layout := NewJobLayout("/data")
	assert.Equal(t, "/data/PandoraCondor/work/job12", layout.JobDir(12))
	assert.Equal(t, "/data/PandoraCondor/work/job12/output2.root", layout.OutputPath(12, "2"))
	assert.Equal(t, "/data/PandoraCondor/work/job12/output.root", layout.OutputPath(12, ""))
	assert.Equal(t, "/data/job12d.root", layout.CollectedPath(12, "d"))
	assert.Equal(t, DefaultNJobs, layout.NJobs)
}

func TestMoveOutputs(t *testing.T) {
	layout := newTestLayout(t, 3)
	writeFile(t, filepath.Join(layout.Base, "job0.root"), "job0")
	writeFile(t, filepath.Join(layout.Base, "job1d.root"), "job1d")
	writeFile(t, filepath.Join(layout.Base, "job2.root"), "job2")
	writeFile(t, filepath.Join(layout.Base, "job2_5.root"), "unrelated")

	moved, err := layout.MoveOutputs()
	require.NoError(t, err)
	assert.Equal(t, 3, moved)

	assert.Equal(t, "job0", readFile(t, layout.OutputPath(0, "")))
	assert.Equal(t, "job1d", readFile(t, layout.OutputPath(1, "d")))
	assert.Equal(t, "job2", readFile(t, layout.OutputPath(2, "")))
	assert.NoFileExists(t, filepath.Join(layout.Base, "job0.root"))
	assert.NoFileExists(t, filepath.Join(layout.Base, "job1d.root"))
	assert.FileExists(t, filepath.Join(layout.Base, "job2_5.root"))

	moved, err = layout.MoveOutputs()
	require.NoError(t, err)
	assert.Equal(t, 0, moved)
}

func TestCollectOutputs(t *testing.T) {
	layout := newTestLayout(t, 4)
	writeFile(t, layout.OutputPath(0, "d"), "job0")
	writeFile(t, layout.OutputPath(2, "d"), "job2")
	writeFile(t, layout.OutputPath(3, "d"), "job3")
	writeFile(t, layout.OutputPath(1, ""), "job1 other output")

	collected, missing, err := layout.CollectOutputs("d")
	require.NoError(t, err)
	assert.Equal(t, 1, missing)
	assert.Equal(t, []string{
		layout.CollectedPath(0, "d"),
		layout.CollectedPath(2, "d"),
		layout.CollectedPath(3, "d"),
	}, collected)
	assert.Equal(t, "job2", readFile(t, layout.CollectedPath(2, "d")))
	assert.NoFileExists(t, layout.OutputPath(2, "d"))
	assert.FileExists(t, layout.OutputPath(1, ""))
}

func TestRemoveJobDirs(t *testing.T) {
	layout := newTestLayout(t, 3)
	writeFile(t, layout.OutputPath(1, ""), "output")
	require.NoError(t, os.RemoveAll(layout.JobDir(2)))
	keep := filepath.Join(layout.Base, layout.WorkDir, "notes.txt")
	writeFile(t, keep, "keep")

	removed, err := layout.RemoveJobDirs()
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	assert.NoDirExists(t, layout.JobDir(0))
	assert.NoDirExists(t, layout.JobDir(1))
	assert.FileExists(t, keep)
}

func TestMoveFileMissingDestinationDir(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "job0.root")
	writeFile(t, src, "data")

	err := moveFile(src, filepath.Join(dir, "missing", "output.root"))
	var ferr *FileError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, "renaming", ferr.Op)
	assert.Equal(t, src, ferr.Path)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.FileExists(t, src)
}
