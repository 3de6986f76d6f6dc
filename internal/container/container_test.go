package container

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSample(t *testing.T, path string) {
	t.Helper()
	ctx := context.Background()

	f, err := Create(ctx, path)
	require.NoError(t, err)
	defer f.Close()

	root := f.Root()
	require.NoError(t, root.SetAttrs(ctx, map[string]string{"format": "test", "version": "1"}))

	for _, name := range []string{"zeta", "alpha", "mid"} {
		g, err := root.CreateGroup(ctx, name)
		require.NoError(t, err)
		require.NoError(t, g.SetAttrs(ctx, map[string]string{"name": name}))
		require.NoError(t, g.WriteDataset(ctx, "data", []byte("payload-"+name), map[string]string{"format": "raw"}))
	}
	require.NoError(t, f.Commit())
}

func TestCreateOpen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "sample.zi")
	writeSample(t, path)

	f, err := Open(ctx, path)
	require.NoError(t, err)
	defer f.Close()

	attrs, err := f.Root().Attrs(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"format": "test", "version": "1"}, attrs)

	groups, err := f.Root().Groups(ctx)
	require.NoError(t, err)
	names := make([]string, len(groups))
	for i, g := range groups {
		names[i] = g.Name()
	}
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, names, "groups keep creation order")

	g, err := f.Root().Group(ctx, "alpha")
	require.NoError(t, err)
	attrs, err = g.Attrs(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"name": "alpha"}, attrs)

	ds, err := g.Dataset(ctx, "data")
	require.NoError(t, err)
	assert.Equal(t, []byte("payload-alpha"), ds.Data)
	assert.Equal(t, "raw", ds.Attrs["format"])
}

func TestMissingNodes(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "sample.zi")
	writeSample(t, path)

	f, err := Open(ctx, path)
	require.NoError(t, err)
	defer f.Close()

	_, err = f.Root().Group(ctx, "nope")
	assert.ErrorIs(t, err, ErrMissing)
	assert.ErrorIs(t, err, ErrStorage)

	g, err := f.Root().Group(ctx, "mid")
	require.NoError(t, err)
	_, err = g.Dataset(ctx, "other")
	assert.ErrorIs(t, err, ErrMissing)
	_, err = g.Group(ctx, "data")
	assert.ErrorIs(t, err, ErrMissing, "datasets are not groups")
}

func TestOpenedFileIsReadOnly(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "sample.zi")
	writeSample(t, path)

	f, err := Open(ctx, path)
	require.NoError(t, err)
	defer f.Close()

	_, err = f.Root().CreateGroup(ctx, "late")
	assert.ErrorIs(t, err, ErrReadOnly)
	assert.ErrorIs(t, f.Commit(), ErrReadOnly)
}

func TestDuplicateGroup(t *testing.T) {
	ctx := context.Background()
	f, err := Create(ctx, filepath.Join(t.TempDir(), "dup.zi"))
	require.NoError(t, err)
	defer f.Close()

	_, err = f.Root().CreateGroup(ctx, "a")
	require.NoError(t, err)
	_, err = f.Root().CreateGroup(ctx, "a")
	assert.ErrorIs(t, err, ErrExists)
}

func TestCreateReplacesExisting(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "sample.zi")
	writeSample(t, path)

	f, err := Create(ctx, path)
	require.NoError(t, err)
	_, err = f.Root().CreateGroup(ctx, "only")
	require.NoError(t, err)
	require.NoError(t, f.Commit())
	require.NoError(t, f.Close())

	f, err = Open(ctx, path)
	require.NoError(t, err)
	defer f.Close()
	groups, err := f.Root().Groups(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "only", groups[0].Name())
}

func TestOpenFailures(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	_, err := Open(ctx, filepath.Join(dir, "missing.zi"))
	assert.ErrorIs(t, err, ErrStorage)
	assert.ErrorIs(t, err, os.ErrNotExist)

	empty := filepath.Join(dir, "empty.zi")
	require.NoError(t, os.WriteFile(empty, nil, 0o600))
	_, err = Open(ctx, empty)
	assert.ErrorIs(t, err, ErrNotFile)

	foreign := filepath.Join(dir, "foreign.zi")
	require.NoError(t, os.WriteFile(foreign, []byte("solid cube\nendsolid cube\n"), 0o600))
	_, err = Open(ctx, foreign)
	assert.ErrorIs(t, err, ErrNotFile)

	truncated := filepath.Join(dir, "truncated.zi")
	writeSample(t, truncated)
	info, err := os.Stat(truncated)
	require.NoError(t, err)
	require.NoError(t, os.Truncate(truncated, info.Size()/2))
	_, err = Open(ctx, truncated)
	assert.ErrorIs(t, err, ErrStorage)
}

func dirNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	return names
}

func TestPathsWithURIDelimiters(t *testing.T) {
	ctx := context.Background()
	for _, name := range []string{"what?.zi", "q?x=1&y.zi", "part#2.zi", "100%.zi", "with space.zi"} {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, name)
			writeSample(t, path)
			assert.Equal(t, []string{name}, dirNames(t, dir), "nothing written beside the target")

			f, err := Open(ctx, path)
			require.NoError(t, err)
			groups, err := f.Root().Groups(ctx)
			require.NoError(t, err)
			assert.Len(t, groups, 3)
			require.NoError(t, f.Close())
			assert.Equal(t, []string{name}, dirNames(t, dir), "opening creates no file")
		})
	}
}

func TestOpenRenamedFileWithQuestionMark(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	plain := filepath.Join(dir, "plain.zi")
	writeSample(t, plain)
	renamed := filepath.Join(dir, "q?x.zi")
	require.NoError(t, os.Rename(plain, renamed))

	f, err := Open(ctx, renamed)
	require.NoError(t, err)
	defer f.Close()
	attrs, err := f.Root().Attrs(ctx)
	require.NoError(t, err)
	assert.Equal(t, "test", attrs["format"])
	assert.Equal(t, []string{"q?x.zi"}, dirNames(t, dir))
}

func TestRelativePath(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeSample(t, "relative.zi")

	f, err := Open(context.Background(), "relative.zi")
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.Equal(t, []string{"relative.zi"}, dirNames(t, dir))
}
