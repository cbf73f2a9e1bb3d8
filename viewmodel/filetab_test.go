package viewmodel_test

import (
	"context"
	"testing"

	"github.com/delaneyj/dashcells/cells"
	"github.com/delaneyj/dashcells/dataset"
	"github.com/delaneyj/dashcells/viewmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTab(t *testing.T) (*cells.Runtime, *viewmodel.FileTab) {
	t.Helper()
	rt := cells.NewRuntime()
	ds := cells.NewCellFunc(rt, dataset.Dataset{FilePath: "/data/first.csv"}, dataset.Dataset.Equal)
	return rt, viewmodel.NewFileTab(rt, ds)
}

func TestFileTabHeader(t *testing.T) {
	_, tab := newTab(t)
	assert.Equal(t, "first", tab.Header.Get())

	tab.Rename("Calibration")
	assert.Equal(t, "Calibration", tab.Header.Get())
}

func TestFileTabDirty(t *testing.T) {
	_, tab := newTab(t)
	assert.False(t, tab.Dirty.Peek())

	tab.Rename("x")
	assert.True(t, tab.Dirty.Peek())

	tab.MarkSaved()
	assert.False(t, tab.Dirty.Peek())

	// an equal write is not an edit
	tab.Rename("x")
	assert.False(t, tab.Dirty.Peek())
}

func TestFileTabLowercase(t *testing.T) {
	_, tab := newTab(t)
	require.True(t, tab.Lowercase.CanExecute())

	require.NoError(t, tab.Lowercase.Execute(context.Background()))
	assert.Equal(t, "initial", tab.TextField.Peek())
	assert.False(t, tab.Lowercase.CanExecute())
	assert.ErrorIs(t, tab.Lowercase.Execute(context.Background()), cells.ErrCannotExecute)

	tab.TextField.Set("Again")
	assert.True(t, tab.Lowercase.CanExecute())
}

func TestFileTabReleaseKeepsDataset(t *testing.T) {
	rt, tab := newTab(t)
	tab.Release()

	assert.False(t, rt.Alive(tab.Header.Owner()))
	assert.False(t, rt.Alive(tab.Lowercase.Owner()))
	assert.True(t, rt.Alive(tab.Dataset.Owner()))

	tab.Rename("after")
	assert.False(t, tab.Dirty.Peek())
}
