// Package viewmodel binds datasets to the dashboard's tabs through reactive
// cells, computed values and commands.
package viewmodel

import (
	"context"
	"strings"

	"github.com/delaneyj/dashcells/cells"
	"github.com/delaneyj/dashcells/dataset"
)

// FileTab is one open dataset. The dataset cell is shared with the catalog and
// is not released with the tab.
type FileTab struct {
	Dataset   *cells.Cell[dataset.Dataset]
	Header    *cells.Computed[string]
	TextField *cells.Cell[string]
	Dirty     *cells.Cell[bool]
	Lowercase *cells.Command

	stopDirty func()
}

func NewFileTab(rt *cells.Runtime, ds *cells.Cell[dataset.Dataset]) *FileTab {
	t := &FileTab{
		Dataset:   ds,
		TextField: cells.NewCell(rt, "Initial"),
		Dirty:     cells.NewCell(rt, false),
	}
	t.Header = cells.NewComputed(rt, func() string {
		return t.Dataset.Get().DisplayName()
	})
	t.stopDirty = cells.Watch(rt, t.Dataset.Get, func(dataset.Dataset) {
		t.Dirty.Set(true)
	})
	t.Lowercase = cells.NewCommand(rt,
		func() bool {
			s := t.TextField.Get()
			return s != strings.ToLower(s)
		},
		func(context.Context) error {
			t.TextField.Update(strings.ToLower)
			return nil
		},
	)
	return t
}

// Rename sets the dataset's annotated name.
func (t *FileTab) Rename(name string) {
	t.Dataset.Update(func(d dataset.Dataset) dataset.Dataset {
		d.Annotated.Name = &name
		return d
	})
}

func (t *FileTab) MarkSaved() {
	t.Dirty.Set(false)
}

func (t *FileTab) Release() {
	t.stopDirty()
	t.Lowercase.Release()
	t.Header.Release()
	t.TextField.Release()
	t.Dirty.Release()
}
