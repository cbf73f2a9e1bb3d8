package viewmodel

import (
	"context"

	"github.com/delaneyj/dashcells/cells"
	"github.com/delaneyj/dashcells/dataset"
	"github.com/delaneyj/dashcells/view"
)

// Main is the window view-model: the open tabs, shown through a view sorted by
// the current sort mode.
type Main struct {
	rt           *cells.Runtime
	catalog      *dataset.Catalog
	OpenFiles    *cells.List[*FileTab]
	Tabs         *view.Sorted[*FileTab]
	AnyOpenFiles *cells.Computed[bool]
	SortMode     *cells.Cell[dataset.SortMode]
	Selected     *cells.Cell[int]
	Close        *cells.Command

	stopSort func()
	watches  map[*FileTab]func()
}

func NewMain(rt *cells.Runtime, catalog *dataset.Catalog) *Main {
	m := &Main{
		rt:        rt,
		catalog:   catalog,
		OpenFiles: cells.NewList[*FileTab](rt),
		SortMode:  cells.NewCell(rt, dataset.Unsorted),
		Selected:  cells.NewCell(rt, -1),
		watches:   map[*FileTab]func(){},
	}
	m.Tabs = view.NewSorted(rt, m.OpenFiles)
	m.AnyOpenFiles = cells.NewComputed(rt, func() bool {
		return m.OpenFiles.Len() != 0
	})
	m.stopSort = view.BindSelector(rt, m.Tabs, m.SortMode.Get, tabSelector)
	m.Close = cells.NewCommand(rt,
		func() bool {
			i := m.Selected.Get()
			return i >= 0 && i < m.OpenFiles.Len()
		},
		func(context.Context) error {
			m.CloseAt(m.Selected.Peek())
			return nil
		},
	)
	return m
}

func tabSelector(mode dataset.SortMode) view.Selector[*FileTab] {
	sel, err := dataset.Selector(mode)
	if err != nil {
		return nil
	}
	return func(t *FileTab) view.SortKey {
		return sel(t.Dataset.Peek())
	}
}

// Open adds a tab for ds and selects it.
func (m *Main) Open(ds *cells.Cell[dataset.Dataset]) *FileTab {
	t := NewFileTab(m.rt, ds)
	// a dataset edit can move the tab under the current sort
	m.watches[t] = cells.Watch(m.rt, t.Dataset.Get, func(dataset.Dataset) {
		m.Tabs.Invalidate()
	})
	m.Selected.Set(m.Tabs.Add(t))
	return t
}

// MakeNew creates an empty dataset in the catalog and opens it.
func (m *Main) MakeNew() *FileTab {
	loc := m.catalog.AddSample(dataset.AnnotatedData{}, dataset.SensorData{})
	ds, _ := m.catalog.Get(loc)
	return m.Open(ds)
}

// CloseAt closes the tab shown at position i and keeps the selection in range.
func (m *Main) CloseAt(i int) {
	t := m.Tabs.At(i)
	m.Tabs.RemoveAt(i)
	if stop, ok := m.watches[t]; ok {
		stop()
		delete(m.watches, t)
	}
	t.Release()
	if n := m.OpenFiles.PeekLen(); m.Selected.Peek() >= n {
		m.Selected.Set(n - 1)
	}
}

// ImposeSort makes the current order permanent and resets the sort mode.
func (m *Main) ImposeSort() {
	m.Tabs.Impose()
	m.SortMode.Set(dataset.Unsorted)
}

func (m *Main) Release() {
	for t, stop := range m.watches {
		stop()
		t.Release()
	}
	clear(m.watches)
	m.stopSort()
	m.Close.Release()
	m.AnyOpenFiles.Release()
	m.Tabs.Release()
	m.OpenFiles.Release()
	m.SortMode.Release()
	m.Selected.Release()
}
