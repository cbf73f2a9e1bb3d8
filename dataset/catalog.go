package dataset

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/delaneyj/dashcells/cells"
)

var (
	ErrLocationInUse   = errors.New("dataset: location already holds a dataset")
	ErrUnknownLocation = errors.New("dataset: no dataset at location")
)

// Location identifies where a dataset lives.
type Location interface {
	Physical() bool
	Hint() string
}

// UnnamedLocation is an in-memory location; each one is distinct.
type UnnamedLocation struct {
	id uint64
}

func (*UnnamedLocation) Physical() bool { return false }
func (*UnnamedLocation) Hint() string   { return "<memory>" }

type FileLocation struct {
	Path string
}

func (FileLocation) Physical() bool { return true }
func (l FileLocation) Hint() string { return l.Path }

// Catalog holds the open datasets, each in its own reactive cell so views and
// tabs share one source of truth.
type Catalog struct {
	rt       *cells.Runtime
	datasets map[Location]*cells.Cell[Dataset]
	unnamed  uint64
}

func NewCatalog(rt *cells.Runtime) *Catalog {
	return &Catalog{
		rt:       rt,
		datasets: map[Location]*cells.Cell[Dataset]{},
	}
}

// AddSample stores a new dataset under a fresh unnamed location.
func (c *Catalog) AddSample(annotated AnnotatedData, sensor SensorData) Location {
	c.unnamed++
	loc := &UnnamedLocation{id: c.unnamed}
	c.datasets[loc] = cells.NewCellFunc(c.rt, Dataset{
		Annotated:  annotated,
		Sensor:     sensor,
		Calculated: CalculateAuxiliary(sensor),
	}, Dataset.Equal)
	return loc
}

// Put stores d at loc, or returns the cell already there.
func (c *Catalog) Put(loc Location, d Dataset) *cells.Cell[Dataset] {
	if cell, ok := c.datasets[loc]; ok {
		return cell
	}
	cell := cells.NewCellFunc(c.rt, d, Dataset.Equal)
	c.datasets[loc] = cell
	return cell
}

func (c *Catalog) Get(loc Location) (*cells.Cell[Dataset], bool) {
	cell, ok := c.datasets[loc]
	return cell, ok
}

func (c *Catalog) Len() int {
	return len(c.datasets)
}

// unnamedID orders unnamed locations by creation; file locations report 0.
func unnamedID(loc Location) uint64 {
	if u, ok := loc.(*UnnamedLocation); ok {
		return u.id
	}
	return 0
}

// Locations lists every location ordered by hint, unnamed ones in creation
// order.
func (c *Catalog) Locations() []Location {
	locs := make([]Location, 0, len(c.datasets))
	for loc := range c.datasets {
		locs = append(locs, loc)
	}
	slices.SortFunc(locs, func(a, b Location) int {
		if c := cmp.Compare(a.Hint(), b.Hint()); c != 0 {
			return c
		}
		return cmp.Compare(unnamedID(a), unnamedID(b))
	})
	return locs
}

// Rename moves the dataset at src to dst, keeping the same cell.
func (c *Catalog) Rename(src, dst Location) error {
	if _, ok := c.datasets[dst]; ok {
		return fmt.Errorf("%w: %s", ErrLocationInUse, dst.Hint())
	}
	cell, ok := c.datasets[src]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownLocation, src.Hint())
	}
	delete(c.datasets, src)
	c.datasets[dst] = cell
	if fl, ok := dst.(FileLocation); ok {
		cell.Update(func(d Dataset) Dataset {
			d.FilePath = fl.Path
			return d
		})
	}
	return nil
}

// Remove closes the dataset at loc and releases its cell.
func (c *Catalog) Remove(loc Location) bool {
	cell, ok := c.datasets[loc]
	if !ok {
		return false
	}
	delete(c.datasets, loc)
	cell.Release()
	return true
}

// SearchDatasets orders the datasets' keys for mode as strings and binary
// searches them for needle. It returns the index within that order, or -1.
func (c *Catalog) SearchDatasets(mode SortMode, needle string) (int, error) {
	sel, err := Selector(mode)
	if err != nil {
		return -1, err
	}
	keys := make([]string, 0, len(c.datasets))
	for _, cell := range c.datasets {
		keys = append(keys, sel(cell.Peek()).String())
	}
	slices.Sort(keys)
	i, found := slices.BinarySearch(keys, needle)
	if !found {
		return -1, nil
	}
	return i, nil
}
