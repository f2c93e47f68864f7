package larreco

import (
	"fmt"
	"math"

	"go-hep.org/x/hep/groot"
	"go-hep.org/x/hep/groot/riofs"
	"go-hep.org/x/hep/groot/rtree"
	"go-hep.org/x/hep/hbook"
)

// Tree and branch names written by the neutrino selection jobs.
const (
	DefaultTreeName = "ttreed"
	WasRightBranch  = "wasright"
	IsZeroNaNBranch = "isa0nan"
)

// EfficiencyCounts tallies the selection flags of a set of events. A flag
// equal to 1 counts as yes and 0 as no; any other value only enters Total.
type EfficiencyCounts struct {
	Total           int
	Right           int
	Wrong           int
	ZeroNaN         int
	NotZeroNaN      int
	RightNotZeroNaN int
	WrongNotZeroNaN int

	// WasRight holds the wasright values of every event and of the events
	// whose score was neither 0 nor NaN.
	WasRight           *hbook.H1D
	WasRightNotZeroNaN *hbook.H1D
}

func NewEfficiencyCounts() *EfficiencyCounts {
	return &EfficiencyCounts{
		WasRight:           hbook.NewH1D(2, -0.5, 1.5),
		WasRightNotZeroNaN: hbook.NewH1D(2, -0.5, 1.5),
	}
}

// Add records one event.
func (c *EfficiencyCounts) Add(wasRight, isZeroNaN float64) {
	c.Total++
	c.WasRight.Fill(wasRight, 1)

	switch wasRight {
	case 1:
		c.Right++
	case 0:
		c.Wrong++
	}
	switch isZeroNaN {
	case 1:
		c.ZeroNaN++
	case 0:
		c.NotZeroNaN++
		c.WasRightNotZeroNaN.Fill(wasRight, 1)
		switch wasRight {
		case 1:
			c.RightNotZeroNaN++
		case 0:
			c.WrongNotZeroNaN++
		}
	}
}

// Efficiency is the fraction of events where the most likely neutrino was
// correctly identified. It is NaN when no event was recorded.
func (c *EfficiencyCounts) Efficiency() float64 {
	if c.Total == 0 {
		return math.NaN()
	}
	return float64(c.Right) / float64(c.Total)
}

// Percent returns the efficiency as a percentage rounded to two decimals.
func (c *EfficiencyCounts) Percent() float64 {
	return math.Round(c.Efficiency()*100*100) / 100
}

// ReadEfficiency chains treeName across files, in order, and tallies the
// wasright and isa0nan branches of every entry.
func ReadEfficiency(files []string, treeName string) (*EfficiencyCounts, error) {
	var (
		trees []rtree.Tree
		open  []*riofs.File
	)
	defer func() {
		for _, f := range open {
			f.Close()
		}
	}()

	for _, fname := range files {
		f, err := groot.Open(fname)
		if err != nil {
			return nil, &FileError{Op: "opening", Path: fname, Err: err}
		}
		open = append(open, f)

		obj, err := riofs.Dir(f).Get(treeName)
		if err != nil {
			return nil, fmt.Errorf("could not find tree %q in %q: %w", treeName, fname, err)
		}
		tree, ok := obj.(rtree.Tree)
		if !ok {
			return nil, fmt.Errorf("object %q in %q is a %T, not a tree", treeName, fname, obj)
		}
		trees = append(trees, tree)
	}

	counts := NewEfficiencyCounts()
	if len(trees) == 0 {
		return counts, nil
	}
	chain := rtree.Chain(trees...)

	var wasRight, isZeroNaN *rtree.ReadVar
	var rvars []rtree.ReadVar
	for _, rv := range rtree.NewReadVars(chain) {
		if rv.Name == WasRightBranch || rv.Name == IsZeroNaNBranch {
			rvars = append(rvars, rv)
		}
	}
	for i := range rvars {
		switch rvars[i].Name {
		case WasRightBranch:
			wasRight = &rvars[i]
		case IsZeroNaNBranch:
			isZeroNaN = &rvars[i]
		}
	}
	if wasRight == nil || isZeroNaN == nil {
		return nil, fmt.Errorf("tree %q needs branches %q and %q", treeName, WasRightBranch, IsZeroNaNBranch)
	}

	r, err := rtree.NewReader(chain, rvars)
	if err != nil {
		return nil, fmt.Errorf("could not create reader for %q: %w", treeName, err)
	}
	defer r.Close()

	err = r.Read(func(ctx rtree.RCtx) error {
		wr, err := flagValue(wasRight.Value)
		if err != nil {
			return fmt.Errorf("entry %d: %w", ctx.Entry, err)
		}
		zn, err := flagValue(isZeroNaN.Value)
		if err != nil {
			return fmt.Errorf("entry %d: %w", ctx.Entry, err)
		}
		counts.Add(wr, zn)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not read tree %q: %w", treeName, err)
	}
	return counts, nil
}

func flagValue(v any) (float64, error) {
	switch v := v.(type) {
	case *bool:
		if *v {
			return 1, nil
		}
		return 0, nil
	case *int8:
		return float64(*v), nil
	case *int16:
		return float64(*v), nil
	case *int32:
		return float64(*v), nil
	case *int64:
		return float64(*v), nil
	case *uint8:
		return float64(*v), nil
	case *uint16:
		return float64(*v), nil
	case *uint32:
		return float64(*v), nil
	case *uint64:
		return float64(*v), nil
	case *float32:
		return float64(*v), nil
	case *float64:
		return *v, nil
	}
	return 0, fmt.Errorf("unsupported flag type %T", v)
}
