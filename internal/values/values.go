// Package values provides the per-element numbers drawn on the table.
//
// A Source yields a Mapping from element symbol to value. Built-in datasets
// are registered by name; arbitrary datasets can be read from JSON, TOML or
// YAML files. Symbols that have no cell in the coordinate table are kept
// here and skipped by the overlay.
package values

import (
	"context"
	"math"
	"sort"

	"github.com/cockroachdb/errors"

	"element-heatmap/internal/elements"
)

// ErrEmptyMapping is returned when a source produces no values.
var ErrEmptyMapping = errors.New("value mapping is empty")

// ErrNonFinite is returned for NaN or infinite values.
var ErrNonFinite = errors.New("value is not a finite number")

// ErrUnknownDataset is returned by Dataset for unregistered names.
var ErrUnknownDataset = errors.New("unknown dataset")

// Mapping maps element symbols to values.
type Mapping map[string]float64

// Range returns the smallest and largest value in m. Every value must be
// finite.
func (m Mapping) Range() (lo, hi float64, err error) {
	if len(m) == 0 {
		return 0, 0, ErrEmptyMapping
	}
	first := true
	for _, sym := range m.Symbols() {
		v := m[sym]
		if err := checkFinite(sym, v); err != nil {
			return 0, 0, err
		}
		if first {
			lo, hi = v, v
			first = false
			continue
		}
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi, nil
}

func checkFinite(sym string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return errors.Wrapf(ErrNonFinite, "%q = %v", sym, v)
	}
	return nil
}

// Symbols returns the keys of m in sorted order.
func (m Mapping) Symbols() []string {
	out := make([]string, 0, len(m))
	for s := range m {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Source produces a value mapping.
type Source interface {
	Values(ctx context.Context) (Mapping, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) (Mapping, error)

// Values calls f.
func (f SourceFunc) Values(ctx context.Context) (Mapping, error) { return f(ctx) }

// Static is a fixed in-memory mapping.
type Static Mapping

// Values returns a copy of s.
func (s Static) Values(context.Context) (Mapping, error) {
	if len(s) == 0 {
		return nil, ErrEmptyMapping
	}
	out := make(Mapping, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out, nil
}

// DatasetMendeleev is the default dataset.
const DatasetMendeleev = "mendeleev"

var datasets = map[string]func(*elements.Table) Source{
	DatasetMendeleev: func(*elements.Table) Source { return Static(mendeleevNumbers) },
	"atomic-number": func(t *elements.Table) Source {
		return fromElements(t, func(el elements.Element) float64 { return float64(el.AtomicNumber) })
	},
	"atomic-mass": func(t *elements.Table) Source {
		return fromElements(t, func(el elements.Element) float64 { return el.AtomicMass })
	},
}

// DatasetNames lists the registered datasets in sorted order.
func DatasetNames() []string {
	names := make([]string, 0, len(datasets))
	for n := range datasets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Dataset returns the named built-in source.
func Dataset(name string, table *elements.Table) (Source, error) {
	build, ok := datasets[name]
	if !ok {
		return nil, errors.WithHintf(errors.Wrapf(ErrUnknownDataset, "%q", name),
			"available datasets: %v", DatasetNames())
	}
	return build(table), nil
}

// Load resolves the value source: a file when path is set, the named dataset
// otherwise.
func Load(ctx context.Context, dataset, path string, table *elements.Table) (Mapping, error) {
	var src Source
	if path != "" {
		src = File(path)
	} else {
		var err error
		if src, err = Dataset(dataset, table); err != nil {
			return nil, err
		}
	}
	m, err := src.Values(ctx)
	if err != nil {
		return nil, err
	}
	if len(m) == 0 {
		return nil, ErrEmptyMapping
	}
	return m, nil
}

func fromElements(t *elements.Table, value func(elements.Element) float64) Source {
	return SourceFunc(func(context.Context) (Mapping, error) {
		if t == nil {
			return nil, errors.New("element table is required for derived datasets")
		}
		els := t.Elements()
		m := make(Mapping, len(els))
		for _, el := range els {
			m[el.Symbol] = value(el)
		}
		return m, nil
	})
}
