// Package elements holds the periodic-table coordinate tables.
//
// The data is embedded in the binary and decoded once. Positions follow the
// classic layout: columns are groups 1-18 from left to right, rows are
// periods from top to bottom, and the f-block series are moved below the
// main block.
package elements

import (
	"encoding/json"
	"sort"
	"sync"

	"github.com/cockroachdb/errors"
)

// ErrMalformed marks embedded or supplied table data that cannot be used.
var ErrMalformed = errors.New("malformed coordinate table")

// Coordinate is a cell position. Col grows to the right, Row grows downward.
type Coordinate struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// Element holds the chemical element data
type Element struct {
	Name         string  `json:"name"`
	Symbol       string  `json:"symbol"`
	AtomicNumber int     `json:"number"`
	AtomicMass   float64 `json:"atomic_mass"`
	Category     string  `json:"category"`
	Col          int     `json:"col"`
	Row          int     `json:"row"`
}

// Coordinate returns the element's cell position.
func (e Element) Coordinate() Coordinate {
	return Coordinate{Col: e.Col, Row: e.Row}
}

type specialLabel struct {
	Label string `json:"label"`
	Col   int    `json:"col"`
	Row   int    `json:"row"`
}

// Table is an immutable view over the element list and both coordinate maps.
type Table struct {
	elements []Element
	classic  map[string]Coordinate
	special  map[string]Coordinate
	index    map[string]int
}

var (
	defaultTable *Table
	defaultErr   error
	defaultOnce  sync.Once
)

// Load returns the embedded table, decoding it on first use.
func Load() (*Table, error) {
	defaultOnce.Do(func() {
		defaultTable, defaultErr = Parse([]byte(periodicTableJSON))
	})
	return defaultTable, defaultErr
}

// Parse decodes a table document and validates it.
func Parse(data []byte) (*Table, error) {
	var doc struct {
		Elements []Element     `json:"elements"`
		Special  []specialLabel `json:"special"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "decode element table"), ErrMalformed)
	}
	if len(doc.Elements) == 0 {
		return nil, errors.Wrap(ErrMalformed, "no elements")
	}

	t := &Table{
		elements: doc.Elements,
		classic:  make(map[string]Coordinate, len(doc.Elements)),
		special:  make(map[string]Coordinate, len(doc.Special)),
		index:    make(map[string]int, len(doc.Elements)),
	}
	for i, el := range doc.Elements {
		if el.Symbol == "" {
			return nil, errors.Wrapf(ErrMalformed, "element %d has no symbol", i)
		}
		if _, dup := t.classic[el.Symbol]; dup {
			return nil, errors.Wrapf(ErrMalformed, "duplicate symbol %q", el.Symbol)
		}
		t.classic[el.Symbol] = el.Coordinate()
		t.index[el.Symbol] = i
	}
	for _, s := range doc.Special {
		if _, dup := t.special[s.Label]; dup {
			return nil, errors.Wrapf(ErrMalformed, "duplicate label %q", s.Label)
		}
		t.special[s.Label] = Coordinate{Col: s.Col, Row: s.Row}
	}
	if err := Validate(t.classic, t.special); err != nil {
		return nil, err
	}
	return t, nil
}

// Classic returns a copy of the symbol to coordinate map.
func (t *Table) Classic() map[string]Coordinate {
	return copyCoords(t.classic)
}

// Special returns a copy of the annotation label to coordinate map.
func (t *Table) Special() map[string]Coordinate {
	return copyCoords(t.special)
}

// Elements returns the elements in atomic-number order.
func (t *Table) Elements() []Element {
	out := make([]Element, len(t.elements))
	copy(out, t.elements)
	return out
}

// Lookup finds an element by symbol.
func (t *Table) Lookup(symbol string) (Element, bool) {
	i, ok := t.index[symbol]
	if !ok {
		return Element{}, false
	}
	return t.elements[i], true
}

// Categories returns the distinct element categories in first-seen order.
func (t *Table) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, el := range t.elements {
		if !seen[el.Category] {
			seen[el.Category] = true
			out = append(out, el.Category)
		}
	}
	return out
}

// Validate checks that no two elements share a cell and that no annotation
// label sits on an element.
func Validate(classic, special map[string]Coordinate) error {
	owner := make(map[Coordinate]string, len(classic))
	for _, sym := range sortedKeys(classic) {
		c := classic[sym]
		if prev, taken := owner[c]; taken {
			return errors.Wrapf(ErrMalformed, "%s and %s share cell (%d,%d)", prev, sym, c.Col, c.Row)
		}
		owner[c] = sym
	}
	for _, label := range sortedKeys(special) {
		c := special[label]
		if sym, taken := owner[c]; taken {
			return errors.Wrapf(ErrMalformed, "label %q overlaps %s at (%d,%d)", label, sym, c.Col, c.Row)
		}
	}
	return nil
}

// Extent is the bounding box of a set of coordinates, inclusive.
type Extent struct {
	MinCol, MaxCol int
	MinRow, MaxRow int
}

// Cols is the number of columns spanned.
func (e Extent) Cols() int { return e.MaxCol - e.MinCol + 1 }

// Rows is the number of rows spanned.
func (e Extent) Rows() int { return e.MaxRow - e.MinRow + 1 }

// ExtentOf computes the bounding box of coords.
func ExtentOf(coords map[string]Coordinate) (Extent, error) {
	if len(coords) == 0 {
		return Extent{}, errors.Wrap(ErrMalformed, "extent of empty table")
	}
	first := true
	var e Extent
	for _, c := range coords {
		if first {
			e = Extent{MinCol: c.Col, MaxCol: c.Col, MinRow: c.Row, MaxRow: c.Row}
			first = false
			continue
		}
		e.MinCol = min(e.MinCol, c.Col)
		e.MaxCol = max(e.MaxCol, c.Col)
		e.MinRow = min(e.MinRow, c.Row)
		e.MaxRow = max(e.MaxRow, c.Row)
	}
	return e, nil
}

func copyCoords(in map[string]Coordinate) map[string]Coordinate {
	out := make(map[string]Coordinate, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func sortedKeys(m map[string]Coordinate) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
