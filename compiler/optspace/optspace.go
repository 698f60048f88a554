// Package optspace enumerates the option space of a contract kind.
//
// A Blueprint lists, for every option field, the finite set of candidate
// values worth exercising. Alternatives yields the cartesian product of
// those candidates lazily, so even large spaces can be streamed.
package optspace

import (
	"fmt"
	"iter"

	"gopkg.in/yaml.v3"
)

// Dimension is one option field and its candidate values. A nil value
// leaves the field unset so the kind default applies.
type Dimension struct {
	Name   string
	Values []any
}

// Blueprint is an ordered list of dimensions. Earlier dimensions vary
// slowest.
type Blueprint []Dimension

// Count returns the number of combinations, the product of all dimension
// cardinalities.
func (bp Blueprint) Count() int {
	n := 1
	for _, d := range bp {
		n *= len(d.Values)
	}
	return n
}

// Field is a single assignment within a Combination.
type Field struct {
	Name  string
	Value any
}

// Combination assigns one candidate value to every dimension of a blueprint,
// in blueprint order.
type Combination []Field

// Get returns the value assigned to name.
func (c Combination) Get(name string) (any, bool) {
	for _, f := range c {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Map returns the combination as a map keyed by field name. Unset fields are
// omitted.
func (c Combination) Map() map[string]any {
	m := make(map[string]any, len(c))
	for _, f := range c {
		if f.Value != nil {
			m[f.Name] = f.Value
		}
	}
	return m
}

// Alternatives returns the cartesian product of the blueprint. The last
// dimension varies fastest. Each yielded Combination is freshly allocated.
func Alternatives(bp Blueprint) iter.Seq[Combination] {
	return func(yield func(Combination) bool) {
		if bp.Count() == 0 {
			return
		}
		idx := make([]int, len(bp))
		for {
			comb := make(Combination, len(bp))
			for i, d := range bp {
				comb[i] = Field{Name: d.Name, Value: d.Values[idx[i]]}
			}
			if !yield(comb) {
				return
			}
			i := len(bp) - 1
			for ; i >= 0; i-- {
				idx[i]++
				if idx[i] < len(bp[i].Values) {
					break
				}
				idx[i] = 0
			}
			if i < 0 {
				return
			}
		}
	}
}

// Decode assigns the combination to the struct pointed to by v, matching
// dimension names against yaml field names.
func Decode(c Combination, v any) error {
	data, err := yaml.Marshal(c.Map())
	if err != nil {
		return fmt.Errorf("optspace: encode combination: %w", err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("optspace: decode combination: %w", err)
	}
	return nil
}

// Fields returns the set fields of an options struct keyed by yaml field
// name. It is the inverse of Decode for values built from a blueprint.
func Fields(v any) (map[string]any, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("optspace: encode options: %w", err)
	}
	m := make(map[string]any)
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("optspace: decode options: %w", err)
	}
	return m, nil
}
