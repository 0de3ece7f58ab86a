package dataset

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// Names returns the dataset names in ascending order.
func (c *Collection) Names() []string {
	names := make([]string, 0, len(c.entries))
	for k := range c.entries {
		names = append(names, k)
	}
	slices.Sort(names)

	return names
}

// Has reports whether a dataset with the given name exists.
func (c *Collection) Has(name string) bool {
	_, ok := c.entries[name]

	return ok
}

func (c *Collection) lookup(name string) (any, error) {
	v, ok := c.entries[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, name)
	}

	return v, nil
}

func (c *Collection) list(name string) ([]any, error) {
	v, err := c.lookup(name)
	if err != nil {
		return nil, err
	}
	switch l := v.(type) {
	case []any:
		return l, nil
	case nil:
		return nil, nil
	}

	return nil, fmt.Errorf("%w: %s is %s, want list", ErrBadShape, name, kind(v))
}

// Values returns the raw elements of a list dataset.
func (c *Collection) Values(name string) ([]any, error) {
	l, err := c.list(name)
	if err != nil {
		return nil, err
	}

	return slices.Clone(l), nil
}

// Ints returns the integer elements of a list dataset in order. Nulls,
// floats, strings and other elements are skipped.
func (c *Collection) Ints(name string) ([]int, error) {
	l, err := c.list(name)
	if err != nil {
		return nil, err
	}
	out := make([]int, 0, len(l))
	for _, e := range l {
		if i, ok := e.(int64); ok {
			out = append(out, int(i))
		}
	}

	return out, nil
}

// Floats returns the numeric elements of a list dataset as float64.
// Non-numeric elements are skipped.
func (c *Collection) Floats(name string) ([]float64, error) {
	l, err := c.list(name)
	if err != nil {
		return nil, err
	}
	out := make([]float64, 0, len(l))
	for _, e := range l {
		switch n := e.(type) {
		case int64:
			out = append(out, float64(n))
		case float64:
			out = append(out, n)
		}
	}

	return out, nil
}

// IntMatrix returns a list-of-int-lists dataset: edge lists, adjacency
// lists and adjacency matrices.
func (c *Collection) IntMatrix(name string) ([][]int, error) {
	l, err := c.list(name)
	if err != nil {
		return nil, err
	}
	out := make([][]int, len(l))
	for i, row := range l {
		if out[i], err = intRow(row); err != nil {
			return nil, fmt.Errorf("%w: %s[%d]: %v", ErrBadShape, name, i, err)
		}
	}

	return out, nil
}

// IntCube returns a list of lists of int lists: weighted adjacency lists.
func (c *Collection) IntCube(name string) ([][][]int, error) {
	l, err := c.list(name)
	if err != nil {
		return nil, err
	}
	out := make([][][]int, len(l))
	for i, v := range l {
		rows, ok := v.([]any)
		if !ok && v != nil {
			return nil, fmt.Errorf("%w: %s[%d] is %s, want list", ErrBadShape, name, i, kind(v))
		}
		out[i] = make([][]int, len(rows))
		for j, row := range rows {
			if out[i][j], err = intRow(row); err != nil {
				return nil, fmt.Errorf("%w: %s[%d][%d]: %v", ErrBadShape, name, i, j, err)
			}
		}
	}

	return out, nil
}

// IntListMap returns an object dataset whose values are int lists.
func (c *Collection) IntListMap(name string) (map[string][]int, error) {
	v, err := c.lookup(name)
	if err != nil {
		return nil, err
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s is %s, want object", ErrBadShape, name, kind(v))
	}
	out := make(map[string][]int, len(m))
	for k, row := range m {
		if out[k], err = intRow(row); err != nil {
			return nil, fmt.Errorf("%w: %s[%q]: %v", ErrBadShape, name, k, err)
		}
	}

	return out, nil
}

// intRow converts a list of integers; a whole-valued float is accepted.
func intRow(v any) ([]int, error) {
	if v == nil {
		return []int{}, nil
	}
	l, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("got %s, want list", kind(v))
	}
	out := make([]int, len(l))
	for i, e := range l {
		switch n := e.(type) {
		case int64:
			out[i] = int(n)
		case float64:
			if n != math.Trunc(n) || math.IsInf(n, 0) {
				return nil, fmt.Errorf("element %d is %v, want integer", i, n)
			}
			out[i] = int(n)
		default:
			return nil, fmt.Errorf("element %d is %s, want integer", i, kind(e))
		}
	}

	return out, nil
}

// kind names a Collection value's type for error messages.
func kind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "bool"
	case int64, float64:
		return "number"
	case string:
		return "string"
	case []any:
		return "list"
	case map[string]any:
		return "object"
	}

	return strings.TrimPrefix(fmt.Sprintf("%T", v), "*")
}
