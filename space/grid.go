package space

// Normalize converts a loosely typed grid into a canonical nested structure
// of distributions, without mutating the input.
//
// A grid is either a flat list of dimension specs (one implicit sub-grid) or
// a list of sub-grids, where each sub-grid holds mutually exclusive dimension
// specs. The flat form is detected from the first element: a Distribution, or
// a sequence whose first element is a plain number or string, marks the grid
// as flat. This sniffing is a documented heuristic; a first element that fits
// neither shape is an error, never a silent fallback.
//
// Each raw dimension spec is classified by shape:
//   - more than two elements, or a leading string: Categorical over all
//     elements as labels;
//   - exactly two elements with an integral first element: Integer(low, high)
//     — integral is checked before real, since an integer also reads as real;
//   - exactly two elements with a real first element: Real(low, high).
//
// Anything else is an invalid-argument error. Sequence elements may be []any,
// []float64, []int, or []string.
func Normalize(grid []any) ([][]Distribution, error) {
	if len(grid) == 0 {
		return nil, invalidArgumentf("Normalize", "grid is empty")
	}

	flat, err := isFlat(grid[0])
	if err != nil {
		return nil, err
	}

	var subGrids [][]any
	if flat {
		subGrids = [][]any{grid}
	} else {
		subGrids = make([][]any, len(grid))
		for i, sg := range grid {
			elems, ok := asSlice(sg)
			if !ok {
				return nil, invalidArgumentf("Normalize", "sub-grid %d is not a sequence (%T)", i, sg)
			}
			subGrids[i] = elems
		}
	}

	out := make([][]Distribution, len(subGrids))
	for i, sg := range subGrids {
		if len(sg) == 0 {
			return nil, invalidArgumentf("Normalize", "sub-grid %d is empty", i)
		}
		dists := make([]Distribution, len(sg))
		for j, spec := range sg {
			d, err := normalizeSpec(spec)
			if err != nil {
				return nil, err
			}
			dists[j] = d
		}
		out[i] = dists
	}
	return out, nil
}

// isFlat applies the flat-vs-nested heuristic to the first grid element.
func isFlat(first any) (bool, error) {
	if _, ok := first.(Distribution); ok {
		return true, nil
	}
	elems, ok := asSlice(first)
	if !ok {
		return false, invalidArgumentf("Normalize", "first grid element %v (%T) is neither a distribution nor a sequence", first, first)
	}
	if len(elems) == 0 {
		return false, invalidArgumentf("Normalize", "first grid element is an empty sequence")
	}
	switch elems[0].(type) {
	case string:
		return true, nil
	default:
		if _, numeric := asNumber(elems[0]); numeric {
			return true, nil
		}
	}
	// First element of the first element is itself a spec: nested form.
	return false, nil
}

// normalizeSpec converts one dimension spec into a Distribution.
func normalizeSpec(spec any) (Distribution, error) {
	if d, ok := spec.(Distribution); ok {
		return d, nil
	}
	elems, ok := asSlice(spec)
	if !ok {
		return nil, invalidArgumentf("Normalize", "dimension spec %v (%T) is neither a distribution nor a sequence", spec, spec)
	}
	if len(elems) == 0 {
		return nil, invalidArgumentf("Normalize", "dimension spec is empty")
	}

	if _, isString := elems[0].(string); isString || len(elems) > 2 {
		return NewCategorical(elems)
	}

	if len(elems) != 2 {
		return nil, invalidArgumentf("Normalize", "cannot classify dimension spec %v", elems)
	}

	// Integral before real: an integer value also reads as a real number.
	if low, ok := asInt(elems[0]); ok {
		high, ok := asInt(elems[1])
		if !ok {
			return nil, invalidArgumentf("Normalize", "integer dimension %v has a non-integral upper bound", elems)
		}
		return NewInteger(low, high)
	}
	if low, ok := asNumber(elems[0]); ok {
		high, ok := asNumber(elems[1])
		if !ok {
			return nil, invalidArgumentf("Normalize", "real dimension %v has a non-numeric upper bound", elems)
		}
		return NewReal(low, high)
	}

	return nil, invalidArgumentf("Normalize", "cannot classify dimension spec %v: first element %v (%T) is neither numeric nor a string", elems, elems[0], elems[0])
}

// asSlice widens common sequence forms to []any, copying the elements.
func asSlice(v any) ([]any, bool) {
	switch s := v.(type) {
	case []any:
		return append([]any(nil), s...), true
	case []float64:
		out := make([]any, len(s))
		for i, x := range s {
			out[i] = x
		}
		return out, true
	case []int:
		out := make([]any, len(s))
		for i, x := range s {
			out[i] = x
		}
		return out, true
	case []string:
		out := make([]any, len(s))
		for i, x := range s {
			out[i] = x
		}
		return out, true
	default:
		return nil, false
	}
}

// asInt reports whether v is an integral number, returning its value.
// Floating-point values are never integral here, mirroring the spec-before-
// real classification on the Go type rather than the numeric value.
func asInt(v any) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case int8:
		return int(x), true
	case int16:
		return int(x), true
	case int32:
		return int(x), true
	case int64:
		return int(x), true
	case uint:
		return int(x), true
	case uint8:
		return int(x), true
	case uint16:
		return int(x), true
	case uint32:
		return int(x), true
	case uint64:
		return int(x), true
	default:
		return 0, false
	}
}

// asNumber reports whether v is any numeric value, returning it as float64.
func asNumber(v any) (float64, bool) {
	if i, ok := asInt(v); ok {
		return float64(i), true
	}
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	default:
		return 0, false
	}
}
