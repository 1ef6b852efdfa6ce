// Package jsonpatch computes RFC 6902 patches between two JSON documents.
// Inputs are generic values as produced by json.Unmarshal into any; the
// empty path "" addresses the root document.
package jsonpatch

import "strconv"

// Op is a single RFC 6902 operation. Value is a pointer so that add/replace
// of an explicit JSON null still serializes a value field.
type Op struct {
	Op    string `json:"op"`
	Path  string `json:"path"`
	Value *any   `json:"value,omitempty"`
}

func add(path string, v any) Op     { return Op{Op: "add", Path: path, Value: &v} }
func replace(path string, v any) Op { return Op{Op: "replace", Path: path, Value: &v} }
func remove(path string) Op         { return Op{Op: "remove", Path: path} }

// Diff returns the operations transforming a into b.
func Diff(a, b any, path string) []Op {
	fwd, _ := DiffBoth(a, b, path)
	return fwd
}

// DiffBoth returns both the forward (a to b) and backward (b to a) patches
// in a single traversal.
func DiffBoth(a, b any, path string) (fwd, bwd []Op) {
	if a == nil && b == nil {
		return nil, nil
	}
	if a == nil || b == nil {
		return []Op{replace(path, b)}, []Op{replace(path, a)}
	}

	switch av := a.(type) {
	case map[string]any:
		if bv, ok := b.(map[string]any); ok {
			return diffObjects(av, bv, path)
		}
		return []Op{replace(path, b)}, []Op{replace(path, a)}
	case []any:
		if bv, ok := b.([]any); ok {
			return diffArrays(av, bv, path)
		}
		return []Op{replace(path, b)}, []Op{replace(path, a)}
	}
	switch b.(type) {
	case map[string]any, []any:
		return []Op{replace(path, b)}, []Op{replace(path, a)}
	}

	if a != b {
		return []Op{replace(path, b)}, []Op{replace(path, a)}
	}
	return nil, nil
}

func diffObjects(a, b map[string]any, path string) (fwd, bwd []Op) {
	for k, av := range a {
		if _, ok := b[k]; !ok {
			child := path + "/" + escape(k)
			fwd = append(fwd, remove(child))
			bwd = append(bwd, add(child, av))
		}
	}
	for k, bv := range b {
		child := path + "/" + escape(k)
		av, inA := a[k]
		if !inA {
			fwd = append(fwd, add(child, bv))
			bwd = append(bwd, remove(child))
			continue
		}
		subFwd, subBwd := DiffBoth(av, bv, child)
		fwd = append(fwd, subFwd...)
		bwd = append(bwd, subBwd...)
	}
	return fwd, bwd
}

func diffArrays(a, b []any, path string) (fwd, bwd []Op) {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	for i := 0; i < n; i++ {
		child := path + "/" + strconv.Itoa(i)
		subFwd, subBwd := DiffBoth(a[i], b[i], child)
		fwd = append(fwd, subFwd...)
		bwd = append(bwd, subBwd...)
	}

	// Removals run in descending index order so earlier ops do not shift
	// the paths of later ones; additions run ascending.
	for i := len(a) - 1; i >= n; i-- {
		fwd = append(fwd, remove(path+"/"+strconv.Itoa(i)))
	}
	for i := n; i < len(a); i++ {
		bwd = append(bwd, add(path+"/"+strconv.Itoa(i), a[i]))
	}
	for i := n; i < len(b); i++ {
		fwd = append(fwd, add(path+"/"+strconv.Itoa(i), b[i]))
	}
	for i := len(b) - 1; i >= n; i-- {
		bwd = append(bwd, remove(path+"/"+strconv.Itoa(i)))
	}

	return fwd, bwd
}

// escape encodes a JSON Pointer token per RFC 6901.
func escape(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '~':
			out = append(out, '~', '0')
		case '/':
			out = append(out, '~', '1')
		default:
			out = append(out, s[i])
		}
	}
	return string(out)
}
