package montage

import "gonum.org/v1/gonum/spatial/r3"

// Selection is the result of matching requested names against loaded labels.
// Indices point into the loaded labels; Names holds the matched labels in
// request order. A selection may be empty.
type Selection struct {
	Indices []int
	Names   []string
}

// Select keeps each requested name that equals one of labels, in request
// order. A name present several times in labels resolves to its first
// occurrence; a name requested twice is selected twice.
func Select(requested, labels []string) Selection {
	first := make(map[string]int, len(labels))
	for i, label := range labels {
		if _, ok := first[label]; !ok {
			first[label] = i
		}
	}

	var sel Selection
	for _, name := range requested {
		if i, ok := first[name]; ok {
			sel.Indices = append(sel.Indices, i)
			sel.Names = append(sel.Names, name)
		}
	}
	return sel
}

// Len returns the number of selected sensors.
func (s Selection) Len() int {
	return len(s.Indices)
}

// Empty reports whether nothing matched.
func (s Selection) Empty() bool {
	return len(s.Indices) == 0
}

// Positions picks the selected entries of positions.
func (s Selection) Positions(positions []r3.Vec) []r3.Vec {
	out := make([]r3.Vec, len(s.Indices))
	for i, idx := range s.Indices {
		out[i] = positions[idx]
	}
	return out
}
