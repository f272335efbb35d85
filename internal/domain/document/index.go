package document

import "slices"

// LineIndex is an ordered multimap from key to the indexes of the lines
// holding it. Keys are kept in order of first appearance; line indexes
// ascend.
type LineIndex struct {
	keys  []string
	lines map[string][]int
}

func newLineIndex() *LineIndex {
	return &LineIndex{lines: make(map[string][]int)}
}

func (ix *LineIndex) add(key string, line int) {
	if _, ok := ix.lines[key]; !ok {
		ix.keys = append(ix.keys, key)
	}
	ix.lines[key] = append(ix.lines[key], line)
}

// Lines returns the line indexes of key.
func (ix *LineIndex) Lines(key string) []int {
	return slices.Clone(ix.lines[key])
}

// First returns the index of the first line holding key.
func (ix *LineIndex) First(key string) (int, bool) {
	l := ix.lines[key]
	if len(l) == 0 {
		return 0, false
	}
	return l[0], true
}

// Last returns the index of the last line holding key.
func (ix *LineIndex) Last(key string) (int, bool) {
	l := ix.lines[key]
	if len(l) == 0 {
		return 0, false
	}
	return l[len(l)-1], true
}

// Keys returns the indexed keys in order of first appearance.
func (ix *LineIndex) Keys() []string {
	return slices.Clone(ix.keys)
}
