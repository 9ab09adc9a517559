package mdpress

import "fmt"

// DocumentList is an ordered collection of Markdown file paths with a
// single active selection. Paths are unique; insertion order is
// conversion order.
type DocumentList struct {
	paths  []string
	index  map[string]int
	active int
}

// NewDocumentList creates an empty document list with no active selection.
func NewDocumentList() *DocumentList {
	return &DocumentList{
		index:  make(map[string]int),
		active: -1,
	}
}

// Add appends a path to the list. The first path added becomes the active
// selection. Returns ErrDuplicatePath if the path is already present.
func (l *DocumentList) Add(path string) error {
	if _, ok := l.index[path]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicatePath, path)
	}
	l.index[path] = len(l.paths)
	l.paths = append(l.paths, path)
	if l.active < 0 {
		l.active = 0
	}
	return nil
}

// Remove deletes a path from the list. The active selection is preserved
// when possible: removing an entry before the active one shifts the
// selection down with it, and removing the active entry selects the next
// entry, or the previous one when the last entry was removed. Removing an
// unknown path is a no-op.
func (l *DocumentList) Remove(path string) {
	pos, ok := l.index[path]
	if !ok {
		return
	}

	l.paths = append(l.paths[:pos], l.paths[pos+1:]...)
	delete(l.index, path)
	for i := pos; i < len(l.paths); i++ {
		l.index[l.paths[i]] = i
	}

	switch {
	case len(l.paths) == 0:
		l.active = -1
	case pos < l.active:
		l.active--
	case pos == l.active && l.active >= len(l.paths):
		l.active = len(l.paths) - 1
	}
}

// Clear removes all paths and the active selection.
func (l *DocumentList) Clear() {
	l.paths = nil
	l.index = make(map[string]int)
	l.active = -1
}

// Paths returns the paths in insertion order. The returned slice is a
// copy.
func (l *DocumentList) Paths() []string {
	out := make([]string, len(l.paths))
	copy(out, l.paths)
	return out
}

// Len returns the number of paths in the list.
func (l *DocumentList) Len() int {
	return len(l.paths)
}

// Contains reports whether the path is in the list.
func (l *DocumentList) Contains(path string) bool {
	_, ok := l.index[path]
	return ok
}

// Active returns the active path, or "" when the list is empty.
func (l *DocumentList) Active() string {
	if l.active < 0 {
		return ""
	}
	return l.paths[l.active]
}

// SetActive selects the given path. Selecting an unknown path is a no-op.
func (l *DocumentList) SetActive(path string) {
	if pos, ok := l.index[path]; ok {
		l.active = pos
	}
}
