package memory

import (
	"slices"
	"strings"
)

// Entry pairs a bound variable name with the address of its cell.
type Entry struct {
	Name    string
	Address int
}

// nameIndex is kept sorted by Name (byte-wise, as strings.Compare) with no
// duplicate names.
type nameIndex struct {
	entries []Entry
}

func newNameIndex(capacity int) nameIndex {
	return nameIndex{entries: make([]Entry, 0, capacity)}
}

func compareEntry(e Entry, name string) int {
	return strings.Compare(e.Name, name)
}

// lookup finds name by binary search.
func (n *nameIndex) lookup(name string) (int, bool) {
	i, found := slices.BinarySearchFunc(n.entries, name, compareEntry)
	if !found {
		return -1, false
	}

	return n.entries[i].Address, true
}

// insert adds name at its sorted position, shifting later entries right.
// The caller guarantees name is not already present.
func (n *nameIndex) insert(name string, addr int) {
	pos, _ := slices.BinarySearchFunc(n.entries, name, compareEntry)
	n.entries = slices.Insert(n.entries, pos, Entry{Name: strings.Clone(name), Address: addr})
}

func (n *nameIndex) len() int {
	return len(n.entries)
}

// byAddress returns the bound names indexed by their address. Every address
// is below len(entries), so the result has no gaps.
func (n *nameIndex) byAddress() []string {
	names := make([]string, len(n.entries))
	for _, e := range n.entries {
		names[e.Address] = e.Name
	}

	return names
}
