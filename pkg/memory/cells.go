package memory

import "github.com/charmbracelet/log"

// DefaultCapacity is the number of cells a new Memory starts with.
const DefaultCapacity = 4

// cellArray holds the address-indexed values. len(slots) is the capacity;
// slots at index >= size are always None.
type cellArray struct {
	slots []Value
	size  int
}

func newCellArray(capacity int) cellArray {
	if capacity < 1 {
		capacity = DefaultCapacity
	}

	// make zeroes the slice, and the zero Value is None
	return cellArray{slots: make([]Value, capacity)}
}

func (c *cellArray) capacity() int {
	return len(c.slots)
}

// ensureCapacity doubles the backing slice when every slot is occupied.
// Existing cells keep their index; new slots start as None.
func (c *cellArray) ensureCapacity() {
	if c.size < len(c.slots) {
		return
	}

	old := len(c.slots)
	grown := make([]Value, old*2)
	copy(grown, c.slots)
	c.slots = grown

	log.Debug("memory grew", "from", old, "to", len(grown), "size", c.size)
}

// valid reports whether addr refers to an occupied cell.
func (c *cellArray) valid(addr int) bool {
	return addr >= 0 && addr < c.size
}

// get returns a deep copy of the value at addr. addr must be valid.
func (c *cellArray) get(addr int) Value {
	return c.slots[addr].Clone()
}

// set replaces the value at addr with a copy of v, dropping the old payload.
func (c *cellArray) set(addr int, v Value) {
	c.slots[addr] = v.Clone()
}

// push stores a copy of v in the next free cell and returns its address.
func (c *cellArray) push(v Value) int {
	c.ensureCapacity()

	addr := c.size
	c.slots[addr] = v.Clone()
	c.size++

	return addr
}
