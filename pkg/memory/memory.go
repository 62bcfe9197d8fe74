package memory

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrNotFound       = errors.New("variable not found")
	ErrInvalidAddress = errors.New("invalid memory address")
)

// Memory stores the values of named variables. Each name gets a permanent
// address the first time it is written; the Nth distinct name gets address
// N-1. Values go in and come out as copies, so callers never share string
// storage with the store.
//
// Memory is not safe for concurrent use.
type Memory struct {
	cells   cellArray
	index   nameIndex
	initCap int
}

type Option func(*Memory)

// WithInitialCapacity sets the number of cells allocated up front.
// Values below 1 fall back to DefaultCapacity.
func WithInitialCapacity(n int) Option {
	return func(m *Memory) { m.initCap = n }
}

// New creates an empty Memory with every cell set to None.
func New(opts ...Option) *Memory {
	m := &Memory{initCap: DefaultCapacity}
	for _, o := range opts {
		o(m)
	}

	if m.initCap < 1 {
		m.initCap = DefaultCapacity
	}

	m.Reset()
	return m
}

// Reset drops every binding and returns the store to its initial capacity.
func (m *Memory) Reset() {
	m.cells = newCellArray(m.initCap)
	m.index = newNameIndex(m.initCap)
}

// Size returns the number of bound variables.
func (m *Memory) Size() int {
	return m.cells.size
}

// Capacity returns the number of allocated cells.
func (m *Memory) Capacity() int {
	return m.cells.capacity()
}

// Address returns the address of a bound variable.
func (m *Memory) Address(name string) (int, error) {
	addr, ok := m.index.lookup(name)
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	return addr, nil
}

// ReadAddr returns a copy of the value stored at addr.
func (m *Memory) ReadAddr(addr int) (Value, error) {
	if !m.cells.valid(addr) {
		return Value{}, m.invalidAddress(addr)
	}

	return m.cells.get(addr), nil
}

// ReadName returns a copy of the value bound to name.
func (m *Memory) ReadName(name string) (Value, error) {
	addr, err := m.Address(name)
	if err != nil {
		return Value{}, err
	}

	return m.cells.get(addr), nil
}

// WriteAddr overwrites the cell at addr with a copy of v. It never creates a
// binding; addresses at or beyond Size are rejected and nothing changes.
func (m *Memory) WriteAddr(v Value, addr int) error {
	if !m.cells.valid(addr) {
		return m.invalidAddress(addr)
	}

	m.cells.set(addr, v)
	return nil
}

// WriteName binds name to a copy of v and returns its address. An existing
// binding keeps its address; a new name is appended to the cell array,
// growing it if full. WriteName cannot fail.
func (m *Memory) WriteName(v Value, name string) int {
	if addr, ok := m.index.lookup(name); ok {
		m.cells.set(addr, v)
		return addr
	}

	addr := m.cells.push(v)
	m.index.insert(name, addr)

	return addr
}

// Names returns the bound names in ascending order.
func (m *Memory) Names() []string {
	names := make([]string, 0, m.index.len())
	for _, e := range m.index.entries {
		names = append(names, e.Name)
	}

	return names
}

// Entries returns a copy of the name index in ascending name order.
func (m *Memory) Entries() []Entry {
	return slices.Clone(m.index.entries)
}

func (m *Memory) invalidAddress(addr int) error {
	return fmt.Errorf("%w: %d (size %d)", ErrInvalidAddress, addr, m.cells.size)
}
