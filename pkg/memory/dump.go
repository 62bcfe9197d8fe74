package memory

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"numem/pkg/color"
)

// Print writes the cells in ascending address order, one
// "addr: name, type, value" line per bound variable. Colour is used only when
// w is a terminal.
func (m *Memory) Print(w io.Writer) error {
	ew := &errWriter{w: w}
	pal := color.For(w)

	ew.printf("%s\n", pal.Green("**MEMORY PRINT**"))
	ew.printf("Size: %d\n", m.Size())
	ew.printf("Capacity: %d\n", m.Capacity())
	ew.printf("Contents:\n")

	names := m.index.byAddress()
	for addr := 0; addr < m.cells.size; addr++ {
		v := m.cells.slots[addr]
		ew.printf("%s: %s, %s\n",
			pal.Cyan(fmt.Sprintf("%d", addr)),
			pal.Blue(names[addr]),
			describe(pal, v))
	}

	ew.printf("%s\n", pal.Green("**END PRINT**"))
	return ew.err
}

// PrintMap writes the name index in ascending name order.
func (m *Memory) PrintMap(w io.Writer) error {
	ew := &errWriter{w: w}
	pal := color.For(w)

	ew.printf("%s\n", pal.Green("**MEMORY MAP PRINT**"))
	for i, e := range m.index.entries {
		ew.printf("%s: '%s' -> cell %d\n", pal.Cyan(fmt.Sprintf("%d", i)), pal.Blue(e.Name), e.Address)
	}
	ew.printf("%s\n", pal.Green("**END PRINT**"))

	return ew.err
}

func describe(pal color.Palette, v Value) string {
	if v.IsNone() {
		return pal.Gray("None")
	}

	return pal.Yellow(v.Kind.String()) + ", " + v.String()
}

// Snapshot is a structured view of a Memory for diagnostics.
type Snapshot struct {
	Size     int             `yaml:"size"`
	Capacity int             `yaml:"capacity"`
	Cells    []CellSnapshot  `yaml:"cells"`
	Index    []IndexSnapshot `yaml:"index"`
}

type CellSnapshot struct {
	Address int    `yaml:"address"`
	Name    string `yaml:"name"`
	Type    string `yaml:"type"`
	Value   any    `yaml:"value"`
}

type IndexSnapshot struct {
	Name    string `yaml:"name"`
	Address int    `yaml:"address"`
}

// Snapshot captures the cells in address order and the index in name order.
func (m *Memory) Snapshot() Snapshot {
	s := Snapshot{
		Size:     m.Size(),
		Capacity: m.Capacity(),
		Cells:    make([]CellSnapshot, 0, m.cells.size),
		Index:    make([]IndexSnapshot, 0, m.index.len()),
	}

	names := m.index.byAddress()
	for addr := 0; addr < m.cells.size; addr++ {
		v := m.cells.get(addr)
		s.Cells = append(s.Cells, CellSnapshot{
			Address: addr,
			Name:    names[addr],
			Type:    v.Kind.String(),
			Value:   v.Payload(),
		})
	}

	for _, e := range m.index.entries {
		s.Index = append(s.Index, IndexSnapshot{Name: e.Name, Address: e.Address})
	}

	return s
}

// WriteYAML encodes Snapshot as YAML.
func (m *Memory) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(m.Snapshot()); err != nil {
		return fmt.Errorf("encode memory snapshot: %w", err)
	}

	return enc.Close()
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
