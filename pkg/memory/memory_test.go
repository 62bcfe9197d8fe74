package memory_test

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"testing"

	"numem/pkg/memory"
)

func TestNewMemoryIsEmpty(t *testing.T) {
	m := memory.New()

	if m.Size() != 0 {
		t.Errorf("expected size 0, got %d", m.Size())
	}
	if m.Capacity() != 4 {
		t.Errorf("expected capacity 4, got %d", m.Capacity())
	}
	if len(m.Names()) != 0 {
		t.Errorf("expected no names, got %v", m.Names())
	}
}

func TestWriteOneIntReadBack(t *testing.T) {
	m := memory.New()

	addr := m.WriteName(memory.Int(123), "x")
	if addr != 0 {
		t.Fatalf("expected address 0, got %d", addr)
	}
	if m.Size() != 1 {
		t.Fatalf("expected size 1, got %d", m.Size())
	}

	v, err := m.ReadName("x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Kind != memory.KindInt || v.I64 != 123 {
		t.Errorf("expected int 123, got %s %s", v.Kind, v)
	}
}

func TestNameIndexOrdering(t *testing.T) {
	tests := []struct {
		description string
		writes      []string
		names       []string
		addrs       []int // address per name, in name order
	}{
		{"reverse alphabetical", []string{"z", "a"}, []string{"a", "z"}, []int{1, 0}},
		{"mixed order", []string{"y", "a", "m"}, []string{"a", "m", "y"}, []int{1, 2, 0}},
		{"case sensitive", []string{"b", "B", "a", "A"}, []string{"A", "B", "a", "b"}, []int{3, 1, 2, 0}},
		{"prefixes", []string{"xyz", "x", "xy"}, []string{"x", "xy", "xyz"}, []int{1, 2, 0}},
	}

	for _, test := range tests {
		m := memory.New()
		for i, name := range test.writes {
			m.WriteName(memory.Int(int64(i)), name)
		}

		entries := m.Entries()
		if len(entries) != len(test.names) {
			t.Errorf("%s: expected %d entries, got %d", test.description, len(test.names), len(entries))
			continue
		}

		for i, e := range entries {
			if e.Name != test.names[i] || e.Address != test.addrs[i] {
				t.Errorf("%s: entry %d: expected %s->%d, got %s->%d",
					test.description, i, test.names[i], test.addrs[i], e.Name, e.Address)
			}
		}
	}
}

func TestOverwriteKeepsAddress(t *testing.T) {
	m := memory.New()
	m.WriteName(memory.Int(100), "x")
	m.WriteName(memory.Int(1), "y")

	addr := m.WriteName(memory.Int(999), "x")
	if addr != 0 {
		t.Errorf("expected overwrite to keep address 0, got %d", addr)
	}
	if m.Size() != 2 {
		t.Errorf("expected size 2, got %d", m.Size())
	}

	v, _ := m.ReadName("x")
	if !v.Equal(memory.Int(999)) {
		t.Errorf("expected 999, got %s", v)
	}
}

func TestOverwriteChangesType(t *testing.T) {
	tests := []struct {
		description string
		first       memory.Value
		second      memory.Value
	}{
		{"int to string", memory.Int(42), memory.Str("hello")},
		{"string to int", memory.Str("hello"), memory.Int(42)},
		{"string longer", memory.Str("hi"), memory.Str("a much longer string than before")},
		{"string shorter", memory.Str("a much longer string than after"), memory.Str("hi")},
		{"real to boolean", memory.Real(2.5), memory.Boolean(true)},
		{"ptr to none", memory.Address(77), memory.None()},
		{"none to real", memory.None(), memory.Real(-1.25)},
	}

	for _, test := range tests {
		m := memory.New()
		m.WriteName(test.first, "v")
		m.WriteName(test.second, "v")

		got, err := m.ReadName("v")
		if err != nil {
			t.Errorf("%s: unexpected error: %v", test.description, err)
			continue
		}
		if !got.Equal(test.second) {
			t.Errorf("%s: expected %s %s, got %s %s", test.description, test.second.Kind, test.second, got.Kind, got)
		}
		if got.Kind != memory.KindInt && got.Kind != memory.KindAddress && got.I64 != 0 {
			t.Errorf("%s: stale int payload %d", test.description, got.I64)
		}
		if got.Kind != memory.KindStr && got.Str != "" {
			t.Errorf("%s: stale string payload %q", test.description, got.Str)
		}
		if m.Size() != 1 {
			t.Errorf("%s: expected size 1, got %d", test.description, m.Size())
		}
	}
}

func TestValueKinds(t *testing.T) {
	tests := []struct {
		name  string
		value memory.Value
		kind  memory.Kind
	}{
		{"i", memory.Int(-5), memory.KindInt},
		{"r", memory.Real(3.14159), memory.KindReal},
		{"s", memory.Str("hello world"), memory.KindStr},
		{"empty", memory.Str(""), memory.KindStr},
		{"special", memory.Str("tab\tnew\nline 'quoted' \"double\""), memory.KindStr},
		{"spaces", memory.Str("     "), memory.KindStr},
		{"t", memory.Boolean(true), memory.KindBoolean},
		{"f", memory.Boolean(false), memory.KindBoolean},
		{"p", memory.Address(4096), memory.KindAddress},
		{"n", memory.None(), memory.KindNone},
	}

	m := memory.New()
	for _, test := range tests {
		m.WriteName(test.value, test.name)
	}

	for _, test := range tests {
		v, err := m.ReadName(test.name)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", test.name, err)
			continue
		}
		if v.Kind != test.kind {
			t.Errorf("%s: expected kind %s, got %s", test.name, test.kind, v.Kind)
		}
		if !v.Equal(test.value) {
			t.Errorf("%s: expected %s, got %s", test.name, test.value, v)
		}
	}
}

func TestNotFound(t *testing.T) {
	m := memory.New()
	m.WriteName(memory.Int(1), "x")

	if addr, err := m.Address("y"); !errors.Is(err, memory.ErrNotFound) || addr != -1 {
		t.Errorf("expected ErrNotFound and -1, got %d, %v", addr, err)
	}
	if _, err := m.ReadName("X"); !errors.Is(err, memory.ErrNotFound) {
		t.Errorf("expected ErrNotFound for case mismatch, got %v", err)
	}
	if _, err := m.ReadName(""); !errors.Is(err, memory.ErrNotFound) {
		t.Errorf("expected ErrNotFound for empty name, got %v", err)
	}
}

func TestAddressBoundaries(t *testing.T) {
	m := memory.New()
	m.WriteName(memory.Int(10), "a")
	m.WriteName(memory.Int(20), "b")
	m.WriteName(memory.Int(30), "c")

	for _, addr := range []int{-1, -100, 3, 4, 1000} {
		if _, err := m.ReadAddr(addr); !errors.Is(err, memory.ErrInvalidAddress) {
			t.Errorf("ReadAddr(%d): expected ErrInvalidAddress, got %v", addr, err)
		}
		if err := m.WriteAddr(memory.Int(0), addr); !errors.Is(err, memory.ErrInvalidAddress) {
			t.Errorf("WriteAddr(%d): expected ErrInvalidAddress, got %v", addr, err)
		}
	}

	// last valid address
	v, err := m.ReadAddr(2)
	if err != nil || !v.Equal(memory.Int(30)) {
		t.Errorf("ReadAddr(2): expected 30, got %s, %v", v, err)
	}

	if m.Size() != 3 || m.Capacity() != 4 {
		t.Errorf("failed writes mutated the store: size %d, capacity %d", m.Size(), m.Capacity())
	}
	for addr, want := range []int64{10, 20, 30} {
		v, _ := m.ReadAddr(addr)
		if v.I64 != want {
			t.Errorf("cell %d changed: expected %d, got %s", addr, want, v)
		}
	}
}

func TestEmptyMemoryOperationsFail(t *testing.T) {
	m := memory.New()

	if _, err := m.Address("x"); !errors.Is(err, memory.ErrNotFound) {
		t.Errorf("Address: expected ErrNotFound, got %v", err)
	}
	if _, err := m.ReadName("x"); !errors.Is(err, memory.ErrNotFound) {
		t.Errorf("ReadName: expected ErrNotFound, got %v", err)
	}
	for _, addr := range []int{-1, 0, 1, 3} {
		if _, err := m.ReadAddr(addr); !errors.Is(err, memory.ErrInvalidAddress) {
			t.Errorf("ReadAddr(%d): expected ErrInvalidAddress, got %v", addr, err)
		}
		if err := m.WriteAddr(memory.Int(1), addr); !errors.Is(err, memory.ErrInvalidAddress) {
			t.Errorf("WriteAddr(%d): expected ErrInvalidAddress, got %v", addr, err)
		}
	}

	if m.Size() != 0 {
		t.Errorf("expected size 0, got %d", m.Size())
	}
}

func TestWriteAddrDoesNotBind(t *testing.T) {
	m := memory.New()
	m.WriteName(memory.Int(1), "x")
	m.WriteName(memory.Str("hi"), "y")

	if err := m.WriteAddr(memory.Str("replaced"), 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if m.Size() != 2 {
		t.Errorf("expected size 2, got %d", m.Size())
	}
	if !slices.Equal(m.Names(), []string{"x", "y"}) {
		t.Errorf("index changed: %v", m.Names())
	}

	v, _ := m.ReadName("x")
	if !v.Equal(memory.Str("replaced")) {
		t.Errorf("expected 'replaced', got %s", v)
	}
	if addr, _ := m.Address("x"); addr != 0 {
		t.Errorf("expected x at 0, got %d", addr)
	}
}

func TestGrowthDoubling(t *testing.T) {
	m := memory.New()

	expected := []int{4, 4, 4, 4, 8, 8, 8, 8, 16, 16, 16, 16, 16, 16, 16, 16, 32}
	for i, want := range expected {
		m.WriteName(memory.Int(int64(i)), fmt.Sprintf("v%02d", i))

		if m.Size() != i+1 {
			t.Errorf("after %d names: expected size %d, got %d", i+1, i+1, m.Size())
		}
		if m.Capacity() != want {
			t.Errorf("after %d names: expected capacity %d, got %d", i+1, want, m.Capacity())
		}
	}

	// overwrites never grow
	for i := range expected {
		m.WriteName(memory.Str("again"), fmt.Sprintf("v%02d", i))
	}
	if m.Size() != len(expected) || m.Capacity() != 32 {
		t.Errorf("overwrites changed counts: size %d, capacity %d", m.Size(), m.Capacity())
	}
}

func TestAddressStability(t *testing.T) {
	m := memory.New()

	names := []string{"zeta", "alpha", "mu", "beta", "omega", "gamma", "delta", "pi", "chi", "eta", "tau", "nu"}
	issued := map[string]int{}

	for i, name := range names {
		issued[name] = m.WriteName(memory.Int(int64(i)), name)
		if issued[name] != i {
			t.Errorf("%s: expected address %d, got %d", name, i, issued[name])
		}

		// every earlier name keeps its address
		for prev, addr := range issued {
			got, err := m.Address(prev)
			if err != nil || got != addr {
				t.Errorf("after binding %s: %s moved from %d to %d (%v)", name, prev, addr, got, err)
			}
		}
	}

	for i, name := range names {
		v, err := m.ReadAddr(issued[name])
		if err != nil || v.I64 != int64(i) {
			t.Errorf("%s: expected %d at address %d, got %s (%v)", name, i, issued[name], v, err)
		}
	}
}

func TestAlphabeticalManyVariables(t *testing.T) {
	m := memory.New()

	var names []string
	for i := 0; i < 500; i++ {
		// a scrambled but deterministic order
		name := fmt.Sprintf("var_%03d", (i*37)%500)
		names = append(names, name)
		m.WriteName(memory.Int(int64(i)), name)
	}

	got := m.Names()
	if !sort.StringsAreSorted(got) {
		t.Fatalf("names are not sorted")
	}
	for i := 1; i < len(got); i++ {
		if got[i] == got[i-1] {
			t.Fatalf("duplicate name %s", got[i])
		}
	}

	if m.Size() != 500 || m.Capacity() != 512 {
		t.Errorf("expected size 500 capacity 512, got %d %d", m.Size(), m.Capacity())
	}

	for i, name := range names {
		addr, err := m.Address(name)
		if err != nil || addr != i {
			t.Errorf("%s: expected address %d, got %d (%v)", name, i, addr, err)
		}
	}
}

func TestStringIndependence(t *testing.T) {
	m := memory.New()

	buf := []byte("original")
	m.WriteName(memory.StrBytes(buf), "s")
	copy(buf, "CHANGED!")

	v, _ := m.ReadName("s")
	if v.Str != "original" {
		t.Errorf("store aliased caller buffer: got %q", v.Str)
	}

	first, _ := m.ReadName("s")
	second, _ := m.ReadAddr(0)
	first.Str = "mutated copy"

	if second.Str != "original" {
		t.Errorf("second read affected by first: got %q", second.Str)
	}

	third, _ := m.ReadName("s")
	if third.Str != "original" {
		t.Errorf("store affected by caller copy: got %q", third.Str)
	}
}

func TestSameStringManyVariables(t *testing.T) {
	m := memory.New()
	shared := memory.Str("shared")

	for _, name := range []string{"a", "b", "c"} {
		m.WriteName(shared, name)
	}
	m.WriteName(memory.Str("only b"), "b")

	for name, want := range map[string]string{"a": "shared", "b": "only b", "c": "shared"} {
		v, _ := m.ReadName(name)
		if v.Str != want {
			t.Errorf("%s: expected %q, got %q", name, want, v.Str)
		}
	}
}

func TestEndToEndScenario(t *testing.T) {
	m := memory.New()

	m.WriteName(memory.Int(123), "x")
	if addr, _ := m.Address("x"); addr != 0 {
		t.Fatalf("expected x at 0, got %d", addr)
	}

	m.WriteName(memory.Str("hi"), "y")
	if addr, _ := m.Address("y"); addr != 1 {
		t.Fatalf("expected y at 1, got %d", addr)
	}

	if err := m.WriteAddr(memory.Int(456), 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, _ := m.ReadName("x"); !v.Equal(memory.Int(456)) {
		t.Fatalf("expected x == 456, got %s", v)
	}

	m.WriteName(memory.Real(1.5), "a")
	m.WriteName(memory.Boolean(true), "b")
	m.WriteName(memory.None(), "c")

	if m.Size() != 5 || m.Capacity() != 8 {
		t.Errorf("expected size 5 capacity 8, got %d %d", m.Size(), m.Capacity())
	}
}

func TestAlternatingOperations(t *testing.T) {
	m := memory.New()

	for i := 0; i < 20; i++ {
		name := fmt.Sprintf("n%d", i)
		addr := m.WriteName(memory.Int(int64(i)), name)

		if err := m.WriteAddr(memory.Int(int64(i*10)), addr); err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}

		v, err := m.ReadName(name)
		if err != nil || v.I64 != int64(i*10) {
			t.Errorf("%s: expected %d, got %s (%v)", name, i*10, v, err)
		}

		if _, err := m.ReadAddr(m.Size()); !errors.Is(err, memory.ErrInvalidAddress) {
			t.Errorf("after %s: reading at size should fail, got %v", name, err)
		}
	}
}

func TestInitialCapacityOption(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{1, 1},
		{16, 16},
		{0, memory.DefaultCapacity},
		{-3, memory.DefaultCapacity},
	}

	for _, test := range tests {
		m := memory.New(memory.WithInitialCapacity(test.in))
		if m.Capacity() != test.want {
			t.Errorf("WithInitialCapacity(%d): expected %d, got %d", test.in, test.want, m.Capacity())
		}
	}

	m := memory.New(memory.WithInitialCapacity(1))
	m.WriteName(memory.Int(1), "a")
	m.WriteName(memory.Int(2), "b")
	m.WriteName(memory.Int(3), "c")
	if m.Capacity() != 4 {
		t.Errorf("expected capacity 1 -> 2 -> 4, got %d", m.Capacity())
	}
}

func TestReset(t *testing.T) {
	m := memory.New()
	for i := 0; i < 9; i++ {
		m.WriteName(memory.Int(int64(i)), fmt.Sprintf("x%d", i))
	}

	m.Reset()

	if m.Size() != 0 || m.Capacity() != 4 {
		t.Errorf("expected size 0 capacity 4 after reset, got %d %d", m.Size(), m.Capacity())
	}
	if _, err := m.ReadName("x0"); !errors.Is(err, memory.ErrNotFound) {
		t.Errorf("expected ErrNotFound after reset, got %v", err)
	}
	if addr := m.WriteName(memory.Int(1), "x5"); addr != 0 {
		t.Errorf("expected address 0 after reset, got %d", addr)
	}
}
