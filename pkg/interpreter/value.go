package interpreter

import (
	"fmt"
	"strconv"

	"numem/pkg/color"
	"numem/pkg/memory"
)

// formatValue renders a value read by a statement, Python-style: strings are
// quoted, reals keep full precision, pointers are tagged.
func formatValue(pal color.Palette, v memory.Value) string {
	switch v.Kind {
	case memory.KindInt:
		return pal.Cyan(strconv.FormatInt(v.I64, 10))
	case memory.KindReal:
		return pal.Cyan(strconv.FormatFloat(v.F64, 'g', -1, 64))
	case memory.KindStr:
		return pal.Green(strconv.Quote(v.Str))
	case memory.KindBoolean:
		return pal.Magenta(v.String())
	case memory.KindAddress:
		return pal.Yellow(fmt.Sprintf("ptr(%d)", v.I64))
	default:
		return pal.Gray("None")
	}
}
