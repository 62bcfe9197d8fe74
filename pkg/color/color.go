package color

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
)

// output carries the active colour profile. termenv picks the profile from
// the terminal and honours NO_COLOR.
var output = termenv.NewOutput(os.Stdout)

// EnableColor forces colour on or off regardless of the detected terminal.
func EnableColor(enable bool) {
	if enable {
		output = termenv.NewOutput(os.Stdout, termenv.WithProfile(termenv.ANSI))
		return
	}

	output = termenv.NewOutput(os.Stdout, termenv.WithProfile(termenv.Ascii))
}

func IsColorEnabled() bool {
	return output.Profile != termenv.Ascii
}

func Colorize(c termenv.Color, text string) string {
	if !IsColorEnabled() {
		return text
	}
	return output.String(text).Foreground(c).String()
}

func RedText(text string) string {
	return Colorize(termenv.ANSIRed, text)
}

func BrightRedText(text string) string {
	return Colorize(termenv.ANSIBrightRed, text)
}

func GreenText(text string) string {
	return Colorize(termenv.ANSIGreen, text)
}

func YellowText(text string) string {
	return Colorize(termenv.ANSIYellow, text)
}

func BlueText(text string) string {
	return Colorize(termenv.ANSIBrightBlue, text)
}

func MagentaText(text string) string {
	return Colorize(termenv.ANSIMagenta, text)
}

func CyanText(text string) string {
	return Colorize(termenv.ANSICyan, text)
}

func GrayText(text string) string {
	return Colorize(termenv.ANSIBrightBlack, text)
}

func Error(message string) string {
	if !IsColorEnabled() {
		return "Error: " + message
	}
	return BrightRedText("Error: ") + message
}

func Info(message string) string {
	if !IsColorEnabled() {
		return message
	}
	return BlueText("Info: ") + message
}

// Position renders a line/column pair.
func Position(line, col int) string {
	return YellowText(fmt.Sprintf("Line: %d, Column %d", line, col))
}

// Palette colours text bound for one writer. It is plain unless colour is
// enabled and the writer is stdout or a terminal of its own.
type Palette struct {
	enabled bool
}

func For(w io.Writer) Palette {
	if !IsColorEnabled() {
		return Palette{}
	}
	if f, ok := w.(*os.File); ok && f == os.Stdout {
		return Palette{enabled: true}
	}

	return Palette{enabled: termenv.NewOutput(w).Profile != termenv.Ascii}
}

func (p Palette) Enabled() bool {
	return p.enabled
}

func (p Palette) paint(fn func(string) string, text string) string {
	if !p.enabled {
		return text
	}
	return fn(text)
}

func (p Palette) Green(text string) string { return p.paint(GreenText, text) }
func (p Palette) Yellow(text string) string { return p.paint(YellowText, text) }
func (p Palette) Blue(text string) string { return p.paint(BlueText, text) }
func (p Palette) Magenta(text string) string { return p.paint(MagentaText, text) }
func (p Palette) Cyan(text string) string { return p.paint(CyanText, text) }
func (p Palette) Gray(text string) string { return p.paint(GrayText, text) }
