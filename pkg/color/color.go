package color

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"
)

var (
	output       = termenv.NewOutput(os.Stdout)
	colorEnabled = true
)

func init() {
	if os.Getenv("NO_COLOR") != "" || output.Profile == termenv.Ascii {
		colorEnabled = false
	}
}

func EnableColor(enable bool) {
	colorEnabled = enable
}

func IsColorEnabled() bool {
	return colorEnabled
}

func style(text string) termenv.Style {
	return output.String(text)
}

func colorize(ansi termenv.ANSIColor, text string) string {
	if !colorEnabled {
		return text
	}
	return style(text).Foreground(ansi).String()
}

func RedText(text string) string {
	return colorize(termenv.ANSIRed, text)
}

func BrightRedText(text string) string {
	return colorize(termenv.ANSIBrightRed, text)
}

func GreenText(text string) string {
	return colorize(termenv.ANSIGreen, text)
}

func YellowText(text string) string {
	return colorize(termenv.ANSIYellow, text)
}

func CyanText(text string) string {
	return colorize(termenv.ANSICyan, text)
}

func GrayText(text string) string {
	return colorize(termenv.ANSIBrightBlack, text)
}

func BoldText(text string) string {
	if !colorEnabled {
		return text
	}
	return style(text).Bold().String()
}

// Cell renders one data cell as "index:value", highlighting the cell
// under the data pointer
func Cell(index int, value uint8, current bool) string {
	text := fmt.Sprintf("%d:%d", index, value)
	if !current {
		return GrayText(text)
	}
	return BoldText(YellowText(text))
}

// Instruction renders a program position and its instruction
func Instruction(ip int, op rune) string {
	return CyanText(fmt.Sprintf("%d", ip)) + " " + YellowText(fmt.Sprintf("%q", op))
}
