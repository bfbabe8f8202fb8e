package calc

import (
	"github.com/logrusorgru/aurora/v4"
)

func colorizeResult(str string) string {
	return aurora.Colorize(str, aurora.YellowFg|aurora.BrightFg).String()
}

func colorizeError(message string) string {
	return aurora.Colorize(message, aurora.RedFg|aurora.BrightFg|aurora.BoldFm).String()
}
