package tag

import "github.com/fatih/color"

var colorAttrs = map[string]color.Attribute{
	"black":   color.FgBlack,
	"red":     color.FgRed,
	"green":   color.FgGreen,
	"yellow":  color.FgYellow,
	"blue":    color.FgBlue,
	"magenta": color.FgMagenta,
	"cyan":    color.FgCyan,
	"white":   color.FgWhite,

	"brightBlack":   color.FgHiBlack,
	"brightRed":     color.FgHiRed,
	"brightGreen":   color.FgHiGreen,
	"brightYellow":  color.FgHiYellow,
	"brightBlue":    color.FgHiBlue,
	"brightMagenta": color.FgHiMagenta,
	"brightCyan":    color.FgHiCyan,
	"brightWhite":   color.FgHiWhite,

	"bgBlack":   color.BgBlack,
	"bgRed":     color.BgRed,
	"bgGreen":   color.BgGreen,
	"bgYellow":  color.BgYellow,
	"bgBlue":    color.BgBlue,
	"bgMagenta": color.BgMagenta,
	"bgCyan":    color.BgCyan,
	"bgWhite":   color.BgWhite,

	"bgBrightBlack":   color.BgHiBlack,
	"bgBrightRed":     color.BgHiRed,
	"bgBrightGreen":   color.BgHiGreen,
	"bgBrightYellow":  color.BgHiYellow,
	"bgBrightBlue":    color.BgHiBlue,
	"bgBrightMagenta": color.BgHiMagenta,
	"bgBrightCyan":    color.BgHiCyan,
	"bgBrightWhite":   color.BgHiWhite,

	"bold":          color.Bold,
	"dim":           color.Faint,
	"italic":        color.Italic,
	"underline":     color.Underline,
	"strikethrough": color.CrossedOut,
}

// Color maps a registry tag to its terminal attribute, for debug display.
// Returns nil for tags outside the registry.
func Color(tag string) *color.Color {
	attr, ok := colorAttrs[tag]
	if !ok {
		return nil
	}
	return color.New(attr)
}
