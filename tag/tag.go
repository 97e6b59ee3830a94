// Package tag defines the closed set of TAML element tags and their
// classification. The registry has 37 members: 8 standard colors, 8 bright
// colors, 16 background colors and 5 text styles. Node constructors do not
// consult the registry; callers that want validation use IsValid.
package tag

type Category int

const (
	Invalid Category = iota
	StandardColor
	BrightColor
	BackgroundColor
	TextStyle
)

func (c Category) String() string {
	switch c {
	case StandardColor:
		return "standard color"
	case BrightColor:
		return "bright color"
	case BackgroundColor:
		return "background color"
	case TextStyle:
		return "text style"
	default:
		return "<invalid>"
	}
}

var standardColors = []string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
}

var brightColors = []string{
	"brightBlack", "brightRed", "brightGreen", "brightYellow",
	"brightBlue", "brightMagenta", "brightCyan", "brightWhite",
}

var backgroundColors = []string{
	"bgBlack", "bgRed", "bgGreen", "bgYellow",
	"bgBlue", "bgMagenta", "bgCyan", "bgWhite",
	"bgBrightBlack", "bgBrightRed", "bgBrightGreen", "bgBrightYellow",
	"bgBrightBlue", "bgBrightMagenta", "bgBrightCyan", "bgBrightWhite",
}

var textStyles = []string{
	"bold", "dim", "italic", "underline", "strikethrough",
}

var categories map[string]Category

func init() {
	categories = make(map[string]Category, 37)
	for _, t := range standardColors {
		categories[t] = StandardColor
	}
	for _, t := range brightColors {
		categories[t] = BrightColor
	}
	for _, t := range backgroundColors {
		categories[t] = BackgroundColor
	}
	for _, t := range textStyles {
		categories[t] = TextStyle
	}
}

// CategoryOf returns Invalid for tags outside the registry.
func CategoryOf(tag string) Category {
	return categories[tag]
}

func IsValid(tag string) bool {
	return categories[tag] != Invalid
}

func IsStandardColor(tag string) bool {
	return categories[tag] == StandardColor
}

func IsBrightColor(tag string) bool {
	return categories[tag] == BrightColor
}

func IsBackgroundColor(tag string) bool {
	return categories[tag] == BackgroundColor
}

func IsTextStyle(tag string) bool {
	return categories[tag] == TextStyle
}

// All returns the registry in a stable order: standard colors, bright
// colors, background colors, text styles.
func All() []string {
	res := make([]string, 0, 37)
	res = append(res, standardColors...)
	res = append(res, brightColors...)
	res = append(res, backgroundColors...)
	res = append(res, textStyles...)
	return res
}
