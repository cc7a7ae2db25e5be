package smack

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles groups the semantic styles used by the renderer.
type Styles struct {
	Text          lipgloss.Style
	Heading       [6]lipgloss.Style
	Emphasis      lipgloss.Style
	Strong        lipgloss.Style
	Strikethrough lipgloss.Style
	CodeInline    lipgloss.Style
	CodeBlock     lipgloss.Style
	Quote         lipgloss.Style
	ListMarker    lipgloss.Style
	LinkText      lipgloss.Style
	LinkURL       lipgloss.Style
	ThematicBreak lipgloss.Style
	Border        lipgloss.Style
	PanelTitle    lipgloss.Style
	Footer        lipgloss.Style
	Bar           lipgloss.Style
	Error         lipgloss.Style
}

// Theme provides named styles for slide rendering.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

// palette holds the lipgloss colors a theme is built from.
type palette struct {
	text, muted, accent, heading, subheading string
	code, quote, link, border, bar, err      string
}

func fg(c string) lipgloss.Style {
	s := lipgloss.NewStyle()
	if c != "" {
		s = s.Foreground(lipgloss.Color(c))
	}
	return s
}

func stylesFromPalette(p palette) Styles {
	return Styles{
		Text: fg(p.text),
		Heading: [6]lipgloss.Style{
			fg(p.heading).Bold(true).Underline(true),
			fg(p.heading).Bold(true),
			fg(p.subheading).Bold(true),
			fg(p.subheading),
			fg(p.subheading).Italic(true),
			fg(p.muted).Italic(true),
		},
		Emphasis:      fg(p.text).Italic(true),
		Strong:        fg(p.text).Bold(true),
		Strikethrough: fg(p.muted).Strikethrough(true),
		CodeInline:    fg(p.code),
		CodeBlock:     fg(p.code),
		Quote:         fg(p.quote).Italic(true),
		ListMarker:    fg(p.accent),
		LinkText:      fg(p.link).Underline(true),
		LinkURL:       fg(p.muted),
		ThematicBreak: fg(p.muted),
		Border:        fg(p.border),
		PanelTitle:    fg(p.accent).Bold(true),
		Footer:        fg(p.muted),
		Bar:           fg(p.bar),
		Error:         fg(p.err).Bold(true),
	}
}

// plainStyles is a Styles value that adds no escape sequences.
func plainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Text:          plain,
		Heading:       [6]lipgloss.Style{plain, plain, plain, plain, plain, plain},
		Emphasis:      plain,
		Strong:        plain,
		Strikethrough: plain,
		CodeInline:    plain,
		CodeBlock:     plain,
		Quote:         plain,
		ListMarker:    plain,
		LinkText:      plain,
		LinkURL:       plain,
		ThematicBreak: plain,
		Border:        plain,
		PanelTitle:    plain,
		Footer:        plain,
		Bar:           plain,
		Error:         plain,
	}
}

var (
	paletteDefault = palette{
		text: "", muted: "244", accent: "212", heading: "81", subheading: "117",
		code: "180", quote: "250", link: "75", border: "240", bar: "81", err: "203",
	}
	paletteDracula = palette{
		text: "#f8f8f2", muted: "#6272a4", accent: "#ff79c6", heading: "#bd93f9", subheading: "#8be9fd",
		code: "#f1fa8c", quote: "#6272a4", link: "#8be9fd", border: "#44475a", bar: "#50fa7b", err: "#ff5555",
	}
	paletteGruvbox = palette{
		text: "#ebdbb2", muted: "#928374", accent: "#fe8019", heading: "#fabd2f", subheading: "#83a598",
		code: "#b8bb26", quote: "#a89984", link: "#83a598", border: "#504945", bar: "#8ec07c", err: "#fb4934",
	}
	paletteNord = palette{
		text: "#d8dee9", muted: "#4c566a", accent: "#88c0d0", heading: "#81a1c1", subheading: "#8fbcbb",
		code: "#a3be8c", quote: "#616e88", link: "#88c0d0", border: "#3b4252", bar: "#5e81ac", err: "#bf616a",
	}
	paletteTokyoNight = palette{
		text: "#c0caf5", muted: "#565f89", accent: "#bb9af7", heading: "#7aa2f7", subheading: "#7dcfff",
		code: "#9ece6a", quote: "#9aa5ce", link: "#7dcfff", border: "#3b4261", bar: "#2ac3de", err: "#f7768e",
	}
	paletteSolarizedDark = palette{
		text: "#839496", muted: "#586e75", accent: "#d33682", heading: "#268bd2", subheading: "#2aa198",
		code: "#859900", quote: "#657b83", link: "#268bd2", border: "#073642", bar: "#b58900", err: "#dc322f",
	}
	paletteGithubLight = palette{
		text: "#24292f", muted: "#6e7781", accent: "#8250df", heading: "#0550ae", subheading: "#0a3069",
		code: "#953800", quote: "#57606a", link: "#0969da", border: "#d0d7de", bar: "#1a7f37", err: "#cf222e",
	}
	paletteCatppuccinMocha = palette{
		text: "#cdd6f4", muted: "#6c7086", accent: "#f5c2e7", heading: "#89b4fa", subheading: "#94e2d5",
		code: "#a6e3a1", quote: "#9399b2", link: "#89dceb", border: "#45475a", bar: "#fab387", err: "#f38ba8",
	}
)

var builtinThemes = map[string]Theme{
	"default":          theme{name: "default", styles: stylesFromPalette(paletteDefault)},
	"dracula":          theme{name: "dracula", styles: stylesFromPalette(paletteDracula)},
	"gruvbox":          theme{name: "gruvbox", styles: stylesFromPalette(paletteGruvbox)},
	"nord":             theme{name: "nord", styles: stylesFromPalette(paletteNord)},
	"tokyo-night":      theme{name: "tokyo-night", styles: stylesFromPalette(paletteTokyoNight)},
	"solarized-dark":   theme{name: "solarized-dark", styles: stylesFromPalette(paletteSolarizedDark)},
	"github-light":     theme{name: "github-light", styles: stylesFromPalette(paletteGithubLight)},
	"catppuccin-mocha": theme{name: "catppuccin-mocha", styles: stylesFromPalette(paletteCatppuccinMocha)},
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	theme, ok := builtinThemes[normalized]
	return theme, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}

// BoringTheme returns a theme without colors or text attributes.
func BoringTheme() Theme {
	return NewTheme("boring", plainStyles())
}
