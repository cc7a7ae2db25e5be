package smack

import (
	"os"
	"strconv"
	"strings"
)

// RenderOption configures a Renderer.
type RenderOption func(*renderConfig)

type renderConfig struct {
	osc8      bool
	infoLines int
}

// WithOSC8 enables or disables OSC 8 hyperlinks.
func WithOSC8(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.osc8 = enabled
	}
}

// WithInfoLines sets the number of content lines of the info footer.
func WithInfoLines(n int) RenderOption {
	return func(cfg *renderConfig) {
		if n > 0 {
			cfg.infoLines = n
		}
	}
}

const (
	osc8Start = "\x1b]8;;"
	osc8End   = "\x1b]8;;\x1b\\"
)

// hyperlink wraps label in an OSC 8 link to url.
func hyperlink(url, label string) string {
	return osc8Start + url + "\x1b\\" + label + osc8End
}

var osc8TermPrograms = map[string]bool{
	"iTerm.app": true,
	"WezTerm":   true,
	"vscode":    true,
}

// DetectOSC8Support returns true if the current environment likely supports
// OSC 8 hyperlinks.
func DetectOSC8Support() bool {
	switch {
	case os.Getenv("OSC8") == "0":
		return false
	case os.Getenv("DOMTERM") != "", os.Getenv("WT_SESSION") != "":
		return true
	case osc8TermPrograms[os.Getenv("TERM_PROGRAM")]:
		return true
	case strings.Contains(strings.ToLower(os.Getenv("TERM")), "kitty"):
		return true
	}
	n, err := strconv.Atoi(os.Getenv("VTE_VERSION"))
	return err == nil && n >= 5000
}
