package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/smack"
	"pkt.systems/version"
)

const (
	defaultThemeName = "default"
	defaultWidth     = 80
	defaultHeight    = 24
)

const (
	commandShow    = "show"
	commandInspect = "inspect"
)

func init() {
	version.SetDefaultModule("pkt.systems/smack")
}

type options struct {
	themeName   string
	width       int
	height      int
	osc8        string
	boring      bool
	listThemes  bool
	noAltScreen bool
	logFile     string
	showVersion bool
	infoLines   int
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options
	flags := pflag.NewFlagSet("smack", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&opts.themeName, "theme", "t", defaultThemeName, "Theme name")
	flags.IntVarP(&opts.width, "width", "w", 0, "Screen width override (0 uses terminal width if available)")
	flags.IntVarP(&opts.height, "height", "H", 0, "Screen height override (0 uses terminal height if available)")
	flags.StringVarP(&opts.osc8, "osc8", "8", "off", "OSC8 hyperlinks: auto|on|off")
	flags.BoolVarP(&opts.boring, "boring", "b", false, "Generate non-ANSI output")
	flags.BoolVar(&opts.listThemes, "list-themes", false, "List available themes")
	flags.BoolVar(&opts.noAltScreen, "no-alt-screen", false, "Draw frames in the normal screen buffer")
	flags.StringVar(&opts.logFile, "log-file", "", "Append debug log records to this file")
	flags.IntVar(&opts.infoLines, "info-lines", 1, "Content lines of the info footer")
	flags.BoolVarP(&opts.showVersion, "version", "v", false, "Print version and exit")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: smack [show] [flags] <dir>\n")
		fmt.Fprintf(stderr, "       smack inspect [flags] <dir>\n")
		fmt.Fprintln(stderr, "\nEvery *.md file in <dir> is a section, presented in file name order.")
		fmt.Fprintln(stderr, "Commands while presenting: <enter>/n/> next, p/< previous, s/0 start, e/$ end, r redraw, q quit.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}
	if opts.showVersion {
		fmt.Fprintln(stdout, version.Module(), version.Current())
		return 0
	}
	if opts.listThemes {
		printThemes(stdout)
		return 0
	}

	command, rest := splitCommand(flags.Args())
	if len(rest) != 1 {
		flags.Usage()
		return 2
	}
	dir := rest[0]

	logger, closeLog, err := openLogger(opts.logFile)
	if err != nil {
		fmt.Fprintf(stderr, "open log file: %v\n", err)
		return 1
	}
	defer func() { _ = closeLog() }()

	pres, err := smack.Load(dir, smack.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(stderr, "load presentation: %v\n", err)
		return 1
	}

	if command == commandInspect {
		if err := pres.WriteOutline(stdout); err != nil {
			fmt.Fprintf(stderr, "inspect: %v\n", err)
			return 1
		}
		return 0
	}

	theme, ok := smack.ThemeByName(opts.themeName)
	if !ok {
		fmt.Fprintf(stderr, "unknown theme %q\n\n", opts.themeName)
		printThemes(stderr)
		return 2
	}
	if opts.boring {
		theme = smack.BoringTheme()
	}
	osc8, err := resolveOSC8(opts.osc8)
	if err != nil {
		fmt.Fprintf(stderr, "invalid --osc8 %q: %v\n", opts.osc8, err)
		return 2
	}

	ctrl, err := smack.NewController(pres, smack.ControllerConfig{
		Input:     stdin,
		Output:    stdout,
		Renderer:  smack.NewRenderer(theme, smack.WithOSC8(osc8), smack.WithInfoLines(opts.infoLines)),
		Size:      screenSize(stdout, opts.width, opts.height),
		AltScreen: !opts.noAltScreen && isTerminal(stdout),
		Logger:    logger,
	})
	if err != nil {
		fmt.Fprintf(stderr, "present: %v\n", err)
		return 1
	}
	if err := ctrl.Run(); err != nil {
		fmt.Fprintf(stderr, "present: %v\n", err)
		return 1
	}
	return 0
}

// splitCommand separates an optional leading sub-command from its arguments.
func splitCommand(args []string) (string, []string) {
	if len(args) > 0 {
		switch args[0] {
		case commandShow, commandInspect:
			return args[0], args[1:]
		}
	}
	return commandShow, args
}

func openLogger(path string) (*slog.Logger, func() error, error) {
	if strings.TrimSpace(path) == "" {
		return slog.New(slog.DiscardHandler), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, f.Close, nil
}

func printThemes(w io.Writer) {
	names := smack.AvailableThemes()
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintln(w, name)
	}
}

// screenSize returns a size function for the controller. Overrides win;
// otherwise the terminal is asked before every frame so resizes are picked
// up on the next command.
func screenSize(w io.Writer, width, height int) func() (int, int) {
	return func() (int, int) {
		tw, th := terminalSize(w, defaultWidth, defaultHeight)
		if width > 0 {
			tw = width
		}
		if height > 0 {
			th = height
		}
		return tw, th
	}
}

func terminalSize(w io.Writer, fallbackWidth, fallbackHeight int) (int, int) {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if tw, th, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 && th > 0 {
			return tw, th
		}
	}
	return envInt("COLUMNS", fallbackWidth), envInt("LINES", fallbackHeight)
}

func envInt(name string, fallback int) int {
	if value := os.Getenv(name); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func resolveOSC8(mode string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "auto":
		return smack.DetectOSC8Support(), nil
	case "on", "true", "1", "yes":
		return true, nil
	case "", "off", "false", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("expected auto|on|off")
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
