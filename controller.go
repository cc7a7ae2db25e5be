package smack

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ErrQuit is returned by the quit command. Run treats it as a clean exit.
var ErrQuit = errors.New("quit")

const (
	ansiAltScreenOn  = "\x1b[?1049h"
	ansiAltScreenOff = "\x1b[?1049l"
	ansiClearHome    = "\x1b[H\x1b[2J"
	prompt           = "> "
)

const (
	defaultScreenWidth  = 80
	defaultScreenHeight = 24
)

// ControllerConfig configures NewController.
type ControllerConfig struct {
	Input    io.Reader
	Output   io.Writer
	Renderer *Renderer
	// Size reports the screen size before every frame. Defaults to 80x24.
	Size func() (width, height int)
	// AltScreen switches to the terminal's alternate screen while running.
	AltScreen bool
	Logger    *slog.Logger
}

// Controller runs the read-render loop of a presentation.
type Controller struct {
	state    *State
	in       *bufio.Reader
	out      io.Writer
	renderer *Renderer
	size     func() (int, int)
	alt      bool
	logger   *slog.Logger
	commands map[string]func() error
}

type binding struct {
	aliases []string
	action  func() error
}

// NewController prepares a controller positioned on the first step.
func NewController(p *Presentation, cfg ControllerConfig) (*Controller, error) {
	if p == nil {
		return nil, fmt.Errorf("controller: presentation is nil")
	}
	if cfg.Input == nil {
		return nil, fmt.Errorf("controller: input is nil")
	}
	if cfg.Output == nil {
		return nil, fmt.Errorf("controller: output is nil")
	}
	state, err := NewState(p.Steps())
	if err != nil {
		return nil, err
	}
	c := &Controller{
		state:    state,
		in:       bufio.NewReader(cfg.Input),
		out:      cfg.Output,
		renderer: cfg.Renderer,
		size:     cfg.Size,
		alt:      cfg.AltScreen,
		logger:   cfg.Logger,
	}
	if c.renderer == nil {
		c.renderer = NewRenderer(DefaultTheme())
	}
	if c.size == nil {
		c.size = func() (int, int) { return defaultScreenWidth, defaultScreenHeight }
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}
	c.commands = bindCommands([]binding{
		{aliases: []string{"", ">", "n"}, action: move(state.Next)},
		{aliases: []string{"<", "p"}, action: move(state.Previous)},
		{aliases: []string{"s", "0"}, action: move(state.Start)},
		{aliases: []string{"e", "$"}, action: move(state.End)},
		{aliases: []string{"r"}, action: func() error { return nil }},
		{aliases: []string{"q"}, action: func() error { return ErrQuit }},
	})
	return c, nil
}

func bindCommands(bindings []binding) map[string]func() error {
	commands := make(map[string]func() error)
	for _, b := range bindings {
		for _, alias := range b.aliases {
			commands[alias] = b.action
		}
	}
	return commands
}

func move(transition func()) func() error {
	return func() error {
		transition()
		return nil
	}
}

// State returns the navigation state.
func (c *Controller) State() *State { return c.state }

// Dispatch runs the command bound to input. Input is trimmed and lower-cased;
// unknown input does nothing.
func (c *Controller) Dispatch(input string) error {
	cmd := strings.ToLower(strings.TrimSpace(input))
	action, ok := c.commands[cmd]
	if !ok {
		c.logger.Debug("unknown command", "input", cmd)
		return nil
	}
	before := c.state.Index()
	if err := action(); err != nil {
		return err
	}
	if after := c.state.Index(); after != before {
		c.logger.Debug("step changed", "from", before, "to", after)
	}
	return nil
}

// Run shows the current step, reads one command per line and repeats until
// the quit command or the end of input.
func (c *Controller) Run() (err error) {
	if c.alt {
		if _, err := io.WriteString(c.out, ansiAltScreenOn); err != nil {
			return err
		}
		defer func() {
			if _, werr := io.WriteString(c.out, ansiAltScreenOff); err == nil {
				err = werr
			}
		}()
	}
	for {
		if err := c.show(); err != nil {
			return err
		}
		line, readErr := c.in.ReadString('\n')
		if readErr != nil && (readErr != io.EOF || line == "") {
			if readErr == io.EOF {
				return nil
			}
			return readErr
		}
		if err := c.Dispatch(line); err != nil {
			if errors.Is(err, ErrQuit) {
				return nil
			}
			return err
		}
	}
}

func (c *Controller) show() error {
	width, height := c.size()
	if width <= 0 {
		width = defaultScreenWidth
	}
	if height <= 0 {
		height = defaultScreenHeight
	}
	screen := c.renderer.RenderFrame(Frame{
		Step:     c.state.Current(),
		Position: c.state.Index(),
		Total:    c.state.Len(),
		Width:    width,
		// the prompt takes the last line
		Height: height - 1,
	})
	if c.alt {
		if _, err := io.WriteString(c.out, ansiClearHome); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(c.out, screen); err != nil {
		return err
	}
	_, err := io.WriteString(c.out, prompt)
	return err
}
