package smack

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/muesli/reflow/truncate"
)

// ErrEmptyPresentation reports a directory without Markdown files.
var ErrEmptyPresentation = errors.New("presentation has no steps")

// SourceExt is the extension of presentation source files.
const SourceExt = ".md"

// LoadOption configures Load.
type LoadOption func(*loadConfig)

type loadConfig struct {
	logger *slog.Logger
}

// WithLogger sets the logger receiving debug records while loading.
func WithLogger(logger *slog.Logger) LoadOption {
	return func(cfg *loadConfig) {
		cfg.logger = logger
	}
}

// Presentation is the ordered set of sections of a directory.
type Presentation struct {
	Dir      string
	Sections []*Section

	steps []*Step
}

// Load reads every *.md file directly inside dir, ordered by file stem.
// Sub-directories and other files are ignored. A directory without Markdown
// files yields ErrEmptyPresentation.
func Load(dir string, opts ...LoadOption) (*Presentation, error) {
	cfg := loadConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	logger := cfg.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	files, err := sourceFiles(dir)
	if err != nil {
		return nil, err
	}
	p := &Presentation{Dir: dir}
	for _, file := range files {
		section, err := LoadSection(file)
		if err != nil {
			return nil, err
		}
		logger.Debug("section loaded",
			"path", file,
			"title", section.Title,
			"justify", string(section.Justify),
			"steps", len(section.Steps))
		p.Sections = append(p.Sections, section)
	}
	p.steps = flatten(p.Sections)
	if len(p.steps) == 0 {
		return nil, fmt.Errorf("%s: %w", dir, ErrEmptyPresentation)
	}
	return p, nil
}

// sourceFiles lists the Markdown files of dir in presentation order: byte-wise
// ascending by stem, then by full name.
func sourceFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != SourceExt {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.SliceStable(names, func(i, j int) bool {
		si, sj := stem(names[i]), stem(names[j])
		if si != sj {
			return si < sj
		}
		return names[i] < names[j]
	})
	files := make([]string, len(names))
	for i, name := range names {
		files[i] = filepath.Join(dir, name)
	}
	return files, nil
}

func stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

func flatten(sections []*Section) []*Step {
	var steps []*Step
	for _, section := range sections {
		steps = append(steps, section.Steps...)
	}
	return steps
}

// Steps returns every step of every section in order. The slice is built once
// at load time and the same slice is returned on each call.
func (p *Presentation) Steps() []*Step {
	return p.steps
}

const outlineWidth = 72

// WriteOutline writes a plain text summary of the sections and their steps.
func (p *Presentation) WriteOutline(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%s: %d sections, %d steps\n", p.Dir, len(p.Sections), len(p.steps)); err != nil {
		return err
	}
	for _, section := range p.Sections {
		title := section.Title
		if title == "" {
			title = "(untitled)"
		}
		if _, err := fmt.Fprintf(w, "\n%s  %s  justify=%s\n", filepath.Base(section.Path), title, section.Justify); err != nil {
			return err
		}
		for _, step := range section.Steps {
			info := step.InfoTitle()
			if body := step.InfoBody(); len(body) > 0 {
				info += ": " + body[0].Text()
			}
			line := fmt.Sprintf("  %2d. %s", step.Index+1, info)
			if _, err := fmt.Fprintln(w, truncate.StringWithTail(line, outlineWidth, "…")); err != nil {
				return err
			}
		}
	}
	return nil
}
