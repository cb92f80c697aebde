package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/miraflynn/textcompare"
	"github.com/miraflynn/textcompare/bubbletea"
	"github.com/miraflynn/textcompare/clipboard"
	"github.com/miraflynn/textcompare/difflib"
	"github.com/miraflynn/textcompare/dmp"
	"github.com/miraflynn/textcompare/fs"
	"github.com/miraflynn/textcompare/lipgloss"
	"github.com/miraflynn/textcompare/markup"
	"github.com/miraflynn/textcompare/worddiff"
)

var (
	// ErrNoInput is returned when fewer than two texts are supplied.
	ErrNoInput = errors.New("two texts are required")
	// ErrUnknownAlgorithm is returned for an unsupported -algorithm value.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
	// ErrUnknownFormat is returned for an unsupported -format value.
	ErrUnknownFormat = errors.New("unknown format")
)

// Output formats.
const (
	FormatHTML = "html"
	FormatANSI = "ansi"
)

// Alignment algorithms.
const (
	AlgorithmLookahead = "lookahead"
	AlgorithmLCS       = "lcs"
	AlgorithmDMP       = "dmp"
)

const usage = `usage: textcompare [flags] <text1> <text2>
       textcompare serve [-addr :8080] [-algorithm lookahead|lcs|dmp]
       textcompare batch [-workers N] [-algorithm lookahead|lcs|dmp] [-out PATH] <pairs.jsonl>`

// App compares two texts and delivers the result to its outputs.
type App struct {
	Stdout   io.Writer
	Comparer *textcompare.Comparer

	// Display renders the alignment for Stdout. Nil writes the comparer's
	// combined markup.
	Display textcompare.Renderer

	// Optional outputs; nil disables each. Sink and Clipboard always receive
	// the comparer's combined markup, whatever Display is.
	Sink      textcompare.Sink
	Clipboard textcompare.Clipboard
	Viewer    textcompare.Viewer
}

// Run compares text1 and text2, persists and copies the combined markup when
// requested, then shows the alignment in the Viewer or writes it to Stdout.
// Persistence and clipboard failures are reported after the result has been
// shown.
func (a *App) Run(ctx context.Context, text1, text2 string) error {
	alignment, err := a.Comparer.Align(text1, text2)
	if err != nil {
		return err
	}

	result, err := a.Comparer.Present(alignment, a.Sink)

	if a.Clipboard != nil {
		if cerr := a.Clipboard.Copy(result.Combined()); cerr != nil {
			err = errors.Join(err, fmt.Errorf("copy to clipboard: %w", cerr))
		}
	}

	switch {
	case a.Viewer != nil:
		if verr := a.Viewer.View(ctx, alignment); verr != nil {
			return errors.Join(verr, err)
		}
	case a.Display != nil:
		shown := a.Display.Render(alignment)
		fmt.Fprintln(a.Stdout, shown.Side1)
		fmt.Fprintln(a.Stdout, shown.Side2)
	default:
		fmt.Fprintln(a.Stdout, result.Combined())
	}

	return err
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	logger := NewLogger(os.Stderr, os.Getenv("TEXTCOMPARE_LOG_LEVEL"))

	if len(args) > 0 {
		switch args[0] {
		case "serve":
			return runServe(ctx, args[1:], logger)
		case "batch":
			return runBatch(ctx, args[1:], logger)
		}
	}
	return runCompare(ctx, args, logger)
}

func runCompare(ctx context.Context, args []string, logger *slog.Logger) error {
	flags := flag.NewFlagSet("textcompare", flag.ExitOnError)
	flags.Usage = func() {
		fmt.Fprintln(flags.Output(), usage)
		flags.PrintDefaults()
	}
	file1 := flags.String("file1", "", "Read the first text from `path`")
	file2 := flags.String("file2", "", "Read the second text from `path`")
	algorithm := flags.String("algorithm", AlgorithmLookahead, "Alignment algorithm: lookahead, lcs or dmp")
	format := flags.String("format", FormatHTML, "Output format: html or ansi")
	write := flags.Bool("write", false, "Persist the combined HTML markup to the debug file")
	debugFile := flags.String("debug-file", fs.DefaultDebugPath(), "Debug file `path` used with -write")
	tui := flags.Bool("tui", false, "Open the two-pane terminal viewer")
	copyOut := flags.Bool("copy", false, "Copy the combined HTML markup to the clipboard")

	if err := flags.Parse(args); err != nil {
		return err
	}

	text1, text2, err := ReadInputs(*file1, *file2, flags.Args())
	if err != nil {
		return err
	}

	comparer, err := NewComparer(*algorithm, false, logger)
	if err != nil {
		return err
	}
	display, err := NewDisplay(*format)
	if err != nil {
		return err
	}

	app := &App{
		Stdout:   os.Stdout,
		Comparer: comparer,
		Display:  display,
	}
	if *write {
		app.Sink = fs.NewDebugFile(*debugFile)
	}
	if *copyOut {
		cb, err := clipboard.Detect()
		if err != nil {
			return err
		}
		app.Clipboard = cb
	}
	if *tui {
		app.Viewer = bubbletea.NewViewer(bubbletea.WithTheme(lipgloss.DefaultTheme()))
	}

	return app.Run(ctx, text1, text2)
}

// ReadInputs resolves the two texts from files or positional arguments.
// A file flag takes the place of the positional argument for its side.
func ReadInputs(file1, file2 string, args []string) (string, string, error) {
	texts := [2]string{}
	files := [2]string{file1, file2}
	for i, path := range files {
		if path == "" {
			if len(args) == 0 {
				return "", "", ErrNoInput
			}
			texts[i], args = args[0], args[1:]
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return "", "", fmt.Errorf("read text %d: %w", i+1, err)
		}
		texts[i] = string(data)
	}
	return texts[0], texts[1], nil
}

// NewComparer wires the tokenizer, the named aligner and the HTML markup
// renderer. Escaping is enabled for output embedded in live pages.
func NewComparer(algorithm string, escape bool, logger *slog.Logger) (*textcompare.Comparer, error) {
	aligner, err := newAligner(algorithm, logger)
	if err != nil {
		return nil, err
	}

	return &textcompare.Comparer{
		Tokenizer: worddiff.NewTokenizer(),
		Aligner:   aligner,
		Renderer:  markup.NewRenderer(markup.WithEscape(escape)),
		Logger:    logger,
	}, nil
}

// NewDisplay returns the stdout renderer for format. HTML output needs no
// separate renderer, so it returns nil.
func NewDisplay(format string) (textcompare.Renderer, error) {
	switch format {
	case FormatHTML:
		return nil, nil
	case FormatANSI:
		return lipgloss.NewRenderer(lipgloss.DefaultTheme(), nil), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func newAligner(name string, logger *slog.Logger) (textcompare.Aligner, error) {
	switch name {
	case AlgorithmLookahead:
		return worddiff.NewAligner(worddiff.WithLogger(logger)), nil
	case AlgorithmLCS:
		return difflib.NewAligner(), nil
	case AlgorithmDMP:
		return dmp.NewAligner(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// NewLogger builds a text logger on w. Unknown or empty levels mean warn.
func NewLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
