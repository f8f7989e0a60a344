package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	flag "github.com/spf13/pflag"

	"github.com/shnupta/notequiz/internal/config"
	"github.com/shnupta/notequiz/internal/notes"
	"github.com/shnupta/notequiz/internal/round"
	"github.com/shnupta/notequiz/internal/tui"
)

// version is set by goreleaser via ldflags
var version = "dev"

const usage = `notequiz — name the notes on either side of a note

Usage:
  notequiz [flags]                               Launch the trainer
  notequiz draw [flags]                          Print a random center index and note
  notequiz check [flags] <previous> <next>       Check an answer for --center and exit
  notequiz --help                                Show this help

Flags:
%s
Trainer key bindings:
  1 / 2 / 3             Natural notes / sharps / flats
  tab                   Cycle note set
  s / enter             Draw a new note
  i                     Go back to the answer fields
  enter                 Next field, then check the answer
  esc                   Leave the answer fields
  q / ctrl+c            Quit

Answers ignore case, accents and spaces; "#", "♯" and "s" all mean sharp,
"♭" and "b" both mean flat.
`

// options holds the parsed command line.
type options struct {
	mode       string
	configPath string
	logPath    string
	debug      bool
	center     int
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, errWrongAnswer) {
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var sub string
	if len(args) > 0 && (args[0] == "check" || args[0] == "draw") {
		sub, args = args[0], args[1:]
	}

	var opts options
	var showHelp, showVersion bool
	fs := flag.NewFlagSet("notequiz", flag.ContinueOnError)
	fs.StringVarP(&opts.mode, "mode", "m", "", "Note set: natural, sharps or flats (default from config)")
	fs.StringVar(&opts.configPath, "config", config.Path(), "Config file")
	fs.StringVar(&opts.logPath, "log", "", "Write logs to this file")
	fs.BoolVar(&opts.debug, "debug", false, "Log at debug level")
	fs.IntVar(&opts.center, "center", -1, "Center note index for check")
	fs.BoolVarP(&showHelp, "help", "h", false, "Show this help")
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	fs.Usage = func() { fmt.Printf(usage, fs.FlagUsages()) }

	if err := fs.Parse(args); err != nil {
		return err
	}
	if showHelp {
		fs.Usage()
		return nil
	}
	if showVersion {
		fmt.Println(version)
		return nil
	}

	logger, closeLog, err := initLogger(opts.logPath, opts.debug)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer closeLog()

	cfg := config.LoadFrom(opts.configPath)
	if opts.mode != "" {
		mode, err := notes.ParseMode(opts.mode)
		if err != nil {
			return err
		}
		cfg.DefaultMode = string(mode)
	}

	engine := round.New(round.WithLogger(logger))

	switch sub {
	case "draw":
		return runDraw(os.Stdout, engine, cfg.Mode())
	case "check":
		return runCheck(os.Stdout, cfg.Mode(), opts.center, fs.Args())
	}
	return runTUI(engine, cfg, opts.configPath, logger)
}

func runTUI(engine *round.Engine, cfg config.Config, configPath string, logger *slog.Logger) error {
	// Hot reload is best-effort; the trainer works without it.
	var watcher config.WatcherIface
	if w, err := config.NewWatcher(configPath); err != nil {
		logger.Warn("config: watch failed", "path", configPath, "err", err)
	} else {
		defer w.Close()
		go logWatchErrors(w.Errors(), logger)
		watcher = w
	}

	p := tea.NewProgram(
		tui.New(engine, cfg, watcher),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

// logWatchErrors logs config watcher errors until the channel is closed.
func logWatchErrors(errs <-chan error, logger *slog.Logger) {
	for err := range errs {
		logger.Warn("config: watch error", "err", err)
	}
}

// initLogger configures the shared slog logger. The terminal belongs to the
// trainer, so logs only go to a file and are discarded otherwise.
func initLogger(path string, debug bool) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	var out io.Writer = io.Discard
	closeFn := func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		out = f
		closeFn = func() { f.Close() }
	}

	h := slog.NewTextHandler(out, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	})
	logger := slog.New(h)
	slog.SetDefault(logger)
	return logger, closeFn, nil
}
