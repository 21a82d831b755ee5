package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/dshills/weztui/internal/catalog"
	"github.com/dshills/weztui/internal/config/interchange"
	"github.com/dshills/weztui/internal/config/schema"
	"github.com/dshills/weztui/internal/config/store"
	"github.com/dshills/weztui/internal/config/watcher"
	"github.com/dshills/weztui/internal/editor"
	"github.com/dshills/weztui/internal/prefs"
	"github.com/dshills/weztui/internal/tui"
)

// Set via -ldflags at release time.
var version = "dev"

type rootOptions struct {
	configDir  string
	exportPath string
	importPath string
	noWatch    bool
	noBackup   bool
	logFile    string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "weztui [panel]",
		Short: "Terminal UI for editing the WezTerm configuration",
		Long: `weztui edits wezterm.lua in place: it extracts the settings it understands,
lets you change them interactively, and writes the file back as valid Lua.

The optional panel argument opens directly on one of: themes, colors, fonts,
window, cursor, gpu, commands.`,
		Version:      version,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.configDir, "config-dir", "", "directory holding wezterm.lua (overrides auto-detection)")
	cmd.Flags().StringVar(&opts.exportPath, "export", "", "write the current settings as JSON to a file ('-' for stdout) and exit")
	cmd.Flags().StringVar(&opts.importPath, "import", "", "read settings from a JSON file, save them as wezterm.lua, and exit")
	cmd.Flags().BoolVar(&opts.noWatch, "no-watch", false, "do not reload when the config file changes on disk")
	cmd.Flags().BoolVar(&opts.noBackup, "no-backup", false, "do not keep a .bak copy when saving")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "append diagnostics to this file")

	return cmd
}

func run(opts *rootOptions, args []string) error {
	logger, closeLog, err := newLogger(opts.logFile)
	if err != nil {
		return err
	}
	defer closeLog()

	st := store.New(opts.configDir)

	if opts.exportPath != "" {
		return runExport(st, opts.exportPath)
	}
	if opts.importPath != "" {
		return runImport(st, opts.importPath, !opts.noBackup, logger)
	}
	return runTUI(st, opts, args, logger)
}

func newLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := log.New(f)
	logger.SetReportTimestamp(true)
	return logger, func() { f.Close() }, nil
}

func runExport(st *store.Store, path string) error {
	res, err := st.Load()
	if err != nil {
		return err
	}
	data, err := interchange.Export(res.Config)
	if err != nil {
		return err
	}
	if path == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func runImport(st *store.Store, path string, backup bool, logger *log.Logger) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	cfg, err := interchange.Import(data)
	if err != nil {
		return err
	}
	res, err := st.Save(cfg, backup)
	if err != nil {
		return err
	}
	if scheme, font, ok := interchange.Describe(data); ok {
		logger.Info("imported settings", "scheme", scheme, "font", font)
	}
	fmt.Printf("Wrote %s\n", res.Dir)
	return nil
}

func runTUI(st *store.Store, opts *rootOptions, args []string, logger *log.Logger) error {
	p, err := prefs.Load()
	if err != nil {
		logger.Warn("preferences unreadable, using defaults", "error", err)
	}

	panel := editor.PanelThemes
	if got, ok := editor.ParsePanel(p.DefaultPanel); ok {
		panel = got
	}
	if len(args) == 1 {
		got, ok := editor.ParsePanel(args[0])
		if !ok {
			return fmt.Errorf("unknown panel %q", args[0])
		}
		panel = got
	}

	res, err := st.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	for _, w := range res.Warnings {
		logger.Warn("config extraction", "warning", w)
	}

	ed := editor.New(res.Config, st, editor.Options{
		InitialPanel: panel,
		BackupOnSave: p.BackupOnSave && !opts.noBackup,
		Themes:       catalog.Schemes(),
		Fonts:        catalog.Fonts(),
	})

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	app := tui.New(screen, ed, storeLoader{st}, logger)

	if p.WatchConfig && !opts.noWatch {
		w, err := watcher.New(res.Path, watcher.DefaultDebounce)
		if err != nil {
			logger.Warn("file watching unavailable", "error", err)
		} else {
			defer w.Close()
			go func() {
				for {
					select {
					case _, ok := <-w.Changes():
						if !ok {
							return
						}
						app.NotifyFileChanged()
					case err, ok := <-w.Errors():
						if !ok {
							return
						}
						logger.Warn("watcher", "error", err)
					}
				}
			}()
		}
	}

	return app.Run()
}

// storeLoader adapts the store to the reload interface, discarding the
// load metadata the TUI does not need.
type storeLoader struct {
	st *store.Store
}

func (l storeLoader) Load() (*schema.Config, error) {
	res, err := l.st.Load()
	if err != nil {
		return nil, err
	}
	return res.Config, nil
}
