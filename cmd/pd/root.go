package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"pd/internal/config"
	"pd/internal/errors"
	"pd/internal/keymap"
	"pd/internal/log"
	"pd/internal/pathsplit"
	"pd/internal/tui"
)

// Sentinel results for the non-error ways a session ends without a
// selection; main maps them to exit codes.
var (
	errQuit        = errors.New("no selection")
	errInterrupted = errors.New("interrupted")
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	var (
		keymapFlag string
		debugLog   string
	)

	rootCmd := &cobra.Command{
		Use:   "pd [path]",
		Short: "Interactively pick an ancestor of the working directory",
		Long: `pd renders the working directory as one selectable line and prints the
ancestor you pick to stdout, so a shell function can cd "up" the tree:

    pcd() { local dest; dest="$(pd)" && cd "$dest"; }

The selector runs on stderr; stdout stays clean for the result. Move with
Vim keys (h/l, w/b, ^/$, M, counts, f/F character jumps, ;/, repeats),
Emacs keys (PD_KEYMAP=emacs: C-b/C-f, M-b/M-f, C-a/C-e, C-]), the arrow
keys, or the mouse. Enter or a left click confirms, q/Esc or a right
click aborts with exit status 1.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, keymapFlag, debugLog)
			if err != nil {
				return err
			}

			if cfg.DebugLog != "" {
				log.Configure(log.WithFile(cfg.DebugLog))
				log.SetDebug(true)
				defer log.Close()
			}

			start, err := startPath(args)
			if err != nil {
				return err
			}

			return runSelector(cmd, cfg, start)
		},
	}

	rootCmd.Flags().StringVarP(&keymapFlag, "keymap", "k", "", "keybinding scheme: vim or emacs (overrides "+config.EnvKeymap+")")
	rootCmd.Flags().StringVar(&debugLog, "debug-log", "", "append debug logs to this file (overrides "+config.EnvDebugLog+")")

	return rootCmd
}

// loadConfig resolves the environment configuration and applies flag
// overrides. Unrecognized keymap values warn on stderr and fall back
// to Vim; nothing here is fatal except a broken Config afterwards.
func loadConfig(cmd *cobra.Command, keymapFlag, debugLog string) (*config.Config, error) {
	cfg, warn := config.Load()
	if warn != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v, defaulting to vim\n", warn)
	}

	if keymapFlag != "" {
		km, ok := keymap.Parse(keymapFlag)
		if !ok {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: unrecognized keymap: %s, defaulting to vim\n", keymapFlag)
		}
		cfg.Keymap = km
	}
	if debugLog != "" {
		cfg.DebugLog = debugLog
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

// startPath resolves the path whose ancestors the selector offers: the
// positional argument if given, the working directory otherwise.
func startPath(args []string) (string, error) {
	if len(args) > 0 {
		abs, err := filepath.Abs(args[0])
		if err != nil {
			return "", errors.NewPathError("cannot resolve path", args[0], errors.WorkdirFailed, err)
		}
		return abs, nil
	}

	pwd, err := os.Getwd()
	if err != nil {
		return "", errors.NewPathError("cannot resolve working directory", "", errors.WorkdirFailed, err)
	}
	return pwd, nil
}

// runSelector runs the interactive session over start's segments and
// writes the confirmed path to stdout. The bubbletea program owns raw
// mode, the hidden cursor and mouse capture, and restores all three on
// every way out, panics included.
func runSelector(cmd *cobra.Command, cfg *config.Config, start string) error {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return errors.NewTermError("not a terminal", "stderr", errors.NotInteractive, nil)
	}

	segments := pathsplit.Split(start)
	log.LogWithFields(log.F("keymap", cfg.Keymap), log.F("segments", len(segments))).Debug("session start")

	m := tui.New(segments, cfg.Keymap)
	p := tea.NewProgram(m,
		tea.WithOutput(cmd.ErrOrStderr()),
		tea.WithMouseAllMotion(),
	)
	if _, err := p.Run(); err != nil {
		// An outside SIGINT surfaces here rather than as a key event.
		if errors.Is(err, tea.ErrInterrupted) {
			return errInterrupted
		}
		return errors.NewTermError("input stream failed", "stdin", errors.InputFailed, err)
	}

	switch m.Outcome() {
	case tui.OutcomeConfirm:
		if err := writeResult(cmd.OutOrStdout(), m.Path()); err != nil {
			return errors.Wrap(err, "cannot write result")
		}
		return nil
	case tui.OutcomeInterrupt:
		return errInterrupted
	default:
		return errQuit
	}
}
