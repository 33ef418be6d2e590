package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/tischda/osshortcuts/dispatch"
	"github.com/tischda/osshortcuts/shortcut"
)

// replayOptions are the flags of the replay command.
type replayOptions struct {
	platform string
	watch    bool
	inject   bool
}

// replayResult summarises one run of a script.
type replayResult struct {
	Handled   int
	Ignored   int
	Status    string
	StuckKeys int
}

func newReplayCmd(a *app) *cobra.Command {
	var opts replayOptions
	cmd := &cobra.Command{
		Use:   "replay SCRIPT",
		Short: "Feed a TOML event script through the dispatcher",
		Long: `Replays the input events of a TOML script through a fresh dispatcher, as if the
keys had been pressed on the keyboard, and logs every combination sent to the host.
The platform selection is volatile: every run starts from the script's platform,
the --platform flag, or the compiled-in default.

  platform = "macos"

  [layout]
  start = 0x7E00

  [[events]]
  select = "windows"

  [[events]]
  shortcut = "copy_selection"
  action = "tap"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.replay(cmd.Context(), args[0], opts)
		},
	}
	cmd.Flags().StringVarP(&opts.platform, "platform", "p", "", "starting platform (overrides the script)")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "re-run the script whenever it changes")
	cmd.Flags().BoolVar(&opts.inject, "inject", false, "really press the keys on this desktop (windows only)")
	return cmd
}

func (a *app) replay(ctx context.Context, path string, opts replayOptions) error {
	var override *shortcut.Platform
	if opts.platform != "" {
		p, err := shortcut.ParsePlatform(opts.platform)
		if err != nil {
			return err
		}
		override = &p
	}

	var next dispatch.Host
	if opts.inject {
		h, err := newInjectHost(a.logger.Named("inject"))
		if err != nil {
			return err
		}
		next = h
	}

	runOnce := func() error {
		script, err := loadScript(path)
		if err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		if override != nil {
			script.Platform = override
		}
		res, err := runScript(script, newLogHost(a.logger.Named("host"), next), a.logger)
		if err != nil {
			return err
		}
		a.logger.Info("replay done", "script", path, "handled", res.Handled, "ignored", res.Ignored)
		if res.StuckKeys > 0 {
			a.logger.Warn("script left combinations pressed", "count", res.StuckKeys)
		}
		renderStatus(a.stdout, res.Status)
		return nil
	}

	if err := runOnce(); err != nil {
		if !opts.watch {
			return err
		}
		a.logger.Error("replay failed", "error", err)
	}
	if !opts.watch {
		return nil
	}
	return a.watchLoop(ctx, path, runOnce)
}

// watchLoop re-runs the script on every change until interrupted. Runs happen
// on this goroutine only, one after the other.
func (a *app) watchLoop(ctx context.Context, path string, run func() error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	reload := make(chan struct{}, 1)
	watcher, err := startScriptWatcher(path, a.logger.Named("watch"), func() {
		select {
		case reload <- struct{}{}:
		default:
		}
	})
	if err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	defer watcher.Close() //nolint:errcheck

	a.logger.Info("watching script", "script", path)
	for {
		select {
		case <-ctx.Done():
			a.logger.Info("exiting")
			return nil
		case <-reload:
			if err := run(); err != nil {
				a.logger.Error("replay failed", "error", err)
			}
		}
	}
}

// runScript feeds the steps of script through a new dispatcher bound to host.
//
// Parameters:
//   - script: Resolved script.
//   - host: Receives the registered and unregistered combinations.
//   - logger: Parent logger for the dispatcher.
//
// Returns:
//   - replayResult: Counts of handled and ignored edges, and the final status.
//   - error: Non-nil if the script layout is rejected.
func runScript(script *Script, host *logHost, logger hclog.Logger) (replayResult, error) {
	opts := []dispatch.Option{dispatch.WithLogger(logger.Named("dispatch"))}
	if script.Platform != nil {
		opts = append(opts, dispatch.WithPlatform(*script.Platform))
	}
	d, err := dispatch.New(host, script.Layout, opts...)
	if err != nil {
		return replayResult{}, err
	}

	var res replayResult
	for _, s := range script.Steps {
		if d.Process(s.Keycode, s.Pressed) {
			res.Handled++
			continue
		}
		res.Ignored++
		logger.Debug("not a shortcut", "keycode", fmt.Sprintf("0x%04X", uint16(s.Keycode)), "step", s.Label)
	}
	res.Status = d.RenderStatus()
	res.StuckKeys = len(host.stuck())
	return res, nil
}
