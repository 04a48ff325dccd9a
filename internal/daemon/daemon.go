// Package daemon implements the clipboard watcher: one long-lived select
// over the poll timer, the hotkey fire channel, and the shutdown signal. All
// store mutation happens on this single loop, so no locking layer sits above
// SQLite.
package daemon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"time"

	"github.com/olajoao/sticky-one/internal/clip"
	"github.com/olajoao/sticky-one/internal/config"
	"github.com/olajoao/sticky-one/internal/hotkey"
	"github.com/olajoao/sticky-one/internal/store"
)

// Daemon owns the mutable watcher state: the store handle and the last-seen
// content fingerprint used for consecutive-capture dedup.
type Daemon struct {
	cfg       *config.Config
	store     *store.Store
	clipboard clip.Reader
	lastHash  string

	// listen blocks reading input devices and signals combo matches; it is a
	// field so tests can substitute the real detector.
	listen func(fired chan<- struct{}) error
	// spawn opens the history popup on a combo match, fire-and-forget.
	spawn func()
}

// New builds a Daemon over an open store, seeding the dedup state from the
// most recent stored fingerprint so a restart does not re-capture the
// current clipboard.
func New(cfg *config.Config, st *store.Store, clipboard clip.Reader, combo hotkey.Combo) (*Daemon, error) {
	lastHash, err := st.LatestFingerprint()
	if err != nil {
		return nil, err
	}
	return &Daemon{
		cfg:       cfg,
		store:     st,
		clipboard: clipboard,
		lastHash:  lastHash,
		listen:    hotkey.New(combo).Listen,
		spawn:     spawnPopup,
	}, nil
}

// Run drives the daemon loop until ctx is cancelled or the hotkey listener
// fails. Poll-cycle errors are logged and contained within that cycle;
// listener failure is fatal because the daemon is not designed to run
// without hotkey capability.
func (d *Daemon) Run(ctx context.Context) error {
	// Bound storage growth from time spent not running.
	if _, err := d.store.EvictExpired(d.cfg.RetentionHours); err != nil {
		return fmt.Errorf("startup eviction: %w", err)
	}

	fired := make(chan struct{}, 1)
	listenErr := make(chan error, 1)
	go func() {
		listenErr <- d.listen(fired)
	}()

	ticker := time.NewTicker(d.cfg.PollInterval)
	defer ticker.Stop()

	slog.Info("daemon started",
		"poll_interval", d.cfg.PollInterval,
		"retention_hours", d.cfg.RetentionHours,
	)

	for {
		select {
		case <-ticker.C:
			d.pollOnce()

		case <-fired:
			slog.Debug("hotkey combo fired")
			d.spawn()

		case err := <-listenErr:
			if err == nil {
				err = errors.New("listener stopped unexpectedly")
			}
			return fmt.Errorf("hotkey: %w", err)

		case <-ctx.Done():
			slog.Info("shutting down")
			return RemovePIDFile(d.cfg.PIDPath())
		}
	}
}

// pollOnce services one poll tick: read the clipboard, skip empty or
// duplicate captures, store anything new, then piggyback a retention pass on
// the successful insert. Errors never escape a poll cycle.
func (d *Daemon) pollOnce() {
	content, err := d.clipboard.Read()
	if err != nil {
		var tooLarge clip.ImageTooLargeError
		if errors.As(err, &tooLarge) {
			slog.Debug("skipping oversized image", "bytes", tooLarge.Size)
			return
		}
		slog.Warn("clipboard read failed", "err", err)
		return
	}

	e := content.Entry()
	if e == nil {
		return
	}
	if e.Hash == d.lastHash {
		return
	}

	if _, err := d.store.Insert(e); err != nil {
		slog.Error("store insert failed", "err", err)
		return
	}
	d.lastHash = e.Hash
	slog.Debug("captured entry", "id", e.ID, "type", e.Type)

	if n, err := d.store.EvictExpired(d.cfg.RetentionHours); err != nil {
		slog.Warn("retention eviction failed", "err", err)
	} else if n > 0 {
		slog.Debug("evicted expired entries", "count", n)
	}
}

// spawnPopup re-executes the current binary with the popup subcommand. The
// popup opens its own read-only store connection; failure to spawn is logged
// and otherwise ignored.
func spawnPopup() {
	exe, err := os.Executable()
	if err != nil {
		slog.Warn("cannot locate executable for popup", "err", err)
		return
	}
	cmd := exec.Command(exe, "popup")
	if err := cmd.Start(); err != nil {
		slog.Warn("popup spawn failed", "err", err)
		return
	}
	go func() {
		_ = cmd.Wait()
	}()
}
