package packs

import (
	"context"
	"time"

	"github.com/fsnotify/fsnotify"

	mdwlogging "github.com/raxe-ce/raxe-go/pkg/core/logging"
)

var watchLog = mdwlogging.New("packs.watch")

// Watch reloads the pack in dir into store whenever any file under
// dir changes, debounced by settleDelay. A reload that fails at pack
// level is logged and leaves the previous Registry in place. Rules that
// fail to load or self-test are logged, and whenever LoadDir still
// returns a Registry (the rule errors did not fail the whole pack) that
// Registry, without those rules, replaces the previous one.
func Watch(ctx context.Context, dir string, store *Store, requireSelfTest bool, settleDelay time.Duration) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return err
	}

	go func() {
		defer watcher.Close()

		var timer *time.Timer
		reload := func() {
			reg, errs := LoadDir(dir, requireSelfTest)
			for _, e := range errs {
				watchLog.Warn("rule pack reload issue", "dir", dir, "error", e)
			}
			if reg != nil {
				store.Swap(reg)
				watchLog.Info("rule pack reloaded", "dir", dir, "rule_count", len(reg.GetAllRules()))
			}
		}

		for {
			select {
			case <-ctx.Done():
				if timer != nil {
					timer.Stop()
				}
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(settleDelay, reload)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				watchLog.Warn("rule pack watcher error", "dir", dir, "error", err)
			}
		}
	}()

	return nil
}
