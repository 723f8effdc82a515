// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce coalesces editor write bursts into one reload.
const watchDebounce = 250 * time.Millisecond

// Watch reloads the config file whenever it changes on disk and calls
// onReload with the fresh config. Invalid intermediate states are
// skipped; the previous config stays active. Returns a stop function.
func Watch(ctx context.Context, onReload func(*Config)) (func(), error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return WatchPath(ctx, path, onReload)
}

// WatchPath watches a specific config file. The parent directory is
// watched so atomic rename-over saves are seen as well.
func WatchPath(ctx context.Context, path string, onReload func(*Config)) (func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		defer watcher.Close()
		var timer *time.Timer
		fire := make(chan struct{}, 1)
		for {
			select {
			case <-ctx.Done():
				return
			case <-done:
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != filepath.Clean(path) {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(watchDebounce, func() {
					select {
					case fire <- struct{}{}:
					default:
					}
				})
			case <-fire:
				cfg, err := LoadFromPath(path)
				if err != nil {
					continue
				}
				SetGlobal(cfg)
				if onReload != nil {
					onReload(cfg)
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	var once bool
	stop := func() {
		if !once {
			once = true
			close(done)
		}
	}
	return stop, nil
}
