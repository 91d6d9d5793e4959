//go:build !linux

package system

import "context"

// WatchExitKey is a no-op outside linux.
func WatchExitKey(ctx context.Context, logger Logger, key uint16, onExit func()) {
	if logger != nil {
		logger.Infof("input", "exit key watcher unavailable on this platform")
	}
}
