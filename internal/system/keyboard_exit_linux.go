//go:build linux

package system

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sys/unix"
)

// WatchExitKey watches evdev devices under /dev/input/event* and calls
// onExit once when key is pressed on any of them. Missing devices are
// logged and ignored.
func WatchExitKey(ctx context.Context, logger Logger, key uint16, onExit func()) {
	if onExit == nil {
		return
	}
	tvSize := binary.Size(unix.Timeval{})
	if tvSize <= 0 {
		tvSize = 16
	}

	paths, err := filepath.Glob("/dev/input/event*")
	if err != nil || len(paths) == 0 {
		if logger != nil {
			logger.Infof("input", "no evdev devices found, exit key %d disabled", key)
		}
		return
	}

	var once sync.Once
	fire := func() {
		once.Do(func() {
			if logger != nil {
				logger.Infof("input", "exit key %d pressed", key)
			}
			onExit()
		})
	}

	for _, p := range paths {
		go watchDevice(ctx, p, tvSize, key, fire)
	}
}

func watchDevice(ctx context.Context, path string, tvSize int, key uint16, fire func()) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return
	}
	f := os.NewFile(uintptr(fd), path)
	defer f.Close()

	buf := make([]byte, 4096)
	for ctx.Err() == nil {
		pollFds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		if _, err := unix.Poll(pollFds, 250); err != nil {
			if err == unix.EINTR {
				continue
			}
			return
		}
		if pollFds[0].Revents&unix.POLLIN == 0 {
			continue
		}
		n, err := unix.Read(fd, buf)
		if err != nil {
			if err == unix.EAGAIN || err == unix.EINTR {
				continue
			}
			return
		}
		if scanKeyPress(buf[:n], tvSize, key) {
			fire()
			return
		}
	}
}
