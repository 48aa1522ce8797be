package render

import (
	"errors"
	"strings"
)

var (
	// ErrSurfaceLost reports that the presentation surface is gone or
	// stale. Recoverable: reconfigure at the current size and go on.
	ErrSurfaceLost = errors.New("render surface lost")

	// ErrOutOfMemory reports device memory exhaustion. Not recoverable.
	ErrOutOfMemory = errors.New("render device out of memory")
)

// classifyFrameError maps a surface acquisition failure onto the error
// taxonomy. The native layer only exposes message strings, so this
// matches on the wgpu error vocabulary.
func classifyFrameError(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "lost") || strings.Contains(msg, "outdated"):
		return ErrSurfaceLost
	case strings.Contains(msg, "out of memory") || strings.Contains(msg, "outofmemory"):
		return ErrOutOfMemory
	default:
		return err
	}
}
