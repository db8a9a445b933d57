package speech

import (
	"fmt"
	"os"
)

// Handle is a temp-file-backed audio clip. It is not refcounted; whoever
// holds it must call Release exactly once when playback is done.
type Handle struct {
	path     string
	size     int
	released bool
}

func newHandle(data []byte) (*Handle, error) {
	f, err := os.CreateTemp("", "hostbox-audio-*.mp3")
	if err != nil {
		return nil, fmt.Errorf("create temp audio file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, fmt.Errorf("write audio: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return nil, fmt.Errorf("close audio file: %w", err)
	}
	return &Handle{path: f.Name(), size: len(data)}, nil
}

// Path returns the audio file location. Empty after Release.
func (h *Handle) Path() string {
	if h.released {
		return ""
	}
	return h.path
}

// Size returns the clip size in bytes.
func (h *Handle) Size() int { return h.size }

// Release deletes the backing file. Further calls are no-ops.
func (h *Handle) Release() error {
	if h.released {
		return nil
	}
	h.released = true
	return os.Remove(h.path)
}
