// Package assets loads text-art sprites for the renderer.
//
// A Handle starts in StatusLoading and is resolved exactly once on a
// background goroutine. Readers poll Status; there are no callbacks.
package assets

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"unicode/utf8"
)

// Status is the lifecycle state of a Handle.
type Status int32

const (
	StatusLoading Status = iota
	StatusReady
	StatusFailed
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ErrEmptySprite is returned for sprite files without any visible rows.
var ErrEmptySprite = errors.New("assets: empty sprite")

// Sprite is a rectangular block of runes. Spaces are transparent.
type Sprite struct {
	Rows   [][]rune
	Width  int
	Height int
}

// ParseSprite reads a text-art sprite. Trailing blank lines are dropped and
// shorter rows are padded with spaces.
func ParseSprite(data []byte) (Sprite, error) {
	if !utf8.Valid(data) {
		return Sprite{}, fmt.Errorf("assets: sprite is not valid UTF-8")
	}

	var rows [][]rune
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		rows = append(rows, []rune(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return Sprite{}, fmt.Errorf("assets: read sprite: %w", err)
	}

	for len(rows) > 0 && strings.TrimSpace(string(rows[len(rows)-1])) == "" {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return Sprite{}, ErrEmptySprite
	}

	width := 0
	for _, r := range rows {
		if len(r) > width {
			width = len(r)
		}
	}
	for i, r := range rows {
		for len(r) < width {
			r = append(r, ' ')
		}
		rows[i] = r
	}

	return Sprite{Rows: rows, Width: width, Height: len(rows)}, nil
}

// Sample returns the rune covering cell (col, row) when the sprite is
// stretched over a cols x rows area (nearest neighbour).
func (s Sprite) Sample(col, row, cols, rows int) rune {
	if cols <= 0 || rows <= 0 || s.Width == 0 || s.Height == 0 {
		return ' '
	}
	sx := col * s.Width / cols
	sy := row * s.Height / rows
	if sx < 0 || sx >= s.Width || sy < 0 || sy >= s.Height {
		return ' '
	}
	return s.Rows[sy][sx]
}

// Handle is an opaque reference to a sprite owned by one entity.
type Handle struct {
	id     string
	status atomic.Int32
	sprite Sprite
	err    error
	done   chan struct{}
}

// closed is the Done channel of a nil handle.
var closed = func() chan struct{} {
	c := make(chan struct{})
	close(c)
	return c
}()

func newHandle(id string) *Handle {
	return &Handle{id: id, done: make(chan struct{})}
}

// Loaded returns a handle that is already Ready.
func Loaded(id string, s Sprite) *Handle {
	h := newHandle(id)
	h.resolve(s, nil)
	return h
}

// Failed returns a handle that is already Failed.
func Failed(id string, err error) *Handle {
	h := newHandle(id)
	h.resolve(Sprite{}, err)
	return h
}

// ID returns the sprite identifier the handle was requested with.
func (h *Handle) ID() string {
	if h == nil {
		return ""
	}
	return h.id
}

// Status reports the current lifecycle state. A nil handle is Failed.
func (h *Handle) Status() Status {
	if h == nil {
		return StatusFailed
	}
	return Status(h.status.Load())
}

// Sprite returns the sprite once the handle is Ready.
func (h *Handle) Sprite() (Sprite, bool) {
	if h.Status() != StatusReady {
		return Sprite{}, false
	}
	return h.sprite, true
}

// Err returns the load error of a Failed handle.
func (h *Handle) Err() error {
	if h == nil || h.Status() != StatusFailed {
		return nil
	}
	return h.err
}

// Done is closed once the handle leaves StatusLoading. A nil handle is
// always done.
func (h *Handle) Done() <-chan struct{} {
	if h == nil {
		return closed
	}
	return h.done
}

// resolve publishes the result. The sprite and error are written before the
// status store so a reader that observes Ready/Failed also sees them.
func (h *Handle) resolve(s Sprite, err error) {
	if err != nil {
		h.err = err
		h.status.Store(int32(StatusFailed))
	} else {
		h.sprite = s
		h.status.Store(int32(StatusReady))
	}
	close(h.done)
}
