package assets

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/singleflight"
)

//go:embed sprites/*.txt
var embedded embed.FS

// Provider hands out sprite handles. Sprites are looked up in an optional
// override directory first and in the embedded set second.
type Provider struct {
	dir    string
	fsys   fs.FS
	group  singleflight.Group
	logger *log.Logger
}

// NewProvider creates a provider. dir may be empty; logger may be nil.
func NewProvider(dir string, logger *log.Logger) *Provider {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	sub, err := fs.Sub(embedded, "sprites")
	if err != nil {
		// embed paths are fixed at compile time
		panic(fmt.Sprintf("assets: embedded sprites: %v", err))
	}
	return &Provider{
		dir:    dir,
		fsys:   sub,
		logger: logger,
	}
}

// Request returns a new Loading handle for the sprite id and resolves it in
// the background. Every call yields a distinct handle; concurrent reads of
// the same id share one load.
func (p *Provider) Request(id string) *Handle {
	h := newHandle(id)
	go func() {
		s, err := p.load(id)
		if err != nil {
			p.logger.Warn("sprite load failed", "sprite", id, "error", err)
		}
		h.resolve(s, err)
	}()
	return h
}

// load reads and parses a sprite once per concurrent burst of requests.
func (p *Provider) load(id string) (Sprite, error) {
	v, err, _ := p.group.Do(id, func() (any, error) {
		data, err := p.read(id)
		if err != nil {
			return Sprite{}, err
		}
		s, err := ParseSprite(data)
		if err != nil {
			return Sprite{}, fmt.Errorf("assets: sprite %q: %w", id, err)
		}
		return s, nil
	})
	if err != nil {
		return Sprite{}, err
	}
	return v.(Sprite), nil
}

// read prefers the override directory and falls back to the embedded set.
func (p *Provider) read(id string) ([]byte, error) {
	name := id + ".txt"
	if p.dir != "" {
		data, err := os.ReadFile(filepath.Join(p.dir, name))
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("assets: read %s: %w", name, err)
		}
	}
	data, err := fs.ReadFile(p.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("assets: sprite %q not found: %w", id, err)
	}
	return data, nil
}
