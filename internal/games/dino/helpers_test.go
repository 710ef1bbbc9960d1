package dino

import (
	"github.com/vovakirdan/dino-dash/internal/assets"
	"github.com/vovakirdan/dino-dash/internal/config"
	"github.com/vovakirdan/dino-dash/internal/core"
)

// stubSource records sprite requests and hands out pre-resolved handles.
type stubSource struct {
	requests []string
	sprite   *assets.Sprite
}

func (s *stubSource) Request(id string) *assets.Handle {
	s.requests = append(s.requests, id)
	if s.sprite == nil {
		return assets.Failed(id, assets.ErrEmptySprite)
	}
	return assets.Loaded(id, *s.sprite)
}

func testConfig() config.DinoConfig {
	return config.DefaultDinoConfig()
}

// place appends a hand-made obstacle to the director as if it were the
// latest spawn.
func place(d *Director, x float64, category Category, w, h float64) *Obstacle {
	y := d.groundY - h
	if category == CategoryAerial {
		y -= d.cfg.AerialOffset
	}
	d.nextID++
	o := &Obstacle{
		ID:       d.nextID,
		Pos:      core.Vec2{X: x, Y: y},
		Dim:      core.Dimensions{Width: w, Height: h},
		Category: category,
		VX:       d.speed,
	}
	d.obstacles = append(d.obstacles, o)
	d.lastSpawnX = x
	return o
}
