package dino

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/dino-dash/internal/assets"
	"github.com/vovakirdan/dino-dash/internal/config"
	"github.com/vovakirdan/dino-dash/internal/core"
)

// Category distinguishes obstacles to jump over from obstacles to duck under.
type Category int

const (
	CategoryGround Category = iota
	CategoryAerial
)

// String returns a human-readable name for the category.
func (c Category) String() string {
	if c == CategoryAerial {
		return "aerial"
	}
	return "ground"
}

// SpriteSource hands out sprite handles. Implemented by *assets.Provider.
type SpriteSource interface {
	Request(id string) *assets.Handle
}

// Obstacle is a single spawned hazard.
type Obstacle struct {
	ID       uint64 // Spawn sequence number, starting at 1
	Pos      core.Vec2
	Dim      core.Dimensions
	Category Category
	VX       float64 // Pixels per second, negative = leftward
	Credited bool    // Already counted as passed
	Handle   *assets.Handle
}

// Hitbox returns the obstacle's collision rectangle (before insets).
func (o *Obstacle) Hitbox() core.Box {
	return core.NewBox(o.Pos, o.Dim)
}

// Director spawns, moves and retires obstacles and ramps up the scroll speed.
type Director struct {
	obstacles []*Obstacle
	rng       *rand.Rand
	seed      int64
	speed     float64 // Current scroll speed, negative = leftward
	lastSpawnX float64 // Where the latest spawn would be now, even once culled
	nextID    uint64
	passed    int
	cfg       config.ObstacleConfig
	scroll    config.ScrollConfig
	assets    config.AssetConfig
	groundY   float64
	sprites   SpriteSource
}

// NewDirector creates a director with the given RNG seed. sprites may be nil,
// in which case obstacles carry no handle and render as fallback blocks.
func NewDirector(cfg config.DinoConfig, seed int64, sprites SpriteSource) *Director {
	d := &Director{
		obstacles: make([]*Obstacle, 0, 8),
		cfg:       cfg.Obstacles,
		scroll:    cfg.Scroll,
		assets:    cfg.Assets,
		groundY:   cfg.World.GroundY,
		sprites:   sprites,
	}
	d.Reset(seed)
	return d
}

// Reset clears all obstacles and credits, restores the base speed and
// re-seeds the RNG.
func (d *Director) Reset(seed int64) {
	d.obstacles = d.obstacles[:0]
	d.seed = seed
	d.rng = rand.New(rand.NewSource(seed))
	d.speed = -d.scroll.BaseSpeed
	d.lastSpawnX = math.Inf(-1)
	d.nextID = 0
	d.passed = 0
}

// Update ramps the speed, retires off-screen obstacles, moves the rest and
// spawns at most one new obstacle.
func (d *Director) Update(dtMillis float64) {
	// Speed only grows in magnitude, up to the configured maximum
	d.speed = math.Max(-d.scroll.MaxSpeed, d.speed-d.scroll.Acceleration*dtMillis/1000)

	// Remove obstacles that are fully behind the left edge
	live := d.obstacles[:0]
	for _, o := range d.obstacles {
		if o.Pos.X+o.Dim.Width > -d.cfg.CullMargin {
			live = append(live, o)
		}
	}
	for i := len(live); i < len(d.obstacles); i++ {
		d.obstacles[i] = nil
	}
	d.obstacles = live

	// Every obstacle moves at the shared current speed
	dx := d.speed * dtMillis / 1000
	for _, o := range d.obstacles {
		o.VX = d.speed
		o.Pos.X += dx
	}
	d.lastSpawnX += dx

	// The gap is measured from the latest spawn, culled or not
	if d.cfg.SpawnX-d.lastSpawnX >= d.cfg.MinGap {
		d.spawn()
	}
}

// spawn appends one obstacle at the spawn edge.
func (d *Director) spawn() {
	category := CategoryGround
	catalog := d.cfg.Ground
	spriteID := d.assets.Ground
	if d.rng.Float64() < d.cfg.AerialChance {
		category = CategoryAerial
		catalog = d.cfg.Aerial
		spriteID = d.assets.Aerial
	}
	size := catalog[d.rng.Intn(len(catalog))]

	// Ground obstacles sit on the line, aerial ones float above it
	y := d.groundY - size.Height
	if category == CategoryAerial {
		y -= d.cfg.AerialOffset
	}

	d.nextID++
	o := &Obstacle{
		ID:       d.nextID,
		Pos:      core.Vec2{X: d.cfg.SpawnX, Y: y},
		Dim:      core.Dimensions{Width: size.Width, Height: size.Height},
		Category: category,
		VX:       d.speed,
	}
	if d.sprites != nil {
		o.Handle = d.sprites.Request(spriteID)
	}

	d.obstacles = append(d.obstacles, o)
	d.lastSpawnX = o.Pos.X
}

// HasPassedObstacle credits every obstacle whose right edge moved behind
// the runner's leading edge plus the pass margin. Each obstacle is credited
// at most once; the result reports whether any was credited by this call.
func (d *Director) HasPassedObstacle(runner core.Box) bool {
	credited := false
	for _, o := range d.obstacles {
		if o.Credited {
			continue
		}
		if o.Pos.X+o.Dim.Width < runner.X+d.cfg.PassMargin {
			o.Credited = true
			d.passed++
			credited = true
		}
	}
	return credited
}

// CheckCollision reports whether the runner hitbox touches any live obstacle.
func (d *Director) CheckCollision(runner core.Box, insets Insets) bool {
	for _, o := range d.obstacles {
		if Collides(runner, o.Hitbox(), insets) {
			return true
		}
	}
	return false
}

// Obstacles returns the live obstacles in spawn order.
func (d *Director) Obstacles() []*Obstacle {
	return d.obstacles
}

// Speed returns the current scroll speed (negative = leftward).
func (d *Director) Speed() float64 {
	return d.speed
}

// Passed returns how many obstacles have been credited since the last reset.
func (d *Director) Passed() int {
	return d.passed
}

// Level returns the ramp progress from 0.0 (base speed) to 1.0 (max speed).
func (d *Director) Level() float64 {
	return d.scroll.Level(-d.speed)
}

// Seed returns the seed of the current run.
func (d *Director) Seed() int64 {
	return d.seed
}
