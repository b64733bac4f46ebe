package preview

import (
	"github.com/milk9111/leveleditor/collision"
	"github.com/milk9111/leveleditor/config"
	"github.com/milk9111/leveleditor/levels"
)

// playerScale is the player's hitbox relative to one tile.
const playerScale = 0.75

type Input struct {
	Left  bool
	Right bool
	Jump  bool
}

type Player struct {
	X, Y     float64
	W, H     float64
	VX, VY   float64
	Grounded bool

	world *World
	cfg   config.PreviewConfig
	spawn collision.Vec
}

// NewPlayer places a player at the level's player spawn.
func NewPlayer(world *World, level *levels.Level, cfg config.PreviewConfig) *Player {
	size := world.TileSize() * playerScale
	p := &Player{
		W:     size,
		H:     size,
		world: world,
		cfg:   cfg,
		spawn: SpawnFor(level, int(world.TileSize())),
	}
	p.Respawn()
	return p
}

// SpawnFor returns the pixel position of the default player spawn. Levels
// without one start the player at the origin.
func SpawnFor(level *levels.Level, tileSize int) collision.Vec {
	var spawn levels.Entity
	found := false
	for _, s := range level.SpawnPoints {
		if s.Type != levels.TypePlayer {
			continue
		}
		if !found || (s.IsDefault != nil && *s.IsDefault) {
			spawn, found = s, true
		}
	}
	if !found {
		return collision.Vec{}
	}
	return collision.Vec{
		X: float64(spawn.Position.X * tileSize),
		Y: float64(spawn.Position.Y * tileSize),
	}
}

func (p *Player) Respawn() {
	p.X, p.Y = p.spawn.X, p.spawn.Y
	p.VX, p.VY = 0, 0
	p.Grounded = false
}

func (p *Player) Box() collision.AABB {
	return collision.AABB{X: p.X, Y: p.Y, Width: p.W, Height: p.H}
}

// Step advances the player by dt seconds. Each axis is moved and resolved on
// its own so landing on a floor never reads as hitting a wall.
func (p *Player) Step(dt float64, in Input) {
	p.VX = 0
	if in.Left {
		p.VX -= p.cfg.MoveSpeed
	}
	if in.Right {
		p.VX += p.cfg.MoveSpeed
	}
	if in.Jump && p.Grounded {
		p.VY = -p.cfg.JumpSpeed
	}
	p.VY += p.cfg.Gravity * dt
	if p.cfg.MaxFallSpeed > 0 && p.VY > p.cfg.MaxFallSpeed {
		p.VY = p.cfg.MaxFallSpeed
	}

	p.X += p.VX * dt
	for _, solid := range p.world.Query(p.Box()) {
		res := collision.ResolveHorizontal(p.Box(), solid, collision.Vec{X: p.VX})
		if res.Side == collision.SideNone {
			continue
		}
		p.X = res.Corrected
		p.VX = 0
	}

	p.Grounded = false
	p.Y += p.VY * dt
	for _, solid := range p.world.Query(p.Box()) {
		res := collision.ResolveVertical(p.Box(), solid, collision.Vec{Y: p.VY})
		switch res.Side {
		case collision.SideBottom:
			p.Y = res.Corrected
			p.VY = 0
			p.Grounded = true
		case collision.SideTop:
			p.Y = res.Corrected
			p.VY = 0
		}
	}

	if h := p.world.Height(); h > 0 && p.Y > h+p.H {
		p.Respawn()
	}
}
