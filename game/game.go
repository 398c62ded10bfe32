package game

import (
	"image"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

// State is the top-level game state
type State int

const (
	StateRunning State = iota
	StateGameOver
)

// Game represents the main game state. It implements ebiten.Game.
type Game struct {
	config          Config
	sprites         *Sprites
	input           InputProvider
	rng             Rand
	collisionSystem *CollisionSystem

	// canvas is the frame buffer entities draw into during Update
	canvas *ebiten.Image

	player     *Player
	bombs      []*Bomb
	beams      []*Beam
	explosions []*Explosion
	score      *Score

	killSprite    *ebiten.Image
	hitSprite     *ebiten.Image
	explosionImgs [2]*ebiten.Image

	// order is reused every frame to hold the update sequence
	order []Updatable

	state State
	ticks int

	// Game over sequence, counted in ticks
	overTicks   int
	hitTicks    int
	bannerTicks int
	bannerShown bool
}

// NewGame creates a new game instance with the player at its start point
// and the initial bombs spawned from rng
func NewGame(config Config, sprites *Sprites, input InputProvider, rng Rand) *Game {
	field := config.FieldSize()
	g := &Game{
		config:      config,
		sprites:     sprites,
		input:       input,
		rng:         rng,
		canvas:      ebiten.NewImage(field.X, field.Y),
		player:      NewPlayer(config.Player, sprites),
		bombs:       make([]*Bomb, 0, config.Bomb.Count),
		score:       NewScore(config.Score, field, sprites.ScoreFace),
		killSprite:  sprites.Kokaton[config.Player.KillSprite],
		hitSprite:   sprites.Kokaton[config.Player.HitSprite],
		hitTicks:    config.Ticks(config.GameOver.HitPause),
		bannerTicks: config.Ticks(config.GameOver.BannerPause),
	}
	g.explosionImgs = [2]*ebiten.Image{sprites.Explosion, Flip(sprites.Explosion, true, true)}
	g.collisionSystem = NewCollisionSystem(g)

	for i := 0; i < config.Bomb.Count; i++ {
		g.bombs = append(g.bombs, SpawnBomb(rng, config.Bomb, field))
	}
	return g
}

// Update advances one frame. It returns ebiten.Termination when the player
// quits or the game over sequence has finished.
func (g *Game) Update() error {
	if g.state == StateGameOver {
		return g.updateGameOver()
	}
	return g.step()
}

// step runs one frame of play
func (g *Game) step() error {
	for _, ev := range g.input.Poll() {
		switch ev {
		case EventQuit:
			return ebiten.Termination
		case EventFire:
			g.fire(BeamNormal)
		case EventBigFire:
			g.fire(BeamBig)
		}
	}

	g.canvas.Clear()
	blit(g.canvas, g.sprites.Background, image.Rectangle{})

	if g.collisionSystem.PlayerHit() {
		g.enterGameOver()
		return nil
	}
	g.collisionSystem.ResolveBeamHits()
	g.collisionSystem.RetireBeams()
	g.compact()

	f := &Frame{
		Canvas: g.canvas,
		Held:   g.input.Held(),
		Field:  g.config.FieldSize(),
	}
	for _, u := range g.updatables() {
		u.Update(f)
	}
	g.ticks++
	return nil
}

// fire adds a beam of the given kind along the player's facing
func (g *Game) fire(kind BeamKind) {
	bc := GetBeamConfig(kind, g.config.Beam)
	g.beams = append(g.beams, NewBeam(g.player, bc, g.sprites.Beam))
}

// compact drops destroyed bombs, spent beams and expired explosions
func (g *Game) compact() {
	g.bombs = slices.DeleteFunc(g.bombs, func(b *Bomb) bool { return !b.Active })
	g.beams = slices.DeleteFunc(g.beams, func(b *Beam) bool { return !b.Active })
	g.explosions = slices.DeleteFunc(g.explosions, (*Explosion).Expired)
}

// updatables lists this frame's entities in update order
func (g *Game) updatables() []Updatable {
	g.order = append(g.order[:0], g.player)
	for _, b := range g.bombs {
		g.order = append(g.order, b)
	}
	for _, b := range g.beams {
		g.order = append(g.order, b)
	}
	for _, e := range g.explosions {
		g.order = append(g.order, e)
	}
	return append(g.order, g.score)
}

// enterGameOver shows the hit sprite and starts the end sequence
func (g *Game) enterGameOver() {
	g.state = StateGameOver
	g.player.SetSprite(g.hitSprite, g.canvas)
	g.overTicks = 0
}

// updateGameOver holds the hit sprite, then the banner, then terminates.
// Input is ignored for the whole sequence.
func (g *Game) updateGameOver() error {
	g.overTicks++
	if !g.bannerShown && g.overTicks >= g.hitTicks {
		field := g.config.FieldSize()
		pos := image.Pt(field.X/2-150, field.Y/2)
		drawText(g.canvas, g.config.GameOver.Text, g.sprites.BannerFace, pos, g.config.GameOver.Color.Color())
		g.bannerShown = true
	}
	if g.overTicks >= g.hitTicks+g.bannerTicks {
		return ebiten.Termination
	}
	return nil
}

// Draw presents the frame built by the last Update
func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.canvas, nil)
}

// Layout returns the fixed logical screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.Field.Width, g.config.Field.Height
}

// State returns the current state
func (g *Game) State() State {
	return g.state
}

// Ticks returns the number of frames played
func (g *Game) Ticks() int {
	return g.ticks
}

// Score returns the current score
func (g *Game) Score() int {
	return g.score.Value
}

// Player returns the player
func (g *Game) Player() *Player {
	return g.player
}

// Bombs returns the live bombs
func (g *Game) Bombs() []*Bomb {
	return g.bombs
}

// Beams returns the live beams
func (g *Game) Beams() []*Beam {
	return g.beams
}

// Explosions returns the live explosions
func (g *Game) Explosions() []*Explosion {
	return g.explosions
}
