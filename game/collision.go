package game

// CollisionSystem resolves overlaps between the player, bombs and beams
type CollisionSystem struct {
	game *Game
}

// NewCollisionSystem creates a collision system over the game's live sets
func NewCollisionSystem(g *Game) *CollisionSystem {
	return &CollisionSystem{game: g}
}

// PlayerHit reports whether any live bomb overlaps the player
func (c *CollisionSystem) PlayerHit() bool {
	p := c.game.player
	for _, bomb := range c.game.bombs {
		if bomb.Active && bomb.Rect.Overlaps(p.Rect) {
			return true
		}
	}
	return false
}

// ResolveBeamHits destroys every overlapping (bomb, beam) pair. A beam takes
// part in at most one pair per frame; a bomb live at the start of the frame
// pairs with every beam overlapping it. Returns the number of pairs.
func (c *CollisionSystem) ResolveBeamHits() int {
	g := c.game
	hits := 0
	for _, bomb := range g.bombs {
		live := bomb.Active
		for _, beam := range g.beams {
			if !live || !beam.Active {
				continue
			}
			if !beam.Rect.Overlaps(bomb.Rect) {
				continue
			}
			g.player.SetSprite(g.killSprite, g.canvas)
			g.explosions = append(g.explosions, NewExplosion(bomb, g.explosionImgs, g.config.Explosion))
			bomb.Active = false
			beam.Active = false
			g.score.Increment()
			hits++
		}
	}
	return hits
}

// RetireBeams deactivates beams that are no longer fully inside the field
func (c *CollisionSystem) RetireBeams() {
	field := c.game.config.FieldSize()
	for _, beam := range c.game.beams {
		if beam.Active && !beam.InBounds(field) {
			beam.Active = false
		}
	}
}
