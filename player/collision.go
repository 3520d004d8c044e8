package player

import (
	"math"

	"github.com/automoto/octoplat/config"
	"github.com/automoto/octoplat/shared/gamemath"
	"github.com/solarlune/resolv"
)

// Resolv tags for the collision space. The systems layer uses the same
// strings for its own space so spawn probes and debug overlays agree
// with the simulation.
const (
	TagSolid    = "solid"
	TagOneWay   = "oneway"
	TagBounce   = "bounce"
	TagPlatform = "platform"
	tagPlayer   = "player"
)

// spaceCell matches the tile size. spaceMargin pads the cell grid so
// probes just past the snapshot's outermost geometry still land on it.
const (
	spaceCell   = 16
	spaceMargin = 64.0
)

// Hitbox is a center-anchored collision box.
type Hitbox struct {
	Width  float64
	Height float64
}

// At returns the box as a top-left rect around a center position.
func (h Hitbox) At(center gamemath.Vec2) gamemath.Rect {
	return gamemath.Rect{
		X: center.X - h.Width/2,
		Y: center.Y - h.Height/2,
		W: h.Width,
		H: h.Height,
	}
}

// ensureSpace builds the resolv space for this snapshot on first use.
// Object coordinates are shifted by the snapshot origin so negative
// world positions stay on the cell grid. Dynamic platforms are tagged
// solid as well so blocking queries see them without a second pass.
func (w *World) ensureSpace() {
	if w.space != nil {
		return
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	bound := func(rects []gamemath.Rect) {
		for _, r := range rects {
			minX = math.Min(minX, r.X)
			minY = math.Min(minY, r.Y)
			maxX = math.Max(maxX, r.Right())
			maxY = math.Max(maxY, r.Bottom())
		}
	}
	bound(w.Solids)
	bound(w.OneWays)
	bound(w.Bouncers)
	bound(w.Platforms)
	if minX > maxX {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	w.originX = minX - spaceMargin
	w.originY = minY - spaceMargin
	width := int(maxX-minX+2*spaceMargin) + spaceCell
	height := int(maxY-minY+2*spaceMargin) + spaceCell
	w.space = resolv.NewSpace(width, height, spaceCell, spaceCell)

	add := func(rects []gamemath.Rect, tags ...string) {
		for _, r := range rects {
			w.space.Add(resolv.NewObject(r.X-w.originX, r.Y-w.originY, r.W, r.H, tags...))
		}
	}
	add(w.Solids, TagSolid)
	add(w.OneWays, TagOneWay)
	add(w.Bouncers, TagBounce)
	add(w.Platforms, TagSolid, TagPlatform)
}

// probeAt positions the reusable player probe at rect and returns it.
func (w *World) probeAt(rect gamemath.Rect) *resolv.Object {
	w.ensureSpace()
	if w.probe == nil {
		w.probe = resolv.NewObject(0, 0, rect.W, rect.H, tagPlayer)
		w.space.Add(w.probe)
	}
	w.probe.X = rect.X - w.originX
	w.probe.Y = rect.Y - w.originY
	w.probe.W = rect.W
	w.probe.H = rect.H
	w.probe.Update()
	return w.probe
}

// rectOf maps a space object back to world coordinates.
func (w *World) rectOf(o *resolv.Object) gamemath.Rect {
	return gamemath.Rect{X: o.X + w.originX, Y: o.Y + w.originY, W: o.W, H: o.H}
}

// checkGround probes a short strip under the feet, inset from the sides
// so brushing a wall does not count as standing.
func (w *World) checkGround(rect gamemath.Rect, tag string) bool {
	probe := w.probeAt(gamemath.Rect{X: rect.X + 2, Y: rect.Y, W: rect.W - 4, H: rect.H})
	check := probe.Check(0, 2, tag)
	if check == nil {
		return false
	}
	foot := gamemath.Rect{X: rect.X + 2, Y: rect.Bottom(), W: rect.W - 4, H: 2}
	for _, o := range check.ObjectsByTags(tag) {
		if foot.Overlaps(w.rectOf(o)) {
			return true
		}
	}
	return false
}

// checkWall probes two pixels out on each side, inset from the top and
// bottom so floors and ceilings do not read as walls. Returns -1 for a
// wall on the left, +1 on the right, 0 for none.
func (w *World) checkWall(rect gamemath.Rect) int {
	inset := gamemath.Rect{X: rect.X, Y: rect.Y + 4, W: rect.W, H: rect.H - 8}
	probe := w.probeAt(inset)
	for _, dir := range [2]float64{-1, 1} {
		check := probe.Check(dir*2, 0, TagSolid)
		if check == nil {
			continue
		}
		side := inset
		side.X += dir * 2
		for _, o := range check.ObjectsByTags(TagSolid) {
			if side.Overlaps(w.rectOf(o)) {
				return int(dir)
			}
		}
	}
	return 0
}

// blockedAt reports whether rect moved by (dx, dy) would overlap a
// blocking object.
func (w *World) blockedAt(rect gamemath.Rect, dx, dy float64) bool {
	probe := w.probeAt(rect)
	check := probe.Check(dx, dy, TagSolid)
	if check == nil {
		return false
	}
	moved := rect
	moved.X += dx
	moved.Y += dy
	for _, o := range check.ObjectsByTags(TagSolid) {
		if moved.Overlaps(w.rectOf(o)) {
			return true
		}
	}
	return false
}

// moveHorizontal advances the player along X, stopping at the nearest
// blocking contact. A clip near a ledge tries a vertical corner nudge
// first so near-misses slide into gaps instead of stopping dead.
func (p *Player) moveHorizontal(w *World, dx float64) {
	if dx == 0 {
		return
	}
	rect := p.CollisionRect()
	probe := w.probeAt(rect)
	check := probe.Check(dx, 0, TagSolid)
	if check == nil {
		p.Position.X += dx
		return
	}

	moved := rect
	moved.X += dx
	var blocker *resolv.Object
	for _, o := range check.ObjectsByTags(TagSolid) {
		or := w.rectOf(o)
		if moved.Overlaps(or) && rect.Bottom() > or.Y && rect.Y < or.Bottom() {
			blocker = o
			break
		}
	}
	if blocker == nil {
		p.Position.X += dx
		return
	}

	if nudge, ok := p.cornerNudgeVertical(w, dx); ok {
		p.Position.Y += nudge
		p.Position.X += dx
		return
	}

	contact := check.ContactWithObject(blocker)
	p.Position.X += contact.X()
	p.Velocity.X = 0
}

// moveVertical advances the player along Y. Landing snaps the feet to
// the surface within a pixel; hitting a ceiling zeroes upward velocity.
func (p *Player) moveVertical(w *World, dy float64) {
	rect := p.CollisionRect()
	probe := w.probeAt(rect)

	checkDist := dy
	if dy >= 0 {
		checkDist++
	}

	check := probe.Check(0, checkDist, TagSolid)
	if check == nil {
		p.Position.Y += dy
		return
	}

	moved := rect
	moved.Y += checkDist
	var blocker *resolv.Object
	for _, o := range check.ObjectsByTags(TagSolid) {
		or := w.rectOf(o)
		if moved.Overlaps(or) && rect.Right() > or.X && rect.X < or.Right() {
			blocker = o
			break
		}
	}
	if blocker == nil {
		p.Position.Y += dy
		return
	}

	if nudge, ok := p.cornerNudgeHorizontal(w, dy); ok {
		p.Position.X += nudge
		p.Position.Y += dy
		return
	}

	contact := check.ContactWithObject(blocker)
	p.Position.Y += contact.Y()
	if dy < 0 {
		p.Velocity.Y = max(p.Velocity.Y, 0)
	} else {
		p.Velocity.Y = 0
	}
}

// cornerNudgeVertical looks for a small up or down shift that lets the
// horizontal move complete, used when movement clips the lip of a gap.
// Only engages above the correction velocity so standing contact is
// untouched.
func (p *Player) cornerNudgeVertical(w *World, dx float64) (float64, bool) {
	if abs(p.Velocity.X) < config.Collision.CornerVelocityThreshold {
		return 0, false
	}
	threshold := config.Collision.CornerCorrectionThreshold
	rect := p.CollisionRect()

	for _, nudge := range [2]float64{-threshold, threshold} {
		shifted := rect
		shifted.Y += nudge
		if !w.blockedAt(shifted, dx, 0) {
			return nudge, true
		}
	}
	return 0, false
}

// cornerNudgeHorizontal is the vertical-movement counterpart, for
// jumping or falling into a tight vertical gap.
func (p *Player) cornerNudgeHorizontal(w *World, dy float64) (float64, bool) {
	if abs(p.Velocity.Y) < config.Collision.CornerVelocityThreshold {
		return 0, false
	}
	threshold := config.Collision.CornerCorrectionThreshold
	rect := p.CollisionRect()

	for _, nudge := range [2]float64{-threshold, threshold} {
		shifted := rect
		shifted.X += nudge
		if !w.blockedAt(shifted, 0, dy) {
			return nudge, true
		}
	}
	return 0, false
}

// onOneWayGround reports standing on a one-way platform. Only counts
// while not moving upward, so jumps pass through from below.
func (p *Player) onOneWayGround(w *World) bool {
	if p.Velocity.Y < 0 {
		return false
	}
	return w.checkGround(p.CollisionRect(), TagOneWay)
}

// resolveOneWay lands the player on one-way platforms when falling onto
// them from above, within the platform window.
func (p *Player) resolveOneWay(w *World) {
	if p.Velocity.Y < 0 {
		return
	}
	window := config.Collision.OneWayPlatformWindow
	rect := p.CollisionRect()
	probe := w.probeAt(rect)
	check := probe.Check(0, window, TagOneWay)
	if check == nil {
		return
	}

	bottom := rect.Bottom()
	for _, o := range check.ObjectsByTags(TagOneWay) {
		tile := w.rectOf(o)
		if bottom < tile.Y || bottom > tile.Y+window {
			continue
		}
		if rect.X < tile.Right() && rect.Right() > tile.X {
			p.Position.Y = tile.Y - rect.H/2
			p.Velocity.Y = 0
			rect = p.CollisionRect()
			bottom = rect.Bottom()
		}
	}
}

// checkBouncePads launches the player upward when the feet land within
// the bounce window of a pad's top surface.
func (p *Player) checkBouncePads(w *World) {
	window := config.Collision.BouncePadWindow
	rect := p.CollisionRect()
	probe := w.probeAt(rect)
	check := probe.Check(0, window, TagBounce)
	if check == nil {
		return
	}

	bottom := rect.Bottom()
	for _, o := range check.ObjectsByTags(TagBounce) {
		pad := w.rectOf(o)
		if bottom < pad.Y || bottom > pad.Y+window {
			continue
		}
		if rect.X < pad.Right() && rect.Right() > pad.X {
			p.Velocity.Y = -config.Platform.BounceVelocity
			p.State = StateJumping
		}
	}
}
