//go:build ebiten

package app

import (
	"context"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"tile-automata/internal/core"
	"tile-automata/internal/render"
	"tile-automata/internal/ui"
)

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session   *Session
	painter   *render.SurfacePainter
	hud       *ui.HUD
	inspector *ui.Inspector
	clock     *core.FixedStep

	scale int
}

// New constructs a Game for the provided session.
func New(session *Session, cfg *Config) *Game {
	size := session.Size()
	return &Game{
		session:   session,
		painter:   render.NewSurfacePainter(size.W, size.H, render.DefaultPalette()),
		hud:       ui.NewHUD(session, cfg.HUDWidth),
		inspector: ui.NewInspector(session, cfg.Scale),
		clock:     core.NewFixedStep(cfg.StepTPS),
		scale:     cfg.Scale,
	}
}

// Update handles per-frame logic.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	ctx := context.Background()
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		_ = g.session.Regenerate(ctx, g.session.Config().Seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		_ = g.session.Regenerate(ctx, time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		_ = g.session.Reroll(ctx)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) && g.session.StartAnimation() {
		g.clock.Reset()
	}

	if g.session.Animating() && g.clock.ShouldStep() {
		g.session.Advance()
	}

	g.inspector.Update()
	g.hud.Update(g.mapWidth())
	return nil
}

// Draw renders the map, the inspector and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.session.View(), g.session.Bounds(), g.scale)
	g.inspector.Draw(screen)
	g.hud.Draw(screen, g.mapWidth(), g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.mapWidth() + g.hud.Width(), g.session.Size().H * g.scale
}

func (g *Game) mapWidth() int { return g.session.Size().W * g.scale }
