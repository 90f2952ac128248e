package ebitendraw

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/michaelquigley/faderkit/draw"
	"github.com/michaelquigley/faderkit/meter"
	"github.com/michaelquigley/faderkit/scene"
)

// Game runs a scene board in an ebiten window; readings, when set, are
// drained into the board's meters every update
type Game struct {
	Board    *scene.Board
	Readings <-chan meter.Reading

	renderer *Renderer
	clicks   scene.ClickTracker
}

func NewGame(board *scene.Board, readings <-chan meter.Reading) *Game {
	return &Game{Board: board, Readings: readings, renderer: NewRenderer()}
}

// Renderer is the renderer used by Draw, for registering textures
func (g *Game) Renderer() *Renderer {
	return g.renderer
}

func (g *Game) Update() error {
	g.pollReadings()
	g.handleMouse()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(nrgba(g.Board.Theme.Background))
	g.renderer.Draw(screen, g.Board.Render())
}

func (g *Game) Layout(_, _ int) (int, int) {
	return windowSize(g.Board.Size())
}

func (g *Game) pollReadings() {
	for {
		select {
		case r, ok := <-g.Readings:
			if !ok {
				g.Readings = nil
				return
			}
			g.Board.Feed(r)
		default:
			return
		}
	}
}

func (g *Game) handleMouse() {
	mx, my := ebiten.CursorPosition()
	pos := draw.Point{X: float32(mx), Y: float32(my)}
	pressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	_, wy := ebiten.Wheel()

	g.Board.Input(scene.Pointer{
		Position:    pos,
		Down:        ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Pressed:     pressed,
		DoubleClick: pressed && g.clicks.Press(time.Now(), pos),
		Modifier:    ebiten.IsKeyPressed(ebiten.KeyShift),
		Wheel:       float32(wy),
	})
}

// Run opens a window sized to the board and blocks until it is closed
func Run(g *Game) error {
	w, h := windowSize(g.Board.Size())
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(g.Board.Title)
	return ebiten.RunGame(g)
}

func windowSize(size draw.Point) (int, int) {
	return max(int(math.Ceil(float64(size.X))), 1), max(int(math.Ceil(float64(size.Y))), 1)
}
