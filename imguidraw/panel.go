package imguidraw

import (
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/michaelquigley/faderkit/meter"
	"github.com/michaelquigley/faderkit/scene"
)

const scrollbarAllowance = 16

// Panel draws a scene board inside the current imgui window and feeds it
// pointer input and meter readings
type Panel struct {
	Board    *scene.Board
	Readings <-chan meter.Reading
	Renderer Renderer

	clicks scene.ClickTracker
}

func NewPanel(board *scene.Board, readings <-chan meter.Reading) *Panel {
	return &Panel{Board: board, Readings: readings}
}

// Draw renders the board; call it every frame between Begin and End
func (p *Panel) Draw() {
	if len(p.Board.Entries()) == 0 {
		imgui.Text("No widgets configured")
		return
	}
	p.pollReadings()

	size := vec(p.Board.Size())

	// scroll horizontally when the bank is wider than the window
	imgui.BeginChildStrV("FaderBank", imgui.Vec2{X: 0, Y: size.Y + scrollbarAllowance},
		imgui.ChildFlagsNone,
		imgui.WindowFlagsHorizontalScrollbar)

	p.Board.Origin = point(imgui.CursorScreenPos())

	// reserves the board area and captures drags
	imgui.InvisibleButton("##board", size)
	hovered := imgui.IsItemHovered()
	pressed := imgui.IsItemActivated()
	mouse := point(imgui.MousePos())
	io := imgui.CurrentIO()

	pointer := scene.Pointer{
		Position: mouse,
		Down:     imgui.IsItemActive(),
		Pressed:  pressed,
		Modifier: io.KeyShift(),
	}
	if pressed {
		pointer.DoubleClick = p.clicks.Press(time.Now(), mouse)
	}
	if hovered {
		pointer.Wheel = io.MouseWheel()
	}
	p.Board.Input(pointer)

	p.Renderer.Draw(imgui.WindowDrawList(), p.Board.Render())

	imgui.EndChild()
}

func (p *Panel) pollReadings() {
	for {
		select {
		case r, ok := <-p.Readings:
			if !ok {
				p.Readings = nil
				return
			}
			p.Board.Feed(r)
		default:
			return
		}
	}
}
