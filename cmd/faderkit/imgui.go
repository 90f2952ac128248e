package main

import (
	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/glfwbackend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/michaelquigley/faderkit/imguidraw"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const windowMargin = 16

func init() {
	rootCmd.AddCommand(newImguiCommand().cmd)
}

type imguiCommand struct {
	cmd   *cobra.Command
	audio bool
}

func newImguiCommand() *imguiCommand {
	cmd := &cobra.Command{
		Use:   "imgui [scene.yaml]",
		Short: "Run a scene inside a dear imgui window",
		Args:  cobra.MaximumNArgs(1),
	}
	out := &imguiCommand{cmd: cmd}
	cmd.Flags().BoolVar(&out.audio, "audio", false, "play the meter test tone")
	cmd.RunE = out.run
	return out
}

func (cmd *imguiCommand) run(_ *cobra.Command, args []string) error {
	board, err := loadBoard(args)
	if err != nil {
		return err
	}

	readings, stop, err := startMeters(cmd.audio)
	if err != nil {
		return err
	}
	defer stop()

	b, err := backend.CreateBackend(glfwbackend.NewGLFWBackend())
	if err != nil {
		return errors.Wrap(err, "error creating imgui backend")
	}
	bg := board.Theme.Background
	b.SetBgColor(imgui.NewVec4(bg.R, bg.G, bg.B, bg.A))

	size := board.Size()
	width := int(size.X) + 2*windowMargin
	height := int(size.Y) + 2*windowMargin + 16
	b.CreateWindow(board.Title, width, height)

	panel := imguidraw.NewPanel(board, readings)
	b.Run(func() {
		imgui.SetNextWindowPos(imgui.Vec2{})
		imgui.SetNextWindowSize(imgui.Vec2{X: float32(width), Y: float32(height)})
		if imgui.BeginV(board.Title, nil, imgui.WindowFlagsNoDecoration) {
			panel.Draw()
		}
		imgui.End()
	})
	return nil
}
