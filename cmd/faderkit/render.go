package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/michaelquigley/faderkit/draw"
	"github.com/michaelquigley/faderkit/widget"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newRenderCommand().cmd)
}

var (
	entryStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	kindStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	readoutStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	leafStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
)

type renderCommand struct {
	cmd     *cobra.Command
	summary bool
}

func newRenderCommand() *renderCommand {
	cmd := &cobra.Command{
		Use:   "render [scene.yaml]",
		Short: "Render a scene and print its primitives",
		Args:  cobra.MaximumNArgs(1),
	}
	out := &renderCommand{cmd: cmd}
	cmd.Flags().BoolVar(&out.summary, "summary", false, "print primitive counts only")
	cmd.RunE = out.run
	return out
}

func (cmd *renderCommand) run(_ *cobra.Command, args []string) error {
	board, err := loadBoard(args)
	if err != nil {
		return err
	}

	var sb strings.Builder
	for i, e := range board.Entries() {
		p := e.Render(widget.Frame{Bounds: board.Cell(i).Widget})
		header := fmt.Sprintf("%s %s %s",
			entryStyle.Render(e.Name),
			kindStyle.Render(string(e.Kind)),
			readoutStyle.Render(e.Readout()))
		if cmd.summary {
			fmt.Fprintf(&sb, "%s %s\n", header, kindStyle.Render(fmt.Sprintf("(%d primitives)", draw.Count(p))))
			continue
		}
		sb.WriteString(header + "\n")
		draw.Walk(p, func(leaf draw.Primitive) {
			sb.WriteString("  " + leafStyle.Render(describe(leaf)) + "\n")
		})
	}
	fmt.Print(sb.String())
	return nil
}

func describe(p draw.Primitive) string {
	switch v := p.(type) {
	case draw.Quad:
		s := fmt.Sprintf("quad %s fill %s", rect(v.Bounds), v.Fill.Hex())
		if v.BorderRadius > 0 {
			s += fmt.Sprintf(" radius %g", v.BorderRadius)
		}
		if v.BorderWidth > 0 {
			s += fmt.Sprintf(" border %g %s", v.BorderWidth, v.BorderColor.Hex())
		}
		return s
	case draw.Line:
		return fmt.Sprintf("line %s -> %s width %g %s", point(v.A), point(v.B), v.Width, v.Color.Hex())
	case draw.Arc:
		return fmt.Sprintf("arc center %s radius %g %.3f..%.3f width %g %s", point(v.Center), v.Radius, v.Start, v.End, v.Width, v.Color.Hex())
	case draw.Curve:
		return fmt.Sprintf("curve %s ~ %s -> %s width %g %s", point(v.From), point(v.Control), point(v.To), v.Width, v.Color.Hex())
	case draw.Text:
		return fmt.Sprintf("text %q %s size %g %s", v.Content, rect(v.Bounds), v.Size, v.Color.Hex())
	case draw.Image:
		return fmt.Sprintf("image '%s' %s", v.Texture, rect(v.Bounds))
	default:
		return fmt.Sprintf("%T", p)
	}
}

func rect(r draw.Rect) string {
	return fmt.Sprintf("[%g,%g %gx%g]", r.X, r.Y, r.W, r.H)
}

func point(p draw.Point) string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}
