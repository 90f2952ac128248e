package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/michaelquigley/faderkit"
	"github.com/michaelquigley/faderkit/scene"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newScaleCommand().cmd)
}

type scaleCommand struct {
	cmd   *cobra.Command
	cfg   faderkit.RangeConfig
	steps int
}

func newScaleCommand() *scaleCommand {
	cmd := &cobra.Command{
		Use:   "scale <float|int|logdb|freq>",
		Short: "Print the values a range maps across normal travel",
		Args:  cobra.ExactArgs(1),
	}
	out := &scaleCommand{cmd: cmd}
	cmd.Flags().Float32Var(&out.cfg.Min, "min", 0, "range minimum")
	cmd.Flags().Float32Var(&out.cfg.Max, "max", 0, "range maximum")
	cmd.Flags().Float32Var(&out.cfg.Pivot, "pivot", 0, "normal position of 0 dB (logdb)")
	cmd.Flags().IntVar(&out.steps, "steps", 10, "number of intervals to print")
	cmd.RunE = out.run
	return out
}

func (cmd *scaleCommand) run(_ *cobra.Command, args []string) error {
	if cmd.steps < 1 {
		return errors.Errorf("steps must be at least 1, got %d", cmd.steps)
	}
	cmd.cfg.Kind = args[0]
	r, format, err := scene.NewRange(cmd.cfg)
	if err != nil {
		return errors.Wrapf(err, "error creating '%v' range", args[0])
	}

	normalStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(8)
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	for i := 0; i <= cmd.steps; i++ {
		n := faderkit.NewNormal(float32(i) / float32(cmd.steps))
		fmt.Println(normalStyle.Render(n.String()) + valueStyle.Render(format(r.ToValue(n))))
	}
	return nil
}
