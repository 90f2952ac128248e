package main

import (
	"github.com/michaelquigley/faderkit/ebitendraw"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newPreviewCommand().cmd)
}

type previewCommand struct {
	cmd   *cobra.Command
	audio bool
}

func newPreviewCommand() *previewCommand {
	cmd := &cobra.Command{
		Use:   "preview [scene.yaml]",
		Short: "Preview a scene in an ebiten window",
		Args:  cobra.MaximumNArgs(1),
	}
	out := &previewCommand{cmd: cmd}
	cmd.Flags().BoolVar(&out.audio, "audio", false, "play the meter test tone")
	cmd.RunE = out.run
	return out
}

func (cmd *previewCommand) run(_ *cobra.Command, args []string) error {
	board, err := loadBoard(args)
	if err != nil {
		return err
	}

	readings, stop, err := startMeters(cmd.audio)
	if err != nil {
		return err
	}
	defer stop()

	return ebitendraw.Run(ebitendraw.NewGame(board, readings))
}
