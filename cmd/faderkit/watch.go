package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/michaelquigley/faderkit"
	"github.com/michaelquigley/faderkit/meter"
	"github.com/michaelquigley/faderkit/widget"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newWatchCommand().cmd)
}

type watchCommand struct {
	cmd   *cobra.Command
	audio bool
}

func newWatchCommand() *watchCommand {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch the test tone on terminal meters",
		Args:  cobra.NoArgs,
	}
	out := &watchCommand{cmd: cmd}
	cmd.Flags().BoolVar(&out.audio, "audio", false, "play the meter test tone")
	cmd.RunE = out.run
	return out
}

func (cmd *watchCommand) run(_ *cobra.Command, _ []string) error {
	readings, stop, err := startMeters(cmd.audio)
	if err != nil {
		return err
	}
	defer stop()

	if _, err := tea.NewProgram(newWatchModel(readings)).Run(); err != nil {
		return errors.Wrap(err, "error running terminal meters")
	}
	return nil
}

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(16_666_666, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

const (
	minBarWidth = 10
	labelWidth  = 4
)

type watchModel struct {
	readings   <-chan meter.Reading
	ballistics *meter.Ballistics
	tiers      widget.DBTiers
	appearance widget.DBMeterAppearance

	left        widget.MeterBar
	right       *widget.MeterBar
	peakDB      *float32
	correlation float32
	width       int
}

func newWatchModel(readings <-chan meter.Reading) watchModel {
	r := faderkit.NewLogDBRange(-60.0, 6.0, faderkit.NewNormal(0.9))
	return watchModel{
		readings:   readings,
		ballistics: meter.NewBallistics(r),
		tiers:      widget.DefaultDBTiers(r),
		appearance: widget.DefaultDBMeterAppearance(),
		width:      60,
	}
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(tea.EnterAltScreen, tickCmd())
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
		return m, nil

	case tickMsg:
		m = m.drain()
		return m, tickCmd()
	}
	return m, nil
}

// drain folds every pending reading into the bars
func (m watchModel) drain() watchModel {
	for {
		select {
		case r, ok := <-m.readings:
			if !ok {
				return m
			}
			m.left, m.right = m.ballistics.Update(r.Output, r.Elapsed)
			m.correlation = r.Correlation
			m.peakDB = r.Output.LeftPeakDB
		default:
			return m
		}
	}
}

func (m watchModel) View() string {
	var sb strings.Builder
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	sb.WriteString(title.Render("faderkit meters") + "\n\n")
	width := max(m.width-labelWidth-12, minBarWidth)
	sb.WriteString(m.bar("L", m.left, width) + "\n")
	if m.right != nil {
		sb.WriteString(m.bar("R", *m.right, width) + "\n")
	}

	peak := "-∞ dB"
	if m.peakDB != nil {
		peak = faderkit.FormatDB(-60.0)(*m.peakDB)
	}
	sb.WriteString(fmt.Sprintf("\npeak %s  phase %s\n", peak, faderkit.FormatFloat(m.correlation)))
	sb.WriteString(dim.Render("\nq quit") + "\n")
	return sb.String()
}

// bar draws one channel as a run of tier coloured cells with the held peak
// marked by a bar character
func (m watchModel) bar(label string, b widget.MeterBar, width int) string {
	var sb strings.Builder
	sb.WriteString(lipgloss.NewStyle().Width(labelWidth).Render(label))

	filled := int(b.Bar.Scale(float32(width)) + 0.5)
	peak := -1
	if b.Peak != nil {
		peak = min(int(b.Peak.Scale(float32(width))), width-1)
	}
	for i := 0; i < width; i++ {
		n := faderkit.NewNormal((float32(i) + 0.5) / float32(width))
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(m.appearance.TierColor(m.tiers.Tier(n)).Hex()))
		switch {
		case i == peak:
			sb.WriteString(style.Render("|"))
		case i < filled:
			sb.WriteString(style.Render("█"))
		default:
			sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render("·"))
		}
	}
	return sb.String()
}
