package cli

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/punishboard/pkg/dice"
	"github.com/matzehuels/punishboard/pkg/observability"
	"github.com/matzehuels/punishboard/pkg/render/sink"
	"github.com/matzehuels/punishboard/pkg/session"
)

// playCommand creates the interactive play command.
func (c *CLI) playCommand() *cobra.Command {
	var (
		name        string
		topRight    string
		bottomRight string
		bottomLeft  string
		delay       time.Duration
		seed        uint64
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play the board in the terminal",
		Long: `Play the board in the terminal.

Press space or enter to roll. The roll is shown in the middle of the board
for a few seconds; rolling again replaces it. Press q to quit.

The board is built from the saved space list, which must hold a non-zero
number of spaces divisible by 4.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := c.store(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			var opts []session.Option
			if seed != 0 {
				opts = append(opts, session.WithRNG(dice.NewSeededRNG(seed)))
			}
			s, err := c.newSession(ctx, st, opts...)
			if err != nil {
				return err
			}
			if err := s.Start(name, c.corners(topRight, bottomRight, bottomLeft)); err != nil {
				return err
			}
			observability.Game().OnStart(ctx, s.Layout().Len())

			if delay <= 0 {
				delay = c.Config.Game.AnnounceDelay.Duration
			}
			final, err := tea.NewProgram(newPlayModel(ctx, s, delay), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
			if err != nil {
				return fmt.Errorf("run board: %w", err)
			}

			m := final.(playModel)
			printSuccess("Finished on %s after %d rolls", StyleValue.Render(m.currentLabel()), m.rolls)
			s.Reset()
			observability.Game().OnReset(ctx)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "board name shown in the centre")
	cmd.Flags().StringVar(&topRight, "top-right", "", "top right corner label")
	cmd.Flags().StringVar(&bottomRight, "bottom-right", "", "bottom right corner label")
	cmd.Flags().StringVar(&bottomLeft, "bottom-left", "", "bottom left corner label")
	cmd.Flags().DurationVar(&delay, "delay", 0, "how long a roll stays shown (default from config)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for reproducible rolls")

	return cmd
}

// =============================================================================
// playModel - board with roll announcements
// =============================================================================

var (
	playHelpStyle   = lipgloss.NewStyle().Foreground(colorDim)
	playStatusStyle = lipgloss.NewStyle().Foreground(colorGray)
	playErrorStyle  = lipgloss.NewStyle().Foreground(colorRed)
)

// hideMsg ends the announcement with the given sequence number. A hide for
// an older announcement is ignored.
type hideMsg struct{ seq uint64 }

// playModel is the bubbletea model of a running game.
type playModel struct {
	ctx   context.Context
	sess  *session.Session
	delay time.Duration

	seq     uint64
	showing bool
	rolls   int
	err     error
}

func newPlayModel(ctx context.Context, s *session.Session, delay time.Duration) playModel {
	return playModel{ctx: ctx, sess: s, delay: delay}
}

func (m playModel) Init() tea.Cmd {
	return nil
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "enter", "r":
			return m.roll()
		}
	case hideMsg:
		if msg.seq == m.seq {
			m.showing = false
		}
	}
	return m, nil
}

func (m playModel) roll() (tea.Model, tea.Cmd) {
	res, err := m.sess.Roll()
	if err != nil {
		m.err = err
		return m, nil
	}
	m.rolls++
	m.seq++
	m.showing = true
	observability.Game().OnRoll(m.ctx, res.Roll, res.From, res.Position)

	seq := m.seq
	return m, tea.Tick(m.delay, func(time.Time) tea.Msg { return hideMsg{seq: seq} })
}

func (m playModel) currentLabel() string {
	spaces := m.sess.Layout().Spaces
	if pos := m.sess.Position(); pos >= 0 && pos < len(spaces) {
		return spaces[pos]
	}
	return ""
}

func (m playModel) View() string {
	roll := 0
	if m.showing {
		roll = m.sess.LastRoll()
	}
	b := sink.RenderText(m.sess.Layout(),
		sink.WithTextPosition(m.sess.Position()),
		sink.WithTextTitle(m.sess.Name()),
		sink.WithTextRoll(roll),
	)

	status := playStatusStyle.Render(fmt.Sprintf("%s %s", sink.Token, m.currentLabel()))
	if m.err != nil {
		status = playErrorStyle.Render(m.err.Error())
	}
	help := playHelpStyle.Render("space/enter roll · q quit")
	return lipgloss.JoinVertical(lipgloss.Left, b, "", status, help)
}
