package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/askern/polycipher/pkg/attack"
	"github.com/askern/polycipher/pkg/cipher"
	"github.com/askern/polycipher/pkg/geometry"
	"github.com/askern/polycipher/pkg/level"
	"github.com/askern/polycipher/pkg/scoring"
)

// newPlayCmd creates the play command.
func newPlayCmd() *cobra.Command {
	var (
		levelIndex int
		levelsPath string
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Interactive cipher chain builder with live scoring",
		Long: `Interactive cipher chain builder with live scoring.

Build a chain against a level's node budget and watch the strength score
and attack penalties update as you go.

Keys:
  s  add a shift node        m  add a multiply node
  r  add a reverse node      p  add a polygon node (cycles presets)
  d  delete the last node    enter  submit against the level threshold
  q  quit`,
		RunE: func(cmd *cobra.Command, args []string) error {
			set := level.Defaults()
			if levelsPath != "" {
				var err error
				if set, err = level.Load(levelsPath); err != nil {
					return err
				}
			}
			lvl, err := set.Get(levelIndex)
			if err != nil {
				return err
			}

			model := newPlayModel(lvl, lvl.Plaintexts[0])
			program := tea.NewProgram(model, tea.WithContext(cmd.Context()))
			_, err = program.Run()
			return err
		},
	}

	cmd.Flags().IntVarP(&levelIndex, "level", "l", 0, "level index (0-based)")
	cmd.Flags().StringVar(&levelsPath, "levels", "", "path to a custom levels TOML file")
	return cmd
}

// Rotating key choices so repeated presses build varied chains.
var (
	playShiftKeys    = []int{3, 7, 13, 21}
	playMultiplyKeys = []int{3, 7, 17, 25}
)

// Preset polygons for the TUI, where drawing is not possible.
var playPolygons = [][]geometry.Point{
	{{X: 0, Y: 0}, {X: 300, Y: 0}, {X: 0, Y: 400}},                                        // right triangle
	{{X: 0, Y: 0}, {X: 200, Y: 0}, {X: 200, Y: 200}, {X: 0, Y: 200}},                      // square
	{{X: 0, Y: 0}, {X: 200, Y: 80}, {X: 400, Y: 0}, {X: 200, Y: 300}},                     // arrowhead (concave)
	{{X: 100, Y: 0}, {X: 300, Y: 40}, {X: 360, Y: 220}, {X: 160, Y: 320}, {X: 0, Y: 180}}, // irregular pentagon
}

// playModel is the bubbletea model for the interactive builder.
type playModel struct {
	level     level.Level
	plaintext string
	pipeline  *cipher.Pipeline

	shiftIdx    int
	multiplyIdx int
	polygonIdx  int

	message   string
	submitted bool
	passed    bool
	final     float64
}

func newPlayModel(lvl level.Level, plaintext string) playModel {
	return playModel{
		level:     lvl,
		plaintext: plaintext,
		pipeline:  cipher.NewPipeline(),
	}
}

func (m playModel) Init() tea.Cmd {
	return nil
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit

	case "s":
		m, added := m.addNode(cipher.NewShift(playShiftKeys[m.shiftIdx]))
		if added {
			m.shiftIdx = (m.shiftIdx + 1) % len(playShiftKeys)
		}
		return m, nil

	case "r":
		m, _ := m.addNode(cipher.NewReverse())
		return m, nil

	case "m":
		m, added := m.addNode(cipher.NewMultiply(playMultiplyKeys[m.multiplyIdx]))
		if added {
			m.multiplyIdx = (m.multiplyIdx + 1) % len(playMultiplyKeys)
		}
		return m, nil

	case "p":
		vertices := playPolygons[m.polygonIdx]
		if err := m.level.CheckVertexBudget(len(vertices)); err != nil {
			m.message = err.Error()
			return m, nil
		}
		m, added := m.addNode(cipher.NewPolygon(vertices))
		if added {
			m.polygonIdx = (m.polygonIdx + 1) % len(playPolygons)
		}
		return m, nil

	case "d":
		if m.pipeline.IsEmpty() {
			m.message = "nothing to delete"
			return m, nil
		}
		_ = m.pipeline.RemoveNode(m.pipeline.Len() - 1)
		m.message = ""
		m.submitted = false
		return m, nil

	case "enter":
		breakdown := m.score()
		m.submitted = true
		m.final = breakdown.Final
		m.passed = m.level.Passed(breakdown.Final)
		return m, nil
	}

	return m, nil
}

// addNode appends a node if the level budget allows. The second return
// reports whether the node was added.
func (m playModel) addNode(node cipher.Node) (playModel, bool) {
	if err := m.level.CheckNodeBudget(m.pipeline.Len()); err != nil {
		m.message = err.Error()
		return m, false
	}
	m.pipeline.AddNode(node)
	m.message = ""
	m.submitted = false
	return m, true
}

func (m playModel) score() scoring.Breakdown {
	ciphertext := m.pipeline.Encrypt(m.plaintext)
	return scoring.Evaluate(m.plaintext, ciphertext, m.pipeline)
}

// List styles
var (
	playHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	playDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
	playWarnStyle   = lipgloss.NewStyle().Foreground(colorYellow)
)

func (m playModel) View() string {
	var b strings.Builder

	ciphertext := m.pipeline.Encrypt(m.plaintext)
	breakdown := m.score()
	report := attack.RunAttacks(m.plaintext, ciphertext, m.pipeline)

	fmt.Fprintf(&b, "%s\n", playHeaderStyle.Render(fmt.Sprintf("PolyCipher — %s (threshold %.0f)", m.level.Name, m.level.PassThreshold)))
	fmt.Fprintf(&b, "\nplaintext   %s\n", m.plaintext)
	fmt.Fprintf(&b, "ciphertext  %s\n\n", StyleValue.Render(ciphertext))

	fmt.Fprintf(&b, "chain (%d/%d nodes)\n", m.pipeline.Len(), m.level.MaxNodes)
	if m.pipeline.IsEmpty() {
		fmt.Fprintf(&b, "  %s\n", playDimStyle.Render("empty — the text passes through unchanged"))
	}
	for _, step := range m.pipeline.Describe() {
		fmt.Fprintf(&b, "  %s\n", step)
	}

	fmt.Fprintf(&b, "\nscore   %s %.0f\n", scoreBar(breakdown.Final), breakdown.Final)
	fmt.Fprintf(&b, "attacks -%d", report.TotalPenalty)
	if report.ShowAnimation {
		fmt.Fprintf(&b, " %s", playWarnStyle.Render("(vulnerable)"))
	}
	b.WriteString("\n")

	if m.submitted {
		b.WriteString("\n")
		if m.passed {
			b.WriteString(StyleSuccess.Render(fmt.Sprintf("✓ passed with %.0f", m.final)))
		} else {
			b.WriteString(StyleDanger.Render(fmt.Sprintf("✗ %.0f is below the threshold", m.final)))
		}
		b.WriteString("\n")
	}
	if m.message != "" {
		fmt.Fprintf(&b, "\n%s\n", playWarnStyle.Render(m.message))
	}

	b.WriteString(playDimStyle.Render("\n[s]hift [r]everse [m]ultiply [p]olygon [d]elete [enter] submit [q]uit\n"))
	return b.String()
}
