package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/tapframe/tapframe/pkg/layout"
	"github.com/tapframe/tapframe/pkg/widget"
)

// newPreviewCmd creates the preview command: an interactive terminal
// view of a scene that recomputes the layout whenever the terminal is
// resized, so the flexible-axis behavior can be inspected live.
func newPreviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preview [scene]",
		Short: "Preview a scene interactively, relaying out on resize",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scene, err := loadScene(args[0])
			if err != nil {
				return err
			}
			spec, err := scene.ResolveSpec(filepath.Dir(args[0]))
			if err != nil {
				return err
			}

			model := newPreviewModel(scene, spec)
			_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}
}

var (
	previewTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	previewDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	previewErrStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("167"))
)

// previewModel is the bubbletea model for the preview command. Each
// terminal resize becomes a fresh layout pass over the scene's tree
// with the terminal cell grid as the available rectangle.
type previewModel struct {
	scene *Scene
	spec  *layout.Spec

	width, height int
	tree          *widget.Tree
	root          int
	order         []int
	results       []layout.Result
	err           error
}

func newPreviewModel(scene *Scene, spec *layout.Spec) previewModel {
	return previewModel{scene: scene, spec: spec, root: widget.None}
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.relayout()
	}
	return m, nil
}

// relayout rebuilds the tree and recomputes geometry against the
// current terminal size. The header and footer each take one row.
func (m *previewModel) relayout() {
	canvasH := m.height - 2
	if m.width < 4 || canvasH < 4 {
		m.err = fmt.Errorf("terminal too small")
		return
	}

	tree, root, err := m.scene.BuildTree()
	if err != nil {
		m.err = err
		return
	}

	ctx := layout.NewContext(layout.NewRect(0, 0, float64(m.width), float64(canvasH)))
	order := layout.Preorder(tree, root)
	results := make([]layout.Result, len(order))
	if _, err := layout.Calculate(tree, root, m.spec, ctx, results); err != nil {
		m.err = err
		return
	}

	m.tree, m.root, m.order, m.results, m.err = tree, root, order, results, nil
}

func (m previewModel) View() string {
	var b strings.Builder

	b.WriteString(previewTitleStyle.Render("tapframe preview"))
	b.WriteString(previewDimStyle.Render(fmt.Sprintf("  %dx%d  ", m.width, m.height)))
	b.WriteString(previewDimStyle.Render("q quit"))
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(previewErrStyle.Render(m.err.Error()))
		b.WriteString("\n")
	case m.tree != nil:
		b.WriteString(m.renderCanvas())
	}
	return b.String()
}

// renderCanvas draws each computed rectangle as a box outline on a rune
// grid, with the widget ID inset at the top-left corner.
func (m previewModel) renderCanvas() string {
	w, h := m.width, m.height-2
	grid := make([][]rune, h)
	for y := range grid {
		grid[y] = make([]rune, w)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}

	for i, node := range m.order {
		r := m.absolute(i, node)
		drawBox(grid, r, m.tree.ID(node))
	}

	var b strings.Builder
	for _, row := range grid {
		b.WriteString(strings.TrimRight(string(row), " "))
		b.WriteString("\n")
	}
	return b.String()
}

// absolute resolves a result entry to canvas coordinates: the root
// entry is already absolute, deeper entries are relative to the parent
// widget's committed position. Entries are visited in pre-order, so
// the parent's absolute rectangle is known before its children's.
func (m previewModel) absolute(i, node int) layout.Rect {
	r := m.results[i].Rect
	if node == m.root {
		return r
	}
	parent := m.tree.Node(node).Parent()
	for j, candidate := range m.order[:i] {
		if candidate == parent {
			origin := m.absolute(j, candidate)
			return r.Translate(origin.X, origin.Y)
		}
	}
	return r
}

func drawBox(grid [][]rune, r layout.Rect, id string) {
	x0, y0 := int(r.X), int(r.Y)
	x1, y1 := int(r.Right())-1, int(r.Bottom())-1
	h, w := len(grid), len(grid[0])

	plot := func(x, y int, c rune) {
		if x >= 0 && x < w && y >= 0 && y < h {
			grid[y][x] = c
		}
	}

	if x1 <= x0 || y1 <= y0 {
		plot(x0, y0, '·')
		return
	}

	for x := x0 + 1; x < x1; x++ {
		plot(x, y0, '─')
		plot(x, y1, '─')
	}
	for y := y0 + 1; y < y1; y++ {
		plot(x0, y, '│')
		plot(x1, y, '│')
	}
	plot(x0, y0, '┌')
	plot(x1, y0, '┐')
	plot(x0, y1, '└')
	plot(x1, y1, '┘')

	for i, c := range id {
		x := x0 + 1 + i
		if x >= x1 {
			break
		}
		plot(x, y0, c)
	}
}
