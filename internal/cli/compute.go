package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/tapframe/tapframe/pkg/layout"
	"github.com/tapframe/tapframe/pkg/widget"
)

// computeOpts holds the command-line flags for the compute command.
type computeOpts struct {
	commit bool // write results back onto the tree and print absolute bounds
}

// newComputeCmd creates the compute command. It loads a scene, runs a
// layout pass, and prints one rectangle per widget in canonical
// pre-order. By default rectangles are parent-relative as the engine
// produced them; --commit applies them to the tree and prints absolute
// bounds instead.
func newComputeCmd() *cobra.Command {
	var opts computeOpts

	cmd := &cobra.Command{
		Use:   "compute [scene]",
		Short: "Compute the layout of a scene file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompute(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().BoolVar(&opts.commit, "commit", false, "apply results to the tree and print absolute bounds")
	return cmd
}

func runCompute(ctx context.Context, path string, opts *computeOpts) error {
	logger := loggerFromContext(ctx)

	scene, err := loadScene(path)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded scene: %d widgets, viewport %gx%g", len(scene.Widgets), scene.Width, scene.Height)

	tree, root, err := scene.BuildTree()
	if err != nil {
		return err
	}
	spec, err := scene.ResolveSpec(filepath.Dir(path))
	if err != nil {
		return err
	}
	logger.Debugf("Resolved class %q to %s strategy", scene.Class, spec.Strategy)

	order := layout.Preorder(tree, root)
	results := make([]layout.Result, len(order))
	n, err := layout.Calculate(tree, root, spec, scene.Context(), results)
	if err != nil {
		return err
	}
	logger.Infof("Computed %d rectangles", n)

	if opts.commit {
		if err := widget.Apply(tree, root, results[:n]); err != nil {
			return err
		}
	}

	rows := make([][]string, 0, n)
	for i, node := range order {
		r := results[i].Rect
		if opts.commit {
			r = tree.Node(node).Bounds
		}
		clipped := ""
		if results[i].Clipped {
			clipped = "yes"
		}
		rows = append(rows, []string{
			tree.ID(node),
			formatNum(r.X), formatNum(r.Y), formatNum(r.Width), formatNum(r.Height),
			clipped,
		})
	}

	fmt.Println(resultTable(rows).Render())
	return nil
}

// newMinSizeCmd creates the minsize command, which reports the smallest
// extent that would contain a scene's widgets without clipping.
func newMinSizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "minsize [scene]",
		Short: "Report the minimum size that fits a scene without clipping",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMinSize(cmd.Context(), args[0])
		},
	}
}

func runMinSize(ctx context.Context, path string) error {
	logger := loggerFromContext(ctx)

	scene, err := loadScene(path)
	if err != nil {
		return err
	}
	tree, root, err := scene.BuildTree()
	if err != nil {
		return err
	}
	spec, err := scene.ResolveSpec(filepath.Dir(path))
	if err != nil {
		return err
	}

	size, err := layout.MinSize(tree, root, spec)
	if err != nil {
		return err
	}
	logger.Debugf("Minimum size for %s strategy", spec.Strategy)

	fmt.Printf("%s x %s\n", formatNum(size.Width), formatNum(size.Height))
	return nil
}

var (
	tableBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	tableHeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true)
)

// resultTable renders rectangle rows as a bordered table.
func resultTable(rows [][]string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tableBorderStyle).
		Headers("Widget", "X", "Y", "W", "H", "Clipped").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return tableHeaderStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
}

// formatNum prints a coordinate without trailing zero noise.
func formatNum(v float64) string {
	return fmt.Sprintf("%g", v)
}
