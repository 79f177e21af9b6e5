package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/tapframe/tapframe/pkg/layout"
	"github.com/tapframe/tapframe/pkg/style"
	"github.com/tapframe/tapframe/pkg/widget"
)

// Scene is the on-disk description of one layout invocation: a viewport,
// a widget hierarchy with literal bounds, and the layout class applied
// at the root. Classes may be declared inline or loaded from a separate
// stylesheet referenced by path.
type Scene struct {
	Width   float64 `toml:"width"`
	Height  float64 `toml:"height"`
	Scale   float64 `toml:"scale"`
	OffsetX float64 `toml:"offset_x"`
	OffsetY float64 `toml:"offset_y"`

	// RefWidth and RefHeight override the denominators used for the
	// root widget's own fractional bounds. Zero means the viewport.
	RefWidth  float64 `toml:"ref_width"`
	RefHeight float64 `toml:"ref_height"`

	// Class names the layout class applied at the root widget. When no
	// classes are declared at all, the scene lays out absolutely from
	// literal bounds alone.
	Class   string                 `toml:"class"`
	Sheet   string                 `toml:"sheet"`
	Classes map[string]style.Class `toml:"classes"`

	Widgets []SceneWidget `toml:"widget"`
}

// SceneWidget is one widget declaration. Positions are relative to the
// parent's origin; the first widget is the root and must have no parent.
type SceneWidget struct {
	ID     string  `toml:"id"`
	Parent string  `toml:"parent"`
	X      float64 `toml:"x"`
	Y      float64 `toml:"y"`
	W      float64 `toml:"w"`
	H      float64 `toml:"h"`
}

// loadScene reads and decodes a scene file.
func loadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}
	var s Scene
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("scene: parse %s: %w", path, err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Scene) validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("scene: viewport must be positive, got %gx%g", s.Width, s.Height)
	}
	if len(s.Widgets) == 0 {
		return fmt.Errorf("scene: no widgets declared")
	}
	if s.Widgets[0].Parent != "" {
		return fmt.Errorf("scene: first widget %q must be the root, but names parent %q",
			s.Widgets[0].ID, s.Widgets[0].Parent)
	}
	return nil
}

// BuildTree constructs the widget tree in declaration order and returns
// it with the root's arena index. Parents must be declared before their
// children.
func (s *Scene) BuildTree() (*widget.Tree, int, error) {
	t := widget.NewTree()
	byID := make(map[string]int, len(s.Widgets))

	root := widget.None
	for i, w := range s.Widgets {
		parent := root
		if i == 0 {
			parent = widget.None
		} else if w.Parent != "" {
			idx, ok := byID[w.Parent]
			if !ok {
				return nil, widget.None, fmt.Errorf("scene: widget %q names unknown parent %q", w.ID, w.Parent)
			}
			parent = idx
		}

		// Declarations are parent-relative; the arena stores absolute
		// bounds and re-derives relative ones.
		bounds := layout.NewRect(w.X, w.Y, w.W, w.H)
		if parent != widget.None {
			origin := t.Node(parent).Bounds
			bounds = bounds.Translate(origin.X, origin.Y)
		}

		idx := t.Add(parent, w.ID, bounds)
		if i == 0 {
			root = idx
		}
		if id := t.Node(idx).ID; id != "" {
			if _, dup := byID[id]; dup {
				return nil, widget.None, fmt.Errorf("scene: duplicate widget id %q", id)
			}
			byID[id] = idx
		}
	}
	return t, root, nil
}

// ResolveSpec produces the layout spec for the scene's root class.
// Inline classes win over an external sheet; with neither declared the
// scene falls back to plain absolute layout of the literal bounds.
func (s *Scene) ResolveSpec(baseDir string) (*layout.Spec, error) {
	switch {
	case len(s.Classes) > 0:
		sheet := &style.Sheet{Classes: s.Classes}
		return sheet.Resolve(s.Class)
	case s.Sheet != "":
		path := s.Sheet
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		sheet, err := style.Load(path)
		if err != nil {
			return nil, err
		}
		return sheet.Resolve(s.Class)
	case s.Class != "":
		return nil, fmt.Errorf("scene: class %q named but no classes declared", s.Class)
	default:
		return layout.NewAbsolute(), nil
	}
}

// Context builds the layout context for the scene's viewport.
func (s *Scene) Context() layout.Context {
	ctx := layout.NewContext(layout.NewRect(0, 0, s.Width, s.Height))
	if s.Scale != 0 {
		ctx.Scale = s.Scale
	}
	if s.OffsetX != 0 || s.OffsetY != 0 {
		ctx.Transform = &layout.Transform{OffsetX: s.OffsetX, OffsetY: s.OffsetY}
	}
	ctx.RefWidth = s.RefWidth
	ctx.RefHeight = s.RefHeight
	return ctx
}
