package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tapframe/tapframe/pkg/layout"
	"github.com/tapframe/tapframe/pkg/widget"
)

const sceneTOML = `
width = 200
height = 100
scale = 2
offset_x = 10

class = "shell"

[classes.shell]
strategy = "flex"
direction = "row"
weights = [0, 1]

[[widget]]
id = "shell"
w = 200
h = 100

[[widget]]
id = "sidebar"
parent = "shell"
w = 60
h = 100

[[widget]]
id = "content"
parent = "shell"
x = 60
w = 140
h = 100
`

func writeScene(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadScene(t *testing.T) {
	scene, err := loadScene(writeScene(t, sceneTOML))
	if err != nil {
		t.Fatal(err)
	}

	if scene.Width != 200 || scene.Height != 100 {
		t.Errorf("viewport = %gx%g, want 200x100", scene.Width, scene.Height)
	}
	if len(scene.Widgets) != 3 {
		t.Fatalf("widgets = %d, want 3", len(scene.Widgets))
	}
	if scene.Widgets[1].Parent != "shell" {
		t.Errorf("sidebar parent = %q, want shell", scene.Widgets[1].Parent)
	}
}

func TestBuildTree(t *testing.T) {
	scene, err := loadScene(writeScene(t, sceneTOML))
	if err != nil {
		t.Fatal(err)
	}
	tree, root, err := scene.BuildTree()
	if err != nil {
		t.Fatal(err)
	}

	if got := tree.ID(root); got != "shell" {
		t.Errorf("root id = %q, want shell", got)
	}
	children := tree.Children(root)
	if len(children) != 2 {
		t.Fatalf("root has %d children, want 2", len(children))
	}
	// Declarations are parent-relative; the arena keeps both forms.
	content := children[1]
	wantRel := layout.NewRect(60, 0, 140, 100)
	if got := tree.Relative(content); got != wantRel {
		t.Errorf("content relative = %+v, want %+v", got, wantRel)
	}
}

func TestBuildTreeDefaultsParentToRoot(t *testing.T) {
	scene := &Scene{
		Width: 100, Height: 100,
		Widgets: []SceneWidget{
			{ID: "root", W: 100, H: 100},
			{ID: "orphanless", W: 10, H: 10},
		},
	}
	tree, root, err := scene.BuildTree()
	if err != nil {
		t.Fatal(err)
	}
	if got := len(tree.Children(root)); got != 1 {
		t.Errorf("root has %d children, want 1", got)
	}
}

func TestBuildTreeUnknownParent(t *testing.T) {
	scene := &Scene{
		Width: 100, Height: 100,
		Widgets: []SceneWidget{
			{ID: "root", W: 100, H: 100},
			{ID: "stray", Parent: "nowhere", W: 10, H: 10},
		},
	}
	if _, _, err := scene.BuildTree(); err == nil {
		t.Fatal("expected unknown parent error")
	}
}

func TestBuildTreeDuplicateID(t *testing.T) {
	scene := &Scene{
		Width: 100, Height: 100,
		Widgets: []SceneWidget{
			{ID: "root", W: 100, H: 100},
			{ID: "twin", Parent: "root"},
			{ID: "twin", Parent: "root"},
		},
	}
	if _, _, err := scene.BuildTree(); err == nil {
		t.Fatal("expected duplicate id error")
	}
}

func TestLoadSceneRejectsBadViewport(t *testing.T) {
	_, err := loadScene(writeScene(t, "width = 0\nheight = 50\n[[widget]]\nid = \"a\"\n"))
	if err == nil {
		t.Fatal("expected viewport error")
	}
}

func TestLoadSceneRejectsChildFirst(t *testing.T) {
	_, err := loadScene(writeScene(t, `
width = 100
height = 100

[[widget]]
id = "a"
parent = "b"
`))
	if err == nil {
		t.Fatal("expected root-first error")
	}
}

func TestResolveSpecInlineClasses(t *testing.T) {
	scene, err := loadScene(writeScene(t, sceneTOML))
	if err != nil {
		t.Fatal(err)
	}
	spec, err := scene.ResolveSpec(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if spec.Strategy != layout.FlexibleAxis {
		t.Errorf("strategy = %s, want %s", spec.Strategy, layout.FlexibleAxis)
	}
}

func TestResolveSpecExternalSheet(t *testing.T) {
	dir := t.TempDir()
	sheet := `
[class.panel]
strategy = "absolute"
clip = true
`
	if err := os.WriteFile(filepath.Join(dir, "styles.toml"), []byte(sheet), 0o644); err != nil {
		t.Fatal(err)
	}

	scene := &Scene{
		Width: 100, Height: 100,
		Class: "panel",
		Sheet: "styles.toml",
		Widgets: []SceneWidget{
			{ID: "root", W: 100, H: 100},
		},
	}
	spec, err := scene.ResolveSpec(dir)
	if err != nil {
		t.Fatal(err)
	}
	if spec.Strategy != layout.Absolute || !spec.ClipOverflow {
		t.Errorf("spec = %+v, want absolute with clip", spec)
	}
}

func TestResolveSpecDefaultsToAbsolute(t *testing.T) {
	scene := &Scene{
		Width: 100, Height: 100,
		Widgets: []SceneWidget{
			{ID: "root", W: 100, H: 100},
		},
	}
	spec, err := scene.ResolveSpec(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if spec.Strategy != layout.Absolute {
		t.Errorf("strategy = %s, want %s", spec.Strategy, layout.Absolute)
	}
}

func TestSceneContext(t *testing.T) {
	scene, err := loadScene(writeScene(t, sceneTOML))
	if err != nil {
		t.Fatal(err)
	}
	ctx := scene.Context()

	if ctx.Available != layout.NewRect(0, 0, 200, 100) {
		t.Errorf("available = %+v", ctx.Available)
	}
	if ctx.Scale != 2 {
		t.Errorf("scale = %g, want 2", ctx.Scale)
	}
	if ctx.Transform == nil || ctx.Transform.OffsetX != 10 {
		t.Errorf("transform = %+v, want offset x 10", ctx.Transform)
	}
}

func TestSceneEndToEnd(t *testing.T) {
	// Flex pass over the parsed scene: fixed sidebar plus weighted
	// content, then committed onto the tree as absolute bounds.
	scene, err := loadScene(writeScene(t, sceneTOML))
	if err != nil {
		t.Fatal(err)
	}
	tree, root, err := scene.BuildTree()
	if err != nil {
		t.Fatal(err)
	}
	spec, err := scene.ResolveSpec(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	// Unit scale and no transform keeps committed bounds comparable.
	ctx := layout.NewContext(layout.NewRect(0, 0, scene.Width, scene.Height))
	results := make([]layout.Result, len(layout.Preorder(tree, root)))
	n, err := layout.Calculate(tree, root, spec, ctx, results)
	if err != nil {
		t.Fatal(err)
	}
	if err := widget.Apply(tree, root, results[:n]); err != nil {
		t.Fatal(err)
	}

	content := tree.Find(root, "content")
	want := layout.NewRect(60, 0, 140, 100)
	if got := tree.Node(content).Bounds; got != want {
		t.Errorf("content bounds = %+v, want %+v", got, want)
	}
}
