package widget

import (
	"testing"

	"github.com/tapframe/tapframe/pkg/layout"
)

func TestAddMaintainsRelativeBounds(t *testing.T) {
	tree := NewTree()
	root := tree.Add(None, "root", layout.NewRect(100, 50, 400, 300))
	child := tree.Add(root, "child", layout.NewRect(110, 70, 50, 40))

	got := tree.Node(child).Relative
	want := layout.NewRect(10, 20, 50, 40)
	if got != want {
		t.Errorf("relative = %+v, want %+v", got, want)
	}
	if tree.Node(child).Parent() != root {
		t.Errorf("parent = %d, want %d", tree.Node(child).Parent(), root)
	}
	if tree.Node(root).Relative != tree.Node(root).Bounds {
		t.Error("root relative should equal its bounds")
	}
}

func TestAddGeneratesID(t *testing.T) {
	tree := NewTree()
	root := tree.Add(None, "", layout.NewRect(0, 0, 10, 10))
	if tree.ID(root) == "" {
		t.Error("empty ID was not generated")
	}
}

func TestSetBoundsCarriesDescendants(t *testing.T) {
	tree := NewTree()
	root := tree.Add(None, "root", layout.NewRect(0, 0, 100, 100))
	child := tree.Add(root, "child", layout.NewRect(10, 10, 20, 20))
	grand := tree.Add(child, "grand", layout.NewRect(15, 15, 5, 5))

	tree.SetBounds(root, layout.NewRect(50, 50, 100, 100))

	if got := tree.Node(child).Bounds; got != layout.NewRect(60, 60, 20, 20) {
		t.Errorf("child bounds = %+v, want (60,60,20,20)", got)
	}
	if got := tree.Node(grand).Bounds; got != layout.NewRect(65, 65, 5, 5) {
		t.Errorf("grand bounds = %+v, want (65,65,5,5)", got)
	}
	// Relative bounds unchanged by an ancestor move.
	if got := tree.Node(grand).Relative; got != layout.NewRect(5, 5, 5, 5) {
		t.Errorf("grand relative = %+v, want (5,5,5,5)", got)
	}
}

func TestDetach(t *testing.T) {
	tree := NewTree()
	root := tree.Add(None, "root", layout.NewRect(0, 0, 100, 100))
	a := tree.Add(root, "a", layout.NewRect(0, 0, 10, 10))
	b := tree.Add(root, "b", layout.NewRect(10, 0, 10, 10))

	if !tree.Detach(a) {
		t.Fatal("Detach returned false")
	}
	children := tree.Children(root)
	if len(children) != 1 || children[0] != b {
		t.Errorf("children after detach = %v, want [%d]", children, b)
	}
	if tree.Node(a).Parent() != None {
		t.Error("detached node still has a parent")
	}
	if tree.Detach(root) {
		t.Error("detaching a root should return false")
	}
}

func TestFind(t *testing.T) {
	tree := NewTree()
	root := tree.Add(None, "root", layout.NewRect(0, 0, 100, 100))
	a := tree.Add(root, "a", layout.NewRect(0, 0, 10, 10))
	a1 := tree.Add(a, "a1", layout.NewRect(0, 0, 5, 5))

	if got := tree.Find(root, "a1"); got != a1 {
		t.Errorf("Find(a1) = %d, want %d", got, a1)
	}
	if got := tree.Find(root, "missing"); got != None {
		t.Errorf("Find(missing) = %d, want None", got)
	}
}

func TestHitTest(t *testing.T) {
	tree := NewTree()
	root := tree.Add(None, "root", layout.NewRect(0, 0, 100, 100))
	tree.Add(root, "left", layout.NewRect(0, 0, 50, 100))
	overlap := tree.Add(root, "overlap", layout.NewRect(40, 0, 50, 100))

	// Later sibling wins in the overlap region.
	if got := tree.HitTest(root, 45, 10); got != overlap {
		t.Errorf("HitTest(45,10) = %d, want %d", got, overlap)
	}
	if got := tree.HitTest(root, 95, 10); got != root {
		t.Errorf("HitTest(95,10) = %d, want root %d", got, root)
	}
	if got := tree.HitTest(root, 200, 10); got != None {
		t.Errorf("HitTest outside = %d, want None", got)
	}
}
