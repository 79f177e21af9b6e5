package layout

import (
	"errors"
	"testing"
)

func TestEngineFor(t *testing.T) {
	for _, s := range []Strategy{Absolute, FlexibleAxis} {
		e, err := EngineFor(s)
		if err != nil || e == nil {
			t.Errorf("EngineFor(%s) = %v, %v", s, e, err)
		}
	}
	if _, err := EngineFor(Strategy(99)); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("unknown strategy err = %v, want ErrInvalidArgument", err)
	}
}

func TestCalculateNilSpec(t *testing.T) {
	tree := newTestTree()
	root := tree.add(-1, "root", NewRect(0, 0, 10, 10))

	if _, err := Calculate(tree, root, nil, NewContext(NewRect(0, 0, 10, 10)), make([]Result, 1)); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("nil spec err = %v, want ErrInvalidArgument", err)
	}
	if _, err := MinSize(tree, root, nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("nil spec MinSize err = %v, want ErrInvalidArgument", err)
	}
}

func TestSpecValidate(t *testing.T) {
	cases := []struct {
		name string
		spec *Spec
		ok   bool
	}{
		{"absolute ok", NewAbsolute(), true},
		{"flex ok", NewFlex(Column), true},
		{"absolute missing payload", &Spec{Strategy: Absolute}, false},
		{"flex missing payload", &Spec{Strategy: FlexibleAxis}, false},
		{"cross payload", &Spec{Strategy: Absolute, Absolute: &AbsoluteSpec{}, Flex: &FlexSpec{}}, false},
		{"negative padding", &Spec{Strategy: Absolute, Padding: -1, Absolute: &AbsoluteSpec{}}, false},
		{"negative gap", &Spec{Strategy: FlexibleAxis, Flex: &FlexSpec{Gap: -2}}, false},
		{"negative weight", &Spec{Strategy: FlexibleAxis, Flex: &FlexSpec{Weights: []float64{1, -1}}}, false},
		{"unknown strategy", &Spec{Strategy: Strategy(7)}, false},
	}
	for _, tc := range cases {
		err := tc.spec.Validate()
		if tc.ok && err != nil {
			t.Errorf("%s: unexpected error %v", tc.name, err)
		}
		if !tc.ok && !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("%s: err = %v, want ErrInvalidArgument", tc.name, err)
		}
	}
}

func TestCalculateDoesNotMutateTree(t *testing.T) {
	tree := newTestTree()
	root := tree.add(-1, "root", NewRect(0, 0, 100, 100))
	tree.add(root, "child", NewRect(5, 5, 10, 10))

	before := tree.rel[1]
	results := make([]Result, 2)
	if _, err := Calculate(tree, root, NewAbsolute(), NewContext(NewRect(0, 0, 50, 50)), results); err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if tree.rel[1] != before {
		t.Errorf("tree mutated during calculate: %+v -> %+v", before, tree.rel[1])
	}
}
