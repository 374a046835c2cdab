package layers

import "testing"

func TestCreateCenteredLayer_Empty(t *testing.T) {
	if layer := CreateCenteredLayer("", 80, 24); layer != nil {
		t.Error("empty content should produce no layer")
	}
	if layer := CreateCenteredLayer("x", 80, 24); layer == nil {
		t.Error("content should produce a layer")
	}
}

func TestCenterOffset(t *testing.T) {
	x, y := CenterOffset(4, 2, 20, 10)
	if x != 8 || y != 4 {
		t.Errorf("CenterOffset = (%d,%d), want (8,4)", x, y)
	}

	x, y = CenterOffset(30, 5, 10, 1)
	if x != 0 || y != 0 {
		t.Errorf("oversized content should pin to origin, got (%d,%d)", x, y)
	}
}

func TestModalSize(t *testing.T) {
	w, h := ModalSize(100, 50, 40, 10)
	if w != 60 || h != 30 {
		t.Errorf("ModalSize = (%d,%d), want (60,30)", w, h)
	}

	w, h = ModalSize(30, 8, 40, 10)
	if w != 30 || h != 8 {
		t.Errorf("ModalSize on a tiny screen = (%d,%d), want (30,8)", w, h)
	}
}
