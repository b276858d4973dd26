package component

import (
	"testing"

	"github.com/lixenwraith/harvest/core"
)

var field = core.Rect{X: 0, Y: 0, W: 900, H: 540}

func TestFarmerApplyInput(t *testing.T) {
	tests := []struct {
		name   string
		dirs   Directions
		vx, vy float64
	}{
		{"idle", Directions{}, 0, 0},
		{"right", Directions{Right: true}, 260, 0},
		{"left", Directions{Left: true}, -260, 0},
		{"up", Directions{Up: true}, 0, -260},
		{"down", Directions{Down: true}, 0, 260},
		{"diagonal", Directions{Right: true, Down: true}, 260, 260},
		{"horizontal cancel", Directions{Left: true, Right: true}, 0, 0},
		{"vertical cancel", Directions{Up: true, Down: true, Right: true}, 260, 0},
		{"all four", Directions{Left: true, Right: true, Up: true, Down: true}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFarmer(100, 100)
			f.ApplyInput(tt.dirs)
			if f.VX != tt.vx || f.VY != tt.vy {
				t.Errorf("velocity = (%v,%v), want (%v,%v)", f.VX, f.VY, tt.vx, tt.vy)
			}
		})
	}
}

func TestFarmerAdvance(t *testing.T) {
	f := NewFarmer(100, 100)
	f.ApplyInput(Directions{Down: true})

	if blocked := f.Advance(0.5, field, nil); blocked {
		t.Fatal("Unobstructed advance reported blocked")
	}
	if f.X != 100 || f.Y != 230 {
		t.Errorf("Position = (%v,%v), want (100,230)", f.X, f.Y)
	}
}

func TestFarmerAdvanceBlockedByScarecrow(t *testing.T) {
	sc := NewScarecrow(100, 100)
	f := NewFarmer(60, 100)
	f.ApplyInput(Directions{Right: true})

	if !f.Advance(0.033, field, Bounds([]*Scarecrow{sc})) {
		t.Fatal("Advance into scarecrow should be blocked")
	}
	if f.X != 60 || f.Y != 100 {
		t.Errorf("Position after rollback = (%v,%v), want (60,100)", f.X, f.Y)
	}
}

func TestFarmerAdvanceClampsToField(t *testing.T) {
	f := NewFarmer(890, 530)
	f.ApplyInput(Directions{Right: true, Down: true})
	f.Advance(0.033, field, nil)

	if f.X != 866 || f.Y != 506 {
		t.Errorf("Position = (%v,%v), want (866,506)", f.X, f.Y)
	}
}

func TestEntityVariants(t *testing.T) {
	entities := []Entity{
		NewCrop(0, 0, CropWheat, nil),
		NewFarmer(0, 0),
		NewScarecrow(0, 0),
	}
	want := []Kind{KindCrop, KindFarmer, KindScarecrow}

	for i, e := range entities {
		if e.Kind() != want[i] {
			t.Errorf("entity %d Kind() = %v, want %v", i, e.Kind(), want[i])
		}
		if b := e.Bounds(); b.W <= 0 || b.H <= 0 {
			t.Errorf("%v has non-positive size %+v", e.Kind(), b)
		}
	}

	if _, ok := entities[0].(Updater); !ok {
		t.Error("Crop should implement Updater")
	}
	if _, ok := entities[2].(Updater); ok {
		t.Error("Scarecrow should not implement Updater")
	}
}

func TestKindString(t *testing.T) {
	if KindScarecrow.String() != "Scarecrow" || Kind(99).String() != "Unknown" {
		t.Error("Kind.String mismatch")
	}
}

func TestStartBounds(t *testing.T) {
	tests := []struct {
		name  string
		field core.Rect
		x, y  float64
	}{
		{"default field", core.Rect{W: 900, H: 540}, 433, 460},
		{"small field", core.Rect{W: 300, H: 300}, 133, 220},
		{"odd width", core.Rect{W: 301, H: 200}, 133.5, 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := StartBounds(tt.field)
			if b.X != tt.x || b.Y != tt.y {
				t.Errorf("StartBounds corner = (%v,%v), want (%v,%v)", b.X, b.Y, tt.x, tt.y)
			}
			if b.W != 34 || b.H != 34 {
				t.Errorf("StartBounds size = %vx%v, want 34x34", b.W, b.H)
			}
		})
	}
}
