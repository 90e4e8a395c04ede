package gamemath

import "testing"

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"identical", Rect{0, 0, 10, 10}, Rect{0, 0, 10, 10}, true},
		{"partial", Rect{0, 0, 10, 10}, Rect{5, 5, 10, 10}, true},
		{"contained", Rect{0, 0, 100, 100}, Rect{10, 10, 5, 5}, true},
		{"touching right edge", Rect{0, 0, 10, 10}, Rect{10, 0, 10, 10}, false},
		{"touching bottom edge", Rect{0, 0, 10, 10}, Rect{0, 10, 10, 10}, false},
		{"touching corner", Rect{0, 0, 10, 10}, Rect{10, 10, 10, 10}, false},
		{"apart", Rect{0, 0, 10, 10}, Rect{50, 50, 10, 10}, false},
		{"player resting on ground", Rect{50, 320, 30, 30}, Rect{0, 350, 3000, 50}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.a, tt.b); got != tt.want {
				t.Errorf("Overlaps(a, b) = %v, want %v", got, tt.want)
			}
			if got := Overlaps(tt.b, tt.a); got != tt.want {
				t.Errorf("Overlaps(b, a) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPenetration(t *testing.T) {
	top, bottom, left, right := Penetration(Rect{50, 325, 30, 30}, Rect{0, 350, 3000, 50})
	if top != 5 || bottom != 75 || left != 80 || right != 2950 {
		t.Errorf("got (%v, %v, %v, %v), want (5, 75, 80, 2950)", top, bottom, left, right)
	}
}

func TestResolve(t *testing.T) {
	ground := Rect{0, 350, 3000, 50}
	ledge := Rect{300, 250, 200, 20}

	tests := []struct {
		name     string
		box      Rect
		vx, vy   float64
		solid    Rect
		wantBox  Rect
		wantSide Side
	}{
		{
			name: "landing on ground", box: Rect{50, 325, 30, 30}, vy: 5, solid: ground,
			wantBox: Rect{50, 320, 30, 30}, wantSide: SideTop,
		},
		{
			name: "landing at rest", box: Rect{50, 320.5, 30, 30}, vy: 0, solid: ground,
			wantBox: Rect{50, 320, 30, 30}, wantSide: SideTop,
		},
		{
			name: "top rejected while rising", box: Rect{350, 225, 30, 30}, vy: -3, solid: ledge,
			wantBox: Rect{350, 225, 30, 30}, wantSide: SideNone,
		},
		{
			name: "head bump", box: Rect{350, 265, 30, 30}, vy: -6, solid: ledge,
			wantBox: Rect{350, 270, 30, 30}, wantSide: SideBottom,
		},
		{
			name: "bottom rejected while falling", box: Rect{350, 265, 30, 30}, vy: 2, solid: ledge,
			wantBox: Rect{350, 265, 30, 30}, wantSide: SideNone,
		},
		{
			name: "pushed out of left face", box: Rect{275, 245, 30, 30}, vx: 5, solid: Rect{300, 200, 200, 100},
			wantBox: Rect{270, 245, 30, 30}, wantSide: SideLeft,
		},
		{
			name: "left rejected when moving away", box: Rect{275, 245, 30, 30}, vx: -5, solid: Rect{300, 200, 200, 100},
			wantBox: Rect{275, 245, 30, 30}, wantSide: SideNone,
		},
		{
			name: "pushed out of right face", box: Rect{495, 245, 30, 30}, vx: -5, solid: Rect{300, 200, 200, 100},
			wantBox: Rect{500, 245, 30, 30}, wantSide: SideRight,
		},
		{
			name: "tie prefers top", box: Rect{290, 240, 20, 20}, vx: 1, vy: 1, solid: Rect{300, 250, 100, 100},
			wantBox: Rect{290, 230, 20, 20}, wantSide: SideTop,
		},
		{
			name: "tie falls through to left when rising", box: Rect{290, 240, 20, 20}, vx: 1, vy: -1, solid: Rect{300, 250, 100, 100},
			wantBox: Rect{280, 240, 20, 20}, wantSide: SideLeft,
		},
		{
			name: "tie falls through to right when rising", box: Rect{390, 240, 20, 20}, vx: -1, vy: -1, solid: Rect{300, 250, 100, 100},
			wantBox: Rect{400, 240, 20, 20}, wantSide: SideRight,
		},
		{
			name: "tie with no matching velocity", box: Rect{290, 240, 20, 20}, vx: -1, vy: -1, solid: Rect{300, 250, 100, 100},
			wantBox: Rect{290, 240, 20, 20}, wantSide: SideNone,
		},
		{
			name: "no overlap", box: Rect{50, 320, 30, 30}, vy: 0, solid: ground,
			wantBox: Rect{50, 320, 30, 30}, wantSide: SideNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotBox, gotSide := Resolve(tt.box, tt.vx, tt.vy, tt.solid)
			if gotSide != tt.wantSide {
				t.Errorf("side = %v, want %v", gotSide, tt.wantSide)
			}
			if gotBox != tt.wantBox {
				t.Errorf("box = %+v, want %+v", gotBox, tt.wantBox)
			}
			if gotSide != SideNone && Overlaps(gotBox, tt.solid) {
				t.Errorf("resolved box %+v still overlaps %+v", gotBox, tt.solid)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{5, 0, 10, 5},
		{-3, 0, 10, 0},
		{2975, 0, 2970, 2970},
		{5, 10, 0, 10},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}
