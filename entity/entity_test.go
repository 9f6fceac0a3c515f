package entity

import (
	"image"
	"testing"

	"github.com/lixenwraith/tof-flappy/asset"
	"github.com/lixenwraith/tof-flappy/constant"
	"github.com/lixenwraith/tof-flappy/physics"
)

func newTestBird(y float64) (*Bird, *asset.Set) {
	set := asset.Builtin(asset.DefaultLayout())
	params := physics.DefaultParams()
	return NewBird(constant.ScreenWidth/6, y, set.Bird, &params), set
}

func TestBirdFlapOverridesVelocity(t *testing.T) {
	b, _ := newTestBird(300)
	b.VelY = 50

	b.Flap()
	if b.VelY != -constant.FlapSpeed {
		t.Errorf("Expected velocity %v after flap, got %v", -constant.FlapSpeed, b.VelY)
	}

	b.Advance()
	if b.VelY != -12 || b.Y != 288 {
		t.Errorf("Expected v=-12 y=288 after one tick, got v=%v y=%v", b.VelY, b.Y)
	}
}

func TestBirdGravityAccumulates(t *testing.T) {
	b, _ := newTestBird(300)
	for i := 0; i < 3; i++ {
		b.Advance()
	}
	if b.VelY != 9 || b.Y != 318 {
		t.Errorf("Expected v=9 y=318 after three ticks, got v=%v y=%v", b.VelY, b.Y)
	}
}

func TestBirdAnimationCycles(t *testing.T) {
	b, set := newTestBird(300)
	want := []int{1, 2, 0, 1}
	for i, w := range want {
		b.Animate()
		if b.Frame() != w {
			t.Fatalf("step %d: Expected frame %d, got %d", i, w, b.Frame())
		}
		if b.Sprite() != set.Bird[w] || b.Mask() != set.Bird[w].Mask {
			t.Errorf("step %d: Expected sprite and mask of frame %d", i, w)
		}
	}
	if b.Y != 300 {
		t.Errorf("Expected Animate not to move the bird, got y=%v", b.Y)
	}
}

func TestBirdBoundsFloorY(t *testing.T) {
	b, _ := newTestBird(100.7)
	want := image.Rect(b.X, 100, b.X+constant.BirdWidth, 100+constant.BirdHeight)
	if got := b.Bounds(); got != want {
		t.Errorf("Expected bounds %v, got %v", want, got)
	}

	b.Y = -0.5
	if got := b.Position().Y; got != -1 {
		t.Errorf("Expected floor toward negative infinity, got %d", got)
	}
}

func TestPipePlacement(t *testing.T) {
	set := asset.Builtin(asset.DefaultLayout())
	params := physics.DefaultParams()
	const h = constant.ScreenHeight

	bottom := NewPipe(false, 800, 150, h, set.Pipe, &params)
	if bottom.Y != h-150 {
		t.Errorf("Expected bottom pipe top at %d, got %d", h-150, bottom.Y)
	}
	if bottom.Bounds().Max.Y <= h {
		t.Error("Expected bottom pipe to extend past the screen bottom")
	}

	top := NewPipe(true, 800, 250, h, set.PipeInverted, &params)
	if top.Bounds().Max.Y != 250 {
		t.Errorf("Expected inverted pipe bottom edge at 250, got %d", top.Bounds().Max.Y)
	}
	if top.Kind() != KindPipe || !top.Inverted {
		t.Error("Expected inverted pipe kind")
	}
}

func TestScrollingAndOffScreen(t *testing.T) {
	set := asset.Builtin(asset.DefaultLayout())
	params := physics.DefaultParams()

	p := NewPipe(false, 0, 200, constant.ScreenHeight, set.Pipe, &params)
	y := p.Y
	for i := 0; i < 5; i++ {
		p.Advance()
	}
	if p.X != -75 || p.Y != y {
		t.Errorf("Expected x=-75 y=%d, got x=%d y=%d", y, p.X, p.Y)
	}
	if OffScreen(p) {
		t.Error("Expected pipe still partly visible")
	}
	p.Advance()
	if !OffScreen(p) {
		t.Errorf("Expected pipe off screen at x=%d", p.X)
	}

	g := NewGround(10, 500, set.Ground, &params)
	g.Advance()
	if g.Position() != image.Pt(-5, 500) || g.Kind() != KindGround {
		t.Errorf("Unexpected ground state %v %s", g.Position(), g.Kind())
	}
}

func TestKindString(t *testing.T) {
	if KindBird.String() != "Bird" || KindGround.String() != "Ground" || Kind(9).String() != "Unknown" {
		t.Error("Unexpected kind names")
	}
}
