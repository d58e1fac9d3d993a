package radialslider_test

import (
	"math"
	"testing"

	"github.com/roffe/radialslider/pkg/widgets/radialslider"
	"github.com/stretchr/testify/assert"
)

func TestArcWindow(t *testing.T) {
	a := radialslider.NewArc(0.5)
	assert.InDelta(t, -math.Pi/2+0.5, a.Start(), 1e-12)
	assert.InDelta(t, 3*math.Pi/2-0.5, a.End(), 1e-12)
	assert.InDelta(t, 3*math.Pi/2, a.Mid(), 1e-12)
	assert.InDelta(t, 2*math.Pi-1, a.Span(), 1e-12)
}

func TestNewArcClampsOffset(t *testing.T) {
	a := radialslider.NewArc(4)
	assert.Equal(t, radialslider.MaxRadiansOffset, a.Offset)
	assert.Less(t, a.Start(), a.End())
	assert.Equal(t, 0.0, radialslider.NewArc(-1).Offset)
}

func TestArcRoundTrip(t *testing.T) {
	for _, offset := range []float64{0, 0.5, 0.8, 2} {
		a := radialslider.NewArc(offset)
		for v := -50.0; v <= 500; v += 12.5 {
			angle := a.AngleForValue(v, -50, 500)
			assert.InDelta(t, v, a.ValueForAngle(angle, -50, 500), 1e-9, "offset %v value %v", offset, v)
		}
	}
}

func TestArcDegenerateRange(t *testing.T) {
	a := radialslider.NewArc(0.5)
	assert.Equal(t, 5.0, a.ValueForAngle(1, 5, 5))
	assert.Equal(t, a.Start(), a.AngleForValue(5, 5, 5))
}

func TestUnwrap(t *testing.T) {
	a := radialslider.NewArc(0.5)
	tests := []struct {
		name string
		raw  float64
		want float64
	}{
		{name: "inside", raw: 0, want: 0},
		{name: "left side", raw: math.Pi, want: math.Pi},
		{name: "past mid reduced then clamped to start", raw: a.Mid() + 0.01, want: a.Start()},
		{name: "before mid minus a turn raised then clamped to end", raw: a.Mid() - 2*math.Pi - 0.01, want: a.End()},
		{name: "raised into window", raw: -math.Pi + 0.2, want: math.Pi + 0.2},
		{name: "gap near start", raw: -math.Pi/2 + 0.3, want: a.Start()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, a.Unwrap(tt.raw), 1e-12)
		})
	}
}

func TestAccepts(t *testing.T) {
	assert.True(t, radialslider.Accepts(0, 0.1))
	assert.True(t, radialslider.Accepts(1, 1+math.Pi/2-1e-9))
	assert.False(t, radialslider.Accepts(0, math.Pi/2))
	assert.False(t, radialslider.Accepts(2, 2-math.Pi))
}
