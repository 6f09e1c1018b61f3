package signal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-bivar/internal/testutil"
)

func TestBivariateWhiteNoiseDeterministic(t *testing.T) {
	g1 := NewGenerator(WithSeed(42))
	g2 := NewGenerator(WithSeed(42))

	u1, v1, err := g1.BivariateWhiteNoise(1.0, 1000)
	require.NoError(t, err)

	u2, v2, err := g2.BivariateWhiteNoise(1.0, 1000)
	require.NoError(t, err)

	testutil.RequireSliceNearlyEqual(t, u1, u2, 0)
	testutil.RequireSliceNearlyEqual(t, v1, v2, 0)

	u3, _, err := NewGenerator(WithSeed(43)).BivariateWhiteNoise(1.0, 1000)
	require.NoError(t, err)

	diff, err := testutil.MaxAbsDiff(u1, u3)
	require.NoError(t, err)
	assert.Greater(t, diff, 0.0, "different seeds must differ")
}

func TestBivariateWhiteNoisePower(t *testing.T) {
	const power = 2.5

	u, v, err := NewGenerator(WithSeed(7)).BivariateWhiteNoise(power, 1<<16)
	require.NoError(t, err)

	for _, ch := range [][]float64{u, v} {
		sum := 0.0
		for _, s := range ch {
			sum += s * s
		}

		got := sum / float64(len(ch))
		assert.InEpsilon(t, power, got, 0.05)
	}
}

func TestBivariateWhiteNoiseValidation(t *testing.T) {
	g := NewGenerator()

	_, _, err := g.BivariateWhiteNoise(1, 0)
	assert.Error(t, err)

	_, _, err = g.BivariateWhiteNoise(-1, 16)
	assert.Error(t, err)
}

func TestPolarizedToneCircular(t *testing.T) {
	const (
		n   = 256
		amp = 2.0
	)

	// chi = pi/4 is circular: constant channel envelope amp/sqrt(2).
	u, v, err := NewGenerator().PolarizedTone(8.0/n, amp, 0, math.Pi/4, 0, n)
	require.NoError(t, err)

	want := amp / math.Sqrt2
	for i := range u {
		env := math.Hypot(u[i], v[i])
		if math.Abs(env-want) > 1e-9 {
			t.Fatalf("sample %d: envelope %v, want %v", i, env, want)
		}
	}
}

func TestPolarizedToneLinear(t *testing.T) {
	const n = 128

	// chi = 0, azimuth = 0: all energy in channel u.
	u, v, err := NewGenerator().PolarizedTone(4.0/n, 1, 0, 0, 0, n)
	require.NoError(t, err)

	assert.InDelta(t, 1, u[0], 1e-12)
	for i := range v {
		assert.InDelta(t, 0, v[i], 1e-12)
	}
}

func TestModulatedEllipseMatchesTone(t *testing.T) {
	const (
		n    = 128
		freq = 4.0 / n
		amp  = 0.8
		az   = 0.6
		chi  = 0.3
	)

	wantU, wantV, err := NewGenerator().PolarizedTone(freq, amp, az, chi, 0.25, n)
	require.NoError(t, err)

	a := make([]float64, n)
	theta := make([]float64, n)
	cx := make([]float64, n)
	phi := make([]float64, n)

	for i := range a {
		a[i] = amp
		theta[i] = az
		cx[i] = chi
		phi[i] = 2*math.Pi*freq*float64(i) + 0.25
	}

	u, v, err := ModulatedEllipse(a, theta, cx, phi)
	require.NoError(t, err)

	testutil.RequireSliceNearlyEqual(t, u, wantU, 1e-12)
	testutil.RequireSliceNearlyEqual(t, v, wantV, 1e-12)
}

func TestModulatedEllipseValidation(t *testing.T) {
	_, _, err := ModulatedEllipse(nil, nil, nil, nil)
	assert.Error(t, err)

	_, _, err = ModulatedEllipse(make([]float64, 4), make([]float64, 3), make([]float64, 4), make([]float64, 4))
	assert.Error(t, err)
}
