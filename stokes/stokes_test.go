package stokes

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-bivar/internal/testutil"
	"github.com/cwbudde/algo-bivar/quat"
	"github.com/cwbudde/algo-bivar/symplectic"
)

func TestStokesConstraint(t *testing.T) {
	for _, q := range testutil.RandomQuaternions(5, 200) {
		v := FromQuaternion(q)

		lhs := v.S1*v.S1 + v.S2*v.S2 + v.S3*v.S3
		rhs := v.S0 * v.S0

		if lhs > rhs+1e-9 {
			t.Fatalf("constraint violated: S1^2+S2^2+S3^2 = %v > S0^2 = %v", lhs, rhs)
		}

		// A single sample is always fully polarized: equality holds.
		if math.Abs(lhs-rhs) > 1e-9*math.Max(rhs, 1) {
			t.Fatalf("single sample not fully polarized: %v vs %v", lhs, rhs)
		}
	}
}

func TestPureStates(t *testing.T) {
	const (
		n    = 256
		freq = 8.0
		amp  = 0.5
	)

	cos := testutil.DeterministicCosine(freq, n, amp, n)
	sin := testutil.DeterministicSine(freq, n, amp, n)
	zero := make([]float64, n)

	cases := []struct {
		name string
		u, v []float64
		// expected normalized parameters
		s1, s2, s3 float64
	}{
		{"linear horizontal", cos, zero, 1, 0, 0},
		{"linear 45 degrees", cos, cos, 0, 1, 0},
		{"circular left", cos, sin, 0, 0, 1},
		{"circular right", sin, cos, 0, 0, -1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := symplectic.Split(tc.u, tc.v)
			require.NoError(t, err)

			// interior sample, away from any quadrature edge ripple
			v := FromQuaternion(q[n/2])

			nv, err := Normalize(v, 0)
			require.NoError(t, err)

			assert.InDelta(t, tc.s1, nv.S1, 1e-6)
			assert.InDelta(t, tc.s2, nv.S2, 1e-6)
			assert.InDelta(t, tc.s3, nv.S3, 1e-6)
		})
	}
}

func TestFromSignalMatchesPerSample(t *testing.T) {
	q := testutil.RandomQuaternions(21, 64)

	batch := FromSignal(q)
	require.Len(t, batch, len(q))

	for i := range q {
		single := FromQuaternion(q[i])
		assert.InDelta(t, single.S0, batch[i].S0, 1e-12)
		assert.InDelta(t, single.S1, batch[i].S1, 1e-12)
		assert.InDelta(t, single.S2, batch[i].S2, 1e-12)
		assert.InDelta(t, single.S3, batch[i].S3, 1e-12)
	}
}

func TestNormalizeZeroIntensity(t *testing.T) {
	_, err := Normalize(Vector{}, 0)
	assert.ErrorIs(t, err, ErrZeroIntensity)

	_, err = DegreeOfPolarization(Vector{})
	assert.ErrorIs(t, err, ErrZeroIntensity)

	_, err = ToGeo(Vector{})
	assert.ErrorIs(t, err, ErrZeroIntensity)

	// With a non-zero regularizer the degenerate sample passes through.
	v, err := Normalize(Vector{}, 1e-3)
	require.NoError(t, err)
	assert.Equal(t, Vector{S0: 1}, v)
}

func TestNormalizeSignalReportsIndex(t *testing.T) {
	q := quat.Quaternion{W: 1}
	sig := []Vector{FromQuaternion(q), {}, FromQuaternion(q)}

	_, err := NormalizeSignal(sig, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrZeroIntensity)
	assert.Contains(t, err.Error(), "sample 1")
}

func TestGeoBijection(t *testing.T) {
	for az := -1.5; az <= 1.5; az += 0.25 {
		for el := -0.75; el <= 0.75; el += 0.125 {
			g := Geo{Azimuth: az, Ellipticity: el}

			v := FromGeo(g, 1)
			got, err := ToGeo(v)
			require.NoError(t, err)

			assert.InDelta(t, az, got.Azimuth, 1e-12, "azimuth at (%v, %v)", az, el)
			assert.InDelta(t, el, got.Ellipticity, 1e-12, "ellipticity at (%v, %v)", az, el)
		}
	}
}

func TestStokesGeoRoundTrip(t *testing.T) {
	for _, q := range testutil.RandomQuaternions(33, 50) {
		if q.NormSq() < 1e-6 {
			continue
		}

		nv, err := Normalize(FromQuaternion(q), 0)
		require.NoError(t, err)

		g, err := ToGeo(nv)
		require.NoError(t, err)

		back := FromGeo(g, 1)
		assert.InDelta(t, nv.S1, back.S1, 1e-9)
		assert.InDelta(t, nv.S2, back.S2, 1e-9)
		assert.InDelta(t, nv.S3, back.S3, 1e-9)
	}
}

func TestDegreeOfPolarization(t *testing.T) {
	full := FromQuaternion(quat.Quaternion{W: 1, X: 0.3, Y: -0.2, Z: 0.9})

	phi, err := DegreeOfPolarization(full)
	require.NoError(t, err)
	assert.InDelta(t, 1, phi, 1e-12)

	phi, err = DegreeOfPolarization(Vector{S0: 2})
	require.NoError(t, err)
	assert.Equal(t, 0.0, phi)
}
