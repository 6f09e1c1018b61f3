package quat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-12

func TestMulBasis(t *testing.T) {
	i := Quaternion{X: 1}
	j := Quaternion{Y: 1}
	k := Quaternion{Z: 1}

	cases := []struct {
		name string
		a, b Quaternion
		want Quaternion
	}{
		{"i*j=k", i, j, k},
		{"j*k=i", j, k, i},
		{"k*i=j", k, i, j},
		{"j*i=-k", j, i, Scale(-1, k)},
		{"i*i=-1", i, i, Quaternion{W: -1}},
		{"j*j=-1", j, j, Quaternion{W: -1}},
		{"k*k=-1", k, k, Quaternion{W: -1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Mul(tc.a, tc.b)
			if !nearly(got, tc.want, eps) {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestMulNormMultiplicative(t *testing.T) {
	a := Quaternion{0.5, -1.25, 2, 0.75}
	b := Quaternion{-2, 0.5, 1, -3}

	got := Mul(a, b).Norm()
	want := a.Norm() * b.Norm()

	if math.Abs(got-want) > 1e-12*want {
		t.Fatalf("|ab| = %v, want %v", got, want)
	}
}

func TestConjReversesProduct(t *testing.T) {
	a := Quaternion{1, 2, -3, 0.5}
	b := Quaternion{-0.25, 1, 4, -2}

	lhs := Mul(a, b).Conj()
	rhs := Mul(b.Conj(), a.Conj())

	if !nearly(lhs, rhs, 1e-12) {
		t.Fatalf("conj(ab) = %+v, want %+v", lhs, rhs)
	}
}

func TestInv(t *testing.T) {
	q := Quaternion{0.3, -1.5, 2.25, 0.8}

	inv, err := q.Inv()
	require.NoError(t, err)

	got := Mul(q, inv)
	if !nearly(got, Identity(), 1e-12) {
		t.Fatalf("q*q^-1 = %+v, want identity", got)
	}
}

func TestZeroNormOperations(t *testing.T) {
	var zero Quaternion

	_, err := zero.Inv()
	assert.ErrorIs(t, err, ErrZeroNorm)

	_, err = zero.Normalize()
	assert.ErrorIs(t, err, ErrZeroNorm)

	_, err = Log(zero)
	assert.ErrorIs(t, err, ErrZeroNorm)
}

func TestPolarRoundTrip(t *testing.T) {
	q := Quaternion{1.5, -0.5, 2, 1}

	mod, axis, angle := q.Polar([3]float64{1, 0, 0})

	rebuilt := Scale(mod, Exp(Quaternion{
		X: axis[0] * angle,
		Y: axis[1] * angle,
		Z: axis[2] * angle,
	}))

	if !nearly(rebuilt, q, 1e-12) {
		t.Fatalf("polar round trip: got %+v, want %+v", rebuilt, q)
	}
}

func TestPolarDegenerateUsesPreviousAxis(t *testing.T) {
	prev := [3]float64{0, 0, 1}

	mod, axis, angle := (Quaternion{W: 2}).Polar(prev)
	assert.Equal(t, 2.0, mod)
	assert.Equal(t, prev, axis)
	assert.Equal(t, 0.0, angle)

	_, axis, angle = (Quaternion{W: -2}).Polar(prev)
	assert.Equal(t, prev, axis)
	assert.Equal(t, math.Pi, angle)
}

func TestExpLogRoundTrip(t *testing.T) {
	cases := []Quaternion{
		{1, 0.5, -0.25, 0.75},
		{2, 0, 0, 0},
		{0.5, 0, 1.25, 0},
		{-1, 0.1, 0.2, 0.3},
	}

	for _, q := range cases {
		l, err := Log(q)
		require.NoError(t, err)

		got := Exp(l)
		if !nearly(got, q, 1e-9) {
			t.Fatalf("exp(log(q)): got %+v, want %+v", got, q)
		}
	}
}

func TestLogNegativeRealBranch(t *testing.T) {
	l, err := Log(Quaternion{W: -1})
	require.NoError(t, err)

	want := Quaternion{X: math.Pi}
	if !nearly(l, want, eps) {
		t.Fatalf("log(-1) = %+v, want %+v", l, want)
	}
}

func TestEqualUpToSign(t *testing.T) {
	q := Quaternion{0.5, 0.5, -0.5, 0.5}

	assert.True(t, EqualUpToSign(q, q, eps))
	assert.True(t, EqualUpToSign(q, Scale(-1, q), eps))
	assert.False(t, EqualUpToSign(q, Quaternion{0.5, 0.5, 0.5, 0.5}, eps))
}
