package geometry

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Transform represents a rigid local-to-world mapping: a 3x3 rotation
// followed by a translation.
//
//	world = Rot * local + Trans
type Transform struct {
	Rot   [3][3]float64
	Trans r3.Vec
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{Rot: [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}}
}

// Translation returns a pure translation transform.
func Translation(v r3.Vec) Transform {
	t := Identity()
	t.Trans = v
	return t
}

// RotationX returns a rotation about the X axis by the given angle in
// radians, following the right-hand rule.
func RotationX(radians float64) Transform {
	c, s := math.Cos(radians), math.Sin(radians)
	return Transform{Rot: [3][3]float64{
		{1, 0, 0},
		{0, c, -s},
		{0, s, c},
	}}
}

// RotationY returns a rotation about the Y axis by the given angle in radians.
func RotationY(radians float64) Transform {
	c, s := math.Cos(radians), math.Sin(radians)
	return Transform{Rot: [3][3]float64{
		{c, 0, s},
		{0, 1, 0},
		{-s, 0, c},
	}}
}

// RotationZ returns a rotation about the Z axis by the given angle in radians.
func RotationZ(radians float64) Transform {
	c, s := math.Cos(radians), math.Sin(radians)
	return Transform{Rot: [3][3]float64{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}}
}

// Apply maps a local point into the parent frame.
func (t Transform) Apply(p r3.Vec) r3.Vec {
	v := t.ApplyVector(p)
	return r3.Vec{X: v.X + t.Trans.X, Y: v.Y + t.Trans.Y, Z: v.Z + t.Trans.Z}
}

// ApplyVector maps a local direction into the parent frame, ignoring the
// translation part.
func (t Transform) ApplyVector(v r3.Vec) r3.Vec {
	return r3.Vec{
		X: t.Rot[0][0]*v.X + t.Rot[0][1]*v.Y + t.Rot[0][2]*v.Z,
		Y: t.Rot[1][0]*v.X + t.Rot[1][1]*v.Y + t.Rot[1][2]*v.Z,
		Z: t.Rot[2][0]*v.X + t.Rot[2][1]*v.Y + t.Rot[2][2]*v.Z,
	}
}

// Compose returns the transform equivalent to applying other first and then
// this transform. Composing a parent transform with a child's local
// transform yields the child's cumulative local-to-world transform.
func (t Transform) Compose(other Transform) Transform {
	var out Transform
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out.Rot[i][j] = t.Rot[i][0]*other.Rot[0][j] +
				t.Rot[i][1]*other.Rot[1][j] +
				t.Rot[i][2]*other.Rot[2][j]
		}
	}
	out.Trans = t.Apply(other.Trans)
	return out
}

// Inverse returns the world-to-local transform, if the rotation part is
// invertible.
func (t Transform) Inverse() (Transform, bool) {
	m := mat.NewDense(3, 3, []float64{
		t.Rot[0][0], t.Rot[0][1], t.Rot[0][2],
		t.Rot[1][0], t.Rot[1][1], t.Rot[1][2],
		t.Rot[2][0], t.Rot[2][1], t.Rot[2][2],
	})

	var inv mat.Dense
	if err := inv.Inverse(m); err != nil {
		return Transform{}, false
	}

	var out Transform
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out.Rot[i][j] = inv.At(i, j)
		}
	}
	neg := out.ApplyVector(t.Trans)
	out.Trans = r3.Vec{X: -neg.X, Y: -neg.Y, Z: -neg.Z}
	return out, true
}
