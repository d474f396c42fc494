// Package massprops derives rigid-body mass properties from a geom's triangle
// mesh and density: the engine does the same derivation when it loads the
// fragment, so computing them here lets tooling report what the simulation
// will actually use, and cross-check the authored anchor sites against the
// mesh extents.
package massprops

import (
	"fmt"
	"math"

	"mjscene/internal/objfile"
)

// Props are the mass properties of a closed triangle mesh with uniform
// density. Moments and Products are the inertia integrals about the center of
// mass: Moments = (Ixx, Iyy, Izz), Products = (∫xy, ∫xz, ∫yz) · density.
type Props struct {
	Volume       float64
	Mass         float64
	CenterOfMass [3]float64
	Moments      [3]float64
	Products     [3]float64
}

// minVolume guards against degenerate (flat or empty) meshes.
const minVolume = 1e-12

// Compute integrates over the mesh surface via signed tetrahedra against the
// origin (divergence theorem). The mesh must be closed with consistent
// winding; an inward-wound mesh yields a negative signed volume and is
// flipped.
func Compute(m *objfile.Mesh, density float64) (Props, error) {
	if density <= 0 {
		return Props{}, fmt.Errorf("density must be positive, got %g", density)
	}
	var v6Sum float64
	var com [3]float64
	var x2, y2, z2 float64 // Σ v6·(a²+b²+c²+ab+ac+bc) per axis
	var xy, xz, yz float64
	for _, tri := range m.Tris {
		a, b, c := m.Vertices[tri[0]], m.Vertices[tri[1]], m.Vertices[tri[2]]
		v6 := a[0]*(b[1]*c[2]-b[2]*c[1]) + a[1]*(b[2]*c[0]-b[0]*c[2]) + a[2]*(b[0]*c[1]-b[1]*c[0])
		v6Sum += v6
		for i := 0; i < 3; i++ {
			com[i] += v6 * (a[i] + b[i] + c[i])
		}
		x2 += v6 * squareTerm(a[0], b[0], c[0])
		y2 += v6 * squareTerm(a[1], b[1], c[1])
		z2 += v6 * squareTerm(a[2], b[2], c[2])
		xy += v6 * productTerm(a, b, c, 0, 1)
		xz += v6 * productTerm(a, b, c, 0, 2)
		yz += v6 * productTerm(a, b, c, 1, 2)
	}

	volume := v6Sum / 6
	sign := 1.0
	if volume < 0 {
		volume, sign = -volume, -1
	}
	if volume < minVolume {
		return Props{}, fmt.Errorf("degenerate mesh: volume %g", volume)
	}
	for i := 0; i < 3; i++ {
		com[i] /= 4 * v6Sum
	}

	// Second moments about the origin, then shifted to the center of mass.
	intX2 := sign * x2 / 60
	intY2 := sign * y2 / 60
	intZ2 := sign * z2 / 60
	intXY := sign * xy / 120
	intXZ := sign * xz / 120
	intYZ := sign * yz / 120

	mass := density * volume
	p := Props{
		Volume:       volume,
		Mass:         mass,
		CenterOfMass: com,
	}
	p.Moments[0] = density*(intY2+intZ2) - mass*(com[1]*com[1]+com[2]*com[2])
	p.Moments[1] = density*(intX2+intZ2) - mass*(com[0]*com[0]+com[2]*com[2])
	p.Moments[2] = density*(intX2+intY2) - mass*(com[0]*com[0]+com[1]*com[1])
	p.Products[0] = density*intXY - mass*com[0]*com[1]
	p.Products[1] = density*intXZ - mass*com[0]*com[2]
	p.Products[2] = density*intYZ - mass*com[1]*com[2]
	return p, nil
}

// squareTerm is the per-axis factor of ∫q² dV over a tetrahedron with one
// vertex at the origin: q1²+q2²+q3²+q1q2+q1q3+q2q3.
func squareTerm(q1, q2, q3 float64) float64 {
	return q1*q1 + q2*q2 + q3*q3 + q1*q2 + q1*q3 + q2*q3
}

// productTerm is the factor of ∫ q_i·q_j dV over the same tetrahedron.
func productTerm(a, b, c [3]float64, i, j int) float64 {
	return 2*(a[i]*a[j]+b[i]*b[j]+c[i]*c[j]) +
		a[i]*b[j] + a[j]*b[i] +
		a[i]*c[j] + a[j]*c[i] +
		b[i]*c[j] + b[j]*c[i]
}

// CheckAnchors compares the fragment's anchor sites against the mesh bounds:
// bottom/top along Z, horizontal radius in the XY plane. It returns a warning
// per anchor that is further than tol from what the mesh implies; an empty
// slice means the anchors are consistent.
func CheckAnchors(m *objfile.Mesh, bottom, top, radius [3]float64, tol float64) []string {
	min, max := m.Bounds()
	var warnings []string
	if d := math.Abs(bottom[2] - min[2]); d > tol {
		warnings = append(warnings, fmt.Sprintf("bottom anchor z=%g is %g away from mesh bottom z=%g", bottom[2], d, min[2]))
	}
	if d := math.Abs(top[2] - max[2]); d > tol {
		warnings = append(warnings, fmt.Sprintf("top anchor z=%g is %g away from mesh top z=%g", top[2], d, max[2]))
	}
	meshRadius := 0.0
	for _, v := range m.Vertices {
		if r := math.Hypot(v[0], v[1]); r > meshRadius {
			meshRadius = r
		}
	}
	if siteRadius := math.Hypot(radius[0], radius[1]); math.Abs(siteRadius-meshRadius) > tol {
		warnings = append(warnings, fmt.Sprintf("horizontal radius anchor %g is %g away from mesh radius %g",
			siteRadius, math.Abs(siteRadius-meshRadius), meshRadius))
	}
	return warnings
}
