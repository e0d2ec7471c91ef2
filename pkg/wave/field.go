package wave

import (
	"math"

	"github.com/wavecrest/go-ocean-render/pkg/core"
)

// Field superposes the components of a spectrum into a height and gradient
// function of (position, time). It holds no mutable state: every query is a
// pure function of its inputs and the immutable spectrum.
type Field struct {
	spectrum Spectrum
}

// NewField creates a wave field over the given spectrum
func NewField(spectrum Spectrum) *Field {
	return &Field{spectrum: spectrum}
}

// Height returns the superposed surface height at horizontal position p and
// time t. Bounded by ±AmplitudeSum for all inputs.
func (f *Field) Height(p core.Vec2, t float64) float64 {
	var height float64
	for _, c := range f.spectrum {
		phase := p.Dot(c.Direction)*c.Wavenumber + t*c.AngularSpeed
		height += c.Amplitude * math.Sin(phase)
	}
	return height
}

// Gradient returns the analytic horizontal derivative of Height at (p, t).
// Exact, and cheaper than the four extra height evaluations a central
// difference would need.
func (f *Field) Gradient(p core.Vec2, t float64) core.Vec2 {
	var grad core.Vec2
	for _, c := range f.spectrum {
		phase := p.Dot(c.Direction)*c.Wavenumber + t*c.AngularSpeed
		grad = grad.Add(c.Direction.Multiply(c.Amplitude * c.Wavenumber * math.Cos(phase)))
	}
	return grad
}

// Spectrum returns the immutable spectrum backing this field
func (f *Field) Spectrum() Spectrum {
	return f.spectrum
}

// AmplitudeSum returns the superposition bound of the backing spectrum
func (f *Field) AmplitudeSum() float64 {
	return f.spectrum.AmplitudeSum()
}
