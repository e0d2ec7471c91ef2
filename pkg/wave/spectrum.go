package wave

import (
	"math"

	"github.com/wavecrest/go-ocean-render/pkg/core"
)

// Gravity is the standard gravitational acceleration used by the deep-water
// dispersion relation.
const Gravity = 9.81

// Component is a single trochoidal wave: a direction of travel, an amplitude,
// a wavenumber k and the angular speed derived from deep-water dispersion.
// Immutable once constructed.
type Component struct {
	Direction    core.Vec2 // Unit vector, direction of travel
	Amplitude    float64
	Wavenumber   float64 // k = 2π / wavelength
	AngularSpeed float64 // w = sqrt(g·k) · timeScale
	Steepness    float64 // Crest sharpness, feeds dynamic roughness
}

// NewComponent creates a wave component. The angular speed follows the
// deep-water dispersion relation w = sqrt(g·k), slowed uniformly by timeScale.
func NewComponent(direction core.Vec2, amplitude, wavenumber, steepness, timeScale float64) Component {
	return Component{
		Direction:    direction.Normalize(),
		Amplitude:    amplitude,
		Wavenumber:   wavenumber,
		AngularSpeed: math.Sqrt(Gravity*wavenumber) * timeScale,
		Steepness:    steepness,
	}
}

// Spectrum is an ordered set of wave components. Order affects only iteration;
// the superposed height is a commutative sum. Built once at scene setup and
// read-only afterwards.
type Spectrum []Component

// NewSpectrum builds a spectrum of count components fanned across headings,
// with amplitude falling and wavenumber rising per octave. The 45° heading
// step and the 0.82/1.18 octave ratios keep components from aligning into
// visible interference bands.
func NewSpectrum(count int, baseAmplitude, baseWavenumber, timeScale float64) Spectrum {
	spectrum := make(Spectrum, 0, count)

	amplitude := baseAmplitude
	wavenumber := baseWavenumber
	for i := 0; i < count; i++ {
		angle := float64(i)*45.0*math.Pi/180.0 + 0.4*float64(i%3)
		direction := core.NewVec2(math.Cos(angle), math.Sin(angle))
		steepness := 0.2 + 0.1*float64(i%4)

		spectrum = append(spectrum, NewComponent(direction, amplitude, wavenumber, steepness, timeScale))

		amplitude *= 0.82
		wavenumber *= 1.18
	}

	return spectrum
}

// AmplitudeSum returns the sum of component amplitudes, an upper bound for
// |height| at any position and time.
func (s Spectrum) AmplitudeSum() float64 {
	var sum float64
	for _, c := range s {
		sum += c.Amplitude
	}
	return sum
}

// MeanSteepness returns the average component steepness, used to scale the
// slope-driven roughness of the shading model.
func (s Spectrum) MeanSteepness() float64 {
	if len(s) == 0 {
		return 0
	}
	var sum float64
	for _, c := range s {
		sum += c.Steepness
	}
	return sum / float64(len(s))
}
