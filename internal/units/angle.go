package units

import (
	"math"

	"quanta/internal/measure"
)

// Angle is normalized to radians.
type Angle float64

// Radians per unit.
const (
	DegreesToRadians     = math.Pi / 180
	GradiansToRadians    = math.Pi / 200
	ArcminutesToRadians  = DegreesToRadians / 60
	ArcsecondsToRadians  = DegreesToRadians / 3600
	RevolutionsToRadians = 2 * math.Pi
)

func Radians(v float64) Angle     { return Angle(v) }
func Degrees(v float64) Angle     { return Angle(v * DegreesToRadians) }
func Gradians(v float64) Angle    { return Angle(v * GradiansToRadians) }
func Arcminutes(v float64) Angle  { return Angle(v * ArcminutesToRadians) }
func Arcseconds(v float64) Angle  { return Angle(v * ArcsecondsToRadians) }
func Revolutions(v float64) Angle { return Angle(v * RevolutionsToRadians) }

func (a Angle) Radians() float64     { return float64(a) }
func (a Angle) Degrees() float64     { return float64(a) / DegreesToRadians }
func (a Angle) Gradians() float64    { return float64(a) / GradiansToRadians }
func (a Angle) Arcminutes() float64  { return float64(a) / ArcminutesToRadians }
func (a Angle) Arcseconds() float64  { return float64(a) / ArcsecondsToRadians }
func (a Angle) Revolutions() float64 { return float64(a) / RevolutionsToRadians }

func (a Angle) String() string { return measure.Format(a, "rad") }
