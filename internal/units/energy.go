package units

import "quanta/internal/measure"

// Energy is normalized to joules.
type Energy float64

// Joules per unit.
const (
	KilojoulesToJoules    = 1000.0
	WattHoursToJoules     = 3600.0
	KilowattHoursToJoules = 3.6e6
	CaloriesToJoules      = 4.184
	KilocaloriesToJoules  = 4184.0
	BTUsToJoules          = 1055.05585262
	ElectronvoltsToJoules = 1.602176634e-19
)

func Joules(v float64) Energy        { return Energy(v) }
func Kilojoules(v float64) Energy    { return Energy(v * KilojoulesToJoules) }
func WattHours(v float64) Energy     { return Energy(v * WattHoursToJoules) }
func KilowattHours(v float64) Energy { return Energy(v * KilowattHoursToJoules) }
func Calories(v float64) Energy      { return Energy(v * CaloriesToJoules) }
func Kilocalories(v float64) Energy  { return Energy(v * KilocaloriesToJoules) }
func BTUs(v float64) Energy          { return Energy(v * BTUsToJoules) }
func Electronvolts(v float64) Energy { return Energy(v * ElectronvoltsToJoules) }

func (e Energy) Joules() float64        { return float64(e) }
func (e Energy) Kilojoules() float64    { return float64(e) / KilojoulesToJoules }
func (e Energy) WattHours() float64     { return float64(e) / WattHoursToJoules }
func (e Energy) KilowattHours() float64 { return float64(e) / KilowattHoursToJoules }
func (e Energy) Calories() float64      { return float64(e) / CaloriesToJoules }
func (e Energy) Kilocalories() float64  { return float64(e) / KilocaloriesToJoules }
func (e Energy) BTUs() float64          { return float64(e) / BTUsToJoules }
func (e Energy) Electronvolts() float64 { return float64(e) / ElectronvoltsToJoules }

func (e Energy) String() string { return measure.Format(e, "J") }
