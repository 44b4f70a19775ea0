package units

import "quanta/internal/measure"

// Duration is elapsed time normalized to seconds.
type Duration float64

// Seconds per unit.
const (
	MillisecondsToSeconds = 0.001
	MinutesToSeconds      = 60.0
	HoursToSeconds        = 3600.0
	DaysToSeconds         = 86400.0
	WeeksToSeconds        = 604800.0
)

func Milliseconds(v float64) Duration { return Duration(v * MillisecondsToSeconds) }
func Seconds(v float64) Duration      { return Duration(v) }
func Minutes(v float64) Duration      { return Duration(v * MinutesToSeconds) }
func Hours(v float64) Duration        { return Duration(v * HoursToSeconds) }
func Days(v float64) Duration         { return Duration(v * DaysToSeconds) }
func Weeks(v float64) Duration        { return Duration(v * WeeksToSeconds) }

func (d Duration) Milliseconds() float64 { return float64(d) / MillisecondsToSeconds }
func (d Duration) Seconds() float64      { return float64(d) }
func (d Duration) Minutes() float64      { return float64(d) / MinutesToSeconds }
func (d Duration) Hours() float64        { return float64(d) / HoursToSeconds }
func (d Duration) Days() float64         { return float64(d) / DaysToSeconds }
func (d Duration) Weeks() float64        { return float64(d) / WeeksToSeconds }

func (d Duration) String() string { return measure.Format(d, "s") }
