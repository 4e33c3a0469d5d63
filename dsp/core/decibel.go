package core

import "math"

// DBToLinear converts dB to linear amplitude (20*log10 convention).
// -Inf dB maps to exact silence.
func DBToLinear(db float64) float64 {
	if math.IsInf(db, -1) {
		return 0
	}

	return math.Pow(10, 0.05*db)
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}

// DBToLinearClamped is DBToLinear with every value at or below dbFloor
// treated as silence.
func DBToLinearClamped(db, dbFloor float64) float64 {
	if math.IsInf(db, -1) || db <= dbFloor {
		return 0
	}

	return DBToLinear(db)
}

// LinearToDBClamped is LinearToDB with every amplitude at or below
// ampFloor reported as -Inf.
func LinearToDBClamped(linear, ampFloor float64) float64 {
	if linear <= ampFloor {
		return math.Inf(-1)
	}

	return LinearToDB(linear)
}

// VolumeToLinearClamped maps a fader position (0 = mute, 1 = unity, values
// above 1 allowed) to linear amplitude using a squared law. Results at or
// below ampFloor become silence.
func VolumeToLinearClamped(volume, ampFloor float64) float64 {
	v := volume * volume
	if v <= ampFloor {
		return 0
	}

	return v
}

// LinearToVolumeClamped is the inverse of VolumeToLinearClamped.
func LinearToVolumeClamped(linear, ampFloor float64) float64 {
	if linear <= ampFloor {
		return 0
	}

	return math.Sqrt(linear)
}
