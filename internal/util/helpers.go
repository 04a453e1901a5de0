package util

// BoolToInt converts a boolean to 0 or 1.
func BoolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// IntToBool converts 0/1 to boolean.
func IntToBool(i int) bool {
	return i != 0
}

// Clamp constrains a value to a range.
func Clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Percent returns part/whole as a whole percentage capped at 100.
func Percent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return Clamp(int(float64(part)/float64(whole)*100+0.5), 0, 100)
}
