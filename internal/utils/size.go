package utils

import (
	"strconv"
	"strings"
)

// BytesPerKilobyte is the unit step of every size shown or configured in kilobytes.
const BytesPerKilobyte int64 = 1024

var sizeUnits = [...]string{"b", "kb", "mb", "gb", "tb", "pb"}

// FormatFileSize renders a byte count with a lower-case unit, keeping one
// decimal below ten units ("1.5kb", "10mb"). Negative counts render as "0b".
func FormatFileSize(byteCount int64) string {
	if byteCount < BytesPerKilobyte {
		return strconv.FormatInt(max(byteCount, 0), 10) + sizeUnits[0]
	}
	scaled := float64(byteCount)
	unitIndex := 0
	for scaled >= float64(BytesPerKilobyte) && unitIndex < len(sizeUnits)-1 {
		scaled /= float64(BytesPerKilobyte)
		unitIndex++
	}
	precision := 0
	if scaled < 10 {
		precision = 1
	}
	formatted := strings.TrimSuffix(strconv.FormatFloat(scaled, 'f', precision, 64), ".0")
	return formatted + sizeUnits[unitIndex]
}
