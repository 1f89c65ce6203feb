package entity

import "strings"

// NormalizePlate quita espacios y guiones y pasa a mayúsculas ("abc-1d23" -> "ABC1D23").
func NormalizePlate(value string) string {
	value = strings.ReplaceAll(value, " ", "")
	value = strings.ReplaceAll(value, "-", "")
	return strings.ToUpper(value)
}
