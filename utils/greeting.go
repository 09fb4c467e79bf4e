package utils

// Greeting picks the localized banner greeting for the hour of day.
func Greeting(hour int) string {
	switch {
	case hour < 12:
		return "Xayrli tong"
	case hour < 18:
		return "Xayrli kun"
	default:
		return "Xayrli kech"
	}
}
