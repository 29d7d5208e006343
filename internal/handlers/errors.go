package handlers

// Error Codes
const (
	ErrCodeInvalidDate    = "invalid_date"
	ErrCodeInvalidMonth   = "invalid_month"
	ErrCodeInvalidDay     = "invalid_day"
	ErrCodeInvalidFilter  = "invalid_filter"
	ErrCodeInvalidWeekday = "invalid_day_of_week"
	ErrCodeInvalidTab     = "invalid_tab"
	ErrCodeNotReady       = "not_ready"
	ErrCodeOutOfCoverage  = "out_of_coverage"
	ErrCodeRateLimited    = "rate_limited"
	ErrCodeUnknown        = "unknown_error"
)

// ErrorMessages maps error codes to user-friendly messages
var ErrorMessages = map[string]string{
	ErrCodeInvalidDate:    "Date must be formatted as YYYY-MM-DD.",
	ErrCodeInvalidMonth:   "Month must be a number between 1 and 12.",
	ErrCodeInvalidDay:     "Day is not a valid day of the selected month.",
	ErrCodeInvalidFilter:  "Unknown tithi filter.",
	ErrCodeInvalidWeekday: "Invalid day of week.",
	ErrCodeInvalidTab:     "Tab must be either day or night.",
	ErrCodeNotReady:       "The current period has not been computed yet.",
	ErrCodeOutOfCoverage:  "The tithi calendar only covers 2026.",
	ErrCodeRateLimited:    "Too many requests. Please slow down.",
	ErrCodeUnknown:        "An unknown error occurred.",
}

// GetErrorMessage returns the message for a given error code
func GetErrorMessage(code string) string {
	if msg, ok := ErrorMessages[code]; ok {
		return msg
	}
	return ErrorMessages[ErrCodeUnknown]
}
