// Package constants provides shared constants for the choghadiya application
package constants

// AppName is the display name used in page titles and log lines
const AppName = "Choghadiya"

// MinutesPerDay is the number of minutes in a civil day
const MinutesPerDay = 24 * 60
