// Package timezone pins every timestamp the API produces or parses to one
// location, configured through APP_TIMEZONE (IANA names only, e.g. "UTC",
// "Europe/Amsterdam"). It is initialized on import.
//
//	now := timezone.Now()
//	start, err := timezone.ParseDate("2024-07-01")   // UTC midnight
//	label := timezone.Format(start, time.DateOnly)
package timezone
