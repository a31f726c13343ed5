// Package timezone provides timezone and calendar day utilities for the application.
//
// Usage Examples:
//
//  1. Current time and calendar day:
//     now := timezone.Now()
//     today := timezone.Today(timezone.SystemClock{})
//
//  2. Calendar arithmetic used by contract terms:
//     earliestStart := timezone.AddDays(today, 7)
//     day, err := timezone.ParseDate("2025-01-08")
//
//  3. Pinning the clock in tests:
//     clock := timezone.FixedClock{At: time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)}
//
// The timezone is configured via the APP_TIMEZONE environment variable
// and is automatically initialized when the package is imported.
// Use standard IANA timezone database names for reliable cross-platform compatibility.
package timezone
