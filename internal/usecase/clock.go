package usecase

import "time"

// Clock returns the current instant. Use cases take one so tests can pin "now".
type Clock func() time.Time

func systemClock() time.Time {
	return time.Now().UTC()
}
