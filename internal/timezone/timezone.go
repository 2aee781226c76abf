package timezone

import "time"

// All bookings live in the deployment timezone. Per-master timezones
// are deliberately unsupported.
const DefaultTimezone = "Europe/Moscow"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func Now(tz string) time.Time {
	return time.Now().In(Location(tz))
}
