package timezone

import "time"

const DefaultTimezone = "America/Lima"

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

func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}

// NowIn es el "ahora" de referencia del restaurante: toda corrida de
// clasificación usa un único instante tomado de aquí.
func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}
