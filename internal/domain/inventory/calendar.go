package inventory

import "time"

// Convención única de fechas de toda la aplicación: los días se cuentan como
// diferencia de fechas calendario en UTC (fin − inicio), semántica
// exclusiva-inclusiva. Las ventanas de movimientos son (inicio, fin].

// DaysBetween devuelve la cantidad entera de días entre dos instantes,
// comparando solo la fecha calendario (la hora se descarta).
func DaysBetween(start, end time.Time) int {
	s := truncateToDay(start)
	e := truncateToDay(end)
	return int(e.Sub(s).Hours() / 24)
}

// StartOfDay devuelve el primer instante del día del instante dado (UTC).
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// EndOfDay devuelve el último instante representable del día (UTC), el
// equivalente de combinar la fecha con time.max en el sistema original.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).Add(24*time.Hour - time.Nanosecond)
}

func truncateToDay(t time.Time) time.Time {
	return StartOfDay(t)
}
