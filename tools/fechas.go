package tools

import "time"

// FormatoFecha es el layout de todas las fechas de negocio (sin hora).
const FormatoFecha = "2006-01-02"

// Fecha parsea "YYYY-MM-DD" a medianoche UTC. Panic si el literal está
// mal formado: se usa solo con fechas escritas en el código (seed, tests).
func Fecha(s string) time.Time {
	t, err := time.Parse(FormatoFecha, s)
	if err != nil {
		panic("fecha inválida: " + s)
	}
	return t
}

// ParseFecha parsea "YYYY-MM-DD" devolviendo el error al caller.
func ParseFecha(s string) (time.Time, error) {
	return time.Parse(FormatoFecha, s)
}

// Hoy devuelve la fecha actual truncada a medianoche UTC.
func Hoy() time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
