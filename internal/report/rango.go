// Package report is the aggregation engine: pure functions that derive the
// financial metrics, chart series and rankings from the in-memory entity
// collections. Functions here never fail — missing lookups degrade to zero
// or sentinel values — and never mutate their inputs.
package report

import "time"

// Modo selects how the reporting window is derived.
type Modo string

const (
	ModoUltimos7Dias  Modo = "7d"
	ModoUltimos30Dias Modo = "30d"
	ModoUltimoAnio    Modo = "1y"
	ModoHistorico     Modo = "all"
	ModoPersonalizado Modo = "custom"
)

const fechaISO = "2006-01-02"

// Rango is a closed interval [Desde, Hasta].
type Rango struct {
	Desde time.Time
	Hasta time.Time
}

// ResolverRango derives the window for a mode at instant ahora. The relative
// modes anchor Desde at today's midnight minus N days; ModoHistorico opens
// the window at the zero instant. For ModoPersonalizado both bounds cover
// their full calendar day: Desde at 00:00:00 and Hasta at the last
// nanosecond of the day. An unparsable or empty bound falls back to the
// zero instant (Desde) or ahora (Hasta).
func ResolverRango(modo Modo, desde, hasta string, ahora time.Time) Rango {
	medianoche := time.Date(ahora.Year(), ahora.Month(), ahora.Day(), 0, 0, 0, 0, ahora.Location())

	switch modo {
	case ModoUltimos7Dias:
		return Rango{Desde: medianoche.AddDate(0, 0, -7), Hasta: ahora}
	case ModoUltimos30Dias:
		return Rango{Desde: medianoche.AddDate(0, 0, -30), Hasta: ahora}
	case ModoUltimoAnio:
		return Rango{Desde: medianoche.AddDate(-1, 0, 0), Hasta: ahora}
	case ModoPersonalizado:
		r := Rango{Hasta: ahora}
		if t, err := time.ParseInLocation(fechaISO, desde, ahora.Location()); err == nil {
			r.Desde = t
		}
		if t, err := time.ParseInLocation(fechaISO, hasta, ahora.Location()); err == nil {
			r.Hasta = finDeDia(t)
		}
		return r
	default: // ModoHistorico and anything unrecognized
		return Rango{Hasta: ahora}
	}
}

// Contiene reports whether t falls inside the window, inclusive at both ends.
func (r Rango) Contiene(t time.Time) bool {
	return !t.Before(r.Desde) && !t.After(r.Hasta)
}

func finDeDia(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
