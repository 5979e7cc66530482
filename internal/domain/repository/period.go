package repository

import "time"

// Period filtro opcional de fechas (inclusive en ambos extremos). Nil = sin límite.
type Period struct {
	From *time.Time
	To   *time.Time
}

// Contains indica si la fecha cae dentro del período.
func (p Period) Contains(d time.Time) bool {
	if p.From != nil && d.Before(*p.From) {
		return false
	}
	if p.To != nil && d.After(*p.To) {
		return false
	}
	return true
}
