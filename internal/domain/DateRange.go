package domain

import (
	"errors"
	"time"
)

var ErrInvalidDateRange = errors.New("data inicial maior que a data final")

// DateRange com Since e Until preenchidos é um intervalo explícito.
// Qualquer outro caso significa "todo o período disponível".
type DateRange struct {
	Since *time.Time
	Until *time.Time
}

func NewDateRange(since, until *time.Time) DateRange {
	return DateRange{Since: since, Until: until}
}

// LastDays devolve o intervalo dos últimos n dias terminando em today
func LastDays(today time.Time, n int) DateRange {
	until := truncateDay(today)
	since := until.AddDate(0, 0, -n)

	return DateRange{Since: &since, Until: &until}
}

func (d DateRange) IsMaximum() bool {
	return d.Since == nil || d.Until == nil
}

func (d DateRange) Validate() error {
	if d.IsMaximum() {
		return nil
	}

	if truncateDay(*d.Since).After(truncateDay(*d.Until)) {
		return ErrInvalidDateRange
	}

	return nil
}

func (d DateRange) Equal(other DateRange) bool {
	if d.IsMaximum() || other.IsMaximum() {
		return d.IsMaximum() == other.IsMaximum()
	}

	return d.SinceString() == other.SinceString() && d.UntilString() == other.UntilString()
}

func (d DateRange) SinceString() string {
	if d.Since == nil {
		return ""
	}
	return d.Since.Format(time.DateOnly)
}

func (d DateRange) UntilString() string {
	if d.Until == nil {
		return ""
	}
	return d.Until.Format(time.DateOnly)
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
