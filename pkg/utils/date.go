package utils

import (
	"time"

	"github.com/pkg/errors"
)

// ParseDate interpreta uma data no formato YYYY-MM-DD
func ParseDate(dateStr string) (time.Time, error) {
	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "data inválida %q, use o formato YYYY-MM-DD", dateStr)
	}

	return date, nil
}

// FormatDate devolve a data no formato YYYY-MM-DD
func FormatDate(date time.Time) string {
	return date.Format(time.DateOnly)
}
