package domain

import (
	"fmt"
	"time"
)

// WorkDay рабочие часы салона в пределах одного дня
type WorkDay struct {
	StartHour   int
	StartMinute int
	EndHour     int
	EndMinute   int
}

// ParseWorkDay разбирает границы рабочего дня из строк HH:MM
func ParseWorkDay(start, end string) (WorkDay, error) {
	s, err := time.Parse(TimeFormat, start)
	if err != nil {
		return WorkDay{}, fmt.Errorf("invalid work day start %q: %w", start, err)
	}
	e, err := time.Parse(TimeFormat, end)
	if err != nil {
		return WorkDay{}, fmt.Errorf("invalid work day end %q: %w", end, err)
	}

	wd := WorkDay{
		StartHour:   s.Hour(),
		StartMinute: s.Minute(),
		EndHour:     e.Hour(),
		EndMinute:   e.Minute(),
	}
	if !wd.startBeforeEnd() {
		return WorkDay{}, fmt.Errorf("work day start %q must be before end %q", start, end)
	}
	return wd, nil
}

// DefaultWorkDay возвращает рабочий день по умолчанию (09:00-17:00)
func DefaultWorkDay() WorkDay {
	wd, _ := ParseWorkDay(DefaultWorkDayStart, DefaultWorkDayEnd)
	return wd
}

// OpensAt возвращает момент открытия салона в указанный день
func (w WorkDay) OpensAt(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), w.StartHour, w.StartMinute, 0, 0, day.Location())
}

// ClosesAt возвращает момент закрытия салона в указанный день
func (w WorkDay) ClosesAt(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), w.EndHour, w.EndMinute, 0, 0, day.Location())
}

func (w WorkDay) startBeforeEnd() bool {
	return w.StartHour*60+w.StartMinute < w.EndHour*60+w.EndMinute
}
