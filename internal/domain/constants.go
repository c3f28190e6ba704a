package domain

// Форматы даты и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Рабочий день салона по умолчанию
const (
	DefaultWorkDayStart = "09:00"
	DefaultWorkDayEnd   = "17:00"
)

// Границы валидации
const (
	MinTreatmentDurationMinutes = 5
	MaxTreatmentDurationMinutes = 480 // 8 часов
	MaxMessageLength            = 500
)

// DaysPerWeek длина окна недельного расписания
const DaysPerWeek = 7
