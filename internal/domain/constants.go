package domain

// Scheduling defaults
const (
	DefaultChemicalGapMinutes = 30
	MinServiceDurationMinutes = 1
	MaxServiceDurationMinutes = 24 * 60
)

// Business validation constants
const (
	MaxChemicalGapMinutes = 240
	MaxServicesPerBooking = 20
	MaxNotesLength        = 500
)

// ChemicalKeywords ключевые слова, по которым услуга считается "химической"
// и требует паузы после себя
var ChemicalKeywords = []string{
	"tint",
	"colour",
	"color",
	"bleach",
	"toner",
	"gloss",
	"highlights",
	"balayage",
	"foils",
	"perm",
	"relaxer",
	"keratin",
	"chemical",
	"straightening",
}

// InactiveStatuses список статусов, которые не занимают время мастера
// Используется для фильтрации при проверке пересечений
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusNoShow,
}

// ActiveStatuses список статусов активных бронирований
var ActiveStatuses = []BookingStatus{
	StatusBooked,
	StatusConfirmed,
	StatusArrived,
	StatusCompleted,
}
