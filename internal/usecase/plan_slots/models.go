package plan_slots

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// Request модель запроса на расчет слотов
type Request struct {
	StartInstant       time.Time
	Rows               []domain.ServiceRow
	BasketItems        []domain.BasketItem
	ChemicalGapMinutes *int // nil - значение из конфига
}

// Response рассчитанные слоты в порядке услуг
type Response struct {
	Slots      []domain.Slot
	GapMinutes int // Фактически примененная пауза
}
