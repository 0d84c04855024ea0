package scheduling

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// Planner раскладывает упорядоченный список услуг во временные слоты
type Planner struct {
	classifier Classifier
}

// NewPlanner создает планировщик. Если classifier nil, используется KeywordClassifier.
func NewPlanner(classifier Classifier) *Planner {
	if classifier == nil {
		classifier = KeywordClassifier{}
	}
	return &Planner{classifier: classifier}
}

// Plan вычисляет слоты для услуг, начиная с момента start.
// Услуги идут встык; после химической услуги вставляется пауза gapMinutes.
// basket сопоставляется со строками по индексу и может быть короче или nil.
func (p *Planner) Plan(start time.Time, rows []domain.ServiceRow, basket []domain.BasketItem, gapMinutes int) ([]domain.Slot, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: at least one service row is required", ErrInvalidInput)
	}
	if start.IsZero() {
		return nil, fmt.Errorf("%w: start instant is required", ErrInvalidInput)
	}
	if gapMinutes < 0 {
		return nil, fmt.Errorf("%w: chemical gap must not be negative, got %d", ErrInvalidInput, gapMinutes)
	}

	slots := make([]domain.Slot, len(rows))
	cursor := start.UTC()

	for i, row := range rows {
		item := basketItemAt(basket, i)

		minutes := ResolveDuration(row, item)
		if minutes > domain.MaxServiceDurationMinutes {
			return nil, fmt.Errorf("%w: service %d duration must not exceed %d minutes, got %d",
				ErrInvalidInput, i, domain.MaxServiceDurationMinutes, minutes)
		}

		end := types.AddMinutes(cursor, minutes)
		slots[i] = domain.Slot{Start: cursor, End: end}

		if p.classifier.RequiresGap(Describe(row, item)) {
			cursor = types.AddMinutes(end, gapMinutes)
		} else {
			cursor = end
		}
	}

	return slots, nil
}

// ComputeSlots вычисляет слоты стандартным планировщиком с классификацией по ключевым словам
func ComputeSlots(start time.Time, rows []domain.ServiceRow, basket []domain.BasketItem, gapMinutes int) ([]domain.Slot, error) {
	return NewPlanner(nil).Plan(start, rows, basket, gapMinutes)
}

func basketItemAt(basket []domain.BasketItem, i int) *domain.BasketItem {
	if i < len(basket) {
		return &basket[i]
	}
	return nil
}
