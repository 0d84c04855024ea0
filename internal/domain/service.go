package domain

// ServiceRow is one service the caller wants to book, in booking order
type ServiceRow struct {
	Duration  *int // минуты, может отсутствовать
	Name      string
	Title     string
	Category  string
	BookingID string // ID переносимого бронирования, пусто для новой услуги
}

// BasketItem carries display data for the ServiceRow at the same index.
// Used as a fallback when the row itself lacks duration or naming.
type BasketItem struct {
	DisplayDuration *int
	Duration        *int
	DisplayName     string
	DisplayCategory string
}
