package get_stay_quote

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Request модель запроса расчета стоимости проживания
type Request struct {
	RoomID      uuid.UUID
	CheckIn     string   // YYYY-MM-DD или RFC3339
	CheckOut    string   // YYYY-MM-DD или RFC3339
	View        string   // Название вида, пусто - без вида
	PaidOptions []string // Названия платных опций
}

// Response модель расчета
// Вид оплачивается за каждую ночь, платные опции один раз за проживание,
// налог начисляется за каждую ночь
type Response struct {
	RoomID   uuid.UUID
	CheckIn  *time.Time
	CheckOut *time.Time

	Nights   []domain.NightlyRate
	Subtotal decimal.Decimal // Сумма цен за ночи

	View      *domain.ViewOption
	ViewTotal decimal.Decimal

	PaidOptions  []domain.PaidOption
	OptionsTotal decimal.Decimal

	Tax   decimal.Decimal
	Total decimal.Decimal
}
