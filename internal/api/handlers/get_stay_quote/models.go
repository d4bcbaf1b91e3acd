package get_stay_quote

import (
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	getStayQuote "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_stay_quote"
)

// QuoteQuery query параметры запроса
type QuoteQuery struct {
	CheckIn     string   `json:"checkIn" validate:"required"`
	CheckOut    string   `json:"checkOut" validate:"required"`
	View        string   `json:"view"`
	PaidOptions []string `json:"paidOptions"`
}

// QuoteResponse HTTP response model
type QuoteResponse struct {
	RoomID       uuid.UUID        `json:"roomId"`
	CheckIn      *string          `json:"checkIn"`
	CheckOut     *string          `json:"checkOut"`
	Nights       []NightResponse  `json:"nights"`
	Subtotal     decimal.Decimal  `json:"subtotal"`
	View         *OptionResponse  `json:"view"`
	ViewTotal    decimal.Decimal  `json:"viewTotal"`
	PaidOptions  []OptionResponse `json:"paidOptions"`
	OptionsTotal decimal.Decimal  `json:"optionsTotal"`
	Tax          decimal.Decimal  `json:"tax"`
	Total        decimal.Decimal  `json:"total"`
}

// NightResponse цена одной ночи
type NightResponse struct {
	Date  string          `json:"date"`
	Price decimal.Decimal `json:"price"`
	Rule  string          `json:"rule"` // base, special, monthly
}

// OptionResponse выбранный вид или платная опция
type OptionResponse struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// ParseQuery разбирает query параметры
// paidOptions передаются списком через запятую или повторяющимся параметром
func ParseQuery(values url.Values) QuoteQuery {
	q := QuoteQuery{
		CheckIn:     values.Get("checkIn"),
		CheckOut:    values.Get("checkOut"),
		View:        strings.TrimSpace(values.Get("view")),
		PaidOptions: []string{},
	}
	for _, raw := range values["paidOptions"] {
		for _, name := range strings.Split(raw, ",") {
			if name = strings.TrimSpace(name); name != "" {
				q.PaidOptions = append(q.PaidOptions, name)
			}
		}
	}
	return q
}

// ToUseCaseRequest конвертирует query в запрос use case
func ToUseCaseRequest(roomID uuid.UUID, q QuoteQuery) *getStayQuote.Request {
	return &getStayQuote.Request{
		RoomID:      roomID,
		CheckIn:     q.CheckIn,
		CheckOut:    q.CheckOut,
		View:        q.View,
		PaidOptions: q.PaidOptions,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *getStayQuote.Response) *QuoteResponse {
	result := &QuoteResponse{
		RoomID:       resp.RoomID,
		Nights:       make([]NightResponse, 0, len(resp.Nights)),
		Subtotal:     resp.Subtotal,
		ViewTotal:    resp.ViewTotal,
		PaidOptions:  make([]OptionResponse, 0, len(resp.PaidOptions)),
		OptionsTotal: resp.OptionsTotal,
		Tax:          resp.Tax,
		Total:        resp.Total,
	}

	if resp.CheckIn != nil {
		in := resp.CheckIn.Format(domain.DateFormat)
		result.CheckIn = &in
	}
	if resp.CheckOut != nil {
		out := resp.CheckOut.Format(domain.DateFormat)
		result.CheckOut = &out
	}

	for _, n := range resp.Nights {
		result.Nights = append(result.Nights, NightResponse{
			Date:  n.Date.Format(domain.DateFormat),
			Price: n.Price,
			Rule:  ruleName(n.Rule),
		})
	}

	if resp.View != nil {
		view := OptionResponse{Name: resp.View.Name, Price: decimal.Zero}
		if resp.View.Price != nil {
			view.Price = *resp.View.Price
		}
		result.View = &view
	}

	for _, o := range resp.PaidOptions {
		result.PaidOptions = append(result.PaidOptions, OptionResponse{Name: o.Name, Price: o.Price})
	}

	return result
}

func ruleName(kind *domain.PriceRuleKind) string {
	if kind == nil {
		return "base"
	}
	switch *kind {
	case domain.RuleSpecial:
		return "special"
	case domain.RuleMonthly:
		return "monthly"
	default:
		return "base"
	}
}
