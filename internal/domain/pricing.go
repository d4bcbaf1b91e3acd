package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceRuleKind вид правила ценообразования
type PriceRuleKind int

const (
	RuleSpecial PriceRuleKind = iota + 1
	RuleMonthly
)

// PriceRule правило цены за ночь
// Для RuleSpecial заполнено Special, для RuleMonthly - Monthly
type PriceRule struct {
	Kind    PriceRuleKind
	Special SpecialPrice
	Monthly MonthlyPrice
}

// Matches проверяет, применяется ли правило к ночи с указанной датой
func (p PriceRule) Matches(date time.Time) bool {
	switch p.Kind {
	case RuleSpecial:
		return p.Special.Covers(date)
	case RuleMonthly:
		return p.Monthly.Covers(date)
	default:
		return false
	}
}

// Price цена правила
func (p PriceRule) Price() decimal.Decimal {
	switch p.Kind {
	case RuleSpecial:
		return p.Special.Price
	case RuleMonthly:
		return p.Monthly.Price
	default:
		return decimal.Zero
	}
}

// Covers проверяет попадание даты в период с учетом перехода через год
func (s SpecialPrice) Covers(date time.Time) bool {
	key := monthDayKey(int(date.Month()), date.Day())
	start := monthDayKey(s.StartMonth, s.StartDay)
	end := monthDayKey(s.EndMonth, s.EndDay)

	if start <= end {
		return key >= start && key <= end
	}
	return key >= start || key <= end
}

// Covers проверяет попадание месяца даты в диапазон
func (m MonthlyPrice) Covers(date time.Time) bool {
	month := int(date.Month())
	return month >= m.StartMonth && month <= m.EndMonth
}

func monthDayKey(month, day int) int {
	return month*100 + day
}

// PricingRules правила цены в порядке приоритета:
// сначала все специальные периоды, затем помесячные цены, каждые в порядке хранения
func (r *Room) PricingRules() []PriceRule {
	rules := make([]PriceRule, 0, len(r.SpecialPrices)+len(r.MonthlyPrices))
	for _, sp := range r.SpecialPrices {
		rules = append(rules, PriceRule{Kind: RuleSpecial, Special: sp})
	}
	for _, mp := range r.MonthlyPrices {
		rules = append(rules, PriceRule{Kind: RuleMonthly, Monthly: mp})
	}
	return rules
}

// NightlyRate цена одной ночи
type NightlyRate struct {
	Date  time.Time
	Price decimal.Decimal
	Rule  *PriceRuleKind // nil - базовая цена
}

// RateFor цена ночи, начинающейся в date: первое подходящее правило, иначе базовая цена
func (r *Room) RateFor(date time.Time) NightlyRate {
	for _, rule := range r.PricingRules() {
		if rule.Matches(date) {
			kind := rule.Kind
			return NightlyRate{Date: date, Price: rule.Price(), Rule: &kind}
		}
	}
	return NightlyRate{Date: date, Price: r.BasePrice}
}

// NightlyRates цены по ночам проживания [checkIn, checkOut)
func (r *Room) NightlyRates(checkIn, checkOut time.Time) []NightlyRate {
	if r == nil || checkIn.IsZero() || checkOut.IsZero() {
		return nil
	}

	var rates []NightlyRate
	for day := checkIn; day.Before(checkOut); day = day.AddDate(0, 0, 1) {
		rates = append(rates, r.RateFor(day))
	}
	return rates
}

// PriceForStay стоимость проживания [checkIn, checkOut)
// 0 для nil номера, пустых дат и проживания без ночей
func (r *Room) PriceForStay(checkIn, checkOut time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, rate := range r.NightlyRates(checkIn, checkOut) {
		total = total.Add(rate.Price)
	}
	return total
}
