package models

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

// SettingsResponse расписание и вместимость ресторана
type SettingsResponse struct {
	RestaurantID              uuid.UUID         `json:"restaurantId"`
	Horaires                  []HoraireResponse `json:"horaires"`
	FrequenceCreneauxMinutes  *int              `json:"frequenceCreneauxMinutes"`
	CapaciteTotale            *int              `json:"capaciteTotale"`
	Tables                    TablesResponse    `json:"tables"`
	CapaciteTheorique         int               `json:"capaciteTheorique"`         // Сохраненная или посчитанная по столам
	MaxReservationsParCreneau *int              `json:"maxReservationsParCreneau"` // null - без ограничений
	CapaciteParCreneau        *int              `json:"capaciteParCreneau"`        // min(capaciteTotale, maxReservationsParCreneau)
	Fermetures                []ClosureResponse `json:"fermetures"`
	JoursOuverts              []string          `json:"joursOuverts"`
	CreneauxParJour           int               `json:"creneauxParJour"`
	Configure                 bool              `json:"configure"` // Заданы horaires и корректная частота
}

// HoraireResponse интервал работы
type HoraireResponse struct {
	Ouverture string `json:"ouverture"`
	Fermeture string `json:"fermeture"`
}

// TablesResponse количество столов по вместимости
type TablesResponse struct {
	Size2 int `json:"size2"`
	Size4 int `json:"size4"`
	Size6 int `json:"size6"`
	Size8 int `json:"size8"`
}

// ClosureResponse период закрытия, даты включительно
type ClosureResponse struct {
	Debut string `json:"debut"` // "2025-08-01"
	Fin   string `json:"fin"`
}

// FromDomainSettings конвертирует domain модель в response с производными вместимостями
func FromDomainSettings(s *domain.RestaurantSettings) *SettingsResponse {
	resp := &SettingsResponse{
		RestaurantID:              s.RestaurantID,
		Horaires:                  make([]HoraireResponse, 0, len(s.Horaires)),
		FrequenceCreneauxMinutes:  s.FrequenceCreneauxMinutes,
		CapaciteTotale:            s.CapaciteTotale,
		Tables:                    TablesResponse(s.Tables),
		CapaciteTheorique:         s.TheoreticalCapacity(),
		MaxReservationsParCreneau: s.MaxReservationsParCreneau,
		Fermetures:                make([]ClosureResponse, 0, len(s.Fermetures)),
		JoursOuverts:              s.JoursOuverts,
		CreneauxParJour:           len(s.GenerateSlots()),
		Configure:                 s.IsSlotConfigured(),
	}

	for _, h := range s.Horaires {
		resp.Horaires = append(resp.Horaires, HoraireResponse(h))
	}
	for _, c := range s.Fermetures {
		resp.Fermetures = append(resp.Fermetures, ClosureResponse{
			Debut: c.Debut.Format(domain.DateFormat),
			Fin:   c.Fin.Format(domain.DateFormat),
		})
	}
	if resp.JoursOuverts == nil {
		resp.JoursOuverts = []string{}
	}
	if c := s.SlotCapacity(); !c.Unlimited {
		resp.CapaciteParCreneau = ptr.Ptr(c.Value)
	}

	return resp
}
