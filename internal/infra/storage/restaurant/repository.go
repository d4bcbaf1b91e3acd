package restaurant

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

var (
	// ErrRestaurantNotFound возвращается, когда настройки ресторана не найдены
	ErrRestaurantNotFound = errors.New("restaurant.repository: restaurant not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("restaurant.repository: failed to build query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("restaurant.repository: failed to scan row")

	// ErrDecodeJSON возвращается при ошибке разбора jsonb колонок
	ErrDecodeJSON = errors.New("restaurant.repository: failed to decode json column")
)

// Repository репозиторий настроек ресторанов
type Repository struct {
	db dbmetrics.DBExecutor
}

func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetSettings получает расписание и вместимость ресторана
func (r *Repository) GetSettings(ctx context.Context, restaurantID uuid.UUID) (*domain.RestaurantSettings, error) {
	ctx = dbmetrics.WithOperation(ctx, "restaurant.GetSettings")
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"restaurant_id",
		"horaires",
		"frequence_creneaux_minutes",
		"capacite_totale",
		"tables_size2",
		"tables_size4",
		"tables_size6",
		"tables_size8",
		"capacite_theorique",
		"max_reservations_par_creneau",
		"fermetures",
		"jours_ouverts",
		"updated_at",
	).
		From("restaurant_settings").
		Where(squirrel.Eq{"restaurant_id": restaurantID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetSettings - build select query: %v", ErrBuildQuery, err)
	}

	var (
		s                       domain.RestaurantSettings
		horairesRaw, closureRaw []byte
		frequency, total        sql.NullInt64
		theoretical, maxPerSlot sql.NullInt64
		updatedAt               sql.NullTime
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.RestaurantID,
		&horairesRaw,
		&frequency,
		&total,
		&s.Tables.Size2,
		&s.Tables.Size4,
		&s.Tables.Size6,
		&s.Tables.Size8,
		&theoretical,
		&maxPerSlot,
		&closureRaw,
		pq.Array(&s.JoursOuverts),
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRestaurantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetSettings - scan settings: %v", ErrScanRow, err)
	}

	s.FrequenceCreneauxMinutes = nullIntPtr(frequency)
	s.CapaciteTotale = nullIntPtr(total)
	s.CapaciteTheorique = nullIntPtr(theoretical)
	s.MaxReservationsParCreneau = nullIntPtr(maxPerSlot)
	s.UpdatedAt = updatedAt.Time

	if len(horairesRaw) > 0 {
		if err := json.Unmarshal(horairesRaw, &s.Horaires); err != nil {
			return nil, fmt.Errorf("%w: GetSettings - horaires: %v", ErrDecodeJSON, err)
		}
	}

	closures, err := decodeClosures(closureRaw)
	if err != nil {
		return nil, fmt.Errorf("%w: GetSettings - fermetures: %v", ErrDecodeJSON, err)
	}
	s.Fermetures = closures

	return &s, nil
}

// closureRow период закрытия в jsonb: даты как YYYY-MM-DD или RFC3339
type closureRow struct {
	Debut string `json:"debut"`
	Fin   string `json:"fin"`
}

func decodeClosures(raw []byte) ([]domain.Closure, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var rows []closureRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, err
	}

	closures := make([]domain.Closure, 0, len(rows))
	for _, row := range rows {
		debut, err := parseDate(row.Debut)
		if err != nil {
			return nil, err
		}
		fin, err := parseDate(row.Fin)
		if err != nil {
			return nil, err
		}
		closures = append(closures, domain.Closure{Debut: debut, Fin: fin})
	}
	return closures, nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(domain.DateFormat, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func nullIntPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}
