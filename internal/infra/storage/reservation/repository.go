package reservation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

const table = "reservations"

var columns = []string{
	"id",
	"business_id",
	"business_type",
	"room_id",
	"table_id",
	"check_in",
	"check_out",
	"date",
	"time",
	"guests",
	"party_size",
	"status",
	"total_amount",
	"created_at",
	"updated_at",
}

// Repository репозиторий бронирований (только чтение и смена статуса)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает бронирование по ID
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Reservation, error) {
	ctx = dbmetrics.WithOperation(ctx, "reservation.GetByID")
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// List получает бронирования бизнеса по фильтру
// Сортировка: дата, время, дата заезда
func (r *Repository) List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	ctx = dbmetrics.WithOperation(ctx, "reservation.List")
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"business_id": filter.BusinessID})

	if filter.BusinessType != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"business_type": string(*filter.BusinessType)})
	}

	// Период по дате ресторанного бронирования: [DateFrom, DateTo)
	if filter.DateFrom != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"date": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"date": *filter.DateTo})
	}

	if len(filter.Statuses) > 0 {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": statusStrings(filter.Statuses)})
	}
	if len(filter.ExcludeStatuses) > 0 {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": statusStrings(filter.ExcludeStatuses)})
	}

	selectBuilder = selectBuilder.OrderBy("date ASC NULLS LAST", "time ASC NULLS LAST", "check_in ASC NULLS LAST")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations := make([]*domain.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan reservation: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReservationStatus) error {
	ctx = dbmetrics.WithOperation(ctx, "reservation.UpdateStatus")
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("status", string(status)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var (
		res          domain.Reservation
		businessType string
		status       string
		roomID       uuid.NullUUID
		tableID      uuid.NullUUID
		checkIn      sql.NullTime
		checkOut     sql.NullTime
		date         sql.NullTime
		timeStr      sql.NullString
		guests       sql.NullInt64
		partySize    sql.NullInt64
		amount       decimal.NullDecimal
		createdAt    sql.NullTime
		updatedAt    sql.NullTime
	)

	err := row.Scan(
		&res.ID,
		&res.BusinessID,
		&businessType,
		&roomID,
		&tableID,
		&checkIn,
		&checkOut,
		&date,
		&timeStr,
		&guests,
		&partySize,
		&status,
		&amount,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	res.BusinessType = domain.BusinessType(businessType)
	res.Status = domain.ReservationStatus(status)

	if roomID.Valid {
		res.RoomID = &roomID.UUID
	}
	if tableID.Valid {
		res.TableID = &tableID.UUID
	}
	res.CheckIn = nullTimePtr(checkIn)
	res.CheckOut = nullTimePtr(checkOut)
	res.Date = nullTimePtr(date)
	if timeStr.Valid {
		res.Time = &timeStr.String
	}
	res.Guests = nullIntPtr(guests)
	res.PartySize = nullIntPtr(partySize)
	if amount.Valid {
		res.TotalAmount = &amount.Decimal
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}

func nullTimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	return &t.Time
}

func nullIntPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}

func statusStrings(statuses []domain.ReservationStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
