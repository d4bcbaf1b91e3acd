package room

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

var (
	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("room.repository: room not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("room.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("room.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("room.repository: failed to scan row")

	// ErrDecodeJSON возвращается при ошибке разбора jsonb колонок
	ErrDecodeJSON = errors.New("room.repository: failed to decode json column")
)

const table = "rooms"

var columns = []string{
	"id",
	"hotel_id",
	"number",
	"type",
	"capacity",
	"base_price",
	"status",
	"is_active",
	"special_prices",
	"monthly_prices",
	"view_options",
	"paid_options",
	"created_at",
	"updated_at",
}

// Repository репозиторий номеров отеля
type Repository struct {
	db dbmetrics.DBExecutor
}

func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает номер по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Room, error) {
	ctx = dbmetrics.WithOperation(ctx, "room.GetByID")
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	room, err := scanRoom(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("GetByID: %w", err)
	}

	return room, nil
}

// ListBookable получает активные номера отеля со статусом available
func (r *Repository) ListBookable(ctx context.Context, hotelID uuid.UUID) ([]*domain.Room, error) {
	ctx = dbmetrics.WithOperation(ctx, "room.ListBookable")
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{
			"hotel_id":  hotelID,
			"is_active": true,
			"status":    string(domain.RoomAvailable),
		}).
		OrderBy("number ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBookable - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBookable - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rooms := make([]*domain.Room, 0)
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("ListBookable: %w", err)
		}
		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBookable - rows error: %v", ErrScanRow, err)
	}

	return rooms, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRoom(row rowScanner) (*domain.Room, error) {
	var (
		room                   domain.Room
		status                 string
		specialRaw, monthlyRaw []byte
		viewRaw, paidRaw       []byte
		createdAt, updatedAt   sql.NullTime
	)

	err := row.Scan(
		&room.ID,
		&room.HotelID,
		&room.Number,
		&room.Type,
		&room.Capacity,
		&room.BasePrice,
		&status,
		&room.IsActive,
		&specialRaw,
		&monthlyRaw,
		&viewRaw,
		&paidRaw,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scan room: %v", ErrScanRow, err)
	}

	room.Status = domain.RoomStatus(status)
	room.CreatedAt = createdAt.Time
	room.UpdatedAt = updatedAt.Time

	if err := decodeList(specialRaw, &room.SpecialPrices); err != nil {
		return nil, fmt.Errorf("%w: special_prices: %v", ErrDecodeJSON, err)
	}
	if err := decodeList(monthlyRaw, &room.MonthlyPrices); err != nil {
		return nil, fmt.Errorf("%w: monthly_prices: %v", ErrDecodeJSON, err)
	}
	if err := decodeList(viewRaw, &room.ViewOptions); err != nil {
		return nil, fmt.Errorf("%w: view_options: %v", ErrDecodeJSON, err)
	}
	if err := decodeList(paidRaw, &room.PaidOptions); err != nil {
		return nil, fmt.Errorf("%w: paid_options: %v", ErrDecodeJSON, err)
	}

	return &room, nil
}

// decodeList разбирает jsonb массив; NULL превращается в пустой список
func decodeList[T any](raw []byte, out *[]T) error {
	if len(raw) == 0 {
		*out = []T{}
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return err
	}
	if *out == nil {
		*out = []T{}
	}
	return nil
}
