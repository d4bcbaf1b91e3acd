package rooms

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	roomRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/room"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/rooms/models"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
)

// Service сервис чтения номеров
type Service struct {
	roomRepo RoomRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса номеров
func NewService(roomRepo RoomRepository, logger Logger) *Service {
	return &Service{roomRepo: roomRepo, logger: logger}
}

// GetByID получает номер по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.RoomResponse, error) {
	s.logger.Info("GetByID: fetching room id=%s", id)

	room, err := s.roomRepo.GetByID(dbmetrics.WithOperation(ctx, "room_get"), id)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("GetByID: room id=%s not found", id)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetByID: repository error for room id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRoom(room), nil
}
