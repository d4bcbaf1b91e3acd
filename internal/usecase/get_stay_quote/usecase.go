package get_stay_quote

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	roomRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/room"
)

// UseCase use case для расчета стоимости проживания в номере
type UseCase struct {
	roomRepo    RoomRepository
	taxPerNight decimal.Decimal
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(roomRepo RoomRepository, taxPerNight decimal.Decimal, logger Logger) *UseCase {
	return &UseCase{
		roomRepo:    roomRepo,
		taxPerNight: taxPerNight,
		logger:      logger,
	}
}

// Execute рассчитывает стоимость проживания с разбивкой по ночам
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetStayQuote: room=%s, checkIn=%s, checkOut=%s, view=%q, options=%v",
		req.RoomID, req.CheckIn, req.CheckOut, req.View, req.PaidOptions)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetStayQuote: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем номер
	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("GetStayQuote: room=%s not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("GetStayQuote: failed to get room=%s: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	resp := &Response{
		RoomID:       req.RoomID,
		Nights:       []domain.NightlyRate{},
		Subtotal:     decimal.Zero,
		ViewTotal:    decimal.Zero,
		PaidOptions:  []domain.PaidOption{},
		OptionsTotal: decimal.Zero,
		Tax:          decimal.Zero,
		Total:        decimal.Zero,
	}

	// 3. Некорректный период дает нулевой расчет
	checkIn, checkOut, ok := parseStay(req.CheckIn, req.CheckOut)
	if !ok {
		uc.logger.Warn("GetStayQuote: invalid stay checkIn=%q checkOut=%q", req.CheckIn, req.CheckOut)
		return resp, nil
	}
	resp.CheckIn = &checkIn
	resp.CheckOut = &checkOut

	// 4. Цены по ночам
	resp.Nights = room.NightlyRates(checkIn, checkOut)
	for _, n := range resp.Nights {
		resp.Subtotal = resp.Subtotal.Add(n.Price)
	}
	nights := decimal.NewFromInt(int64(len(resp.Nights)))

	// 5. Вид и платные опции; неизвестные названия игнорируются
	if req.View != "" {
		if view, found := room.FindView(req.View); found {
			resp.View = &view
			if view.Price != nil {
				resp.ViewTotal = view.Price.Mul(nights)
			}
		} else {
			uc.logger.Warn("GetStayQuote: room=%s has no view %q", req.RoomID, req.View)
		}
	}

	for _, name := range req.PaidOptions {
		opt, found := room.FindPaidOption(name)
		if !found {
			uc.logger.Warn("GetStayQuote: room=%s has no paid option %q", req.RoomID, name)
			continue
		}
		resp.PaidOptions = append(resp.PaidOptions, opt)
		resp.OptionsTotal = resp.OptionsTotal.Add(opt.Price)
	}

	// 6. Налог и итог
	resp.Tax = uc.taxPerNight.Mul(nights)
	resp.Total = resp.Subtotal.Add(resp.ViewTotal).Add(resp.OptionsTotal).Add(resp.Tax)

	uc.logger.Info("GetStayQuote: room=%s nights=%d total=%s", req.RoomID, len(resp.Nights), resp.Total)

	return resp, nil
}
