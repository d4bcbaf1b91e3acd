package get_stay_quote

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	getStayQuote "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_stay_quote"
	"github.com/m04kA/SMC-AvailabilityService/pkg/validator"
)

const (
	msgInvalidRoomID = "некорректный ID номера"
	msgRoomNotFound  = "номер не найден"
)

type Handler struct {
	useCase GetStayQuoteUseCase
	logger  Logger
}

func NewHandler(useCase GetStayQuoteUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/quote
// Query params: checkIn, checkOut (required), view, paidOptions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := uuid.Parse(mux.Vars(r)["roomId"])
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/quote - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	query := ParseQuery(r.URL.Query())
	if fields := validator.Validate(query); fields != nil {
		h.logger.Warn("GET /rooms/{id}/quote - Validation failed: %v", fields)
		handlers.RespondValidationError(w, fields)
		return
	}

	result, err := h.useCase.Execute(r.Context(), ToUseCaseRequest(roomID, query))
	if err != nil {
		switch {
		case errors.Is(err, getStayQuote.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{id}/quote - Room not found: room_id=%s", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, getStayQuote.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{id}/quote - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /rooms/{id}/quote - Failed to get quote: room_id=%s, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/{id}/quote - Quote calculated: room_id=%s, nights=%d, total=%s",
		roomID, len(result.Nights), result.Total)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
