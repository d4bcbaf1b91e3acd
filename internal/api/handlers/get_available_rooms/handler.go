package get_available_rooms

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	getAvailableRooms "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_rooms"
	"github.com/m04kA/SMC-AvailabilityService/pkg/validator"
)

const (
	msgInvalidHotelID = "некорректный ID отеля"
	msgInvalidGuests  = "количество гостей должно быть целым числом"
)

type Handler struct {
	useCase GetAvailableRoomsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableRoomsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/hotels/{hotelId}/available-rooms
// Query params: checkIn, checkOut (required), adults, children
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hotelID, query, ok := h.parse(w, r, "GET /hotels/{id}/available-rooms")
	if !ok {
		return
	}

	result, err := h.useCase.Execute(r.Context(), ToUseCaseRequest(hotelID, query))
	if err != nil {
		h.respondError(w, "GET /hotels/{id}/available-rooms", hotelID, err)
		return
	}

	h.logger.Info("GET /hotels/{id}/available-rooms - Rooms retrieved successfully: hotel_id=%s, rooms_count=%d",
		hotelID, len(result.Rooms))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// HandleCount GET /api/v1/hotels/{hotelId}/available-rooms/count
func (h *Handler) HandleCount(w http.ResponseWriter, r *http.Request) {
	hotelID, query, ok := h.parse(w, r, "GET /hotels/{id}/available-rooms/count")
	if !ok {
		return
	}

	count, err := h.useCase.CountExecute(r.Context(), ToUseCaseRequest(hotelID, query))
	if err != nil {
		h.respondError(w, "GET /hotels/{id}/available-rooms/count", hotelID, err)
		return
	}

	h.logger.Info("GET /hotels/{id}/available-rooms/count - Rooms counted: hotel_id=%s, count=%d", hotelID, count)
	handlers.RespondJSON(w, http.StatusOK, CountResponse{HotelID: hotelID, Count: count})
}

func (h *Handler) parse(w http.ResponseWriter, r *http.Request, route string) (uuid.UUID, RoomsQuery, bool) {
	hotelID, err := uuid.Parse(mux.Vars(r)["hotelId"])
	if err != nil {
		h.logger.Warn("%s - Invalid hotel ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidHotelID)
		return uuid.Nil, RoomsQuery{}, false
	}

	query, err := ParseQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("%s - Invalid guests: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidGuests)
		return uuid.Nil, RoomsQuery{}, false
	}

	if fields := validator.Validate(query); fields != nil {
		h.logger.Warn("%s - Validation failed: %v", route, fields)
		handlers.RespondValidationError(w, fields)
		return uuid.Nil, RoomsQuery{}, false
	}

	return hotelID, query, true
}

func (h *Handler) respondError(w http.ResponseWriter, route string, hotelID uuid.UUID, err error) {
	if errors.Is(err, getAvailableRooms.ErrInvalidInput) {
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}
	h.logger.Error("%s - Failed to get rooms: hotel_id=%s, error=%v", route, hotelID, err)
	handlers.RespondInternalError(w)
}
