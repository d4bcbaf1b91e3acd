package get_reservation

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/reservations"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/reservations/models"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

type fakeService struct {
	resp *models.ReservationResponse
	err  error
}

func (f *fakeService) GetByID(_ context.Context, _ uuid.UUID) (*models.ReservationResponse, error) {
	return f.resp, f.err
}

func serve(svc *fakeService, target string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/reservations/{reservationId}", NewHandler(svc, logger.Nop()).Handle).Methods(http.MethodGet)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandler_Handle(t *testing.T) {
	id := uuid.New()
	svc := &fakeService{resp: &models.ReservationResponse{ID: id, Status: "confirmed", Time: ptr.Ptr("09:00")}}

	rec := serve(svc, "/reservations/"+id.String())
	require.Equal(t, http.StatusOK, rec.Code)

	var body models.ReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, id, body.ID)
	assert.Equal(t, "09:00", *body.Time)
	assert.Nil(t, body.RoomID)
}

func TestHandler_Handle_Errors(t *testing.T) {
	id := uuid.New().String()
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, "/reservations/nope").Code)
	assert.Equal(t, http.StatusNotFound, serve(&fakeService{err: reservations.ErrReservationNotFound}, "/reservations/"+id).Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&fakeService{err: errors.New("x")}, "/reservations/"+id).Code)
}
