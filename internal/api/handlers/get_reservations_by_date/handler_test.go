package get_reservations_by_date

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/reservations/models"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
)

type fakeService struct {
	resp    *models.ReservationListResponse
	err     error
	lastReq *models.ListByDateRequest
}

func (f *fakeService) ListByDate(_ context.Context, req *models.ListByDateRequest) (*models.ReservationListResponse, error) {
	f.lastReq = req
	return f.resp, f.err
}

func serve(svc *fakeService, target string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/restaurants/{restaurantId}/reservations", NewHandler(svc, logger.Nop()).Handle).Methods(http.MethodGet)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandler_Handle(t *testing.T) {
	id := uuid.New()
	svc := &fakeService{resp: &models.ReservationListResponse{Reservations: []models.ReservationResponse{}, Total: 0}}

	rec := serve(svc, "/restaurants/"+id.String()+"/reservations?date=2024-06-03")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"reservations":[],"total":0}`, rec.Body.String())
	assert.Equal(t, id, svc.lastReq.RestaurantID)
	assert.Equal(t, "2024-06-03", svc.lastReq.Date)
}

func TestHandler_Handle_Errors(t *testing.T) {
	id := uuid.New().String()

	rec := serve(&fakeService{}, "/restaurants/"+id+"/reservations?date=03-06-2024")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"date"`)

	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, "/restaurants/"+id+"/reservations").Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, "/restaurants/x/reservations?date=2024-06-03").Code)
	assert.Equal(t, http.StatusInternalServerError,
		serve(&fakeService{err: errors.New("boom")}, "/restaurants/"+id+"/reservations?date=2024-06-03").Code)
}
