package cancel_reservation

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/reservations"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/reservations/models"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
)

type fakeService struct {
	err    error
	called uuid.UUID
}

func (f *fakeService) Cancel(_ context.Context, id uuid.UUID) (*models.ReservationResponse, error) {
	f.called = id
	if f.err != nil {
		return nil, f.err
	}
	return &models.ReservationResponse{ID: id, Status: "cancelled"}, nil
}

func serve(svc *fakeService, method, target string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/reservations/{reservationId}/cancel", NewHandler(svc, logger.Nop()).Handle).Methods(http.MethodPatch)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestHandler_Handle(t *testing.T) {
	id := uuid.New()
	svc := &fakeService{}

	rec := serve(svc, http.MethodPatch, "/reservations/"+id.String()+"/cancel")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"cancelled"`)
	assert.Equal(t, id, svc.called)
}

func TestHandler_Handle_Errors(t *testing.T) {
	target := "/reservations/" + uuid.New().String() + "/cancel"

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "not found", err: reservations.ErrReservationNotFound, status: http.StatusNotFound},
		{name: "cannot cancel", err: reservations.ErrCannotCancel, status: http.StatusBadRequest},
		{name: "internal", err: errors.New("tx failed"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, serve(&fakeService{err: tt.err}, http.MethodPatch, target).Code)
		})
	}

	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, http.MethodPatch, "/reservations/1/cancel").Code)
	assert.Equal(t, http.StatusMethodNotAllowed, serve(&fakeService{}, http.MethodGet, target).Code)
}
