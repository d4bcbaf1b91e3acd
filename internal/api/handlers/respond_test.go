package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	tests := []struct {
		name    string
		respond func(w http.ResponseWriter)
		status  int
		message string
	}{
		{name: "bad request", respond: func(w http.ResponseWriter) { RespondBadRequest(w, "плохо") }, status: http.StatusBadRequest, message: "плохо"},
		{name: "not found", respond: func(w http.ResponseWriter) { RespondNotFound(w, "нет") }, status: http.StatusNotFound, message: "нет"},
		{name: "unprocessable", respond: func(w http.ResponseWriter) { RespondUnprocessable(w, "настройки") }, status: http.StatusUnprocessableEntity, message: "настройки"},
		{name: "internal", respond: RespondInternalError, status: http.StatusInternalServerError, message: msgInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.respond(rec)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.message, body.Error)
			assert.Nil(t, body.Fields)
		})
	}
}

func TestRespondValidationError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondValidationError(rec, map[string]string{"date": "обязательное поле"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"ошибка валидации","fields":{"date":"обязательное поле"}}`, rec.Body.String())
}

func TestRespondJSON_NilBody(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, http.StatusNoContent, nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}
