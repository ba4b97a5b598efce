package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/magabrotheeeer/subscription-tracker/internal/errs"
)

func TestRenderError_StatusMapping(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "not found",
			err:            errs.Wrap(errs.ErrNotFound, "Subscription not found"),
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"error":"Subscription not found"`,
		},
		{
			name:           "duplicate",
			err:            errs.Wrap(errs.ErrDuplicate, "User already exists with this email"),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"User already exists with this email"`,
		},
		{
			name:           "validation",
			err:            errs.Wrap(errs.ErrValidation, "Start Date cannot be in the future"),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"Start Date cannot be in the future"`,
		},
		{
			name:           "invalid credentials",
			err:            errs.Wrap(errs.ErrInvalidCredentials, "Invalid email or password"),
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"error":"Invalid email or password"`,
		},
		{
			name:           "forbidden",
			err:            errs.Wrap(errs.ErrForbidden, "You are not the owner"),
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"error":"You are not the owner"`,
		},
		{
			name:           "unknown error is masked",
			err:            errors.New("pq: connection refused"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"error":"Server Error"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/", nil)

			RenderError(w, r, tt.err)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			assert.Contains(t, w.Body.String(), `"success":false`)
		})
	}
}
