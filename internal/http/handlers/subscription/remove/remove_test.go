package remove

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/subscription-tracker/internal/errs"
	"github.com/magabrotheeeer/subscription-tracker/internal/http/middlewarectx"
)

// MockService реализует интерфейс remove.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Remove(ctx context.Context, requesterUID, id string) error {
	args := m.Called(ctx, requesterUID, id)
	return args.Error(0)
}

func TestRemoveHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	const (
		userUID = "6f1f64d2-40cd-4bfa-9c31-0b44b6b2b1af"
		subID   = "3c0d4a52-8a6f-4ff9-a9d6-5b12a62cf6fb"
	)

	tests := []struct {
		name           string
		id             string
		ctxUID         string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "успешное удаление",
			id:     subID,
			ctxUID: userUID,
			setupMock: func(m *MockService) {
				m.On("Remove", mock.Anything, userUID, subID).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"message":"Subscription deleted successfully"`,
		},
		{
			name:           "некорректный id",
			id:             "abc",
			ctxUID:         userUID,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"error":"Resource not found with id of abc"`,
		},
		{
			name:           "нет пользователя в контексте",
			id:             subID,
			ctxUID:         "",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"error":"unauthorized"`,
		},
		{
			name:   "чужая подписка",
			id:     subID,
			ctxUID: userUID,
			setupMock: func(m *MockService) {
				m.On("Remove", mock.Anything, userUID, subID).
					Return(errs.Wrap(errs.ErrForbidden, "You are not authorized to delete this subscription"))
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"error":"You are not authorized to delete this subscription"`,
		},
		{
			name:   "подписка не найдена",
			id:     subID,
			ctxUID: userUID,
			setupMock: func(m *MockService) {
				m.On("Remove", mock.Anything, userUID, subID).
					Return(errs.Wrap(errs.ErrNotFound, "Subscription not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"error":"Subscription not found"`,
		},
		{
			name:   "ошибка сервиса",
			id:     subID,
			ctxUID: userUID,
			setupMock: func(m *MockService) {
				m.On("Remove", mock.Anything, userUID, subID).Return(errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"error":"Server Error"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodDelete, "/subscriptions/"+tt.id, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
			if tt.ctxUID != "" {
				ctx = context.WithValue(ctx, middlewarectx.UserUID, tt.ctxUID)
			}
			req = req.WithContext(ctx)

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
