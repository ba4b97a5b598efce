package listbyuser

import (
	"context"
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
	"github.com/magabrotheeeer/subscription-tracker/internal/models"
)

// MockService реализует интерфейс listbyuser.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) ListByUser(ctx context.Context, requesterRole, targetUserUID string) ([]*models.Subscription, error) {
	args := m.Called(ctx, requesterRole, targetUserUID)
	subs, _ := args.Get(0).([]*models.Subscription)
	return subs, args.Error(1)
}

func TestListByUserHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	const targetUID = "6f1f64d2-40cd-4bfa-9c31-0b44b6b2b1af"

	subs := []*models.Subscription{
		{ID: "3c0d4a52-8a6f-4ff9-a9d6-5b12a62cf6fb", Name: "Netflix", UserUID: targetUID},
		{ID: "9a1b35e7-12fd-4f3e-8c57-6d20c91ad201", Name: "Spotify", UserUID: targetUID},
	}

	tests := []struct {
		name           string
		id             string
		ctxRole        string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "список подписок пользователя",
			id:      targetUID,
			ctxRole: models.RoleUser,
			setupMock: func(m *MockService) {
				m.On("ListByUser", mock.Anything, models.RoleUser, targetUID).Return(subs, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"name":"Spotify"`,
		},
		{
			name:           "некорректный id",
			id:             "42",
			ctxRole:        models.RoleUser,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"error":"Resource not found with id of 42"`,
		},
		{
			name:           "нет роли в контексте",
			id:             targetUID,
			ctxRole:        "",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"error":"unauthorized"`,
		},
		{
			name:    "доступ запрещён",
			id:      targetUID,
			ctxRole: models.RoleUser,
			setupMock: func(m *MockService) {
				m.On("ListByUser", mock.Anything, models.RoleUser, targetUID).
					Return(nil, errs.Wrap(errs.ErrForbidden, "You are not the owner"))
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"error":"You are not the owner"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, "/subscriptions/user/"+tt.id, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
			if tt.ctxRole != "" {
				ctx = context.WithValue(ctx, middlewarectx.Role, tt.ctxRole)
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
