package create

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/subscription-tracker/internal/errs"
	"github.com/magabrotheeeer/subscription-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/subscription-tracker/internal/models"
)

// MockService реализует интерфейс create.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, userUID string, req models.CreateSubscriptionRequest) (*models.Subscription, error) {
	args := m.Called(ctx, userUID, req)
	sub, _ := args.Get(0).(*models.Subscription)
	return sub, args.Error(1)
}

func TestCreateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	const userUID = "6f1f64d2-40cd-4bfa-9c31-0b44b6b2b1af"

	created := &models.Subscription{
		ID:      "3c0d4a52-8a6f-4ff9-a9d6-5b12a62cf6fb",
		Name:    "Netflix",
		Status:  models.StatusActive,
		UserUID: userUID,
	}

	tests := []struct {
		name           string
		body           string
		ctxUID         string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "успешное создание",
			body:   `{"name":"Netflix","price":15.99,"currency":"USD","frequency":"Monthly","category":"Entertainment","paymentMethod":"card","startDate":"2024-01-01"}`,
			ctxUID: userUID,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, userUID, mock.AnythingOfType("models.CreateSubscriptionRequest")).
					Return(created, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"name":"Netflix"`,
		},
		{
			name:           "битый json",
			body:           `{"name":`,
			ctxUID:         userUID,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"invalid request body"`,
		},
		{
			name:           "пустое имя",
			body:           `{"price":10,"category":"Other","paymentMethod":"card","startDate":"2024-01-01"}`,
			ctxUID:         userUID,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `field Name is a required field`,
		},
		{
			name:           "недопустимая категория",
			body:           `{"name":"Netflix","price":10,"category":"Games","paymentMethod":"card","startDate":"2024-01-01"}`,
			ctxUID:         userUID,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `field Category must be one of`,
		},
		{
			name:           "нет пользователя в контексте",
			body:           `{"name":"Netflix","price":10,"category":"Other","paymentMethod":"card","startDate":"2024-01-01"}`,
			ctxUID:         "",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"error":"unauthorized"`,
		},
		{
			name:   "дата начала в будущем",
			body:   `{"name":"Netflix","price":10,"category":"Other","paymentMethod":"card","startDate":"2099-01-01"}`,
			ctxUID: userUID,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, userUID, mock.AnythingOfType("models.CreateSubscriptionRequest")).
					Return(nil, errs.Wrap(errs.ErrValidation, "Start Date cannot be in the future"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"Start Date cannot be in the future"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/subscriptions", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			if tt.ctxUID != "" {
				req = req.WithContext(context.WithValue(req.Context(), middlewarectx.UserUID, tt.ctxUID))
			}

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
