// Package upcoming реализует HTTP-обработчик списка предстоящих списаний.
//
// Параметр id в пути сохранён для совместимости контракта, но не используется:
// выборка всегда выполняется по авторизованному пользователю.
package upcoming

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/subscription-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/subscription-tracker/internal/http/response"
	"github.com/magabrotheeeer/subscription-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/subscription-tracker/internal/models"
)

type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики выборки предстоящих списаний.
type Service interface {
	ListUpcoming(ctx context.Context, userUID string) ([]*models.Subscription, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Предстоящие списания
// @Description Возвращает активные подписки текущего пользователя со списанием в ближайшие 30 дней.
// @Tags Subscriptions
// @Produce  json
// @Param id path string true "ID подписки (не используется)"
// @Success 200 {object} response.Response "Список подписок"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security BearerAuth
// @Router /subscriptions/{id}/upcoming-renewals [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.upcoming"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	subs, err := h.service.ListUpcoming(r.Context(), userUID)
	if err != nil {
		log.Error("failed to list upcoming renewals", sl.Err(err))
		response.RenderError(w, r, err)
		return
	}

	log.Info("upcoming renewals listed", slog.Int("count", len(subs)))
	render.JSON(w, r, response.OKWithData(subs))
}
