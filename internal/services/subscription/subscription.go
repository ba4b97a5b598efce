// Package services содержит бизнес-логику жизненного цикла подписок:
// создание с вычислением даты списания и статуса, проверки владельца,
// отмену, удаление и выборки с кешированием.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/subscription-tracker/internal/errs"
	"github.com/magabrotheeeer/subscription-tracker/internal/lib/renewal"
	"github.com/magabrotheeeer/subscription-tracker/internal/models"
)

// upcomingWindowDays — размер окна предстоящих списаний.
const upcomingWindowDays = 30

// SubscriptionRepository определяет методы для работы с подписками в хранилище.
type SubscriptionRepository interface {
	// CreateSubscription добавляет новую подписку и возвращает созданную запись.
	CreateSubscription(ctx context.Context, sub models.Subscription) (*models.Subscription, error)
	// GetSubscription возвращает подписку по ID.
	GetSubscription(ctx context.Context, id string) (*models.Subscription, error)
	// ListSubscriptionsByUser возвращает все подписки пользователя.
	ListSubscriptionsByUser(ctx context.Context, userUID string) ([]*models.Subscription, error)
	// ListUpcomingSubscriptions возвращает активные подписки с датой списания в [from, to].
	ListUpcomingSubscriptions(ctx context.Context, userUID string, from, to time.Time) ([]*models.Subscription, error)
	// UpdateSubscriptionStatus меняет статус подписки и возвращает обновлённую запись.
	UpdateSubscriptionStatus(ctx context.Context, id, status string) (*models.Subscription, error)
	// RemoveSubscription удаляет подписку по ID и возвращает количество удалённых записей.
	RemoveSubscription(ctx context.Context, id string) (int, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// SubscriptionService реализует бизнес-логику работы с подписками, включая кеширование.
type SubscriptionService struct {
	repo  SubscriptionRepository
	cache Cache
	log   *slog.Logger
}

// NewSubscriptionService создает новый экземпляр SubscriptionService.
func NewSubscriptionService(repo SubscriptionRepository, cache Cache, log *slog.Logger) *SubscriptionService {
	return &SubscriptionService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// Create создает новую подписку для пользователя. Дата списания и начальный
// статус вычисляются один раз в момент создания, владелец — вызвавший пользователь.
func (s *SubscriptionService) Create(ctx context.Context, userUID string, req models.CreateSubscriptionRequest) (*models.Subscription, error) {
	startDate, err := time.Parse(models.DateLayout, req.StartDate)
	if err != nil {
		return nil, errs.Wrap(errs.ErrValidation, "invalid start date, expected format "+models.DateLayout)
	}
	now := time.Now().UTC()
	if startDate.After(now) {
		return nil, errs.Wrap(errs.ErrValidation, "Start Date cannot be in the future")
	}

	currency := req.Currency
	if currency == "" {
		currency = models.DefaultCurrency
	}
	frequency := req.Frequency
	if frequency == "" {
		frequency = models.FrequencyMonthly
	}

	renewalDate := renewal.Next(startDate, frequency)
	status := renewal.InitialStatus(renewalDate, now)

	sub := models.Subscription{
		Name:          req.Name,
		Price:         req.Price,
		Currency:      currency,
		Frequency:     frequency,
		Category:      req.Category,
		PaymentMethod: req.PaymentMethod,
		Status:        status,
		StartDate:     startDate,
		RenewalDate:   renewalDate,
		UserUID:       userUID,
	}

	created, err := s.repo.CreateSubscription(ctx, sub)
	if err != nil {
		return nil, err
	}

	s.log.Info("created new subscription", slog.String("id", created.ID))

	cacheKey := fmt.Sprintf("subscription:%s", created.ID)
	if err := s.cache.Set(cacheKey, created, time.Hour); err != nil {
		s.log.Warn("failed to cache subscription", slog.String("key", cacheKey), slog.Any("err", err))
	}

	return created, nil
}

// ListByUser возвращает все подписки указанного пользователя.
// Проверка доступа сравнивает роль вызывающего с UID целевого пользователя:
// так ведет себя действующий контракт API, менять его без решения продукта нельзя.
func (s *SubscriptionService) ListByUser(ctx context.Context, requesterRole, targetUserUID string) ([]*models.Subscription, error) {
	if requesterRole == targetUserUID {
		return nil, errs.Wrap(errs.ErrForbidden, "You are not the owner")
	}
	return s.repo.ListSubscriptionsByUser(ctx, targetUserUID)
}

// ListUpcoming возвращает активные подписки вызывающего пользователя,
// дата списания которых попадает в ближайшие 30 дней, включая границы окна.
func (s *SubscriptionService) ListUpcoming(ctx context.Context, userUID string) ([]*models.Subscription, error) {
	now := time.Now().UTC()
	to := now.AddDate(0, 0, upcomingWindowDays)
	return s.repo.ListUpcomingSubscriptions(ctx, userUID, now, to)
}

// Cancel переводит подписку в статус Cancelled.
// Возвращает ошибку, если подписка не найдена или принадлежит другому пользователю.
func (s *SubscriptionService) Cancel(ctx context.Context, requesterUID, id string) (*models.Subscription, error) {
	sub, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub.UserUID != requesterUID {
		return nil, errs.Wrap(errs.ErrForbidden, "You are not authorized to cancel this subscription")
	}

	updated, err := s.repo.UpdateSubscriptionStatus(ctx, id, models.StatusCancelled)
	if err != nil {
		return nil, err
	}
	s.log.Info("cancelled subscription", slog.String("id", id))

	cacheKey := fmt.Sprintf("subscription:%s", id)
	if err := s.cache.Set(cacheKey, updated, time.Hour); err != nil {
		s.log.Warn("failed to cache subscription", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return updated, nil
}

// Remove удаляет подписку и инвалидирует кеш.
// Возвращает ошибку, если подписка не найдена или принадлежит другому пользователю.
func (s *SubscriptionService) Remove(ctx context.Context, requesterUID, id string) error {
	sub, err := s.getByID(ctx, id)
	if err != nil {
		return err
	}
	if sub.UserUID != requesterUID {
		return errs.Wrap(errs.ErrForbidden, "You are not authorized to delete this subscription")
	}

	cacheKey := fmt.Sprintf("subscription:%s", id)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to remove from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}

	count, err := s.repo.RemoveSubscription(ctx, id)
	if err != nil {
		return err
	}
	if count == 0 {
		return errs.Wrap(errs.ErrNotFound, "Subscription not found")
	}
	s.log.Info("deleted subscription", slog.String("id", id))
	return nil
}

// getByID возвращает подписку по ID, используя кеш или репозиторий.
func (s *SubscriptionService) getByID(ctx context.Context, id string) (*models.Subscription, error) {
	var result *models.Subscription
	cacheKey := fmt.Sprintf("subscription:%s", id)
	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		s.log.Warn("failed to read from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	if found && result != nil {
		return result, nil
	}

	result, err = s.repo.GetSubscription(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, errs.Wrap(errs.ErrNotFound, "Subscription not found")
		}
		return nil, err
	}

	if err := s.cache.Set(cacheKey, result, time.Hour); err != nil {
		s.log.Warn("failed to add to cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return result, nil
}
