package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/magabrotheeeer/subscription-tracker/internal/errs"
	"github.com/magabrotheeeer/subscription-tracker/internal/models"
)

// CreateSubscription вставляет новую запись подписки и возвращает её с
// заполненными идентификатором и временными метками.
func (s *Storage) CreateSubscription(ctx context.Context, sub models.Subscription) (*models.Subscription, error) {
	const op = "storage.CreateSubscription"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO subscriptions (name, price, currency, frequency, category,
			      payment_method, status, start_date, renewal_date, user_uid)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			  RETURNING id, created_at, updated_at`
	created := sub
	if err := s.DB.QueryRowContext(ctx, query,
		sub.Name, sub.Price, sub.Currency, sub.Frequency, sub.Category,
		sub.PaymentMethod, sub.Status, sub.StartDate, sub.RenewalDate,
		sub.UserUID).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &created, nil
}

// GetSubscription возвращает данные подписки по её ID.
func (s *Storage) GetSubscription(ctx context.Context, id string) (*models.Subscription, error) {
	const op = "storage.GetSubscription"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, price, currency, frequency, category, payment_method,
			      status, start_date, renewal_date, user_uid, created_at, updated_at
			  FROM subscriptions WHERE id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)

	var result models.Subscription
	if err := row.Scan(&result.ID, &result.Name, &result.Price, &result.Currency,
		&result.Frequency, &result.Category, &result.PaymentMethod, &result.Status,
		&result.StartDate, &result.RenewalDate, &result.UserUID,
		&result.CreatedAt, &result.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// ListSubscriptionsByUser возвращает список всех подписок пользователя.
func (s *Storage) ListSubscriptionsByUser(ctx context.Context, userUID string) ([]*models.Subscription, error) {
	const op = "storage.ListSubscriptionsByUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, price, currency, frequency, category, payment_method,
			      status, start_date, renewal_date, user_uid, created_at, updated_at
			  FROM subscriptions
			  WHERE user_uid = $1
			  ORDER BY created_at`
	rows, err := s.DB.QueryContext(ctx, query, userUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Subscription
	for rows.Next() {
		var item models.Subscription
		if err := rows.Scan(&item.ID, &item.Name, &item.Price, &item.Currency,
			&item.Frequency, &item.Category, &item.PaymentMethod, &item.Status,
			&item.StartDate, &item.RenewalDate, &item.UserUID,
			&item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ListUpcomingSubscriptions возвращает активные подписки пользователя,
// дата списания которых попадает в интервал [from, to] включительно.
func (s *Storage) ListUpcomingSubscriptions(ctx context.Context, userUID string, from, to time.Time) ([]*models.Subscription, error) {
	const op = "storage.ListUpcomingSubscriptions"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, price, currency, frequency, category, payment_method,
			      status, start_date, renewal_date, user_uid, created_at, updated_at
			  FROM subscriptions
			  WHERE user_uid = $1
			    AND status = $2
			    AND renewal_date >= $3
			    AND renewal_date <= $4
			  ORDER BY renewal_date`
	rows, err := s.DB.QueryContext(ctx, query, userUID, models.StatusActive, from, to)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Subscription
	for rows.Next() {
		var item models.Subscription
		if err := rows.Scan(&item.ID, &item.Name, &item.Price, &item.Currency,
			&item.Frequency, &item.Category, &item.PaymentMethod, &item.Status,
			&item.StartDate, &item.RenewalDate, &item.UserUID,
			&item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateSubscriptionStatus меняет статус подписки и возвращает обновлённую запись.
func (s *Storage) UpdateSubscriptionStatus(ctx context.Context, id, status string) (*models.Subscription, error) {
	const op = "storage.UpdateSubscriptionStatus"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE subscriptions
			  SET status = $1, updated_at = now()
			  WHERE id = $2
			  RETURNING id, name, price, currency, frequency, category, payment_method,
			      status, start_date, renewal_date, user_uid, created_at, updated_at`
	row := s.DB.QueryRowContext(ctx, query, status, id)

	var result models.Subscription
	if err := row.Scan(&result.ID, &result.Name, &result.Price, &result.Currency,
		&result.Frequency, &result.Category, &result.PaymentMethod, &result.Status,
		&result.StartDate, &result.RenewalDate, &result.UserUID,
		&result.CreatedAt, &result.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// RemoveSubscription удаляет подписку по ID и возвращает количество удалённых строк.
func (s *Storage) RemoveSubscription(ctx context.Context, id string) (int, error) {
	const op = "storage.RemoveSubscription"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM subscriptions WHERE id = $1`
	result, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}
