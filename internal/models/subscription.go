// Package models содержит доменные структуры приложения: подписку,
// пользователя и вспомогательные типы для приёма данных из JSON-запросов.
package models

import "time"

// DateLayout — формат даты начала подписки в JSON-запросах.
const DateLayout = "2006-01-02"

// Статусы подписки. Inactive и Paused объявлены как допустимые значения,
// но ни одна операция API их не выставляет.
const (
	StatusActive    = "Active"
	StatusInactive  = "Inactive"
	StatusCancelled = "Cancelled"
	StatusPaused    = "Paused"
	StatusExpired   = "Expired"
)

// Периодичности списаний.
const (
	FrequencyDaily   = "Daily"
	FrequencyWeekly  = "Weekly"
	FrequencyMonthly = "Monthly"
	FrequencyYearly  = "Yearly"
)

// DefaultCurrency — валюта по умолчанию при создании подписки.
const DefaultCurrency = "USD"

// Subscription представляет собой основную модель подписки,
// используемую в бизнес-логике и хранилище.
// RenewalDate вычисляется один раз при создании и всегда строго позже StartDate.
// Владелец (UserUID) неизменяем после создания.
type Subscription struct {
	ID            string    `json:"id"`            // Идентификатор подписки
	Name          string    `json:"name"`          // Название сервиса
	Price         float64   `json:"price"`         // Цена за период
	Currency      string    `json:"currency"`      // Валюта
	Frequency     string    `json:"frequency"`     // Периодичность списаний
	Category      string    `json:"category"`      // Категория
	PaymentMethod string    `json:"paymentMethod"` // Способ оплаты
	Status        string    `json:"status"`        // Текущий статус
	StartDate     time.Time `json:"startDate"`     // Дата начала
	RenewalDate   time.Time `json:"renewalDate"`   // Дата следующего списания
	UserUID       string    `json:"user"`          // UID владельца
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// CreateSubscriptionRequest используется для приёма данных из JSON-запроса,
// прежде чем конвертировать их в Subscription.
// Дата начала приходит строкой в формате 2006-01-02 и парсится вручную.
type CreateSubscriptionRequest struct {
	Name          string  `json:"name" validate:"required,min=2,max=100"`
	Price         float64 `json:"price" validate:"gte=0"`
	Currency      string  `json:"currency" validate:"omitempty,oneof=USD EUR GBP INR AUD CAD QAR JPY"`
	Frequency     string  `json:"frequency" validate:"omitempty,oneof=Daily Weekly Monthly Yearly"`
	Category      string  `json:"category" validate:"required,oneof=Entertainment Education Productivity Health Finance Other"`
	PaymentMethod string  `json:"paymentMethod" validate:"required"`
	StartDate     string  `json:"startDate" validate:"required"`
}
