// Package renewal вычисляет дату следующего списания подписки
// и её начальный статус.
package renewal

import (
	"time"

	"github.com/magabrotheeeer/subscription-tracker/internal/models"
)

// fallbackDays используется для неизвестной периодичности.
const fallbackDays = 30

// Фиксированное число дней на период. Календарная арифметика месяцев
// и годов здесь не применяется намеренно: месяц всегда 30 дней, год — 365.
var offsetDays = map[string]int{
	models.FrequencyDaily:   1,
	models.FrequencyWeekly:  7,
	models.FrequencyMonthly: 30,
	models.FrequencyYearly:  365,
}

// Next возвращает дату следующего списания: startDate плюс фиксированное
// число дней, соответствующее периодичности.
func Next(startDate time.Time, frequency string) time.Time {
	days, ok := offsetDays[frequency]
	if !ok {
		days = fallbackDays
	}
	return startDate.AddDate(0, 0, days)
}

// InitialStatus возвращает статус подписки в момент создания:
// Expired, если дата списания не позже now, иначе Active.
// Статус определяется один раз, фоновых пересчётов нет.
func InitialStatus(renewalDate, now time.Time) string {
	if !renewalDate.After(now) {
		return models.StatusExpired
	}
	return models.StatusActive
}
