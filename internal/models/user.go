// Package models содержит доменную модель пользователя системы,
// включающую данные учётной записи, хэш пароля и даты создания и изменения.
package models

import "time"

// RoleUser — роль, назначаемая каждому пользователю при регистрации.
const RoleUser = "user"

// User представляет зарегистрированного пользователя системы.
// Хэш пароля никогда не сериализуется в JSON-ответы.
type User struct {
	UID          string    `json:"id"`    // Уникальный идентификатор пользователя
	Name         string    `json:"name"`  // Имя пользователя
	Email        string    `json:"email"` // Электронная почта (уникальная, в нижнем регистре)
	PasswordHash string    `json:"-"`     // Хэш пароля
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
