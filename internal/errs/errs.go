// Package errs определяет классы ошибок бизнес-логики.
//
// Каждая ошибка сервисного слоя относится к одному из объявленных классов,
// по которому пакет response подбирает HTTP-статус. Wrap добавляет к классу
// сообщение для пользователя, сохраняя возможность проверки через errors.Is.
package errs

import "errors"

// Классы ошибок.
var (
	// ErrNotFound — запрошенный ресурс отсутствует.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate — нарушение уникальности (например, повторный email).
	ErrDuplicate = errors.New("duplicate value")
	// ErrInvalidCredentials — неверные учетные данные при входе.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrForbidden — попытка операции над чужим ресурсом.
	ErrForbidden = errors.New("forbidden")
	// ErrValidation — входные данные не прошли проверку.
	ErrValidation = errors.New("validation failed")
)

// Error связывает класс ошибки с сообщением для пользователя.
type Error struct {
	Kind    error  // Класс ошибки из объявленных выше
	Message string // Текст, возвращаемый клиенту
}

func (e *Error) Error() string { return e.Message }

// Unwrap возвращает класс ошибки, благодаря чему работает errors.Is.
func (e *Error) Unwrap() error { return e.Kind }

// Wrap создает ошибку заданного класса с сообщением для пользователя.
func Wrap(kind error, msg string) error {
	return &Error{Kind: kind, Message: msg}
}

// UserMessage возвращает сообщение для пользователя, если ошибка создана через Wrap.
func UserMessage(err error) (string, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Message, true
	}
	return "", false
}
