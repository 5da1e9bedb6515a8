// Package apperror описывает таксономию ошибок сервиса и их отображение в HTTP-ответ.
//
// Любой слой поднимает *Error нужного вида в точке обнаружения, ошибка проходит
// наверх без изменений, а граница (HTTP) вызывает Map ровно один раз.
package apperror

import (
	"errors"
	"fmt"
	"strings"
)

// Kind вид ошибки
type Kind int

const (
	KindUnhandled Kind = iota
	KindNotFound
	KindAlreadyExists
	KindUnavailable
	KindInvalidArgument
	KindValidationFailed
	KindRouteNotFound
	KindUnsupportedMediaType
	KindUnsupportedMethod
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindAlreadyExists:
		return "already_exists"
	case KindUnavailable:
		return "unavailable"
	case KindInvalidArgument:
		return "invalid_argument"
	case KindValidationFailed:
		return "validation_failed"
	case KindRouteNotFound:
		return "route_not_found"
	case KindUnsupportedMediaType:
		return "unsupported_media_type"
	case KindUnsupportedMethod:
		return "unsupported_method"
	default:
		return "unhandled"
	}
}

// Violation нарушение одного правила валидации
type Violation struct {
	Field   string
	Message string
}

func (v Violation) String() string {
	if v.Field == "" {
		return v.Message
	}
	return v.Field + ": " + v.Message
}

// Error типизированная ошибка сервиса
type Error struct {
	Kind       Kind
	Message    string
	Violations []Violation
	Err        error
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Kind == KindValidationFailed && len(e.Violations) > 0 {
		msg = JoinViolations(e.Violations)
	}
	if e.Err != nil {
		if msg == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NotFound запрошенный ресурс отсутствует
func NotFound(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// AlreadyExists конфликт с существующим ресурсом
func AlreadyExists(format string, args ...interface{}) *Error {
	return &Error{Kind: KindAlreadyExists, Message: fmt.Sprintf(format, args...)}
}

// Unavailable внешняя зависимость временно недоступна
func Unavailable(cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: KindUnavailable, Message: fmt.Sprintf(format, args...), Err: cause}
}

// InvalidArgument некорректный аргумент запроса.
// Пустое сообщение отображается как InvalidRequestArgument.
func InvalidArgument(cause error, msg string) *Error {
	return &Error{Kind: KindInvalidArgument, Message: msg, Err: cause}
}

// InvalidArgumentf как InvalidArgument, сообщение форматируется через fmt.Sprintf
func InvalidArgumentf(cause error, format string, args ...interface{}) *Error {
	return InvalidArgument(cause, fmt.Sprintf(format, args...))
}

// Validation одно или несколько нарушений правил на уровне полей
func Validation(violations ...Violation) *Error {
	return &Error{Kind: KindValidationFailed, Violations: violations}
}

// RouteNotFound для URI не найден обработчик
func RouteNotFound(method, path string) *Error {
	return &Error{Kind: KindRouteNotFound, Message: fmt.Sprintf("No endpoint %s %s.", method, path)}
}

// UnsupportedMediaType неподдерживаемый Content-Type
func UnsupportedMediaType(contentType string) *Error {
	return &Error{Kind: KindUnsupportedMediaType, Message: fmt.Sprintf("Content-Type '%s' is not supported", contentType)}
}

// UnsupportedMethod неподдерживаемый HTTP метод
func UnsupportedMethod(method string) *Error {
	return &Error{Kind: KindUnsupportedMethod, Message: fmt.Sprintf("Request method '%s' is not supported", method)}
}

// KindOf возвращает вид первой *Error в цепочке, иначе KindUnhandled
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnhandled
}

// JoinViolations склеивает пары "поле: сообщение" через ", "
func JoinViolations(violations []Violation) string {
	parts := make([]string, 0, len(violations))
	for _, v := range violations {
		parts = append(parts, v.String())
	}
	return strings.Join(parts, ", ")
}
