// file: internals/helpers/errors.go
package helper

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// ErrorKind classifies the three error families the domain services raise.
// Compliance violations are NOT errors; they are normal output.
type ErrorKind string

const (
	KindNotFound   ErrorKind = "not_found"
	KindValidation ErrorKind = "validation"
	KindInternal   ErrorKind = "internal"
)

type AppError struct {
	Kind    ErrorKind
	Message string
}

func (e *AppError) Error() string { return e.Message }

func ErrNotFound(format string, args ...any) error {
	return &AppError{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func ErrValidation(format string, args ...any) error {
	return &AppError{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func ErrInternal(format string, args ...any) error {
	return &AppError{Kind: KindInternal, Message: fmt.Sprintf(format, args...)}
}

func KindOf(err error) ErrorKind {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}

// JsonAppError maps a domain error to the standard error response shape.
func JsonAppError(c *fiber.Ctx, err error) error {
	switch KindOf(err) {
	case KindNotFound:
		return JsonError(c, fiber.StatusNotFound, err.Error())
	case KindValidation:
		return JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	default:
		return JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
}
