package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Ошибки конфигурации
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")

	// 400 Bad Request
	ErrStatusBadRequest = fmt.Errorf("bad request")
	ErrInvalidJSON      = fmt.Errorf("invalid json body")
	ErrInvalidID        = fmt.Errorf("invalid id")
	ErrMissingFields    = fmt.Errorf("missing required fields")
	ErrNullField        = fmt.Errorf("required field cannot be null")
	ErrInvalidQuantity  = fmt.Errorf("quantity is out of range")

	// 404 Not Found
	ErrProductNotFound = fmt.Errorf("product not found")
	ErrUserNotFound    = fmt.Errorf("user not found")

	// 409 Conflict
	ErrEmailTaken   = fmt.Errorf("user with this email already exists")
	ErrProductInUse = fmt.Errorf("product is referenced by existing orders")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
