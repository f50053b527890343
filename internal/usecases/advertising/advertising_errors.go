package advertising

import "fmt"

// ValidationError indica entrada malformada ou incompleta; é sempre
// detectado localmente, antes de qualquer chamada à API remota.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError indica que um recurso remoto referenciado por nome não
// existe na conta do anunciante.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFoundError(format string, args ...any) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}
