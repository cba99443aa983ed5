package vinmonopoletclient

import (
	"fmt"

	"github.com/pkg/errors"
)

// Tipos de falha de uma chamada à API
var (
	ErrRequestFailed    = errors.New("HTTP request failed")
	ErrNotFound         = errors.New("resource not found")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrServerError      = errors.New("server error")
	ErrUnknownStatus    = errors.New("unexpected status code")
	ErrMalformedPayload = errors.New("malformed payload")
)

// ResponseError é o erro devolvido por todas as operações do cliente.
// Kind é sempre um dos erros acima.
type ResponseError struct {
	Kind       error
	StatusCode int   // zero quando a requisição não chegou a ter resposta
	Cause      error // erro de transporte ou de decodificação
}

func (e *ResponseError) Error() string {
	switch {
	case e.Cause != nil:
		return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Cause.Error())
	case e.Kind == ErrUnknownStatus:
		return fmt.Sprintf("%s: %d", e.Kind.Error(), e.StatusCode)
	default:
		return e.Kind.Error()
	}
}

// Unwrap permite errors.Is tanto para o tipo quanto para a causa
func (e *ResponseError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

// KindOf devolve o tipo de falha de err, ou nil se err não veio do cliente
func KindOf(err error) error {
	var respErr *ResponseError
	if errors.As(err, &respErr) {
		return respErr.Kind
	}
	return nil
}

func newStatusError(kind error, statusCode int) *ResponseError {
	return &ResponseError{Kind: kind, StatusCode: statusCode}
}
