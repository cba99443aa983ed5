package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/vfg2006/vinmonopolet-cli/pkg/log"
)

// ExitCodeAPIFailure é usado quando --fail-on-error está ativo
const ExitCodeAPIFailure = 2

type options struct {
	failOnError bool
}

// ExitError carrega o código de saída desejado para o processo
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func (e *ExitError) ExitCode() int {
	return e.Code
}

// printResult imprime o registro decodificado ou o diagnóstico da falha.
// Falhas da API não encerram o processo, a menos que failOnError esteja ativo.
func (o *options) printResult(ctx context.Context, out io.Writer, subject, label string, payload any, err error) error {
	if err != nil {
		log.ForContext(ctx).WithError(err).Debugf("Falha ao consultar %s", subject)
		fmt.Fprintf(out, "Error fetching %s: %v\n", subject, err)

		if o.failOnError {
			return &ExitError{Code: ExitCodeAPIFailure, Err: err}
		}
		return nil
	}

	fmt.Fprintf(out, "%s: %+v\n", label, payload)
	return nil
}
