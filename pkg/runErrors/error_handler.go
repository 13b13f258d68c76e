package runErrors

import (
	"errors"
	"fmt"
	"io"

	pkgerrors "github.com/pkg/errors"
)

// Códigos de erro da execução do relatório
const (
	// Erros de carga (LOAD)
	ErrFileNotFound = "LOAD_001" // Arquivo de entrada inexistente
	ErrParse        = "LOAD_002" // Coluna ausente ou valor não conversível

	// Erros de cálculo (CALC)
	ErrDivisionByZero = "CALC_001" // Venda bruta zero; reservado, as razões viram indefinidas

	// Erros de saída (OUT)
	ErrOutput = "OUT_001" // Falha ao gravar o dashboard

	// Erros de configuração (CFG)
	ErrConfiguration = "CFG_001" // Configuração inválida

	// Erros internos (SRV)
	ErrInternal = "SRV_001" // Erro não classificado
)

// Mapeamento de códigos de erro para códigos de saída do processo
var exitCodeMap = map[string]int{
	ErrFileNotFound:   2,
	ErrParse:          3,
	ErrDivisionByZero: 4,
	ErrOutput:         5,
	ErrConfiguration:  6,
	ErrInternal:       1,
}

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// Coder é implementado pelos erros tipados que carregam um código
type Coder interface {
	ErrorCode() string
}

// RunError representa um erro de execução padronizado
type RunError struct {
	Code    string // Código do erro
	Message string // Mensagem descritiva
	Err     error  // Erro original
}

func (e *RunError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	if e.Message == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Message, e.Err.Error())
}

func (e *RunError) Unwrap() error {
	return e.Err
}

func (e *RunError) ErrorCode() string {
	return e.Code
}

// FromError envolve um erro Go em um RunError com o código informado
func FromError(err error, code string, message string) *RunError {
	return &RunError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// CodeOf retorna o código do primeiro erro da cadeia que implementa Coder
func CodeOf(err error) string {
	if err == nil {
		return ""
	}

	var coder Coder
	if errors.As(err, &coder) {
		return coder.ErrorCode()
	}

	return ErrInternal
}

// ExitCode retorna o código de saída do processo para o erro
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	status, exists := exitCodeMap[CodeOf(err)]
	if !exists {
		return exitCodeMap[ErrInternal]
	}

	return status
}

// WriteError escreve o diagnóstico no writer (com stack trace quando
// disponível) e retorna o código de saída correspondente
func WriteError(w io.Writer, err error) int {
	if err == nil {
		return 0
	}

	fmt.Fprintf(w, "erro [%s]: %s\n", CodeOf(err), err.Error())

	// O stack mais profundo aponta para a origem do erro
	var origin stackTracer
	for e := err; e != nil; e = errors.Unwrap(e) {
		if st, ok := e.(stackTracer); ok {
			origin = st
		}
	}
	if origin != nil {
		fmt.Fprintf(w, "stack trace:%+v\n", origin.StackTrace())
	}

	return ExitCode(err)
}
