package loading

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/vfg2006/ecommerce-report/infrastructure/csvfile"
	"github.com/vfg2006/ecommerce-report/pkg/runErrors"
)

// Erros específicos da carga dos CSVs
var (
	ErrFileNotFound = errors.New("input file not found")
	ErrParse        = errors.New("input file could not be parsed")
)

// LoadError é um erro com contexto do arquivo que falhou
type LoadError struct {
	Err    error  // Erro base (ErrFileNotFound ou ErrParse)
	Code   string // Código de erro da execução
	File   string // Arquivo envolvido
	Line   int    // Linha do arquivo, quando aplicável
	Column string // Coluna envolvida, quando aplicável
	Cause  error  // Erro original com stack
}

func (e *LoadError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.File)
	}
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Cause.Error())
}

// Unwrap retorna o erro original para preservar o stack
func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Is permite errors.Is(err, ErrFileNotFound) e errors.Is(err, ErrParse)
func (e *LoadError) Is(target error) bool {
	return target == e.Err
}

func (e *LoadError) ErrorCode() string {
	return e.Code
}

// NewLoadError classifica o erro de leitura de um arquivo
func NewLoadError(file string, cause error) *LoadError {
	if errors.Is(cause, fs.ErrNotExist) {
		return &LoadError{
			Err:   ErrFileNotFound,
			Code:  runErrors.ErrFileNotFound,
			File:  file,
			Cause: cause,
		}
	}

	loadErr := &LoadError{
		Err:   ErrParse,
		Code:  runErrors.ErrParse,
		File:  file,
		Cause: cause,
	}

	var colErr *csvfile.ColumnError
	if errors.As(cause, &colErr) {
		loadErr.Line = colErr.Line
		loadErr.Column = colErr.Column
	}

	return loadErr
}
