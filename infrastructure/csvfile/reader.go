package csvfile

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

const utf8BOM = "\ufeff"

// ErrMissingHeader indica arquivo sem linha de cabeçalho
var ErrMissingHeader = errors.New("missing header row")

// ErrMissingColumn indica coluna obrigatória ausente no cabeçalho
var ErrMissingColumn = errors.New("missing required column")

// Table é um CSV lido por completo, com as colunas indexadas pelo nome
type Table struct {
	Path    string
	Headers []string
	Rows    [][]string
	index   map[string]int
}

// Row é uma linha da tabela com acesso por nome de coluna
type Row struct {
	table  *Table
	Line   int // Linha no arquivo (o cabeçalho é a linha 1)
	fields []string
}

// ColumnError identifica a coluna e a linha de um valor inválido ou ausente
type ColumnError struct {
	Path   string
	Line   int
	Column string
	Err    error
}

func (e *ColumnError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s: coluna %q: %s", e.Path, e.Column, e.Err.Error())
	}
	return fmt.Sprintf("%s:%d: coluna %q: %s", e.Path, e.Line, e.Column, e.Err.Error())
}

func (e *ColumnError) Unwrap() error {
	return e.Err
}

// ReadFile abre, lê até o fim e fecha o arquivo
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer f.Close()

	return Read(path, f)
}

// Read lê um CSV com cabeçalho obrigatório. Linhas com número de campos
// diferente do cabeçalho são rejeitadas pelo encoding/csv.
func Read(path string, r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)

	headers, err := reader.Read()
	if err == io.EOF {
		return nil, errors.Wrap(ErrMissingHeader, path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "%s: erro ao ler cabeçalho", path)
	}

	headers[0] = strings.TrimPrefix(headers[0], utf8BOM)

	table := &Table{
		Path:    path,
		Headers: headers,
		index:   indexMap(headers),
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "%s: erro ao ler linha", path)
		}
		table.Rows = append(table.Rows, record)
	}

	return table, nil
}

func indexMap(headers []string) map[string]int {
	m := make(map[string]int, len(headers))
	for i, h := range headers {
		name := strings.TrimSpace(h)
		if _, exists := m[name]; !exists {
			m[name] = i
		}
	}
	return m
}

// Require verifica se todas as colunas existem no cabeçalho
func (t *Table) Require(columns ...string) error {
	for _, col := range columns {
		if _, ok := t.index[col]; !ok {
			return errors.WithStack(&ColumnError{Path: t.Path, Column: col, Err: ErrMissingColumn})
		}
	}
	return nil
}

// Each percorre as linhas em ordem, parando no primeiro erro
func (t *Table) Each(fn func(Row) error) error {
	for i, fields := range t.Rows {
		if err := fn(Row{table: t, Line: i + 2, fields: fields}); err != nil {
			return err
		}
	}
	return nil
}

// Len retorna o número de linhas de dados
func (t *Table) Len() int {
	return len(t.Rows)
}

// Get retorna o valor cru da coluna; coluna inexistente retorna vazio
func (r Row) Get(column string) string {
	i, ok := r.table.index[column]
	if !ok || i >= len(r.fields) {
		return ""
	}
	return r.fields[i]
}

// Map retorna a linha como cabeçalho -> valor
func (r Row) Map() map[string]string {
	m := make(map[string]string, len(r.table.Headers))
	for i, h := range r.table.Headers {
		if i < len(r.fields) {
			m[strings.TrimSpace(h)] = r.fields[i]
		}
	}
	return m
}

// Parse converte a coluna com fn, anotando arquivo, linha e coluna no erro
func Parse[T any](r Row, column string, fn func(string) (T, error)) (T, error) {
	v, err := fn(r.Get(column))
	if err != nil {
		var zero T
		return zero, errors.WithStack(&ColumnError{Path: r.table.Path, Line: r.Line, Column: column, Err: err})
	}
	return v, nil
}
