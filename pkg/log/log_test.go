package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithRunID(t *testing.T) {
	ctx, runID := WithRunID(context.Background())

	assert.NotEmpty(t, runID)
	assert.Equal(t, runID, GetRunID(ctx))
	assert.Empty(t, GetRunID(context.Background()))
}

func TestForContext(t *testing.T) {
	var out bytes.Buffer
	SetupTestLogger(&out)

	ctx, runID := WithRunID(context.Background())
	ForContext(ctx).WithField("skus", 3).Info("Agregação concluída")

	assert.Contains(t, out.String(), "Agregação concluída")
	assert.Contains(t, out.String(), "run_id="+runID)
	assert.Contains(t, out.String(), "skus=3")
}

func TestConfigure(t *testing.T) {
	var out bytes.Buffer

	assert.NoError(t, Configure(&out, "debug"))
	assert.Error(t, Configure(&out, "barulhento"))

	// Nível inválido cai para info
	L.Debug("não aparece")
	L.Info("aparece")
	assert.NotContains(t, out.String(), "não aparece")
	assert.Contains(t, out.String(), "aparece")
}
