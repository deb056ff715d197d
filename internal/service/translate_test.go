package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dangerclosesec/cpp2py/internal/config"
	"github.com/dangerclosesec/cpp2py/internal/domain"
)

func newTestService() *TranslateService {
	return NewTranslateService(config.Load())
}

func TestTranslateServiceSuccess(t *testing.T) {
	svc := newTestService()

	output, err := svc.Translate(context.Background(), TranslateInput{Source: "int x = 5;"})
	require.NoError(t, err)

	assert.Equal(t, "x = 5  # int in C++\n", output.Python)
	assert.NotEmpty(t, output.ID)
	assert.Empty(t, output.Warnings)
}

func TestTranslateServiceReturnsLexWarnings(t *testing.T) {
	svc := newTestService()

	output, err := svc.Translate(context.Background(), TranslateInput{Source: "#include <iostream>"})
	require.NoError(t, err)

	require.Len(t, output.Warnings, 1)
	assert.Contains(t, output.Warnings[0].Message, "illegal character")
}

func TestTranslateServiceRejectsEmptySource(t *testing.T) {
	svc := newTestService()

	_, err := svc.Translate(context.Background(), TranslateInput{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTranslateServiceRejectsOversizedSource(t *testing.T) {
	cfg := config.Load()
	cfg.Translate.MaxSourceBytes = 8
	svc := NewTranslateService(cfg)

	_, err := svc.Translate(context.Background(), TranslateInput{Source: strings.Repeat("int x;\n", 10)})
	assert.ErrorIs(t, err, domain.ErrSourceTooLarge)
}

func TestTranslateServiceMapsSyntaxErrors(t *testing.T) {
	svc := newTestService()

	_, err := svc.Translate(context.Background(), TranslateInput{Source: "int *p;"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSyntax)
	assert.Contains(t, err.Error(), "line 1")
}

func TestTranslateServiceUniqueIDs(t *testing.T) {
	svc := newTestService()

	first, err := svc.Translate(context.Background(), TranslateInput{Source: "int x;"})
	require.NoError(t, err)
	second, err := svc.Translate(context.Background(), TranslateInput{Source: "int x;"})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}
