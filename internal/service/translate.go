package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/dangerclosesec/cpp2py/internal/config"
	"github.com/dangerclosesec/cpp2py/internal/domain"
	"github.com/dangerclosesec/cpp2py/transpile/model"
	"github.com/dangerclosesec/cpp2py/transpile/parser"
)

// TranslateService validates translation requests and runs the parser.
// It holds no per-request state; concurrent calls are safe.
type TranslateService struct {
	config   *config.Config
	validate *validator.Validate
}

func NewTranslateService(config *config.Config) *TranslateService {
	return &TranslateService{
		config:   config,
		validate: validator.New(),
	}
}

type TranslateInput struct {
	Source string `json:"source" validate:"required"`
}

type TranslateOutput struct {
	// ID identifies this translation in logs and API responses.
	ID       string             `json:"id"`
	Python   string             `json:"python"`
	Warnings []model.Diagnostic `json:"warnings,omitempty"`
}

// Translate runs one complete source text through the translator.
// Lexical warnings are logged and returned with the output; a syntax
// error is mapped to domain.ErrSyntax with no partial output.
func (s *TranslateService) Translate(ctx context.Context, input TranslateInput) (*TranslateOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if len(input.Source) > s.config.Translate.MaxSourceBytes {
		return nil, domain.ErrSourceTooLarge
	}

	id := uuid.New().String()

	python, warnings, err := parser.Translate(input.Source)
	for _, warning := range warnings {
		slog.WarnContext(ctx, "lexical diagnostic",
			"translationID", id,
			"message", warning.Message,
			"line", warning.Line,
			"column", warning.Column,
		)
	}
	if err != nil {
		var synErr *parser.SyntaxError
		if errors.As(err, &synErr) {
			return nil, fmt.Errorf("%w: %s", domain.ErrSyntax, synErr.Error())
		}
		return nil, err
	}

	return &TranslateOutput{
		ID:       id,
		Python:   python,
		Warnings: warnings,
	}, nil
}
