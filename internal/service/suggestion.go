package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Field names accepted from the suggestion form.
const (
	FieldIngredients = "ingredientsList"
	FieldEquipment   = "equipmentList"
	FieldAdults      = "numAdults"
	FieldChildren    = "numChildren"
	FieldMeal        = "mealName"
)

const defaultMeal = "dinner"

// Rejection taxonomy. These never reach the HTTP response body; they exist
// for logs and tests.
var (
	ErrMissingIngredients    = errors.New("ingredients list is empty")
	ErrMissingEquipment      = errors.New("equipment list is empty")
	ErrInsufficientHeadcount = errors.New("household must include at least one person")
)

// CompletionResult carries the generated recipe text. A nil result means no
// suggestion was produced, whether from rejected input or upstream failure.
type CompletionResult struct {
	GeneratedText string
}

// SuggestionService validates raw form input, builds the prompt, and makes
// the single outbound completion call per valid submission.
type SuggestionService struct {
	client ICompletionClient
	logger *zap.Logger
	debug  bool
}

// NewSuggestionService creates a new SuggestionService instance
func NewSuggestionService(client ICompletionClient, logger *zap.Logger, debug bool) *SuggestionService {
	return &SuggestionService{
		client: client,
		logger: logger.Named("suggestion"),
		debug:  debug,
	}
}

// Handle processes one suggestion request end to end. Rejected input and
// upstream failures both collapse to nil; an upstream failure is logged
// exactly once. No error escapes to the caller.
func (s *SuggestionService) Handle(ctx context.Context, raw map[string]string) *CompletionResult {
	params, err := coerceParams(raw)
	if err != nil {
		s.logger.Debug("suggestion request rejected", zap.Error(err))
		return nil
	}

	instruction := BuildPrompt(params)
	if s.debug {
		s.logger.Info("built prompt", zap.String("instruction", instruction))
	}

	text, err := s.client.Complete(ctx, SystemRole(), instruction)
	if err != nil {
		s.logger.Error("completion call failed", zap.Error(err))
		return nil
	}

	return &CompletionResult{GeneratedText: text}
}

// coerceParams extracts and coerces the raw form fields, then enforces the
// request invariants: both lists non-empty and at least one person fed.
func coerceParams(raw map[string]string) (RecipeRequestParams, error) {
	params := RecipeRequestParams{
		IngredientsList: strings.TrimSpace(raw[FieldIngredients]),
		EquipmentList:   strings.TrimSpace(raw[FieldEquipment]),
		NumAdults:       parseCountOrZero(raw[FieldAdults]),
		NumChildren:     parseCountOrZero(raw[FieldChildren]),
		Meal:            strings.TrimSpace(raw[FieldMeal]),
	}
	if params.Meal == "" {
		params.Meal = defaultMeal
	}

	switch {
	case params.IngredientsList == "":
		return RecipeRequestParams{}, ErrMissingIngredients
	case params.EquipmentList == "":
		return RecipeRequestParams{}, ErrMissingEquipment
	case params.NumAdults+params.NumChildren < 1:
		return RecipeRequestParams{}, ErrInsufficientHeadcount
	}

	return params, nil
}

// parseCountOrZero converts raw form text to a non-negative count. Anything
// that fails to parse, or parses negative, yields the documented default 0.
func parseCountOrZero(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
