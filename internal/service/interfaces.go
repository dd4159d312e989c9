package service

import (
	"context"

	"github.com/pageza/pantry-chef/internal/models"
)

// ICompletionClient is the outbound seam to the chat-completion provider.
// The production implementation is OpenAIClient; tests substitute mocks.
type ICompletionClient interface {
	Complete(ctx context.Context, systemMsg, userMsg string) (string, error)
}

// ISuggestionService defines the suggestion orchestration operation
type ISuggestionService interface {
	Handle(ctx context.Context, raw map[string]string) *CompletionResult
}

// ICatalogService defines the common-items catalog operations
type ICatalogService interface {
	List(ctx context.Context) ([]models.CatalogItem, error)
	ListKind(ctx context.Context, kind models.ItemKind) ([]models.CatalogItem, error)
	Seed(ctx context.Context) error
}
