package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/pantry-chef/internal/models"
)

// Default common items offered as form toggles. Seeded into the catalog
// store; deployments can extend the table without a redeploy.
var (
	DefaultCommonIngredients = []string{
		"Salt",
		"Black pepper",
		"Olive oil",
		"Butter",
		"Garlic",
		"Onion",
		"Eggs",
		"Flour",
		"Sugar",
		"Milk",
		"Rice",
		"Pasta",
	}
	DefaultCommonEquipment = []string{
		"Stove top",
		"Oven",
		"Microwave",
		"Chef's knife",
		"Cutting board",
		"Mixing bowl",
		"Frying pan",
		"Saucepan",
		"Baking sheet",
		"Colander",
	}
)

// CatalogService reads and seeds the common-items catalog
type CatalogService struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewCatalogService creates a new CatalogService instance
func NewCatalogService(db *gorm.DB, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		db:     db,
		logger: logger.Named("catalog"),
	}
}

// List returns every catalog item ordered by kind then position.
func (s *CatalogService) List(ctx context.Context) ([]models.CatalogItem, error) {
	var items []models.CatalogItem
	if err := s.db.WithContext(ctx).
		Order("kind").Order("position").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list catalog items: %w", err)
	}
	return items, nil
}

// ListKind returns the catalog items of one kind ordered by position.
func (s *CatalogService) ListKind(ctx context.Context, kind models.ItemKind) ([]models.CatalogItem, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("invalid item kind %q", kind)
	}
	var items []models.CatalogItem
	if err := s.db.WithContext(ctx).
		Where("kind = ?", kind).
		Order("position").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list %s items: %w", kind, err)
	}
	return items, nil
}

// Seed inserts the default common items. Seeding is idempotent: items
// already present (by kind and label) are left untouched.
func (s *CatalogService) Seed(ctx context.Context) error {
	seeded := 0
	for kind, labels := range map[models.ItemKind][]string{
		models.KindIngredient: DefaultCommonIngredients,
		models.KindEquipment:  DefaultCommonEquipment,
	} {
		for i, label := range labels {
			item := models.CatalogItem{}
			result := s.db.WithContext(ctx).
				Where(&models.CatalogItem{Kind: kind, Label: label}).
				Attrs(&models.CatalogItem{ID: uuid.New(), Position: i}).
				FirstOrCreate(&item)
			if result.Error != nil {
				return fmt.Errorf("failed to seed %s %q: %w", kind, label, result.Error)
			}
			if result.RowsAffected > 0 {
				seeded++
			}
		}
	}
	if seeded > 0 {
		s.logger.Info("seeded catalog defaults", zap.Int("items", seeded))
	}
	return nil
}
