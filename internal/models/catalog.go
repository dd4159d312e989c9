package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ItemKind distinguishes the two catalog item families. Handlers parse raw
// kind strings into this type once; everything downstream selects behavior
// by kind value.
type ItemKind string

const (
	KindIngredient ItemKind = "ingredient"
	KindEquipment  ItemKind = "equipment"
)

// ParseItemKind converts a raw string into an ItemKind. Surrounding
// whitespace and letter case are tolerated.
func ParseItemKind(raw string) (ItemKind, error) {
	switch ItemKind(strings.ToLower(strings.TrimSpace(raw))) {
	case KindIngredient:
		return KindIngredient, nil
	case KindEquipment:
		return KindEquipment, nil
	default:
		return "", fmt.Errorf("unknown item kind %q", raw)
	}
}

// Valid reports whether the kind is one of the two known variants.
func (k ItemKind) Valid() bool {
	return k == KindIngredient || k == KindEquipment
}

// CatalogItem is one common item offered as a checkbox toggle on the form.
// Rows are seeded reference data; request handling never writes them.
type CatalogItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Kind      ItemKind  `gorm:"type:varchar(16);not null;uniqueIndex:idx_catalog_kind_label" json:"kind"`
	Label     string    `gorm:"not null;uniqueIndex:idx_catalog_kind_label" json:"label"`
	Position  int       `gorm:"not null;default:0" json:"position"`
}

// TableName returns the table name for the CatalogItem model
func (CatalogItem) TableName() string {
	return "catalog_items"
}
