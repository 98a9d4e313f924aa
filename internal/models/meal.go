package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	pgvector "github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

// JSONBStringArray is a custom type for handling string arrays in JSONB
type JSONBStringArray []string

// Value implements the driver.Valuer interface
func (a JSONBStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONBStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBStringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// Meal is a catalog entry populated by the document-ingestion pipeline or
// the meals API. IDs are serial so cursor pagination can order by them.
// Nullable nutrient fields stay pointers: null and zero mean different
// things to the agent layer.
type Meal struct {
	ID             uint             `gorm:"primarykey" json:"id"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
	DeletedAt      gorm.DeletedAt   `gorm:"index" json:"-"`
	Name           string           `gorm:"size:255;not null;index" json:"name"`
	Description    string           `gorm:"type:text" json:"description"`
	MealType       string           `gorm:"size:20;index" json:"meal_type"`
	Calories       int              `json:"calories"`
	ProteinG       *float64         `json:"protein_g"`
	CarbsG         *float64         `json:"carbs_g"`
	FatG           *float64         `json:"fat_g"`
	FiberG         *float64         `json:"fiber_g"`
	PrepTimeMins   *int             `json:"prep_time_mins"`
	Servings       int              `gorm:"default:1" json:"servings"`
	Tags           JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"tags"`
	SourceDocument string           `gorm:"size:255" json:"source_document,omitempty"`
	Embedding      pgvector.Vector  `gorm:"type:vector(1536)" json:"-"`
	Ingredients    []MealIngredient `gorm:"foreignKey:MealID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"ingredients"`
}

// Meal types recognized by the planner.
const (
	MealTypeBreakfast = "breakfast"
	MealTypeLunch     = "lunch"
	MealTypeDinner    = "dinner"
	MealTypeSnack     = "snack"
)

// IngredientNames returns the canonical names of the meal's ingredients.
func (m Meal) IngredientNames() []string {
	names := make([]string, 0, len(m.Ingredients))
	for _, mi := range m.Ingredients {
		if mi.Ingredient.CanonicalName != "" {
			names = append(names, mi.Ingredient.CanonicalName)
		}
	}
	return names
}

// IngredientLabels returns human-readable "name (quantity unit)" entries for
// plan output.
func (m Meal) IngredientLabels() []string {
	labels := make([]string, 0, len(m.Ingredients))
	for _, mi := range m.Ingredients {
		if mi.Ingredient.CanonicalName != "" {
			labels = append(labels, mi.Label())
		}
	}
	return labels
}

// Label formats one ingredient line, omitting quantity and unit when absent.
func (mi MealIngredient) Label() string {
	name := mi.Ingredient.CanonicalName
	switch {
	case mi.Quantity == nil && mi.Unit == nil:
		return name
	case mi.Unit != nil && mi.Quantity != nil:
		return fmt.Sprintf("%s (%v %s)", name, *mi.Quantity, *mi.Unit)
	case mi.Unit != nil:
		return fmt.Sprintf("%s (%s)", name, *mi.Unit)
	default:
		return fmt.Sprintf("%s (%v)", name, *mi.Quantity)
	}
}
