package models

import (
	"time"
)

// Ingredient identity is its normalized canonical name; the alias table in
// the ingredient package folds raw variants onto one row. Rows are created
// on first sight and never deleted here.
type Ingredient struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	CanonicalName string    `gorm:"size:255;not null;uniqueIndex" json:"canonical_name"`
	CreatedAt     time.Time `json:"created_at"`
}

func (Ingredient) TableName() string {
	return "ingredients"
}

// MealIngredient joins a meal to an ingredient with an optional quantity.
type MealIngredient struct {
	ID           uint       `gorm:"primarykey" json:"-"`
	MealID       uint       `gorm:"not null;index" json:"-"`
	IngredientID uint       `gorm:"not null;index" json:"-"`
	Quantity     *float64   `json:"quantity"`
	Unit         *string    `json:"unit"`
	Ingredient   Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient"`
}

func (MealIngredient) TableName() string {
	return "meal_ingredients"
}
