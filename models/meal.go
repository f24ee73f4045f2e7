package models

import (
	"time"

	"github.com/lib/pq"
)

// Meal belongs to exactly one Category. The FK carries ON DELETE RESTRICT
// so a referenced category can never be deleted out from under a meal,
// even if the application-level in-use check races a concurrent insert.
type Meal struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	Image       string         `gorm:"size:500;not null" json:"image"`
	Description string         `gorm:"type:text;not null" json:"description"`
	Price       int            `gorm:"not null" json:"price"` // minor currency units
	CategoryID  uint           `gorm:"not null;index" json:"category_id"`
	Category    Category       `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
	Ingredients pq.StringArray `gorm:"type:text[];not null" json:"ingredients"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// MealRow is one meal joined with its category name. CategoryName is a
// pointer: a left join keeps meals whose category row has vanished.
type MealRow struct {
	Meal
	CategoryName *string
}

type CategoryInfo struct {
	ID   uint    `json:"id"`
	Name *string `json:"name"`
}

// MealResponse duplicates the category name under two keys: "category"
// as a bare string for older clients, and "category_info" for newer ones.
type MealResponse struct {
	ID           uint         `json:"id"`
	Name         string       `json:"name"`
	Image        string       `json:"image"`
	Description  string       `json:"description"`
	Price        int          `json:"price"`
	Category     *string      `json:"category"`
	CategoryID   uint         `json:"category_id"`
	CategoryInfo CategoryInfo `json:"category_info"`
	Ingredients  []string     `json:"ingredients"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

func NewMealResponse(row MealRow) MealResponse {
	return MealResponse{
		ID:          row.ID,
		Name:        row.Name,
		Image:       row.Image,
		Description: row.Description,
		Price:       row.Price,
		Category:    row.CategoryName,
		CategoryID:  row.CategoryID,
		CategoryInfo: CategoryInfo{
			ID:   row.CategoryID,
			Name: row.CategoryName,
		},
		Ingredients: row.Ingredients,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func NewMealResponses(rows []MealRow) []MealResponse {
	out := make([]MealResponse, len(rows))
	for i, row := range rows {
		out[i] = NewMealResponse(row)
	}
	return out
}
