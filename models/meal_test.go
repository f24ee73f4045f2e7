package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewMealResponse(t *testing.T) {
	name := "Salatlar"
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	row := MealRow{
		Meal: Meal{
			ID:          5,
			Name:        "Achichuk",
			Image:       "https://cdn.example.com/achichuk.jpg",
			Description: "Tomato and onion salad",
			Price:       15000,
			CategoryID:  3,
			Ingredients: []string{"tomato", "onion"},
			CreatedAt:   created,
			UpdatedAt:   created,
		},
		CategoryName: &name,
	}

	resp := NewMealResponse(row)

	assert.Equal(t, uint(5), resp.ID)
	assert.Equal(t, "Achichuk", resp.Name)
	assert.Equal(t, 15000, resp.Price)
	// category name lands under both keys
	assert.Equal(t, "Salatlar", *resp.Category)
	assert.Equal(t, uint(3), resp.CategoryInfo.ID)
	assert.Equal(t, "Salatlar", *resp.CategoryInfo.Name)
	assert.Equal(t, []string{"tomato", "onion"}, resp.Ingredients)

	// input row untouched
	assert.Equal(t, "Achichuk", row.Name)
	assert.Equal(t, &name, row.CategoryName)
}

func TestNewMealResponseOrphanedCategory(t *testing.T) {
	row := MealRow{
		Meal:         Meal{ID: 1, Name: "Lagman", CategoryID: 9},
		CategoryName: nil,
	}

	resp := NewMealResponse(row)

	assert.Nil(t, resp.Category)
	assert.Nil(t, resp.CategoryInfo.Name)
	assert.Equal(t, uint(9), resp.CategoryID)
	assert.Equal(t, uint(9), resp.CategoryInfo.ID)
}

func TestNewMealResponsesKeepsOrder(t *testing.T) {
	rows := []MealRow{
		{Meal: Meal{ID: 3, Name: "newest"}},
		{Meal: Meal{ID: 2, Name: "middle"}},
		{Meal: Meal{ID: 1, Name: "oldest"}},
	}

	out := NewMealResponses(rows)

	assert.Len(t, out, 3)
	assert.Equal(t, uint(3), out[0].ID)
	assert.Equal(t, uint(1), out[2].ID)
}
