package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/Temur01/restaurant-server/models"
	"github.com/Temur01/restaurant-server/repositories"
	"github.com/Temur01/restaurant-server/storage"

	"github.com/gin-gonic/gin"
)

type MealProvider interface {
	GetAll() ([]models.MealRow, error)
	GetByID(id uint) (*models.MealRow, error)
	Create(meal *models.Meal) error
	Update(id uint, meal *models.Meal) (*models.Meal, error)
	Delete(id uint) error
}

type MealController struct {
	repo       MealProvider
	uploads    storage.ImageStorage
	production bool
}

func NewMealController(repo MealProvider, uploads storage.ImageStorage, production bool) *MealController {
	return &MealController{repo: repo, uploads: uploads, production: production}
}

type MealInput struct {
	Name        string          `json:"name"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	Price       int             `json:"price"`
	CategoryID  uint            `json:"category_id"`
	Ingredients json.RawMessage `json:"ingredients"`
}

// List godoc
// @Summary     List all meals with their category names
// @Tags        meals
// @Produce     json
// @Success     200 {object} map[string]interface{}
// @Router      /meals [get]
func (ctl *MealController) List(c *gin.Context) {
	rows, err := ctl.repo.GetAll()
	if err != nil {
		serverError(c, err, ctl.production)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "meals": models.NewMealResponses(rows)})
}

// Get godoc
// @Summary     Get a meal by id
// @Tags        meals
// @Produce     json
// @Param       id path int true "Meal ID"
// @Success     200 {object} map[string]interface{}
// @Failure     404 {object} map[string]interface{}
// @Router      /meals/{id} [get]
func (ctl *MealController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	row, err := ctl.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrMealNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Meal not found"})
			return
		}
		serverError(c, err, ctl.production)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "meal": models.NewMealResponse(*row)})
}

// Create godoc
// @Summary     Create a meal
// @Tags        admin-meals
// @Accept      json
// @Accept      mpfd
// @Produce     json
// @Security    BearerAuth
// @Param       meal body MealInput true "Meal"
// @Success     201 {object} map[string]interface{}
// @Failure     400 {object} map[string]interface{}
// @Router      /admin/meals [post]
func (ctl *MealController) Create(c *gin.Context) {
	meal, ok := ctl.bindMeal(c)
	if !ok {
		return
	}

	if err := ctl.repo.Create(meal); err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Category not found"})
			return
		}
		serverError(c, err, ctl.production)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Meal created successfully",
		"meal":    meal,
	})
}

// Update godoc
// @Summary     Update a meal (all fields required, no partial update)
// @Tags        admin-meals
// @Accept      json
// @Accept      mpfd
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Meal ID"
// @Param       meal body MealInput true "Meal"
// @Success     200 {object} map[string]interface{}
// @Failure     400 {object} map[string]interface{}
// @Failure     404 {object} map[string]interface{}
// @Router      /admin/meals/{id} [put]
func (ctl *MealController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	meal, ok := ctl.bindMeal(c)
	if !ok {
		return
	}

	updated, err := ctl.repo.Update(id, meal)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrMealNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Meal not found"})
		case errors.Is(err, repositories.ErrCategoryNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Category not found"})
		default:
			serverError(c, err, ctl.production)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Meal updated successfully",
		"meal":    updated,
	})
}

// Delete godoc
// @Summary     Delete a meal
// @Tags        admin-meals
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Meal ID"
// @Success     200 {object} map[string]interface{}
// @Failure     404 {object} map[string]interface{}
// @Router      /admin/meals/{id} [delete]
func (ctl *MealController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := ctl.repo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrMealNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Meal not found"})
			return
		}
		serverError(c, err, ctl.production)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Meal deleted successfully"})
}

// bindMeal accepts either a JSON body with an image URL or a multipart
// form with an uploaded image file. On any validation failure it writes
// the 400 itself and returns false.
func (ctl *MealController) bindMeal(c *gin.Context) (*models.Meal, bool) {
	var (
		meal        models.Meal
		rawIngr     json.RawMessage
		ingredients []string
	)

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		meal.Name = c.PostForm("name")
		meal.Image = c.PostForm("image")
		meal.Description = c.PostForm("description")
		meal.Price, _ = strconv.Atoi(c.PostForm("price"))
		categoryID, _ := strconv.ParseUint(c.PostForm("category_id"), 10, 32)
		meal.CategoryID = uint(categoryID)
		rawIngr = json.RawMessage(c.PostForm("ingredients"))

		if file, err := c.FormFile("image"); err == nil {
			url, err := ctl.uploads.Save(c.Request.Context(), file)
			if err != nil {
				serverError(c, err, ctl.production)
				return nil, false
			}
			meal.Image = url
		}
	} else {
		var input MealInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
			return nil, false
		}
		meal.Name = input.Name
		meal.Image = input.Image
		meal.Description = input.Description
		meal.Price = input.Price
		meal.CategoryID = input.CategoryID
		rawIngr = input.Ingredients
	}

	if len(rawIngr) > 0 {
		var err error
		ingredients, err = parseIngredients(rawIngr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Ingredients are in the wrong format"})
			return nil, false
		}
	}

	if meal.Name == "" || meal.Image == "" || meal.Description == "" ||
		meal.Price == 0 || meal.CategoryID == 0 || len(ingredients) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
		return nil, false
	}

	meal.Ingredients = ingredients
	return &meal, true
}

// parseIngredients accepts a JSON array of strings, or the same array
// serialized once more into a JSON string (the admin panel sends the
// latter with multipart forms).
func parseIngredients(raw json.RawMessage) ([]string, error) {
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}

	var nested string
	if err := json.Unmarshal(raw, &nested); err == nil {
		if err := json.Unmarshal([]byte(nested), &list); err == nil {
			return list, nil
		}
	}

	return nil, errors.New("malformed ingredients")
}
