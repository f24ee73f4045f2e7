package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Temur01/restaurant-server/models"
	"github.com/Temur01/restaurant-server/repositories"

	"github.com/gin-gonic/gin"
)

type CategoryProvider interface {
	GetAll() ([]models.Category, error)
	GetByID(id uint) (*models.Category, error)
	Create(name string) (*models.Category, error)
	Update(id uint, name string) (*models.Category, error)
	Delete(id uint) error
}

type CategoryController struct {
	repo       CategoryProvider
	production bool
}

func NewCategoryController(repo CategoryProvider, production bool) *CategoryController {
	return &CategoryController{repo: repo, production: production}
}

type CategoryInput struct {
	Name string `json:"name"`
}

// List godoc
// @Summary     List all categories
// @Tags        categories
// @Produce     json
// @Success     200 {object} map[string]interface{}
// @Router      /categories [get]
func (ctl *CategoryController) List(c *gin.Context) {
	categories, err := ctl.repo.GetAll()
	if err != nil {
		// keep the menu browsable while the database is down
		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"categories": sampleCategories(),
			"note":       "Sample data - database connection failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "categories": categories})
}

// Get godoc
// @Summary     Get a category by id
// @Tags        categories
// @Produce     json
// @Param       id path int true "Category ID"
// @Success     200 {object} map[string]interface{}
// @Failure     404 {object} map[string]interface{}
// @Router      /categories/{id} [get]
func (ctl *CategoryController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	category, err := ctl.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
			return
		}
		serverError(c, err, ctl.production)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "category": category})
}

// Create godoc
// @Summary     Create a category
// @Tags        admin-categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       category body CategoryInput true "Category"
// @Success     201 {object} map[string]interface{}
// @Failure     400 {object} map[string]interface{}
// @Router      /admin/categories [post]
func (ctl *CategoryController) Create(c *gin.Context) {
	var input CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Category name is required"})
		return
	}

	category, err := ctl.repo.Create(input.Name)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateName) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "A category with this name already exists"})
			return
		}
		serverError(c, err, ctl.production)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"message":  "Category created successfully",
		"category": category,
	})
}

// Update godoc
// @Summary     Update a category
// @Tags        admin-categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Category ID"
// @Param       category body CategoryInput true "Category"
// @Success     200 {object} map[string]interface{}
// @Failure     400 {object} map[string]interface{}
// @Failure     404 {object} map[string]interface{}
// @Router      /admin/categories/{id} [put]
func (ctl *CategoryController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Category name is required"})
		return
	}

	category, err := ctl.repo.Update(id, input.Name)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrCategoryNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
		case errors.Is(err, repositories.ErrDuplicateName):
			c.JSON(http.StatusBadRequest, gin.H{"message": "A category with this name already exists"})
		default:
			serverError(c, err, ctl.production)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Category updated successfully",
		"category": category,
	})
}

// Delete godoc
// @Summary     Delete a category
// @Tags        admin-categories
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Category ID"
// @Success     200 {object} map[string]interface{}
// @Failure     400 {object} map[string]interface{}
// @Failure     404 {object} map[string]interface{}
// @Router      /admin/categories/{id} [delete]
func (ctl *CategoryController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := ctl.repo.Delete(id); err != nil {
		switch {
		case errors.Is(err, repositories.ErrCategoryNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
		case errors.Is(err, repositories.ErrCategoryInUse):
			c.JSON(http.StatusBadRequest, gin.H{"message": "This category has meals. Delete them or move them to another category first."})
		default:
			serverError(c, err, ctl.production)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Category deleted successfully"})
}

func sampleCategories() []models.Category {
	now := time.Now()
	names := []string{"Milliy taomlar", "Go'sht taomlar", "Sho'rvalar", "Non mahsulotlari", "Salatlar", "Ichimliklar"}
	out := make([]models.Category, len(names))
	for i, name := range names {
		out[i] = models.Category{ID: uint(i + 1), Name: name, CreatedAt: now, UpdatedAt: now}
	}
	return out
}
