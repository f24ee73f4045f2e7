package repositories

import (
	"errors"

	"github.com/Temur01/restaurant-server/models"

	"gorm.io/gorm"
)

var ErrMealNotFound = errors.New("meal not found")

type MealRepository struct {
	db *gorm.DB
}

func NewMealRepository(db *gorm.DB) *MealRepository {
	return &MealRepository{db: db}
}

// GetAll joins the category name onto each meal. A left join on
// purpose: a meal whose category row has vanished still lists, with a
// null category name.
func (r *MealRepository) GetAll() ([]models.MealRow, error) {
	var rows []models.MealRow
	err := r.db.Table("meals").
		Select("meals.*, categories.name AS category_name").
		Joins("LEFT JOIN categories ON categories.id = meals.category_id").
		Order("meals.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *MealRepository) GetByID(id uint) (*models.MealRow, error) {
	var row models.MealRow
	err := r.db.Table("meals").
		Select("meals.*, categories.name AS category_name").
		Joins("LEFT JOIN categories ON categories.id = meals.category_id").
		Where("meals.id = ?", id).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == 0 {
		return nil, ErrMealNotFound
	}
	return &row, nil
}

// Create checks category existence before the insert; the FK is only a
// backstop.
func (r *MealRepository) Create(meal *models.Meal) error {
	if err := r.checkCategoryExists(meal.CategoryID); err != nil {
		return err
	}
	return r.db.Create(meal).Error
}

// Update replaces every field; there are no patch semantics.
func (r *MealRepository) Update(id uint, in *models.Meal) (*models.Meal, error) {
	var meal models.Meal
	if err := r.db.First(&meal, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMealNotFound
		}
		return nil, err
	}

	if err := r.checkCategoryExists(in.CategoryID); err != nil {
		return nil, err
	}

	meal.Name = in.Name
	meal.Image = in.Image
	meal.Description = in.Description
	meal.Price = in.Price
	meal.CategoryID = in.CategoryID
	meal.Ingredients = in.Ingredients
	if err := r.db.Save(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

func (r *MealRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Meal{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMealNotFound
	}
	return nil
}

func (r *MealRepository) checkCategoryExists(id uint) error {
	var count int64
	if err := r.db.Model(&models.Category{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrCategoryNotFound
	}
	return nil
}
