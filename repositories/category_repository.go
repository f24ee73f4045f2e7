package repositories

import (
	"errors"

	"github.com/Temur01/restaurant-server/models"

	"gorm.io/gorm"
)

// ErrCategoryNotFound is returned when a category id does not resolve.
var ErrCategoryNotFound = errors.New("category not found")

// ErrDuplicateName is returned when a category with the exact same name
// already exists.
var ErrDuplicateName = errors.New("category name already exists")

// ErrCategoryInUse is returned when deletion is blocked by meals still
// referencing the category.
var ErrCategoryInUse = errors.New("category has meals")

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) GetAll() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepository) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) Create(name string) (*models.Category, error) {
	if err := r.checkNameFree(name, 0); err != nil {
		return nil, err
	}

	category := models.Category{Name: name}
	if err := r.db.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) Update(id uint, name string) (*models.Category, error) {
	category, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := r.checkNameFree(name, id); err != nil {
		return nil, err
	}

	category.Name = name
	if err := r.db.Save(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

// Delete refuses to remove a category that still has meals. The check
// and the delete are separate statements; the FK's ON DELETE RESTRICT
// is what actually closes the window against a concurrent meal insert.
func (r *CategoryRepository) Delete(id uint) error {
	if _, err := r.GetByID(id); err != nil {
		return err
	}

	var count int64
	if err := r.db.Model(&models.Meal{}).Where("category_id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryInUse
	}

	return r.db.Delete(&models.Category{}, id).Error
}

// checkNameFree enforces case-sensitive exact-match uniqueness, with
// the unique index as the backstop under concurrent writes.
func (r *CategoryRepository) checkNameFree(name string, selfID uint) error {
	var count int64
	query := r.db.Model(&models.Category{}).Where("name = ?", name)
	if selfID != 0 {
		query = query.Where("id <> ?", selfID)
	}
	if err := query.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateName
	}
	return nil
}
