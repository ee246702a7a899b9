package repository

import (
	"go-invsys/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ItemRepository interface {
	Create(item *model.Item) error
	FindAll() ([]model.Item, error)
	FindByID(id uuid.UUID) (*model.Item, error)
	FindByIDs(tx *gorm.DB, ids []uuid.UUID) ([]model.Item, error)
	Update(item *model.Item) error
}

type itemRepo struct {
	db *gorm.DB
}

func NewItemRepo(db *gorm.DB) ItemRepository {
	return &itemRepo{db}
}

func (r *itemRepo) Create(item *model.Item) error {
	return r.db.Create(item).Error
}

func (r *itemRepo) FindAll() ([]model.Item, error) {
	var items []model.Item
	err := r.db.Order("name ASC").Find(&items).Error
	return items, err
}

func (r *itemRepo) FindByID(id uuid.UUID) (*model.Item, error) {
	var item model.Item
	if err := r.db.First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepo) FindByIDs(tx *gorm.DB, ids []uuid.UUID) ([]model.Item, error) {
	var items []model.Item
	err := tx.Where("id IN ?", ids).Find(&items).Error
	return items, err
}

func (r *itemRepo) Update(item *model.Item) error {
	return r.db.Save(item).Error
}
