package repository

import (
	"github.com/colecionador/colecao-backend/src/models"
	"gorm.io/gorm"
)

// ColecaoRepository is the data-access contract consumed by the service layer.
// Production uses the gorm adapter below; tests plug an in-memory fake.
type ColecaoRepository interface {
	FindAll(titulo *string) ([]models.ColecaoModel, error)
	FindByID(id int) (*models.ColecaoModel, error)
	Create(colecao *models.ColecaoModel) error
	Update(id int, data *models.ColecaoModel) (*models.ColecaoModel, error)
	Delete(id int) error
}

type GormColecaoRepository struct {
	db *gorm.DB
}

// NewGormColecaoRepository creates the gorm-backed repository
func NewGormColecaoRepository(db *gorm.DB) *GormColecaoRepository {
	return &GormColecaoRepository{db: db}
}

// FindAll retrieves all colecao records, optionally filtered by titulo
func (r *GormColecaoRepository) FindAll(titulo *string) ([]models.ColecaoModel, error) {
	var colecoes []models.ColecaoModel
	query := r.db

	if titulo != nil {
		query = query.Where("titulo LIKE ?", "%"+*titulo+"%")
	}

	if err := query.Find(&colecoes).Error; err != nil {
		return nil, err
	}
	return colecoes, nil
}

// FindByID retrieves a single colecao record by its id
func (r *GormColecaoRepository) FindByID(id int) (*models.ColecaoModel, error) {
	var colecao models.ColecaoModel
	if err := r.db.First(&colecao, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &colecao, nil
}

// Create inserts a new colecao record, assigning its id
func (r *GormColecaoRepository) Create(colecao *models.ColecaoModel) error {
	return r.db.Create(colecao).Error
}

// Update applies the given data to an existing colecao record
func (r *GormColecaoRepository) Update(id int, data *models.ColecaoModel) (*models.ColecaoModel, error) {
	var colecao models.ColecaoModel
	if err := r.db.First(&colecao, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&colecao).Updates(data).Error; err != nil {
		return nil, err
	}
	return &colecao, nil
}

// Delete removes a colecao record by its id
func (r *GormColecaoRepository) Delete(id int) error {
	return r.db.Delete(&models.ColecaoModel{}, "id = ?", id).Error
}
