package repositories

import (
	"errors"

	"gorm.io/gorm"

	"SinOutGo/models"
)

// PatientRepository is the patient directory.
type PatientRepository interface {
	GetByID(id string) (*models.Patient, error)
	ListByOwner(cuidadorID string) ([]models.Patient, error)
	ListAll() ([]models.Patient, error)
	Create(patient *models.Patient) error
	Update(patient *models.Patient) error
	Delete(id string) error
}

type GormPatientRepository struct {
	db *gorm.DB
}

func NewPatientRepository(db *gorm.DB) *GormPatientRepository {
	return &GormPatientRepository{db: db}
}

func (r *GormPatientRepository) GetByID(id string) (*models.Patient, error) {
	var patient models.Patient
	if err := r.db.Where("id = ?", id).First(&patient).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *GormPatientRepository) ListByOwner(cuidadorID string) ([]models.Patient, error) {
	var patients []models.Patient
	if err := r.db.Where("cuidador_id = ?", cuidadorID).Order("created_at").Find(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *GormPatientRepository) ListAll() ([]models.Patient, error) {
	var patients []models.Patient
	if err := r.db.Order("created_at").Find(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *GormPatientRepository) Create(patient *models.Patient) error {
	return r.db.Create(patient).Error
}

func (r *GormPatientRepository) Update(patient *models.Patient) error {
	return r.db.Save(patient).Error
}

func (r *GormPatientRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.Patient{}).Error
}
