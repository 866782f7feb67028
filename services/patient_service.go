package services

import (
	"strings"
	"time"

	"SinOutGo/models"
	"SinOutGo/repositories"
	"SinOutGo/utils"
)

// PatientService owns patient records and the ownership gate around
// them. Lookups of missing or foreign patients answer "Patient not
// found" (a 404) so callers cannot probe which ids exist.
type PatientService struct {
	patients repositories.PatientRepository
}

func NewPatientService(patients repositories.PatientRepository) *PatientService {
	return &PatientService{patients: patients}
}

func (s *PatientService) Create(ownerID string, req models.PatientRequest) (*models.Patient, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, models.NewDomainError("Patient name must not be empty")
	}

	patient := &models.Patient{
		ID:         utils.GenerateID(),
		CuidadorID: ownerID,
		Name:       name,
		BirthDate:  req.BirthDate,
		Condition:  req.Condition,
		Notes:      req.Notes,
	}
	if err := s.patients.Create(patient); err != nil {
		return nil, err
	}
	return patient, nil
}

func (s *PatientService) GetByID(id, requesterID, requesterRole string) (*models.Patient, error) {
	patient, err := s.patients.GetByID(id)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, models.NewNotFoundError("Patient not found")
	}
	if !CanAccess(patient.CuidadorID, requesterID, requesterRole) {
		return nil, models.NewNotFoundError("Patient not found")
	}
	return patient, nil
}

// List returns the requester's own patients, or every patient for an
// admin.
func (s *PatientService) List(requesterID, requesterRole string) ([]models.Patient, error) {
	if requesterRole == models.RoleAdmin {
		return s.patients.ListAll()
	}
	return s.patients.ListByOwner(requesterID)
}

func (s *PatientService) Update(id, requesterID, requesterRole string, req models.PatientRequest) (*models.Patient, error) {
	patient, err := s.GetByID(id, requesterID, requesterRole)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, models.NewDomainError("Patient name must not be empty")
	}

	patient.Name = name
	patient.BirthDate = req.BirthDate
	patient.Condition = req.Condition
	patient.Notes = req.Notes
	patient.UpdatedAt = time.Now().UTC()
	if err := s.patients.Update(patient); err != nil {
		return nil, err
	}
	return patient, nil
}

func (s *PatientService) Delete(id, requesterID, requesterRole string) error {
	patient, err := s.GetByID(id, requesterID, requesterRole)
	if err != nil {
		return err
	}
	return s.patients.Delete(patient.ID)
}
