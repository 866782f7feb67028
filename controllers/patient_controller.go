package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"SinOutGo/models"
	"SinOutGo/services"
)

// PatientController exposes the patient CRUD.
type PatientController struct {
	patients *services.PatientService
}

func NewPatientController(patients *services.PatientService) *PatientController {
	return &PatientController{patients: patients}
}

// CreatePatient registers a patient owned by the caller.
func (pc *PatientController) CreatePatient(c *gin.Context) {
	var req models.PatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	patient, err := pc.patients.Create(c.GetString("uid"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, patient)
}

// GetPatient answers 404 for missing and foreign patients alike.
func (pc *PatientController) GetPatient(c *gin.Context) {
	patient, err := pc.patients.GetByID(c.Param("id"), c.GetString("uid"), c.GetString("role"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, patient)
}

// ListPatients returns the caller's patients (all of them for admins).
func (pc *PatientController) ListPatients(c *gin.Context) {
	patients, err := pc.patients.List(c.GetString("uid"), c.GetString("role"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, patients)
}

func (pc *PatientController) UpdatePatient(c *gin.Context) {
	var req models.PatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	patient, err := pc.patients.Update(c.Param("id"), c.GetString("uid"), c.GetString("role"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, patient)
}

func (pc *PatientController) DeletePatient(c *gin.Context) {
	if err := pc.patients.Delete(c.Param("id"), c.GetString("uid"), c.GetString("role")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Patient deleted"})
}
