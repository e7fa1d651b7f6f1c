// handlers/doctor.go
package handlers

import (
	"errors"
	"net/http"

	doctorRepo "dochouse/database/repository/doctor"
	"dochouse/models"
	"dochouse/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// latestDoctors caps the public doctor listing.
const latestDoctors = 3

// DoctorHandler serves the doctor CRUD endpoints.
type DoctorHandler struct {
	Repo doctorRepo.DoctorRepository
}

// NewDoctorHandler creates a DoctorHandler.
func NewDoctorHandler(repo doctorRepo.DoctorRepository) *DoctorHandler {
	return &DoctorHandler{Repo: repo}
}

// ListDoctorsHandler handles GET /doctors.
func (h *DoctorHandler) ListDoctorsHandler(c *gin.Context) {
	doctors, err := h.Repo.GetLatest(latestDoctors)
	if err != nil {
		utils.GetLogger().Error("Failed to list doctors", zap.Error(err))
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, doctors)
}

// GetDoctorByIDHandler handles GET /doctors/:id.
func (h *DoctorHandler) GetDoctorByIDHandler(c *gin.Context) {
	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.JSONError(c, utils.ErrBadRequest, "invalid doctor id")
		return
	}

	doctor, err := h.Repo.GetByID(oid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, utils.ErrNotFound, "doctor not found")
			return
		}
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, doctor)
}

// CreateDoctorHandler handles POST /doctors.
func (h *DoctorHandler) CreateDoctorHandler(c *gin.Context) {
	var doctor models.Doctor
	if err := c.ShouldBindJSON(&doctor); err != nil {
		utils.JSONError(c, utils.ErrBadRequest, err.Error())
		return
	}

	id, err := h.Repo.Create(&doctor)
	if err != nil {
		utils.GetLogger().Error("Failed to create doctor", zap.Error(err))
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"insertedId": id.Hex()})
}

// DeleteDoctorHandler handles DELETE /doctors/:id.
func (h *DoctorHandler) DeleteDoctorHandler(c *gin.Context) {
	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.JSONError(c, utils.ErrBadRequest, "invalid doctor id")
		return
	}

	if err := h.Repo.Delete(oid); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, utils.ErrNotFound, "doctor not found")
			return
		}
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": 1})
}
