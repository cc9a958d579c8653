package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/justdogsza/dog-training-api/internal/httperr"
	"github.com/justdogsza/dog-training-api/internal/httpresp"
	"github.com/justdogsza/dog-training-api/internal/models"
	"github.com/justdogsza/dog-training-api/internal/storage"
)

type DogHandler struct {
	db     *gorm.DB
	photos *storage.PhotoStore
}

func NewDogHandler(db *gorm.DB, photos *storage.PhotoStore) *DogHandler {
	return &DogHandler{db: db, photos: photos}
}

// Parents only ever see their own dogs; staff and admin work across the
// whole kennel.
func (h *DogHandler) dogQuery(c *gin.Context) *gorm.DB {
	q := h.db.Model(&models.Dog{})
	role := currentUserRole(c)
	if role == models.RoleParent {
		q = q.Where("owner_id = ?", currentUserID(c))
	}
	return q
}

func (h *DogHandler) canEdit(c *gin.Context, dog *models.Dog) bool {
	role := currentUserRole(c)
	if role == models.RoleAdmin || role.IsStaff() {
		return true
	}
	return dog.OwnerID == currentUserID(c)
}

// --------- Requests ---------

type DogRequest struct {
	Name   string  `json:"name" binding:"required"`
	Breed  string  `json:"breed" binding:"required"`
	Age    int     `json:"age"`
	Weight float64 `json:"weight"`

	MedicalNotes    string `json:"medical_notes"`
	BehavioralNotes string `json:"behavioral_notes"`
	VaccineRecords  string `json:"vaccine_records"`
	Preferences     string `json:"preferences"`

	EmergencyContactName         string `json:"emergency_contact_name"`
	EmergencyContactPhone        string `json:"emergency_contact_phone"`
	EmergencyContactRelationship string `json:"emergency_contact_relationship"`

	// Admin and staff may register a dog on a parent's behalf.
	OwnerID uint `json:"owner_id"`
}

// --------- Handlers ---------

func (h *DogHandler) List(c *gin.Context) {
	q := h.dogQuery(c)

	if term := c.Query("query"); term != "" {
		like := "%" + term + "%"
		q = q.Where("name ILIKE ? OR breed ILIKE ?", like, like)
	}

	var dogs []models.Dog
	if err := q.Preload("Owner").Order("name asc").Find(&dogs).Error; err != nil {
		httperr.Internal(c, "failed_to_list_dogs", "Could not list dogs.")
		return
	}

	httpresp.List(c, dogs)
}

func (h *DogHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var dog models.Dog
	if err := h.dogQuery(c).Preload("Owner").First(&dog, id).Error; err != nil {
		httperr.NotFound(c, "dog_not_found", "Dog not found.")
		return
	}

	c.JSON(http.StatusOK, dog)
}

func (h *DogHandler) Create(c *gin.Context) {
	var req DogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ownerID := currentUserID(c)
	role := currentUserRole(c)
	if req.OwnerID != 0 && (role == models.RoleAdmin || role.IsStaff()) {
		ownerID = req.OwnerID
	}

	var owner models.User
	if err := h.db.First(&owner, ownerID).Error; err != nil {
		httperr.NotFound(c, "owner_not_found", "Owner not found.")
		return
	}

	dog := models.Dog{
		OwnerID:                      ownerID,
		Name:                         req.Name,
		Breed:                        req.Breed,
		Age:                          req.Age,
		Weight:                       req.Weight,
		MedicalNotes:                 req.MedicalNotes,
		BehavioralNotes:              req.BehavioralNotes,
		VaccineRecords:               req.VaccineRecords,
		Preferences:                  req.Preferences,
		EmergencyContactName:         req.EmergencyContactName,
		EmergencyContactPhone:        req.EmergencyContactPhone,
		EmergencyContactRelationship: req.EmergencyContactRelationship,
	}

	if err := h.db.Create(&dog).Error; err != nil {
		httperr.Internal(c, "failed_to_create_dog", "Could not create the dog.")
		return
	}

	httpresp.Created(c, dog)
}

func (h *DogHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var dog models.Dog
	if err := h.db.First(&dog, id).Error; err != nil {
		httperr.NotFound(c, "dog_not_found", "Dog not found.")
		return
	}
	if !h.canEdit(c, &dog) {
		httperr.NotFound(c, "dog_not_found", "Dog not found.")
		return
	}

	var req DogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	dog.Name = req.Name
	dog.Breed = req.Breed
	dog.Age = req.Age
	dog.Weight = req.Weight
	dog.MedicalNotes = req.MedicalNotes
	dog.BehavioralNotes = req.BehavioralNotes
	dog.VaccineRecords = req.VaccineRecords
	dog.Preferences = req.Preferences
	dog.EmergencyContactName = req.EmergencyContactName
	dog.EmergencyContactPhone = req.EmergencyContactPhone
	dog.EmergencyContactRelationship = req.EmergencyContactRelationship

	if err := h.db.Save(&dog).Error; err != nil {
		httperr.Internal(c, "failed_to_update_dog", "Could not update the dog.")
		return
	}

	c.JSON(http.StatusOK, dog)
}

func (h *DogHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var dog models.Dog
	if err := h.db.First(&dog, id).Error; err != nil {
		httperr.NotFound(c, "dog_not_found", "Dog not found.")
		return
	}

	role := currentUserRole(c)
	if role != models.RoleAdmin && dog.OwnerID != currentUserID(c) {
		httperr.NotFound(c, "dog_not_found", "Dog not found.")
		return
	}

	if err := h.db.Delete(&dog).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_dog", "Could not delete the dog.")
		return
	}

	c.Status(http.StatusNoContent)
}

// UploadPhoto accepts a multipart "photo" field, runs it through the image
// pipeline and stores the resulting URL on the dog.
func (h *DogHandler) UploadPhoto(c *gin.Context) {
	if h.photos == nil {
		httperr.Unavailable(c, "photo_storage_disabled",
			"Photo storage is not configured.")
		return
	}

	id, ok := paramID(c)
	if !ok {
		return
	}

	var dog models.Dog
	if err := h.db.First(&dog, id).Error; err != nil {
		httperr.NotFound(c, "dog_not_found", "Dog not found.")
		return
	}
	if !h.canEdit(c, &dog) {
		httperr.NotFound(c, "dog_not_found", "Dog not found.")
		return
	}

	file, err := c.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_photo", "A photo file is required.")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.BadRequest(c, "invalid_photo", "The photo could not be read.")
		return
	}
	defer src.Close()

	url, err := h.photos.Upload(c.Request.Context(), src)
	if err != nil {
		writeError(c, err)
		return
	}

	dog.PhotoURL = url
	if err := h.db.Save(&dog).Error; err != nil {
		httperr.Internal(c, "failed_to_update_dog", "Could not save the photo URL.")
		return
	}

	c.JSON(http.StatusOK, dog)
}
