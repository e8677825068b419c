package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SparkleCleanOps/cleaning-ops/internal/httperr"
	"github.com/SparkleCleanOps/cleaning-ops/internal/httpresp"
	"github.com/SparkleCleanOps/cleaning-ops/internal/middleware"
	"github.com/SparkleCleanOps/cleaning-ops/internal/models"
	"github.com/SparkleCleanOps/cleaning-ops/internal/storage"
)

// ======================================================
// HANDLER
// ======================================================

type PhotoHandler struct {
	db     *gorm.DB
	photos *storage.PhotoStore
}

func NewPhotoHandler(db *gorm.DB, photos *storage.PhotoStore) *PhotoHandler {
	return &PhotoHandler{db: db, photos: photos}
}

// Upload stores a before/after photo of a job. Multipart form: "photo"
// file plus a "kind" field.
func (h *PhotoHandler) Upload(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	memberID := c.MustGet(middleware.ContextUserID).(uint)

	kind := c.PostForm("kind")
	if kind != models.JobPhotoKindBefore && kind != models.JobPhotoKindAfter {
		httperr.BadRequest(c, "invalid_kind", `Expected kind "before" or "after".`)
		return
	}

	var booking models.Booking
	if err := h.db.First(&booking, id).Error; err != nil {
		httperr.NotFound(c, "booking_not_found", "Booking not found.")
		return
	}

	file, err := c.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_photo", "Expected a photo file.")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "photo_open_failed", "Failed to read the upload.")
		return
	}
	defer src.Close()

	key, err := h.photos.Upload(c.Request.Context(), id, kind, src)
	if err != nil {
		if err == storage.ErrStorageDisabled {
			httperr.Conflict(c, "photos_disabled", "Photo storage is not configured.")
			return
		}
		httperr.Internal(c, "photo_upload_failed", err.Error())
		return
	}

	photo := models.JobPhoto{
		BookingID:    id,
		TeamMemberID: memberID,
		Kind:         kind,
		ObjectKey:    key,
	}
	if err := h.db.Create(&photo).Error; err != nil {
		httperr.Internal(c, "photo_save_failed", "Failed to record the photo.")
		return
	}

	httpresp.Created(c, photo)
}

func (h *PhotoHandler) List(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	var photos []models.JobPhoto
	if err := h.db.
		Where("booking_id = ?", id).
		Order("created_at ASC").
		Find(&photos).Error; err != nil {
		httperr.Internal(c, "photo_list_failed", "Failed to list photos.")
		return
	}

	httpresp.List[models.JobPhoto](c, photos)
}
