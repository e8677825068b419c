package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SparkleCleanOps/cleaning-ops/internal/httperr"
	"github.com/SparkleCleanOps/cleaning-ops/internal/httpresp"
	"github.com/SparkleCleanOps/cleaning-ops/internal/models"
	"github.com/SparkleCleanOps/cleaning-ops/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type ChecklistHandler struct {
	db *gorm.DB
}

func NewChecklistHandler(db *gorm.DB) *ChecklistHandler {
	return &ChecklistHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type AddRoomRequest struct {
	Name string `json:"name" binding:"required"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *ChecklistHandler) ListRooms(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	var rooms []models.ChecklistRoom
	if err := h.db.
		Where("booking_id = ?", id).
		Order("id ASC").
		Find(&rooms).Error; err != nil {
		httperr.Internal(c, "checklist_list_failed", "Failed to list rooms.")
		return
	}

	httpresp.List[models.ChecklistRoom](c, rooms)
}

func (h *ChecklistHandler) AddRoom(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	var booking models.Booking
	if err := h.db.First(&booking, id).Error; err != nil {
		httperr.NotFound(c, "booking_not_found", "Booking not found.")
		return
	}

	var req AddRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	room := models.ChecklistRoom{
		BookingID: id,
		Name:      req.Name,
	}
	if err := h.db.Create(&room).Error; err != nil {
		httperr.Internal(c, "checklist_create_failed", "Failed to add room.")
		return
	}

	httpresp.Created(c, room)
}

func (h *ChecklistHandler) MarkRoomDone(c *gin.Context) {
	roomID, err := strconv.ParseUint(c.Param("roomId"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid room id.")
		return
	}

	var room models.ChecklistRoom
	if err := h.db.First(&room, uint(roomID)).Error; err != nil {
		httperr.NotFound(c, "room_not_found", "Room not found.")
		return
	}

	if !room.Done {
		now := timezone.Now()
		room.Done = true
		room.DoneAt = &now
		if err := h.db.Save(&room).Error; err != nil {
			httperr.Internal(c, "checklist_update_failed", "Failed to update room.")
			return
		}
	}

	httpresp.OK(c, room)
}
