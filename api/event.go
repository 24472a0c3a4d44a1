package api

import (
	"strconv"
	"time"

	"github.com/setbox30-netizen/masjid-baitul-mannan/database"
	"github.com/setbox30-netizen/masjid-baitul-mannan/ledger"
	"github.com/setbox30-netizen/masjid-baitul-mannan/models"

	"github.com/gin-gonic/gin"
)

// EventHandler handles mosque activities
type EventHandler struct{}

// NewEventHandler creates the event handler
func NewEventHandler() *EventHandler {
	return &EventHandler{}
}

// EventRequest create/update body
type EventRequest struct {
	Title       string `json:"title" binding:"required,max=150" example:"Kajian Fiqih Ibadah"`
	Speaker     string `json:"speaker" example:"Ustadz Adi Hidayat"`
	Date        string `json:"date" binding:"required" example:"2026-03-01"`
	Time        string `json:"time" example:"18:30"`
	Location    string `json:"location" example:"Ruang Utama"`
	Description string `json:"description"`
}

func (r *EventRequest) validate() string {
	if _, err := time.Parse(ledger.DateLayout, r.Date); err != nil {
		return "format tanggal salah, gunakan YYYY-MM-DD"
	}
	if r.Time != "" {
		if _, err := time.Parse("15:04", r.Time); err != nil {
			return "format jam salah, gunakan HH:MM"
		}
	}
	return ""
}

// List returns all events, soonest first
// @Summary Daftar kegiatan
// @Tags events
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]models.Event} "Berhasil"
// @Router /api/v1/events [get]
func (h *EventHandler) List(c *gin.Context) {
	var events []models.Event
	if err := database.DB.Order("date ASC, time ASC").Find(&events).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "gagal memuat kegiatan"))
		return
	}
	Success(c, events)
}

// Create adds an event
// @Summary Tambah kegiatan
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body EventRequest true "Kegiatan"
// @Success 200 {object} Response{data=models.Event} "Berhasil"
// @Failure 400 {object} Response "Parameter salah"
// @Router /api/v1/events [post]
func (h *EventHandler) Create(c *gin.Context) {
	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "parameter tidak lengkap"))
		return
	}
	if msg := req.validate(); msg != "" {
		BadRequest(c, msg)
		return
	}

	event := models.Event{
		Title:       req.Title,
		Speaker:     req.Speaker,
		Date:        req.Date,
		Time:        req.Time,
		Location:    req.Location,
		Description: req.Description,
	}
	if err := database.DB.Create(&event).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "gagal menyimpan kegiatan"))
		return
	}
	SuccessWithMessage(c, "kegiatan tersimpan", event)
}

// Update edits an event
// @Summary Ubah kegiatan
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID kegiatan"
// @Param request body EventRequest true "Kegiatan"
// @Success 200 {object} Response{data=models.Event} "Berhasil"
// @Failure 404 {object} Response "Tidak ditemukan"
// @Router /api/v1/events/{id} [put]
func (h *EventHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "ID tidak valid")
		return
	}

	var event models.Event
	if err := database.DB.First(&event, id).Error; err != nil {
		NotFound(c, "kegiatan tidak ditemukan")
		return
	}

	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "parameter tidak lengkap"))
		return
	}
	if msg := req.validate(); msg != "" {
		BadRequest(c, msg)
		return
	}

	updates := map[string]interface{}{
		"title":       req.Title,
		"speaker":     req.Speaker,
		"date":        req.Date,
		"time":        req.Time,
		"location":    req.Location,
		"description": req.Description,
	}
	if err := database.DB.Model(&event).Updates(updates).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "gagal menyimpan kegiatan"))
		return
	}
	database.DB.First(&event, event.ID)
	SuccessWithMessage(c, "kegiatan diperbarui", event)
}

// Delete removes an event
// @Summary Hapus kegiatan
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID kegiatan"
// @Success 200 {object} Response "Berhasil"
// @Failure 404 {object} Response "Tidak ditemukan"
// @Router /api/v1/events/{id} [delete]
func (h *EventHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "ID tidak valid")
		return
	}

	var event models.Event
	if err := database.DB.First(&event, id).Error; err != nil {
		NotFound(c, "kegiatan tidak ditemukan")
		return
	}
	if err := database.DB.Delete(&event).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "gagal menghapus kegiatan"))
		return
	}
	SuccessWithMessage(c, "kegiatan dihapus", nil)
}
