package api

import (
	"strconv"
	"time"

	"github.com/setbox30-netizen/masjid-baitul-mannan/database"
	"github.com/setbox30-netizen/masjid-baitul-mannan/ledger"
	"github.com/setbox30-netizen/masjid-baitul-mannan/models"

	"github.com/gin-gonic/gin"
)

// InventoryHandler handles mosque assets
type InventoryHandler struct{}

// NewInventoryHandler creates the inventory handler
func NewInventoryHandler() *InventoryHandler {
	return &InventoryHandler{}
}

// InventoryRequest create/update body
type InventoryRequest struct {
	Name         string `json:"name" binding:"required,max=100" example:"Sound System Yamaha"`
	Category     string `json:"category" example:"Elektronik"`
	Quantity     int    `json:"quantity" binding:"min=0" example:"1"`
	Condition    string `json:"condition" binding:"required" example:"good"`
	PurchaseDate string `json:"purchase_date" example:"2025-01-10"`
}

func (r *InventoryRequest) validate() string {
	if !models.IsValidCondition(r.Condition) {
		return "kondisi harus good, fair, atau poor"
	}
	if r.PurchaseDate != "" {
		if _, err := time.Parse(ledger.DateLayout, r.PurchaseDate); err != nil {
			return "format tanggal pembelian salah, gunakan YYYY-MM-DD"
		}
	}
	return ""
}

// List returns all assets
// @Summary Daftar inventaris
// @Tags inventory
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]models.InventoryItem} "Berhasil"
// @Router /api/v1/inventory [get]
func (h *InventoryHandler) List(c *gin.Context) {
	var items []models.InventoryItem
	if err := database.DB.Order("id ASC").Find(&items).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "gagal memuat inventaris"))
		return
	}
	Success(c, items)
}

// Create adds an asset; last_checked starts at today
// @Summary Tambah inventaris
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body InventoryRequest true "Barang"
// @Success 200 {object} Response{data=models.InventoryItem} "Berhasil"
// @Failure 400 {object} Response "Parameter salah"
// @Router /api/v1/inventory [post]
func (h *InventoryHandler) Create(c *gin.Context) {
	var req InventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "parameter tidak lengkap"))
		return
	}
	if msg := req.validate(); msg != "" {
		BadRequest(c, msg)
		return
	}

	item := models.InventoryItem{
		Name:         req.Name,
		Category:     req.Category,
		Quantity:     req.Quantity,
		Condition:    req.Condition,
		PurchaseDate: req.PurchaseDate,
		LastChecked:  time.Now().Format(ledger.DateLayout),
	}
	if err := database.DB.Create(&item).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "gagal menyimpan barang"))
		return
	}
	SuccessWithMessage(c, "barang tersimpan", item)
}

// Update edits an asset and refreshes last_checked
// @Summary Ubah inventaris
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID barang"
// @Param request body InventoryRequest true "Barang"
// @Success 200 {object} Response{data=models.InventoryItem} "Berhasil"
// @Failure 404 {object} Response "Tidak ditemukan"
// @Router /api/v1/inventory/{id} [put]
func (h *InventoryHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "ID tidak valid")
		return
	}

	var item models.InventoryItem
	if err := database.DB.First(&item, id).Error; err != nil {
		NotFound(c, "barang tidak ditemukan")
		return
	}

	var req InventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "parameter tidak lengkap"))
		return
	}
	if msg := req.validate(); msg != "" {
		BadRequest(c, msg)
		return
	}

	updates := map[string]interface{}{
		"name":          req.Name,
		"category":      req.Category,
		"quantity":      req.Quantity,
		"condition":     req.Condition,
		"purchase_date": req.PurchaseDate,
		"last_checked":  time.Now().Format(ledger.DateLayout),
	}
	if err := database.DB.Model(&item).Updates(updates).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "gagal menyimpan barang"))
		return
	}
	database.DB.First(&item, item.ID)
	SuccessWithMessage(c, "barang diperbarui", item)
}

// Delete removes an asset
// @Summary Hapus inventaris
// @Tags inventory
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID barang"
// @Success 200 {object} Response "Berhasil"
// @Failure 404 {object} Response "Tidak ditemukan"
// @Router /api/v1/inventory/{id} [delete]
func (h *InventoryHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "ID tidak valid")
		return
	}

	var item models.InventoryItem
	if err := database.DB.First(&item, id).Error; err != nil {
		NotFound(c, "barang tidak ditemukan")
		return
	}
	if err := database.DB.Delete(&item).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "gagal menghapus barang"))
		return
	}
	SuccessWithMessage(c, "barang dihapus", nil)
}
