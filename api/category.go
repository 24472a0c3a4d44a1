package api

import (
	"strconv"
	"strings"

	"github.com/setbox30-netizen/masjid-baitul-mannan/database"
	"github.com/setbox30-netizen/masjid-baitul-mannan/models"

	"github.com/gin-gonic/gin"
)

// CategoryHandler maintains the category suggestion set. Finance rows
// keep their category as a plain string, so edits here never touch
// existing transactions.
type CategoryHandler struct{}

// NewCategoryHandler creates the category handler
func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// CategoryRequest create/update body
type CategoryRequest struct {
	Name string `json:"name" binding:"required,max=50" example:"Infaq"`
	Type string `json:"type" binding:"required" example:"income"`
	Sort int    `json:"sort" example:"10"`
}

// List returns the suggestion set, income first then expense, by sort
// @Summary Daftar kategori
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]models.FinanceCategory} "Berhasil"
// @Router /api/v1/finances/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	var list []models.FinanceCategory
	if err := database.DB.Order("type ASC, sort ASC, id ASC").Find(&list).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "gagal memuat kategori"))
		return
	}
	Success(c, list)
}

// Create adds a suggestion
// @Summary Tambah kategori
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CategoryRequest true "Kategori"
// @Success 200 {object} Response{data=models.FinanceCategory} "Berhasil"
// @Failure 400 {object} Response "Parameter salah"
// @Router /api/v1/finances/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "parameter tidak lengkap"))
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		BadRequest(c, "nama kategori tidak boleh kosong")
		return
	}
	if !models.IsValidFinanceType(req.Type) {
		BadRequest(c, "jenis kategori harus income atau expense")
		return
	}

	cat := models.FinanceCategory{Name: req.Name, Type: req.Type, Sort: req.Sort}
	if err := database.DB.Create(&cat).Error; err != nil {
		BadRequest(c, SafeErrorMessage(err, "kategori sudah ada"))
		return
	}
	SuccessWithMessage(c, "kategori tersimpan", cat)
}

// Update edits a suggestion
// @Summary Ubah kategori
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID kategori"
// @Param request body CategoryRequest true "Kategori"
// @Success 200 {object} Response{data=models.FinanceCategory} "Berhasil"
// @Failure 404 {object} Response "Tidak ditemukan"
// @Router /api/v1/finances/categories/{id} [put]
func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "ID tidak valid")
		return
	}

	var cat models.FinanceCategory
	if err := database.DB.First(&cat, id).Error; err != nil {
		NotFound(c, "kategori tidak ditemukan")
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "parameter tidak lengkap"))
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		BadRequest(c, "nama kategori tidak boleh kosong")
		return
	}
	if !models.IsValidFinanceType(req.Type) {
		BadRequest(c, "jenis kategori harus income atau expense")
		return
	}

	updates := map[string]interface{}{"name": req.Name, "type": req.Type, "sort": req.Sort}
	if err := database.DB.Model(&cat).Updates(updates).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "gagal menyimpan kategori"))
		return
	}
	database.DB.First(&cat, cat.ID)
	SuccessWithMessage(c, "kategori diperbarui", cat)
}

// Delete removes a suggestion
// @Summary Hapus kategori
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID kategori"
// @Success 200 {object} Response "Berhasil"
// @Failure 404 {object} Response "Tidak ditemukan"
// @Router /api/v1/finances/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "ID tidak valid")
		return
	}

	var cat models.FinanceCategory
	if err := database.DB.First(&cat, id).Error; err != nil {
		NotFound(c, "kategori tidak ditemukan")
		return
	}
	if err := database.DB.Delete(&cat).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "gagal menghapus kategori"))
		return
	}
	SuccessWithMessage(c, "kategori dihapus", nil)
}
