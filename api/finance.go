package api

import (
	"strconv"
	"strings"
	"time"

	"github.com/setbox30-netizen/masjid-baitul-mannan/database"
	"github.com/setbox30-netizen/masjid-baitul-mannan/ledger"
	"github.com/setbox30-netizen/masjid-baitul-mannan/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// PreviewLimit caps the recent-transactions listing. Reports and
// totals never use this capped page; they always fetch the full ledger.
const PreviewLimit = 50

// FinanceHandler handles the cash ledger
type FinanceHandler struct{}

// NewFinanceHandler creates the finance handler
func NewFinanceHandler() *FinanceHandler {
	return &FinanceHandler{}
}

// FinanceRequest create/update body. Updates are a full replace: every
// field is required and the stored row takes all five values.
type FinanceRequest struct {
	Type        string          `json:"type" binding:"required" example:"income"`
	Category    string          `json:"category" binding:"required" example:"Infaq"`
	Amount      decimal.Decimal `json:"amount" binding:"required" example:"500000"`
	Description string          `json:"description" example:"Infaq Jumat"`
	Date        string          `json:"date" binding:"required" example:"2026-02-20"`
}

func (r *FinanceRequest) validate() string {
	if !models.IsValidFinanceType(r.Type) {
		return "jenis transaksi harus income atau expense"
	}
	if r.Amount.IsNegative() {
		return "nominal tidak boleh negatif"
	}
	r.Category = strings.TrimSpace(r.Category)
	if r.Category == "" {
		return "kategori tidak boleh kosong"
	}
	if _, err := time.Parse(ledger.DateLayout, r.Date); err != nil {
		return "format tanggal salah, gunakan YYYY-MM-DD"
	}
	return ""
}

// Create records a new transaction
// @Summary Tambah transaksi kas
// @Description Kategori bebas; daftar kategori hanya saran, bukan batasan.
// @Tags finances
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body FinanceRequest true "Transaksi"
// @Success 200 {object} Response{data=models.FinanceRecord} "Berhasil"
// @Failure 400 {object} Response "Parameter salah"
// @Failure 403 {object} Response "Bukan pengurus"
// @Router /api/v1/finances [post]
func (h *FinanceHandler) Create(c *gin.Context) {
	var req FinanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "parameter tidak lengkap"))
		return
	}
	if msg := req.validate(); msg != "" {
		BadRequest(c, msg)
		return
	}

	record := models.FinanceRecord{
		Type:        req.Type,
		Category:    req.Category,
		Amount:      req.Amount,
		Description: req.Description,
		Date:        req.Date,
	}
	if err := database.DB.Create(&record).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "gagal menyimpan transaksi"))
		return
	}

	SuccessWithMessage(c, "transaksi tersimpan", record)
}

// List returns the bounded recent-first preview
// @Summary Daftar transaksi terbaru
// @Description Pratinjau maksimal 50 baris terbaru. Untuk laporan lengkap gunakan /finances/report.
// @Tags finances
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Jumlah baris (maks 50)" default(50)
// @Success 200 {object} Response{data=[]models.FinanceRecord} "Berhasil"
// @Router /api/v1/finances [get]
func (h *FinanceHandler) List(c *gin.Context) {
	limit := PreviewLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= PreviewLimit {
			limit = n
		}
	}

	var records []models.FinanceRecord
	if err := database.DB.Order("date DESC, id DESC").Limit(limit).Find(&records).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "gagal memuat transaksi"))
		return
	}
	Success(c, records)
}

// Get returns one transaction by id
// @Summary Detail transaksi
// @Tags finances
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID transaksi"
// @Success 200 {object} Response{data=models.FinanceRecord} "Berhasil"
// @Failure 404 {object} Response "Tidak ditemukan"
// @Router /api/v1/finances/{id} [get]
func (h *FinanceHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "ID tidak valid")
		return
	}

	var record models.FinanceRecord
	if err := database.DB.First(&record, id).Error; err != nil {
		NotFound(c, "transaksi tidak ditemukan")
		return
	}
	Success(c, record)
}

// Update replaces a transaction in full
// @Summary Ubah transaksi
// @Tags finances
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID transaksi"
// @Param request body FinanceRequest true "Transaksi"
// @Success 200 {object} Response{data=models.FinanceRecord} "Berhasil"
// @Failure 400 {object} Response "Parameter salah"
// @Failure 404 {object} Response "Tidak ditemukan"
// @Router /api/v1/finances/{id} [put]
func (h *FinanceHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "ID tidak valid")
		return
	}

	var record models.FinanceRecord
	if err := database.DB.First(&record, id).Error; err != nil {
		NotFound(c, "transaksi tidak ditemukan")
		return
	}

	var req FinanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "parameter tidak lengkap"))
		return
	}
	if msg := req.validate(); msg != "" {
		BadRequest(c, msg)
		return
	}

	updates := map[string]interface{}{
		"type":        req.Type,
		"category":    req.Category,
		"amount":      req.Amount,
		"description": req.Description,
		"date":        req.Date,
	}
	if err := database.DB.Model(&record).Updates(updates).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "gagal menyimpan transaksi"))
		return
	}

	database.DB.First(&record, record.ID)
	SuccessWithMessage(c, "transaksi diperbarui", record)
}

// Delete removes a transaction
// @Summary Hapus transaksi
// @Tags finances
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID transaksi"
// @Success 200 {object} Response "Berhasil"
// @Failure 404 {object} Response "Tidak ditemukan"
// @Router /api/v1/finances/{id} [delete]
func (h *FinanceHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "ID tidak valid")
		return
	}

	var record models.FinanceRecord
	if err := database.DB.First(&record, id).Error; err != nil {
		NotFound(c, "transaksi tidak ditemukan")
		return
	}

	if err := database.DB.Delete(&record).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "gagal menghapus transaksi"))
		return
	}
	SuccessWithMessage(c, "transaksi dihapus", nil)
}

// ReportResponse monthly ledger report
type ReportResponse struct {
	Month           string                 `json:"month"`
	AvailableMonths []string               `json:"available_months"`
	Totals          ledger.Totals          `json:"totals"`
	Entries         []ledger.BalancedEntry `json:"entries"`
}

// Report returns the month-filtered running-balance view
// @Summary Laporan bulanan
// @Description Saldo berjalan dihitung atas seluruh buku kas (bukan halaman pratinjau); filter bulan tidak menghitung ulang saldo. Baris terbaru tampil dulu.
// @Tags finances
// @Produce json
// @Security BearerAuth
// @Param month query string false "Bulan YYYY-MM (default bulan berjalan)"
// @Success 200 {object} Response{data=ReportResponse} "Berhasil"
// @Failure 400 {object} Response "Format bulan salah"
// @Router /api/v1/finances/report [get]
func (h *FinanceHandler) Report(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		month = time.Now().Format("2006-01")
	}
	if _, err := time.Parse("2006-01", month); err != nil {
		BadRequest(c, "format bulan salah, gunakan YYYY-MM")
		return
	}

	// full-history fetch: balances are only correct over the entire ledger
	var records []models.FinanceRecord
	if err := database.DB.Find(&records).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "gagal memuat buku kas"))
		return
	}

	view, err := ledger.ComputeRunningBalance(records)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "buku kas berisi data tidak valid"))
		return
	}
	totals, err := ledger.ComputeTotals(records)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "buku kas berisi data tidak valid"))
		return
	}

	Success(c, ReportResponse{
		Month:           month,
		AvailableMonths: ledger.AvailableMonths(records, time.Now()),
		Totals:          totals,
		Entries:         ledger.FilterByMonth(view, month),
	})
}
