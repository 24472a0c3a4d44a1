package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/setbox30-netizen/masjid-baitul-mannan/config"
	"github.com/setbox30-netizen/masjid-baitul-mannan/database"
	"github.com/setbox30-netizen/masjid-baitul-mannan/ledger"
	"github.com/setbox30-netizen/masjid-baitul-mannan/models"
	"github.com/setbox30-netizen/masjid-baitul-mannan/service"

	"github.com/gin-gonic/gin"
)

// ExportHandler renders the monthly statement as CSV, Excel, printable
// HTML, or an email attachment.
type ExportHandler struct {
	emailService *service.EmailService
}

// NewExportHandler creates the export handler
func NewExportHandler(cfg *config.Config) *ExportHandler {
	return &ExportHandler{emailService: service.NewEmailService(&cfg.Email)}
}

// buildReport assembles the month's report from the full ledger. The
// capped preview listing is never used here.
func buildReport(month string) (service.ReportData, error) {
	var records []models.FinanceRecord
	if err := database.DB.Find(&records).Error; err != nil {
		return service.ReportData{}, fmt.Errorf("gagal memuat buku kas: %w", err)
	}

	view, err := ledger.ComputeRunningBalance(records)
	if err != nil {
		return service.ReportData{}, err
	}
	totals, err := ledger.ComputeTotals(records)
	if err != nil {
		return service.ReportData{}, err
	}

	var rows []models.Setting
	if err := database.DB.Find(&rows).Error; err != nil {
		return service.ReportData{}, fmt.Errorf("gagal memuat pengaturan: %w", err)
	}

	return service.ReportData{
		Profile:     models.ProfileFromSettings(rows),
		Month:       month,
		Entries:     ledger.FilterByMonth(view, month),
		Totals:      totals,
		GeneratedAt: time.Now(),
	}, nil
}

func reportMonth(c *gin.Context) (string, bool) {
	month := c.Query("month")
	if month == "" {
		month = time.Now().Format("2006-01")
	}
	if _, err := time.Parse("2006-01", month); err != nil {
		BadRequest(c, "format bulan salah, gunakan YYYY-MM")
		return "", false
	}
	return month, true
}

// ExportCSV downloads the monthly statement as CSV
// @Summary Ekspor CSV
// @Description Kolom tetap: tanggal, uraian, kategori, debet, kredit, saldo.
// @Tags export
// @Produce text/csv
// @Security BearerAuth
// @Param month query string false "Bulan YYYY-MM (default bulan berjalan)"
// @Success 200 {file} file "Berkas CSV"
// @Failure 400 {object} Response "Format bulan salah"
// @Router /api/v1/export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	month, ok := reportMonth(c)
	if !ok {
		return
	}

	data, err := buildReport(month)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "gagal menyusun laporan"))
		return
	}

	content, err := service.BuildCSV(data)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "gagal membuat CSV"))
		return
	}

	filename := data.Filename("csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", len(content)))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", content)
}

// ExportExcel downloads the monthly statement as xlsx
// @Summary Ekspor Excel
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param month query string false "Bulan YYYY-MM (default bulan berjalan)"
// @Success 200 {file} file "Berkas Excel"
// @Failure 400 {object} Response "Format bulan salah"
// @Router /api/v1/export/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	month, ok := reportMonth(c)
	if !ok {
		return
	}

	data, err := buildReport(month)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "gagal menyusun laporan"))
		return
	}

	content, err := service.BuildExcel(data)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "gagal membuat Excel"))
		return
	}

	filename := data.Filename("xlsx")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", len(content)))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", content)
}

// PrintReport serves the printable monthly statement
// @Summary Cetak laporan
// @Description Dokumen HTML siap cetak: kop dengan logo, tabel saldo berjalan, blok tanda tangan ketua takmir dan bendahara.
// @Tags export
// @Produce html
// @Security BearerAuth
// @Param month query string false "Bulan YYYY-MM (default bulan berjalan)"
// @Success 200 {string} string "Dokumen HTML"
// @Failure 400 {object} Response "Format bulan salah"
// @Router /api/v1/report/print [get]
func (h *ExportHandler) PrintReport(c *gin.Context) {
	month, ok := reportMonth(c)
	if !ok {
		return
	}

	data, err := buildReport(month)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "gagal menyusun laporan"))
		return
	}

	content, err := service.RenderPrintHTML(data)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "gagal membuat dokumen"))
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", content)
}

// EmailReportRequest email-report body
type EmailReportRequest struct {
	To    string `json:"to" binding:"required,email" example:"bendahara@example.com"`
	Month string `json:"month" example:"2026-02"`
}

// EmailReport mails the monthly statement with the CSV attached
// @Summary Kirim laporan via email
// @Tags export
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body EmailReportRequest true "Tujuan dan bulan"
// @Success 200 {object} Response "Berhasil"
// @Failure 400 {object} Response "Parameter salah"
// @Failure 500 {object} Response "Email gagal dikirim"
// @Router /api/v1/export/email [post]
func (h *ExportHandler) EmailReport(c *gin.Context) {
	var req EmailReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "parameter tidak lengkap"))
		return
	}

	month := req.Month
	if month == "" {
		month = time.Now().Format("2006-01")
	}
	if _, err := time.Parse("2006-01", month); err != nil {
		BadRequest(c, "format bulan salah, gunakan YYYY-MM")
		return
	}

	data, err := buildReport(month)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "gagal menyusun laporan"))
		return
	}
	content, err := service.BuildCSV(data)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "gagal membuat CSV"))
		return
	}

	if err := h.emailService.SendMonthlyReport(req.To, data, content); err != nil {
		InternalError(c, SafeErrorMessage(err, "email gagal dikirim"))
		return
	}
	SuccessWithMessage(c, "laporan terkirim ke "+req.To, nil)
}
