package api

import (
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/setbox30-netizen/masjid-baitul-mannan/database"
	"github.com/setbox30-netizen/masjid-baitul-mannan/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// maxLogoBytes caps the uploaded logo size (stored inline as a data URL)
const maxLogoBytes = 512 * 1024

// SettingsHandler handles the mosque profile
type SettingsHandler struct{}

// NewSettingsHandler creates the settings handler
func NewSettingsHandler() *SettingsHandler {
	return &SettingsHandler{}
}

// Get returns the typed mosque profile
// @Summary Profil masjid
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=models.MosqueProfile} "Berhasil"
// @Router /api/v1/settings [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	var rows []models.Setting
	if err := database.DB.Find(&rows).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "gagal memuat pengaturan"))
		return
	}
	Success(c, models.ProfileFromSettings(rows))
}

// UpdateSettingsRequest bulk update body. Only known keys are allowed;
// keys left out keep their stored value.
type UpdateSettingsRequest map[string]string

// Update upserts settings atomically: either every pair is written or
// none is.
// @Summary Simpan profil masjid
// @Description Upsert massal dalam satu transaksi. Kunci di luar daftar yang dikenal ditolak.
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateSettingsRequest true "Pasangan kunci/nilai"
// @Success 200 {object} Response{data=models.MosqueProfile} "Berhasil"
// @Failure 400 {object} Response "Kunci tidak dikenal"
// @Router /api/v1/settings [put]
func (h *SettingsHandler) Update(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "parameter tidak lengkap"))
		return
	}
	if len(req) == 0 {
		BadRequest(c, "tidak ada pengaturan yang dikirim")
		return
	}
	for key := range req {
		if !models.IsKnownSettingKey(key) {
			BadRequest(c, fmt.Sprintf("kunci pengaturan tidak dikenal: %s", key))
			return
		}
	}

	// all-or-nothing across every pair
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		for key, value := range req {
			row := models.Setting{Key: key, Value: value}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value"}),
			}).Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "gagal menyimpan pengaturan"))
		return
	}

	var rows []models.Setting
	if err := database.DB.Find(&rows).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "gagal memuat pengaturan"))
		return
	}
	SuccessWithMessage(c, "pengaturan tersimpan", models.ProfileFromSettings(rows))
}

// UploadLogo stores an uploaded image as the mosque logo. The file is
// kept inline as a data URL in the settings table, the same place the
// rest of the profile lives.
// @Summary Unggah logo
// @Tags settings
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param logo formData file true "Berkas gambar (maks 512 KB)"
// @Success 200 {object} Response "Berhasil"
// @Failure 400 {object} Response "Berkas tidak valid"
// @Router /api/v1/settings/logo [post]
func (h *SettingsHandler) UploadLogo(c *gin.Context) {
	file, header, err := c.Request.FormFile("logo")
	if err != nil {
		BadRequest(c, "berkas logo tidak ditemukan")
		return
	}
	defer file.Close()

	if header.Size > maxLogoBytes {
		BadRequest(c, "ukuran logo maksimal 512 KB")
		return
	}

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		BadRequest(c, "berkas harus berupa gambar")
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxLogoBytes+1))
	if err != nil || len(data) > maxLogoBytes {
		BadRequest(c, "gagal membaca berkas logo")
		return
	}

	dataURL := fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data))
	row := models.Setting{Key: models.SettingMosqueLogo, Value: dataURL}
	if err := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&row).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "gagal menyimpan logo"))
		return
	}

	SuccessWithMessage(c, "logo tersimpan", nil)
}
