package api

import (
	"github.com/setbox30-netizen/masjid-baitul-mannan/config"
	"github.com/setbox30-netizen/masjid-baitul-mannan/database"
	"github.com/setbox30-netizen/masjid-baitul-mannan/middleware"
	"github.com/setbox30-netizen/masjid-baitul-mannan/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler handles login and account management
type AuthHandler struct {
	cfg *config.Config
}

// NewAuthHandler creates the auth handler
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

// LoginRequest login body
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"admin123"`
}

// LoginResponse login result
type LoginResponse struct {
	Token    string      `json:"token"`
	UserInfo models.User `json:"user_info"`
}

// Login authenticates a user and issues a JWT
// @Summary Login
// @Description Masuk dengan username dan kata sandi, mengembalikan token JWT beserta peran (admin/member).
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Kredensial"
// @Success 200 {object} Response{data=LoginResponse} "Berhasil"
// @Failure 400 {object} Response "Parameter salah"
// @Failure 401 {object} Response "Username atau password salah"
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "parameter tidak lengkap"))
		return
	}

	var user models.User
	if err := database.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		Unauthorized(c, "Username atau password salah")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		Unauthorized(c, "Username atau password salah")
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Username, user.Role, h.cfg.JWT.ExpireTime)
	if err != nil {
		InternalError(c, "gagal membuat token")
		return
	}

	Success(c, LoginResponse{Token: token, UserInfo: user})
}

// GetProfile returns the authenticated account
// @Summary Profil saya
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=models.User} "Berhasil"
// @Failure 401 {object} Response "Belum login"
// @Router /api/v1/auth/profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		NotFound(c, "akun tidak ditemukan")
		return
	}
	Success(c, user)
}

// ChangePasswordRequest change-password body
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6,max=50"`
}

// ChangePassword updates the caller's own password
// @Summary Ganti kata sandi
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ChangePasswordRequest true "Kata sandi"
// @Success 200 {object} Response "Berhasil"
// @Failure 400 {object} Response "Parameter salah"
// @Failure 401 {object} Response "Kata sandi lama salah"
// @Router /api/v1/auth/password [put]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "parameter tidak lengkap"))
		return
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		NotFound(c, "akun tidak ditemukan")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)); err != nil {
		Unauthorized(c, "kata sandi lama salah")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		InternalError(c, "gagal meng-hash kata sandi")
		return
	}

	if err := database.DB.Model(&user).Update("password", string(hashed)).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "gagal menyimpan kata sandi"))
		return
	}

	SuccessWithMessage(c, "kata sandi diperbarui", nil)
}
