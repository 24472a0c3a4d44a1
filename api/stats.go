package api

import (
	"time"

	"github.com/setbox30-netizen/masjid-baitul-mannan/database"
	"github.com/setbox30-netizen/masjid-baitul-mannan/ledger"
	"github.com/setbox30-netizen/masjid-baitul-mannan/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// StatsHandler serves the dashboard summary
type StatsHandler struct{}

// NewStatsHandler creates the stats handler
func NewStatsHandler() *StatsHandler {
	return &StatsHandler{}
}

// StatsResponse dashboard numbers
type StatsResponse struct {
	Balance        decimal.Decimal `json:"balance"`
	TotalIncome    decimal.Decimal `json:"total_income"`
	TotalExpense   decimal.Decimal `json:"total_expense"`
	InventoryCount int64           `json:"inventory_count"`
	UpcomingEvents int64           `json:"upcoming_events"`
}

// Get returns the dashboard summary
// @Summary Ringkasan dasbor
// @Description Saldo dan total dihitung atas seluruh buku kas, bukan halaman pratinjau 50 baris.
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=StatsResponse} "Berhasil"
// @Router /api/v1/stats [get]
func (h *StatsHandler) Get(c *gin.Context) {
	// totals need the full ledger, never the capped preview
	var records []models.FinanceRecord
	if err := database.DB.Find(&records).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "gagal memuat buku kas"))
		return
	}
	totals, err := ledger.ComputeTotals(records)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "buku kas berisi data tidak valid"))
		return
	}

	var inventoryCount int64
	database.DB.Model(&models.InventoryItem{}).Count(&inventoryCount)

	today := time.Now().Format(ledger.DateLayout)
	var upcoming int64
	database.DB.Model(&models.Event{}).Where("date >= ?", today).Count(&upcoming)

	Success(c, StatsResponse{
		Balance:        totals.Balance,
		TotalIncome:    totals.TotalIncome,
		TotalExpense:   totals.TotalExpense,
		InventoryCount: inventoryCount,
		UpcomingEvents: upcoming,
	})
}
