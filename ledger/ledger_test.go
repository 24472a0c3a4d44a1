package ledger

import (
	"testing"
	"time"

	"github.com/setbox30-netizen/masjid-baitul-mannan/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(id uint, typ string, amount int64, date string) models.FinanceRecord {
	return models.FinanceRecord{
		ID:     id,
		Type:   typ,
		Amount: decimal.NewFromInt(amount),
		Date:   date,
	}
}

func TestComputeRunningBalance(t *testing.T) {
	// deliberately out of chronological order
	entries := []models.FinanceRecord{
		rec(3, models.FinanceTypeIncome, 200, "2026-02-01"),
		rec(1, models.FinanceTypeIncome, 1000, "2026-01-05"),
		rec(2, models.FinanceTypeExpense, 400, "2026-01-10"),
	}

	view, err := ComputeRunningBalance(entries)
	require.NoError(t, err)
	require.Len(t, view, 3)

	assert.Equal(t, uint(1), view[0].ID)
	assert.True(t, view[0].BalanceAfter.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, uint(2), view[1].ID)
	assert.True(t, view[1].BalanceAfter.Equal(decimal.NewFromInt(600)))
	assert.Equal(t, uint(3), view[2].ID)
	assert.True(t, view[2].BalanceAfter.Equal(decimal.NewFromInt(800)))

	// final balance equals the totals over the same set
	totals, err := ComputeTotals(entries)
	require.NoError(t, err)
	assert.True(t, view[len(view)-1].BalanceAfter.Equal(totals.Balance))
}

func TestComputeRunningBalance_Empty(t *testing.T) {
	view, err := ComputeRunningBalance(nil)
	require.NoError(t, err)
	assert.Empty(t, view)
}

func TestComputeRunningBalance_SameDateTieBreak(t *testing.T) {
	entries := []models.FinanceRecord{
		rec(7, models.FinanceTypeExpense, 50, "2026-03-15"),
		rec(4, models.FinanceTypeIncome, 100, "2026-03-15"),
	}

	first, err := ComputeRunningBalance(entries)
	require.NoError(t, err)
	require.Len(t, first, 2)

	// same date sorts by ID ascending
	assert.Equal(t, uint(4), first[0].ID)
	assert.Equal(t, uint(7), first[1].ID)
	assert.True(t, first[0].BalanceAfter.Equal(decimal.NewFromInt(100)))
	assert.True(t, first[1].BalanceAfter.Equal(decimal.NewFromInt(50)))

	// reproducible regardless of input order
	reversed := []models.FinanceRecord{entries[1], entries[0]}
	second, err := ComputeRunningBalance(reversed)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestComputeRunningBalance_Idempotent(t *testing.T) {
	entries := []models.FinanceRecord{
		rec(2, models.FinanceTypeExpense, 30, "2026-01-02"),
		rec(1, models.FinanceTypeIncome, 90, "2026-01-01"),
	}
	a, err := ComputeRunningBalance(entries)
	require.NoError(t, err)
	b, err := ComputeRunningBalance(entries)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	// input slice untouched
	assert.Equal(t, uint(2), entries[0].ID)
}

func TestComputeRunningBalance_InvalidInput(t *testing.T) {
	_, err := ComputeRunningBalance([]models.FinanceRecord{
		rec(1, models.FinanceTypeIncome, 10, "bukan-tanggal"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tanggal tidak valid")

	_, err = ComputeRunningBalance([]models.FinanceRecord{
		rec(1, "transfer", 10, "2026-01-01"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jenis tidak dikenal")

	bad := rec(1, models.FinanceTypeIncome, 0, "2026-01-01")
	bad.Amount = decimal.NewFromInt(-5)
	_, err = ComputeRunningBalance([]models.FinanceRecord{bad})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nominal negatif")
}

func TestComputeRunningBalance_DecimalPrecision(t *testing.T) {
	// 0.1 + 0.2 style drift must not appear
	entries := []models.FinanceRecord{
		{ID: 1, Type: models.FinanceTypeIncome, Amount: decimal.RequireFromString("0.10"), Date: "2026-01-01"},
		{ID: 2, Type: models.FinanceTypeIncome, Amount: decimal.RequireFromString("0.20"), Date: "2026-01-02"},
		{ID: 3, Type: models.FinanceTypeExpense, Amount: decimal.RequireFromString("0.30"), Date: "2026-01-03"},
	}
	view, err := ComputeRunningBalance(entries)
	require.NoError(t, err)
	assert.True(t, view[2].BalanceAfter.IsZero(), "got %s", view[2].BalanceAfter)
}

func TestFilterByMonth(t *testing.T) {
	entries := []models.FinanceRecord{
		rec(1, models.FinanceTypeIncome, 1000, "2026-01-05"),
		rec(2, models.FinanceTypeExpense, 400, "2026-01-10"),
		rec(3, models.FinanceTypeIncome, 200, "2026-02-01"),
	}
	view, err := ComputeRunningBalance(entries)
	require.NoError(t, err)

	jan := FilterByMonth(view, "2026-01")
	require.Len(t, jan, 2)

	// newest first within the month
	assert.Equal(t, uint(2), jan[0].ID)
	assert.Equal(t, uint(1), jan[1].ID)

	// balances are the whole-ledger running balances, not recomputed
	assert.True(t, jan[0].BalanceAfter.Equal(decimal.NewFromInt(600)))
	assert.True(t, jan[1].BalanceAfter.Equal(decimal.NewFromInt(1000)))

	feb := FilterByMonth(view, "2026-02")
	require.Len(t, feb, 1)
	assert.True(t, feb[0].BalanceAfter.Equal(decimal.NewFromInt(800)))
}

func TestFilterByMonth_NoMatch(t *testing.T) {
	view, err := ComputeRunningBalance([]models.FinanceRecord{
		rec(1, models.FinanceTypeIncome, 10, "2026-01-01"),
	})
	require.NoError(t, err)

	assert.Empty(t, FilterByMonth(view, "2025-12"))
	assert.Empty(t, FilterByMonth(nil, "2026-01"))
}

func TestAvailableMonths(t *testing.T) {
	now := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)
	entries := []models.FinanceRecord{
		rec(1, models.FinanceTypeIncome, 10, "2026-01-05"),
		rec(2, models.FinanceTypeIncome, 10, "2026-02-01"),
		rec(3, models.FinanceTypeExpense, 10, "2026-01-20"),
	}

	months := AvailableMonths(entries, now)
	assert.Equal(t, []string{"2026-04", "2026-02", "2026-01"}, months)
}

func TestAvailableMonths_CurrentMonthPresent(t *testing.T) {
	now := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	entries := []models.FinanceRecord{
		rec(1, models.FinanceTypeIncome, 10, "2026-02-01"),
		rec(2, models.FinanceTypeIncome, 10, "2026-03-01"),
	}

	// no duplicate when the data already has the current month
	months := AvailableMonths(entries, now)
	assert.Equal(t, []string{"2026-03", "2026-02"}, months)
}

func TestAvailableMonths_Empty(t *testing.T) {
	now := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, []string{"2026-08"}, AvailableMonths(nil, now))
}

func TestComputeTotals(t *testing.T) {
	entries := []models.FinanceRecord{
		rec(1, models.FinanceTypeIncome, 1000, "2026-01-05"),
		rec(2, models.FinanceTypeExpense, 400, "2026-01-10"),
		rec(3, models.FinanceTypeIncome, 200, "2026-02-01"),
	}
	totals, err := ComputeTotals(entries)
	require.NoError(t, err)
	assert.True(t, totals.TotalIncome.Equal(decimal.NewFromInt(1200)))
	assert.True(t, totals.TotalExpense.Equal(decimal.NewFromInt(400)))
	assert.True(t, totals.Balance.Equal(decimal.NewFromInt(800)))
}

func TestComputeTotals_Empty(t *testing.T) {
	totals, err := ComputeTotals(nil)
	require.NoError(t, err)
	assert.True(t, totals.TotalIncome.IsZero())
	assert.True(t, totals.TotalExpense.IsZero())
	assert.True(t, totals.Balance.IsZero())
}
