// Package ledger computes running-balance views over the finance
// records. All functions are pure: they take a snapshot of the ledger
// and return freshly computed results, so every report refresh works on
// the full, unbounded set of records (never a capped preview page).
package ledger

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/setbox30-netizen/masjid-baitul-mannan/models"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-date format of FinanceRecord.Date.
const DateLayout = "2006-01-02"

// BalancedEntry pairs a finance record with the cumulative balance of
// the whole ledger after that record, in chronological order.
type BalancedEntry struct {
	models.FinanceRecord
	BalanceAfter decimal.Decimal `json:"balance_after"`
}

// Totals is the income/expense summary over a full set of records.
type Totals struct {
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	Balance      decimal.Decimal `json:"balance"`
}

func validate(e models.FinanceRecord) error {
	if !models.IsValidFinanceType(e.Type) {
		return fmt.Errorf("transaksi %d: jenis tidak dikenal %q", e.ID, e.Type)
	}
	if e.Amount.IsNegative() {
		return fmt.Errorf("transaksi %d: nominal negatif %s", e.ID, e.Amount)
	}
	if _, err := time.Parse(DateLayout, e.Date); err != nil {
		return fmt.Errorf("transaksi %d: tanggal tidak valid %q: %w", e.ID, e.Date, err)
	}
	return nil
}

// ComputeRunningBalance sorts the entries chronologically and folds a
// running balance over them: income adds, expense subtracts. Entries on
// the same date are ordered by ID ascending so the output is
// deterministic regardless of fetch order. Malformed entries fail fast
// rather than sorting silently wrong.
func ComputeRunningBalance(entries []models.FinanceRecord) ([]BalancedEntry, error) {
	for _, e := range entries {
		if err := validate(e); err != nil {
			return nil, err
		}
	}

	sorted := make([]models.FinanceRecord, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Date != sorted[j].Date {
			return sorted[i].Date < sorted[j].Date
		}
		return sorted[i].ID < sorted[j].ID
	})

	view := make([]BalancedEntry, 0, len(sorted))
	balance := decimal.Zero
	for _, e := range sorted {
		if e.Type == models.FinanceTypeIncome {
			balance = balance.Add(e.Amount)
		} else {
			balance = balance.Sub(e.Amount)
		}
		view = append(view, BalancedEntry{FinanceRecord: e, BalanceAfter: balance})
	}
	return view, nil
}

// FilterByMonth narrows a chronologically ascending balanced view to
// one YYYY-MM month and returns it newest first. BalanceAfter values
// are carried over unchanged: a month statement still shows the true
// account balance after each line, not a month-local subtotal.
func FilterByMonth(view []BalancedEntry, month string) []BalancedEntry {
	filtered := make([]BalancedEntry, 0)
	for _, e := range view {
		if strings.HasPrefix(e.Date, month) {
			filtered = append(filtered, e)
		}
	}
	for i, j := 0, len(filtered)-1; i < j; i, j = i+1, j-1 {
		filtered[i], filtered[j] = filtered[j], filtered[i]
	}
	return filtered
}

// AvailableMonths lists the distinct YYYY-MM values present in the
// entries, most recent first. The month of now is prepended when the
// data does not contain it, so "this month" is always selectable even
// with zero transactions.
func AvailableMonths(entries []models.FinanceRecord, now time.Time) []string {
	seen := make(map[string]bool)
	months := make([]string, 0)
	for _, e := range entries {
		if len(e.Date) < 7 {
			continue
		}
		m := e.Date[:7]
		if !seen[m] {
			seen[m] = true
			months = append(months, m)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))

	current := now.Format("2006-01")
	if !seen[current] {
		months = append([]string{current}, months...)
	}
	return months
}

// ComputeTotals sums income and expense over the full set supplied,
// never a filtered subset. Empty input yields zero totals.
func ComputeTotals(entries []models.FinanceRecord) (Totals, error) {
	t := Totals{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
		Balance:      decimal.Zero,
	}
	for _, e := range entries {
		if err := validate(e); err != nil {
			return Totals{}, err
		}
		if e.Type == models.FinanceTypeIncome {
			t.TotalIncome = t.TotalIncome.Add(e.Amount)
		} else {
			t.TotalExpense = t.TotalExpense.Add(e.Amount)
		}
	}
	t.Balance = t.TotalIncome.Sub(t.TotalExpense)
	return t, nil
}
