package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/setbox30-netizen/masjid-baitul-mannan/ledger"
	"github.com/setbox30-netizen/masjid-baitul-mannan/models"

	"github.com/xuri/excelize/v2"
)

// ReportData is everything the renderers need for one monthly report.
// Entries come from ledger.FilterByMonth (newest first); the renderers
// put them back in chronological order, which is how the printed
// statement reads.
type ReportData struct {
	Profile     models.MosqueProfile
	Month       string // YYYY-MM
	Entries     []ledger.BalancedEntry
	Totals      ledger.Totals
	GeneratedAt time.Time
}

// reportRow is one rendered statement line: income fills the debit
// column, expense the credit column, and the balance is the running
// balance of the whole ledger after the line.
type reportRow struct {
	Date        string
	Description string
	Category    string
	Debit       string
	Credit      string
	Balance     string
}

func (d ReportData) rows() []reportRow {
	// oldest first for reading order
	rows := make([]reportRow, 0, len(d.Entries))
	for i := len(d.Entries) - 1; i >= 0; i-- {
		e := d.Entries[i]
		row := reportRow{
			Date:        e.Date,
			Description: e.Description,
			Category:    e.Category,
			Debit:       "0",
			Credit:      "0",
			Balance:     e.BalanceAfter.StringFixed(2),
		}
		if e.Type == models.FinanceTypeIncome {
			row.Debit = e.Amount.StringFixed(2)
		} else {
			row.Credit = e.Amount.StringFixed(2)
		}
		rows = append(rows, row)
	}
	return rows
}

// Filename returns the download name for the given extension, e.g.
// Laporan_Baitul_Mannan_2026-02.csv
func (d ReportData) Filename(ext string) string {
	name := d.Profile.MosqueName
	if name == "" {
		name = "Masjid"
	}
	return fmt.Sprintf("Laporan_%s_%s.%s", strings.ReplaceAll(name, " ", "_"), d.Month, ext)
}

// PeriodLabel formats the month for display, e.g. "Februari 2026"
func (d ReportData) PeriodLabel() string {
	t, err := time.Parse("2006-01", d.Month)
	if err != nil {
		return d.Month
	}
	return indonesianMonths[t.Month()] + " " + fmt.Sprintf("%d", t.Year())
}

var indonesianMonths = map[time.Month]string{
	time.January:   "Januari",
	time.February:  "Februari",
	time.March:     "Maret",
	time.April:     "April",
	time.May:       "Mei",
	time.June:      "Juni",
	time.July:      "Juli",
	time.August:    "Agustus",
	time.September: "September",
	time.October:   "Oktober",
	time.November:  "November",
	time.December:  "Desember",
}

// csvHeader is the fixed export column order.
var csvHeader = []string{"Tanggal", "Uraian", "Kategori", "Debet", "Kredit", "Saldo"}

// BuildCSV renders the report as a CSV file, oldest line first.
func BuildCSV(data ReportData) ([]byte, error) {
	buf := new(bytes.Buffer)
	// BOM so spreadsheet apps detect UTF-8
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)
	if err := writer.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, row := range data.rows() {
		record := []string{row.Date, row.Description, row.Category, row.Debit, row.Credit, row.Balance}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BuildExcel renders the report as an xlsx workbook.
func BuildExcel(data ReportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Laporan"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	title := "LAPORAN KEUANGAN " + strings.ToUpper(data.Profile.MosqueName)
	f.SetCellValue(sheet, "A1", title)
	f.SetCellValue(sheet, "A2", "Periode: "+data.PeriodLabel())
	f.MergeCell(sheet, "A1", "F1")
	f.MergeCell(sheet, "A2", "F2")

	for col, name := range csvHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 4)
		f.SetCellValue(sheet, cell, name)
	}
	for i, row := range data.rows() {
		values := []interface{}{row.Date, row.Description, row.Category, row.Debit, row.Credit, row.Balance}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+5)
			f.SetCellValue(sheet, cell, v)
		}
	}

	summaryRow := len(data.Entries) + 6
	cell, _ := excelize.CoordinatesToCellName(1, summaryRow)
	f.SetCellValue(sheet, cell, "Total Pemasukan: "+data.Totals.TotalIncome.StringFixed(2))
	cell, _ = excelize.CoordinatesToCellName(1, summaryRow+1)
	f.SetCellValue(sheet, cell, "Total Pengeluaran: "+data.Totals.TotalExpense.StringFixed(2))
	cell, _ = excelize.CoordinatesToCellName(1, summaryRow+2)
	f.SetCellValue(sheet, cell, "Saldo Akhir: "+data.Totals.Balance.StringFixed(2))

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var printTemplate = template.Must(template.New("print").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>Laporan Keuangan - {{.Profile.MosqueName}}</title>
  <style>
    body { font-family: sans-serif; padding: 40px; }
    table { width: 100%; border-collapse: collapse; margin-top: 20px; }
    th, td { border: 1px solid #ddd; padding: 8px; }
    th { background-color: #f2f2f2; }
    td.num, th.num { text-align: right; }
    h1, h2, h3 { text-align: center; margin: 5px; }
    .header { margin-bottom: 30px; border-bottom: 2px solid #333; padding-bottom: 10px; text-align: center; }
    .signatures { margin-top: 50px; display: flex; justify-content: space-between; padding: 0 50px; }
    .signature { text-align: center; }
    .signature .name { text-decoration: underline; font-weight: bold; }
    .signature .role { font-weight: bold; margin-bottom: 60px; }
  </style>
</head>
<body>
  <div class="header">
    {{if .Profile.MosqueLogo}}<img src="{{.Profile.MosqueLogo}}" style="height: 80px; margin-bottom: 10px;" />{{end}}
    <h1>LAPORAN KEUANGAN</h1>
    <h2>{{.MosqueNameUpper}}</h2>
    <h3>{{.Profile.MosqueAddress}}</h3>
    <h3>Periode: {{.Period}}</h3>
    <p>Dicetak pada: {{.PrintedAt}}</p>
  </div>
  <table>
    <thead>
      <tr>
        <th>Tanggal</th>
        <th>Uraian</th>
        <th>Kategori</th>
        <th class="num">Debet (Masuk)</th>
        <th class="num">Kredit (Keluar)</th>
        <th class="num">Saldo</th>
      </tr>
    </thead>
    <tbody>
      {{range .Rows}}
      <tr>
        <td>{{.Date}}</td>
        <td>{{.Description}}</td>
        <td>{{.Category}}</td>
        <td class="num">{{.Debit}}</td>
        <td class="num">{{.Credit}}</td>
        <td class="num"><strong>{{.Balance}}</strong></td>
      </tr>
      {{else}}
      <tr><td colspan="6" style="text-align: center;">Tidak ada transaksi pada periode ini</td></tr>
      {{end}}
    </tbody>
  </table>
  <div class="signatures">
    <div class="signature">
      <p>Mengetahui,</p>
      <p class="role">Ketua Takmir</p>
      <p class="name">{{.ChairmanOrDash}}</p>
    </div>
    <div class="signature">
      <p>{{.PrintedDate}}</p>
      <p class="role">Bendahara</p>
      <p class="name">{{.TreasurerOrDash}}</p>
    </div>
  </div>
</body>
</html>
`))

// RenderPrintHTML renders the printable statement: header with logo and
// mosque identity, the ledger table oldest first, and the
// chairman/treasurer signature block.
func RenderPrintHTML(data ReportData) ([]byte, error) {
	chairman := data.Profile.ChairmanName
	if chairman == "" {
		chairman = "-"
	}
	treasurer := data.Profile.TreasurerName
	if treasurer == "" {
		treasurer = "-"
	}

	ctx := struct {
		Profile         models.MosqueProfile
		MosqueNameUpper string
		Period          string
		PrintedAt       string
		PrintedDate     string
		Rows            []reportRow
		ChairmanOrDash  string
		TreasurerOrDash string
	}{
		Profile:         data.Profile,
		MosqueNameUpper: strings.ToUpper(data.Profile.MosqueName),
		Period:          data.PeriodLabel(),
		PrintedAt:       data.GeneratedAt.Format("02-01-2006 15:04"),
		PrintedDate:     data.GeneratedAt.Format("02-01-2006"),
		Rows:            data.rows(),
		ChairmanOrDash:  chairman,
		TreasurerOrDash: treasurer,
	}

	buf := new(bytes.Buffer)
	if err := printTemplate.Execute(buf, ctx); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
