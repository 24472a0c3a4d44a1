package service

import (
	"fmt"
	"io"

	"github.com/setbox30-netizen/masjid-baitul-mannan/config"

	"gopkg.in/gomail.v2"
)

// EmailService sends ledger reports over SMTP
type EmailService struct {
	cfg *config.EmailConfig
}

// NewEmailService creates the email service
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// SendMonthlyReport mails the monthly statement with the CSV attached.
func (s *EmailService) SendMonthlyReport(toEmail string, data ReportData, csvAttachment []byte) error {
	if !s.cfg.Enabled {
		return fmt.Errorf("layanan email belum diaktifkan, set email.enabled: true")
	}

	subject := fmt.Sprintf("Laporan Keuangan %s - %s", data.Profile.MosqueName, data.PeriodLabel())
	body := s.reportEmailBody(data)

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.Username, s.cfg.From))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)
	m.Attach(data.Filename("csv"), gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(csvAttachment)
		return err
	}))

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("gagal mengirim email: %w", err)
	}
	return nil
}

// reportEmailBody builds a short HTML summary; the full statement is in
// the attachment.
func (s *EmailService) reportEmailBody(data ReportData) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: sans-serif; color: #333;">
  <h2>Laporan Keuangan %s</h2>
  <p>Periode: <strong>%s</strong></p>
  <table cellpadding="6" style="border-collapse: collapse;">
    <tr><td>Total Pemasukan</td><td align="right"><strong>%s</strong></td></tr>
    <tr><td>Total Pengeluaran</td><td align="right"><strong>%s</strong></td></tr>
    <tr><td>Saldo Akhir</td><td align="right"><strong>%s</strong></td></tr>
    <tr><td>Jumlah Transaksi</td><td align="right">%d</td></tr>
  </table>
  <p>Rincian transaksi terlampir dalam berkas CSV.</p>
  <p style="color: #888; font-size: 12px;">Email ini dikirim otomatis oleh sistem administrasi masjid.</p>
</body>
</html>
`,
		data.Profile.MosqueName,
		data.PeriodLabel(),
		data.Totals.TotalIncome.StringFixed(2),
		data.Totals.TotalExpense.StringFixed(2),
		data.Totals.Balance.StringFixed(2),
		len(data.Entries),
	)
}
