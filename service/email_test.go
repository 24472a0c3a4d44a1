package service

import (
	"testing"

	"github.com/setbox30-netizen/masjid-baitul-mannan/config"

	"github.com/stretchr/testify/assert"
)

func TestSendMonthlyReport_Disabled(t *testing.T) {
	s := NewEmailService(&config.EmailConfig{Enabled: false})
	err := s.SendMonthlyReport("bendahara@example.com", testReportData(), []byte("csv"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "belum diaktifkan")
}

func TestReportEmailBody(t *testing.T) {
	s := NewEmailService(&config.EmailConfig{})
	body := s.reportEmailBody(testReportData())
	assert.Contains(t, body, "Baitul Mannan")
	assert.Contains(t, body, "Februari 2026")
	assert.Contains(t, body, "1250.00")
	assert.Contains(t, body, "400.00")
	assert.Contains(t, body, "850.00")
	assert.Contains(t, body, "terlampir")
}
