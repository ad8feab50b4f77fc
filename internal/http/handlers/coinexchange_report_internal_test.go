package handlers

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/NuryND000/backend-gr-coin-v3/internal/domain/models"
)

func TestBuildExchangeReportPDF(t *testing.T) {
	list := []models.CoinExchangeWithUser{
		{
			CoinExchange: models.CoinExchange{ID: 1, UserID: 4, Amount: 2500, Date: time.Now()},
			User:         models.PublicUser{ID: 4, Username: "budi"},
		},
		{
			CoinExchange: models.CoinExchange{ID: 2, UserID: 5, Amount: 1000, Date: time.Now()},
			User:         models.PublicUser{ID: 5, Username: "sari"},
		},
	}

	pdfBytes, filename, err := buildExchangeReportPDF(list)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !bytes.HasPrefix(pdfBytes, []byte("%PDF")) {
		t.Fatalf("output is not a PDF, starts with %q", pdfBytes[:min(8, len(pdfBytes))])
	}
	if !strings.HasPrefix(filename, "REKAP_COIN_EXCHANGE_") || !strings.HasSuffix(filename, ".pdf") {
		t.Fatalf("unexpected filename %q", filename)
	}
}

func TestBuildExchangeReportPDFEmpty(t *testing.T) {
	pdfBytes, _, err := buildExchangeReportPDF(nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(pdfBytes) == 0 {
		t.Fatal("empty recap should still produce a document")
	}
}
