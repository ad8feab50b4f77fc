package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/NuryND000/backend-gr-coin-v3/internal/domain/models"
	"github.com/NuryND000/backend-gr-coin-v3/internal/repositories"

	"github.com/gin-gonic/gin"
	"github.com/phpdave11/gofpdf"
)

// GET /coinexchange/report (admin only)
// Rekap seluruh coin exchange dalam bentuk PDF.
func GetCoinExchangeReportPDF(c *gin.Context) {
	repo := repositories.CoinExchangeRepository{}
	list, err := repo.ListAllWithUser()
	if err != nil {
		RespondDomainError(c, "coinexchange", "report", err)
		return
	}

	pdfBytes, filename, err := buildExchangeReportPDF(list)
	if err != nil {
		RespondDomainError(c, "coinexchange", "report", err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

func buildExchangeReportPDF(list []models.CoinExchangeWithUser) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Rekap Coin Exchange", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "REKAP COIN EXCHANGE")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, "Dibuat: "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(20, 7, "ID")
	pdf.Cell(60, 7, "User")
	pdf.Cell(40, 7, "Jumlah")
	pdf.Cell(50, 7, "Tanggal")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	var total float64
	for _, e := range list {
		pdf.Cell(20, 7, fmt.Sprintf("%d", e.ID))
		pdf.Cell(60, 7, e.User.Username)
		pdf.Cell(40, 7, fmt.Sprintf("%.0f", e.Amount))
		pdf.Cell(50, 7, e.Date.Format("2006-01-02 15:04"))
		pdf.Ln(7)
		total += e.Amount
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Total: %.0f koin dari %d exchange", total, len(list)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("REKAP_COIN_EXCHANGE_%s.pdf", time.Now().Format("20060102"))
	return buf.Bytes(), filename, nil
}
