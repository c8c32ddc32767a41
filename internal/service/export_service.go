package service

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/shravani12148/Goal--Based-Diversification-System/internal/model"
)

// ExportService renders a goal's portfolio table for download.
type ExportService struct{}

// NewExportService creates a new ExportService.
func NewExportService() *ExportService {
	return &ExportService{}
}

// PortfolioCSV exports allocation rows to CSV. Allocations are written with
// two decimals and SIP amounts rounded to the nearest whole unit; quoting
// follows RFC 4180 so the output parses back with a standard reader.
func (s *ExportService) PortfolioCSV(rows []model.AllocationRow) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := []string{"Asset Class", "Sub Category", "Allocation (%)", "Monthly SIP"}
	if err := writer.Write(header); err != nil {
		return nil, fmt.Errorf("writing CSV header: %w", err)
	}

	for _, r := range rows {
		record := []string{
			string(r.AssetClass),
			r.SubCategory,
			r.Allocation.StringFixed(2),
			r.MonthlySIP.Round(0).StringFixed(0),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("writing CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flushing CSV writer: %w", err)
	}

	return buf.Bytes(), nil
}

// PortfolioPDF generates a PDF of a stored goal: target, SIP, and the
// portfolio table grouped by asset class with subtotals and grand totals.
func (s *ExportService) PortfolioPDF(goal *model.Goal) ([]byte, error) {
	grouped, err := Group(goal.PortfolioTable)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// Title
	pdf.SetFont("Arial", "B", 24)
	pdf.SetTextColor(33, 37, 41)
	pdf.CellFormat(0, 12, "Goal-Based Diversification", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 14)
	pdf.SetTextColor(108, 117, 125)
	pdf.CellFormat(0, 8, fmt.Sprintf("%s plan, %d year horizon", goal.RiskProfile, goal.HorizonYears), "", 1, "C", false, 0, "")

	pdf.Ln(10)

	// Goal Summary
	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(33, 37, 41)
	pdf.CellFormat(0, 8, "Goal Summary", "", 1, "L", false, 0, "")

	pdf.SetDrawColor(200, 200, 200)
	pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
	pdf.Ln(5)

	pdf.SetFont("Arial", "", 11)
	summaryRows := [][2]string{
		{"Target Corpus", goal.TargetCorpus.StringFixed(2)},
		{"Monthly SIP", goal.MonthlySIP.Round(0).StringFixed(0)},
		{"Expected Annual Return", goal.ExpectedReturnAnnual.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"},
	}
	for _, row := range summaryRows {
		pdf.CellFormat(85, 7, row[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(85, 7, row[1], "", 1, "R", false, 0, "")
	}

	pdf.Ln(8)

	// Portfolio Table
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 8, "Portfolio Allocation", "", 1, "L", false, 0, "")
	pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
	pdf.Ln(5)

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(70, 7, "Sub Category", "1", 0, "L", true, 0, "")
	pdf.CellFormat(50, 7, "Allocation (%)", "1", 0, "R", true, 0, "")
	pdf.CellFormat(50, 7, "Monthly SIP", "1", 1, "R", true, 0, "")

	for _, group := range grouped.Groups {
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(170, 7, string(group.AssetClass), "1", 1, "L", true, 0, "")

		pdf.SetFont("Arial", "", 10)
		for _, r := range group.Rows {
			pdf.CellFormat(70, 7, r.SubCategory, "1", 0, "L", false, 0, "")
			pdf.CellFormat(50, 7, r.Allocation.StringFixed(2), "1", 0, "R", false, 0, "")
			pdf.CellFormat(50, 7, r.MonthlySIP.Round(0).StringFixed(0), "1", 1, "R", false, 0, "")
		}

		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(70, 7, "Subtotal", "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 7, group.SubtotalAllocation.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(50, 7, group.SubtotalSIP.Round(0).StringFixed(0), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(70, 8, "Total", "1", 0, "L", true, 0, "")
	pdf.CellFormat(50, 8, grouped.GrandTotalAllocation.StringFixed(2), "1", 0, "R", true, 0, "")
	pdf.CellFormat(50, 8, grouped.GrandTotalSIP.Round(0).StringFixed(0), "1", 1, "R", true, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("generating PDF: %w", err)
	}
	return buf.Bytes(), nil
}
