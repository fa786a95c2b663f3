package handlers

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/divan/num2words"
	"github.com/gin-gonic/gin"
	"github.com/go-pdf/fpdf"
	"github.com/google/generative-ai-go/genai"

	"github.com/MrSir504/Navigate-Tools-2.1/config"
	"github.com/MrSir504/Navigate-Tools-2.1/internal/engine"
)

// briefRequest bundles everything the advisor brief is built from: the
// affordability inputs plus an optional debt list for the payoff schedule.
type briefRequest struct {
	ClientName         string               `json:"clientName"`
	Health             engine.BriefInput    `json:"health"`
	Debts              []engine.Debt        `json:"debts"`
	DebtMonthlyPayment float64              `json:"debtMonthlyPayment"`
	Expenses           []engine.ExpenseItem `json:"expenses"`
}

type briefResult struct {
	Metrics    *engine.BriefMetrics    `json:"metrics"`
	Budget     *engine.BudgetResult    `json:"budget,omitempty"`
	DebtFreeIn int                     `json:"debtFreeInMonths,omitempty"`
	DebtPlan   []engine.AvalancheMonth `json:"debtPlan,omitempty"`
}

func buildBrief(c *gin.Context) (*briefRequest, *briefResult, bool) {
	var req briefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return nil, nil, false
	}

	metrics, err := engine.HealthCheck(req.Health)
	if err != nil {
		respondEngineError(c, err)
		return nil, nil, false
	}
	out := &briefResult{Metrics: metrics}

	if len(req.Expenses) > 0 {
		budget, err := engine.CalculateBudget(req.Health.MonthlyIncome, req.Expenses)
		if err != nil {
			respondEngineError(c, err)
			return nil, nil, false
		}
		out.Budget = budget
	}

	if len(req.Debts) > 0 {
		plan, payoffMonth, err := engine.AvalancheSchedule(req.Debts, req.DebtMonthlyPayment)
		if err != nil {
			respondEngineError(c, err)
			return nil, nil, false
		}
		out.DebtPlan = plan
		out.DebtFreeIn = payoffMonth
	}

	return &req, out, true
}

// CalculateBriefHandler assembles the one-page advisor brief: affordability
// ratios, optional budget split and an avalanche debt payoff plan.
func CalculateBriefHandler(c *gin.Context) {
	_, result, ok := buildBrief(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": result})
}

// ExportBriefHandler renders the brief as a spreadsheet.
func ExportBriefHandler(c *gin.Context) {
	req, result, ok := buildBrief(c)
	if !ok {
		return
	}

	rows := []exportRow{
		{"Client", req.ClientName},
		{"Monthly income", rand2(req.Health.MonthlyIncome)},
		{"Free cash", rand2(result.Metrics.FreeCash)},
		{"Savings rate", pct(result.Metrics.SavingsRate)},
		{"Debt-to-income", pct(result.Metrics.DebtToIncome)},
		{"Emergency fund target", rand2(result.Metrics.TargetCushion)},
		{"Emergency fund gap", rand2(result.Metrics.CushionGap)},
	}
	if result.Metrics.MonthsToTarget > 0 {
		rows = append(rows, exportRow{"Months to cushion target", fmt.Sprintf("%.1f", result.Metrics.MonthsToTarget)})
	}
	if result.Budget != nil {
		rows = append(rows,
			exportRow{"Total expenses", rand2(result.Budget.TotalExpenses)},
			exportRow{"Remaining budget", rand2(result.Budget.RemainingBudget)},
		)
	}
	if result.DebtFreeIn > 0 {
		rows = append(rows, exportRow{"Debt-free in (months)", result.DebtFreeIn})
	}

	writeSummaryWorkbook(c, "advisor_brief", "Advisor Brief", rows)
}

// amountInWords spells a rand amount out for the brief's headline figures.
func amountInWords(amount float64) string {
	rands := int(amount)
	cents := int(math.Round((amount - float64(rands)) * 100))
	words := num2words.Convert(rands)
	if cents > 0 {
		return fmt.Sprintf("%s rand and %d cents", words, cents)
	}
	return words + " rand"
}

// BriefPDFHandler renders the advisor brief as a printable PDF.
func BriefPDFHandler(c *gin.Context) {
	req, result, ok := buildBrief(c)
	if !ok {
		return
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 22)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(180, 12, "Advisor Brief", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.SetTextColor(80, 80, 80)
	if req.ClientName != "" {
		pdf.CellFormat(180, 7, req.ClientName, "", 1, "C", false, 0, "")
	}
	pdf.CellFormat(180, 7, fmt.Sprintf("Prepared %s", time.Now().Format("2 January 2006")), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(180, 8, "Financial Health", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(50, 50, 50)

	lines := [][]string{
		{"Monthly income:", rand2(req.Health.MonthlyIncome)},
		{"Free cash after commitments:", rand2(result.Metrics.FreeCash)},
		{"Savings rate:", pct(result.Metrics.SavingsRate)},
		{"Debt-to-income:", pct(result.Metrics.DebtToIncome)},
		{"Emergency fund target:", rand2(result.Metrics.TargetCushion)},
		{"Emergency fund gap:", rand2(result.Metrics.CushionGap)},
	}
	for _, l := range lines {
		pdf.CellFormat(70, 6, l[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(110, 6, l[1], "", 1, "L", false, 0, "")
	}

	pdf.SetFont("Arial", "I", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.MultiCell(180, 5, fmt.Sprintf("Free cash in words: %s per month.", amountInWords(result.Metrics.FreeCash)), "", "L", false)
	pdf.Ln(4)

	if result.DebtFreeIn > 0 {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(0, 51, 102)
		pdf.CellFormat(180, 8, "Debt Payoff (avalanche)", "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(50, 50, 50)
		pdf.CellFormat(180, 6, fmt.Sprintf("Debt-free in %d months paying %s per month, highest rate first.",
			result.DebtFreeIn, rand2(req.DebtMonthlyPayment)), "", 1, "L", false, 0, "")

		step := len(result.DebtPlan) / 12
		if step < 1 {
			step = 1
		}
		for i := 0; i < len(result.DebtPlan); i += step {
			m := result.DebtPlan[i]
			pdf.CellFormat(40, 5, fmt.Sprintf("Month %d", m.Month), "", 0, "L", false, 0, "")
			pdf.CellFormat(140, 5, fmt.Sprintf("remaining %s", rand2(m.TotalRemaining)), "", 1, "L", false, 0, "")
		}
		pdf.Ln(4)
	}

	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(128, 128, 128)
	pdf.MultiCell(180, 4,
		"This document is for discussion purposes only and does not constitute financial advice. "+
			"Figures are estimates based on the inputs provided.", "", "C", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render PDF"})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=advisor_brief.pdf")
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

// BriefNarrativeHandler asks Gemini for a short plain-language narrative of
// the brief. Returns 503 when the model is not configured.
func BriefNarrativeHandler(c *gin.Context) {
	if config.GeminiClient == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Narrative generation is not configured"})
		return
	}

	req, result, ok := buildBrief(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	prompt := fmt.Sprintf(
		"You are a South African financial advisor preparing for a client meeting. "+
			"Write a short, plain-language briefing (no more than 150 words) from these figures. "+
			"Do not give product recommendations. Figures: monthly income R%.2f, free cash R%.2f, "+
			"savings rate %.1f%%, debt-to-income %.1f%%, emergency fund gap R%.2f.",
		req.Health.MonthlyIncome, result.Metrics.FreeCash,
		result.Metrics.SavingsRate, result.Metrics.DebtToIncome, result.Metrics.CushionGap)
	if result.DebtFreeIn > 0 {
		prompt += fmt.Sprintf(" The client can be debt-free in %d months on the avalanche plan.", result.DebtFreeIn)
	}

	resp, err := config.GeminiClient.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Narrative generation failed: " + err.Error()})
		return
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Model returned no result"})
		return
	}
	text, okText := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !okText {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unexpected model response"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"narrative": strings.TrimSpace(string(text)), "result": result})
}
