package exporter

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/comunica-ads-api/internal/usecases/dashboard"
	"github.com/xuri/excelize/v2"
)

const (
	SheetName   = "Campanhas"
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	TotalsLabel = "TOTAIS / MÉDIAS"
)

var columns = []struct {
	title string
	width float64
	money bool
}{
	{"Conta", 25, false},
	{"Campanha", 40, false},
	{"Status", 15, false},
	{"Objetivo", 22, false},
	{"Valor Gasto (R$)", 18, true},
	{"Impressões", 15, false},
	{"Alcance", 15, false},
	{"CPM (R$)", 12, true},
	{"Custo por Conversa (R$)", 24, true},
	{"Conversas", 12, false},
	{"ROAS", 10, true},
}

// FileName monta o nome do arquivo a partir do período exibido
func FileName(view *dashboard.View) string {
	if view.DateRange.Since == "" {
		return "campanhas.xlsx"
	}
	return fmt.Sprintf("campanhas_%s_%s.xlsx", view.DateRange.Since, view.DateRange.Until)
}

// WriteCampaigns grava a tabela filtrada do painel, com a linha de totais, em formato XLSX
func WriteCampaigns(w io.Writer, view *dashboard.View) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("exporter: erro ao renomear planilha: %w", err)
	}

	header := make([]any, len(columns))
	for i, col := range columns {
		header[i] = col.title

		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(SheetName, name, name, col.width); err != nil {
			return err
		}
	}

	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("exporter: erro ao escrever cabeçalho: %w", err)
	}

	boldStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E3F2FD"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return err
	}

	lastColumn, _ := excelize.ColumnNumberToName(len(columns))
	if err := f.SetCellStyle(SheetName, "A1", lastColumn+"1", boldStyle); err != nil {
		return err
	}

	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00
	if err != nil {
		return err
	}

	for i, c := range view.Campaigns {
		row := []any{
			c.AccountName,
			c.Name,
			c.Status.Label(),
			c.Objective,
			money(c.SpendValue()),
			c.ImpressionsValue().IntPart(),
			c.ReachValue().IntPart(),
			money(c.CPMValue()),
			money(c.CostPerConversationValue()),
			c.Insights.ConversationCount,
			money(c.ROASValue()),
		}

		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("exporter: erro ao escrever linha %d: %w", i+2, err)
		}
	}

	if len(view.Campaigns) > 0 {
		for i, col := range columns {
			if !col.money {
				continue
			}
			first, _ := excelize.CoordinatesToCellName(i+1, 2)
			last, _ := excelize.CoordinatesToCellName(i+1, len(view.Campaigns)+1)
			if err := f.SetCellStyle(SheetName, first, last, moneyStyle); err != nil {
				return err
			}
		}

		if err := writeTotals(f, len(view.Campaigns)+2, view.Summary, boldStyle); err != nil {
			return err
		}
	}

	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}

	return f.Write(w)
}

func writeTotals(f *excelize.File, rowNum int, summary dashboard.Summary, style int) error {
	row := []any{
		TotalsLabel,
		nil,
		nil,
		nil,
		money(summary.TotalSpend),
		summary.TotalImpressions,
		nil,
		money(summary.AverageCPM),
		money(summary.AverageCostPerConversation),
		summary.TotalConversations,
		nil,
	}

	cell, _ := excelize.CoordinatesToCellName(1, rowNum)
	if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
		return fmt.Errorf("exporter: erro ao escrever totais: %w", err)
	}

	last, _ := excelize.CoordinatesToCellName(len(columns), rowNum)
	return f.SetCellStyle(SheetName, cell, last, style)
}

func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
