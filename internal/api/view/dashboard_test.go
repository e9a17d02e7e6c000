package view

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/comunica-ads-api/internal/domain"
	"github.com/vfg2006/comunica-ads-api/internal/usecases/dashboard"
)

func testCampaign(id, name, account, spend, impressions, cost string) domain.Campaign {
	insights := domain.EmptyInsights()
	insights.Spend = spend
	insights.Impressions = impressions
	insights.Reach = impressions
	insights.CPM = "10.00"
	insights.CostPerConversation = cost

	return domain.Campaign{
		ID:          id,
		Name:        name,
		Status:      domain.CampaignStatusActive,
		Objective:   "OUTCOME_SALES",
		AccountName: account,
		Insights:    insights,
	}
}

func testView(campaigns []domain.Campaign) *dashboard.View {
	since := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	snapshot := &dashboard.Snapshot{
		DateRange: domain.NewDateRange(&since, &until),
		Campaigns: campaigns,
		Accounts:  []string{"Loja A", "Loja B"},
	}

	return snapshot.View(dashboard.Filters{Account: "Loja A"})
}

func TestNewPage(t *testing.T) {
	view := testView([]domain.Campaign{
		testCampaign("1", "Black Friday", "Loja A", "1500.5", "1234567", "2.50"),
		testCampaign("2", "Whatsapp", "Loja A", "20", "1000", "4.00"),
		testCampaign("3", "Outra loja", "Loja B", "20", "1000", "0.00"),
	})

	page, err := NewPage(view, decimal.NewFromInt(3), true, "account=Loja+A")
	require.NoError(t, err)

	require.Len(t, page.Rows, 2)
	assert.Equal(t, "1500.50", page.Rows[0].Spend)
	assert.Equal(t, "1.234.567", page.Rows[0].Impressions)
	assert.Equal(t, dashboard.IndicatorGood, page.Rows[0].Indicator)
	assert.Equal(t, dashboard.IndicatorWarning, page.Rows[1].Indicator)
	assert.Equal(t, "Ativa", page.Rows[0].StatusLabel)
	assert.Equal(t, "1520.50", page.Totals.Spend)
	assert.Equal(t, 2, page.CampaignCount)
	assert.Contains(t, string(page.ChartsJSON), `"spend_by_account"`)
}

func TestRender(t *testing.T) {
	view := testView([]domain.Campaign{
		testCampaign("1", "Black Friday", "Loja A", "100", "2000", "2.50"),
	})

	page, err := NewPage(view, decimal.NewFromInt(3), true, "account=Loja+A")
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	require.NoError(t, Render(buf, page))

	html := buf.String()
	assert.Contains(t, html, "Black Friday")
	assert.Contains(t, html, "TOTAIS / MÉDIAS")
	assert.Contains(t, html, "1 campanha encontrada")
	assert.Contains(t, html, "cost-good")
	assert.Contains(t, html, `<option value="Loja A" selected>Loja A</option>`)
	assert.Contains(t, html, "chart.umd.min.js")
	assert.Contains(t, html, "/api/dashboard/export.xlsx?account=Loja+A")
	assert.NotContains(t, html, LoadErrorMessage)
}

func TestRender_NoCampaigns(t *testing.T) {
	page, err := NewPage(testView(nil), decimal.NewFromInt(3), false, "")
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	require.NoError(t, Render(buf, page))

	assert.Contains(t, buf.String(), "Nenhuma campanha encontrada para os filtros selecionados.")
	assert.NotContains(t, buf.String(), "TOTAIS / MÉDIAS")
	assert.NotContains(t, buf.String(), "chart.umd.min.js")
}

func TestRender_ErrorPage(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, Render(buf, ErrorPage("2024-01-01", "2024-01-31", dashboard.Filters{})))

	html := buf.String()
	assert.Contains(t, html, LoadErrorMessage)
	assert.Contains(t, html, `value="2024-01-01"`)
	assert.NotContains(t, html, "<table>")
}
