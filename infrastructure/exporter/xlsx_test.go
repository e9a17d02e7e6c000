package exporter

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/comunica-ads-api/internal/domain"
	"github.com/vfg2006/comunica-ads-api/internal/usecases/dashboard"
	"github.com/xuri/excelize/v2"
)

func testView(campaigns []domain.Campaign) *dashboard.View {
	since := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	snapshot := &dashboard.Snapshot{
		DateRange: domain.NewDateRange(&since, &until),
		Campaigns: campaigns,
	}

	return snapshot.View(dashboard.Filters{})
}

func testCampaign(id, name, spend, impressions, cpm, cost string, conversations int) domain.Campaign {
	insights := domain.EmptyInsights()
	insights.Spend = spend
	insights.Impressions = impressions
	insights.Reach = impressions
	insights.CPM = cpm
	insights.CostPerConversation = cost
	insights.ConversationCount = conversations

	return domain.Campaign{
		ID:          id,
		Name:        name,
		Status:      domain.CampaignStatusActive,
		Objective:   "OUTCOME_SALES",
		AccountName: "Loja A",
		Insights:    insights,
	}
}

func readRows(t *testing.T, raw []byte) [][]string {
	t.Helper()

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetName}, f.GetSheetList())

	rows, err := f.GetRows(SheetName, excelize.Options{RawCellValue: true})
	require.NoError(t, err)

	return rows
}

func TestWriteCampaigns(t *testing.T) {
	view := testView([]domain.Campaign{
		testCampaign("1", "Black Friday", "100.00", "2000", "50.00", "10.00", 10),
		testCampaign("2", "Sem gasto", "0.00", "0", "0.00", "0.00", 0),
		testCampaign("3", "Mensagens", "40.00", "1000", "40.00", "2.00", 20),
	})

	buf := &bytes.Buffer{}
	require.NoError(t, WriteCampaigns(buf, view))

	rows := readRows(t, buf.Bytes())

	// cabeçalho + 2 campanhas com gasto + totais
	require.Len(t, rows, 4)
	assert.Equal(t, "Conta", rows[0][0])
	assert.Equal(t, "ROAS", rows[0][10])

	assert.Equal(t, []string{"Loja A", "Black Friday", "Ativa", "OUTCOME_SALES", "100", "2000", "2000", "50", "10", "10", "0"}, rows[1])
	assert.Equal(t, "Mensagens", rows[2][1])

	totals := rows[3]
	assert.Equal(t, TotalsLabel, totals[0])
	assert.Equal(t, "140", totals[4])
	assert.Equal(t, "3000", totals[5])
	assert.Equal(t, "46.67", totals[7])
	assert.Equal(t, "4.67", totals[8])
	assert.Equal(t, "30", totals[9])
}

func TestWriteCampaigns_Empty(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, WriteCampaigns(buf, testView(nil)))

	rows := readRows(t, buf.Bytes())

	require.Len(t, rows, 1)
	assert.Equal(t, "Campanha", rows[0][1])
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "campanhas_2024-01-01_2024-01-31.xlsx", FileName(testView(nil)))
	assert.Equal(t, "campanhas.xlsx", FileName(&dashboard.View{}))
}
