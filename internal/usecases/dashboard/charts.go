package dashboard

import (
	"slices"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/comunica-ads-api/internal/domain"
	"github.com/vfg2006/comunica-ads-api/pkg/utils"
)

const (
	topSpendLimit    = 10
	topCPMLimit      = 15
	spendLabelLength = 20
	cpmLabelLength   = 15
)

type ChartSeries struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

type Charts struct {
	SpendByCampaign ChartSeries `json:"spend_by_campaign"`
	SpendByAccount  ChartSeries `json:"spend_by_account"`
	CPMByCampaign   ChartSeries `json:"cpm_by_campaign"`
}

// BuildCharts monta as três séries a partir do conjunto filtrado.
// A ordenação é feita sobre cópias, a lista recebida não é alterada.
func BuildCharts(campaigns []domain.Campaign) Charts {
	return Charts{
		SpendByCampaign: topBy(campaigns, (*domain.Campaign).SpendValue, topSpendLimit, spendLabelLength),
		SpendByAccount:  spendByAccount(campaigns),
		CPMByCampaign:   topBy(campaigns, (*domain.Campaign).CPMValue, topCPMLimit, cpmLabelLength),
	}
}

func topBy(campaigns []domain.Campaign, value func(*domain.Campaign) decimal.Decimal, limit, labelLength int) ChartSeries {
	sorted := slices.Clone(campaigns)
	slices.SortStableFunc(sorted, func(a, b domain.Campaign) int {
		return value(&b).Cmp(value(&a))
	})

	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	series := ChartSeries{
		Labels: make([]string, 0, len(sorted)),
		Values: make([]float64, 0, len(sorted)),
	}
	for i := range sorted {
		series.Labels = append(series.Labels, Truncate(sorted[i].Name, labelLength))
		series.Values = append(series.Values, utils.RoundWithTwoDecimalPlace(value(&sorted[i]).InexactFloat64()))
	}

	return series
}

// spendByAccount soma o gasto por conta na ordem em que as contas aparecem
func spendByAccount(campaigns []domain.Campaign) ChartSeries {
	order := make([]string, 0)
	totals := make(map[string]decimal.Decimal)

	for i := range campaigns {
		account := campaigns[i].AccountName
		if _, ok := totals[account]; !ok {
			order = append(order, account)
			totals[account] = decimal.Zero
		}
		totals[account] = totals[account].Add(campaigns[i].SpendValue())
	}

	series := ChartSeries{
		Labels: order,
		Values: make([]float64, 0, len(order)),
	}
	for _, account := range order {
		series.Values = append(series.Values, utils.RoundWithTwoDecimalPlace(totals[account].InexactFloat64()))
	}

	return series
}

// Truncate corta o nome em n caracteres e acrescenta "..." quando houve corte
func Truncate(name string, n int) string {
	runes := []rune(name)
	if len(runes) <= n {
		return name
	}
	return string(runes[:n]) + "..."
}
