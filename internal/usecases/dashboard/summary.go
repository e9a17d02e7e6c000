package dashboard

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/comunica-ads-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var thousand = decimal.NewFromInt(1000)

type Summary struct {
	CampaignCount              int             `json:"campaign_count"`
	TotalSpend                 decimal.Decimal `json:"total_spend"`
	TotalImpressions           int64           `json:"total_impressions"`
	TotalConversations         int64           `json:"total_conversations"`
	AverageCPM                 decimal.Decimal `json:"average_cpm"`
	AverageCostPerConversation decimal.Decimal `json:"average_cost_per_conversation"`
}

// Summarize soma gasto, impressões e conversas e deriva as médias.
// Médias com denominador zero valem zero.
func Summarize(campaigns []domain.Campaign) Summary {
	totalSpend := decimal.Zero
	totalImpressions := decimal.Zero
	var totalConversations int64

	for i := range campaigns {
		totalSpend = totalSpend.Add(campaigns[i].SpendValue())
		totalImpressions = totalImpressions.Add(campaigns[i].ImpressionsValue())
		totalConversations += int64(campaigns[i].Insights.ConversationCount)
	}

	summary := Summary{
		CampaignCount:              len(campaigns),
		TotalSpend:                 totalSpend,
		TotalImpressions:           totalImpressions.IntPart(),
		TotalConversations:         totalConversations,
		AverageCPM:                 decimal.Zero,
		AverageCostPerConversation: decimal.Zero,
	}

	if totalImpressions.IsPositive() {
		summary.AverageCPM = totalSpend.Div(totalImpressions).Mul(thousand)
	}

	if totalConversations > 0 {
		summary.AverageCostPerConversation = totalSpend.Div(decimal.NewFromInt(totalConversations))
	}

	return summary
}

// MarshalJSON escreve os valores monetários com duas casas, como o Graph
func (s Summary) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		CampaignCount              int    `json:"campaign_count"`
		TotalSpend                 string `json:"total_spend"`
		TotalImpressions           int64  `json:"total_impressions"`
		TotalConversations         int64  `json:"total_conversations"`
		AverageCPM                 string `json:"average_cpm"`
		AverageCostPerConversation string `json:"average_cost_per_conversation"`
	}{
		CampaignCount:              s.CampaignCount,
		TotalSpend:                 s.TotalSpend.StringFixed(2),
		TotalImpressions:           s.TotalImpressions,
		TotalConversations:         s.TotalConversations,
		AverageCPM:                 s.AverageCPM.StringFixed(2),
		AverageCostPerConversation: s.AverageCostPerConversation.StringFixed(2),
	})
}

// Indicador exibido ao lado do custo por conversa
type Indicator string

const (
	IndicatorNone    Indicator = ""
	IndicatorGood    Indicator = "good"
	IndicatorWarning Indicator = "warning"
)

// CostIndicator: zero não mostra nada, abaixo do limite é "good", senão "warning"
func CostIndicator(cost, threshold decimal.Decimal) Indicator {
	switch {
	case cost.IsZero():
		return IndicatorNone
	case cost.LessThan(threshold):
		return IndicatorGood
	default:
		return IndicatorWarning
	}
}
