package domain

import (
	"github.com/shopspring/decimal"
)

type CampaignStatus string

const (
	CampaignStatusActive    CampaignStatus = "ACTIVE"
	CampaignStatusPaused    CampaignStatus = "PAUSED"
	CampaignStatusArchived  CampaignStatus = "ARCHIVED"
	CampaignStatusInProcess CampaignStatus = "IN_PROCESS"
)

// Label devolve o nome exibido no painel para o status
func (s CampaignStatus) Label() string {
	switch s {
	case CampaignStatusActive:
		return "Ativa"
	case CampaignStatusPaused:
		return "Pausada"
	case CampaignStatusArchived:
		return "Arquivada"
	case CampaignStatusInProcess:
		return "Em processamento"
	default:
		return string(s)
	}
}

type Campaign struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Status      CampaignStatus   `json:"status"`
	Objective   string           `json:"objective"`
	AccountID   string           `json:"account_id"`
	AccountName string           `json:"account_name"`
	Insights    CampaignInsights `json:"insights"`
}

// CampaignInsights guarda as métricas como chegam do Graph (strings decimais)
type CampaignInsights struct {
	Spend               string `json:"spend"`
	Impressions         string `json:"impressions"`
	Reach               string `json:"reach"`
	CPM                 string `json:"cpm"`
	CostPerConversation string `json:"cost_per_conversation"`
	ConversationCount   int    `json:"conversation_count"`
	ROAS                string `json:"roas"`
}

const (
	ZeroAmount = "0.00"
	ZeroCount  = "0"
)

// EmptyInsights é o registro usado quando a campanha não tem insights no período
func EmptyInsights() CampaignInsights {
	return CampaignInsights{
		Spend:               ZeroAmount,
		Impressions:         ZeroCount,
		Reach:               ZeroCount,
		CPM:                 ZeroAmount,
		CostPerConversation: ZeroAmount,
		ConversationCount:   0,
		ROAS:                ZeroAmount,
	}
}

func (c *Campaign) SpendValue() decimal.Decimal {
	return parseDecimal(c.Insights.Spend)
}

func (c *Campaign) ImpressionsValue() decimal.Decimal {
	return parseDecimal(c.Insights.Impressions)
}

func (c *Campaign) ReachValue() decimal.Decimal {
	return parseDecimal(c.Insights.Reach)
}

func (c *Campaign) CPMValue() decimal.Decimal {
	return parseDecimal(c.Insights.CPM)
}

func (c *Campaign) CostPerConversationValue() decimal.Decimal {
	return parseDecimal(c.Insights.CostPerConversation)
}

func (c *Campaign) ROASValue() decimal.Decimal {
	return parseDecimal(c.Insights.ROAS)
}

func parseDecimal(value string) decimal.Decimal {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero
	}

	return d
}
