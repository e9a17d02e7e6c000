package meta

import (
	"strconv"
	"strings"

	metadomain "github.com/vfg2006/comunica-ads-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/comunica-ads-api/internal/domain"
)

// FactoryCampaign achata a campanha do Graph e o primeiro registro de insights
// num domain.Campaign. Métricas ausentes viram zero, a campanha nunca é descartada.
func FactoryCampaign(raw metadomain.Campaign, account metadomain.AdAccount, conversationActionType string) *domain.Campaign {
	campaign := &domain.Campaign{
		ID:          raw.ID,
		Name:        raw.Name,
		Status:      domain.CampaignStatus(raw.Status),
		Objective:   raw.Objective,
		AccountID:   account.ID,
		AccountName: account.Name,
		Insights:    domain.EmptyInsights(),
	}

	insight := raw.FirstInsight()
	if insight == nil {
		return campaign
	}

	campaign.Insights = domain.CampaignInsights{
		Spend:               orDefault(insight.Spend, domain.ZeroAmount),
		Impressions:         orDefault(insight.Impressions, domain.ZeroCount),
		Reach:               orDefault(insight.Reach, domain.ZeroCount),
		CPM:                 orDefault(insight.CPM, domain.ZeroAmount),
		CostPerConversation: getCostPerConversation(insight.CostPerActions, conversationActionType),
		ConversationCount:   getConversationCount(insight.Actions, conversationActionType),
		ROAS:                getROAS(insight.PurchaseROAS),
	}

	return campaign
}

func getCostPerConversation(costPerActions []metadomain.Action, actionType string) string {
	action := findAction(costPerActions, actionType)
	if action == nil {
		return domain.ZeroAmount
	}

	return orDefault(action.Value, domain.ZeroAmount)
}

func getConversationCount(actions []metadomain.Action, actionType string) int {
	action := findAction(actions, actionType)
	if action == nil {
		return 0
	}

	return parseLeadingInt(action.Value)
}

// getROAS usa a primeira entrada cujo tipo contém "purchase"
func getROAS(roas []metadomain.Action) string {
	for _, r := range roas {
		if strings.Contains(r.ActionType, "purchase") {
			return orDefault(r.Value, domain.ZeroAmount)
		}
	}

	return domain.ZeroAmount
}

func findAction(actions []metadomain.Action, actionType string) *metadomain.Action {
	for i := range actions {
		if actions[i].ActionType == actionType {
			return &actions[i]
		}
	}

	return nil
}

// parseLeadingInt lê os dígitos iniciais ("12.7" -> 12). Sem dígitos devolve 0.
func parseLeadingInt(value string) int {
	value = strings.TrimSpace(value)

	end := 0
	if end < len(value) && (value[end] == '-' || value[end] == '+') {
		end++
	}
	for end < len(value) && value[end] >= '0' && value[end] <= '9' {
		end++
	}

	n, err := strconv.Atoi(value[:end])
	if err != nil {
		return 0
	}

	return n
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
