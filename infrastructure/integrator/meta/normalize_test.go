package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	metadomain "github.com/vfg2006/comunica-ads-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/comunica-ads-api/internal/domain"
)

const conversationType = "onsite_conversion.messaging_conversation_started_7d"

func TestFactoryCampaign(t *testing.T) {
	account := metadomain.AdAccount{ID: "act_1", Name: "Loja Centro"}

	tests := []struct {
		name     string
		raw      metadomain.Campaign
		expected domain.CampaignInsights
	}{
		{
			name:     "sem insights usa zeros",
			raw:      metadomain.Campaign{ID: "1", Name: "Campanha", Status: "PAUSED", Objective: "OUTCOME_ENGAGEMENT"},
			expected: domain.EmptyInsights(),
		},
		{
			name: "insights vazio usa zeros",
			raw: metadomain.Campaign{
				ID:       "1",
				Insights: &metadomain.CampaignInsights{Data: []metadomain.CampaignInsight{}},
			},
			expected: domain.EmptyInsights(),
		},
		{
			name: "métricas completas",
			raw: metadomain.Campaign{
				ID: "2",
				Insights: &metadomain.CampaignInsights{Data: []metadomain.CampaignInsight{{
					Spend:       "150.75",
					Impressions: "3000",
					Reach:       "2100",
					CPM:         "50.25",
					Actions: []metadomain.Action{
						{ActionType: "link_click", Value: "40"},
						{ActionType: conversationType, Value: "12"},
					},
					CostPerActions: []metadomain.Action{
						{ActionType: "link_click", Value: "3.76"},
						{ActionType: conversationType, Value: "12.56"},
					},
					PurchaseROAS: []metadomain.Action{
						{ActionType: "omni_purchase", Value: "2.5"},
						{ActionType: "offsite_conversion.fb_pixel_purchase", Value: "9.9"},
					},
				}}},
			},
			expected: domain.CampaignInsights{
				Spend:               "150.75",
				Impressions:         "3000",
				Reach:               "2100",
				CPM:                 "50.25",
				CostPerConversation: "12.56",
				ConversationCount:   12,
				ROAS:                "2.5",
			},
		},
		{
			name: "métricas parciais e roas sem compra",
			raw: metadomain.Campaign{
				ID: "3",
				Insights: &metadomain.CampaignInsights{Data: []metadomain.CampaignInsight{{
					Spend:        "10.00",
					Actions:      []metadomain.Action{{ActionType: "link_click", Value: "4"}},
					PurchaseROAS: []metadomain.Action{{ActionType: "app_install", Value: "1.0"}},
				}}},
			},
			expected: domain.CampaignInsights{
				Spend:               "10.00",
				Impressions:         "0",
				Reach:               "0",
				CPM:                 "0.00",
				CostPerConversation: "0.00",
				ConversationCount:   0,
				ROAS:                "0.00",
			},
		},
		{
			name: "roas de compra sem valor usa zero",
			raw: metadomain.Campaign{
				ID: "5",
				Insights: &metadomain.CampaignInsights{Data: []metadomain.CampaignInsight{{
					Spend:        "5.00",
					PurchaseROAS: []metadomain.Action{{ActionType: "omni_purchase", Value: ""}},
				}}},
			},
			expected: domain.CampaignInsights{
				Spend:               "5.00",
				Impressions:         "0",
				Reach:               "0",
				CPM:                 "0.00",
				CostPerConversation: "0.00",
				ROAS:                "0.00",
			},
		},
		{
			name: "apenas o primeiro registro de insights é usado",
			raw: metadomain.Campaign{
				ID: "4",
				Insights: &metadomain.CampaignInsights{Data: []metadomain.CampaignInsight{
					{Spend: "1.00"},
					{Spend: "99.00"},
				}},
			},
			expected: domain.CampaignInsights{
				Spend:               "1.00",
				Impressions:         "0",
				Reach:               "0",
				CPM:                 "0.00",
				CostPerConversation: "0.00",
				ROAS:                "0.00",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			campaign := FactoryCampaign(tt.raw, account, conversationType)

			assert.Equal(t, tt.raw.ID, campaign.ID)
			assert.Equal(t, "Loja Centro", campaign.AccountName)
			assert.Equal(t, "act_1", campaign.AccountID)
			assert.Equal(t, tt.expected, campaign.Insights)
		})
	}
}

func TestFactoryCampaign_CopiesIdentity(t *testing.T) {
	raw := metadomain.Campaign{ID: "9", Name: "Black Friday", Status: "ACTIVE", Objective: "OUTCOME_SALES"}

	campaign := FactoryCampaign(raw, metadomain.AdAccount{ID: "act_9", Name: "Loja"}, conversationType)

	assert.Equal(t, "Black Friday", campaign.Name)
	assert.Equal(t, domain.CampaignStatusActive, campaign.Status)
	assert.Equal(t, "OUTCOME_SALES", campaign.Objective)
}

func TestParseLeadingInt(t *testing.T) {
	tests := map[string]int{
		"12":    12,
		"12.9":  12,
		" 7 ":   7,
		"abc":   0,
		"":      0,
		"-3":    -3,
		"42abc": 42,
	}

	for input, expected := range tests {
		assert.Equal(t, expected, parseLeadingInt(input), input)
	}
}
