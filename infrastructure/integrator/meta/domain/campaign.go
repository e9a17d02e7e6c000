package metadomain

type Campaign struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Status    string            `json:"status"`
	Objective string            `json:"objective"`
	Insights  *CampaignInsights `json:"insights,omitempty"`
}

// CampaignInsights é a aresta aninhada "insights" da campanha
type CampaignInsights struct {
	Data []CampaignInsight `json:"data"`
}

type CampaignInsight struct {
	Spend          string   `json:"spend"`
	Impressions    string   `json:"impressions"`
	Reach          string   `json:"reach"`
	CPM            string   `json:"cpm"`
	PurchaseROAS   []Action `json:"purchase_roas"`
	Actions        []Action `json:"actions"`
	CostPerActions []Action `json:"cost_per_action_type"`
	DateStart      string   `json:"date_start"`
	DateStop       string   `json:"date_stop"`
}

type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next,omitempty"`
}

type ResponseAdCampaign struct {
	Data   []Campaign `json:"data"`
	Paging Paging     `json:"paging"`
}

// FirstInsight devolve insights.data[0] quando a campanha teve entrega no período
func (c *Campaign) FirstInsight() *CampaignInsight {
	if c.Insights == nil || len(c.Insights.Data) == 0 {
		return nil
	}

	return &c.Insights.Data[0]
}
