package view

import (
	"embed"
	"html/template"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/comunica-ads-api/internal/domain"
	"github.com/vfg2006/comunica-ads-api/internal/usecases/dashboard"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.New("").ParseFS(templatesFS, "templates/*.html"))

var printer = message.NewPrinter(language.BrazilianPortuguese)

const LoadErrorMessage = "Falha ao carregar os dados. Verifique se o backend está rodando."

type StatusOption struct {
	Value string
	Label string
}

// StatusOptions lista os status aceitos pelo filtro do painel
var StatusOptions = []StatusOption{
	{Value: dashboard.AllOption, Label: "Todos"},
	{Value: string(domain.CampaignStatusActive), Label: "Ativas"},
	{Value: string(domain.CampaignStatusPaused), Label: "Pausadas"},
	{Value: string(domain.CampaignStatusArchived), Label: "Arquivadas"},
	{Value: string(domain.CampaignStatusInProcess), Label: "Em processamento"},
}

// Row é uma linha da tabela já formatada para exibição
type Row struct {
	Name                string
	Status              string
	StatusLabel         string
	Spend               string
	Impressions         string
	Reach               string
	CPM                 string
	CostPerConversation string
	Indicator           dashboard.Indicator
	ROAS                string
}

type Totals struct {
	Spend               string
	CPM                 string
	CostPerConversation string
	Indicator           dashboard.Indicator
}

// Page reúne tudo o que o template do painel precisa
type Page struct {
	Since         string
	Until         string
	Filters       dashboard.Filters
	Accounts      []string
	Objectives    []string
	StatusOptions []StatusOption
	Rows          []Row
	Totals        Totals
	CampaignCount int
	ShowCharts    bool
	HasChartData  bool
	ChartsJSON    template.JS
	Error         string
	ExportQuery   template.URL
}

// NewPage monta a página a partir do painel calculado
func NewPage(v *dashboard.View, threshold decimal.Decimal, showCharts bool, exportQuery string) (*Page, error) {
	charts, err := json.Marshal(v.Charts)
	if err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(v.Campaigns))
	for i := range v.Campaigns {
		c := &v.Campaigns[i]
		cost := c.CostPerConversationValue()

		rows = append(rows, Row{
			Name:                c.Name,
			Status:              string(c.Status),
			StatusLabel:         c.Status.Label(),
			Spend:               fixed(c.SpendValue()),
			Impressions:         integer(c.ImpressionsValue().IntPart()),
			Reach:               integer(c.ReachValue().IntPart()),
			CPM:                 fixed(c.CPMValue()),
			CostPerConversation: fixed(cost),
			Indicator:           dashboard.CostIndicator(cost, threshold),
			ROAS:                fixed(c.ROASValue()),
		})
	}

	return &Page{
		Since:         v.DateRange.Since,
		Until:         v.DateRange.Until,
		Filters:       v.Filters,
		Accounts:      v.Accounts,
		Objectives:    v.Objectives,
		StatusOptions: StatusOptions,
		Rows:          rows,
		Totals: Totals{
			Spend:               fixed(v.Summary.TotalSpend),
			CPM:                 fixed(v.Summary.AverageCPM),
			CostPerConversation: fixed(v.Summary.AverageCostPerConversation),
			Indicator:           dashboard.CostIndicator(v.Summary.AverageCostPerConversation, threshold),
		},
		CampaignCount: len(rows),
		ShowCharts:    showCharts,
		HasChartData:  len(rows) > 0,
		ChartsJSON:    template.JS(charts),
		ExportQuery:   template.URL(exportQuery),
	}, nil
}

// ErrorPage é a página exibida quando a busca falha: só o banner e os filtros
func ErrorPage(since, until string, filters dashboard.Filters) *Page {
	return &Page{
		Since:         since,
		Until:         until,
		Filters:       filters.Normalize(),
		StatusOptions: StatusOptions,
		ChartsJSON:    template.JS("{}"),
		Error:         LoadErrorMessage,
	}
}

// Render escreve o HTML do painel
func Render(w io.Writer, page *Page) error {
	return templates.ExecuteTemplate(w, "dashboard.html", page)
}

func fixed(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func integer(n int64) string {
	return printer.Sprintf("%d", n)
}
