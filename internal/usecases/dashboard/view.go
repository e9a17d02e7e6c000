package dashboard

import (
	"github.com/vfg2006/comunica-ads-api/internal/domain"
)

type DateRangeView struct {
	Since string `json:"since"`
	Until string `json:"until"`
}

// View é o painel calculado para um conjunto de filtros
type View struct {
	DateRange  DateRangeView     `json:"date_range"`
	Filters    Filters           `json:"filters"`
	Accounts   []string          `json:"accounts"`
	Objectives []string          `json:"objectives"`
	Summary    Summary           `json:"summary"`
	Charts     Charts            `json:"charts"`
	Campaigns  []domain.Campaign `json:"campaigns"`
}

// View aplica os filtros sobre o snapshot e calcula totais e gráficos
func (s *Snapshot) View(filters Filters) *View {
	filters = filters.Normalize()
	filtered := Apply(s.Campaigns, filters.Predicates()...)

	return &View{
		DateRange: DateRangeView{
			Since: s.DateRange.SinceString(),
			Until: s.DateRange.UntilString(),
		},
		Filters:    filters,
		Accounts:   s.Accounts,
		Objectives: uniqueObjectives(s.Campaigns),
		Summary:    Summarize(filtered),
		Charts:     BuildCharts(filtered),
		Campaigns:  filtered,
	}
}
