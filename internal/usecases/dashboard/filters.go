package dashboard

import (
	"strings"

	"github.com/vfg2006/comunica-ads-api/internal/domain"
	"golang.org/x/text/cases"
)

// AllOption desliga o filtro de conta, status ou objetivo
const AllOption = "all"

type Filters struct {
	Account   string `json:"account"`
	Search    string `json:"search"`
	Status    string `json:"status"`
	Objective string `json:"objective"`
}

// Predicate decide se a campanha permanece no conjunto filtrado
type Predicate func(c *domain.Campaign) bool

// Normalize troca valores vazios por "all" e limpa espaços da busca
func (f Filters) Normalize() Filters {
	return Filters{
		Account:   orAll(f.Account),
		Search:    strings.TrimSpace(f.Search),
		Status:    orAll(f.Status),
		Objective: orAll(f.Objective),
	}
}

// Predicates devolve os cinco filtros independentes. A ordem não altera o resultado.
func (f Filters) Predicates() []Predicate {
	f = f.Normalize()

	return []Predicate{
		ByAccount(f.Account),
		WithSpend(),
		ByName(f.Search),
		ByStatus(f.Status),
		ByObjective(f.Objective),
	}
}

func ByAccount(account string) Predicate {
	return func(c *domain.Campaign) bool {
		return account == AllOption || c.AccountName == account
	}
}

func WithSpend() Predicate {
	return func(c *domain.Campaign) bool {
		return c.SpendValue().IsPositive()
	}
}

// ByName compara sem diferenciar maiúsculas/minúsculas
func ByName(term string) Predicate {
	if term == "" {
		return func(*domain.Campaign) bool { return true }
	}

	folded := cases.Fold().String(term)

	return func(c *domain.Campaign) bool {
		return strings.Contains(cases.Fold().String(c.Name), folded)
	}
}

func ByStatus(status string) Predicate {
	return func(c *domain.Campaign) bool {
		return status == AllOption || string(c.Status) == status
	}
}

func ByObjective(objective string) Predicate {
	return func(c *domain.Campaign) bool {
		return objective == AllOption || c.Objective == objective
	}
}

// Apply devolve uma nova lista com as campanhas aceitas por todos os predicados
func Apply(campaigns []domain.Campaign, predicates ...Predicate) []domain.Campaign {
	filtered := make([]domain.Campaign, 0, len(campaigns))

	for i := range campaigns {
		if matchesAll(&campaigns[i], predicates) {
			filtered = append(filtered, campaigns[i])
		}
	}

	return filtered
}

func matchesAll(c *domain.Campaign, predicates []Predicate) bool {
	for _, predicate := range predicates {
		if !predicate(c) {
			return false
		}
	}
	return true
}

func orAll(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return AllOption
	}
	return value
}
