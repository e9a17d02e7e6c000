package dashboard

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/comunica-ads-api/internal/config"
	"github.com/vfg2006/comunica-ads-api/internal/domain"
	"github.com/vfg2006/comunica-ads-api/internal/usecases/campaigning"
)

// Snapshot é o resultado de uma busca. Nunca é alterado depois de publicado.
type Snapshot struct {
	DateRange domain.DateRange
	Campaigns []domain.Campaign
	Accounts  []string
	FetchedAt time.Time
}

// Board mantém o último snapshot em memória. Uma escrita (fim da busca),
// várias leituras. Buscas concorrentes não são deduplicadas: a última a
// terminar vence.
type Board struct {
	mu       sync.RWMutex
	service  campaigning.CampaignService
	snapshot *Snapshot

	lookbackDays     int
	lowCostThreshold decimal.Decimal
	snapshotTTL      time.Duration
	now              func() time.Time
}

func NewBoard(service campaigning.CampaignService, cfg config.Dashboard) *Board {
	return &Board{
		service:          service,
		lookbackDays:     cfg.LookbackDays,
		lowCostThreshold: decimal.NewFromFloat(cfg.LowCostThreshold),
		snapshotTTL:      cfg.SnapshotTTL,
		now:              time.Now,
	}
}

// DefaultRange é o período usado pelo painel quando nenhuma data é informada
func (b *Board) DefaultRange() domain.DateRange {
	return domain.LastDays(b.now(), b.lookbackDays)
}

func (b *Board) LowCostThreshold() decimal.Decimal {
	return b.lowCostThreshold
}

// CheckCredentials repassa a verificação do token do caso de uso
func (b *Board) CheckCredentials() error {
	return b.service.CheckCredentials()
}

// Load devolve o snapshot do período. Mesmo período reaproveita o que está em
// memória enquanto não expira; período diferente refaz a busca. Erro limpa o
// snapshot.
func (b *Board) Load(ctx context.Context, dateRange domain.DateRange) (*Snapshot, error) {
	b.mu.RLock()
	current := b.snapshot
	b.mu.RUnlock()

	if b.reusable(current, dateRange) {
		return current, nil
	}

	campaigns, err := b.service.ListCampaigns(ctx, dateRange)

	b.mu.Lock()
	defer b.mu.Unlock()

	if err != nil {
		b.snapshot = nil
		return nil, err
	}

	b.snapshot = &Snapshot{
		DateRange: dateRange,
		Campaigns: campaigns,
		Accounts:  uniqueAccounts(campaigns),
		FetchedAt: b.now(),
	}

	logrus.WithFields(logrus.Fields{
		"since":     dateRange.SinceString(),
		"until":     dateRange.UntilString(),
		"campaigns": len(campaigns),
	}).Debug("dashboard: snapshot atualizado")

	return b.snapshot, nil
}

// reusable: mesmo período e dentro do TTL. TTL zero sempre refaz a busca.
func (b *Board) reusable(current *Snapshot, dateRange domain.DateRange) bool {
	if current == nil || !current.DateRange.Equal(dateRange) {
		return false
	}
	if b.snapshotTTL <= 0 {
		return false
	}
	return b.now().Sub(current.FetchedAt) < b.snapshotTTL
}

// Invalidate descarta o snapshot; a próxima leitura refaz a busca
func (b *Board) Invalidate() {
	b.mu.Lock()
	b.snapshot = nil
	b.mu.Unlock()
}

// Current devolve o snapshot em memória, ou nil
func (b *Board) Current() *Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.snapshot
}

func uniqueAccounts(campaigns []domain.Campaign) []string {
	seen := make(map[string]struct{})
	accounts := make([]string, 0)

	for i := range campaigns {
		name := campaigns[i].AccountName
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		accounts = append(accounts, name)
	}

	return accounts
}

func uniqueObjectives(campaigns []domain.Campaign) []string {
	seen := make(map[string]struct{})
	objectives := make([]string, 0)

	for i := range campaigns {
		objective := campaigns[i].Objective
		if objective == "" {
			continue
		}
		if _, ok := seen[objective]; ok {
			continue
		}
		seen[objective] = struct{}{}
		objectives = append(objectives, objective)
	}

	slices.Sort(objectives)
	return objectives
}
