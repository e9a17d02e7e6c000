package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/comunica-ads-api/infrastructure/exporter"
	"github.com/vfg2006/comunica-ads-api/internal/api/view"
	"github.com/vfg2006/comunica-ads-api/internal/domain"
	"github.com/vfg2006/comunica-ads-api/internal/usecases/campaigning"
	"github.com/vfg2006/comunica-ads-api/internal/usecases/dashboard"
	"github.com/vfg2006/comunica-ads-api/pkg/log"
)

// DashboardBoard é o painel em memória consultado pelos handlers
type DashboardBoard interface {
	CheckCredentials() error
	Load(ctx context.Context, dateRange domain.DateRange) (*dashboard.Snapshot, error)
	Invalidate()
	DefaultRange() domain.DateRange
	LowCostThreshold() decimal.Decimal
}

type dashboardRequest struct {
	since   string
	until   string
	filters dashboard.Filters
	charts  bool
	refresh bool
}

func parseDashboardRequest(r *http.Request) dashboardRequest {
	q := r.URL.Query()

	return dashboardRequest{
		since: q.Get("since"),
		until: q.Get("until"),
		filters: dashboard.Filters{
			Account:   q.Get("account"),
			Search:    q.Get("search"),
			Status:    q.Get("status"),
			Objective: q.Get("objective"),
		},
		charts:  q.Get("charts") == "1",
		refresh: q.Get("refresh") == "1",
	}
}

// dateRange usa o período padrão do painel quando nenhuma data foi informada
func (d dashboardRequest) dateRange(board DashboardBoard) (domain.DateRange, error) {
	if d.since == "" && d.until == "" {
		return board.DefaultRange(), nil
	}
	return campaigning.ParseDateRange(d.since, d.until)
}

// query reconstrói os parâmetros do painel para o link de exportação
func (d dashboardRequest) query(dr domain.DateRange) string {
	q := url.Values{}
	if !dr.IsMaximum() {
		q.Set("since", dr.SinceString())
		q.Set("until", dr.UntilString())
	}

	filters := d.filters.Normalize()
	q.Set("account", filters.Account)
	q.Set("search", filters.Search)
	q.Set("status", filters.Status)
	q.Set("objective", filters.Objective)

	return q.Encode()
}

// loadView verifica o token antes das datas. refresh=1 descarta o snapshot em memória.
func loadView(r *http.Request, board DashboardBoard, req dashboardRequest) (*dashboard.View, domain.DateRange, error) {
	if err := board.CheckCredentials(); err != nil {
		return nil, domain.DateRange{}, err
	}

	dr, err := req.dateRange(board)
	if err != nil {
		return nil, dr, err
	}

	if req.refresh {
		board.Invalidate()
	}

	snapshot, err := board.Load(r.Context(), dr)
	if err != nil {
		return nil, dr, err
	}

	return snapshot.View(req.filters), dr, nil
}

// GetDashboard devolve o painel filtrado em JSON
func GetDashboard(board DashboardBoard) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		v, _, err := loadView(r, board, parseDashboardRequest(r))
		if err != nil {
			logger.WithError(err).Error("dashboard: falha ao carregar painel")

			writeCampaignError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(v); err != nil {
			logger.WithError(err).Error("dashboard: erro ao serializar resposta")
		}
	})
}

// RenderDashboard devolve o painel em HTML. Falhas de carregamento viram o banner de erro.
func RenderDashboard(board DashboardBoard) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		req := parseDashboardRequest(r)

		var page *view.Page

		v, dr, err := loadView(r, board, req)
		if err != nil {
			logger.WithError(err).Error("dashboard: falha ao carregar painel")
			page = view.ErrorPage(req.since, req.until, req.filters)
		} else {
			page, err = view.NewPage(v, board.LowCostThreshold(), req.charts, req.query(dr))
			if err != nil {
				logger.WithError(err).Error("dashboard: erro ao montar página")
				http.Error(w, "Erro interno no servidor", http.StatusInternalServerError)
				return
			}
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := view.Render(w, page); err != nil {
			logger.WithError(err).Error("dashboard: erro ao renderizar página")
		}
	})
}

// ExportDashboard devolve a tabela filtrada do painel em XLSX
func ExportDashboard(board DashboardBoard) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		v, _, err := loadView(r, board, parseDashboardRequest(r))
		if err != nil {
			logger.WithError(err).Error("dashboard: falha ao carregar painel para exportação")

			writeCampaignError(w, err)
			return
		}

		w.Header().Set("Content-Type", exporter.ContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exporter.FileName(v)))

		if err := exporter.WriteCampaigns(w, v); err != nil {
			logger.WithError(err).Error("dashboard: erro ao gerar XLSX")
			return
		}

		logger.WithField("campaigns", len(v.Campaigns)).Info("dashboard: XLSX exportado")
	})
}
