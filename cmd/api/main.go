package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/comunica-ads-api/infrastructure/integrator/meta"
	"github.com/vfg2006/comunica-ads-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/comunica-ads-api/internal/api"
	"github.com/vfg2006/comunica-ads-api/internal/config"
	"github.com/vfg2006/comunica-ads-api/internal/metrics"
	"github.com/vfg2006/comunica-ads-api/internal/scheduler"
	"github.com/vfg2006/comunica-ads-api/internal/usecases/campaigning"
	"github.com/vfg2006/comunica-ads-api/internal/usecases/dashboard"
	"github.com/vfg2006/comunica-ads-api/pkg/log"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	// Token ausente no ambiente: tenta os secrets do Render
	renderClient := config.NewRenderClient(cfg)
	if err := config.ResolveAccessToken(cfg, renderClient); err != nil {
		logrus.WithError(err).Warn("Não foi possível carregar o token de acesso do Render")
	}

	if !cfg.Meta.HasAccessToken() {
		logrus.Warn(campaigning.MessageAccessTokenMissing)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := metrics.New()

	metaClient := metaclient.NewClient(cfg, m)
	metaIntegrator := meta.New(cfg, metaClient, m)

	campaignService := campaigning.NewService(cfg, metaIntegrator)
	board := dashboard.NewBoard(campaignService, cfg.Dashboard)

	tokenCheckService := scheduler.NewTokenCheckService(metaClient, m, cfg)
	if err := tokenCheckService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de verificação do token")
	} else {
		logrus.Info("Agendador de verificação do token iniciado com sucesso")
	}

	server, err := api.New(cfg, campaignService, board, tokenCheckService, m)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	if log.IsDevelopment() {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
		return
	}

	logrus.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})
}
