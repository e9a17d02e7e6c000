package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/comunica-ads-api/internal/config"
)

// TokenChecker valida a credencial de acesso do Graph
type TokenChecker interface {
	CheckToken(ctx context.Context) (bool, error)
}

// TokenStatusRecorder publica o último resultado da verificação
type TokenStatusRecorder interface {
	SetTokenStatus(valid bool)
}

// TokenCheckService agenda a verificação periódica do token de acesso do Facebook
type TokenCheckService struct {
	scheduler            *gocron.Scheduler
	config               config.TokenCheck
	checker              TokenChecker
	recorder             TokenStatusRecorder
	checkRunning         bool
	checkMutex           sync.Mutex
	lastCheckStartedAt   time.Time
	lastCheckCompletedAt time.Time
	lastResult           string
	lastError            string
	timeout              time.Duration
}

const (
	TokenStatusUnknown = "unknown"
	TokenStatusValid   = "valid"
	TokenStatusInvalid = "invalid"
	TokenStatusError   = "error"
)

// NewTokenCheckService cria o serviço de verificação do token
func NewTokenCheckService(checker TokenChecker, recorder TokenStatusRecorder, appConfig *config.Config) *TokenCheckService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": appConfig.TokenCheck.CronSchedule,
		"enabled":       appConfig.TokenCheck.Enabled,
	}).Info("Configuração da verificação do token carregada")

	return &TokenCheckService{
		scheduler:  gocron.NewScheduler(time.Local),
		config:     appConfig.TokenCheck,
		checker:    checker,
		recorder:   recorder,
		lastResult: TokenStatusUnknown,
		timeout:    appConfig.Meta.RequestTimeout,
	}
}

// Start inicia o agendador
func (s *TokenCheckService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Verificação do token desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de verificação do token")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.RunCheck(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar verificação do token: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de verificação do token")
		s.scheduler.Stop()
	}()

	return nil
}

// RunCheck executa uma verificação. Execuções simultâneas são ignoradas.
func (s *TokenCheckService) RunCheck(ctx context.Context) {
	s.checkMutex.Lock()
	if s.checkRunning {
		s.checkMutex.Unlock()
		logrus.Info("Verificação do token já em andamento, ignorando")
		return
	}
	s.checkRunning = true
	s.lastCheckStartedAt = time.Now()
	s.checkMutex.Unlock()

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	valid, err := s.checker.CheckToken(ctx)

	result := TokenStatusValid
	errMessage := ""
	switch {
	case err != nil:
		result = TokenStatusError
		errMessage = err.Error()
		logrus.WithError(err).Error("Erro ao verificar token de acesso do Facebook")
	case !valid:
		result = TokenStatusInvalid
		logrus.Warn("Token de acesso do Facebook inválido ou expirado")
	default:
		logrus.Info("Token de acesso do Facebook válido")
	}

	if s.recorder != nil {
		s.recorder.SetTokenStatus(result == TokenStatusValid)
	}

	s.checkMutex.Lock()
	s.checkRunning = false
	s.lastCheckCompletedAt = time.Now()
	s.lastResult = result
	s.lastError = errMessage
	s.checkMutex.Unlock()
}

// TriggerManualCheck inicia manualmente uma verificação do token
func (s *TokenCheckService) TriggerManualCheck() bool {
	s.checkMutex.Lock()
	if s.checkRunning {
		s.checkMutex.Unlock()
		logrus.Info("Verificação do token já em andamento, ignorando solicitação manual")
		return false
	}
	s.checkMutex.Unlock()

	logrus.Info("Iniciando verificação manual do token")
	go s.RunCheck(context.Background())

	return true
}

// GetStatus retorna o status atual do agendador
func (s *TokenCheckService) GetStatus() map[string]any {
	s.checkMutex.Lock()
	defer s.checkMutex.Unlock()

	return map[string]any{
		"token_check_enabled":     s.config.Enabled,
		"token_check_cron":        s.config.CronSchedule,
		"token_check_running":     s.checkRunning,
		"last_check_started_at":   s.lastCheckStartedAt,
		"last_check_completed_at": s.lastCheckCompletedAt,
		"last_check_result":       s.lastResult,
		"last_check_error":        s.lastError,
	}
}
