package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/comunica-ads-api/infrastructure/integrator/meta/metaclient/mocks"
	"github.com/vfg2006/comunica-ads-api/internal/config"
	"go.uber.org/mock/gomock"
)

type fakeRecorder struct {
	calls []bool
}

func (f *fakeRecorder) SetTokenStatus(valid bool) {
	f.calls = append(f.calls, valid)
}

func newTokenCheckConfig(enabled bool) *config.Config {
	return &config.Config{
		TokenCheck: config.TokenCheck{CronSchedule: "0 */6 * * *", Enabled: enabled},
	}
}

func TestTokenCheckService_RunCheck(t *testing.T) {
	tests := []struct {
		name           string
		valid          bool
		err            error
		expectedResult string
		expectedStatus bool
		expectedError  string
	}{
		{name: "token válido", valid: true, expectedResult: TokenStatusValid, expectedStatus: true},
		{name: "token expirado", valid: false, expectedResult: TokenStatusInvalid},
		{name: "falha de rede", err: errors.New("connection refused"), expectedResult: TokenStatusError, expectedError: "connection refused"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := mocks.NewMockClient(ctrl)
			recorder := &fakeRecorder{}

			client.EXPECT().CheckToken(gomock.Any()).Return(tt.valid, tt.err)

			service := NewTokenCheckService(client, recorder, newTokenCheckConfig(true))
			service.RunCheck(context.Background())

			status := service.GetStatus()
			assert.Equal(t, tt.expectedResult, status["last_check_result"])
			assert.Equal(t, tt.expectedError, status["last_check_error"])
			assert.Equal(t, false, status["token_check_running"])
			assert.Equal(t, []bool{tt.expectedStatus}, recorder.calls)
		})
	}
}

func TestTokenCheckService_RunCheckSkipsWhenRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	client.EXPECT().CheckToken(gomock.Any()).Times(0)

	service := NewTokenCheckService(client, nil, newTokenCheckConfig(true))
	service.checkRunning = true

	service.RunCheck(context.Background())
	assert.False(t, service.TriggerManualCheck())
	assert.Equal(t, TokenStatusUnknown, service.GetStatus()["last_check_result"])
}

func TestTokenCheckService_StartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	service := NewTokenCheckService(client, nil, newTokenCheckConfig(false))

	require.NoError(t, service.Start(context.Background()))
	assert.Equal(t, false, service.GetStatus()["token_check_enabled"])
}

func TestTokenCheckService_StartInvalidCron(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	cfg := newTokenCheckConfig(true)
	cfg.TokenCheck.CronSchedule = "não é cron"

	service := NewTokenCheckService(client, nil, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	assert.Error(t, service.Start(ctx))
}
