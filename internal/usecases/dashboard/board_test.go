package dashboard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/comunica-ads-api/internal/config"
	"github.com/vfg2006/comunica-ads-api/internal/domain"
	"github.com/vfg2006/comunica-ads-api/internal/usecases/campaigning/mocks"
	"go.uber.org/mock/gomock"
)

func rangeOf(since, until string) domain.DateRange {
	s, _ := time.Parse(time.DateOnly, since)
	u, _ := time.Parse(time.DateOnly, until)
	return domain.NewDateRange(&s, &u)
}

func newTestBoard(t *testing.T) (*Board, *mocks.MockCampaignService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	service := mocks.NewMockCampaignService(ctrl)

	board := NewBoard(service, config.Dashboard{LookbackDays: 30, LowCostThreshold: 3, SnapshotTTL: 5 * time.Minute})
	board.now = func() time.Time { return time.Date(2024, 3, 31, 10, 0, 0, 0, time.UTC) }

	return board, service
}

func TestBoard_LoadReusesSnapshotForSameRange(t *testing.T) {
	board, service := newTestBoard(t)
	january := rangeOf("2024-01-01", "2024-01-31")

	service.EXPECT().ListCampaigns(gomock.Any(), january).Return(sampleCampaigns(), nil).Times(1)

	first, err := board.Load(context.Background(), january)
	require.NoError(t, err)

	second, err := board.Load(context.Background(), rangeOf("2024-01-01", "2024-01-31"))
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Len(t, second.Campaigns, 5)
}

func TestBoard_LoadRefetchesOnNewRange(t *testing.T) {
	board, service := newTestBoard(t)
	january := rangeOf("2024-01-01", "2024-01-31")
	february := rangeOf("2024-02-01", "2024-02-29")

	gomock.InOrder(
		service.EXPECT().ListCampaigns(gomock.Any(), january).Return(sampleCampaigns(), nil),
		service.EXPECT().ListCampaigns(gomock.Any(), february).Return(sampleCampaigns()[:1], nil),
	)

	_, err := board.Load(context.Background(), january)
	require.NoError(t, err)

	snapshot, err := board.Load(context.Background(), february)
	require.NoError(t, err)

	assert.Len(t, snapshot.Campaigns, 1)
	assert.Equal(t, "2024-02-01", snapshot.DateRange.SinceString())
	assert.Equal(t, []string{"Loja A"}, snapshot.Accounts)
}

func TestBoard_LoadErrorClearsSnapshot(t *testing.T) {
	board, service := newTestBoard(t)
	january := rangeOf("2024-01-01", "2024-01-31")
	february := rangeOf("2024-02-01", "2024-02-29")
	upstream := errors.New("upstream failure")

	gomock.InOrder(
		service.EXPECT().ListCampaigns(gomock.Any(), january).Return(sampleCampaigns(), nil),
		service.EXPECT().ListCampaigns(gomock.Any(), february).Return(nil, upstream),
		service.EXPECT().ListCampaigns(gomock.Any(), january).Return(sampleCampaigns(), nil),
	)

	_, err := board.Load(context.Background(), january)
	require.NoError(t, err)

	snapshot, err := board.Load(context.Background(), february)
	assert.ErrorIs(t, err, upstream)
	assert.Nil(t, snapshot)
	assert.Nil(t, board.Current())

	snapshot, err = board.Load(context.Background(), january)
	require.NoError(t, err)
	assert.NotNil(t, snapshot)
}

func TestBoard_AccountsFollowEachFetch(t *testing.T) {
	board, service := newTestBoard(t)

	gomock.InOrder(
		service.EXPECT().ListCampaigns(gomock.Any(), gomock.Any()).Return([]domain.Campaign{}, nil),
		service.EXPECT().ListCampaigns(gomock.Any(), gomock.Any()).Return(sampleCampaigns()[3:], nil),
		service.EXPECT().ListCampaigns(gomock.Any(), gomock.Any()).Return(sampleCampaigns(), nil),
	)

	snapshot, err := board.Load(context.Background(), rangeOf("2024-01-01", "2024-01-02"))
	require.NoError(t, err)
	assert.Empty(t, snapshot.Accounts)

	snapshot, err = board.Load(context.Background(), rangeOf("2024-01-01", "2024-01-03"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Loja B", "Loja C"}, snapshot.Accounts)

	// conta que não veio na busca anterior passa a ser oferecida
	snapshot, err = board.Load(context.Background(), rangeOf("2024-01-01", "2024-01-04"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Loja A", "Loja B", "Loja C"}, snapshot.Accounts)
}

func TestBoard_LoadRefetchesAfterTTL(t *testing.T) {
	board, service := newTestBoard(t)

	clock := time.Date(2024, 3, 31, 8, 0, 0, 0, time.UTC)
	board.now = func() time.Time { return clock }

	dr := board.DefaultRange()

	service.EXPECT().ListCampaigns(gomock.Any(), dr).Return(sampleCampaigns(), nil).Times(2)

	first, err := board.Load(context.Background(), dr)
	require.NoError(t, err)

	clock = clock.Add(4 * time.Minute)
	second, err := board.Load(context.Background(), dr)
	require.NoError(t, err)
	assert.Same(t, first, second)

	// mesmo dia, mesmo período: expirado refaz a busca
	clock = clock.Add(13 * time.Hour)
	require.True(t, dr.Equal(board.DefaultRange()))

	third, err := board.Load(context.Background(), dr)
	require.NoError(t, err)
	assert.NotSame(t, first, third)
	assert.Equal(t, clock, third.FetchedAt)
}

func TestBoard_ZeroTTLAlwaysRefetches(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockCampaignService(ctrl)
	board := NewBoard(service, config.Dashboard{LookbackDays: 30})
	january := rangeOf("2024-01-01", "2024-01-31")

	service.EXPECT().ListCampaigns(gomock.Any(), january).Return(sampleCampaigns(), nil).Times(3)

	for i := 0; i < 3; i++ {
		_, err := board.Load(context.Background(), january)
		require.NoError(t, err)
	}
}

func TestBoard_CheckCredentials(t *testing.T) {
	board, service := newTestBoard(t)
	missing := errors.New("token ausente")

	service.EXPECT().CheckCredentials().Return(missing)

	assert.ErrorIs(t, board.CheckCredentials(), missing)
}

func TestBoard_Invalidate(t *testing.T) {
	board, service := newTestBoard(t)
	january := rangeOf("2024-01-01", "2024-01-31")

	service.EXPECT().ListCampaigns(gomock.Any(), january).Return(sampleCampaigns(), nil).Times(2)

	_, err := board.Load(context.Background(), january)
	require.NoError(t, err)

	board.Invalidate()

	_, err = board.Load(context.Background(), january)
	require.NoError(t, err)
}

func TestBoard_ConcurrentReaders(t *testing.T) {
	board, service := newTestBoard(t)
	january := rangeOf("2024-01-01", "2024-01-31")

	service.EXPECT().ListCampaigns(gomock.Any(), january).Return(sampleCampaigns(), nil).MinTimes(1)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			snapshot, err := board.Load(context.Background(), january)
			if assert.NoError(t, err) {
				snapshot.View(Filters{Account: "Loja A"})
			}
		}()
	}
	wg.Wait()
}

func TestBoard_DefaultRange(t *testing.T) {
	board, _ := newTestBoard(t)

	dr := board.DefaultRange()

	assert.Equal(t, "2024-03-01", dr.SinceString())
	assert.Equal(t, "2024-03-31", dr.UntilString())
	assert.Equal(t, "3", board.LowCostThreshold().String())
}

func TestSnapshot_View(t *testing.T) {
	snapshot := &Snapshot{
		DateRange: rangeOf("2024-01-01", "2024-01-31"),
		Campaigns: sampleCampaigns(),
		Accounts:  []string{"Loja A", "Loja B", "Loja C"},
	}

	view := snapshot.View(Filters{Account: "Loja A"})

	assert.Equal(t, DateRangeView{Since: "2024-01-01", Until: "2024-01-31"}, view.DateRange)
	assert.Equal(t, AllOption, view.Filters.Status)
	assert.Equal(t, []string{"1", "2"}, ids(view.Campaigns))
	assert.Equal(t, []string{"OUTCOME_ENGAGEMENT", "OUTCOME_SALES", "OUTCOME_TRAFFIC"}, view.Objectives)
	assert.Equal(t, "140.00", view.Summary.TotalSpend.StringFixed(2))
	assert.Equal(t, []string{"Loja A"}, view.Charts.SpendByAccount.Labels)
	assert.Len(t, snapshot.Campaigns, 5)
}
