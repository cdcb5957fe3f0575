package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billu/internal/application/admin/dto"
	"billu/internal/shared/authorization"
	"billu/internal/shared/errors"
	"billu/internal/shared/logger"
)

type mockSnapshotProvider struct {
	LatestFunc func(ctx context.Context) (*dto.OverviewSnapshot, error)
}

func (m *mockSnapshotProvider) Latest(ctx context.Context) (*dto.OverviewSnapshot, error) {
	if m.LatestFunc != nil {
		return m.LatestFunc(ctx)
	}
	return nil, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }

func TestGetOverview_RequiresSuperAdmin(t *testing.T) {
	uc := NewGetOverviewUseCase(&mockSnapshotProvider{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), GetOverviewQuery{Role: authorization.RoleOperator})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeForbidden, appErr.Type)
}

func TestGetOverview_ReturnsSnapshot(t *testing.T) {
	snapshot := &dto.OverviewSnapshot{
		GeneratedAt:  time.Now().UTC(),
		TotalTickets: 12,
		Leaderboard: []dto.TechnicianStanding{
			{TechnicianID: 7, TechnicianName: "Raj", TotalPoints: 180},
		},
	}
	provider := &mockSnapshotProvider{
		LatestFunc: func(ctx context.Context) (*dto.OverviewSnapshot, error) {
			return snapshot, nil
		},
	}
	uc := NewGetOverviewUseCase(provider, &mockLogger{})

	result, err := uc.Execute(context.Background(), GetOverviewQuery{Role: authorization.RoleSuperAdmin})

	require.NoError(t, err)
	assert.Equal(t, 12, result.Snapshot.TotalTickets)
	require.Len(t, result.Snapshot.Leaderboard, 1)
	assert.Equal(t, "Raj", result.Snapshot.Leaderboard[0].TechnicianName)
}

func TestGetOverview_NotReady(t *testing.T) {
	uc := NewGetOverviewUseCase(&mockSnapshotProvider{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), GetOverviewQuery{Role: authorization.RoleSuperAdmin})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
