package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jc1971451-arch/paulo-jorge2/internal/domain"
	rulesRepo "github.com/jc1971451-arch/paulo-jorge2/internal/infra/storage/rules"
	"github.com/jc1971451-arch/paulo-jorge2/internal/integrations/directory"
	"github.com/jc1971451-arch/paulo-jorge2/internal/service/rules/models"
	"github.com/jc1971451-arch/paulo-jorge2/pkg/ptr"
)

type fakeRulesRepo struct {
	rules    *domain.BookingRules
	getErr   error
	upserted *domain.BookingRules
}

func (f *fakeRulesRepo) Get(_ context.Context) (*domain.BookingRules, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.rules, nil
}

func (f *fakeRulesRepo) Upsert(_ context.Context, rules *domain.BookingRules) (*domain.BookingRules, error) {
	f.upserted = rules
	return rules, nil
}

type fakeDirectoryClient struct {
	users map[int64]*directory.User
}

func (f *fakeDirectoryClient) GetUser(_ context.Context, userID int64) (*directory.User, error) {
	user, ok := f.users[userID]
	if !ok {
		return nil, directory.ErrUserNotFound
	}
	return user, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func adminOnly() map[int64]*directory.User {
	return map[int64]*directory.User{
		1: {ID: 1, Role: directory.RoleAdmin},
		2: {ID: 2, Role: directory.RoleClient},
		3: {ID: 3, Role: directory.RoleStaff, ProfessionalID: ptr.Ptr(int64(1))},
	}
}

func TestService_Get_DefaultsWhenMissing(t *testing.T) {
	svc := NewService(&fakeRulesRepo{getErr: rulesRepo.ErrRulesNotFound}, &fakeDirectoryClient{}, nopLogger{})

	resp, err := svc.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "13:00", resp.LunchStart)
	assert.Equal(t, "14:00", resp.LunchEnd)
	assert.Equal(t, 10, resp.BufferMinutes)
	assert.Equal(t, 6, resp.CancellationLimitHours)
	assert.Equal(t, "09:00", resp.OpeningTime)
	assert.Equal(t, "19:00", resp.ClosingTime)
	assert.Equal(t, 30, resp.SlotGranularityMinutes)
}

func TestService_Update_AdminOnly(t *testing.T) {
	repo := &fakeRulesRepo{rules: domain.DefaultBookingRules()}
	svc := NewService(repo, &fakeDirectoryClient{users: adminOnly()}, nopLogger{})

	_, err := svc.Update(context.Background(), &models.UpdateRulesRequest{
		UserID:        2,
		BufferMinutes: ptr.Ptr(15),
	})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.Update(context.Background(), &models.UpdateRulesRequest{
		UserID:        3,
		BufferMinutes: ptr.Ptr(15),
	})
	assert.ErrorIs(t, err, ErrAccessDenied)

	resp, err := svc.Update(context.Background(), &models.UpdateRulesRequest{
		UserID:        1,
		BufferMinutes: ptr.Ptr(15),
	})
	require.NoError(t, err)
	assert.Equal(t, 15, resp.BufferMinutes)
	require.NotNil(t, repo.upserted)
	assert.Equal(t, 15, repo.upserted.BufferMinutes)
}

func TestService_Update_PartialKeepsOtherFields(t *testing.T) {
	repo := &fakeRulesRepo{rules: domain.DefaultBookingRules()}
	svc := NewService(repo, &fakeDirectoryClient{users: adminOnly()}, nopLogger{})

	resp, err := svc.Update(context.Background(), &models.UpdateRulesRequest{
		UserID:                 1,
		CancellationLimitHours: ptr.Ptr(12),
	})
	require.NoError(t, err)

	assert.Equal(t, 12, resp.CancellationLimitHours)
	assert.Equal(t, "13:00", resp.LunchStart)
	assert.Equal(t, 10, resp.BufferMinutes)
}

func TestService_Update_DisableLunch(t *testing.T) {
	repo := &fakeRulesRepo{rules: domain.DefaultBookingRules()}
	svc := NewService(repo, &fakeDirectoryClient{users: adminOnly()}, nopLogger{})

	resp, err := svc.Update(context.Background(), &models.UpdateRulesRequest{
		UserID:     1,
		LunchStart: ptr.Ptr(""),
		LunchEnd:   ptr.Ptr(""),
	})
	require.NoError(t, err)
	assert.Empty(t, resp.LunchStart)
	assert.Empty(t, resp.LunchEnd)
}

func TestService_Update_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  *models.UpdateRulesRequest
	}{
		{"opening after closing", &models.UpdateRulesRequest{UserID: 1, OpeningTime: ptr.Ptr("20:00")}},
		{"bad time format", &models.UpdateRulesRequest{UserID: 1, OpeningTime: ptr.Ptr("9am")}},
		{"lunch inverted", &models.UpdateRulesRequest{UserID: 1, LunchStart: ptr.Ptr("15:00")}},
		{"buffer too big", &models.UpdateRulesRequest{UserID: 1, BufferMinutes: ptr.Ptr(120)}},
		{"negative buffer", &models.UpdateRulesRequest{UserID: 1, BufferMinutes: ptr.Ptr(-5)}},
		{"cancellation limit too big", &models.UpdateRulesRequest{UserID: 1, CancellationLimitHours: ptr.Ptr(100)}},
		{"granularity too small", &models.UpdateRulesRequest{UserID: 1, SlotGranularityMinutes: ptr.Ptr(1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRulesRepo{rules: domain.DefaultBookingRules()}
			svc := NewService(repo, &fakeDirectoryClient{users: adminOnly()}, nopLogger{})

			_, err := svc.Update(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, repo.upserted)
		})
	}
}
