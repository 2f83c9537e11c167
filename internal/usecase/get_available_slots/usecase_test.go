package get_available_slots

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jc1971451-arch/paulo-jorge2/internal/domain"
	rulesRepo "github.com/jc1971451-arch/paulo-jorge2/internal/infra/storage/rules"
	"github.com/jc1971451-arch/paulo-jorge2/internal/integrations/directory"
)

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
}

func (f *fakeAppointmentRepo) GetByProfessionalWithFilter(_ context.Context, _ domain.AgendaFilter) ([]*domain.Appointment, error) {
	return f.appointments, f.err
}

type fakeRulesRepo struct {
	rules *domain.BookingRules
	err   error
}

func (f *fakeRulesRepo) Get(_ context.Context) (*domain.BookingRules, error) {
	return f.rules, f.err
}

type fakeDirectoryClient struct {
	professional *directory.Professional
	services     []*directory.Service
	profErr      error
	servicesErr  error
}

func (f *fakeDirectoryClient) GetProfessional(_ context.Context, _ int64) (*directory.Professional, error) {
	return f.professional, f.profErr
}

func (f *fakeDirectoryClient) GetServices(_ context.Context, _ []int64) ([]*directory.Service, error) {
	return f.services, f.servicesErr
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func activeService(id int64, duration int) *directory.Service {
	return &directory.Service{ID: id, Name: "Corte", DurationMinutes: duration, Active: true}
}

func TestUseCase_Execute_SumsCartDuration(t *testing.T) {
	dir := &fakeDirectoryClient{
		professional: testProfessional(),
		services:     []*directory.Service{activeService(1, 30), activeService(2, 45)},
	}
	uc := NewUseCase(
		&fakeAppointmentRepo{},
		&fakeRulesRepo{rules: domain.DefaultBookingRules()},
		dir,
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:         10,
		ProfessionalID: 1,
		ServiceIDs:     []int64{1, 2},
		Date:           testDate,
	})
	require.NoError(t, err)

	assert.Equal(t, 75, resp.DurationMinutes)
	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, 75, resp.Slots[0].DurationMinutes)
}

func TestUseCase_Execute_DefaultRulesWhenMissing(t *testing.T) {
	dir := &fakeDirectoryClient{
		professional: testProfessional(),
		services:     []*directory.Service{activeService(1, 30)},
	}
	uc := NewUseCase(
		&fakeAppointmentRepo{},
		&fakeRulesRepo{err: rulesRepo.ErrRulesNotFound},
		dir,
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:         10,
		ProfessionalID: 1,
		ServiceIDs:     []int64{1},
		Date:           testDate,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Slots)
}

func TestUseCase_Execute_ProfessionalNotFound(t *testing.T) {
	dir := &fakeDirectoryClient{profErr: directory.ErrProfessionalNotFound}
	uc := NewUseCase(&fakeAppointmentRepo{}, &fakeRulesRepo{}, dir, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		ProfessionalID: 99,
		ServiceIDs:     []int64{1},
		Date:           testDate,
	})
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestUseCase_Execute_ServiceNotOffered(t *testing.T) {
	dir := &fakeDirectoryClient{
		professional: testProfessional(),
		services:     []*directory.Service{activeService(7, 30)},
	}
	uc := NewUseCase(&fakeAppointmentRepo{}, &fakeRulesRepo{}, dir, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		ProfessionalID: 1,
		ServiceIDs:     []int64{7},
		Date:           testDate,
	})
	assert.ErrorIs(t, err, ErrServiceNotOffered)
}

func TestUseCase_Execute_ServiceInactive(t *testing.T) {
	svc := activeService(1, 30)
	svc.Active = false
	dir := &fakeDirectoryClient{
		professional: testProfessional(),
		services:     []*directory.Service{svc},
	}
	uc := NewUseCase(&fakeAppointmentRepo{}, &fakeRulesRepo{}, dir, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		ProfessionalID: 1,
		ServiceIDs:     []int64{1},
		Date:           testDate,
	})
	assert.ErrorIs(t, err, ErrServiceInactive)
}

func TestUseCase_Execute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeAppointmentRepo{}, &fakeRulesRepo{}, &fakeDirectoryClient{}, nopLogger{})

	tests := []struct {
		name string
		req  *Request
	}{
		{"zero professional", &Request{ServiceIDs: []int64{1}, Date: testDate}},
		{"no services", &Request{ProfessionalID: 1, Date: testDate}},
		{"negative service", &Request{ProfessionalID: 1, ServiceIDs: []int64{-1}, Date: testDate}},
		{"zero date", &Request{ProfessionalID: 1, ServiceIDs: []int64{1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
