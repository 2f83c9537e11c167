package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jc1971451-arch/paulo-jorge2/internal/domain"
	"github.com/jc1971451-arch/paulo-jorge2/internal/integrations/directory"
	"github.com/jc1971451-arch/paulo-jorge2/pkg/ptr"
	"github.com/jc1971451-arch/paulo-jorge2/pkg/types"
)

// Понедельник
var testDate = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

// За день до testDate, чтобы запись всегда была в будущем
var testNow = time.Date(2026, 9, 6, 12, 0, 0, 0, time.UTC)

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	created      *domain.Appointment
	nextID       int64
}

func (f *fakeAppointmentRepo) Create(_ context.Context, app *domain.Appointment) (*domain.Appointment, error) {
	created := *app
	created.ID = f.nextID
	if created.ID == 0 {
		created.ID = 1
	}
	f.created = &created
	return &created, nil
}

func (f *fakeAppointmentRepo) GetByProfessionalWithFilter(_ context.Context, _ domain.AgendaFilter) ([]*domain.Appointment, error) {
	return f.appointments, nil
}

type fakeRulesRepo struct {
	rules *domain.BookingRules
}

func (f *fakeRulesRepo) Get(_ context.Context) (*domain.BookingRules, error) {
	return f.rules, nil
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

// passthroughTxManager выполняет функцию без реальной транзакции
type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testProfessional() *directory.Professional {
	return &directory.Professional{
		ID:          1,
		Name:        "Paulo",
		ServiceIDs:  []int64{1, 2},
		WorkingDays: []string{"monday", "tuesday", "wednesday", "thursday", "friday"},
		StartTime:   "09:00",
		EndTime:     "19:00",
	}
}

func newTestUseCase(repo *fakeAppointmentRepo, dir *fakeDirectoryClient) *UseCase {
	uc := NewUseCase(
		repo,
		&fakeRulesRepo{rules: domain.DefaultBookingRules()},
		dir,
		passthroughTxManager{},
		nopLogger{},
	)
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func TestUseCase_Execute_ComputesEndTime(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	dir := &fakeDirectoryClient{
		professional: testProfessional(),
		services: []*directory.Service{
			{ID: 1, Name: "Corte de Cabelo", Price: ptr.Ptr(35.0), DurationMinutes: 45, Active: true},
		},
	}
	uc := newTestUseCase(repo, dir)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:         10,
		ProfessionalID: 1,
		ServiceIDs:     []int64{1},
		Date:           testDate,
		StartTime:      "14:00",
	})
	require.NoError(t, err)

	assert.Equal(t, types.TimeString("14:45"), resp.EndTime)
	assert.Equal(t, 45, resp.DurationMinutes)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
}

func TestUseCase_Execute_SnapshotsServices(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	dir := &fakeDirectoryClient{
		professional: testProfessional(),
		services: []*directory.Service{
			{ID: 1, Name: "Corte de Cabelo", Price: ptr.Ptr(35.0), DurationMinutes: 30, Active: true},
			{ID: 2, Name: "Barba", Price: ptr.Ptr(20.0), DurationMinutes: 30, Active: true},
		},
	}
	uc := newTestUseCase(repo, dir)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:         10,
		ProfessionalID: 1,
		ServiceIDs:     []int64{1, 2},
		Date:           testDate,
		StartTime:      "10:00",
	})
	require.NoError(t, err)

	assert.Equal(t, "Corte de Cabelo, Barba", resp.ServiceNames)
	assert.Equal(t, 55.0, resp.TotalPrice)
	assert.Equal(t, 60, resp.DurationMinutes)
	assert.Equal(t, types.TimeString("11:00"), resp.EndTime)
}

func TestUseCase_Execute_SlotTaken(t *testing.T) {
	repo := &fakeAppointmentRepo{
		appointments: []*domain.Appointment{
			{
				ID:             100,
				ProfessionalID: 1,
				Date:           testDate,
				StartTime:      "10:00",
				EndTime:        "10:30",
				Status:         domain.StatusConfirmed,
			},
		},
	}
	dir := &fakeDirectoryClient{
		professional: testProfessional(),
		services: []*directory.Service{
			{ID: 1, Name: "Corte", DurationMinutes: 30, Active: true},
		},
	}
	uc := newTestUseCase(repo, dir)

	// Прямое пересечение
	_, err := uc.Execute(context.Background(), &Request{
		UserID: 10, ProfessionalID: 1, ServiceIDs: []int64{1},
		Date: testDate, StartTime: "10:00",
	})
	assert.ErrorIs(t, err, ErrSlotTaken)

	// Буфер кандидата цепляет существующую запись: 09:30+30+10 = 10:10 > 10:00
	_, err = uc.Execute(context.Background(), &Request{
		UserID: 10, ProfessionalID: 1, ServiceIDs: []int64{1},
		Date: testDate, StartTime: "09:30",
	})
	assert.ErrorIs(t, err, ErrSlotTaken)

	// Начало ровно в конец существующей записи допустимо
	resp, err := uc.Execute(context.Background(), &Request{
		UserID: 10, ProfessionalID: 1, ServiceIDs: []int64{1},
		Date: testDate, StartTime: "10:30",
	})
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("11:00"), resp.EndTime)
}

func TestUseCase_Execute_LunchOverlap(t *testing.T) {
	dir := &fakeDirectoryClient{
		professional: testProfessional(),
		services: []*directory.Service{
			{ID: 1, Name: "Corte", DurationMinutes: 30, Active: true},
		},
	}
	uc := newTestUseCase(&fakeAppointmentRepo{}, dir)

	// 12:30+30+10 = 13:10 пересекает обед 13:00-14:00
	_, err := uc.Execute(context.Background(), &Request{
		UserID: 10, ProfessionalID: 1, ServiceIDs: []int64{1},
		Date: testDate, StartTime: "12:30",
	})
	assert.ErrorIs(t, err, ErrLunchOverlap)

	_, err = uc.Execute(context.Background(), &Request{
		UserID: 10, ProfessionalID: 1, ServiceIDs: []int64{1},
		Date: testDate, StartTime: "13:30",
	})
	assert.ErrorIs(t, err, ErrLunchOverlap)
}

func TestUseCase_Execute_OutsideWorkingHours(t *testing.T) {
	dir := &fakeDirectoryClient{
		professional: testProfessional(),
		services: []*directory.Service{
			{ID: 1, Name: "Corte", DurationMinutes: 30, Active: true},
		},
	}
	uc := newTestUseCase(&fakeAppointmentRepo{}, dir)

	// 18:30+30+10 = 19:10 выходит за закрытие 19:00
	_, err := uc.Execute(context.Background(), &Request{
		UserID: 10, ProfessionalID: 1, ServiceIDs: []int64{1},
		Date: testDate, StartTime: "18:30",
	})
	assert.ErrorIs(t, err, ErrOutsideWorkingHours)

	_, err = uc.Execute(context.Background(), &Request{
		UserID: 10, ProfessionalID: 1, ServiceIDs: []int64{1},
		Date: testDate, StartTime: "08:30",
	})
	assert.ErrorIs(t, err, ErrOutsideWorkingHours)
}

func TestUseCase_Execute_UnalignedStartTime(t *testing.T) {
	dir := &fakeDirectoryClient{
		professional: testProfessional(),
		services: []*directory.Service{
			{ID: 1, Name: "Corte", DurationMinutes: 30, Active: true},
		},
	}
	uc := newTestUseCase(&fakeAppointmentRepo{}, dir)

	_, err := uc.Execute(context.Background(), &Request{
		UserID: 10, ProfessionalID: 1, ServiceIDs: []int64{1},
		Date: testDate, StartTime: "10:15",
	})
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestUseCase_Execute_NonWorkingDay(t *testing.T) {
	dir := &fakeDirectoryClient{
		professional: testProfessional(),
		services: []*directory.Service{
			{ID: 1, Name: "Corte", DurationMinutes: 30, Active: true},
		},
	}
	uc := newTestUseCase(&fakeAppointmentRepo{}, dir)

	sunday := time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC)
	_, err := uc.Execute(context.Background(), &Request{
		UserID: 10, ProfessionalID: 1, ServiceIDs: []int64{1},
		Date: sunday, StartTime: "15:00",
	})
	assert.ErrorIs(t, err, ErrNonWorkingDay)
}

func TestUseCase_Execute_PastDate(t *testing.T) {
	dir := &fakeDirectoryClient{
		professional: testProfessional(),
		services: []*directory.Service{
			{ID: 1, Name: "Corte", DurationMinutes: 30, Active: true},
		},
	}
	uc := newTestUseCase(&fakeAppointmentRepo{}, dir)

	_, err := uc.Execute(context.Background(), &Request{
		UserID: 10, ProfessionalID: 1, ServiceIDs: []int64{1},
		Date: testNow.AddDate(0, 0, -1), StartTime: "10:00",
	})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestUseCase_Execute_TimeInPastToday(t *testing.T) {
	dir := &fakeDirectoryClient{
		professional: testProfessional(),
		services: []*directory.Service{
			{ID: 1, Name: "Corte", DurationMinutes: 30, Active: true},
		},
	}
	uc := newTestUseCase(&fakeAppointmentRepo{}, dir)
	// Понедельник 11:00, запись на 10:00 того же дня
	uc.timeProvider = &fixedTimeProvider{now: testDate.Add(11 * time.Hour)}

	_, err := uc.Execute(context.Background(), &Request{
		UserID: 10, ProfessionalID: 1, ServiceIDs: []int64{1},
		Date: testDate, StartTime: "10:00",
	})
	assert.ErrorIs(t, err, ErrTimeInPast)
}

func TestUseCase_Execute_CancelledDoesNotBlock(t *testing.T) {
	repo := &fakeAppointmentRepo{
		appointments: []*domain.Appointment{
			{
				ID:             100,
				ProfessionalID: 1,
				Date:           testDate,
				StartTime:      "10:00",
				EndTime:        "10:30",
				Status:         domain.StatusCancelled,
			},
		},
	}
	dir := &fakeDirectoryClient{
		professional: testProfessional(),
		services: []*directory.Service{
			{ID: 1, Name: "Corte", DurationMinutes: 30, Active: true},
		},
	}
	uc := newTestUseCase(repo, dir)

	_, err := uc.Execute(context.Background(), &Request{
		UserID: 10, ProfessionalID: 1, ServiceIDs: []int64{1},
		Date: testDate, StartTime: "10:00",
	})
	assert.NoError(t, err)
}
