package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/integrations/catalogservice"
	"github.com/m04kA/SMC-SalonService/internal/schedule"
	"github.com/m04kA/SMC-SalonService/internal/store"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

type fakeStore struct {
	existing []*domain.Appointment
	created  []store.CreateData
}

func (f *fakeStore) Create(_ context.Context, data store.CreateData) (*domain.Appointment, error) {
	f.created = append(f.created, data)

	start := mustTime(data.Time).At(data.Date)
	minutes := data.ServiceDurationMinutes
	if data.DurationMinutes != nil {
		minutes = *data.DurationMinutes
	}
	return &domain.Appointment{
		ID:         "new-id",
		Title:      data.ClientName + " - " + data.ServiceName,
		ClientID:   data.ClientID,
		ServiceID:  data.ServiceID,
		StylistID:  data.StylistID,
		Start:      start,
		End:        start.Add(time.Duration(minutes) * time.Minute),
		Status:     domain.StatusScheduled,
		ClientName: data.ClientName,
	}, nil
}

func (f *fakeStore) Snapshot() []*domain.Appointment {
	return f.existing
}

type fakeCatalog struct {
	clientErr  error
	serviceErr error
	stylistErr error
}

func (f *fakeCatalog) GetClient(context.Context, string) (*catalogservice.Client, error) {
	if f.clientErr != nil {
		return nil, f.clientErr
	}
	return &catalogservice.Client{ID: "client-1", Name: "Anna"}, nil
}

func (f *fakeCatalog) GetService(context.Context, string) (*catalogservice.Service, error) {
	if f.serviceErr != nil {
		return nil, f.serviceErr
	}
	return &catalogservice.Service{ID: "service-1", Name: "Haircut", Price: 45, DurationMinutes: 45}, nil
}

func (f *fakeCatalog) GetStylist(context.Context, string) (*catalogservice.Stylist, error) {
	if f.stylistErr != nil {
		return nil, f.stylistErr
	}
	return &catalogservice.Stylist{ID: "stylist-1", Name: "Marco"}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

func mustTime(s string) types.TimeString {
	return types.TimeString(s)
}

func testRequest() *Request {
	return &Request{
		ClientID:  "client-1",
		ServiceID: "service-1",
		StylistID: "stylist-1",
		Date:      time.Date(2026, 3, 9, 0, 0, 0, 0, time.Local),
		StartTime: mustTime("10:00"),
	}
}

func newUseCase(fs *fakeStore, catalog *fakeCatalog) *UseCase {
	validator := schedule.NewValidator(domain.DefaultBusinessWindow())
	return NewUseCase(fs, validator, catalog, nopLogger{})
}

func TestExecute_CreatesWithServiceDuration(t *testing.T) {
	t.Parallel()

	fs := &fakeStore{}
	uc := newUseCase(fs, &fakeCatalog{})

	resp, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, "new-id", resp.ID)
	assert.Equal(t, "Anna - Haircut", resp.Title)
	assert.Equal(t, 45, resp.Duration)
	require.Len(t, fs.created, 1)
	assert.Equal(t, 45, fs.created[0].ServiceDurationMinutes)
	assert.Nil(t, fs.created[0].DurationMinutes)
}

func TestExecute_RejectsOverlap(t *testing.T) {
	t.Parallel()

	day := time.Date(2026, 3, 9, 0, 0, 0, 0, time.Local)
	fs := &fakeStore{existing: []*domain.Appointment{{
		ID:     "busy",
		Title:  "Olga - Coloring",
		Start:  day.Add(10 * time.Hour),
		End:    day.Add(11 * time.Hour),
		Status: domain.StatusScheduled,
	}}}
	uc := newUseCase(fs, &fakeCatalog{})

	_, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.ErrorContains(t, err, "Olga - Coloring")
	assert.Empty(t, fs.created)
}

func TestExecute_BackToBackIsAccepted(t *testing.T) {
	t.Parallel()

	day := time.Date(2026, 3, 9, 0, 0, 0, 0, time.Local)
	fs := &fakeStore{existing: []*domain.Appointment{{
		ID:     "before",
		Title:  "Olga - Coloring",
		Start:  day.Add(9 * time.Hour),
		End:    day.Add(10 * time.Hour),
		Status: domain.StatusScheduled,
	}}}
	uc := newUseCase(fs, &fakeCatalog{})

	_, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)
}

func TestExecute_ExplicitEndTimeWins(t *testing.T) {
	t.Parallel()

	fs := &fakeStore{}
	uc := newUseCase(fs, &fakeCatalog{})

	req := testRequest()
	req.EndTime = ptr.Ptr(mustTime("11:30"))

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, fs.created, 1)
	require.NotNil(t, fs.created[0].EndTime)
	assert.Equal(t, "11:30", *fs.created[0].EndTime)
}

func TestExecute_CatalogNotFound(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		catalog *fakeCatalog
		wantErr error
	}{
		{"client", &fakeCatalog{clientErr: catalogservice.ErrClientNotFound}, ErrClientNotFound},
		{"service", &fakeCatalog{serviceErr: catalogservice.ErrServiceNotFound}, ErrServiceNotFound},
		{"stylist", &fakeCatalog{stylistErr: catalogservice.ErrStylistNotFound}, ErrStylistNotFound},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			uc := newUseCase(&fakeStore{}, tc.catalog)

			_, err := uc.Execute(context.Background(), testRequest())
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestExecute_InvalidInput(t *testing.T) {
	t.Parallel()

	uc := newUseCase(&fakeStore{}, &fakeCatalog{})

	req := testRequest()
	req.ClientID = ""
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = testRequest()
	req.StartTime = mustTime("10:99")
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = testRequest()
	req.DurationMinutes = ptr.Ptr(0)
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_ShortDurationRejected(t *testing.T) {
	t.Parallel()

	uc := newUseCase(&fakeStore{}, &fakeCatalog{})

	req := testRequest()
	req.DurationMinutes = ptr.Ptr(10)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.ErrorContains(t, err, "at least 15 minutes")
}
