package workforce_test

import (
	"context"
	"errors"
	"testing"

	"github.com/AndreFCTeles/ElectrexAPI/internal/events"
	"github.com/AndreFCTeles/ElectrexAPI/internal/shared/apperror"
	"github.com/AndreFCTeles/ElectrexAPI/internal/workforce"
	workforceerrors "github.com/AndreFCTeles/ElectrexAPI/internal/workforce/errors"

	"github.com/stretchr/testify/assert"
)

type fakeRepository struct {
	workers   []workforce.Worker
	loadErr   error
	mutateErr error
	mutations int
}

func (f *fakeRepository) LoadAll(ctx context.Context) ([]workforce.Worker, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.workers, nil
}

func (f *fakeRepository) Mutate(ctx context.Context, fn func([]workforce.Worker) ([]workforce.Worker, error)) error {
	if f.mutateErr != nil {
		return f.mutateErr
	}
	next, err := fn(append([]workforce.Worker{}, f.workers...))
	if err != nil {
		return err
	}
	f.workers = next
	f.mutations++
	return nil
}

type fakePublisher struct {
	workerEvents  []events.WorkerCreatedEvent
	absenceEvents []events.AbsenceChangedEvent
	err           error
}

func (f *fakePublisher) PublishWorkerCreated(ctx context.Context, ev events.WorkerCreatedEvent) error {
	f.workerEvents = append(f.workerEvents, ev)
	return f.err
}

func (f *fakePublisher) PublishAbsenceChanged(ctx context.Context, ev events.AbsenceChangedEvent) error {
	f.absenceEvents = append(f.absenceEvents, ev)
	return f.err
}

type serviceDeps struct {
	repo      *fakeRepository
	publisher *fakePublisher
	service   workforce.Service
}

func setupServiceTest(workers ...workforce.Worker) *serviceDeps {
	repo := &fakeRepository{workers: workers}
	publisher := &fakePublisher{}
	return &serviceDeps{
		repo:      repo,
		publisher: publisher,
		service:   workforce.NewService(repo, publisher),
	}
}

func TestService_CreateWorker_FirstGetsIDOne(t *testing.T) {
	deps := setupServiceTest()

	created, err := deps.service.CreateWorker(context.Background(), workforce.CreateWorkerRequest{
		Title:   "Rui Costa",
		Dep:     "Enrolamentos",
		Color:   "#cc3311",
		AvaDays: 22,
		CompH:   0,
	})
	assert.NoError(t, err)

	assert.Equal(t, "1", created.ID)
	assert.Equal(t, 22.0, created.AvailableDays)
	assert.NotNil(t, created.Vacations)
	assert.Empty(t, created.Vacations)
	assert.NotNil(t, created.OffDays)
	assert.Len(t, deps.repo.workers, 1)
}

func TestService_CreateWorker_MaxPlusOne(t *testing.T) {
	deps := setupServiceTest(
		workforce.Worker{ID: "1"},
		workforce.Worker{ID: "7"},
		workforce.Worker{ID: "3"},
		workforce.Worker{ID: "legacy"}, // non-numeric ids are skipped
	)

	created, err := deps.service.CreateWorker(context.Background(), workforce.CreateWorkerRequest{Title: "Ana"})
	assert.NoError(t, err)
	assert.Equal(t, "8", created.ID)
}

func TestService_CreateWorker_TitleRequired(t *testing.T) {
	deps := setupServiceTest()

	_, err := deps.service.CreateWorker(context.Background(), workforce.CreateWorkerRequest{Title: "   "})
	assert.ErrorIs(t, err, workforceerrors.ErrTitleRequired)
	assert.Zero(t, deps.repo.mutations)
}

func TestService_CreateWorker_PublishesEvent(t *testing.T) {
	deps := setupServiceTest()

	_, err := deps.service.CreateWorker(context.Background(), workforce.CreateWorkerRequest{Title: "Ana", Dep: "Testes"})
	assert.NoError(t, err)

	assert.Len(t, deps.publisher.workerEvents, 1)
	assert.Equal(t, "1", deps.publisher.workerEvents[0].WorkerID)
	assert.Equal(t, "Testes", deps.publisher.workerEvents[0].Department)
}

func TestService_CreateWorker_PublishFailureDoesNotFail(t *testing.T) {
	deps := setupServiceTest()
	deps.publisher.err = errors.New("broker down")

	_, err := deps.service.CreateWorker(context.Background(), workforce.CreateWorkerRequest{Title: "Ana"})
	assert.NoError(t, err)
	assert.Len(t, deps.repo.workers, 1)
}

func TestService_UpdateWorker_MergesOnlyProvidedFields(t *testing.T) {
	deps := setupServiceTest(workforce.Worker{
		ID:            "2",
		Title:         "Rui",
		Department:    "Bobinagem",
		Color:         "#000000",
		AvailableDays: 10,
		CompHours:     4,
	})

	newDep := "Manutenção"
	newDays := 12.5
	updated, err := deps.service.UpdateWorker(context.Background(), "2", workforce.UpdateWorkerRequest{
		Dep:     &newDep,
		AvaDays: &newDays,
	})
	assert.NoError(t, err)

	assert.Equal(t, "Rui", updated.Title)
	assert.Equal(t, "Manutenção", updated.Department)
	assert.Equal(t, "#000000", updated.Color)
	assert.Equal(t, 12.5, updated.AvailableDays)
	assert.Equal(t, 4.0, updated.CompHours)
}

func TestService_UpdateWorker_NotFound(t *testing.T) {
	deps := setupServiceTest(workforce.Worker{ID: "1"})

	_, err := deps.service.UpdateWorker(context.Background(), "99", workforce.UpdateWorkerRequest{})
	assert.ErrorIs(t, err, workforceerrors.ErrWorkerNotFound)
	assert.Zero(t, deps.repo.mutations)
}

func TestService_DeleteWorker_CascadesEvents(t *testing.T) {
	deps := setupServiceTest(
		workforce.Worker{ID: "1", Vacations: []workforce.VacationEvent{{ID: "1-1-a"}}},
		workforce.Worker{ID: "2"},
	)

	err := deps.service.DeleteWorker(context.Background(), "1")
	assert.NoError(t, err)

	assert.Len(t, deps.repo.workers, 1)
	assert.Equal(t, "2", deps.repo.workers[0].ID)
}

func TestService_DeleteWorker_NotFound(t *testing.T) {
	deps := setupServiceTest(workforce.Worker{ID: "1"})

	err := deps.service.DeleteWorker(context.Background(), "42")
	assert.ErrorIs(t, err, workforceerrors.ErrWorkerNotFound)
}

func createAbsenceReq(workerID, kind string) workforce.CreateAbsenceRequest {
	return workforce.CreateAbsenceRequest{
		WorkerID: workerID,
		Type:     kind,
		Absence: &workforce.AbsencePayload{
			Start:   "2024-03-01",
			End:     "2024-03-05",
			BusDays: 3,
		},
	}
}

func TestService_CreateAbsence_PersistsBalances(t *testing.T) {
	deps := setupServiceTest(workforce.Worker{ID: "3", AvailableDays: 10})

	err := deps.service.CreateAbsence(context.Background(), createAbsenceReq("3", workforce.KindVacation))
	assert.NoError(t, err)

	assert.Equal(t, 7.0, deps.repo.workers[0].AvailableDays)
	assert.Len(t, deps.repo.workers[0].Vacations, 1)
	assert.Len(t, deps.publisher.absenceEvents, 1)
	assert.Equal(t, events.AbsenceCreated, deps.publisher.absenceEvents[0].Action)
}

func TestService_CreateAbsence_WorkerNotFound(t *testing.T) {
	deps := setupServiceTest(workforce.Worker{ID: "1"})

	err := deps.service.CreateAbsence(context.Background(), createAbsenceReq("9", workforce.KindVacation))
	assert.ErrorIs(t, err, workforceerrors.ErrWorkerNotFound)
	// nothing may be persisted on a failure path
	assert.Zero(t, deps.repo.mutations)
	assert.Empty(t, deps.publisher.absenceEvents)
}

func TestService_CreateAbsence_UnknownType(t *testing.T) {
	deps := setupServiceTest(workforce.Worker{ID: "3"})

	err := deps.service.CreateAbsence(context.Background(), createAbsenceReq("3", "sick"))
	assert.ErrorIs(t, err, workforceerrors.ErrUnknownAbsenceType)
	assert.Zero(t, deps.repo.mutations)
}

func TestService_UpdateAbsence_MovesEventBetweenLists(t *testing.T) {
	deps := setupServiceTest(workforce.Worker{ID: "3", AvailableDays: 10})
	assert.NoError(t, deps.service.CreateAbsence(context.Background(), createAbsenceReq("3", workforce.KindVacation)))

	token := deps.repo.workers[0].Vacations[0].ID
	ev, err := deps.service.UpdateAbsence(context.Background(), token, workforce.UpdateAbsenceRequest{
		Type:   workforce.KindOffDay,
		Start:  "2024-03-01",
		End:    "2024-03-01",
		AllDay: true,
	})
	assert.NoError(t, err)

	od, ok := ev.(workforce.OffDayEvent)
	assert.True(t, ok)
	assert.True(t, od.AllDay)

	w := deps.repo.workers[0]
	assert.Empty(t, w.Vacations)
	assert.Len(t, w.OffDays, 1)
	assert.Equal(t, 9.0, w.AvailableDays)
}

func TestService_UpdateAbsence_MalformedToken(t *testing.T) {
	deps := setupServiceTest(workforce.Worker{ID: "3"})

	_, err := deps.service.UpdateAbsence(context.Background(), "garbage", workforce.UpdateAbsenceRequest{
		Type:  workforce.KindVacation,
		Start: "2024-03-01",
		End:   "2024-03-02",
	})
	assert.ErrorIs(t, err, workforceerrors.ErrMalformedEventID)
	assert.Zero(t, deps.repo.mutations)
}

func TestService_UpdateAbsence_WorkerNotFound(t *testing.T) {
	deps := setupServiceTest(workforce.Worker{ID: "1"})

	_, err := deps.service.UpdateAbsence(context.Background(), "9-1-suffix", workforce.UpdateAbsenceRequest{
		Type:  workforce.KindVacation,
		Start: "2024-03-01",
		End:   "2024-03-02",
	})
	assert.ErrorIs(t, err, workforceerrors.ErrWorkerNotFound)
}

func TestService_DeleteAbsence_RestoresBalance(t *testing.T) {
	deps := setupServiceTest(workforce.Worker{ID: "3", AvailableDays: 10})
	assert.NoError(t, deps.service.CreateAbsence(context.Background(), createAbsenceReq("3", workforce.KindVacation)))
	assert.Equal(t, 7.0, deps.repo.workers[0].AvailableDays)

	token := deps.repo.workers[0].Vacations[0].ID
	assert.NoError(t, deps.service.DeleteAbsence(context.Background(), token))

	w := deps.repo.workers[0]
	assert.Empty(t, w.Vacations)
	assert.Equal(t, 10.0, w.AvailableDays)
}

func TestService_DeleteAbsence_EventNotFound(t *testing.T) {
	deps := setupServiceTest(workforce.Worker{ID: "3"})

	err := deps.service.DeleteAbsence(context.Background(), "3-1-missing")
	assert.ErrorIs(t, err, workforceerrors.ErrEventNotFound)
}

func TestService_AbsenceOps_LeaveOtherWorkersUntouched(t *testing.T) {
	other := workforce.Worker{
		ID:            "1",
		Title:         "Untouched",
		AvailableDays: 5,
		Vacations:     []workforce.VacationEvent{{ID: "1-1-keep", BusinessDays: 2}},
	}
	deps := setupServiceTest(other, workforce.Worker{ID: "3", AvailableDays: 10})

	assert.NoError(t, deps.service.CreateAbsence(context.Background(), createAbsenceReq("3", workforce.KindVacation)))

	assert.Equal(t, other, deps.repo.workers[0])
}

func TestService_GetAll_PersistenceFailureIsWrapped(t *testing.T) {
	deps := setupServiceTest()
	deps.repo.loadErr = errors.New("disk on fire")

	_, err := deps.service.GetAll(context.Background())
	assert.Error(t, err)

	// cause is wrapped; clients only ever see the generic message
	httpErr := apperror.ToHTTP(err)
	assert.Equal(t, 500, httpErr.Status)
	assert.Equal(t, workforceerrors.ErrPersistWorkers.Message, httpErr.Message)
}
