package workforce

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/AndreFCTeles/ElectrexAPI/internal/events"
	"github.com/AndreFCTeles/ElectrexAPI/internal/shared/apperror"
	"github.com/AndreFCTeles/ElectrexAPI/internal/shared/contextutil"
	workforceerrors "github.com/AndreFCTeles/ElectrexAPI/internal/workforce/errors"

	"go.uber.org/zap"
)

type Service interface {
	GetAll(ctx context.Context) ([]Worker, error)
	CreateWorker(ctx context.Context, req CreateWorkerRequest) (Worker, error)
	UpdateWorker(ctx context.Context, id string, req UpdateWorkerRequest) (Worker, error)
	DeleteWorker(ctx context.Context, id string) error
	CreateAbsence(ctx context.Context, req CreateAbsenceRequest) error
	UpdateAbsence(ctx context.Context, token string, req UpdateAbsenceRequest) (any, error)
	DeleteAbsence(ctx context.Context, token string) error
}

type service struct {
	repo      Repository
	publisher EventPublisher
	logger    *zap.Logger
}

func NewService(repo Repository, publisher EventPublisher, logger ...*zap.Logger) Service {
	l := zap.L().Named("workforce.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("workforce.service")
	}
	if publisher == nil {
		publisher = NewNoopEventPublisher()
	}
	return &service{repo: repo, publisher: publisher, logger: l}
}

// persistErr keeps domain errors intact and folds everything else
// (I/O, corrupt file) into the generic persistence failure so raw
// detail never reaches a client.
func persistErr(err error) error {
	if err == nil {
		return nil
	}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperror.Wrap(err, apperror.CodePersistence,
		workforceerrors.ErrPersistWorkers.Message, http.StatusInternalServerError)
}

// nextWorkerID implements the max+1 assignment rule; the first worker
// in an empty collection gets "1". Non-numeric ids are skipped.
func nextWorkerID(workers []Worker) string {
	max := 0
	for _, w := range workers {
		n, err := strconv.Atoi(w.ID)
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return strconv.Itoa(max + 1)
}

func workerIndex(workers []Worker, id string) int {
	for i, w := range workers {
		if w.ID == id {
			return i
		}
	}
	return -1
}

func (s *service) GetAll(ctx context.Context) ([]Worker, error) {
	workers, err := s.repo.LoadAll(ctx)
	if err != nil {
		s.logger.Error("load workers failed", zap.Error(err))
		return nil, persistErr(err)
	}
	return workers, nil
}

func (s *service) CreateWorker(ctx context.Context, req CreateWorkerRequest) (Worker, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create worker requested",
		zap.String("request_id", rid),
		zap.String("title", req.Title),
		zap.String("dep", req.Dep),
	)

	if strings.TrimSpace(req.Title) == "" {
		s.logger.Warn("create worker without title", zap.String("request_id", rid))
		return Worker{}, workforceerrors.ErrTitleRequired
	}

	var created Worker
	err := s.repo.Mutate(ctx, func(workers []Worker) ([]Worker, error) {
		created = Worker{
			ID:            nextWorkerID(workers),
			Title:         req.Title,
			Department:    req.Dep,
			Color:         req.Color,
			AvailableDays: req.AvaDays,
			CompHours:     req.CompH,
			Vacations:     []VacationEvent{},
			OffDays:       []OffDayEvent{},
		}
		return append(workers, created), nil
	})
	if err != nil {
		s.logger.Error("create worker persist failed", zap.String("request_id", rid), zap.Error(err))
		return Worker{}, persistErr(err)
	}

	if err := s.publisher.PublishWorkerCreated(ctx, events.WorkerCreatedEvent{
		WorkerID:   created.ID,
		Title:      created.Title,
		Department: created.Department,
		OccurredAt: time.Now().UTC(),
	}); err != nil {
		s.logger.Warn("publish worker created failed", zap.String("worker_id", created.ID), zap.Error(err))
	}

	s.logger.Info("worker created", zap.String("worker_id", created.ID))
	return created, nil
}

func (s *service) UpdateWorker(ctx context.Context, id string, req UpdateWorkerRequest) (Worker, error) {
	s.logger.Debug("update worker requested", zap.String("worker_id", id))

	var updated Worker
	err := s.repo.Mutate(ctx, func(workers []Worker) ([]Worker, error) {
		idx := workerIndex(workers, id)
		if idx < 0 {
			return nil, workforceerrors.ErrWorkerNotFound
		}

		w := workers[idx]
		if req.Title != nil {
			w.Title = *req.Title
		}
		if req.Dep != nil {
			w.Department = *req.Dep
		}
		if req.Color != nil {
			w.Color = *req.Color
		}
		if req.AvaDays != nil {
			w.AvailableDays = *req.AvaDays
		}
		if req.CompH != nil {
			w.CompHours = *req.CompH
		}

		workers[idx] = w
		updated = w
		return workers, nil
	})
	if err != nil {
		if errors.Is(err, workforceerrors.ErrWorkerNotFound) {
			s.logger.Warn("update worker not found", zap.String("worker_id", id))
			return Worker{}, err
		}
		s.logger.Error("update worker persist failed", zap.String("worker_id", id), zap.Error(err))
		return Worker{}, persistErr(err)
	}

	s.logger.Info("worker updated", zap.String("worker_id", id))
	return updated, nil
}

func (s *service) DeleteWorker(ctx context.Context, id string) error {
	s.logger.Debug("delete worker requested", zap.String("worker_id", id))

	err := s.repo.Mutate(ctx, func(workers []Worker) ([]Worker, error) {
		idx := workerIndex(workers, id)
		if idx < 0 {
			return nil, workforceerrors.ErrWorkerNotFound
		}
		// events cascade with the record
		return append(workers[:idx], workers[idx+1:]...), nil
	})
	if err != nil {
		if errors.Is(err, workforceerrors.ErrWorkerNotFound) {
			s.logger.Warn("delete worker not found", zap.String("worker_id", id))
			return err
		}
		s.logger.Error("delete worker persist failed", zap.String("worker_id", id), zap.Error(err))
		return persistErr(err)
	}

	s.logger.Info("worker deleted", zap.String("worker_id", id))
	return nil
}

func (s *service) CreateAbsence(ctx context.Context, req CreateAbsenceRequest) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create absence requested",
		zap.String("request_id", rid),
		zap.String("worker_id", req.WorkerID),
		zap.String("type", req.Type),
	)

	if req.Absence == nil {
		return workforceerrors.ErrMissingAbsenceDates
	}

	var eventID string
	err := s.repo.Mutate(ctx, func(workers []Worker) ([]Worker, error) {
		idx := workerIndex(workers, req.WorkerID)
		if idx < 0 {
			return nil, workforceerrors.ErrWorkerNotFound
		}

		next, ev, err := CreateAbsence(workers[idx], req.Type, req.Absence.spec())
		if err != nil {
			return nil, err
		}
		workers[idx] = next
		eventID = absenceEventID(ev)
		return workers, nil
	})
	if err != nil {
		return s.absenceFailure("create absence", req.WorkerID, err)
	}

	s.publishAbsenceChanged(ctx, req.WorkerID, eventID, events.AbsenceCreated)
	s.logger.Info("absence created",
		zap.String("worker_id", req.WorkerID),
		zap.String("event_id", eventID),
	)
	return nil
}

func (s *service) UpdateAbsence(ctx context.Context, token string, req UpdateAbsenceRequest) (any, error) {
	s.logger.Debug("update absence requested", zap.String("event_id", token))

	id, err := ParseEventID(token)
	if err != nil {
		s.logger.Warn("update absence malformed id", zap.String("event_id", token))
		return nil, err
	}

	var newEvent any
	err = s.repo.Mutate(ctx, func(workers []Worker) ([]Worker, error) {
		idx := workerIndex(workers, id.WorkerID)
		if idx < 0 {
			return nil, workforceerrors.ErrWorkerNotFound
		}

		next, ev, err := UpdateAbsence(workers[idx], id, req.Type, req.spec())
		if err != nil {
			return nil, err
		}
		workers[idx] = next
		newEvent = ev
		return workers, nil
	})
	if err != nil {
		return nil, s.absenceFailure("update absence", id.WorkerID, err)
	}

	s.publishAbsenceChanged(ctx, id.WorkerID, absenceEventID(newEvent), events.AbsenceUpdated)
	s.logger.Info("absence updated",
		zap.String("worker_id", id.WorkerID),
		zap.String("event_id", absenceEventID(newEvent)),
	)
	return newEvent, nil
}

func (s *service) DeleteAbsence(ctx context.Context, token string) error {
	s.logger.Debug("delete absence requested", zap.String("event_id", token))

	id, err := ParseEventID(token)
	if err != nil {
		s.logger.Warn("delete absence malformed id", zap.String("event_id", token))
		return err
	}

	err = s.repo.Mutate(ctx, func(workers []Worker) ([]Worker, error) {
		idx := workerIndex(workers, id.WorkerID)
		if idx < 0 {
			return nil, workforceerrors.ErrWorkerNotFound
		}

		next, err := DeleteAbsence(workers[idx], id)
		if err != nil {
			return nil, err
		}
		workers[idx] = next
		return workers, nil
	})
	if err != nil {
		return s.absenceFailure("delete absence", id.WorkerID, err)
	}

	s.publishAbsenceChanged(ctx, id.WorkerID, token, events.AbsenceDeleted)
	s.logger.Info("absence deleted",
		zap.String("worker_id", id.WorkerID),
		zap.String("event_id", token),
	)
	return nil
}

func (s *service) absenceFailure(op, workerID string, err error) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		s.logger.Warn(op+" rejected",
			zap.String("worker_id", workerID),
			zap.String("code", appErr.Code),
		)
		return err
	}
	s.logger.Error(op+" persist failed", zap.String("worker_id", workerID), zap.Error(err))
	return persistErr(err)
}

func (s *service) publishAbsenceChanged(ctx context.Context, workerID, eventID, action string) {
	if err := s.publisher.PublishAbsenceChanged(ctx, events.AbsenceChangedEvent{
		WorkerID:   workerID,
		EventID:    eventID,
		Action:     action,
		OccurredAt: time.Now().UTC(),
	}); err != nil {
		s.logger.Warn("publish absence changed failed",
			zap.String("worker_id", workerID),
			zap.String("event_id", eventID),
			zap.Error(err),
		)
	}
}

func absenceEventID(ev any) string {
	switch e := ev.(type) {
	case VacationEvent:
		return e.ID
	case OffDayEvent:
		return e.ID
	default:
		return ""
	}
}
