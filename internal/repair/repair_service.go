package repair

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/AndreFCTeles/ElectrexAPI/internal/shared/apperror"
	"github.com/AndreFCTeles/ElectrexAPI/internal/shared/jsonstore"

	"go.uber.org/zap"
)

// Default collection files for the two repair record kinds.
const (
	MachineRepairsFile = "tblRepairList.json"
	CircuitRepairsFile = "tblCircuitoList.json"
)

var (
	errEmptyRecord = apperror.New(
		apperror.CodeInvalidInput,
		"Repair record body is required",
		http.StatusBadRequest,
	)
	errBadFileName = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid collection file name",
		http.StatusBadRequest,
	)
	errPersistRepairs = apperror.New(
		apperror.CodePersistence,
		"Could not persist repair record",
		http.StatusInternalServerError,
	)
)

// Record is schemaless on purpose: the frontend owns the repair form
// layout and the server only appends, stamps and serves.
type Record map[string]any

type Service interface {
	Append(ctx context.Context, fileName string, record Record) (Record, error)
}

type service struct {
	store  *jsonstore.Store
	clock  func() time.Time
	logger *zap.Logger
}

func NewService(store *jsonstore.Store, logger ...*zap.Logger) Service {
	l := zap.L().Named("repair.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("repair.service")
	}
	return &service{store: store, clock: func() time.Time { return time.Now().UTC() }, logger: l}
}

func (s *service) Append(ctx context.Context, fileName string, record Record) (Record, error) {
	if len(record) == 0 {
		return nil, errEmptyRecord
	}

	var stored Record
	err := s.store.Update(ctx, fileName, func(raw []byte) (any, error) {
		var records []Record
		if raw != nil {
			if err := json.Unmarshal(raw, &records); err != nil {
				return nil, err
			}
		}
		if records == nil {
			records = []Record{}
		}

		stored = stamp(record, records, s.clock())
		return append(records, stored), nil
	})
	if err != nil {
		if errors.Is(err, jsonstore.ErrInvalidName) {
			s.logger.Warn("append repair invalid file name", zap.String("file", fileName))
			return nil, errBadFileName
		}
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		s.logger.Error("append repair persist failed", zap.String("file", fileName), zap.Error(err))
		return nil, apperror.Wrap(err, apperror.CodePersistence,
			errPersistRepairs.Message, http.StatusInternalServerError)
	}

	s.logger.Info("repair record appended",
		zap.String("file", fileName),
		zap.Any("id", stored["ID"]),
	)
	return stored, nil
}

// stamp assigns a max+1 numeric ID and a creation timestamp when the
// client did not provide them.
func stamp(record Record, existing []Record, now time.Time) Record {
	out := Record{}
	for k, v := range record {
		out[k] = v
	}

	if _, ok := out["ID"]; !ok {
		max := 0
		for _, r := range existing {
			switch id := r["ID"].(type) {
			case string:
				if n, err := strconv.Atoi(id); err == nil && n > max {
					max = n
				}
			case float64:
				if int(id) > max {
					max = int(id)
				}
			}
		}
		out["ID"] = strconv.Itoa(max + 1)
	}
	if _, ok := out["DataTime"]; !ok {
		out["DataTime"] = now.Format(time.RFC3339)
	}
	return out
}
