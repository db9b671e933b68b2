package workforce

import (
	"strings"

	workforceerrors "github.com/AndreFCTeles/ElectrexAPI/internal/workforce/errors"

	"github.com/google/uuid"
)

const (
	eventIDDelimiter = "-"

	// TypeVacation marks vacation events inside composite ids; any
	// other code is an off-day, with TypeOffDay as the conventional
	// value written by this server.
	TypeVacation = "1"
	TypeOffDay   = "2"
)

// EventID names one absence event: {workerID}-{typeCode}-{suffix}.
// Worker ids are numeric strings and the type code is a single digit,
// so positional decoding is unambiguous even though the uuid suffix
// contains the delimiter itself.
type EventID struct {
	WorkerID string
	TypeCode string
	Suffix   string
}

// NewEventID mints an id with a fresh unique suffix.
func NewEventID(workerID, typeCode string) EventID {
	return EventID{
		WorkerID: workerID,
		TypeCode: typeCode,
		Suffix:   uuid.NewString(),
	}
}

func (id EventID) String() string {
	return id.WorkerID + eventIDDelimiter + id.TypeCode + eventIDDelimiter + id.Suffix
}

// IsVacation classifies the type code: "1" is vacation, everything
// else off-day.
func (id EventID) IsVacation() bool {
	return id.TypeCode == TypeVacation
}

// ParseEventID splits a composite token back into its three parts.
func ParseEventID(token string) (EventID, error) {
	parts := strings.SplitN(token, eventIDDelimiter, 3)
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return EventID{}, workforceerrors.ErrMalformedEventID
	}
	return EventID{
		WorkerID: parts[0],
		TypeCode: parts[1],
		Suffix:   parts[2],
	}, nil
}
