package workforce

import (
	workforceerrors "github.com/AndreFCTeles/ElectrexAPI/internal/workforce/errors"
)

// Absence kinds accepted on the wire.
const (
	KindVacation = "vacation"
	KindOffDay   = "offday"
)

// AbsenceSpec carries the type-specific fields of a create/update
// payload. BusinessDays only matters for vacations, AllDay/AbsenceTime/
// Lunch only for off-days; missing numbers count as zero.
type AbsenceSpec struct {
	Start        string
	End          string
	BusinessDays float64
	AllDay       bool
	AbsenceTime  float64
	Lunch        bool
}

func typeCodeFor(kind string) (string, error) {
	switch kind {
	case KindVacation:
		return TypeVacation, nil
	case KindOffDay:
		return TypeOffDay, nil
	default:
		return "", workforceerrors.ErrUnknownAbsenceType
	}
}

// The ledger mutator below is pure: each operation takes a Worker by
// value and returns the transformed copy, or an error and no change.
// Balance rules, applied on create and mirrored in reverse:
//
//	vacation         AvailableDays -= BusinessDays
//	off-day, all-day AvailableDays -= 1
//	off-day, partial CompHours     += AbsenceTime

func buildVacation(id string, spec AbsenceSpec) VacationEvent {
	return VacationEvent{
		ID:           id,
		Start:        spec.Start,
		End:          spec.End,
		BusinessDays: spec.BusinessDays,
	}
}

func buildOffDay(id string, spec AbsenceSpec) OffDayEvent {
	ev := OffDayEvent{
		ID:          id,
		Start:       spec.Start,
		End:         spec.End,
		AllDay:      spec.AllDay,
		AbsenceTime: spec.AbsenceTime,
		Lunch:       spec.Lunch,
	}
	if ev.AllDay {
		ev.AbsenceTime = 0
	}
	return ev
}

func applyVacation(w *Worker, ev VacationEvent) {
	w.AvailableDays -= ev.BusinessDays
}

func reverseVacation(w *Worker, ev VacationEvent) {
	w.AvailableDays += ev.BusinessDays
}

func applyOffDay(w *Worker, ev OffDayEvent) {
	if ev.AllDay {
		w.AvailableDays--
		return
	}
	w.CompHours += ev.AbsenceTime
}

func reverseOffDay(w *Worker, ev OffDayEvent) {
	if ev.AllDay {
		w.AvailableDays++
		return
	}
	w.CompHours -= ev.AbsenceTime
}

// CreateAbsence appends a new event of the given kind and debits or
// credits the balances accordingly. The created event is returned for
// the response body and event publishing.
func CreateAbsence(w Worker, kind string, spec AbsenceSpec) (Worker, any, error) {
	if spec.Start == "" || spec.End == "" {
		return Worker{}, nil, workforceerrors.ErrMissingAbsenceDates
	}
	code, err := typeCodeFor(kind)
	if err != nil {
		return Worker{}, nil, err
	}

	out := w.clone()
	switch code {
	case TypeVacation:
		ev := buildVacation(NewEventID(w.ID, TypeVacation).String(), spec)
		out.Vacations = append(out.Vacations, ev)
		applyVacation(&out, ev)
		return out, ev, nil
	default:
		ev := buildOffDay(NewEventID(w.ID, TypeOffDay).String(), spec)
		out.OffDays = append(out.OffDays, ev)
		applyOffDay(&out, ev)
		return out, ev, nil
	}
}

// UpdateAbsence replaces the event named by id with a rebuilt one of
// the requested target kind. The old effect is reversed before the new
// one is applied, so the net result equals delete-then-create. When the
// kind changes the event moves lists and its id is re-encoded with the
// new type code, keeping the original suffix; otherwise it is replaced
// in place at the same position.
func UpdateAbsence(w Worker, id EventID, kind string, spec AbsenceSpec) (Worker, any, error) {
	if spec.Start == "" || spec.End == "" {
		return Worker{}, nil, workforceerrors.ErrMissingAbsenceDates
	}
	targetCode, err := typeCodeFor(kind)
	if err != nil {
		return Worker{}, nil, err
	}

	out := w.clone()
	token := id.String()

	if id.IsVacation() {
		idx := vacationIndex(out.Vacations, token)
		if idx < 0 {
			return Worker{}, nil, workforceerrors.ErrEventNotFound
		}
		reverseVacation(&out, out.Vacations[idx])

		if targetCode == TypeVacation {
			ev := buildVacation(token, spec)
			out.Vacations[idx] = ev
			applyVacation(&out, ev)
			return out, ev, nil
		}

		// vacation -> off-day: leave the old list, join the other
		out.Vacations = append(out.Vacations[:idx], out.Vacations[idx+1:]...)
		newID := EventID{WorkerID: id.WorkerID, TypeCode: targetCode, Suffix: id.Suffix}
		ev := buildOffDay(newID.String(), spec)
		out.OffDays = append(out.OffDays, ev)
		applyOffDay(&out, ev)
		return out, ev, nil
	}

	idx := offDayIndex(out.OffDays, token)
	if idx < 0 {
		return Worker{}, nil, workforceerrors.ErrEventNotFound
	}
	reverseOffDay(&out, out.OffDays[idx])

	if targetCode != TypeVacation {
		ev := buildOffDay(token, spec)
		out.OffDays[idx] = ev
		applyOffDay(&out, ev)
		return out, ev, nil
	}

	// off-day -> vacation
	out.OffDays = append(out.OffDays[:idx], out.OffDays[idx+1:]...)
	newID := EventID{WorkerID: id.WorkerID, TypeCode: TypeVacation, Suffix: id.Suffix}
	ev := buildVacation(newID.String(), spec)
	out.Vacations = append(out.Vacations, ev)
	applyVacation(&out, ev)
	return out, ev, nil
}

// DeleteAbsence removes the event named by id and reverses its balance
// effect, so deleting is the exact inverse of creating.
func DeleteAbsence(w Worker, id EventID) (Worker, error) {
	out := w.clone()
	token := id.String()

	if id.IsVacation() {
		idx := vacationIndex(out.Vacations, token)
		if idx < 0 {
			return Worker{}, workforceerrors.ErrEventNotFound
		}
		reverseVacation(&out, out.Vacations[idx])
		out.Vacations = append(out.Vacations[:idx], out.Vacations[idx+1:]...)
		return out, nil
	}

	idx := offDayIndex(out.OffDays, token)
	if idx < 0 {
		return Worker{}, workforceerrors.ErrEventNotFound
	}
	reverseOffDay(&out, out.OffDays[idx])
	out.OffDays = append(out.OffDays[:idx], out.OffDays[idx+1:]...)
	return out, nil
}

func vacationIndex(events []VacationEvent, id string) int {
	for i, ev := range events {
		if ev.ID == id {
			return i
		}
	}
	return -1
}

func offDayIndex(events []OffDayEvent, id string) int {
	for i, ev := range events {
		if ev.ID == id {
			return i
		}
	}
	return -1
}
