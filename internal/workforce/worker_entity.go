package workforce

// Worker is an employee ledger: identity plus the two absence event
// lists and the derived-but-stored balances. AvailableDays and
// CompHours are kept consistent by the ledger mutator on every event
// create/update/delete; they are never recomputed from history.
type Worker struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Department    string          `json:"dep"`
	Color         string          `json:"color"`
	AvailableDays float64         `json:"avaDays"`
	CompHours     float64         `json:"compH"`
	Vacations     []VacationEvent `json:"vacations"`
	OffDays       []OffDayEvent   `json:"offDays"`
}

// VacationEvent consumes BusinessDays working days from AvailableDays.
type VacationEvent struct {
	ID           string  `json:"id"`
	Start        string  `json:"start"`
	End          string  `json:"end"`
	BusinessDays float64 `json:"busDays"`
}

// OffDayEvent is either a whole-day absence (AllDay, costs one
// available day) or a partial one (AbsenceTime hours accrued into
// CompHours).
type OffDayEvent struct {
	ID          string  `json:"id"`
	Start       string  `json:"start"`
	End         string  `json:"end"`
	AllDay      bool    `json:"allDay"`
	AbsenceTime float64 `json:"absTime"`
	Lunch       bool    `json:"lunch"`
}

// clone returns a Worker whose event slices are independent of the
// receiver's, so the mutator can fail without touching the original.
func (w Worker) clone() Worker {
	out := w
	out.Vacations = make([]VacationEvent, len(w.Vacations))
	copy(out.Vacations, w.Vacations)
	out.OffDays = make([]OffDayEvent, len(w.OffDays))
	copy(out.OffDays, w.OffDays)
	return out
}
