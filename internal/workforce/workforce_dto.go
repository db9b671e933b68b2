package workforce

// AbsencePayload is the nested absence object of the create endpoint.
// Only start/end are universally required; the remaining fields matter
// depending on the requested type and default to their zero values.
type AbsencePayload struct {
	Start   string  `json:"start" binding:"required"`
	End     string  `json:"end" binding:"required"`
	BusDays float64 `json:"busDays"`
	AllDay  bool    `json:"allDay"`
	AbsTime float64 `json:"absTime"`
	Lunch   bool    `json:"lunch"`
}

type CreateAbsenceRequest struct {
	WorkerID string          `json:"id" binding:"required"`
	Absence  *AbsencePayload `json:"absence" binding:"required"`
	Type     string          `json:"type" binding:"required"`
}

// UpdateAbsenceRequest carries the full replacement fields for the
// event, built according to the target type.
type UpdateAbsenceRequest struct {
	Type    string  `json:"type" binding:"required"`
	Start   string  `json:"start" binding:"required"`
	End     string  `json:"end" binding:"required"`
	BusDays float64 `json:"busDays"`
	AllDay  bool    `json:"allDay"`
	AbsTime float64 `json:"absTime"`
	Lunch   bool    `json:"lunch"`
}

func (r UpdateAbsenceRequest) spec() AbsenceSpec {
	return AbsenceSpec{
		Start:        r.Start,
		End:          r.End,
		BusinessDays: r.BusDays,
		AllDay:       r.AllDay,
		AbsenceTime:  r.AbsTime,
		Lunch:        r.Lunch,
	}
}

func (p AbsencePayload) spec() AbsenceSpec {
	return AbsenceSpec{
		Start:        p.Start,
		End:          p.End,
		BusinessDays: p.BusDays,
		AllDay:       p.AllDay,
		AbsenceTime:  p.AbsTime,
		Lunch:        p.Lunch,
	}
}

type CreateWorkerRequest struct {
	Title   string  `json:"title" binding:"required"`
	Dep     string  `json:"dep"`
	Color   string  `json:"color"`
	AvaDays float64 `json:"avaDays"`
	CompH   float64 `json:"compH"`
}

// UpdateWorkerRequest shallow-merges onto the stored record: only
// fields present in the body are applied.
type UpdateWorkerRequest struct {
	Title   *string  `json:"title"`
	Dep     *string  `json:"dep"`
	Color   *string  `json:"color"`
	AvaDays *float64 `json:"avaDays"`
	CompH   *float64 `json:"compH"`
}
