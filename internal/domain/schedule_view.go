package domain

// ScheduleViewShift is one shift of the daily schedule view. EmployeeNames
// is empty, never nil, when nobody is assigned.
type ScheduleViewShift struct {
	ShiftType     ShiftType `json:"shiftType"`
	TimeRange     string    `json:"timeRange"`
	EmployeeNames []string  `json:"employeeNames"`
}

// ScheduleView is the shift-grouped schedule of one date. It always contains
// one entry per catalog shift type, so consumers can rely on a fixed shape.
type ScheduleView struct {
	Date   Date                `json:"date"`
	Shifts []ScheduleViewShift `json:"shifts"`
}
