package domain

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type PlanPublishedMailData struct {
	Date   string              `json:"date"`
	Shifts []ScheduleViewShift `json:"shifts"`
}
