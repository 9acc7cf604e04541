package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/staffplanner-dev/staff-planner/backend/internal/domain"
	"github.com/staffplanner-dev/staff-planner/backend/internal/planner"
)

func (h *Handler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date             string  `json:"date" validate:"required,datetime=2006-01-02"`
		WishBookEntryIDs []int64 `json:"wishBookEntryIds" validate:"required,min=1"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	entries, err := h.planner.CreatePlan(date, req.WishBookEntryIDs)
	if err != nil {
		var notFoundErr *planner.NotFoundError
		var validationErr *planner.ValidationError
		var conflictErr *planner.ConflictError
		switch {
		case errors.As(err, &notFoundErr), errors.As(err, &validationErr):
			h.errorResponse(w, r, err.Error())
		case errors.As(err, &conflictErr):
			h.errorResponse(w, r, "the schedule for this date was changed concurrently, please retry")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	// The plan is durable at this point. A stale cache entry or a lost
	// notification must not fail the request, so both are logged only.
	h.invalidateScheduleCache(date)
	h.publishPlanPublishedMail(date, entries)

	h.successResponse(w, r, "schedule plan created", entries)
}

func (h *Handler) publishPlanPublishedMail(date domain.Date, entries []*domain.ScheduleEntry) {
	namesByShift := make(map[domain.ShiftType][]string)
	for _, entry := range entries {
		namesByShift[entry.ShiftType] = append(namesByShift[entry.ShiftType], entry.Employee.Name)
	}

	data := domain.PlanPublishedMailData{
		Date:   date.String(),
		Shifts: make([]domain.ScheduleViewShift, 0, len(domain.AllShiftTypes())),
	}
	for _, shiftType := range domain.AllShiftTypes() {
		data.Shifts = append(data.Shifts, domain.ScheduleViewShift{
			ShiftType:     shiftType,
			TimeRange:     shiftType.TimeRange(),
			EmployeeNames: namesByShift[shiftType],
		})
	}

	mailMessage := domain.MailMessage{
		Type: "plan_published",
		To:   h.config.Email.PlanRecipient,
		Data: data,
	}

	mailData, err := json.Marshal(mailMessage)
	if err != nil {
		slog.Error("failed to marshal plan published mail", "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	if err := h.mailChannel.PublishWithContext(
		ctx,
		"",
		"email_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        mailData,
		},
	); err != nil {
		slog.Error("failed to publish plan published mail", "date", date.String(), "error", err)
	}
}
