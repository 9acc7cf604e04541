package handler

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/staffplanner-dev/staff-planner/backend/internal/domain"
)

func (h *Handler) AddWishBookEntry(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EmployeeName string `json:"employeeName" validate:"required"`
		Date         string `json:"date" validate:"required,datetime=2006-01-02"`
		ShiftType    string `json:"shiftType" validate:"required,oneof=EARLY_SHIFT LATE_SHIFT"`
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

	entry, err := h.repository.CreateWishBookEntry(req.EmployeeName, date, domain.ShiftType(req.ShiftType))
	if err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "wish_book_entries_employee_id_date_shift_type_key":
				h.errorResponse(w, r, "this wish has already been submitted")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "wish book entry added", entry)
}

func (h *Handler) GetWishBookEntriesByDate(w http.ResponseWriter, r *http.Request) {
	date := r.Context().Value(DateCtxKey).(domain.Date)

	entries, err := h.repository.GetWishBookEntriesByDate(date)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "wish book entries retrieved", entries)
}
