package seed

import (
	"log/slog"

	"github.com/staffplanner-dev/staff-planner/backend/internal/domain"
	"github.com/staffplanner-dev/staff-planner/backend/internal/repository"
	"github.com/staffplanner-dev/staff-planner/backend/internal/utils"
)

// SeedRandomEmployees inserts n employees with generated names.
func SeedRandomEmployees(r *repository.Repository, n int) {
	for i := 0; i < n; i++ {
		employee := &domain.Employee{
			Name: utils.GenerateRandomEmployeeName(),
		}
		if err := r.CreateEmployee(employee); err != nil {
			slog.Error("failed to insert employee", "name", employee.Name, "error", err)
			continue
		}
		slog.Info("employee inserted", "id", employee.ID, "name", employee.Name)
	}
}

// SeedRandomWishes inserts n wish book entries for the date, creating the
// employees on the fly.
func SeedRandomWishes(r *repository.Repository, date domain.Date, n int) {
	for i := 0; i < n; i++ {
		name := utils.GenerateRandomEmployeeName()
		entry, err := r.CreateWishBookEntry(name, date, utils.GenerateRandomShiftType())
		if err != nil {
			slog.Error("failed to insert wish book entry", "name", name, "error", err)
			continue
		}
		slog.Info("wish book entry inserted", "id", entry.ID, "name", name, "shiftType", entry.ShiftType)
	}
}

// SeedDemoDay inserts a ready-to-plan day: two wishes per catalog shift
// type, each from a distinct employee, and logs the entry IDs to feed into
// the planning endpoint.
func SeedDemoDay(r *repository.Repository, date domain.Date) {
	ids := make([]int64, 0, 2*len(domain.AllShiftTypes()))

	for _, shiftType := range domain.AllShiftTypes() {
		for i := 0; i < 2; i++ {
			name := utils.GenerateRandomEmployeeName()
			entry, err := r.CreateWishBookEntry(name, date, shiftType)
			if err != nil {
				slog.Error("failed to insert wish book entry", "name", name, "error", err)
				return
			}
			ids = append(ids, entry.ID)
		}
	}

	slog.Info("demo day inserted", "date", date.String(), "wishBookEntryIds", ids)
}
