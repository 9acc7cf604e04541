package utils

import (
	"fmt"
	"math/rand"

	"github.com/staffplanner-dev/staff-planner/backend/internal/domain"
)

var commonFirstNames = []string{
	"James", "Mary", "John", "Patricia", "Robert", "Jennifer", "Michael",
	"Linda", "William", "Elizabeth", "David", "Barbara", "Richard", "Susan",
	"Joseph", "Jessica", "Thomas", "Sarah", "Charles", "Karen",
}

var commonLastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Wilson", "Anderson", "Taylor",
	"Thomas", "Moore", "Jackson", "Martin", "Lee", "Thompson", "White",
}

func GenerateRandomEmployeeName() string {
	first := commonFirstNames[rand.Intn(len(commonFirstNames))]
	last := commonLastNames[rand.Intn(len(commonLastNames))]
	// a numeric suffix keeps repeated draws from colliding with the
	// unique name constraint
	return fmt.Sprintf("%s %s %02d", first, last, rand.Intn(100))
}

func GenerateRandomShiftType() domain.ShiftType {
	shiftTypes := domain.AllShiftTypes()
	return shiftTypes[rand.Intn(len(shiftTypes))]
}
