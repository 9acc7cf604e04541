package domain

// WishBookEntry records that an employee wants a given shift on a given date.
// At most one entry may exist per (employee, date, shift type); an employee
// may wish for both shift types on the same date.
type WishBookEntry struct {
	ID        int64     `json:"id"`
	Employee  Employee  `json:"employee"`
	Date      Date      `json:"date"`
	ShiftType ShiftType `json:"shiftType"`
}
