package domain

import "time"

// PayableOn is the single payability rule: a bill may be paid if and only if
// its due date falls in the same calendar month and year as now. Day of month
// is ignored, so a bill due on the 1st of next month is not payable even
// hours before, and one due on the 31st of last month is not payable hours
// after. A zero due date (unparseable collaborator value) is never payable.
func PayableOn(due, now time.Time) bool {
	if due.IsZero() {
		return false
	}
	return due.Year() == now.Year() && due.Month() == now.Month()
}
