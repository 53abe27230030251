package domain

import (
	"strings"
	"time"
)

// BillCategory classifies a utility bill.
type BillCategory string

const (
	CategoryElectricity BillCategory = "Electricity"
	CategoryGas         BillCategory = "Gas"
	CategoryInternet    BillCategory = "Internet"
	CategoryWater       BillCategory = "Water"
	CategoryOther       BillCategory = "Other"
)

// knownCategories maps lower-cased collaborator values to the canonical set.
var knownCategories = map[string]BillCategory{
	"electricity": CategoryElectricity,
	"gas":         CategoryGas,
	"internet":    CategoryInternet,
	"water":       CategoryWater,
}

// ParseCategory maps a raw collaborator category string to the canonical set.
// Unrecognized values resolve to CategoryOther.
func ParseCategory(raw string) BillCategory {
	if c, ok := knownCategories[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return c
	}
	return CategoryOther
}

// Bill is a utility charge record sourced from the catalog collaborator.
// The collaborator owns its lifecycle; within a request it is read-only.
type Bill struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Category    BillCategory `json:"category"`
	Amount      float64      `json:"amount"`
	DueDate     time.Time    `json:"due_date"` // zero when the collaborator value was unparseable
	Location    string       `json:"location"`
	Description string       `json:"description"`
	ImageURL    string       `json:"image_url"`
}

// PayableAt reports whether the bill may be paid at the given instant.
func (b Bill) PayableAt(now time.Time) bool {
	return PayableOn(b.DueDate, now)
}
