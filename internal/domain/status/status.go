// Package status models the application-status workflow an employee
// moves through during onboarding: Demand Officer review, Central
// Office review, confirmation, and the two rejection paths.
package status

import "context"

const (
	PendingAtDO  = "Pending at DO"
	PendingAtCO  = "Pending at CO"
	Confirm      = "Confirm"
	BackToDO     = "Back to DO"
	BackToCampus = "Back to Campus"
	ForwardToCO  = "Forward to CO"
)

type Status struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Registry resolves statuses against the reference table. Absence of
// an expected name is fatal to the calling operation.
type Registry interface {
	ByName(ctx context.Context, name string) (Status, error)
	ByID(ctx context.Context, id int64) (Status, error)
}

type transition struct {
	from string
	to   string
}

// allowed is the full set of workflow edges. Services consult this
// table instead of comparing status strings inline.
var allowed = map[transition]struct{}{
	{PendingAtDO, ForwardToCO}:  {},
	{PendingAtDO, PendingAtCO}:  {},
	{PendingAtCO, Confirm}:      {},
	{PendingAtCO, BackToDO}:     {},
	{PendingAtCO, BackToCampus}: {},
	{BackToCampus, PendingAtDO}: {},
}

func CanTransition(from, to string) bool {
	_, ok := allowed[transition{from: from, to: to}]
	return ok
}
