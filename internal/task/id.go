package task

import (
	"fmt"
	"strings"

	"github.com/oklog/ulid/v2"
)

// Task ids encode their origin so duplicate detection needs no separate
// index: "<eventID>:std:<catalogID>" for catalog tasks,
// "<eventID>:auto:<kind>" for customs-kind tasks and
// "<eventID>:man:<ulid>" for manually created ones.

func StandardTaskID(eventID, catalogID string) string {
	return fmt.Sprintf("%s:std:%s", eventID, catalogID)
}

func AutomatedTaskID(eventID string, kind AutomatedKind) string {
	return fmt.Sprintf("%s:auto:%s", eventID, kind)
}

func ManualTaskID(eventID string) string {
	return fmt.Sprintf("%s:man:%s", eventID, ulid.Make().String())
}

// EventIDOf extracts the owning event id from a task id.
func EventIDOf(taskID string) (string, bool) {
	eventID, _, ok := strings.Cut(taskID, ":")
	if !ok || eventID == "" {
		return "", false
	}
	return eventID, true
}
