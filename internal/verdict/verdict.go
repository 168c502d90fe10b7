// Package verdict maps homework review statuses to the notification text
// sent to the user.
package verdict

import (
	"fmt"

	"github.com/ykarpenko/hwbot/internal/practicum"
)

// Catalog maps the closed set of review status codes to verdict text.
var Catalog = map[string]string{
	"approved":  "Review finished: the reviewer liked everything. Hooray!",
	"reviewing": "The submission was taken up for review.",
	"rejected":  "Review finished: the reviewer left some remarks.",
}

// Format builds the two-line notification for a submission: the submission
// name followed by the verdict for its status.
func Format(hw *practicum.Homework) (string, error) {
	if hw.Status == "" {
		return "", practicum.NewError(practicum.KindMissingField, `homework entry has no "status" field`)
	}
	if hw.HomeworkName == "" {
		return "", practicum.NewError(practicum.KindMissingField, `homework entry has no "homework_name" field`)
	}

	text, ok := Catalog[hw.Status]
	if !ok {
		return "", practicum.NewError(practicum.KindUnknownStatus, fmt.Sprintf("unexpected homework status: %q", hw.Status))
	}

	return fmt.Sprintf("Review status changed for %q.\n%s", hw.HomeworkName, text), nil
}
