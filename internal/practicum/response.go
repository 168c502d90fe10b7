package practicum

import "encoding/json"

// Homework is a single submission entry from the status API. Only status
// and homework_name are required downstream; the rest is carried for logs.
type Homework struct {
	ID              int64  `json:"id"`
	HomeworkName    string `json:"homework_name"`
	Status          string `json:"status"`
	ReviewerComment string `json:"reviewer_comment"`
	DateUpdated     string `json:"date_updated"`
	LessonName      string `json:"lesson_name"`
}

// LatestHomework validates the shape of a status response body and extracts
// the most recent entry (element 0, the API's ordering convention).
// Shape violations produce KindSchema; an empty homeworks list produces
// KindNoHomework, which callers treat as the benign no-submission case.
func LatestHomework(body []byte) (*Homework, error) {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, WrapError(KindSchema, "response is not a JSON object", err)
	}

	rawList, ok := payload["homeworks"]
	if !ok {
		return nil, NewError(KindSchema, `response has no "homeworks" key`)
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(rawList, &entries); err != nil {
		return nil, WrapError(KindSchema, `"homeworks" is not an array`, err)
	}

	if len(entries) == 0 {
		return nil, NewError(KindNoHomework, "homeworks list is empty")
	}

	var hw Homework
	if err := json.Unmarshal(entries[0], &hw); err != nil {
		return nil, WrapError(KindSchema, "homework entry is not an object", err)
	}

	return &hw, nil
}
