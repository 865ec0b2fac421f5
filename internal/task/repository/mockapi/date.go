package mockapi

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"
)

// dueDateLayouts are tried in order for string due dates.
var dueDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// UnmarshalJSON decodes a task without ever failing on its due date. Records
// written by other clients carry date-only strings, unix timestamps or nothing;
// anything unreadable becomes the zero time and is kept in BadDueDate.
func (t *Task) UnmarshalJSON(data []byte) error {
	type alias Task
	aux := struct {
		*alias
		DueDate json.RawMessage `json:"dueDate"`
	}{alias: (*alias)(t)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	t.DueDate, t.BadDueDate = parseDueDate(aux.DueDate)
	return nil
}

// parseDueDate returns the decoded time, or the zero time and the raw text when
// the value is present but unreadable.
func parseDueDate(raw json.RawMessage) (time.Time, string) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return time.Time{}, ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if s == "" {
			return time.Time{}, ""
		}
		for _, layout := range dueDateLayouts {
			if d, err := time.Parse(layout, s); err == nil {
				return d, ""
			}
		}
		return time.Time{}, s
	}

	if n, err := strconv.ParseInt(string(raw), 10, 64); err == nil {
		if n >= 1e12 {
			return time.UnixMilli(n).UTC(), ""
		}
		return time.Unix(n, 0).UTC(), ""
	}
	return time.Time{}, string(raw)
}
