package model

// LogEntry is one exercise projected into a user's log. Date is already
// rendered in the human-readable weekday form.
type LogEntry struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// Log is the filtered view of a user's exercises returned by the logs
// endpoint and cached by the log cache.
type Log struct {
	UserID   uint       `json:"_id"`
	Username string     `json:"username"`
	Count    int        `json:"count"`
	Entries  []LogEntry `json:"log"`
}
