package models

// ActivityAction classifies an audit entry.
type ActivityAction string

const (
	ActionCreate  ActivityAction = "CREATE"
	ActionUpdate  ActivityAction = "UPDATE"
	ActionDelete  ActivityAction = "DELETE"
	ActionRestore ActivityAction = "RESTORE"
	ActionLogin   ActivityAction = "LOGIN"
	ActionSystem  ActivityAction = "SYSTEM"
)

// ActivityEntry is one row of the bounded admin audit feed.
type ActivityEntry struct {
	ID          string         `json:"id"`
	Action      ActivityAction `json:"action"`
	EntityType  string         `json:"entityType"`
	EntityTitle string         `json:"entityTitle"`
	Timestamp   string         `json:"timestamp"`
	User        string         `json:"user"`
}
