package game

// NotificationKind classifies an engine event for the UI.
type NotificationKind string

const (
	NotifyRejected      NotificationKind = "rejected"
	NotifyAccepted      NotificationKind = "accepted"
	NotifyPangram       NotificationKind = "pangram"
	NotifyRankUp        NotificationKind = "rank-up"
	NotifyTopRank       NotificationKind = "top-rank"
	NotifyNewDay        NotificationKind = "new-day"
	NotifyPersistFailed NotificationKind = "persist-failed"
)

// Notification is a message the UI should show. The engine only queues
// them; timing and animation belong to the caller.
type Notification struct {
	Kind    NotificationKind
	Message string
}

// Sticky reports whether the notification should stay until dismissed.
func (n Notification) Sticky() bool {
	switch n.Kind {
	case NotifyPangram, NotifyTopRank:
		return true
	}
	return false
}
