package domain

import "time"

// Work is a unit of queued work handed between bus nodes.
type Work struct {
	SourceAddress   string `json:"source_address,omitempty"`
	NotificationID  string `json:"notification_id,omitempty"`
	ReassignAddress string `json:"reassign_address,omitempty"`
}

// LogEntry is a log record forwarded to the central logging node.
// Instance is the address of the node that produced the entry.
type LogEntry struct {
	Severity  string    `json:"severity,omitempty"`
	ClassName string    `json:"class_name,omitempty"`
	DateTime  time.Time `json:"date_time,omitzero"`
	Message   string    `json:"message,omitempty"`
	Instance  string    `json:"instance,omitempty"`
}
