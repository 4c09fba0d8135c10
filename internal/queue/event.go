// Package queue defines message payloads exchanged over the message broker.
package queue

// Actions carried by DirectoryActivityEvent.
const (
	ActionUpsert     = "upsert"
	ActionDelete     = "delete"
	ActionBulkDelete = "bulk_delete"
	ActionBulkImport = "bulk_import"
)

// DirectoryActivityEvent is published whenever the directory changes.  It
// carries enough information for downstream consumers to build an audit
// trail without querying the primary database.  Email is set for
// single-profile actions; Emails and Count for the bulk ones.
type DirectoryActivityEvent struct {
	Actor  string   `json:"actor"`            // "admin:<id>", or "public" for connect submissions
	Action string   `json:"action"`           // one of the Action* constants
	Email  string   `json:"email,omitempty"`  // affected profile for single-row actions
	Emails []string `json:"emails,omitempty"` // affected profiles for bulk actions
	Count  int64    `json:"count,omitempty"`  // rows touched by bulk actions
	At     string   `json:"at"`               // RFC3339 timestamp
}
