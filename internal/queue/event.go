// Package queue defines message payloads exchanged over the message broker.
package queue

// OperatorPatchedEvent is published after a roster patch is accepted.
// It contains enough information for downstream consumers to build an audit
// trail without querying the primary database.  Risk is the derived risk
// level after the patch was applied.
type OperatorPatchedEvent struct {
	EventID    string   `json:"event_id"`
	OperatorID uint64   `json:"operator_id"`
	OpCode     string   `json:"op_code"`
	Name       string   `json:"name"`
	Role       string   `json:"role"`
	Fields     []string `json:"fields"`
	Risk       string   `json:"risk"`
	PatchedAt  string   `json:"patched_at"`
}
