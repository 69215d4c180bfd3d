package domain

import "time"

// AuditAction identifies the kind of security event being recorded.
type AuditAction string

const (
	AuditSignup      AuditAction = "signup"
	AuditLogin       AuditAction = "login"
	AuditLoginFailed AuditAction = "login_failed"
	AuditBlock       AuditAction = "block"
	AuditUnblock     AuditAction = "unblock"
	AuditUpdate      AuditAction = "update"
)

// AuditEntry records a single security-relevant event against a subject.
// ActorID is empty for self-originated events (signup, login).
type AuditEntry struct {
	SubjectID string      `json:"subject_id"`
	Action    AuditAction `json:"action"`
	ActorID   string      `json:"actor_id,omitempty"`
	Detail    string      `json:"detail,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}
