package audit

import "fmt"

// RevokeEvent represents a revoke mutation audit event
type RevokeEvent struct {
	ProjectID  string
	UserID     string
	Permission string
	ClientIP   string
}

func (e RevokeEvent) MessageID() string {
	return "revoke"
}

func (e RevokeEvent) Message() string {
	return fmt.Sprintf("%s revoked %s from %s", e.ProjectID, e.Permission, e.UserID)
}

func (e RevokeEvent) Severity() Severity {
	return SeverityNotice
}

func (e RevokeEvent) Facility() int {
	return FacilityAuthPriv
}

func (e RevokeEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDAuth: {
			"project": e.ProjectID,
		},
		SDIDSubject: {
			"user":       e.UserID,
			"permission": e.Permission,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": "revoke",
			"result":    "success",
		},
	}
}
