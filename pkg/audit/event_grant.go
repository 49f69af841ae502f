package audit

import "fmt"

// GrantEvent represents a grant mutation audit event
type GrantEvent struct {
	ProjectID  string
	UserID     string
	Permission string
	ClientIP   string
	ExpiresAt  string
}

func (e GrantEvent) MessageID() string {
	return "grant"
}

func (e GrantEvent) Message() string {
	if e.ExpiresAt != "" {
		return fmt.Sprintf("%s granted %s to %s until %s", e.ProjectID, e.Permission, e.UserID, e.ExpiresAt)
	}
	return fmt.Sprintf("%s granted %s to %s", e.ProjectID, e.Permission, e.UserID)
}

func (e GrantEvent) Severity() Severity {
	return SeverityNotice
}

func (e GrantEvent) Facility() int {
	return FacilityAuthPriv
}

func (e GrantEvent) StructuredData() map[string]map[string]string {
	sd := map[string]map[string]string{
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
			"operation": "grant",
			"result":    "success",
		},
	}
	if e.ExpiresAt != "" {
		sd[SDIDSubject]["expires_at"] = e.ExpiresAt
	}
	return sd
}
