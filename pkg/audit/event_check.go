package audit

import "fmt"

// CheckEvent represents a permission check audit event
type CheckEvent struct {
	ProjectID  string
	UserID     string
	Permission string
	ClientIP   string
	Allowed    bool
}

func (e CheckEvent) MessageID() string {
	return "check"
}

func (e CheckEvent) Message() string {
	if e.Allowed {
		return fmt.Sprintf("%s checked %s for %s: allowed", e.ProjectID, e.Permission, e.UserID)
	}
	return fmt.Sprintf("%s checked %s for %s: denied", e.ProjectID, e.Permission, e.UserID)
}

func (e CheckEvent) Severity() Severity {
	return SeverityInfo
}

func (e CheckEvent) Facility() int {
	return FacilityAuthPriv
}

func (e CheckEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Allowed {
		result = "failure"
	}
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
			"operation": "check",
			"result":    result,
		},
	}
}
