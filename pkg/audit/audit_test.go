package audit

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger()
	logger.SetWriter(&buf)

	logger.Log(CheckEvent{
		ProjectID:  "t1",
		UserID:     "user_123",
		Permission: "course_ultra",
		ClientIP:   "10.0.0.1",
		Allowed:    true,
	})

	line := buf.String()

	// PRI = facility*8 + severity = 10*8 + 6 = 86
	if !strings.HasPrefix(line, "<86>1 ") {
		t.Errorf("expected RFC5424 header with PRI 86, got: %s", line)
	}
	if !strings.Contains(line, " check ") {
		t.Errorf("expected msgid 'check' in: %s", line)
	}
	if !strings.Contains(line, `permission="course_ultra"`) {
		t.Errorf("expected structured data with permission in: %s", line)
	}
	if !strings.Contains(line, "t1 checked course_ultra for user_123: allowed") {
		t.Errorf("expected message text in: %s", line)
	}
}

func TestCheckEventDenied(t *testing.T) {
	e := CheckEvent{ProjectID: "t1", UserID: "user_123", Permission: "course_ultra", Allowed: false}

	if e.Message() != "t1 checked course_ultra for user_123: denied" {
		t.Errorf("CheckEvent.Message() = %q", e.Message())
	}
	if e.StructuredData()[SDIDAction]["result"] != "failure" {
		t.Errorf("denied check should have result=failure")
	}
}

func TestGrantEventWithExpiry(t *testing.T) {
	e := GrantEvent{
		ProjectID:  "t1",
		UserID:     "user_123",
		Permission: "course_ultra",
		ExpiresAt:  "2027-01-02T15:04:05Z",
	}

	if !strings.Contains(e.Message(), "until 2027-01-02T15:04:05Z") {
		t.Errorf("GrantEvent.Message() = %q", e.Message())
	}
	if e.StructuredData()[SDIDSubject]["expires_at"] != "2027-01-02T15:04:05Z" {
		t.Errorf("expected expires_at in structured data")
	}
}

func TestAuthenticateEventFailure(t *testing.T) {
	e := AuthenticateEvent{ProjectID: "t1", Success: false, ErrorMessage: "bad key"}

	if e.Severity() != SeverityWarning {
		t.Errorf("failed authn should have warning severity, got %v", e.Severity())
	}
	if !strings.Contains(e.Message(), "bad key") {
		t.Errorf("AuthenticateEvent.Message() = %q", e.Message())
	}
}

func TestEscapeSDValue(t *testing.T) {
	got := escapeSDValue(`va"l\ue]`)
	want := `"va\"l\\ue\]"`
	if got != want {
		t.Errorf("escapeSDValue() = %s, want %s", got, want)
	}
}
