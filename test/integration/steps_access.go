package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cucumber/godog"

	"github.com/doodlesbykumbi/access-api-in-go/pkg/apikey"
)

// StepsContext holds state shared between step definitions
type StepsContext struct {
	tc           *TestContext
	response     *http.Response
	responseBody []byte
	projectKeys  map[string]string
	projectToken string
}

// NewStepsContext creates a new steps context
func NewStepsContext(tc *TestContext) *StepsContext {
	return &StepsContext{
		tc:          tc,
		projectKeys: make(map[string]string),
	}
}

// RegisterSteps registers all step definitions
func (s *StepsContext) RegisterSteps(sc *godog.ScenarioContext) {
	// Background steps
	sc.Step(`^an access server is running$`, s.anAccessServerIsRunning)
	sc.Step(`^a project "([^"]*)" exists$`, s.aProjectExists)
	sc.Step(`^a permission "([^"]*)" exists in project "([^"]*)"$`, s.aPermissionExists)
	sc.Step(`^a disabled permission "([^"]*)" exists in project "([^"]*)"$`, s.aDisabledPermissionExists)

	// Action steps
	sc.Step(`^I check "([^"]*)" for user "([^"]*)" in project "([^"]*)"$`, s.iCheckPermission)
	sc.Step(`^I check "([^"]*)" for user "([^"]*)" with API key "([^"]*)"$`, s.iCheckPermissionWithAPIKey)
	sc.Step(`^I grant "([^"]*)" to user "([^"]*)" in project "([^"]*)"$`, s.iGrantPermission)
	sc.Step(`^I grant "([^"]*)" to user "([^"]*)" in project "([^"]*)" expiring in the past$`, s.iGrantPermissionExpiringInThePast)
	sc.Step(`^I grant "([^"]*)" to user "([^"]*)" in project "([^"]*)" expiring in one hour$`, s.iGrantPermissionExpiringInOneHour)
	sc.Step(`^I revoke "([^"]*)" from user "([^"]*)" in project "([^"]*)"$`, s.iRevokePermission)
	sc.Step(`^I exchange project "([^"]*)"'s API key for a token$`, s.iExchangeAPIKeyForToken)
	sc.Step(`^I check "([^"]*)" for user "([^"]*)" using the token$`, s.iCheckPermissionUsingToken)

	// Response steps
	sc.Step(`^the response status should be (\d+)$`, s.theResponseStatusShouldBe)
	sc.Step(`^access should be allowed$`, s.accessShouldBeAllowed)
	sc.Step(`^access should be denied$`, s.accessShouldBeDenied)
	sc.Step(`^the error should be "([^"]*)"$`, s.theErrorShouldBe)
	sc.Step(`^the usage count of "([^"]*)" in project "([^"]*)" should be (\d+)$`, s.theUsageCountShouldBe)
}

// Background steps

func (s *StepsContext) anAccessServerIsRunning() error {
	// Server is already running via TestContext
	return nil
}

func (s *StepsContext) aProjectExists(projectID string) error {
	key := "test-api-key-" + projectID
	s.projectKeys[projectID] = key

	if err := s.tc.DB.Exec(`
		INSERT INTO projects (project_id, name) VALUES (?, ?)
		ON CONFLICT (project_id) DO NOTHING
	`, projectID, projectID).Error; err != nil {
		return err
	}

	return s.tc.DB.Exec(`
		INSERT INTO api_keys (key_digest, project_id) VALUES (?, ?)
		ON CONFLICT (key_digest) DO NOTHING
	`, apikey.Digest(key), projectID).Error
}

func (s *StepsContext) aPermissionExists(slug, projectID string) error {
	return s.createPermission(slug, projectID, true)
}

func (s *StepsContext) aDisabledPermissionExists(slug, projectID string) error {
	return s.createPermission(slug, projectID, false)
}

func (s *StepsContext) createPermission(slug, projectID string, enabled bool) error {
	return s.tc.DB.Exec(`
		INSERT INTO permissions (project_id, slug, enabled) VALUES (?, ?, ?)
		ON CONFLICT (project_id, slug) DO UPDATE SET enabled = EXCLUDED.enabled
	`, projectID, slug, enabled).Error
}

// Action steps

func (s *StepsContext) iCheckPermission(slug, userID, projectID string) error {
	return s.postAccess("/access/check", s.bearerFor(projectID), map[string]string{
		"user_id":    userID,
		"permission": slug,
	})
}

func (s *StepsContext) iCheckPermissionWithAPIKey(slug, userID, key string) error {
	return s.postAccess("/access/check", "Bearer "+key, map[string]string{
		"user_id":    userID,
		"permission": slug,
	})
}

func (s *StepsContext) iGrantPermission(slug, userID, projectID string) error {
	return s.postAccess("/access/grant", s.bearerFor(projectID), map[string]string{
		"user_id":    userID,
		"permission": slug,
	})
}

func (s *StepsContext) iGrantPermissionExpiringInThePast(slug, userID, projectID string) error {
	return s.postAccess("/access/grant", s.bearerFor(projectID), map[string]string{
		"user_id":    userID,
		"permission": slug,
		"expires_at": time.Now().Add(-time.Hour).UTC().Format(time.RFC3339),
	})
}

func (s *StepsContext) iGrantPermissionExpiringInOneHour(slug, userID, projectID string) error {
	return s.postAccess("/access/grant", s.bearerFor(projectID), map[string]string{
		"user_id":    userID,
		"permission": slug,
		"expires_at": time.Now().Add(time.Hour).UTC().Format(time.RFC3339),
	})
}

func (s *StepsContext) iRevokePermission(slug, userID, projectID string) error {
	return s.postAccess("/access/revoke", s.bearerFor(projectID), map[string]string{
		"user_id":    userID,
		"permission": slug,
	})
}

func (s *StepsContext) iExchangeAPIKeyForToken(projectID string) error {
	if err := s.postAccess("/authn/token", "", map[string]string{
		"api_key": s.projectKeys[projectID],
	}); err != nil {
		return err
	}

	if s.response.StatusCode == http.StatusOK {
		var body struct {
			Token string `json:"token"`
		}
		if err := json.Unmarshal(s.responseBody, &body); err != nil {
			return err
		}
		s.projectToken = body.Token
	}
	return nil
}

func (s *StepsContext) iCheckPermissionUsingToken(slug, userID string) error {
	return s.postAccess("/access/check", "Bearer "+s.projectToken, map[string]string{
		"user_id":    userID,
		"permission": slug,
	})
}

func (s *StepsContext) bearerFor(projectID string) string {
	return "Bearer " + s.projectKeys[projectID]
}

func (s *StepsContext) postAccess(path, authorization string, body map[string]string) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequest("POST", s.tc.ServerURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	s.response, err = s.tc.HTTPClient.Do(req)
	if err != nil {
		return err
	}

	s.responseBody, err = io.ReadAll(s.response.Body)
	_ = s.response.Body.Close()
	return err
}

// Response steps

func (s *StepsContext) theResponseStatusShouldBe(status int) error {
	if s.response == nil {
		return fmt.Errorf("no response recorded")
	}
	if s.response.StatusCode != status {
		return fmt.Errorf("expected status %d, got %d (body: %s)", status, s.response.StatusCode, s.responseBody)
	}
	return nil
}

func (s *StepsContext) accessShouldBeAllowed() error {
	return s.assertAccess(true)
}

func (s *StepsContext) accessShouldBeDenied() error {
	return s.assertAccess(false)
}

func (s *StepsContext) assertAccess(want bool) error {
	if err := s.theResponseStatusShouldBe(http.StatusOK); err != nil {
		return err
	}

	var body struct {
		Access bool `json:"access"`
	}
	if err := json.Unmarshal(s.responseBody, &body); err != nil {
		return fmt.Errorf("failed to parse response %q: %w", s.responseBody, err)
	}
	if body.Access != want {
		return fmt.Errorf("expected access=%v, got %v", want, body.Access)
	}
	return nil
}

func (s *StepsContext) theErrorShouldBe(message string) error {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(s.responseBody, &body); err != nil {
		return fmt.Errorf("failed to parse response %q: %w", s.responseBody, err)
	}
	if body.Error != message {
		return fmt.Errorf("expected error %q, got %q", message, body.Error)
	}
	return nil
}

func (s *StepsContext) theUsageCountShouldBe(slug, projectID string, count int) error {
	var got int
	err := s.tc.DB.Raw(`
		SELECT usage_count FROM permissions WHERE project_id = ? AND slug = ?
	`, projectID, slug).Scan(&got).Error
	if err != nil {
		return err
	}
	if got != count {
		return fmt.Errorf("expected usage_count %d, got %d", count, got)
	}
	return nil
}
