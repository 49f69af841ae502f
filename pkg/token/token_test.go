package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	issuer := NewIssuer([]byte("test-secret"), time.Hour)

	signed, err := issuer.Issue("project_test", time.Now())
	require.NoError(t, err)

	projectID, err := issuer.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "project_test", projectID)
}

func TestVerifyExpired(t *testing.T) {
	issuer := NewIssuer([]byte("test-secret"), time.Minute)

	signed, err := issuer.Issue("project_test", time.Now().Add(-2*time.Minute))
	require.NoError(t, err)

	_, err = issuer.Verify(signed)
	assert.Error(t, err)
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewIssuer([]byte("test-secret"), time.Hour)
	other := NewIssuer([]byte("other-secret"), time.Hour)

	signed, err := issuer.Issue("project_test", time.Now())
	require.NoError(t, err)

	_, err = other.Verify(signed)
	assert.Error(t, err)
}

func TestVerifyGarbage(t *testing.T) {
	issuer := NewIssuer([]byte("test-secret"), time.Hour)

	_, err := issuer.Verify("not-a-token")
	assert.Error(t, err)
}
