package grantkey

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/access-api-in-go/pkg/model"
)

type countingProbe struct {
	calls   int32
	columns []string
	errs    []error
}

func (p *countingProbe) GrantTableColumns(ctx context.Context) ([]string, error) {
	n := atomic.AddInt32(&p.calls, 1)
	if int(n) <= len(p.errs) {
		return nil, p.errs[n-1]
	}
	return p.columns, nil
}

func TestResolvePreferenceOrder(t *testing.T) {
	cases := []struct {
		name    string
		columns []string
		want    Mode
	}{
		{
			"permission_id wins over everything",
			[]string{"project_id", "user_id", "permission_id", "permission_slug", "resource", "expires_at"},
			ModePermissionID,
		},
		{
			"permission_slug wins over resource",
			[]string{"project_id", "user_id", "permission_slug", "resource", "expires_at"},
			ModePermissionSlug,
		},
		{
			"resource alone",
			[]string{"project_id", "user_id", "resource", "expires_at"},
			ModeResource,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := NewResolver(&countingProbe{columns: tc.columns})

			mode, err := r.Resolve(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tc.want, mode)
		})
	}
}

func TestResolveMemoizesSuccess(t *testing.T) {
	probe := &countingProbe{columns: []string{"project_id", "user_id", "permission_id", "expires_at"}}
	r := NewResolver(probe)

	for i := 0; i < 3; i++ {
		mode, err := r.Resolve(context.Background())
		require.NoError(t, err)
		assert.Equal(t, ModePermissionID, mode)
	}

	assert.Equal(t, int32(1), atomic.LoadInt32(&probe.calls))
}

func TestResolveMismatchIsTerminal(t *testing.T) {
	probe := &countingProbe{columns: []string{"project_id", "user_id", "expires_at"}}
	r := NewResolver(probe)

	_, err := r.Resolve(context.Background())
	require.ErrorIs(t, err, ErrSchemaMismatch)

	// The mismatch is memoized: no further schema inspection.
	_, err = r.Resolve(context.Background())
	require.ErrorIs(t, err, ErrSchemaMismatch)
	assert.Equal(t, int32(1), atomic.LoadInt32(&probe.calls))
}

func TestResolveTransientFailureRetries(t *testing.T) {
	probe := &countingProbe{
		columns: []string{"project_id", "user_id", "permission_slug", "expires_at"},
		errs:    []error{assert.AnError},
	}
	r := NewResolver(probe)

	_, err := r.Resolve(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSchemaMismatch)

	// The probe failure was not memoized; the next caller succeeds.
	mode, err := r.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ModePermissionSlug, mode)
	assert.Equal(t, int32(2), atomic.LoadInt32(&probe.calls))
}

func TestResolveConcurrentFirstCallers(t *testing.T) {
	probe := &countingProbe{columns: []string{"project_id", "user_id", "permission_id", "expires_at"}}
	r := NewResolver(probe)

	const callers = 16
	var wg sync.WaitGroup
	modes := make([]Mode, callers)
	errs := make([]error, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			modes[i], errs[i] = r.Resolve(context.Background())
		}(i)
	}
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, ModePermissionID, modes[i])
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&probe.calls))
}

func TestKeyFor(t *testing.T) {
	p := &model.Permission{ID: 42, ProjectID: "t1", Slug: "course_ultra"}

	assert.Equal(t, Key{Mode: ModePermissionID, Value: int64(42)}, ModePermissionID.KeyFor(p))
	assert.Equal(t, Key{Mode: ModePermissionSlug, Value: "course_ultra"}, ModePermissionSlug.KeyFor(p))
	assert.Equal(t, Key{Mode: ModeResource, Value: "course_ultra"}, ModeResource.KeyFor(p))
}

func TestModeStrings(t *testing.T) {
	assert.Equal(t, "permission_id", ModePermissionID.String())
	assert.Equal(t, "permission_slug", ModePermissionSlug.String())
	assert.Equal(t, "resource", ModeResource.String())
}
