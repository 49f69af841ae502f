package grantkey

//go:generate go run github.com/dmarkham/enumer -type Mode -trimprefix Mode -transform snake -output mode_enumer.go

import "github.com/doodlesbykumbi/access-api-in-go/pkg/model"

// Mode identifies which access_grants column encodes the grant subject's
// permission. Deployments predating the permission catalog keep a slug or a
// free-form resource column; the engine adapts rather than requiring a
// rewrite of the table.
type Mode int

const (
	ModePermissionID Mode = iota
	ModePermissionSlug
	ModeResource
)

// columns maps each mode to its access_grants column name. Dispatch happens
// through this table only; no call site branches on column strings.
var columns = map[Mode]string{
	ModePermissionID:   "permission_id",
	ModePermissionSlug: "permission_slug",
	ModeResource:       "resource",
}

// preferred is the resolution order when more than one recognized column is
// present.
var preferred = []Mode{ModePermissionID, ModePermissionSlug, ModeResource}

// Column returns the access_grants column this mode addresses.
func (m Mode) Column() string {
	return columns[m]
}

// Key is the concrete value stored in the grant key column for one
// permission, paired with the mode that determines the column.
type Key struct {
	Mode  Mode
	Value any
}

// KeyFor translates a resolved permission into the key value the store
// persists under this mode.
func (m Mode) KeyFor(p *model.Permission) Key {
	switch m {
	case ModePermissionID:
		return Key{Mode: m, Value: p.ID}
	default:
		// Slug and resource shaped schemas both store the human name.
		return Key{Mode: m, Value: p.Slug}
	}
}
