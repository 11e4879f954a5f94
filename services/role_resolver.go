package services

import (
	"context"

	"github.com/yeremiapane/fudr-web/utils"
)

// RoleState is the outcome of a role gate check.
type RoleState int

const (
	RoleLoading RoleState = iota
	RoleAdmin
	RoleDenied
)

func (s RoleState) String() string {
	switch s {
	case RoleLoading:
		return "loading"
	case RoleAdmin:
		return "admin"
	default:
		return "denied"
	}
}

// RoleResolver asks the backend who owns a workspace's credential.
//
// A successful answer is cached on the workspace until the credential changes.
// Failures are not cached, so the next gated screen asks again. The gate is
// cosmetic; the backend still authorizes every call.
type RoleResolver struct {
	users UserLookup
}

func NewRoleResolver(users UserLookup) *RoleResolver {
	return &RoleResolver{users: users}
}

// Resolve returns RoleLoading while another request of the same workspace is
// resolving, RoleAdmin for administrators, and RoleDenied otherwise,
// including on any failure.
func (r *RoleResolver) Resolve(ctx context.Context, ws *Workspace) RoleState {
	ws.Lock()
	if ws.role.known {
		state := stateFor(ws.role.user.IsAdmin())
		ws.Unlock()
		return state
	}
	if ws.role.pending {
		ws.Unlock()
		return RoleLoading
	}
	token := ws.token
	if token == "" {
		ws.Unlock()
		return RoleDenied
	}
	ws.role.pending = true
	ws.Unlock()

	user, err := r.users.CurrentUser(ctx, token)

	ws.Lock()
	defer ws.Unlock()
	ws.role.pending = false

	if err != nil {
		utils.InfoLogger.Printf("Role check failed for workspace %s: %v", ws.id, err)
		return RoleDenied
	}
	if ws.token == token {
		ws.role.known = true
		ws.role.user = user
	}
	return stateFor(user.IsAdmin())
}

func stateFor(admin bool) RoleState {
	if admin {
		return RoleAdmin
	}
	return RoleDenied
}
