// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import "github.com/taibuivan/jitata-seed/internal/platform/constants"

// # Roles

// Role is the authorization level carried by a bearer token.
type Role string

const (
	// Read and write access to every collection.
	RoleServiceRole Role = constants.RoleServiceRole

	// Read-only access.
	RoleAnon Role = constants.RoleAnon
)

// Known reports whether r is one of the roles the backend recognizes.
func (r Role) Known() bool {
	return r == RoleServiceRole || r == RoleAnon
}

// CanWrite reports whether r may insert records.
func (r Role) CanWrite() bool {
	return r == RoleServiceRole
}
