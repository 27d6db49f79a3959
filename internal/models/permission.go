package models

// Permission is a set of capability bits granted through a role.
type Permission int

// Permission bits. They combine freely.
const (
	PermissionDrink      Permission = 0x01
	PermissionBrew       Permission = 0x02
	PermissionModerate   Permission = 0x08
	PermissionAdminister Permission = 0x80
)

// Has reports whether every bit of required is present in p.
func (p Permission) Has(required Permission) bool {
	return p&required == required
}

// Seed role names.
const (
	RoleUser          = "User"
	RoleModerator     = "Moderator"
	RoleAdministrator = "Administrator"
)

// SeedRole is a role created at deploy time.
type SeedRole struct {
	Name        string
	Permissions Permission
	Default     bool
}

// SeedRoles returns the fixed role set, default role first.
func SeedRoles() []SeedRole {
	return []SeedRole{
		{Name: RoleUser, Permissions: PermissionDrink | PermissionBrew, Default: true},
		{Name: RoleModerator, Permissions: PermissionDrink | PermissionBrew | PermissionModerate},
		{Name: RoleAdministrator, Permissions: 0xff},
	}
}
