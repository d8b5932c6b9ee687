package constants

import "fmt"

const (
	RoleAdmin  = "Admin"
	RoleStaff  = "Staff"
	RoleTenant = "Tenant"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess = "Only Admin users can access %s."
	ErrOnlyStaffCanAccess  = "Only Admin or Staff users can access %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

// ==========================
// Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleStaff,
		RoleTenant,
	}

	AdminOnly = []string{
		RoleAdmin,
	}

	AdminAndStaff = []string{
		RoleAdmin,
		RoleStaff,
	}
)

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
