package constants

import (
	"fmt"

	"github.com/google/uuid"
)

const (
	RoleStudent  = "student"
	RoleLecturer = "lecturer"
	RoleAdmin    = "admin"
	RoleFinance  = "finance"
)

// DummyUserID is the guest identity used when no JWT claim is present.
var DummyUserID = uuid.MustParse("00000000-0000-0000-0000-000000000000")

// Role error message templates
const (
	ErrOnlyStudentsCanAccess = "Only students may access %s."
	ErrOnlyStaffCanAccess    = "Only lecturers, finance or admin may access %s."
	ErrOnlyAdminsCanAccess   = "Only admin may access %s."
)

func RoleErrorStudent(feature string) string {
	return fmt.Sprintf(ErrOnlyStudentsCanAccess, feature)
}

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// ==========================
// Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleStudent,
		RoleLecturer,
		RoleAdmin,
		RoleFinance,
	}

	StaffRoles = []string{
		RoleLecturer,
		RoleAdmin,
		RoleFinance,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
