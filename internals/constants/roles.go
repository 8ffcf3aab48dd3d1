package constants

import "fmt"

const (
	RoleOwner   = "owner"   // platform owner, cross-tenant
	RoleAdmin   = "admin"   // company training administrator (HR / Ausbildungsleitung)
	RoleTrainer = "trainer" // certified in-company trainer (Ausbilder)
	RoleTrainee = "trainee" // apprentice (Azubi)
)

var (
	AllRoles = []string{
		RoleOwner,
		RoleAdmin,
		RoleTrainer,
		RoleTrainee,
	}

	StaffRoles = []string{
		RoleOwner,
		RoleAdmin,
		RoleTrainer,
	}
)

const (
	ErrOnlyAdminsCanAccess   = "only company admins may access %s"
	ErrOnlyTrainersCanAccess = "only trainers or admins may access %s"
	ErrOnlyOwnersCanAccess   = "only the platform owner may access %s"
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorTrainer(feature string) string {
	return fmt.Sprintf(ErrOnlyTrainersCanAccess, feature)
}

func RoleErrorOwner(feature string) string {
	return fmt.Sprintf(ErrOnlyOwnersCanAccess, feature)
}
