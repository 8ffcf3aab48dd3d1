// file: internals/helpers/auth/locals.go
package helperAuth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"azubiplan_backend/internals/constants"
)

// Locals keys hydrated by the JWT middleware.
const (
	LocUserID          = "user_id"
	LocActiveCompanyID = "active_company_id"
	LocRolesGlobal     = "roles_global"
	LocCompanyRoles    = "company_roles"
	LocTrainerID       = "trainer_id"
	LocTraineeID       = "trainee_id"
	LocIsOwner         = "is_owner"
)

func localUUID(c *fiber.Ctx, key string) (uuid.UUID, bool) {
	v := c.Locals(key)
	if v == nil {
		return uuid.Nil, false
	}
	s, ok := v.(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// GetUserID returns the authenticated user's ID.
func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	if id, ok := localUUID(c, LocUserID); ok {
		return id, nil
	}
	return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "user context not found")
}

// GetActiveCompanyID returns the tenant the request is scoped to.
func GetActiveCompanyID(c *fiber.Ctx) (uuid.UUID, error) {
	if id, ok := localUUID(c, LocActiveCompanyID); ok {
		return id, nil
	}
	return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "company context not found")
}

// GetTrainerID returns the trainer identity bound to the token, if any.
func GetTrainerID(c *fiber.Ctx) (uuid.UUID, bool) {
	return localUUID(c, LocTrainerID)
}

// GetTraineeID returns the trainee identity bound to the token, if any.
func GetTraineeID(c *fiber.Ctx) (uuid.UUID, bool) {
	return localUUID(c, LocTraineeID)
}

func rolesFromLocal(c *fiber.Ctx, key string) []string {
	switch v := c.Locals(key).(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, it := range v {
			if s, ok := it.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		if v == "" {
			return nil
		}
		return strings.Split(v, ",")
	default:
		return nil
	}
}

func hasRole(roles []string, wanted ...string) bool {
	for _, r := range roles {
		r = strings.ToLower(strings.TrimSpace(r))
		for _, w := range wanted {
			if r == w {
				return true
			}
		}
	}
	return false
}

func IsOwner(c *fiber.Ctx) bool {
	if b, ok := c.Locals(LocIsOwner).(bool); ok && b {
		return true
	}
	return hasRole(rolesFromLocal(c, LocRolesGlobal), constants.RoleOwner)
}

// EnsureCompanyAdmin guards admin-only routes: the token must carry an
// admin/owner role for the active company (global owner passes everywhere).
func EnsureCompanyAdmin(c *fiber.Ctx, companyID uuid.UUID) error {
	if IsOwner(c) {
		return nil
	}
	roles := rolesFromLocal(c, LocCompanyRoles)
	if hasRole(roles, constants.RoleAdmin, constants.RoleOwner) {
		return nil
	}
	return fiber.NewError(fiber.StatusForbidden, "company admin role required")
}

// EnsureTrainerOrAdmin guards routes trainers may also use (progress,
// examination handling, working-time review).
func EnsureTrainerOrAdmin(c *fiber.Ctx, companyID uuid.UUID) error {
	if IsOwner(c) {
		return nil
	}
	roles := rolesFromLocal(c, LocCompanyRoles)
	if hasRole(roles, constants.RoleAdmin, constants.RoleOwner, constants.RoleTrainer) {
		return nil
	}
	return fiber.NewError(fiber.StatusForbidden, "trainer or admin role required")
}
