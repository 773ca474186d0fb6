package trading

import (
	"context"

	"github.com/google/uuid"

	"github.com/pgEdge/pgedge-tradegen/internal/datagen"
	"github.com/pgEdge/pgedge-tradegen/internal/datagen/payload"
)

func (g *Generator) generateUsers(ctx context.Context) (int, error) {
	f := g.faker
	names := make(map[string]bool, g.records)
	emails := make(map[string]bool, g.records)

	users := make([]User, 0, g.records)
	for range g.records {
		users = append(users, User{
			UserID:              f.UUID(),
			Username:            unique(names, f.Username(), 50),
			Email:               uniqueEmail(emails, f.Email(), 100),
			PasswordHash:        f.PasswordHash(),
			FullName:            datagen.Truncate(f.Name(), 100),
			CreatedAt:           f.Timestamp(),
			LastLogin:           datagen.Ptr(f.Timestamp()),
			UserType:            datagen.Choose(f, userTypes),
			AccountStatus:       datagen.Choose(f, accountStatuses),
			VerificationStatus:  f.Bool(),
			ProfilePictureURL:   g.maybeText(0.5, 255, f.URL),
			TwoFactorEnabled:    f.Bool(),
			FailedLoginAttempts: f.Int(0, 5),
			LockedUntil:         g.maybeTime(0.1),
			PasswordChangedAt:   g.maybeTime(0.3),
			EmailVerifiedAt:     g.maybeTime(0.7),
			LastIPAddress:       f.IPv4(),
			Timezone:            datagen.Choose(f, userTimezones),
		})
	}

	if err := save(ctx, g, "users", users); err != nil {
		return 0, err
	}
	g.users = users
	return len(users), nil
}

func (g *Generator) generateRoles(ctx context.Context) (int, error) {
	f := g.faker
	roles := make([]Role, 0, len(roleDefs))
	for i, def := range roleDefs {
		roles = append(roles, Role{
			RoleID:      f.UUID(),
			Name:        def.name,
			Description: f.Paragraph(),
			Permissions: payload.Of(payload.Map{
				"read":   payload.Bool(def.read),
				"write":  payload.Bool(def.write),
				"delete": payload.Bool(def.delete),
				"admin":  payload.Bool(def.admin),
			}),
			IsSystemRole: i == 0,
			CreatedAt:    f.Timestamp(),
		})
	}

	if err := save(ctx, g, "roles", roles); err != nil {
		return 0, err
	}
	g.roles = roles
	return len(roles), nil
}

// generateUserRoles gives every user one role, then adds extra
// assignments for about half of them. A (user, role) pair is never
// assigned twice.
func (g *Generator) generateUserRoles(ctx context.Context) (int, error) {
	if err := need("users", len(g.users)); err != nil {
		return 0, err
	}
	if err := need("roles", len(g.roles)); err != nil {
		return 0, err
	}
	f := g.faker

	type pair struct{ user, role uuid.UUID }
	seen := make(map[pair]bool)
	var assignments []UserRole

	assign := func(u User) {
		r := datagen.Choose(f, g.roles)
		p := pair{u.UserID, r.RoleID}
		if seen[p] {
			return
		}
		seen[p] = true
		assignments = append(assignments, UserRole{
			UserID:     u.UserID,
			RoleID:     r.RoleID,
			AssignedAt: f.Timestamp(),
			AssignedBy: datagen.Choose(f, g.users).UserID,
		})
	}

	for _, u := range g.users {
		assign(u)
	}
	for range len(g.users) / 2 {
		assign(datagen.Choose(f, g.users))
	}

	if err := save(ctx, g, "user_roles", assignments); err != nil {
		return 0, err
	}
	g.userRoles = assignments
	return len(assignments), nil
}
