package services

import (
	"context"

	"github.com/google/uuid"
	"sankofa/internal/models/db_models"
	"sankofa/internal/repositories"
	"sankofa/pkg/utils"
)

// PermissionGate derives a caller's capability on a trip from the
// membership ledger. Only accepted memberships count: an invited row
// grants nothing until the invite is accepted.
type PermissionGate struct {
	members repositories.MembershipRepository
}

func NewPermissionGate(members repositories.MembershipRepository) *PermissionGate {
	return &PermissionGate{members: members}
}

// RequireMember resolves view capability: any accepted role.
func (g *PermissionGate) RequireMember(ctx context.Context, tripID, accountID uuid.UUID) (*db_models.TripMember, error) {
	member, err := g.members.GetAccepted(ctx, tripID, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if member == nil {
		return nil, utils.ErrNotTripMember
	}
	return member, nil
}

// RequireEditor resolves edit capability: accepted owner or editor.
// Viewers (and non-members) are rejected alike.
func (g *PermissionGate) RequireEditor(ctx context.Context, tripID, accountID uuid.UUID) (*db_models.TripMember, error) {
	member, err := g.members.GetAccepted(ctx, tripID, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if member == nil || !member.CanEdit() {
		return nil, utils.ErrNoEditPermission
	}
	return member, nil
}
