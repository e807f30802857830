package trip_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"sankofa/internal/repositories"
	"sankofa/internal/services"
	mem "sankofa/pkg/memcache"
)

var Module = fx.Provide(
	provideTripRepo, provideMembershipRepo, providePermissionGate, provideTripService)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideMembershipRepo(db *gorm.DB) repositories.MembershipRepository {
	return repositories.NewMembershipRepository(db)
}

func providePermissionGate(memberRepo repositories.MembershipRepository) *services.PermissionGate {
	return services.NewPermissionGate(memberRepo)
}

func provideTripService(
	tripRepo repositories.TripRepository,
	memberRepo repositories.MembershipRepository,
	accountRepo repositories.AccountRepository,
	socialRepo repositories.SocialRepository,
	gate *services.PermissionGate,
	tokenCache mem.ShareTokenCache,
) services.TripServiceInterface {
	return services.NewTripService(tripRepo, memberRepo, accountRepo, socialRepo, gate, tokenCache)
}
