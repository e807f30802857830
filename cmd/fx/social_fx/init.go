package social_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"sankofa/internal/repositories"
	"sankofa/internal/services"
)

var Module = fx.Provide(
	provideSocialRepo, provideSocialService)

func provideSocialRepo(db *gorm.DB) repositories.SocialRepository {
	return repositories.NewSocialRepository(db)
}

func provideSocialService(
	socialRepo repositories.SocialRepository,
	itineraryRepo repositories.ItineraryRepository,
	accountRepo repositories.AccountRepository,
	gate *services.PermissionGate,
) services.SocialServiceInterface {
	return services.NewSocialService(socialRepo, itineraryRepo, accountRepo, gate)
}
