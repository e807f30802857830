package itinerary_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"sankofa/internal/repositories"
	"sankofa/internal/services"
)

var Module = fx.Provide(
	provideItineraryRepo, provideItineraryService)

func provideItineraryRepo(db *gorm.DB) repositories.ItineraryRepository {
	return repositories.NewItineraryRepository(db)
}

func provideItineraryService(
	itineraryRepo repositories.ItineraryRepository,
	tripRepo repositories.TripRepository,
	socialRepo repositories.SocialRepository,
	gate *services.PermissionGate,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(itineraryRepo, tripRepo, socialRepo, gate)
}
