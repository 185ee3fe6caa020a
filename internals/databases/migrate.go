package database

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	messageModel "azadi_backend/internals/features/contact/messages/model"
	volunteerModel "azadi_backend/internals/features/contact/volunteers/model"
	donationModel "azadi_backend/internals/features/donations/donations/model"
	paymentMethodModel "azadi_backend/internals/features/donations/payment_methods/model"
	registrationModel "azadi_backend/internals/features/events/event_registrations/model"
	eventModel "azadi_backend/internals/features/events/events/model"
	galleryModel "azadi_backend/internals/features/home/gallery/model"
	leaderModel "azadi_backend/internals/features/home/leaders/model"
	serviceModel "azadi_backend/internals/features/home/services/model"
	aboutModel "azadi_backend/internals/features/pages/about_page/model"
	contactPageModel "azadi_backend/internals/features/pages/contact_page/model"
	homeModel "azadi_backend/internals/features/pages/home_page/model"
	socialModel "azadi_backend/internals/features/pages/social_media/model"
	adminModel "azadi_backend/internals/features/users/admin/model"
	memberModel "azadi_backend/internals/features/users/members/model"
)

// Models lists every table the service owns.
func Models() []any {
	return []any{
		&adminModel.User{},
		&adminModel.TokenBlacklist{},
		&memberModel.Member{},

		&homeModel.HomePage{},
		&aboutModel.AboutPage{},
		&contactPageModel.ContactPage{},
		&socialModel.SocialMedia{},

		&leaderModel.Leader{},
		&serviceModel.Service{},
		&galleryModel.GalleryItem{},

		&eventModel.Event{},
		&registrationModel.EventRegistration{},

		&donationModel.Donation{},
		&paymentMethodModel.PaymentMethod{},

		&messageModel.Message{},
		&volunteerModel.Volunteer{},
	}
}

func Migrate(db *gorm.DB) error {
	models := Models()
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	log.Info().Int("tables", len(models)).Msg("✅ schema migrated")
	return nil
}
