package services

import (
	"github.com/uynm/backend/internal/app/repositories"
	"github.com/uynm/backend/internal/pkg/auth"
	"github.com/uynm/backend/internal/pkg/email"
	"github.com/uynm/backend/internal/pkg/notify"
)

// Services holds all the service instances
type Services struct {
	ContactService    *ContactService
	MemberService     *MemberService
	NewsletterService *NewsletterService
	EventService      *EventService
	AuthService       *AuthService
}

// NewServices initializes all services
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService, emailSender email.Sender, notifier notify.Notifier, frontendBaseURL string) *Services {
	return &Services{
		ContactService:    NewContactService(repos.ContactRepository, notifier),
		MemberService:     NewMemberService(repos.MemberRepository, notifier),
		NewsletterService: NewNewsletterService(repos.NewsletterRepository, notifier),
		EventService:      NewEventService(repos.EventRepository),
		AuthService:       NewAuthService(repos.UserRepository, repos.TokenRepository, jwtService, emailSender, frontendBaseURL),
	}
}
