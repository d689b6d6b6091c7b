package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	ContactRepository    *ContactRepository
	MemberRepository     *MemberRepository
	NewsletterRepository *NewsletterRepository
	EventRepository      *EventRepository
	UserRepository       *UserRepository
	TokenRepository      *TokenRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		ContactRepository:    NewContactRepository(db),
		MemberRepository:     NewMemberRepository(db),
		NewsletterRepository: NewNewsletterRepository(db),
		EventRepository:      NewEventRepository(db),
		UserRepository:       NewUserRepository(db),
		TokenRepository:      NewTokenRepository(db),
	}
}
