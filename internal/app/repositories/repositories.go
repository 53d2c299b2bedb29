// Package repositories contains the data access layer backed by Postgres.
package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories bundles every repository for dependency wiring.
type Repositories struct {
	UserRepository        *UserRepository
	TokenRepository       *TokenRepository
	CondominiumRepository *CondominiumRepository
	MembershipRepository  *MembershipRepository
	ReservationRepository *ReservationRepository
	NoticeRepository      *NoticeRepository
	AssemblyRepository    *AssemblyRepository
	EventRepository       *EventRepository
	GalleryRepository     *GalleryRepository
}

// NewRepositories creates all repositories sharing one connection pool.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(db),
		TokenRepository:       NewTokenRepository(db),
		CondominiumRepository: NewCondominiumRepository(db),
		MembershipRepository:  NewMembershipRepository(db),
		ReservationRepository: NewReservationRepository(db),
		NoticeRepository:      NewNoticeRepository(db),
		AssemblyRepository:    NewAssemblyRepository(db),
		EventRepository:       NewEventRepository(db),
		GalleryRepository:     NewGalleryRepository(db),
	}
}
