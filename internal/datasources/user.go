package datasources

import (
	"context"

	"github.com/balancednews/news-feed/internal/domain"
)

type UserRepository interface {
	UserGetter
	UserCreator
	UserProfileUpdater
	UserPoliticalScoreSetter
	UserActivityScoreSetter
	UserDeleter
}

// UserGetter returns domain.ErrUserNotFound for unknown UIDs.
type UserGetter interface {
	GetUser(ctx context.Context, uid string) (domain.User, error)
}

// UserCreator returns domain.ErrUserExists when the UID is taken.
type UserCreator interface {
	CreateUser(ctx context.Context, user domain.User) error
}

type UserProfileUpdater interface {
	UpdateUserProfile(ctx context.Context, uid string, update domain.UserProfileUpdate) (domain.User, error)
}

// UserPoliticalScoreSetter sets the profile score, creating a placeholder user if needed.
type UserPoliticalScoreSetter interface {
	SetUserPoliticalScore(ctx context.Context, uid string, score int) error
}

type UserActivityScoreSetter interface {
	SetUserActivityScore(ctx context.Context, uid string, score int) error
}

// UserDeleter removes a user together with their scraps and API tokens.
type UserDeleter interface {
	DeleteUser(ctx context.Context, uid string) (domain.UserDeletion, error)
}
