package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/balancednews/news-feed/internal/domain"
)

var userColumns = []string{
	"uid",
	"email",
	"display_name",
	"nickname",
	"political_score",
	"activity_score",
	"created_at",
	"last_login_at",
}

func (r *Repository) GetUser(ctx context.Context, uid string) (domain.User, error) {
	sb := r.flavor.NewSelectBuilder()
	sb.Select(userColumns...)
	sb.From("users")
	sb.Where(sb.Equal("uid", uid))

	query, args := sb.Build()

	var (
		user           domain.User
		politicalScore sql.NullInt64
		activityScore  sql.NullInt64
		createdAt      nullTime
		lastLoginAt    nullTime
	)
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&user.UID,
		&user.Email,
		&user.DisplayName,
		&user.Nickname,
		&politicalScore,
		&activityScore,
		&createdAt,
		&lastLoginAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, domain.ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("fetching user: %w", err)
	}

	if politicalScore.Valid {
		v := int(politicalScore.Int64)
		user.PoliticalScore = &v
	}
	if activityScore.Valid {
		v := int(activityScore.Int64)
		user.ActivityScore = &v
	}
	user.CreatedAt = createdAt.Time
	user.LastLoginAt = lastLoginAt.ptr()

	return user, nil
}

func (r *Repository) CreateUser(ctx context.Context, user domain.User) error {
	inserted, err := r.insertUser(ctx, r.db, user)
	if err != nil {
		return err
	}
	if !inserted {
		return domain.ErrUserExists
	}
	return nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (r *Repository) insertUser(ctx context.Context, db execer, user domain.User) (bool, error) {
	createdAt := user.CreatedAt
	if createdAt.IsZero() {
		createdAt = r.now()
	}

	ib := r.flavor.NewInsertBuilder()
	ib.InsertIgnoreInto("users")
	ib.Cols(userColumns...)
	ib.Values(
		user.UID,
		user.Email,
		user.DisplayName,
		user.Nickname,
		nullInt(user.PoliticalScore),
		nullInt(user.ActivityScore),
		createdAt.UTC(),
		nullTimeArg(user.LastLoginAt),
	)

	query, args := ib.Build()
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("inserting user: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("reading inserted row count: %w", err)
	}

	return n > 0, nil
}

// UpdateUserProfile applies the set fields of update and records the visit as a login.
func (r *Repository) UpdateUserProfile(
	ctx context.Context, uid string, update domain.UserProfileUpdate,
) (domain.User, error) {
	ub := r.flavor.NewUpdateBuilder()
	ub.Update("users")

	assignments := []string{ub.Assign("last_login_at", r.now())}
	if update.DisplayName != nil {
		assignments = append(assignments, ub.Assign("display_name", *update.DisplayName))
	}
	if update.Nickname != nil {
		assignments = append(assignments, ub.Assign("nickname", *update.Nickname))
	}
	if update.PoliticalScore != nil {
		assignments = append(assignments, ub.Assign("political_score", domain.ClampScore(*update.PoliticalScore)))
	}
	ub.Set(assignments...)
	ub.Where(ub.Equal("uid", uid))

	query, args := ub.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return domain.User{}, fmt.Errorf("updating user: %w", err)
	}

	return r.GetUser(ctx, uid)
}

func (r *Repository) SetUserPoliticalScore(ctx context.Context, uid string, score int) error {
	score = domain.ClampScore(score)

	ub := r.flavor.NewUpdateBuilder()
	ub.Update("users")
	ub.Set(ub.Assign("political_score", score))
	ub.Where(ub.Equal("uid", uid))

	query, args := ub.Build()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating political score: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading updated row count: %w", err)
	}
	if n > 0 {
		return nil
	}

	// Either the user is new, or (on MySQL) the score was unchanged; the insert is ignored
	// in the latter case.
	placeholder := domain.PlaceholderUser(uid, r.now())
	placeholder.PoliticalScore = &score
	if _, err := r.insertUser(ctx, r.db, placeholder); err != nil {
		return fmt.Errorf("creating user with political score: %w", err)
	}

	return nil
}

func (r *Repository) SetUserActivityScore(ctx context.Context, uid string, score int) error {
	ub := r.flavor.NewUpdateBuilder()
	ub.Update("users")
	ub.Set(ub.Assign("activity_score", domain.ClampScore(score)))
	ub.Where(ub.Equal("uid", uid))

	query, args := ub.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("updating activity score: %w", err)
	}

	return nil
}

func (r *Repository) DeleteUser(ctx context.Context, uid string) (domain.UserDeletion, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.UserDeletion{}, fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	scraps, err := r.deleteWhere(ctx, tx, "user_scraps", "user_uid", uid)
	if err != nil {
		return domain.UserDeletion{}, err
	}

	if _, err := r.deleteWhere(ctx, tx, "api_tokens", "user_id", uid); err != nil {
		return domain.UserDeletion{}, err
	}

	users, err := r.deleteWhere(ctx, tx, "users", "uid", uid)
	if err != nil {
		return domain.UserDeletion{}, err
	}
	if users == 0 {
		return domain.UserDeletion{}, domain.ErrUserNotFound
	}

	if err := tx.Commit(); err != nil {
		return domain.UserDeletion{}, fmt.Errorf("committing transaction: %w", err)
	}

	return domain.UserDeletion{DeletedScraps: scraps, DeletedUser: true}, nil
}

func (r *Repository) deleteWhere(ctx context.Context, db execer, table, column, value string) (int64, error) {
	dlb := r.flavor.NewDeleteBuilder()
	dlb.DeleteFrom(table)
	dlb.Where(dlb.Equal(column, value))

	query, args := dlb.Build()
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("deleting from %s: %w", table, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reading deleted row count: %w", err)
	}

	return n, nil
}
