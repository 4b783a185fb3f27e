package userservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/BapiMajumder1402/depoy-blog/internal/common"
)

var (
	ErrAuthenticationFailure = fmt.Errorf("unauthorized access")
)

func NewUserService(db *sql.DB, c *common.Cache) *UserService {
	return &UserService{
		m: newUserModel(db),
		c: c,
	}
}

// RegisterUser creates a new user account.
func (s *UserService) RegisterUser(ctx context.Context, username, email, password string) (*User, error) {
	v := common.NewValidator()
	validateUsername(v, username)
	validateEmail(v, email)
	validatePassword(v, password)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	u := User{
		Username: username,
		Email:    email,
	}

	err := u.Password.set(password)
	if err != nil {
		return nil, err
	}

	err = s.m.insertUser(ctx, &u)
	if err != nil {
		return nil, err
	}

	return &u, nil
}

// LoginUser verifies the credentials and issues a fresh access token,
// revoking any tokens issued earlier.
func (s *UserService) LoginUser(ctx context.Context, username, password string) (*AuthToken, error) {
	v := common.NewValidator()
	validateUsername(v, username)
	validatePassword(v, password)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	user, err := s.m.getUserByUsername(ctx, username)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrRecordNotFound):
			return nil, ErrAuthenticationFailure
		default:
			return nil, err
		}
	}

	ok, err := user.Password.compare(password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrAuthenticationFailure
	}

	if err := s.revokeTokens(ctx, user.ID); err != nil {
		return nil, err
	}

	return s.m.createAuthToken(ctx, user.ID)
}

// revokeTokens deletes the user's access tokens and drops any cached
// lookups, so a revoked bearer stops authenticating immediately.
func (s *UserService) revokeTokens(ctx context.Context, userID int) error {
	if err := s.m.deleteAuthTokens(ctx, userID); err != nil {
		return err
	}

	userKey := common.CacheKeyAccessTokenByUser(userID)
	if key, ok := s.c.Get(userKey); ok {
		s.c.Delete(key.(string))
		s.c.Delete(userKey)
	}

	return nil
}

// GetUserByAccessToken resolves a bearer credential to the acting user.
// Lookups are memoized until the cache entry expires.
func (s *UserService) GetUserByAccessToken(ctx context.Context, token string) (*User, error) {
	v := common.NewValidator()
	ValidateToken(v, token)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	hash := hashToken(token)

	key := common.CacheKeyUserByAccessToken(hash)
	if cached, ok := s.c.Get(key); ok {
		return cached.(*User), nil
	}

	user, err := s.m.getUserByToken(ctx, hash)
	if err != nil {
		return nil, err
	}

	s.c.Set(key, user)
	s.c.Set(common.CacheKeyAccessTokenByUser(user.ID), key)

	return user, nil
}

// LogoutUser revokes all of the user's access tokens.
func (s *UserService) LogoutUser(ctx context.Context, userID int) error {
	v := common.NewValidator()
	validateInt(v, userID, "user_id")
	if !v.Valid() {
		return v.ValidationError()
	}

	return s.revokeTokens(ctx, userID)
}

func (u *User) IsAnonymous() bool {
	return u == &AnonymousUser
}
