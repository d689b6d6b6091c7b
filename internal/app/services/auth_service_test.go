package services

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uynm/backend/internal/app/models"
	"github.com/uynm/backend/internal/app/models/dto"
	"github.com/uynm/backend/internal/pkg/apperrors"
	"github.com/uynm/backend/internal/pkg/auth"
)

type fakeUserStore struct {
	users map[string]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*models.User)}
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) error {
	if _, ok := f.users[user.Email]; ok {
		return &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
	}
	user.ID = int64(len(f.users) + 1)
	user.CreatedAt = time.Now()
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if user, ok := f.users[email]; ok {
		return user, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserStore) UpdateLastLogin(_ context.Context, id int64) error { return nil }

func (f *fakeUserStore) UpdatePassword(_ context.Context, id int64, hashedPassword string) error {
	for _, user := range f.users {
		if user.ID == id {
			user.Password = hashedPassword
			return nil
		}
	}
	return apperrors.ErrUserNotFound
}

type fakeTokenStore struct {
	refresh map[string]*models.RefreshToken
	reset   map[string]*models.PasswordResetToken
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{
		refresh: make(map[string]*models.RefreshToken),
		reset:   make(map[string]*models.PasswordResetToken),
	}
}

func (f *fakeTokenStore) CreateRefreshToken(_ context.Context, token *models.RefreshToken) error {
	token.ID = int64(len(f.refresh) + 1)
	f.refresh[token.Token] = token
	return nil
}

func (f *fakeTokenStore) GetRefreshToken(_ context.Context, token string) (*models.RefreshToken, error) {
	if rt, ok := f.refresh[token]; ok {
		return rt, nil
	}
	return nil, apperrors.ErrTokenNotFound
}

func (f *fakeTokenStore) RevokeRefreshToken(_ context.Context, token string) error {
	if rt, ok := f.refresh[token]; ok {
		rt.Revoked = true
		return nil
	}
	return apperrors.ErrTokenNotFound
}

func (f *fakeTokenStore) RevokeUserRefreshTokens(_ context.Context, userID int64) error {
	for _, rt := range f.refresh {
		if rt.UserID == userID {
			rt.Revoked = true
		}
	}
	return nil
}

func (f *fakeTokenStore) CreatePasswordResetToken(_ context.Context, token *models.PasswordResetToken) error {
	token.ID = int64(len(f.reset) + 1)
	f.reset[token.Token] = token
	return nil
}

func (f *fakeTokenStore) GetPasswordResetToken(_ context.Context, token string) (*models.PasswordResetToken, error) {
	if prt, ok := f.reset[token]; ok {
		return prt, nil
	}
	return nil, apperrors.ErrTokenNotFound
}

func (f *fakeTokenStore) MarkPasswordResetTokenUsed(_ context.Context, id int64) error {
	for _, prt := range f.reset {
		if prt.ID == id {
			prt.Used = true
		}
	}
	return nil
}

type fakeEmailSender struct {
	sent []string
	err  error
}

func (f *fakeEmailSender) Send(to, subject, htmlBody string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, to)
	return "msg-1", nil
}

func newTestAuthService(users *fakeUserStore, tokens *fakeTokenStore, sender *fakeEmailSender) *AuthService {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 720 * time.Hour,
		TokenIssuer:     "test",
	})
	return NewAuthService(users, tokens, jwtService, sender, "http://localhost:5500")
}

func TestRegisterAndLogin(t *testing.T) {
	users := newFakeUserStore()
	svc := newTestAuthService(users, newFakeTokenStore(), &fakeEmailSender{})

	user, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "jane@example.org",
		Password: "hunter22",
		FullName: "Jane Admin",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.RoleType)
	assert.NotEqual(t, "hunter22", user.Password)

	result, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "jane@example.org",
		Password: "hunter22",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token.AccessToken)
	assert.NotEmpty(t, result.Token.RefreshToken)
	assert.Equal(t, "jane@example.org", result.User.Email)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestAuthService(newFakeUserStore(), newFakeTokenStore(), &fakeEmailSender{})

	req := &dto.RegisterRequest{Email: "jane@example.org", Password: "hunter22", FullName: "Jane"}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestAuthService(newFakeUserStore(), newFakeTokenStore(), &fakeEmailSender{})

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email: "jane@example.org", Password: "hunter22", FullName: "Jane",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email: "jane@example.org", Password: "wrong",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginUnknownEmailLooksLikeBadCredentials(t *testing.T) {
	svc := newTestAuthService(newFakeUserStore(), newFakeTokenStore(), &fakeEmailSender{})

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "nobody@example.org", Password: "whatever",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	tokens := newFakeTokenStore()
	svc := newTestAuthService(newFakeUserStore(), tokens, &fakeEmailSender{})

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email: "jane@example.org", Password: "hunter22", FullName: "Jane",
	})
	require.NoError(t, err)

	result, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "jane@example.org", Password: "hunter22",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), result.Token.RefreshToken))
	assert.True(t, tokens.refresh[result.Token.RefreshToken].Revoked)

	// A revoked token cannot be exchanged again.
	_, err = svc.RefreshTokens(context.Background(), result.Token.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)
}

func TestRefreshRotatesToken(t *testing.T) {
	tokens := newFakeTokenStore()
	svc := newTestAuthService(newFakeUserStore(), tokens, &fakeEmailSender{})

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email: "jane@example.org", Password: "hunter22", FullName: "Jane",
	})
	require.NoError(t, err)

	login, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "jane@example.org", Password: "hunter22",
	})
	require.NoError(t, err)

	refreshed, err := svc.RefreshTokens(context.Background(), login.Token.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, login.Token.RefreshToken, refreshed.Token.RefreshToken)
	assert.True(t, tokens.refresh[login.Token.RefreshToken].Revoked)
}

func TestPasswordResetFlow(t *testing.T) {
	users := newFakeUserStore()
	tokens := newFakeTokenStore()
	sender := &fakeEmailSender{}
	svc := newTestAuthService(users, tokens, sender)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email: "jane@example.org", Password: "hunter22", FullName: "Jane",
	})
	require.NoError(t, err)

	require.NoError(t, svc.RequestPasswordReset(context.Background(), "jane@example.org"))
	require.Len(t, sender.sent, 1)
	require.Len(t, tokens.reset, 1)

	var resetToken string
	for token := range tokens.reset {
		resetToken = token
	}

	require.NoError(t, svc.ConfirmPasswordReset(context.Background(), resetToken, "newpassword"))

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email: "jane@example.org", Password: "newpassword",
	})
	require.NoError(t, err)

	// The token is single use.
	err = svc.ConfirmPasswordReset(context.Background(), resetToken, "another")
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestPasswordResetUnknownEmailIsSilent(t *testing.T) {
	sender := &fakeEmailSender{}
	svc := newTestAuthService(newFakeUserStore(), newFakeTokenStore(), sender)

	require.NoError(t, svc.RequestPasswordReset(context.Background(), "nobody@example.org"))
	assert.Empty(t, sender.sent)
}
