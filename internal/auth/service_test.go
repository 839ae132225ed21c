package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/artlease-io/artlease-backend/internal/users"
	pkgAuth "github.com/artlease-io/artlease-backend/pkg/auth"
	"github.com/artlease-io/artlease-backend/pkg/auth/session"
	"github.com/artlease-io/artlease-backend/pkg/config"
	"github.com/artlease-io/artlease-backend/pkg/db/models"
	"github.com/artlease-io/artlease-backend/pkg/enums"
	pkgerrors "github.com/artlease-io/artlease-backend/pkg/errors"
	"github.com/artlease-io/artlease-backend/pkg/security"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testJWTConfig = config.JWTConfig{
	Secret:            "test-secret",
	Issuer:            "artlease-test",
	ExpirationMinutes: 30,
}

var testPasswordConfig = config.PasswordConfig{
	ArgonMemoryKB:    8192,
	ArgonTime:        1,
	ArgonParallelism: 1,
	ArgonSaltLen:     16,
	ArgonKeyLen:      32,
}

type fakeUsers struct {
	byEmail    map[string]*models.User
	lastLogins map[uuid.UUID]time.Time
	createErr  error
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{
		byEmail:    map[string]*models.User{},
		lastLogins: map[uuid.UUID]time.Time{},
	}
}

func (f *fakeUsers) Create(_ context.Context, dto users.CreateUserDTO) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, exists := f.byEmail[dto.Email]; exists {
		return nil, errors.New(`duplicate key value violates unique constraint "idx_users_email"`)
	}
	user := dto.ToModel()
	user.ID = uuid.New()
	f.byEmail[dto.Email] = user
	return user, nil
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (f *fakeUsers) UpdateLastLogin(_ context.Context, id uuid.UUID, at time.Time) error {
	f.lastLogins[id] = at
	return nil
}

type fakeSession struct {
	generated []string
	rotateErr error
	revoked   []string
}

func (f *fakeSession) Generate(_ context.Context, accessID string) (string, error) {
	f.generated = append(f.generated, accessID)
	return "refresh-" + accessID, nil
}

func (f *fakeSession) Rotate(_ context.Context, oldAccessID, provided string) (string, string, error) {
	if f.rotateErr != nil {
		return "", "", f.rotateErr
	}
	if provided != "refresh-"+oldAccessID {
		return "", "", session.ErrInvalidRefreshToken
	}
	newID := session.NewAccessID()
	return newID, "refresh-" + newID, nil
}

func (f *fakeSession) Revoke(_ context.Context, accessID string) error {
	f.revoked = append(f.revoked, accessID)
	return nil
}

func newAuthServiceForTest(t *testing.T, repo *fakeUsers, sess *fakeSession) Service {
	t.Helper()

	svc, err := NewService(ServiceParams{
		UserRepo:       repo,
		SessionManager: sess,
		JWTConfig:      testJWTConfig,
		PasswordConfig: testPasswordConfig,
	})
	require.NoError(t, err)
	return svc
}

func seedUser(t *testing.T, repo *fakeUsers, email, password string, role enums.Role, active bool) *models.User {
	t.Helper()

	hash, err := security.HashPassword(password, testPasswordConfig)
	require.NoError(t, err)
	user := &models.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		UserName:     "Seeded",
		Role:         role,
		IsActive:     active,
	}
	repo.byEmail[email] = user
	return user
}

func TestRegisterDefaultsToCustomer(t *testing.T) {
	repo := newFakeUsers()
	svc := newAuthServiceForTest(t, repo, &fakeSession{})

	user, err := svc.Register(context.Background(), RegisterRequest{
		UserName: "New Collector",
		Email:    "  Collector@Example.COM ",
		Password: "correcthorse",
	})
	require.NoError(t, err)
	assert.Equal(t, "collector@example.com", user.Email)
	assert.Equal(t, enums.RoleCustomer, user.Role)

	stored := repo.byEmail["collector@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "correcthorse", stored.PasswordHash, "password must never persist in clear")
}

func TestRegisterProviderRoles(t *testing.T) {
	repo := newFakeUsers()
	svc := newAuthServiceForTest(t, repo, &fakeSession{})

	user, err := svc.Register(context.Background(), RegisterRequest{
		UserName: "Gallery One",
		Email:    "gallery@example.com",
		Password: "correcthorse",
		Role:     "gallery",
	})
	require.NoError(t, err)
	assert.Equal(t, enums.RoleGallery, user.Role)

	_, err = svc.Register(context.Background(), RegisterRequest{
		UserName: "Sneaky",
		Email:    "admin@example.com",
		Password: "correcthorse",
		Role:     "admin",
	})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestRegisterValidation(t *testing.T) {
	repo := newFakeUsers()
	svc := newAuthServiceForTest(t, repo, &fakeSession{})
	ctx := context.Background()

	cases := []RegisterRequest{
		{UserName: "X", Email: "", Password: "correcthorse"},
		{UserName: "", Email: "x@example.com", Password: "correcthorse"},
		{UserName: "X", Email: "x@example.com", Password: "short"},
	}
	for _, req := range cases {
		_, err := svc.Register(ctx, req)
		typed := pkgerrors.As(err)
		require.NotNil(t, typed)
		assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUsers()
	svc := newAuthServiceForTest(t, repo, &fakeSession{})
	ctx := context.Background()

	req := RegisterRequest{UserName: "First", Email: "dup@example.com", Password: "correcthorse"}
	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	_, err = svc.Register(ctx, req)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeConflict, typed.Code())
}

func TestLoginIssuesTokenPair(t *testing.T) {
	repo := newFakeUsers()
	sess := &fakeSession{}
	svc := newAuthServiceForTest(t, repo, sess)
	seeded := seedUser(t, repo, "buyer@example.com", "correcthorse", enums.RoleCustomer, true)

	resp, err := svc.Login(context.Background(), LoginRequest{Email: "Buyer@Example.com", Password: "correcthorse"})
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, resp.User.ID)

	claims, err := pkgAuth.ParseAccessToken(testJWTConfig, resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, claims.UserID)
	assert.Equal(t, enums.RoleCustomer, claims.Role)

	require.Len(t, sess.generated, 1)
	assert.Equal(t, claims.ID, sess.generated[0], "refresh session keys off the jwt jti")
	assert.Equal(t, "refresh-"+claims.ID, resp.RefreshToken)

	_, recorded := repo.lastLogins[seeded.ID]
	assert.True(t, recorded)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	repo := newFakeUsers()
	svc := newAuthServiceForTest(t, repo, &fakeSession{})
	seedUser(t, repo, "buyer@example.com", "correcthorse", enums.RoleCustomer, true)
	seedUser(t, repo, "dormant@example.com", "correcthorse", enums.RoleCustomer, false)
	ctx := context.Background()

	cases := []LoginRequest{
		{Email: "buyer@example.com", Password: "wrong"},
		{Email: "nobody@example.com", Password: "correcthorse"},
		{Email: "dormant@example.com", Password: "correcthorse"},
		{Email: "", Password: "correcthorse"},
	}
	for _, req := range cases {
		_, err := svc.Login(ctx, req)
		typed := pkgerrors.As(err)
		require.NotNil(t, typed)
		assert.Equal(t, pkgerrors.CodeUnauthorized, typed.Code())
		assert.Equal(t, invalidCredentialsMessage, typed.Message())
	}
}

func TestRefreshRotatesPair(t *testing.T) {
	repo := newFakeUsers()
	sess := &fakeSession{}
	svc := newAuthServiceForTest(t, repo, sess)
	seedUser(t, repo, "buyer@example.com", "correcthorse", enums.RoleCustomer, true)

	login, err := svc.Login(context.Background(), LoginRequest{Email: "buyer@example.com", Password: "correcthorse"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), RefreshRequest{
		AccessToken:  login.AccessToken,
		RefreshToken: login.RefreshToken,
	})
	require.NoError(t, err)
	assert.NotEqual(t, login.AccessToken, refreshed.AccessToken)
	assert.NotEqual(t, login.RefreshToken, refreshed.RefreshToken)

	oldClaims, err := pkgAuth.ParseAccessToken(testJWTConfig, login.AccessToken)
	require.NoError(t, err)
	newClaims, err := pkgAuth.ParseAccessToken(testJWTConfig, refreshed.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, oldClaims.UserID, newClaims.UserID)
	assert.NotEqual(t, oldClaims.ID, newClaims.ID)
}

func TestRefreshRejectsMismatchedToken(t *testing.T) {
	repo := newFakeUsers()
	sess := &fakeSession{}
	svc := newAuthServiceForTest(t, repo, sess)
	seedUser(t, repo, "buyer@example.com", "correcthorse", enums.RoleCustomer, true)

	login, err := svc.Login(context.Background(), LoginRequest{Email: "buyer@example.com", Password: "correcthorse"})
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), RefreshRequest{
		AccessToken:  login.AccessToken,
		RefreshToken: "stolen-token",
	})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeUnauthorized, typed.Code())
}

func TestLogoutRevokesSession(t *testing.T) {
	repo := newFakeUsers()
	sess := &fakeSession{}
	svc := newAuthServiceForTest(t, repo, sess)
	seedUser(t, repo, "buyer@example.com", "correcthorse", enums.RoleCustomer, true)

	login, err := svc.Login(context.Background(), LoginRequest{Email: "buyer@example.com", Password: "correcthorse"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), LogoutRequest{AccessToken: login.AccessToken}))

	claims, err := pkgAuth.ParseAccessToken(testJWTConfig, login.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, []string{claims.ID}, sess.revoked)
}
