package usecase

import (
	"errors"
	"testing"

	"github.com/h9rms/wanderlust-grid-bloom/internal/entity"
	"github.com/h9rms/wanderlust-grid-bloom/internal/session"
	"github.com/h9rms/wanderlust-grid-bloom/pkg/jwt"
	"github.com/h9rms/wanderlust-grid-bloom/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthUseCase(userRepo *MockUserRepository, profileRepo *MockProfileRepository, sessions *session.Broker) AuthUseCase {
	return NewAuthUseCase(userRepo, profileRepo, jwt.NewService("test-secret"), sessions, logger.New())
}

func TestRegister_CreatesUserAndProfile(t *testing.T) {
	userRepo := new(MockUserRepository)
	profileRepo := new(MockProfileRepository)
	sessions := session.NewBroker()

	events, cancel := sessions.Subscribe(1)
	defer cancel()

	userRepo.On("GetByEmail", "anna@example.com").Return(nil, errors.New("not found"))
	userRepo.On("Create", mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) { args.Get(0).(*entity.User).ID = "user-1" }).
		Return(nil)
	profileRepo.On("Create", mock.MatchedBy(func(p *entity.Profile) bool {
		return p.UserID == "user-1" && p.FullName == "Anna Berg"
	})).Return(nil)

	uc := newAuthUseCase(userRepo, profileRepo, sessions)
	user, token, err := uc.Register("  Anna@Example.com ", "geheim123", " Anna Berg ")

	require.NoError(t, err)
	assert.Equal(t, "anna@example.com", user.Email)
	assert.Empty(t, user.Password)
	assert.NotEmpty(t, token)

	evt := <-events
	assert.Equal(t, session.SignedIn, evt.Type)
	assert.Equal(t, "user-1", evt.UserID)

	userRepo.AssertExpectations(t)
	profileRepo.AssertExpectations(t)
}

func TestRegister_ShortPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	profileRepo := new(MockProfileRepository)

	uc := newAuthUseCase(userRepo, profileRepo, session.NewBroker())
	_, _, err := uc.Register("anna@example.com", "kurz", "Anna")

	assert.ErrorIs(t, err, entity.ErrValidation)
	userRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	profileRepo := new(MockProfileRepository)

	userRepo.On("GetByEmail", "anna@example.com").Return(&entity.User{ID: "user-1"}, nil)

	uc := newAuthUseCase(userRepo, profileRepo, session.NewBroker())
	_, _, err := uc.Register("anna@example.com", "geheim123", "Anna")

	assert.ErrorIs(t, err, entity.ErrValidation)
	userRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	profileRepo := new(MockProfileRepository)

	hashed, err := bcrypt.GenerateFromPassword([]byte("richtig123"), bcrypt.MinCost)
	require.NoError(t, err)
	userRepo.On("GetByEmail", "anna@example.com").
		Return(&entity.User{ID: "user-1", Password: string(hashed), IsActive: true}, nil)

	uc := newAuthUseCase(userRepo, profileRepo, session.NewBroker())
	_, _, err = uc.Login("anna@example.com", "falsch123")

	assert.ErrorIs(t, err, entity.ErrAuthRequired)
}

func TestLogin_DeactivatedAccount(t *testing.T) {
	userRepo := new(MockUserRepository)
	profileRepo := new(MockProfileRepository)

	hashed, err := bcrypt.GenerateFromPassword([]byte("geheim123"), bcrypt.MinCost)
	require.NoError(t, err)
	userRepo.On("GetByEmail", "anna@example.com").
		Return(&entity.User{ID: "user-1", Password: string(hashed), IsActive: false}, nil)

	uc := newAuthUseCase(userRepo, profileRepo, session.NewBroker())
	_, _, err = uc.Login("anna@example.com", "geheim123")

	assert.ErrorIs(t, err, entity.ErrForbidden)
}

func TestLogin_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	profileRepo := new(MockProfileRepository)

	hashed, err := bcrypt.GenerateFromPassword([]byte("geheim123"), bcrypt.MinCost)
	require.NoError(t, err)
	userRepo.On("GetByEmail", "anna@example.com").
		Return(&entity.User{ID: "user-1", Email: "anna@example.com", Password: string(hashed), Role: entity.RoleMember, IsActive: true}, nil)

	uc := newAuthUseCase(userRepo, profileRepo, session.NewBroker())
	user, token, err := uc.Login("Anna@Example.com", "geheim123")

	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
	assert.Empty(t, user.Password)

	claims, err := jwt.NewService("test-secret").ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
}

func TestMe_UserWithoutProfile(t *testing.T) {
	userRepo := new(MockUserRepository)
	profileRepo := new(MockProfileRepository)

	userRepo.On("GetByID", "user-1").Return(&entity.User{ID: "user-1", Password: "hash"}, nil)
	profileRepo.On("GetByUserID", "user-1").Return(nil, errors.New("not found"))

	uc := newAuthUseCase(userRepo, profileRepo, session.NewBroker())
	user, profile, err := uc.Me("user-1")

	require.NoError(t, err)
	assert.Empty(t, user.Password)
	assert.Nil(t, profile)
}

func TestSignOut_PublishesTransition(t *testing.T) {
	sessions := session.NewBroker()
	events, cancel := sessions.Subscribe(1)
	defer cancel()

	uc := newAuthUseCase(new(MockUserRepository), new(MockProfileRepository), sessions)
	uc.SignOut("user-1")

	evt := <-events
	assert.Equal(t, session.SignedOut, evt.Type)
	assert.Equal(t, "user-1", evt.UserID)
}
