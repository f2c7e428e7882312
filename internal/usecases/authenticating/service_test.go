package authenticating

import (
	"testing"

	"github.com/Kusalthilina2/Food-City-Supermarket-System/infrastructure/recordstore/mocks"
	"github.com/Kusalthilina2/Food-City-Supermarket-System/internal/config"
	"github.com/Kusalthilina2/Food-City-Supermarket-System/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		SecretKey: "test-secret",
		Admin: config.Admin{
			Username: "admin",
			Password: "admin",
		},
	}
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestService_LoginUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	service := NewService(mockStore, testConfig())

	storedUser := &domain.User{
		Username:     "cashier",
		PasswordHash: hashPassword(t, "s3cret"),
		Role:         domain.RoleStaff,
	}

	t.Run("valid credentials produce a verifiable token", func(t *testing.T) {
		mockStore.EXPECT().GetUserByUsername("cashier").Return(storedUser, nil)

		token, err := service.LoginUser("cashier", "s3cret")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "cashier", claims.Username)
		assert.Equal(t, domain.RoleStaff, claims.Role)
	})

	t.Run("username is normalized before lookup", func(t *testing.T) {
		mockStore.EXPECT().GetUserByUsername("cashier").Return(storedUser, nil)

		_, err := service.LoginUser("  Cashier ", "s3cret")
		assert.NoError(t, err)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockStore.EXPECT().GetUserByUsername("cashier").Return(storedUser, nil)

		_, err := service.LoginUser("cashier", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		mockStore.EXPECT().GetUserByUsername("ghost").Return(nil, nil)

		_, err := service.LoginUser("ghost", "whatever")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("missing credentials", func(t *testing.T) {
		_, err := service.LoginUser("", "")
		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})
}

func TestService_ValidateToken_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockStore(ctrl), testConfig())

	_, err := service.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestService_CreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	service := NewService(mockStore, testConfig())

	t.Run("hashes the password and defaults the role", func(t *testing.T) {
		mockStore.EXPECT().GetUserByUsername("newbie").Return(nil, nil)
		mockStore.EXPECT().AppendUser(gomock.Any()).DoAndReturn(func(user domain.User) error {
			assert.Equal(t, "newbie", user.Username)
			assert.Equal(t, domain.RoleStaff, user.Role)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")))
			return nil
		})

		user, err := service.CreateUser("newbie", "pass123", "")
		require.NoError(t, err)
		assert.Equal(t, domain.RoleStaff, user.Role)
	})

	t.Run("duplicate username", func(t *testing.T) {
		mockStore.EXPECT().GetUserByUsername("taken").Return(&domain.User{Username: "taken"}, nil)

		_, err := service.CreateUser("taken", "pass123", domain.RoleStaff)
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := service.CreateUser("someone", "pass123", "superuser")
		assert.ErrorIs(t, err, ErrInvalidRole)
	})
}

func TestService_BootstrapAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	service := NewService(mockStore, testConfig())

	t.Run("seeds the admin when no users exist", func(t *testing.T) {
		mockStore.EXPECT().ListUsers().Return(nil, nil)
		mockStore.EXPECT().GetUserByUsername("admin").Return(nil, nil)
		mockStore.EXPECT().AppendUser(gomock.Any()).DoAndReturn(func(user domain.User) error {
			assert.Equal(t, "admin", user.Username)
			assert.Equal(t, domain.RoleAdmin, user.Role)
			return nil
		})

		assert.NoError(t, service.BootstrapAdmin())
	})

	t.Run("does nothing when users already exist", func(t *testing.T) {
		mockStore.EXPECT().ListUsers().Return([]domain.User{{Username: "someone"}}, nil)

		assert.NoError(t, service.BootstrapAdmin())
	})
}
