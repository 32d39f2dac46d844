package service

import (
	"context"
	"testing"

	"github.com/AnNhien/companion-service/internal/model"
	"github.com/AnNhien/companion-service/internal/repository"
	"github.com/AnNhien/companion-service/internal/repository/sheetdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type fakeUsers struct {
	users map[string]*model.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{users: make(map[string]*model.User)}
}

func (f *fakeUsers) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return f.users[username], nil
}

func (f *fakeUsers) Create(ctx context.Context, user model.User) error {
	f.users[user.Username] = &user
	return nil
}

func newTestAuth(users *fakeUsers) Auth {
	repo := &repository.Repository{
		Sheet: &sheetdb.SheetRepository{Users: users},
	}
	return newAuthService(zap.NewNop(), repo)
}

func TestRegister_StoresHashNotPassword(t *testing.T) {
	t.Setenv("ACCESS_SECRET", "test-secret")
	users := newFakeUsers()
	auth := newTestAuth(users)

	resp, err := auth.Register(context.Background(), "An Nhiên", "an", "mật-khẩu-123")
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "Đăng ký thành công!", resp.Message)
	assert.NotEmpty(t, resp.Token)

	stored := users.users["an"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "mật-khẩu-123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("mật-khẩu-123")))
}

func TestRegister_DuplicateUsername(t *testing.T) {
	t.Setenv("ACCESS_SECRET", "test-secret")
	users := newFakeUsers()
	users.users["an"] = &model.User{Username: "an"}
	auth := newTestAuth(users)

	resp, err := auth.Register(context.Background(), "An", "an", "mật-khẩu")
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "Tên đăng nhập này đã tồn tại. Vui lòng chọn tên khác.", resp.Message)
	assert.Empty(t, resp.Token)
}

func TestLogin_RoundTrip(t *testing.T) {
	t.Setenv("ACCESS_SECRET", "test-secret")
	users := newFakeUsers()
	auth := newTestAuth(users)
	ctx := context.Background()

	_, err := auth.Register(ctx, "An Nhiên", "an", "mật-khẩu-123")
	require.NoError(t, err)

	resp, err := auth.Login(ctx, "an", "mật-khẩu-123")
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "An Nhiên", resp.Name)
	assert.NotEmpty(t, resp.Token)
}

func TestLogin_WrongPasswordAndUnknownUserLookAlike(t *testing.T) {
	t.Setenv("ACCESS_SECRET", "test-secret")
	users := newFakeUsers()
	auth := newTestAuth(users)
	ctx := context.Background()

	_, err := auth.Register(ctx, "An", "an", "đúng")
	require.NoError(t, err)

	wrongPassword, err := auth.Login(ctx, "an", "sai")
	require.NoError(t, err)
	unknownUser, err2 := auth.Login(ctx, "không-tồn-tại", "sai")
	require.NoError(t, err2)

	assert.False(t, wrongPassword.Success)
	assert.False(t, unknownUser.Success)
	assert.Equal(t, wrongPassword.Message, unknownUser.Message)
	assert.Equal(t, "Sai tên đăng nhập hoặc mật khẩu.", wrongPassword.Message)
}

func TestGuest_DefaultsName(t *testing.T) {
	t.Setenv("ACCESS_SECRET", "test-secret")
	auth := newTestAuth(newFakeUsers())

	resp, err := auth.Guest("   ")
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "Người ẩn danh", resp.Name)
	assert.NotEmpty(t, resp.Token)

	named, err := auth.Guest("Mây")
	require.NoError(t, err)
	assert.Equal(t, "Mây", named.Name)
}
