package service

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/AnNhien/companion-service/internal/dto"
	"github.com/AnNhien/companion-service/internal/model"
	"github.com/AnNhien/companion-service/internal/repository"
	"github.com/AnNhien/companion-service/pkg/utils"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	sessionTTL       = time.Hour * 24 * 30
	defaultGuestName = "Người ẩn danh"
)

type authService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newAuthService(logger *zap.Logger, repo *repository.Repository) Auth {
	return &authService{
		logger: logger,
		repo:   repo,
	}
}

func (s *authService) Register(ctx context.Context, name string, username string, password string) (*dto.AuthResponse, error) {
	username = strings.TrimSpace(username)
	name = strings.TrimSpace(name)

	existing, err := s.repo.Sheet.Users.FindByUsername(ctx, username)
	if err != nil {
		s.logger.Sugar().Errorf("failed to search user(%s): %s", username, err.Error())
		return nil, ErrInternal
	}
	if existing != nil {
		return &dto.AuthResponse{
			Success: false,
			Message: "Tên đăng nhập này đã tồn tại. Vui lòng chọn tên khác.",
		}, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Sugar().Errorf("failed to hash password for user(%s): %s", username, err.Error())
		return nil, ErrInternal
	}

	user := model.User{
		Username:     username,
		PasswordHash: string(hash),
		Name:         name,
		Role:         model.RoleUser,
		CreatedAt:    time.Now().UnixMilli(),
	}

	if err := s.repo.Sheet.Users.Create(ctx, user); err != nil {
		s.logger.Sugar().Errorf("failed to create user(%s): %s", username, err.Error())
		return &dto.AuthResponse{
			Success: false,
			Message: "Lỗi server khi tạo tài khoản.",
		}, nil
	}

	token, err := s.signSession(user)
	if err != nil {
		s.logger.Sugar().Errorf("failed to sign token for user(%s): %s", username, err.Error())
		return nil, ErrInternal
	}

	return &dto.AuthResponse{
		Success: true,
		Message: "Đăng ký thành công!",
		Name:    user.Name,
		Token:   token,
	}, nil
}

func (s *authService) Login(ctx context.Context, username string, password string) (*dto.AuthResponse, error) {
	failed := &dto.AuthResponse{
		Success: false,
		Message: "Sai tên đăng nhập hoặc mật khẩu.",
	}

	user, err := s.repo.Sheet.Users.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		s.logger.Sugar().Errorf("failed to search user(%s): %s", username, err.Error())
		return nil, ErrInternal
	}
	if user == nil {
		return failed, nil
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return failed, nil
	}

	token, err := s.signSession(*user)
	if err != nil {
		s.logger.Sugar().Errorf("failed to sign token for user(%s): %s", username, err.Error())
		return nil, ErrInternal
	}

	return &dto.AuthResponse{
		Success: true,
		Name:    user.Name,
		Token:   token,
	}, nil
}

// Guest mints a session token without touching the users sheet; the profile
// lives only as long as the token does.
func (s *authService) Guest(name string) (*dto.AuthResponse, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = defaultGuestName
	}

	token, err := utils.SignJWT(jwt.MapClaims{
		"name":    name,
		"isGuest": true,
		"role":    model.RoleUser,
	}, []byte(os.Getenv("ACCESS_SECRET")), sessionTTL)
	if err != nil {
		s.logger.Sugar().Errorf("failed to sign guest token: %s", err.Error())
		return nil, ErrInternal
	}

	return &dto.AuthResponse{
		Success: true,
		Name:    name,
		Token:   token,
	}, nil
}

func (s *authService) signSession(user model.User) (string, error) {
	return utils.SignJWT(jwt.MapClaims{
		"username": user.Username,
		"name":     user.Name,
		"role":     user.Role,
		"isGuest":  false,
	}, []byte(os.Getenv("ACCESS_SECRET")), sessionTTL)
}
