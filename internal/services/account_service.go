package services

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"cougcuts/internal/models/request_models"
	"cougcuts/internal/models/response_models"
	"cougcuts/pkg/utils"
)

type AccountServiceInterface interface {
	Login(request request_models.LoginRequest, ctx context.Context) (*response_models.AdminLoginResponse, error)
}

// AdminCredentials is the single dashboard account read from config.
type AdminCredentials struct {
	Email        string
	PasswordHash string
}

type AccountService struct {
	admin  AdminCredentials
	signer *utils.JWTSigner
	logger *zap.Logger
}

func NewAccountService(admin AdminCredentials, signer *utils.JWTSigner, logger *zap.Logger) AccountServiceInterface {
	return &AccountService{
		admin:  admin,
		signer: signer,
		logger: logger,
	}
}

func (a *AccountService) Login(request request_models.LoginRequest, ctx context.Context) (*response_models.AdminLoginResponse, error) {
	startTime := time.Now()

	if a.admin.Email == "" || a.admin.PasswordHash == "" {
		a.logger.Warn("admin login attempted but no admin account is configured")
		return nil, utils.ErrInvalidCredentials
	}
	if !strings.EqualFold(strings.TrimSpace(request.Email), a.admin.Email) {
		return nil, utils.ErrInvalidCredentials
	}
	if err := utils.ComparePasswords(a.admin.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := a.signer.CreateToken(a.admin.Email, utils.RoleAdmin)
	if err != nil {
		a.logger.Error("sign admin token", zap.Error(err))
		return nil, utils.ErrInvalidCredentials
	}

	a.logger.Info("admin login", zap.Duration("took", time.Since(startTime)))

	return &response_models.AdminLoginResponse{
		Token:     token,
		ExpiresIn: int(utils.TokenLifetime.Seconds()),
	}, nil
}
