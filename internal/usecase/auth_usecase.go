package usecase

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"bazroba/internal/domain/entity"
	"bazroba/internal/domain/repository"
	"bazroba/internal/infrastructure/oauth"
	"bazroba/internal/infrastructure/sms"
	"bazroba/internal/infrastructure/token"
	"bazroba/pkg/errors"
	"bazroba/pkg/logger"
)

const bcryptCost = 10

type AuthUseCase struct {
	userRepo  repository.UserRepository
	tokens    *token.Manager
	verifier  *sms.Verifier
	providers map[string]oauth.Provider
}

func NewAuthUseCase(
	userRepo repository.UserRepository,
	tokens *token.Manager,
	verifier *sms.Verifier,
	providers ...oauth.Provider,
) *AuthUseCase {
	byName := make(map[string]oauth.Provider, len(providers))
	for _, p := range providers {
		byName[p.Name()] = p
	}
	return &AuthUseCase{
		userRepo:  userRepo,
		tokens:    tokens,
		verifier:  verifier,
		providers: byName,
	}
}

type RegisterInput struct {
	Email     string
	Phone     string
	Password  string
	FirstName string
	LastName  string
	Role      string
}

type AuthResult struct {
	User   *entity.User `json:"user"`
	Tokens *token.Pair  `json:"tokens"`
}

// Register creates an account and immediately kicks off phone verification
// when a phone number was supplied. The account is usable before the phone
// is verified.
func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	if input.Email == "" && input.Phone == "" {
		return nil, errors.BadRequest("Email or phone is required", nil)
	}

	if input.Email != "" {
		existing, err := uc.userRepo.FindByEmail(ctx, input.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, errors.Conflict("Email already registered", nil)
		}
	}
	if input.Phone != "" {
		existing, err := uc.userRepo.FindByPhone(ctx, input.Phone)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, errors.Conflict("Phone already registered", nil)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, errors.Internal("Failed to hash password", err)
	}

	role := input.Role
	if role == "" {
		role = entity.RoleBuyer
	}
	if role != entity.RoleBuyer && role != entity.RoleSeller {
		return nil, errors.BadRequest("Invalid role", nil)
	}

	user := &entity.User{
		Email:        input.Email,
		Phone:        input.Phone,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Role:         role,
		PasswordHash: string(hash),
		IsActive:     true,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	if user.Phone != "" {
		uc.verifier.SendCode(ctx, user.Phone)
	}

	return uc.issueTokens(ctx, user)
}

// VerifySms confirms a pending phone verification code and flips the phone
// verified flag on success.
func (uc *AuthUseCase) VerifySms(ctx context.Context, phone, code string) error {
	user, err := uc.userRepo.FindByPhone(ctx, phone)
	if err != nil {
		return err
	}
	if user == nil {
		return errors.NotFound("User", nil)
	}

	if !uc.verifier.Verify(phone, code) {
		return errors.BadRequest("Invalid or expired verification code", nil)
	}

	return uc.userRepo.Update(ctx, user.ID, map[string]interface{}{"isPhoneVerified": true})
}

// ResendSms issues a fresh verification code to a registered phone number.
func (uc *AuthUseCase) ResendSms(ctx context.Context, phone string) error {
	user, err := uc.userRepo.FindByPhone(ctx, phone)
	if err != nil {
		return err
	}
	if user == nil {
		return errors.NotFound("User", nil)
	}
	uc.verifier.SendCode(ctx, phone)
	return nil
}

// Login authenticates by email or phone. Both failure modes return the same
// message so the endpoint cannot be used to probe which accounts exist.
func (uc *AuthUseCase) Login(ctx context.Context, identifier, password string) (*AuthResult, error) {
	user, err := uc.userRepo.FindByEmail(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if user == nil {
		user, err = uc.userRepo.FindByPhone(ctx, identifier)
		if err != nil {
			return nil, err
		}
	}
	if user == nil || user.PasswordHash == "" {
		return nil, errors.Unauthorized("Invalid credentials", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errors.Unauthorized("Invalid credentials", nil)
	}
	if !user.IsActive {
		return nil, errors.Unauthorized("Account is deactivated", nil)
	}

	now := time.Now()
	if err := uc.userRepo.Update(ctx, user.ID, map[string]interface{}{"lastLoginAt": now}); err != nil {
		logger.Warn("Failed to record last login for user %s: %v", user.ID, err)
	}
	user.LastLoginAt = &now

	return uc.issueTokens(ctx, user)
}

// Refresh trades a valid refresh token for a new pair. The presented token
// must match the one on file: rotation invalidates every older token.
func (uc *AuthUseCase) Refresh(ctx context.Context, refreshToken string) (*AuthResult, error) {
	claims, err := uc.tokens.Parse(refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetByID(ctx, claims.Subject)
	if err != nil {
		return nil, errors.Unauthorized("Invalid refresh token", err)
	}
	if user.RefreshToken != refreshToken {
		return nil, errors.Unauthorized("Refresh token has been revoked", nil)
	}
	if !user.IsActive {
		return nil, errors.Unauthorized("Account is deactivated", nil)
	}

	return uc.issueTokens(ctx, user)
}

// OAuthLogin exchanges a provider access token for a session, creating the
// account on first login and linking the provider identity to an existing
// account matched by email.
func (uc *AuthUseCase) OAuthLogin(ctx context.Context, providerName, accessToken string) (*AuthResult, error) {
	provider, ok := uc.providers[providerName]
	if !ok {
		return nil, errors.BadRequest("Unsupported provider", nil)
	}

	profile, err := provider.Exchange(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	user, err := uc.userRepo.FindByProviderID(ctx, providerName, profile.ID)
	if err != nil {
		return nil, err
	}

	if user == nil && profile.Email != "" {
		user, err = uc.userRepo.FindByEmail(ctx, profile.Email)
		if err != nil {
			return nil, err
		}
		if user != nil {
			if err := uc.userRepo.Update(ctx, user.ID, map[string]interface{}{
				providerIDField(providerName): profile.ID,
			}); err != nil {
				return nil, err
			}
		}
	}

	if user == nil {
		user = &entity.User{
			Email:           profile.Email,
			FirstName:       profile.FirstName,
			LastName:        profile.LastName,
			Avatar:          profile.Picture,
			Role:            entity.RoleBuyer,
			IsEmailVerified: profile.Email != "",
			IsActive:        true,
		}
		switch providerName {
		case "google":
			user.GoogleID = profile.ID
		case "facebook":
			user.FacebookID = profile.ID
		}
		if err := uc.userRepo.Create(ctx, user); err != nil {
			return nil, err
		}
	}

	if !user.IsActive {
		return nil, errors.Unauthorized("Account is deactivated", nil)
	}

	return uc.issueTokens(ctx, user)
}

// ForgotPassword stores a reset token against the account and returns it for
// delivery. A lookup miss is reported as success so the endpoint does not
// reveal which emails are registered.
func (uc *AuthUseCase) ForgotPassword(ctx context.Context, email string) (string, error) {
	user, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", nil
	}

	resetToken, err := uc.tokens.GenerateResetToken(user.ID)
	if err != nil {
		return "", errors.Internal("Failed to generate reset token", err)
	}

	expires := time.Now().Add(uc.tokens.ResetTTL())
	if err := uc.userRepo.Update(ctx, user.ID, map[string]interface{}{
		"passwordResetToken":   resetToken,
		"passwordResetExpires": expires,
	}); err != nil {
		return "", err
	}

	return resetToken, nil
}

// ResetPassword redeems a reset token. The token must carry the reset
// purpose, match the one on file, and the stored expiry must not have
// passed. Redemption is single-use: both reset fields are cleared.
func (uc *AuthUseCase) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	claims, err := uc.tokens.Parse(resetToken)
	if err != nil {
		return err
	}
	if claims.Purpose != token.PurposePasswordReset {
		return errors.Unauthorized("Invalid reset token", nil)
	}

	user, err := uc.userRepo.GetByID(ctx, claims.Subject)
	if err != nil {
		return errors.Unauthorized("Invalid reset token", err)
	}
	if user.PasswordResetToken != resetToken {
		return errors.Unauthorized("Invalid reset token", nil)
	}
	if user.PasswordResetExpires == nil || time.Now().After(*user.PasswordResetExpires) {
		return errors.Unauthorized("Reset token has expired", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return errors.Internal("Failed to hash password", err)
	}

	return uc.userRepo.Update(ctx, user.ID, map[string]interface{}{
		"password":             string(hash),
		"passwordResetToken":   nil,
		"passwordResetExpires": nil,
	})
}

// ChangePassword rotates the password for an authenticated user after
// checking the current one.
func (uc *AuthUseCase) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if user.PasswordHash == "" {
		return errors.BadRequest("Account has no password set", nil)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return errors.Unauthorized("Current password is incorrect", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return errors.Internal("Failed to hash password", err)
	}

	return uc.userRepo.Update(ctx, userID, map[string]interface{}{"password": string(hash)})
}

// issueTokens signs a pair and persists the refresh token. The persist is
// best-effort: a failed write means Refresh later rejects the token, which
// only forces a re-login.
func (uc *AuthUseCase) issueTokens(ctx context.Context, user *entity.User) (*AuthResult, error) {
	pair, err := uc.tokens.GeneratePair(user)
	if err != nil {
		return nil, errors.Internal("Failed to issue tokens", err)
	}

	if err := uc.userRepo.Update(ctx, user.ID, map[string]interface{}{"refreshToken": pair.RefreshToken}); err != nil {
		logger.Warn("Failed to persist refresh token for user %s: %v", user.ID, err)
	}
	user.RefreshToken = pair.RefreshToken

	return &AuthResult{User: user, Tokens: pair}, nil
}

func providerIDField(provider string) string {
	if provider == "facebook" {
		return "facebookId"
	}
	return "googleId"
}
