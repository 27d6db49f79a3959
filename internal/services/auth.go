package services

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/sbilibin2017/teaflask/internal/logger"
	"github.com/sbilibin2017/teaflask/internal/models"
	"github.com/sbilibin2017/teaflask/internal/tokens"
	"github.com/sbilibin2017/teaflask/internal/validation"
	"golang.org/x/crypto/bcrypt"
)

// Messages shown for uniqueness violations.
const (
	msgEmailTaken    = "Email already registered."
	msgUsernameTaken = "Username already in use."
)

// BrewerStore persists brewers.
type BrewerStore interface {
	GetByID(ctx context.Context, id int64) (*models.Brewer, error)
	GetByUsername(ctx context.Context, username string) (*models.Brewer, error)
	GetByEmail(ctx context.Context, email string) (*models.Brewer, error)
	GetByUsernameOrEmail(ctx context.Context, identifier string) (*models.Brewer, error)
	Create(ctx context.Context, b *models.Brewer) error
	Update(ctx context.Context, b *models.Brewer) error
	TouchLastSeen(ctx context.Context, id int64, at time.Time) error
	Count(ctx context.Context) (int, error)
	List(ctx context.Context, limit, offset int) ([]models.Brewer, error)
	CountByRole(ctx context.Context, roleID int64) (int, error)
	ListByRole(ctx context.Context, roleID int64, limit, offset int) ([]models.Brewer, error)
}

// TokenIssuer signs and verifies account tokens.
type TokenIssuer interface {
	Generate(ctx context.Context, purpose tokens.Purpose, brewerID int64, newEmail string) (string, error)
	Verify(ctx context.Context, token string, purpose tokens.Purpose, brewerID int64) (*tokens.Claims, bool)
}

// PrincipalCache remembers verified Basic credentials.
type PrincipalCache interface {
	Get(ctx context.Context, digest string) (*models.CachedPrincipal, error)
	Set(ctx context.Context, digest string, p models.CachedPrincipal) error
}

// AuthService handles registration, login and account maintenance.
type AuthService struct {
	brewers   BrewerStore
	roles     RoleStore
	tokens    TokenIssuer
	cache     PrincipalCache
	secretKey []byte
	validator *validation.Validator
	now       func() time.Time
}

// NewAuthService creates a new AuthService instance. cache may be nil.
func NewAuthService(brewers BrewerStore, roles RoleStore, tokens TokenIssuer, cache PrincipalCache, secretKey string) *AuthService {
	return &AuthService{
		brewers:   brewers,
		roles:     roles,
		tokens:    tokens,
		cache:     cache,
		secretKey: []byte(secretKey),
		validator: validation.New(),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return "", err
	}
	return string(hashed), nil
}

func verifyPassword(b *models.Brewer, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(b.PasswordHash), []byte(password)) == nil
}

// checkUnique reports email and username collisions with brewers other
// than exceptID.
func checkUnique(ctx context.Context, brewers BrewerStore, email, username string, exceptID int64) (validation.Errors, error) {
	fields := validation.Errors{}

	existing, err := brewers.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check email", "email", email, "err", err)
		return nil, err
	}
	if existing != nil && existing.ID != exceptID {
		fields.Add("email", msgEmailTaken)
	}

	existing, err = brewers.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check username", "username", username, "err", err)
		return nil, err
	}
	if existing != nil && existing.ID != exceptID {
		fields.Add("username", msgUsernameTaken)
	}

	return fields, nil
}

// newBrewer builds an unsaved brewer holding roleID.
func newBrewer(email, username, password string, roleID int64, confirmed bool) (*models.Brewer, error) {
	hashed, err := hashPassword(password)
	if err != nil {
		return nil, err
	}
	return &models.Brewer{
		Email:        email,
		Username:     username,
		PasswordHash: hashed,
		RoleID:       roleID,
		Confirmed:    confirmed,
		AvatarHash:   models.AvatarHash(email),
	}, nil
}

// Register creates an unconfirmed brewer with the default role.
func (svc *AuthService) Register(ctx context.Context, in models.RegisterInput) (*models.Brewer, error) {
	in.Email = strings.TrimSpace(in.Email)
	in.Username = strings.TrimSpace(in.Username)

	fields := svc.validator.Struct(in)
	if !fields.Empty() {
		return nil, invalid(fields)
	}

	taken, err := checkUnique(ctx, svc.brewers, in.Email, in.Username, 0)
	if err != nil {
		return nil, err
	}
	if !taken.Empty() {
		logger.Log.Errorw("user already exists", "username", in.Username, "email", in.Email)
		return nil, invalid(taken)
	}

	role, err := svc.roles.GetDefault(ctx)
	if err != nil {
		logger.Log.Errorw("failed to get default role", "err", err)
		return nil, err
	}
	if role == nil {
		logger.Log.Errorw("no default role, seed the roles first")
		return nil, ErrNotFound
	}

	b, err := newBrewer(in.Email, in.Username, in.Password, role.ID, false)
	if err != nil {
		return nil, err
	}
	b.MemberSince = svc.now()
	if err := svc.brewers.Create(ctx, b); err != nil {
		logger.Log.Errorw("failed to save brewer", "err", err)
		return nil, err
	}
	b.RoleName, b.Permissions = role.Name, role.Permissions

	return b, nil
}

// Authenticate resolves a username or email and checks the password.
func (svc *AuthService) Authenticate(ctx context.Context, identifier, password string) (*models.Brewer, error) {
	b, err := svc.brewers.GetByUsernameOrEmail(ctx, identifier)
	if err != nil {
		logger.Log.Errorw("failed to get brewer", "err", err)
		return nil, err
	}
	if b == nil {
		logger.Log.Errorw("brewer does not exist", "identifier", identifier)
		return nil, ErrUserDoesNotExist
	}

	if !verifyPassword(b, password) {
		logger.Log.Errorw("invalid credentials", "identifier", identifier)
		return nil, ErrInvalidCredentials
	}

	return b, nil
}

// credentialDigest keys the principal cache without storing the password.
func (svc *AuthService) credentialDigest(identifier, password string) string {
	mac := hmac.New(sha256.New, svc.secretKey)
	mac.Write([]byte(identifier))
	mac.Write([]byte{0})
	mac.Write([]byte(password))
	return hex.EncodeToString(mac.Sum(nil))
}

// passwordFingerprint ties a cache entry to the password hash it was
// verified against.
func (svc *AuthService) passwordFingerprint(b *models.Brewer) string {
	mac := hmac.New(sha256.New, svc.secretKey)
	mac.Write([]byte(b.PasswordHash))
	return hex.EncodeToString(mac.Sum(nil))[:32]
}

// AuthenticateBasic is Authenticate with a cache of verified credentials,
// so the password is rehashed at most once per cache window. An entry made
// before the password changed is ignored.
func (svc *AuthService) AuthenticateBasic(ctx context.Context, identifier, password string) (*models.Brewer, error) {
	if svc.cache == nil {
		return svc.Authenticate(ctx, identifier, password)
	}

	digest := svc.credentialDigest(identifier, password)
	cached, err := svc.cache.Get(ctx, digest)
	if err == nil && cached != nil {
		b, err := svc.brewers.GetByID(ctx, cached.BrewerID)
		if err != nil {
			logger.Log.Errorw("failed to get cached brewer", "brewer_id", cached.BrewerID, "err", err)
			return nil, err
		}
		if b != nil && hmac.Equal([]byte(cached.Fingerprint), []byte(svc.passwordFingerprint(b))) {
			return b, nil
		}
		logger.Log.Infow("stale cached principal", "brewer_id", cached.BrewerID)
	}

	b, err := svc.Authenticate(ctx, identifier, password)
	if err != nil {
		return nil, err
	}

	entry := models.CachedPrincipal{BrewerID: b.ID, Fingerprint: svc.passwordFingerprint(b)}
	if err := svc.cache.Set(ctx, digest, entry); err != nil {
		logger.Log.Warnw("failed to cache principal", "brewer_id", b.ID, "err", err)
	}

	return b, nil
}

// Login checks the login form. Unknown email and wrong password are not
// told apart.
func (svc *AuthService) Login(ctx context.Context, in models.LoginInput) (*models.Brewer, error) {
	in.Email = strings.TrimSpace(in.Email)
	if fields := svc.validator.Struct(in); !fields.Empty() {
		return nil, invalid(fields)
	}

	b, err := svc.brewers.GetByEmail(ctx, in.Email)
	if err != nil {
		logger.Log.Errorw("failed to get brewer", "err", err)
		return nil, err
	}
	if b == nil || !verifyPassword(b, in.Password) {
		logger.Log.Errorw("invalid credentials", "email", in.Email)
		return nil, ErrInvalidCredentials
	}

	return b, nil
}

// ChangePassword replaces the password after checking the old one.
func (svc *AuthService) ChangePassword(ctx context.Context, b *models.Brewer, in models.ChangePasswordInput) error {
	if fields := svc.validator.Struct(in); !fields.Empty() {
		return invalid(fields)
	}
	if !verifyPassword(b, in.OldPassword) {
		logger.Log.Errorw("invalid old password", "brewer_id", b.ID)
		return ErrInvalidCredentials
	}
	return svc.setPassword(ctx, b, in.Password)
}

func (svc *AuthService) setPassword(ctx context.Context, b *models.Brewer, password string) error {
	hashed, err := hashPassword(password)
	if err != nil {
		return err
	}
	b.PasswordHash = hashed
	if err := svc.brewers.Update(ctx, b); err != nil {
		logger.Log.Errorw("failed to update password", "brewer_id", b.ID, "err", err)
		return err
	}
	return nil
}

// Confirm marks the brewer confirmed when token is a valid confirmation
// token for them. Confirming twice is a no-op.
func (svc *AuthService) Confirm(ctx context.Context, b *models.Brewer, token string) error {
	if b.Confirmed {
		return nil
	}
	if _, ok := svc.tokens.Verify(ctx, token, tokens.PurposeConfirm, b.ID); !ok {
		logger.Log.Errorw("invalid confirmation token", "brewer_id", b.ID)
		return ErrInvalidToken
	}
	b.Confirmed = true
	if err := svc.brewers.Update(ctx, b); err != nil {
		logger.Log.Errorw("failed to confirm brewer", "brewer_id", b.ID, "err", err)
		return err
	}
	return nil
}

// RequestPasswordReset returns the brewer owning the email, or nil when
// there is none.
func (svc *AuthService) RequestPasswordReset(ctx context.Context, in models.ResetRequestInput) (*models.Brewer, error) {
	in.Email = strings.TrimSpace(in.Email)
	if fields := svc.validator.Struct(in); !fields.Empty() {
		return nil, invalid(fields)
	}
	b, err := svc.brewers.GetByEmail(ctx, in.Email)
	if err != nil {
		logger.Log.Errorw("failed to get brewer", "err", err)
		return nil, err
	}
	return b, nil
}

// ResetPassword sets a new password with a reset token.
func (svc *AuthService) ResetPassword(ctx context.Context, token string, in models.ResetInput) error {
	in.Email = strings.TrimSpace(in.Email)
	if fields := svc.validator.Struct(in); !fields.Empty() {
		return invalid(fields)
	}

	b, err := svc.brewers.GetByEmail(ctx, in.Email)
	if err != nil {
		logger.Log.Errorw("failed to get brewer", "err", err)
		return err
	}
	if b == nil {
		logger.Log.Errorw("brewer does not exist", "email", in.Email)
		return ErrUserDoesNotExist
	}

	if _, ok := svc.tokens.Verify(ctx, token, tokens.PurposeReset, b.ID); !ok {
		logger.Log.Errorw("invalid reset token", "brewer_id", b.ID)
		return ErrInvalidToken
	}

	return svc.setPassword(ctx, b, in.Password)
}

// RequestEmailChange checks the new address and the password. It returns
// the new address for the confirmation mail.
func (svc *AuthService) RequestEmailChange(ctx context.Context, b *models.Brewer, in models.ChangeEmailInput) (string, error) {
	in.Email = strings.TrimSpace(in.Email)
	if fields := svc.validator.Struct(in); !fields.Empty() {
		return "", invalid(fields)
	}

	existing, err := svc.brewers.GetByEmail(ctx, in.Email)
	if err != nil {
		logger.Log.Errorw("failed to check email", "email", in.Email, "err", err)
		return "", err
	}
	if existing != nil {
		return "", fieldError("email", msgEmailTaken)
	}

	if !verifyPassword(b, in.Password) {
		logger.Log.Errorw("invalid password", "brewer_id", b.ID)
		return "", ErrInvalidCredentials
	}

	return in.Email, nil
}

// ChangeEmail applies a verified email change token. The token fails when
// its address has since been claimed.
func (svc *AuthService) ChangeEmail(ctx context.Context, b *models.Brewer, token string) error {
	claims, ok := svc.tokens.Verify(ctx, token, tokens.PurposeChangeEmail, b.ID)
	if !ok {
		logger.Log.Errorw("invalid email change token", "brewer_id", b.ID)
		return ErrInvalidToken
	}

	existing, err := svc.brewers.GetByEmail(ctx, claims.NewEmail)
	if err != nil {
		logger.Log.Errorw("failed to check email", "email", claims.NewEmail, "err", err)
		return err
	}
	if existing != nil {
		logger.Log.Errorw("email already claimed", "email", claims.NewEmail)
		return ErrInvalidToken
	}

	b.Email = claims.NewEmail
	b.AvatarHash = models.AvatarHash(b.Email)
	if err := svc.brewers.Update(ctx, b); err != nil {
		logger.Log.Errorw("failed to change email", "brewer_id", b.ID, "err", err)
		return err
	}
	return nil
}

// Ping records that the brewer was seen now.
func (svc *AuthService) Ping(ctx context.Context, b *models.Brewer) error {
	now := svc.now()
	if err := svc.brewers.TouchLastSeen(ctx, b.ID, now); err != nil {
		logger.Log.Errorw("failed to update last seen", "brewer_id", b.ID, "err", err)
		return err
	}
	b.LastSeen = now
	return nil
}

// Brewer loads the brewer of a session. A missing brewer is ErrNotFound.
func (svc *AuthService) Brewer(ctx context.Context, id int64) (*models.Brewer, error) {
	b, err := svc.brewers.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get brewer", "brewer_id", id, "err", err)
		return nil, err
	}
	if b == nil {
		return nil, ErrNotFound
	}
	return b, nil
}
