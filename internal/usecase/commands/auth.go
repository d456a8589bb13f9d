package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"salon-reservas/internal/domain/user"
	reqdto "salon-reservas/internal/handler/dto/request"
	"salon-reservas/internal/infra"
	"salon-reservas/internal/pkg/errs"
	"salon-reservas/internal/pkg/jwt"
	"salon-reservas/internal/pkg/password"
	"salon-reservas/internal/usecase/queries"
)

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrDuplicateEmail       = errs.New("email already registered")
	ErrDuplicateDNI         = errs.New("dni already registered")
	ErrResetTokenInvalid    = errs.New("reset token invalid or expired")
)

type LoginResult struct {
	AccessToken string
	User        *queries.UserView
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	Update(ctx context.Context, u *user.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error
}

type ResetTokenStore interface {
	Issue(ctx context.Context, userID uuid.UUID) (string, error)
	Consume(ctx context.Context, token string) (uuid.UUID, bool, error)
}

// ResetMailer sends the password reset link. Failures are logged, not
// surfaced, so the endpoint never leaks whether an email exists.
type ResetMailer interface {
	SendPasswordReset(ctx context.Context, toEmail, name, resetURL string) error
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	Register(ctx context.Context, req reqdto.RegisterRequest) (*queries.UserView, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type authCommandsImpl struct {
	userRepo    UserRepository
	readStore   queries.UserReadStore
	jwtService  *jwt.Service
	resetTokens ResetTokenStore
	mailer      ResetMailer
	resetURL    string
	logger      *slog.Logger
}

func NewAuthCommands(
	userRepo UserRepository,
	readStore queries.UserReadStore,
	jwtService *jwt.Service,
	resetTokens ResetTokenStore,
	mailer ResetMailer,
	resetBaseURL string,
	logger *slog.Logger,
) AuthCommands {
	return &authCommandsImpl{
		userRepo:    userRepo,
		readStore:   readStore,
		jwtService:  jwtService,
		resetTokens: resetTokens,
		mailer:      mailer,
		resetURL:    resetBaseURL,
		logger:      logger,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	view, hash, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := password.ComparePassword(hash, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(view.Rol)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	token, err := a.jwtService.GenerateToken(view.ID, role, view.Email, view.Nombre)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{AccessToken: token, User: view}, nil
}

func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (*queries.UserView, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, err
	}
	dni, err := user.NewDNI(req.DNI)
	if err != nil {
		return nil, err
	}
	if _, err := user.NewPassword(req.Password); err != nil {
		return nil, err
	}

	hash, err := password.HashPassword(req.Password)
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	newUser, err := user.NewUser(req.Nombre, req.Apellido, dni, email, req.Telefono, hash, user.RoleClient)
	if err != nil {
		return nil, err
	}

	if err := a.userRepo.Create(ctx, newUser); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	view, err := a.readStore.FindByID(ctx, newUser.ID())
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (a *authCommandsImpl) ForgotPassword(ctx context.Context, email string) error {
	view, _, err := a.readStore.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Silent success so the endpoint cannot be used to probe accounts.
			return nil
		}
		return err
	}

	token, err := a.resetTokens.Issue(ctx, view.ID)
	if err != nil {
		return err
	}

	resetURL := a.resetURL + "/reset-password?token=" + token
	if err := a.mailer.SendPasswordReset(ctx, view.Email, view.Nombre, resetURL); err != nil {
		a.logger.Error("failed to send reset email", "user_id", view.ID, "error", err.Error())
	}
	return nil
}

func (a *authCommandsImpl) ResetPassword(ctx context.Context, token, newPassword string) error {
	if _, err := user.NewPassword(newPassword); err != nil {
		return err
	}

	userID, ok, err := a.resetTokens.Consume(ctx, token)
	if err != nil {
		return err
	}
	if !ok {
		return ErrResetTokenInvalid
	}

	hash, err := password.HashPassword(newPassword)
	if err != nil {
		return errs.Wrap(err, "failed to hash password")
	}

	return a.userRepo.UpdatePasswordHash(ctx, userID, hash)
}
