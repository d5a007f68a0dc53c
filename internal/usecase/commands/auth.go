package commands

import (
	"context"

	"enrollhub/internal/domain/staff"
	"enrollhub/internal/infra"
	"enrollhub/internal/pkg/errs"
	"enrollhub/internal/pkg/jwt"
	"enrollhub/internal/pkg/password"
)

type StaffRepository interface {
	FindByEmail(ctx context.Context, email string) (*staff.Staff, string, error)
}

type LoginResult struct {
	Token string
	Email string
	Role  string
}

type AuthCommands interface {
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
}

type authUseCaseImpl struct {
	staffRepo  StaffRepository
	jwtService *jwt.Service
}

func NewAuthCommands(staffRepo StaffRepository, jwtService *jwt.Service) AuthCommands {
	return &authUseCaseImpl{
		staffRepo:  staffRepo,
		jwtService: jwtService,
	}
}

func (u *authUseCaseImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	member, passwordHash, err := u.staffRepo.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Same rejection as a bad password: do not reveal which accounts exist.
			return nil, errs.Mark(err, errs.ErrInvalidCredentials)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if !member.IsActive() {
		return nil, errs.ErrInvalidCredentials
	}

	if err := password.ComparePassword(passwordHash, plainPassword); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCredentials)
	}

	token, err := u.jwtService.GenerateToken(member.ID(), member.Role())
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate token")
	}

	return &LoginResult{
		Token: token,
		Email: member.Email(),
		Role:  member.Role().String(),
	}, nil
}
