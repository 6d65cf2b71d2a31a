package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/hotel-booking/engine/internal/models"
	"github.com/hotel-booking/engine/internal/repository"
	appErr "github.com/hotel-booking/engine/pkg/errors"
	"github.com/hotel-booking/engine/pkg/logger"
	"github.com/hotel-booking/engine/pkg/pagination"
)

type UserService interface {
	CreateUser(ctx context.Context, input *CreateUserInput) (*models.User, error)
	ListUsers(ctx context.Context, filter repository.UserFilter, p pagination.Params) (pagination.Page[models.User], error)
	GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error)
	UpdateUser(ctx context.Context, userID uuid.UUID, input *UpdateUserInput) (*models.User, error)
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}

type CreateUserInput struct {
	Name      string
	Email     string
	TaxID     string
	Phone     string
	Birthdate time.Time
}

// UpdateUserInput changes only the non-nil fields. Email is immutable.
type UpdateUserInput struct {
	Name      *string
	TaxID     *string
	Phone     *string
	Birthdate *time.Time
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

var _ UserService = (*userService)(nil)

func (s *userService) CreateUser(ctx context.Context, input *CreateUserInput) (*models.User, error) {
	logger.L().Info("create user called", zap.String("tax_id", input.TaxID))

	email := strings.ToLower(strings.TrimSpace(input.Email))
	var existing models.User
	err := s.userRepo.GetByEmail(ctx, email, &existing)
	if err == nil {
		return nil, appErr.New(appErr.CodeConflict, appErr.MsgEntityConflict).WithMeta("field", "email")
	}
	if !appErr.IsCode(err, appErr.CodeNotFound) {
		return nil, err
	}

	u := &models.User{
		Name:      input.Name,
		Email:     email,
		TaxID:     input.TaxID,
		Phone:     input.Phone,
		Birthdate: datatypes.Date(input.Birthdate),
	}
	if err := s.userRepo.Create(ctx, u); err != nil {
		return nil, err
	}

	logger.L().Info("user created", zap.String("user_id", u.ID.String()))
	return u, nil
}

func (s *userService) ListUsers(ctx context.Context, filter repository.UserFilter, p pagination.Params) (pagination.Page[models.User], error) {
	p = p.Normalize()
	logger.L().Info("list users", zap.Int("page", p.Page), zap.Int("per_page", p.PerPage))
	rows, count, err := s.userRepo.List(ctx, filter, p)
	if err != nil {
		return pagination.Page[models.User]{}, err
	}
	return pagination.NewPage(p, rows, count), nil
}

func (s *userService) GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	logger.L().Info("get user", zap.String("user_id", userID.String()))
	var u models.User
	if err := s.userRepo.GetByID(ctx, userID, &u); err != nil {
		return nil, describe(err, "user")
	}
	return &u, nil
}

func (s *userService) UpdateUser(ctx context.Context, userID uuid.UUID, input *UpdateUserInput) (*models.User, error) {
	logger.L().Info("update user", zap.String("user_id", userID.String()))
	var u models.User
	if err := s.userRepo.GetByID(ctx, userID, &u); err != nil {
		return nil, describe(err, "user")
	}

	if input.Name != nil {
		u.Name = *input.Name
	}
	if input.TaxID != nil {
		u.TaxID = *input.TaxID
	}
	if input.Phone != nil {
		u.Phone = *input.Phone
	}
	if input.Birthdate != nil {
		u.Birthdate = datatypes.Date(*input.Birthdate)
	}

	if err := s.userRepo.Update(ctx, &u); err != nil {
		return nil, err
	}

	logger.L().Info("user updated", zap.String("user_id", userID.String()))
	return &u, nil
}

// DeleteUser removes the user. Users still referenced by bookings cannot be
// deleted and yield a conflict.
func (s *userService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	logger.L().Info("delete user", zap.String("user_id", userID.String()))
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return describe(err, "user")
	}
	logger.L().Info("user deleted", zap.String("user_id", userID.String()))
	return nil
}
