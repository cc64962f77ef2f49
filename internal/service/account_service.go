package service

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/billing-admin/internal/auth"
	"github.com/spec-kit/billing-admin/internal/domain"
	"github.com/spec-kit/billing-admin/internal/repository"
	apperrors "github.com/spec-kit/billing-admin/pkg/util"
)

// AccountService manages end-user and staff accounts shown in the console.
type AccountService struct {
	users      repository.UserRepository
	staff      repository.StaffRepository
	bcryptCost int
}

// NewAccountService builds the service.
func NewAccountService(users repository.UserRepository, staff repository.StaffRepository, bcryptCost int) *AccountService {
	return &AccountService{users: users, staff: staff, bcryptCost: bcryptCost}
}

// ListUsers returns every end-user account; filtering and paging happen in
// the caller's collection view.
func (s *AccountService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return users, nil
}

// GetUser fetches one account.
func (s *AccountService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return user, nil
}

// CreateUser registers a new end-user account.
func (s *AccountService) CreateUser(ctx context.Context, fullName, email, phone string) (*domain.User, error) {
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewConflict("email already registered", map[string]any{"email": email})
	} else if err != pgx.ErrNoRows {
		return nil, apperrors.MapError(err)
	}

	user := &domain.User{
		FullName: fullName,
		Email:    email,
		Phone:    phone,
		Status:   domain.UserStatusActive,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, apperrors.MapError(err)
	}
	return user, nil
}

// UpdateUser applies changes to an existing account.
func (s *AccountService) UpdateUser(ctx context.Context, user *domain.User) error {
	if err := s.users.Update(ctx, user); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

// DeleteUser removes an account.
func (s *AccountService) DeleteUser(ctx context.Context, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

// ListStaff returns every operator account.
func (s *AccountService) ListStaff(ctx context.Context) ([]domain.StaffMember, error) {
	staff, err := s.staff.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return staff, nil
}

// GetStaff fetches one operator.
func (s *AccountService) GetStaff(ctx context.Context, id string) (*domain.StaffMember, error) {
	staff, err := s.staff.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return staff, nil
}

// CreateStaff registers an operator with a hashed password.
func (s *AccountService) CreateStaff(ctx context.Context, fullName, email, password string, role domain.StaffRole, shopID *string) (*domain.StaffMember, error) {
	if _, err := s.staff.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewConflict("email already registered", map[string]any{"email": email})
	} else if err != pgx.ErrNoRows {
		return nil, apperrors.MapError(err)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	staff := &domain.StaffMember{
		FullName:     fullName,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		ShopID:       shopID,
		Active:       true,
	}
	if err := s.staff.Create(ctx, staff); err != nil {
		return nil, apperrors.MapError(err)
	}
	return staff, nil
}

// UpdateStaff applies changes, re-hashing the password when one is given.
func (s *AccountService) UpdateStaff(ctx context.Context, staff *domain.StaffMember, newPassword string) error {
	if newPassword != "" {
		hash, err := auth.HashPassword(newPassword, s.bcryptCost)
		if err != nil {
			return err
		}
		staff.PasswordHash = hash
	}
	if err := s.staff.Update(ctx, staff); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

// DeleteStaff removes an operator account.
func (s *AccountService) DeleteStaff(ctx context.Context, id string) error {
	if err := s.staff.Delete(ctx, id); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}
