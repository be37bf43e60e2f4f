package service

import (
	"context"
	"errors"

	"github.com/metinatakli/cinema-booking-system/internal/domain"
	"github.com/shopspring/decimal"
)

type UserService struct {
	tx       domain.Transactor
	users    domain.UserRepository
	roles    domain.RoleRepository
	accounts domain.AccountRepository
}

func NewUserService(
	tx domain.Transactor,
	users domain.UserRepository,
	roles domain.RoleRepository,
	accounts domain.AccountRepository) *UserService {

	return &UserService{
		tx:       tx,
		users:    users,
		roles:    roles,
		accounts: accounts,
	}
}

// Register creates a user with the default role together with an empty account.
func (s *UserService) Register(ctx context.Context, email, password string) (*domain.User, *domain.Account, error) {
	user := &domain.User{Email: email}

	if err := user.Password.Set(password); err != nil {
		return nil, nil, err
	}

	account := &domain.Account{Balance: decimal.Zero}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		role, err := s.roles.GetDefault(ctx)
		if err != nil {
			return err
		}

		user.RoleID = role.ID
		user.IsAdmin = role.IsAdmin

		if err := s.users.Create(ctx, user); err != nil {
			return err
		}

		account.UserID = user.ID

		return s.accounts.Create(ctx, account)
	})
	if err != nil {
		return nil, nil, err
	}

	return user, account, nil
}

// Authenticate returns the user owning email when password matches. Unknown
// emails and wrong passwords both yield ErrInvalidCredentials.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}

		return nil, err
	}

	match, err := user.Password.Matches(password)
	if err != nil {
		return nil, err
	}

	if !match {
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}
