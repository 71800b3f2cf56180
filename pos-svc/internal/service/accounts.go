package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"foodcourt-pos/pos-svc/internal/domain"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	msgLoginOK          = "Login successful"
	msgBadEmailLogin    = "Invalid email or password"
	msgBadUsernameLogin = "Invalid username or password"
	msgAccountPending   = "Your account is still waiting for approval"
	msgAccountRejected  = "Your account was rejected. Please contact the super admin."
	msgRegisterOK       = "Registration successful"
	msgRegisterPending  = "Registration successful. Waiting for super admin approval."
	msgEmailTaken       = "Email is already registered"
	msgUsernameTaken    = "Username is already registered"
	msgMissingEmail     = "Email and password are required"
	msgMissingUsername  = "Username and password are required"
	msgUnknownRole      = "Unknown role"
)

// AccountService handles super admin and cashier accounts. Validation
// problems come back as an unsuccessful AuthResult; errors are reserved for
// storage failures.
type AccountService struct {
	mu        sync.RWMutex
	store     SnapshotStore
	accounts  []domain.Account
	bootstrap []domain.Account

	NewID func() string
	Cost  int
}

func NewAccountService(store SnapshotStore) *AccountService {
	return &AccountService{store: store, NewID: uuid.NewString, Cost: bcrypt.DefaultCost}
}

func (s *AccountService) Load(ctx context.Context) error {
	accounts, _, err := loadCollection[domain.Account](ctx, s.store, KeyAccounts)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.accounts = accounts
	s.mu.Unlock()
	return nil
}

// AddBootstrapSuperAdmin registers a configured super admin that lives only
// in memory.
func (s *AccountService) AddBootstrapSuperAdmin(name, email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.Cost)
	if err != nil {
		return fmt.Errorf("hash bootstrap password: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bootstrap = append(s.bootstrap, domain.Account{
		User: domain.User{
			ID:     "superadmin-" + email,
			Name:   name,
			Email:  email,
			Role:   domain.RoleSuperAdmin,
			Status: domain.StatusApproved,
		},
		PasswordHash: string(hash),
	})
	return nil
}

func (s *AccountService) Register(ctx context.Context, reg domain.Registration, role domain.Role) (domain.AuthResult, error) {
	reg.Email = strings.TrimSpace(reg.Email)
	reg.Username = strings.TrimSpace(reg.Username)

	account := domain.Account{User: domain.User{Role: role}}
	switch role {
	case domain.RoleSuperAdmin:
		if reg.Email == "" || reg.Password == "" {
			return failure(msgMissingEmail), nil
		}
		account.Name = reg.Name
		account.Email = reg.Email
		account.Status = domain.StatusApproved
	case domain.RoleAdminKasir:
		if reg.Username == "" || reg.Password == "" {
			return failure(msgMissingUsername), nil
		}
		account.Username = reg.Username
		account.Status = domain.StatusPending
	default:
		return failure(msgUnknownRole), nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), s.Cost)
	if err != nil {
		return domain.AuthResult{}, fmt.Errorf("hash password: %w", err)
	}
	account.PasswordHash = string(hash)

	s.mu.Lock()
	defer s.mu.Unlock()

	if role == domain.RoleSuperAdmin && s.findLocked(role, reg.Email, "") != nil {
		return failure(msgEmailTaken), nil
	}
	if role == domain.RoleAdminKasir && s.findLocked(role, "", reg.Username) != nil {
		return failure(msgUsernameTaken), nil
	}

	account.ID = s.NewID()
	updated := append(slices.Clone(s.accounts), account)
	if err := saveCollection(ctx, s.store, KeyAccounts, updated); err != nil {
		return domain.AuthResult{}, err
	}
	s.accounts = updated

	user := account.User
	if role == domain.RoleAdminKasir {
		return domain.AuthResult{Success: true, Message: msgRegisterPending, User: &user}, nil
	}
	return domain.AuthResult{Success: true, Message: msgRegisterOK, User: &user}, nil
}

func (s *AccountService) Login(creds domain.Credentials, role domain.Role) domain.AuthResult {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch role {
	case domain.RoleSuperAdmin:
		account := s.findLocked(role, strings.TrimSpace(creds.Email), "")
		if account == nil || !passwordMatches(account.PasswordHash, creds.Password) {
			return failure(msgBadEmailLogin)
		}
		user := account.User
		return domain.AuthResult{Success: true, Message: msgLoginOK, User: &user}
	case domain.RoleAdminKasir:
		account := s.findLocked(role, "", strings.TrimSpace(creds.Username))
		if account == nil || !passwordMatches(account.PasswordHash, creds.Password) {
			return failure(msgBadUsernameLogin)
		}
		switch account.Status {
		case domain.StatusPending:
			return failure(msgAccountPending)
		case domain.StatusRejected:
			return failure(msgAccountRejected)
		}
		user := account.User
		return domain.AuthResult{Success: true, Message: msgLoginOK, User: &user}
	}
	return failure(msgUnknownRole)
}

// Approve and Reject ignore unknown ids.
func (s *AccountService) Approve(ctx context.Context, id string) error {
	return s.setStatus(ctx, id, domain.StatusApproved)
}

func (s *AccountService) Reject(ctx context.Context, id string) error {
	return s.setStatus(ctx, id, domain.StatusRejected)
}

func (s *AccountService) Pending() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := []domain.User{}
	for _, a := range s.accounts {
		if a.Role == domain.RoleAdminKasir && a.Status == domain.StatusPending {
			users = append(users, a.User)
		}
	}
	return users
}

func (s *AccountService) All() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]domain.User, 0, len(s.accounts))
	for _, a := range s.accounts {
		users = append(users, a.User)
	}
	return users
}

func (s *AccountService) setStatus(ctx context.Context, id string, status domain.AdminStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.accounts, func(a domain.Account) bool {
		return a.ID == id && a.Role == domain.RoleAdminKasir
	})
	if idx < 0 {
		return nil
	}
	updated := slices.Clone(s.accounts)
	updated[idx].Status = status
	if err := saveCollection(ctx, s.store, KeyAccounts, updated); err != nil {
		return err
	}
	s.accounts = updated
	return nil
}

func (s *AccountService) findLocked(role domain.Role, email, username string) *domain.Account {
	for _, pool := range [][]domain.Account{s.bootstrap, s.accounts} {
		for i := range pool {
			a := &pool[i]
			if a.Role != role {
				continue
			}
			if role == domain.RoleSuperAdmin && strings.EqualFold(a.Email, email) {
				return a
			}
			if role == domain.RoleAdminKasir && a.Username == username {
				return a
			}
		}
	}
	return nil
}

func passwordMatches(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func failure(msg string) domain.AuthResult {
	return domain.AuthResult{Success: false, Message: msg}
}
