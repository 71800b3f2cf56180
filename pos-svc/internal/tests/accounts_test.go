package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"foodcourt-pos/pos-svc/internal/domain"
	"foodcourt-pos/pos-svc/internal/mocks"
	"foodcourt-pos/pos-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAccounts(t *testing.T, store service.SnapshotStore) *service.AccountService {
	t.Helper()
	accounts := service.NewAccountService(store)
	accounts.Cost = bcrypt.MinCost
	accounts.NewID = sequentialIDs("acc")
	require.NoError(t, accounts.Load(context.Background()))
	return accounts
}

func TestAccounts_KasirApprovalFlow(t *testing.T) {
	ctx := context.Background()
	accounts := newAccounts(t, newRedisStore(t))

	res, err := accounts.Register(ctx, domain.Registration{Username: "budi", Password: "rahasia"}, domain.RoleAdminKasir)
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, domain.StatusPending, res.User.Status)

	creds := domain.Credentials{Username: "budi", Password: "rahasia"}
	login := accounts.Login(creds, domain.RoleAdminKasir)
	assert.False(t, login.Success)
	assert.Contains(t, login.Message, "waiting for approval")

	pending := accounts.Pending()
	require.Len(t, pending, 1)
	assert.Equal(t, "acc-1", pending[0].ID)

	require.NoError(t, accounts.Approve(ctx, "acc-1"))
	login = accounts.Login(creds, domain.RoleAdminKasir)
	require.True(t, login.Success)
	assert.Equal(t, "budi", login.User.Username)
	assert.Empty(t, accounts.Pending())

	require.NoError(t, accounts.Reject(ctx, "acc-1"))
	login = accounts.Login(creds, domain.RoleAdminKasir)
	assert.False(t, login.Success)
	assert.Contains(t, login.Message, "rejected")
}

func TestAccounts_Register(t *testing.T) {
	tests := []struct {
		name        string
		reg         domain.Registration
		role        domain.Role
		wantSuccess bool
	}{
		{name: "super admin", reg: domain.Registration{Name: "Sari", Email: "sari@wbi.com", Password: "pw"}, role: domain.RoleSuperAdmin, wantSuccess: true},
		{name: "kasir", reg: domain.Registration{Username: "andi", Password: "pw"}, role: domain.RoleAdminKasir, wantSuccess: true},
		{name: "super admin without email", reg: domain.Registration{Password: "pw"}, role: domain.RoleSuperAdmin},
		{name: "kasir without password", reg: domain.Registration{Username: "andi"}, role: domain.RoleAdminKasir},
		{name: "bootstrap email taken", reg: domain.Registration{Email: "admin@wbi.com", Password: "pw"}, role: domain.RoleSuperAdmin},
		{name: "unknown role", reg: domain.Registration{Username: "x", Password: "pw"}, role: "owner"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			accounts := newAccounts(t, newRedisStore(t))
			require.NoError(t, accounts.AddBootstrapSuperAdmin("Super Admin", "admin@wbi.com", "admin123"))

			res, err := accounts.Register(context.Background(), testCase.reg, testCase.role)

			require.NoError(t, err)
			assert.Equal(t, testCase.wantSuccess, res.Success)
			assert.NotEmpty(t, res.Message)
		})
	}
}

func TestAccounts_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	accounts := newAccounts(t, newRedisStore(t))

	_, err := accounts.Register(ctx, domain.Registration{Username: "budi", Password: "a"}, domain.RoleAdminKasir)
	require.NoError(t, err)

	res, err := accounts.Register(ctx, domain.Registration{Username: " budi ", Password: "b"}, domain.RoleAdminKasir)
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Len(t, accounts.All(), 1)
}

func TestAccounts_Login(t *testing.T) {
	accounts := newAccounts(t, newRedisStore(t))
	require.NoError(t, accounts.AddBootstrapSuperAdmin("Super Admin", "admin@wbi.com", "admin123"))

	ok := accounts.Login(domain.Credentials{Email: "admin@wbi.com", Password: "admin123"}, domain.RoleSuperAdmin)
	require.True(t, ok.Success)
	assert.Equal(t, domain.RoleSuperAdmin, ok.User.Role)

	bad := accounts.Login(domain.Credentials{Email: "admin@wbi.com", Password: "wrong"}, domain.RoleSuperAdmin)
	assert.False(t, bad.Success)
	assert.Nil(t, bad.User)

	wrongRole := accounts.Login(domain.Credentials{Username: "admin@wbi.com", Password: "admin123"}, domain.RoleAdminKasir)
	assert.False(t, wrongRole.Success)
}

func TestAccounts_PersistedWithHashedPasswords(t *testing.T) {
	ctx := context.Background()
	store := newRedisStore(t)
	accounts := newAccounts(t, store)

	_, err := accounts.Register(ctx, domain.Registration{Username: "budi", Password: "rahasia"}, domain.RoleAdminKasir)
	require.NoError(t, err)

	raw, found, err := store.Load(ctx, service.KeyAccounts)
	require.NoError(t, err)
	require.True(t, found)
	assert.NotContains(t, string(raw), "rahasia")

	reloaded := newAccounts(t, store)
	assert.Len(t, reloaded.Pending(), 1)
}

func TestAccounts_SaveFailure(t *testing.T) {
	ctx := context.Background()
	mockStore := mocks.NewSnapshotStore(t)
	mockStore.On("Load", mock.Anything, service.KeyAccounts).Return(nil, false, nil)
	mockStore.On("Save", mock.Anything, service.KeyAccounts, mock.Anything).Return(errors.New("redis down")).Once()

	accounts := newAccounts(t, mockStore)

	_, err := accounts.Register(ctx, domain.Registration{Username: "budi", Password: "pw"}, domain.RoleAdminKasir)
	assert.ErrorIs(t, err, service.ErrPersistence)
	assert.Empty(t, accounts.All())

	assert.NoError(t, accounts.Approve(ctx, "missing"))
}

func TestTokenIssuer(t *testing.T) {
	issuer := service.NewTokenIssuer("secret", time.Hour)
	issuer.Clock = fixedClock
	user := domain.User{ID: "acc-1", Role: domain.RoleAdminKasir}

	token, err := issuer.Issue(user)
	require.NoError(t, err)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "acc-1", claims.Subject)
	assert.Equal(t, domain.RoleAdminKasir, claims.Role)

	other := service.NewTokenIssuer("another-secret", time.Hour)
	other.Clock = fixedClock
	_, err = other.Parse(token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)

	issuer.Clock = func() time.Time { return fixedNow.Add(2 * time.Hour) }
	_, err = issuer.Parse(token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)

	_, err = issuer.Parse("not-a-token")
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}
