package store

import (
	"errors"

	"github.com/jinzhu/gorm"

	"github.com/symtoscan/symtoscan-api/schema"
)

var (
	ErrEmailTaken      = errors.New("an account with this email address already exists")
	ErrAccountNotFound = errors.New("no account found with this email")
	ErrWrongPassword   = errors.New("incorrect password")
	ErrAccountDisabled = errors.New("this account has been disabled")
)

// symtoscan main datastore
type SymtoScanCore interface {
	Ping() error

	// Account
	CreateAccount(email, password string) (*schema.Account, error)
	GetAccount(id string) (*schema.Account, error)
	GetAccountByEmail(email string) (*schema.Account, error)
	AuthenticateAccount(email, password string) (*schema.Account, error)
	UpdateAccountDisplayName(id, displayName string) error
	CreatePasswordReset(email string) (*schema.Account, *schema.PasswordReset, error)
}

// SymtoScanStore is an implementation of SymtoScanCore
type SymtoScanStore struct {
	ormDB *gorm.DB
}

func NewSymtoScanStore(ormDB *gorm.DB) *SymtoScanStore {
	return &SymtoScanStore{
		ormDB: ormDB,
	}
}

// Ping is to check the storage health status
func (s *SymtoScanStore) Ping() error {
	return s.ormDB.DB().Ping()
}
