package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"golang.org/x/crypto/bcrypt"

	"github.com/symtoscan/symtoscan-api/schema"
)

const passwordResetTTL = time.Hour

// CreateAccount registers an account with an email and a bcrypt-hashed
// password. The email must not be taken by another account.
func (s *SymtoScanStore) CreateAccount(email, password string) (*schema.Account, error) {
	var existing schema.Account
	err := s.ormDB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrEmailTaken
	} else if !gorm.IsRecordNotFoundError(err) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	a := schema.Account{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
	}

	if err := s.ormDB.Create(&a).Error; err != nil {
		return nil, err
	}

	return &a, nil
}

// GetAccount returns an account instance of a given account ID
func (s *SymtoScanStore) GetAccount(id string) (*schema.Account, error) {
	var a schema.Account
	if err := s.ormDB.Where("id = ?", id).First(&a).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &a, nil
}

// GetAccountByEmail returns an account instance of a given email
func (s *SymtoScanStore) GetAccountByEmail(email string) (*schema.Account, error) {
	var a schema.Account
	if err := s.ormDB.Where("email = ?", email).First(&a).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &a, nil
}

// AuthenticateAccount checks an email/password pair against the stored
// bcrypt hash and returns the matching account.
func (s *SymtoScanStore) AuthenticateAccount(email, password string) (*schema.Account, error) {
	a, err := s.GetAccountByEmail(email)
	if err != nil {
		return nil, err
	}

	if a.Disabled {
		return nil, ErrAccountDisabled
	}

	if err := bcrypt.CompareHashAndPassword(a.PasswordHash, []byte(password)); err != nil {
		return nil, ErrWrongPassword
	}

	return a, nil
}

// UpdateAccountDisplayName mirrors a profile display name into the
// identity record.
func (s *SymtoScanStore) UpdateAccountDisplayName(id, displayName string) error {
	result := s.ormDB.Model(schema.Account{}).Where("id = ?", id).Update("display_name", displayName)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

// CreatePasswordReset issues a single-use reset token for the account
// registered under the given email.
func (s *SymtoScanStore) CreatePasswordReset(email string) (*schema.Account, *schema.PasswordReset, error) {
	a, err := s.GetAccountByEmail(email)
	if err != nil {
		return nil, nil, err
	}

	reset := schema.PasswordReset{
		Token:     uuid.New().String(),
		AccountID: a.ID,
		ExpiresAt: time.Now().Add(passwordResetTTL),
	}

	if err := s.ormDB.Create(&reset).Error; err != nil {
		return nil, nil, err
	}

	return a, &reset, nil
}
