package service

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/holonet-labs/holocron-back/internal/db"
)

var ErrLoginPasswordDoesNotMatch = errors.New("password does not match")

type Account struct {
	db        *gorm.DB
	favourite *Favourite
	logger    *zap.SugaredLogger
}

func NewAccount(conn *gorm.DB, favourite *Favourite, l *zap.SugaredLogger) *Account {
	return &Account{
		db:        conn,
		favourite: favourite,
		logger:    l,
	}
}

func (s *Account) UserList() ([]db.User, error) {
	out := make([]db.User, 0)
	res := s.db.Order("id").Find(&out)
	return out, res.Error
}

func (s *Account) UserGet(id uint64) (*db.User, error) {
	user := db.User{}
	res := s.db.First(&user, id)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(res.Error, "find user")
	}
	return &user, nil
}

// UserCreate issues a token alongside the account. Nothing checks the token
// on requests yet; it only rides along for clients that store it.
func (s *Account) UserCreate(name, pass string) (*db.User, error) {
	var count int64
	res := s.db.Model(&db.User{}).Where("name = ?", name).Count(&count)
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "check name")
	}
	if count > 0 {
		return nil, ErrDuplicateKey
	}

	hash, err := s.bcryptGen(pass)
	if err != nil {
		return nil, errors.Wrap(err, "bcryptGen")
	}

	user := db.User{
		Name:     name,
		Password: hash,
		Token:    uuid.New().String(),
	}
	if res := s.db.Create(&user); res.Error != nil {
		return nil, res.Error
	}
	return &user, nil
}

func (s *Account) UserByToken(token string) (*db.User, error) {
	user := db.User{}
	res := s.db.Where("token = ?", token).First(&user)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(res.Error, "find user by token")
	}
	return &user, nil
}

// UserLogin verifies the password and rotates the token.
func (s *Account) UserLogin(name, pass string) (string, error) {
	user := db.User{}
	res := s.db.Where("name = ?", name).First(&user)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", errors.Wrap(res.Error, "find user")
	}

	if err := s.bcryptCheck(user.Password, pass); err != nil {
		return "", ErrLoginPasswordDoesNotMatch
	}

	token := uuid.New().String()
	res = s.db.Model(&user).Update("token", token)
	if res.Error != nil {
		return "", errors.Wrap(res.Error, "update token")
	}

	return token, nil
}

func (s *Account) UserUpdate(id uint64, name, pass *string) (*db.User, error) {
	user := db.User{}
	res := s.db.First(&user, id)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(res.Error, "find user")
	}

	updates := map[string]interface{}{}
	if name != nil {
		var count int64
		res := s.db.Model(&db.User{}).Where("name = ? AND id <> ?", *name, id).Count(&count)
		if res.Error != nil {
			return nil, errors.Wrap(res.Error, "check name")
		}
		if count > 0 {
			return nil, ErrDuplicateKey
		}
		updates["name"] = *name
	}
	if pass != nil {
		hash, err := s.bcryptGen(*pass)
		if err != nil {
			return nil, errors.Wrap(err, "bcryptGen")
		}
		updates["password"] = hash
	}
	if len(updates) == 0 {
		return &user, nil
	}

	if res := s.db.Model(&user).Updates(updates); res.Error != nil {
		return nil, errors.Wrap(res.Error, "update user")
	}
	if res := s.db.First(&user); res.Error != nil {
		return nil, errors.Wrap(res.Error, "reload user")
	}
	return &user, nil
}

// UserDelete removes the account and its favourites together.
func (s *Account) UserDelete(id uint64) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		user := db.User{}
		res := tx.First(&user, id)
		if res.Error != nil {
			if errors.Is(res.Error, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return errors.Wrap(res.Error, "find user")
		}

		if err := s.favourite.PurgeUser(tx, id); err != nil {
			return err
		}

		if res := tx.Delete(&db.User{}, id); res.Error != nil {
			return errors.Wrap(res.Error, "delete user")
		}
		return nil
	})
}

// DeleteAll empties every table, favourites first so no reference dangles
// mid-transaction.
func (s *Account) DeleteAll() error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, table := range []string{
			"favourites", "vehicles", "starships", "films", "planets", "people", "users",
		} {
			if res := tx.Exec("DELETE FROM " + table); res.Error != nil {
				return errors.Wrapf(res.Error, "flush %s", table)
			}
		}
		return nil
	})
}

func (s *Account) bcryptGen(pass string) (string, error) {
	passwordHashB, err := bcrypt.GenerateFromPassword([]byte(pass), 14)
	if err != nil {
		return "", errors.Wrap(err, "generate password hash")
	}
	return string(passwordHashB), nil
}

func (s *Account) bcryptCheck(hash, pass string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pass))
}
