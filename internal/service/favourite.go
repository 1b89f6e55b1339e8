package service

import (
	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/holonet-labs/holocron-back/internal/db"
)

var (
	ErrNotFound           = errors.New("record not found")
	ErrDuplicateKey       = errors.New("record with that name already exists")
	ErrDuplicateFavourite = errors.New("duplicate favourite")
	ErrForbidden          = errors.New("favourite does not belong to the user")
	ErrInvalidKind        = errors.New("unknown favourite kind")
)

// Kind values a Favourite may reference. Anything else is rejected with
// ErrInvalidKind before touching the store.
const (
	KindPerson   = "person"
	KindPlanet   = "planet"
	KindFilm     = "film"
	KindStarship = "starship"
	KindVehicle  = "vehicle"
)

func ValidKind(kind string) bool {
	switch kind {
	case KindPerson, KindPlanet, KindFilm, KindStarship, KindVehicle:
		return true
	}
	return false
}

// Favourite owns the favourites table and its invariants: a favourite
// references exactly one existing catalogue entity, and a user cannot
// favourite the same (kind, entity) pair twice.
type Favourite struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

func NewFavourite(conn *gorm.DB, l *zap.SugaredLogger) *Favourite {
	return &Favourite{
		db:     conn,
		logger: l,
	}
}

func (s *Favourite) Add(userID uint64, kind string, entityID uint64) (*db.Favourite, error) {
	if !ValidKind(kind) {
		return nil, ErrInvalidKind
	}

	model := db.Favourite{
		UserID:   userID,
		Kind:     kind,
		EntityID: entityID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		user := db.User{}
		if res := tx.First(&user, userID); res.Error != nil {
			if errors.Is(res.Error, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return errors.Wrap(res.Error, "find user")
		}

		exists, err := entityExists(tx, kind, entityID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrNotFound
		}

		var count int64
		res := tx.Model(&db.Favourite{}).
			Where("user_id = ? AND kind = ? AND entity_id = ?", userID, kind, entityID).
			Count(&count)
		if res.Error != nil {
			return errors.Wrap(res.Error, "count favourites")
		}
		if count > 0 {
			return ErrDuplicateFavourite
		}

		if res := tx.Create(&model); res.Error != nil {
			return errors.Wrap(res.Error, "create favourite")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &model, nil
}

func (s *Favourite) ListByUser(userID uint64) ([]db.Favourite, error) {
	user := db.User{}
	if res := s.db.First(&user, userID); res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(res.Error, "find user")
	}

	sql, args, err := squirrel.
		Select("f.id", "f.user_id", "f.kind", "f.entity_id").From("favourites f").
		OrderBy("f.id").
		Where(squirrel.Eq{"f.user_id": userID}).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "build sql")
	}

	favourites := make([]db.Favourite, 0)
	res := s.db.Raw(sql, args...).Scan(&favourites)
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "scan")
	}

	return favourites, nil
}

func (s *Favourite) DeleteByID(userID, favouriteID uint64) error {
	user := db.User{}
	if res := s.db.First(&user, userID); res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return errors.Wrap(res.Error, "find user")
	}

	favourite := db.Favourite{}
	if res := s.db.First(&favourite, favouriteID); res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return errors.Wrap(res.Error, "find favourite")
	}

	if favourite.UserID != userID {
		return ErrForbidden
	}

	res := s.db.Delete(&db.Favourite{}, favouriteID)
	return res.Error
}

// PurgeEntity removes every favourite referencing (kind, entityID) for any
// owner. Runs on the caller's transaction so an entity delete and its purge
// commit or roll back together. Purging an unreferenced entity is a no-op.
func (s *Favourite) PurgeEntity(tx *gorm.DB, kind string, entityID uint64) error {
	res := tx.Where("kind = ? AND entity_id = ?", kind, entityID).Delete(&db.Favourite{})
	return errors.Wrap(res.Error, "purge favourites")
}

// PurgeUser removes every favourite a user owns, for the user-delete cascade.
func (s *Favourite) PurgeUser(tx *gorm.DB, userID uint64) error {
	res := tx.Where("user_id = ?", userID).Delete(&db.Favourite{})
	return errors.Wrap(res.Error, "purge user favourites")
}

func entityExists(tx *gorm.DB, kind string, entityID uint64) (bool, error) {
	var dest interface{}
	switch kind {
	case KindPerson:
		dest = &db.Person{}
	case KindPlanet:
		dest = &db.Planet{}
	case KindFilm:
		dest = &db.Film{}
	case KindStarship:
		dest = &db.Starship{}
	case KindVehicle:
		dest = &db.Vehicle{}
	default:
		return false, ErrInvalidKind
	}

	res := tx.First(dest, entityID)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, errors.Wrapf(res.Error, "find %s", kind)
	}
	return true, nil
}
