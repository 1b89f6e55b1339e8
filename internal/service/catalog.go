package service

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/holonet-labs/holocron-back/internal/db"
)

// Catalog is the store for the five flat content kinds. Deletes go through
// the favourite manager so dependent favourites never outlive their entity.
type Catalog struct {
	db        *gorm.DB
	favourite *Favourite
	logger    *zap.SugaredLogger
}

func NewCatalog(conn *gorm.DB, favourite *Favourite, l *zap.SugaredLogger) *Catalog {
	return &Catalog{
		db:        conn,
		favourite: favourite,
		logger:    l,
	}
}

func (s *Catalog) PersonList() ([]db.Person, error) {
	out := make([]db.Person, 0)
	res := s.db.Order("id").Find(&out)
	return out, res.Error
}

func (s *Catalog) PersonGet(id uint64) (*db.Person, error) {
	model := db.Person{}
	if err := s.first(&model, id); err != nil {
		return nil, err
	}
	return &model, nil
}

func (s *Catalog) PersonCreate(model *db.Person) (*db.Person, error) {
	if err := s.checkNaturalKey(&db.Person{}, "name", model.Name); err != nil {
		return nil, err
	}
	if res := s.db.Create(model); res.Error != nil {
		return nil, res.Error
	}
	return model, nil
}

func (s *Catalog) PersonUpdate(id uint64, updates map[string]interface{}) (*db.Person, error) {
	model := db.Person{}
	if err := s.first(&model, id); err != nil {
		return nil, err
	}
	if err := s.checkNaturalKeyRename(&db.Person{}, "name", id, updates); err != nil {
		return nil, err
	}
	if err := s.applyUpdates(&model, updates); err != nil {
		return nil, err
	}
	return &model, nil
}

func (s *Catalog) PersonDelete(id uint64) error {
	return s.deleteEntity(KindPerson, id, &db.Person{})
}

func (s *Catalog) PlanetList() ([]db.Planet, error) {
	out := make([]db.Planet, 0)
	res := s.db.Order("id").Find(&out)
	return out, res.Error
}

func (s *Catalog) PlanetGet(id uint64) (*db.Planet, error) {
	model := db.Planet{}
	if err := s.first(&model, id); err != nil {
		return nil, err
	}
	return &model, nil
}

func (s *Catalog) PlanetCreate(model *db.Planet) (*db.Planet, error) {
	if err := s.checkNaturalKey(&db.Planet{}, "name", model.Name); err != nil {
		return nil, err
	}
	if res := s.db.Create(model); res.Error != nil {
		return nil, res.Error
	}
	return model, nil
}

func (s *Catalog) PlanetUpdate(id uint64, updates map[string]interface{}) (*db.Planet, error) {
	model := db.Planet{}
	if err := s.first(&model, id); err != nil {
		return nil, err
	}
	if err := s.checkNaturalKeyRename(&db.Planet{}, "name", id, updates); err != nil {
		return nil, err
	}
	if err := s.applyUpdates(&model, updates); err != nil {
		return nil, err
	}
	return &model, nil
}

func (s *Catalog) PlanetDelete(id uint64) error {
	return s.deleteEntity(KindPlanet, id, &db.Planet{})
}

func (s *Catalog) FilmList() ([]db.Film, error) {
	out := make([]db.Film, 0)
	res := s.db.Order("id").Find(&out)
	return out, res.Error
}

func (s *Catalog) FilmGet(id uint64) (*db.Film, error) {
	model := db.Film{}
	if err := s.first(&model, id); err != nil {
		return nil, err
	}
	return &model, nil
}

func (s *Catalog) FilmCreate(model *db.Film) (*db.Film, error) {
	if err := s.checkNaturalKey(&db.Film{}, "title", model.Title); err != nil {
		return nil, err
	}
	if res := s.db.Create(model); res.Error != nil {
		return nil, res.Error
	}
	return model, nil
}

func (s *Catalog) FilmUpdate(id uint64, updates map[string]interface{}) (*db.Film, error) {
	model := db.Film{}
	if err := s.first(&model, id); err != nil {
		return nil, err
	}
	if err := s.checkNaturalKeyRename(&db.Film{}, "title", id, updates); err != nil {
		return nil, err
	}
	if err := s.applyUpdates(&model, updates); err != nil {
		return nil, err
	}
	return &model, nil
}

func (s *Catalog) FilmDelete(id uint64) error {
	return s.deleteEntity(KindFilm, id, &db.Film{})
}

func (s *Catalog) StarshipList() ([]db.Starship, error) {
	out := make([]db.Starship, 0)
	res := s.db.Order("id").Find(&out)
	return out, res.Error
}

func (s *Catalog) StarshipGet(id uint64) (*db.Starship, error) {
	model := db.Starship{}
	if err := s.first(&model, id); err != nil {
		return nil, err
	}
	return &model, nil
}

func (s *Catalog) StarshipCreate(model *db.Starship) (*db.Starship, error) {
	if err := s.checkNaturalKey(&db.Starship{}, "name", model.Name); err != nil {
		return nil, err
	}
	if res := s.db.Create(model); res.Error != nil {
		return nil, res.Error
	}
	return model, nil
}

func (s *Catalog) StarshipUpdate(id uint64, updates map[string]interface{}) (*db.Starship, error) {
	model := db.Starship{}
	if err := s.first(&model, id); err != nil {
		return nil, err
	}
	if err := s.checkNaturalKeyRename(&db.Starship{}, "name", id, updates); err != nil {
		return nil, err
	}
	if err := s.applyUpdates(&model, updates); err != nil {
		return nil, err
	}
	return &model, nil
}

func (s *Catalog) StarshipDelete(id uint64) error {
	return s.deleteEntity(KindStarship, id, &db.Starship{})
}

func (s *Catalog) VehicleList() ([]db.Vehicle, error) {
	out := make([]db.Vehicle, 0)
	res := s.db.Order("id").Find(&out)
	return out, res.Error
}

func (s *Catalog) VehicleGet(id uint64) (*db.Vehicle, error) {
	model := db.Vehicle{}
	if err := s.first(&model, id); err != nil {
		return nil, err
	}
	return &model, nil
}

func (s *Catalog) VehicleCreate(model *db.Vehicle) (*db.Vehicle, error) {
	if err := s.checkNaturalKey(&db.Vehicle{}, "name", model.Name); err != nil {
		return nil, err
	}
	if res := s.db.Create(model); res.Error != nil {
		return nil, res.Error
	}
	return model, nil
}

func (s *Catalog) VehicleUpdate(id uint64, updates map[string]interface{}) (*db.Vehicle, error) {
	model := db.Vehicle{}
	if err := s.first(&model, id); err != nil {
		return nil, err
	}
	if err := s.checkNaturalKeyRename(&db.Vehicle{}, "name", id, updates); err != nil {
		return nil, err
	}
	if err := s.applyUpdates(&model, updates); err != nil {
		return nil, err
	}
	return &model, nil
}

func (s *Catalog) VehicleDelete(id uint64) error {
	return s.deleteEntity(KindVehicle, id, &db.Vehicle{})
}

////////

func (s *Catalog) first(model interface{}, id uint64) error {
	res := s.db.First(model, id)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return errors.Wrap(res.Error, "find record")
	}
	return nil
}

func (s *Catalog) checkNaturalKey(model interface{}, column, value string) error {
	var count int64
	res := s.db.Model(model).Where(column+" = ?", value).Count(&count)
	if res.Error != nil {
		return errors.Wrap(res.Error, "check natural key")
	}
	if count > 0 {
		return ErrDuplicateKey
	}
	return nil
}

// checkNaturalKeyRename guards renames the same way checkNaturalKey guards
// creates, skipping the record being updated. A no-op when the key column is
// absent from the update map.
func (s *Catalog) checkNaturalKeyRename(blank interface{}, column string, id uint64, updates map[string]interface{}) error {
	value, ok := updates[column].(string)
	if !ok {
		return nil
	}
	var count int64
	res := s.db.Model(blank).Where(column+" = ? AND id <> ?", value, id).Count(&count)
	if res.Error != nil {
		return errors.Wrap(res.Error, "check natural key")
	}
	if count > 0 {
		return ErrDuplicateKey
	}
	return nil
}

// applyUpdates merges the supplied columns only; fields absent from the map
// keep their stored value. The model is reloaded so callers see the result.
func (s *Catalog) applyUpdates(model interface{}, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	if res := s.db.Model(model).Updates(updates); res.Error != nil {
		return errors.Wrap(res.Error, "update record")
	}
	if res := s.db.First(model); res.Error != nil {
		return errors.Wrap(res.Error, "reload record")
	}
	return nil
}

// deleteEntity removes the record and every favourite referencing it in one
// transaction; either both go or neither does.
func (s *Catalog) deleteEntity(kind string, id uint64, model interface{}) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.First(model, id)
		if res.Error != nil {
			if errors.Is(res.Error, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return errors.Wrap(res.Error, "find record")
		}

		if err := s.favourite.PurgeEntity(tx, kind, id); err != nil {
			return err
		}

		if res := tx.Delete(model, id); res.Error != nil {
			return errors.Wrap(res.Error, "delete record")
		}
		return nil
	})
}
