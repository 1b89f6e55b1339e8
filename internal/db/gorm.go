package db

import (
	"log"
	"os"
	"time"

	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/holonet-labs/holocron-back/internal/config"
)

type (
	GormForkedModel struct {
		ID        uint64 `gorm:"primarykey"`
		CreatedAt time.Time
		UpdatedAt time.Time
	}

	User struct {
		GormForkedModel
		Name       string `gorm:"unique;not null"`
		Password   string `gorm:"not null"`
		Token      string `gorm:"not null"`
		Favourites []Favourite
	}

	// Favourite is a tagged reference: Kind says which catalogue table
	// EntityID points into, so one row references exactly one entity.
	Favourite struct {
		GormForkedModel
		UserID   uint64 `gorm:"not null;uniqueIndex:uidx_user_kind_entity"`
		Kind     string `gorm:"not null;uniqueIndex:uidx_user_kind_entity"`
		EntityID uint64 `gorm:"not null;uniqueIndex:uidx_user_kind_entity"`
		User     User
	}

	Person struct {
		GormForkedModel
		Name        string `gorm:"unique;not null"`
		Height      *int64
		Mass        *int64
		HairColor   *string
		SkinColor   *string
		EyeColor    *string
		BirthYear   *string
		Gender      *string
		Homeworld   *string
		URL         *string
		Description *string
	}

	Planet struct {
		GormForkedModel
		Name           string `gorm:"unique;not null"`
		Diameter       *int64
		RotationPeriod *int64
		OrbitalPeriod  *int64
		Gravity        *string
		Population     *int64
		Climate        *string
		Terrain        *string
		SurfaceWater   *int64
		URL            *string
		Description    *string
	}

	Film struct {
		GormForkedModel
		Title        string `gorm:"unique;not null"`
		EpisodeID    *int64
		Director     *string
		Producer     *string
		ReleaseDate  *string
		OpeningCrawl *string
		URL          *string
		Description  *string
	}

	Starship struct {
		GormForkedModel
		Name                 string `gorm:"unique;not null"`
		Model                *string
		StarshipClass        *string
		Manufacturer         *string
		CostInCredits        *int64
		Length               *int64
		Crew                 *string
		Passengers           *string
		MaxAtmospheringSpeed *string
		HyperdriveRating     *string
		MGLT                 *int64
		CargoCapacity        *int64
		Consumables          *string
		URL                  *string
		Description          *string
	}

	Vehicle struct {
		GormForkedModel
		Name                 string `gorm:"unique;not null"`
		Model                *string
		VehicleClass         *string
		Manufacturer         *string
		CostInCredits        *int64
		Length               *string
		Crew                 *string
		Passengers           *string
		MaxAtmospheringSpeed *string
		CargoCapacity        *int64
		Consumables          *string
		URL                  *string
		Description          *string
	}
)

func NewGormClient(cfg *config.Config) (*gorm.DB, error) {
	newLogger := logger.New(log.New(os.Stdout, "\r\n", log.LstdFlags), logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Info,
		Colorful:                  true,
		IgnoreRecordNotFoundError: false,
	})

	conn, err := gorm.Open(postgres.Open(cfg.DBDSN()), &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect database")
	}

	if err := Migrate(conn); err != nil {
		return nil, err
	}

	return conn, nil
}

// Migrate is also called by test setups against their own connections.
func Migrate(conn *gorm.DB) error {
	for _, model := range []interface{}{
		&User{}, &Person{}, &Planet{}, &Film{}, &Starship{}, &Vehicle{}, &Favourite{},
	} {
		if err := conn.AutoMigrate(model); err != nil {
			return errors.Wrapf(err, "migrate %T", model)
		}
	}
	return nil
}
