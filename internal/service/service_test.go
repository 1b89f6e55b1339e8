package service

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/holonet-labs/holocron-back/internal/db"
)

func newTestConn(t *testing.T) *gorm.DB {
	t.Helper()

	// unique name per test so parallel tests never share a memory db
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(conn))
	return conn
}

func newTestServices(t *testing.T) (*Catalog, *Account, *Favourite) {
	t.Helper()

	return newTestServicesOn(t, newTestConn(t))
}

func newTestServicesOn(t *testing.T, conn *gorm.DB) (*Catalog, *Account, *Favourite) {
	t.Helper()

	logger := zap.NewNop().Sugar()
	favourite := NewFavourite(conn, logger)
	catalog := NewCatalog(conn, favourite, logger)
	account := NewAccount(conn, favourite, logger)
	return catalog, account, favourite
}

func strp(v string) *string { return &v }
func intp(v int64) *int64   { return &v }

func seedUser(t *testing.T, account *Account, name string) *db.User {
	t.Helper()

	user, err := account.UserCreate(name, "111111111111")
	require.NoError(t, err)
	return user
}

func seedPlanet(t *testing.T, catalog *Catalog, name string) *db.Planet {
	t.Helper()

	planet, err := catalog.PlanetCreate(&db.Planet{
		Name:     name,
		Diameter: intp(10465),
		Climate:  strp("arid"),
		Terrain:  strp("desert"),
	})
	require.NoError(t, err)
	return planet
}

func seedPerson(t *testing.T, catalog *Catalog, name string) *db.Person {
	t.Helper()

	person, err := catalog.PersonCreate(&db.Person{
		Name:      name,
		Height:    intp(172),
		Mass:      intp(77),
		HairColor: strp("blond"),
	})
	require.NoError(t, err)
	return person
}

func seedFilm(t *testing.T, catalog *Catalog, title string) *db.Film {
	t.Helper()

	film, err := catalog.FilmCreate(&db.Film{
		Title:     title,
		EpisodeID: intp(4),
		Director:  strp("George Lucas"),
	})
	require.NoError(t, err)
	return film
}
