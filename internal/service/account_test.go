package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/holonet-labs/holocron-back/internal/db"
)

func TestUserCreate(t *testing.T) {
	t.Run("hashes the password and issues a token", func(t *testing.T) {
		_, account, _ := newTestServices(t)

		user, err := account.UserCreate("luke", "111111111111")
		require.NoError(t, err)
		assert.NotEmpty(t, user.Token)
		assert.NotEqual(t, "111111111111", user.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("111111111111")))
	})

	t.Run("duplicate name rejected", func(t *testing.T) {
		_, account, _ := newTestServices(t)
		seedUser(t, account, "luke")

		_, err := account.UserCreate("luke", "something else")
		assert.ErrorIs(t, err, ErrDuplicateKey)
	})
}

func TestUserLogin(t *testing.T) {
	t.Run("rotates the token", func(t *testing.T) {
		_, account, _ := newTestServices(t)
		user := seedUser(t, account, "luke")

		token, err := account.UserLogin("luke", "111111111111")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.NotEqual(t, user.Token, token)

		got, err := account.UserByToken(token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, account, _ := newTestServices(t)
		seedUser(t, account, "luke")

		_, err := account.UserLogin("luke", "wrong")
		assert.ErrorIs(t, err, ErrLoginPasswordDoesNotMatch)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, account, _ := newTestServices(t)

		_, err := account.UserLogin("vader", "whatever")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUserUpdate(t *testing.T) {
	t.Run("rename", func(t *testing.T) {
		_, account, _ := newTestServices(t)
		user := seedUser(t, account, "luke")

		got, err := account.UserUpdate(user.ID, strp("anakin"), nil)
		require.NoError(t, err)
		assert.Equal(t, "anakin", got.Name)
	})

	t.Run("rename onto taken name rejected", func(t *testing.T) {
		_, account, _ := newTestServices(t)
		seedUser(t, account, "luke")
		user := seedUser(t, account, "leia")

		_, err := account.UserUpdate(user.ID, strp("luke"), nil)
		assert.ErrorIs(t, err, ErrDuplicateKey)
	})

	t.Run("missing user", func(t *testing.T) {
		_, account, _ := newTestServices(t)

		_, err := account.UserUpdate(9999, strp("luke"), nil)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUserDeleteCascadesFavourites(t *testing.T) {
	catalog, account, favourite := newTestServices(t)
	luke := seedUser(t, account, "luke")
	leia := seedUser(t, account, "leia")
	planet := seedPlanet(t, catalog, "Tatooine")

	_, err := favourite.Add(luke.ID, KindPlanet, planet.ID)
	require.NoError(t, err)
	leiaFav, err := favourite.Add(leia.ID, KindPlanet, planet.ID)
	require.NoError(t, err)

	require.NoError(t, account.UserDelete(luke.ID))

	_, err = account.UserGet(luke.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// sibling user keeps theirs
	got, err := favourite.ListByUser(leia.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, leiaFav.ID, got[0].ID)
}

func TestUserDeleteRollsBackWhenPurgeFails(t *testing.T) {
	conn := newTestConn(t)
	_, account, _ := newTestServicesOn(t, conn)
	user := seedUser(t, account, "luke")

	// no favourites table, so the purge inside the transaction errors
	require.NoError(t, conn.Migrator().DropTable(&db.Favourite{}))

	err := account.UserDelete(user.ID)
	require.Error(t, err)

	got, err := account.UserGet(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "luke", got.Name)
}

func TestDeleteAll(t *testing.T) {
	catalog, account, favourite := newTestServices(t)
	user := seedUser(t, account, "luke")
	planet := seedPlanet(t, catalog, "Tatooine")
	seedPerson(t, catalog, "Luke Skywalker")
	seedFilm(t, catalog, "A New Hope")

	_, err := favourite.Add(user.ID, KindPlanet, planet.ID)
	require.NoError(t, err)

	require.NoError(t, account.DeleteAll())

	users, err := account.UserList()
	require.NoError(t, err)
	assert.Empty(t, users)

	planets, err := catalog.PlanetList()
	require.NoError(t, err)
	assert.Empty(t, planets)

	persons, err := catalog.PersonList()
	require.NoError(t, err)
	assert.Empty(t, persons)

	films, err := catalog.FilmList()
	require.NoError(t, err)
	assert.Empty(t, films)
}
