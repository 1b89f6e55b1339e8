package test_functional

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCreate(t *testing.T) {
	u := AppBaseURL
	u.Path = "/user"

	t.Run("successful create", func(t *testing.T) {
		defer FlushDB()

		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()

		type Resp struct {
			ID    uint64 `json:"id"`
			Token string `json:"token"`
		}

		resp, err := resty.New().
			R().
			SetHeader("Content-Type", "application/json").
			SetContext(ctx).
			SetResult(&Resp{}).
			SetBody(`
			{"name": "luke", "password": "111111111111"}
		`).
			Post(u.String())
		assert.Nil(t, err)

		assert.Equal(t, http.StatusCreated, resp.StatusCode())

		got, ok := resp.Result().(*Resp)
		assert.True(t, ok)
		assert.NotEmpty(t, got.Token)

		var (
			id    uint64
			token string
		)
		err = DBConn.QueryRow(ctx, "SELECT id, token FROM users WHERE token=$1", got.Token).Scan(&id, &token)
		assert.Nil(t, err)

		assert.Equal(t, token, got.Token)
		assert.Equal(t, id, got.ID)
	})

	t.Run("bad body", func(t *testing.T) {
		defer FlushDB()

		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()

		resp, err := resty.New().
			R().
			SetHeader("Content-Type", "application/json").
			SetContext(ctx).
			SetBody(`
			{"something": "???"}
		`).
			Post(u.String())
		assert.Nil(t, err)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode())
	})
}

func TestFavouriteFlow(t *testing.T) {
	defer FlushDB()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()

	cl := resty.New()

	userURL := AppBaseURL
	userURL.Path = "/user"
	planetURL := AppBaseURL
	planetURL.Path = "/planet"
	favouriteURL := AppBaseURL
	favouriteURL.Path = "/favourite"

	//////

	type IDResp struct {
		ID uint64 `json:"id"`
	}

	resp, err := cl.R().
		SetHeader("Content-Type", "application/json").
		SetContext(ctx).
		SetResult(&IDResp{}).
		SetBody(`{"name": "luke", "password": "111111111111"}`).
		Post(userURL.String())
	require.Nil(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode())
	userID := resp.Result().(*IDResp).ID

	resp, err = cl.R().
		SetHeader("Content-Type", "application/json").
		SetContext(ctx).
		SetResult(&IDResp{}).
		SetBody(`{
			"name": "Tatooine",
			"diameter": 10465,
			"rotation_period": 23,
			"orbital_period": 304,
			"gravity": "1 standard",
			"population": 200000,
			"climate": "arid",
			"terrain": "desert",
			"surface_water": 1,
			"url": "https://swapi.dev/api/planets/1/",
			"description": "A harsh desert world"
		}`).
		Post(planetURL.String())
	require.Nil(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode())
	planetID := resp.Result().(*IDResp).ID

	//////

	favouriteBody := fmt.Sprintf(`{"user_id": %d, "kind": "planet", "entity_id": %d}`, userID, planetID)

	resp, err = cl.R().
		SetHeader("Content-Type", "application/json").
		SetContext(ctx).
		SetBody(favouriteBody).
		Post(favouriteURL.String())
	require.Nil(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode())

	resp, err = cl.R().
		SetHeader("Content-Type", "application/json").
		SetContext(ctx).
		SetBody(favouriteBody).
		Post(favouriteURL.String())
	require.Nil(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode())

	//////

	deletePlanetURL := AppBaseURL
	deletePlanetURL.Path = fmt.Sprintf("/planet/%d", planetID)

	resp, err = cl.R().
		SetContext(ctx).
		Delete(deletePlanetURL.String())
	require.Nil(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())

	var count int
	err = DBConn.QueryRow(ctx, "SELECT COUNT(*) FROM favourites WHERE kind='planet' AND entity_id=$1", planetID).Scan(&count)
	assert.Nil(t, err)
	assert.Equal(t, 0, count)

	listURL := AppBaseURL
	listURL.Path = fmt.Sprintf("/user/%d/favourites", userID)

	resp, err = cl.R().
		SetContext(ctx).
		Get(listURL.String())
	require.Nil(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
}
