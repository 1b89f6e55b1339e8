package transport

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/holonet-labs/holocron-back/internal/db"
)

type (
	FavouriteReq struct {
		UserID   *uint64 `json:"user_id" validate:"required"`
		Kind     *string `json:"kind" validate:"required"`
		EntityID *uint64 `json:"entity_id" validate:"required"`
	}

	FavouriteResp struct {
		ID       uint64 `json:"id"`
		UserID   uint64 `json:"user_id"`
		Kind     string `json:"kind"`
		EntityID uint64 `json:"entity_id"`
	}
)

func newFavouriteResp(f *db.Favourite) FavouriteResp {
	return FavouriteResp{
		ID:       f.ID,
		UserID:   f.UserID,
		Kind:     f.Kind,
		EntityID: f.EntityID,
	}
}

func (s *HTTPServer) FavouriteAdd(c echo.Context) error {
	req := FavouriteReq{}
	if err := BindAndValidate(c, &req); err != nil {
		return err
	}

	favourite, err := s.favourite.Add(*req.UserID, *req.Kind, *req.EntityID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, struct {
		Msg       string        `json:"msg"`
		Favourite FavouriteResp `json:"favourite"`
	}{Msg: "favourite added", Favourite: newFavouriteResp(favourite)})
}

func (s *HTTPServer) FavouriteList(c echo.Context) error {
	id, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}

	favourites, err := s.favourite.ListByUser(id)
	if err != nil {
		return toHTTPError(err)
	}

	resp := make([]FavouriteResp, len(favourites))
	for i := range favourites {
		resp[i] = newFavouriteResp(&favourites[i])
	}
	return c.JSON(http.StatusOK, struct {
		Msg        string          `json:"msg"`
		Favourites []FavouriteResp `json:"favourites"`
	}{Msg: "ok", Favourites: resp})
}

func (s *HTTPServer) FavouriteDelete(c echo.Context) error {
	userID, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}
	favouriteID, err := GetAndParseParam(c, "fid")
	if err != nil {
		return err
	}

	if err := s.favourite.DeleteByID(userID, favouriteID); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, MsgResp{Msg: "favourite deleted"})
}
