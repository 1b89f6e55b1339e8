package transport

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/holonet-labs/holocron-back/internal/db"
)

type (
	UserReq struct {
		Name     *string `json:"name" validate:"required"`
		Password *string `json:"password" validate:"required"`
	}

	UserResp struct {
		ID   uint64 `json:"id"`
		Name string `json:"name"`
	}
)

func newUserResp(u *db.User) UserResp {
	return UserResp{
		ID:   u.ID,
		Name: u.Name,
	}
}

func (s *HTTPServer) UserList(c echo.Context) error {
	users, err := s.account.UserList()
	if err != nil {
		return toHTTPError(err)
	}

	resp := make([]UserResp, len(users))
	for i := range users {
		resp[i] = newUserResp(&users[i])
	}
	return c.JSON(http.StatusOK, struct {
		Msg   string     `json:"msg"`
		Users []UserResp `json:"users"`
	}{Msg: "ok", Users: resp})
}

func (s *HTTPServer) UserGet(c echo.Context) error {
	id, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}

	user, err := s.account.UserGet(id)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, struct {
		Msg  string   `json:"msg"`
		User UserResp `json:"user"`
	}{Msg: "ok", User: newUserResp(user)})
}

func (s *HTTPServer) UserCreate(c echo.Context) error {
	req := UserReq{}
	if err := BindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := s.account.UserCreate(*req.Name, *req.Password)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, struct {
		Msg   string `json:"msg"`
		ID    uint64 `json:"id"`
		Token string `json:"token"`
	}{Msg: "user created", ID: user.ID, Token: user.Token})
}

func (s *HTTPServer) Login(c echo.Context) error {
	req := UserReq{}
	if err := BindAndValidate(c, &req); err != nil {
		return err
	}

	token, err := s.account.UserLogin(*req.Name, *req.Password)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, struct {
		Msg   string `json:"msg"`
		Token string `json:"token"`
	}{Msg: "ok", Token: token})
}

func (s *HTTPServer) UserUpdate(c echo.Context) error {
	id, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}

	req := UserReq{}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := s.account.UserUpdate(id, req.Name, req.Password)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, struct {
		Msg  string   `json:"msg"`
		User UserResp `json:"user"`
	}{Msg: "user updated", User: newUserResp(user)})
}

func (s *HTTPServer) UserDelete(c echo.Context) error {
	id, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}

	if err := s.account.UserDelete(id); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, MsgResp{Msg: "user deleted"})
}

func (s *HTTPServer) DeleteAll(c echo.Context) error {
	if err := s.account.DeleteAll(); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, MsgResp{Msg: "all tables flushed"})
}
