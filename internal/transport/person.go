package transport

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/holonet-labs/holocron-back/internal/db"
)

type (
	PersonReq struct {
		Name        *string `json:"name" validate:"required"`
		Height      *int64  `json:"height" validate:"required"`
		Mass        *int64  `json:"mass" validate:"required"`
		HairColor   *string `json:"hair_color" validate:"required"`
		SkinColor   *string `json:"skin_color" validate:"required"`
		EyeColor    *string `json:"eye_color" validate:"required"`
		BirthYear   *string `json:"birth_year" validate:"required"`
		Gender      *string `json:"gender" validate:"required"`
		Homeworld   *string `json:"homeworld" validate:"required"`
		URL         *string `json:"url" validate:"required"`
		Description *string `json:"description" validate:"required"`
	}

	PersonResp struct {
		ID          uint64  `json:"id"`
		Name        string  `json:"name"`
		Height      *int64  `json:"height"`
		Mass        *int64  `json:"mass"`
		HairColor   *string `json:"hair_color"`
		SkinColor   *string `json:"skin_color"`
		EyeColor    *string `json:"eye_color"`
		BirthYear   *string `json:"birth_year"`
		Gender      *string `json:"gender"`
		Homeworld   *string `json:"homeworld"`
		URL         *string `json:"url"`
		Description *string `json:"description"`
	}
)

func newPersonResp(m *db.Person) PersonResp {
	return PersonResp{
		ID:          m.ID,
		Name:        m.Name,
		Height:      m.Height,
		Mass:        m.Mass,
		HairColor:   m.HairColor,
		SkinColor:   m.SkinColor,
		EyeColor:    m.EyeColor,
		BirthYear:   m.BirthYear,
		Gender:      m.Gender,
		Homeworld:   m.Homeworld,
		URL:         m.URL,
		Description: m.Description,
	}
}

func personUpdates(req *PersonReq) map[string]interface{} {
	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Height != nil {
		updates["height"] = *req.Height
	}
	if req.Mass != nil {
		updates["mass"] = *req.Mass
	}
	if req.HairColor != nil {
		updates["hair_color"] = *req.HairColor
	}
	if req.SkinColor != nil {
		updates["skin_color"] = *req.SkinColor
	}
	if req.EyeColor != nil {
		updates["eye_color"] = *req.EyeColor
	}
	if req.BirthYear != nil {
		updates["birth_year"] = *req.BirthYear
	}
	if req.Gender != nil {
		updates["gender"] = *req.Gender
	}
	if req.Homeworld != nil {
		updates["homeworld"] = *req.Homeworld
	}
	if req.URL != nil {
		updates["url"] = *req.URL
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	return updates
}

func (s *HTTPServer) PersonList(c echo.Context) error {
	persons, err := s.catalog.PersonList()
	if err != nil {
		return toHTTPError(err)
	}

	resp := make([]PersonResp, len(persons))
	for i := range persons {
		resp[i] = newPersonResp(&persons[i])
	}
	return c.JSON(http.StatusOK, struct {
		Msg     string       `json:"msg"`
		Persons []PersonResp `json:"persons"`
	}{Msg: "ok", Persons: resp})
}

func (s *HTTPServer) PersonGet(c echo.Context) error {
	id, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}

	person, err := s.catalog.PersonGet(id)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, struct {
		Msg    string     `json:"msg"`
		Person PersonResp `json:"person"`
	}{Msg: "ok", Person: newPersonResp(person)})
}

func (s *HTTPServer) PersonCreate(c echo.Context) error {
	req := PersonReq{}
	if err := BindAndValidate(c, &req); err != nil {
		return err
	}

	model := db.Person{
		Name:        *req.Name,
		Height:      req.Height,
		Mass:        req.Mass,
		HairColor:   req.HairColor,
		SkinColor:   req.SkinColor,
		EyeColor:    req.EyeColor,
		BirthYear:   req.BirthYear,
		Gender:      req.Gender,
		Homeworld:   req.Homeworld,
		URL:         req.URL,
		Description: req.Description,
	}

	created, err := s.catalog.PersonCreate(&model)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, struct {
		Msg string `json:"msg"`
		ID  uint64 `json:"id"`
	}{Msg: "person created", ID: created.ID})
}

func (s *HTTPServer) PersonUpdate(c echo.Context) error {
	id, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}

	req := PersonReq{}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := s.catalog.PersonUpdate(id, personUpdates(&req))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, struct {
		Msg    string     `json:"msg"`
		Person PersonResp `json:"person"`
	}{Msg: "person updated", Person: newPersonResp(updated)})
}

func (s *HTTPServer) PersonDelete(c echo.Context) error {
	id, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}

	if err := s.catalog.PersonDelete(id); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, MsgResp{Msg: "person deleted"})
}
