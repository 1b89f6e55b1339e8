package transport

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/holonet-labs/holocron-back/internal/db"
)

type (
	PlanetReq struct {
		Name           *string `json:"name" validate:"required"`
		Diameter       *int64  `json:"diameter" validate:"required"`
		RotationPeriod *int64  `json:"rotation_period" validate:"required"`
		OrbitalPeriod  *int64  `json:"orbital_period" validate:"required"`
		Gravity        *string `json:"gravity" validate:"required"`
		Population     *int64  `json:"population" validate:"required"`
		Climate        *string `json:"climate" validate:"required"`
		Terrain        *string `json:"terrain" validate:"required"`
		SurfaceWater   *int64  `json:"surface_water" validate:"required"`
		URL            *string `json:"url" validate:"required"`
		Description    *string `json:"description" validate:"required"`
	}

	PlanetResp struct {
		ID             uint64  `json:"id"`
		Name           string  `json:"name"`
		Diameter       *int64  `json:"diameter"`
		RotationPeriod *int64  `json:"rotation_period"`
		OrbitalPeriod  *int64  `json:"orbital_period"`
		Gravity        *string `json:"gravity"`
		Population     *int64  `json:"population"`
		Climate        *string `json:"climate"`
		Terrain        *string `json:"terrain"`
		SurfaceWater   *int64  `json:"surface_water"`
		URL            *string `json:"url"`
		Description    *string `json:"description"`
	}
)

func newPlanetResp(m *db.Planet) PlanetResp {
	return PlanetResp{
		ID:             m.ID,
		Name:           m.Name,
		Diameter:       m.Diameter,
		RotationPeriod: m.RotationPeriod,
		OrbitalPeriod:  m.OrbitalPeriod,
		Gravity:        m.Gravity,
		Population:     m.Population,
		Climate:        m.Climate,
		Terrain:        m.Terrain,
		SurfaceWater:   m.SurfaceWater,
		URL:            m.URL,
		Description:    m.Description,
	}
}

func planetUpdates(req *PlanetReq) map[string]interface{} {
	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Diameter != nil {
		updates["diameter"] = *req.Diameter
	}
	if req.RotationPeriod != nil {
		updates["rotation_period"] = *req.RotationPeriod
	}
	if req.OrbitalPeriod != nil {
		updates["orbital_period"] = *req.OrbitalPeriod
	}
	if req.Gravity != nil {
		updates["gravity"] = *req.Gravity
	}
	if req.Population != nil {
		updates["population"] = *req.Population
	}
	if req.Climate != nil {
		updates["climate"] = *req.Climate
	}
	if req.Terrain != nil {
		updates["terrain"] = *req.Terrain
	}
	if req.SurfaceWater != nil {
		updates["surface_water"] = *req.SurfaceWater
	}
	if req.URL != nil {
		updates["url"] = *req.URL
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	return updates
}

func (s *HTTPServer) PlanetList(c echo.Context) error {
	planets, err := s.catalog.PlanetList()
	if err != nil {
		return toHTTPError(err)
	}

	resp := make([]PlanetResp, len(planets))
	for i := range planets {
		resp[i] = newPlanetResp(&planets[i])
	}
	return c.JSON(http.StatusOK, struct {
		Msg     string       `json:"msg"`
		Planets []PlanetResp `json:"planets"`
	}{Msg: "ok", Planets: resp})
}

func (s *HTTPServer) PlanetGet(c echo.Context) error {
	id, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}

	planet, err := s.catalog.PlanetGet(id)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, struct {
		Msg    string     `json:"msg"`
		Planet PlanetResp `json:"planet"`
	}{Msg: "ok", Planet: newPlanetResp(planet)})
}

func (s *HTTPServer) PlanetCreate(c echo.Context) error {
	req := PlanetReq{}
	if err := BindAndValidate(c, &req); err != nil {
		return err
	}

	model := db.Planet{
		Name:           *req.Name,
		Diameter:       req.Diameter,
		RotationPeriod: req.RotationPeriod,
		OrbitalPeriod:  req.OrbitalPeriod,
		Gravity:        req.Gravity,
		Population:     req.Population,
		Climate:        req.Climate,
		Terrain:        req.Terrain,
		SurfaceWater:   req.SurfaceWater,
		URL:            req.URL,
		Description:    req.Description,
	}

	created, err := s.catalog.PlanetCreate(&model)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, struct {
		Msg string `json:"msg"`
		ID  uint64 `json:"id"`
	}{Msg: "planet created", ID: created.ID})
}

func (s *HTTPServer) PlanetUpdate(c echo.Context) error {
	id, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}

	req := PlanetReq{}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := s.catalog.PlanetUpdate(id, planetUpdates(&req))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, struct {
		Msg    string     `json:"msg"`
		Planet PlanetResp `json:"planet"`
	}{Msg: "planet updated", Planet: newPlanetResp(updated)})
}

func (s *HTTPServer) PlanetDelete(c echo.Context) error {
	id, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}

	if err := s.catalog.PlanetDelete(id); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, MsgResp{Msg: "planet deleted"})
}
