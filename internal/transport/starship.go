package transport

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/holonet-labs/holocron-back/internal/db"
)

type (
	StarshipReq struct {
		Name                 *string `json:"name" validate:"required"`
		Model                *string `json:"model" validate:"required"`
		StarshipClass        *string `json:"starship_class" validate:"required"`
		Manufacturer         *string `json:"manufacturer" validate:"required"`
		CostInCredits        *int64  `json:"cost_in_credits" validate:"required"`
		Length               *int64  `json:"length" validate:"required"`
		Crew                 *string `json:"crew" validate:"required"`
		Passengers           *string `json:"passengers" validate:"required"`
		MaxAtmospheringSpeed *string `json:"max_atmosphering_speed" validate:"required"`
		HyperdriveRating     *string `json:"hyperdrive_rating" validate:"required"`
		MGLT                 *int64  `json:"MGLT" validate:"required"`
		CargoCapacity        *int64  `json:"cargo_capacity" validate:"required"`
		Consumables          *string `json:"consumables" validate:"required"`
		URL                  *string `json:"url" validate:"required"`
		Description          *string `json:"description" validate:"required"`
	}

	StarshipResp struct {
		ID                   uint64  `json:"id"`
		Name                 string  `json:"name"`
		Model                *string `json:"model"`
		StarshipClass        *string `json:"starship_class"`
		Manufacturer         *string `json:"manufacturer"`
		CostInCredits        *int64  `json:"cost_in_credits"`
		Length               *int64  `json:"length"`
		Crew                 *string `json:"crew"`
		Passengers           *string `json:"passengers"`
		MaxAtmospheringSpeed *string `json:"max_atmosphering_speed"`
		HyperdriveRating     *string `json:"hyperdrive_rating"`
		MGLT                 *int64  `json:"MGLT"`
		CargoCapacity        *int64  `json:"cargo_capacity"`
		Consumables          *string `json:"consumables"`
		URL                  *string `json:"url"`
		Description          *string `json:"description"`
	}
)

func newStarshipResp(m *db.Starship) StarshipResp {
	return StarshipResp{
		ID:                   m.ID,
		Name:                 m.Name,
		Model:                m.Model,
		StarshipClass:        m.StarshipClass,
		Manufacturer:         m.Manufacturer,
		CostInCredits:        m.CostInCredits,
		Length:               m.Length,
		Crew:                 m.Crew,
		Passengers:           m.Passengers,
		MaxAtmospheringSpeed: m.MaxAtmospheringSpeed,
		HyperdriveRating:     m.HyperdriveRating,
		MGLT:                 m.MGLT,
		CargoCapacity:        m.CargoCapacity,
		Consumables:          m.Consumables,
		URL:                  m.URL,
		Description:          m.Description,
	}
}

func starshipUpdates(req *StarshipReq) map[string]interface{} {
	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Model != nil {
		updates["model"] = *req.Model
	}
	if req.StarshipClass != nil {
		updates["starship_class"] = *req.StarshipClass
	}
	if req.Manufacturer != nil {
		updates["manufacturer"] = *req.Manufacturer
	}
	if req.CostInCredits != nil {
		updates["cost_in_credits"] = *req.CostInCredits
	}
	if req.Length != nil {
		updates["length"] = *req.Length
	}
	if req.Crew != nil {
		updates["crew"] = *req.Crew
	}
	if req.Passengers != nil {
		updates["passengers"] = *req.Passengers
	}
	if req.MaxAtmospheringSpeed != nil {
		updates["max_atmosphering_speed"] = *req.MaxAtmospheringSpeed
	}
	if req.HyperdriveRating != nil {
		updates["hyperdrive_rating"] = *req.HyperdriveRating
	}
	if req.MGLT != nil {
		updates["mglt"] = *req.MGLT
	}
	if req.CargoCapacity != nil {
		updates["cargo_capacity"] = *req.CargoCapacity
	}
	if req.Consumables != nil {
		updates["consumables"] = *req.Consumables
	}
	if req.URL != nil {
		updates["url"] = *req.URL
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	return updates
}

func (s *HTTPServer) StarshipList(c echo.Context) error {
	starships, err := s.catalog.StarshipList()
	if err != nil {
		return toHTTPError(err)
	}

	resp := make([]StarshipResp, len(starships))
	for i := range starships {
		resp[i] = newStarshipResp(&starships[i])
	}
	return c.JSON(http.StatusOK, struct {
		Msg       string         `json:"msg"`
		Starships []StarshipResp `json:"starships"`
	}{Msg: "ok", Starships: resp})
}

func (s *HTTPServer) StarshipGet(c echo.Context) error {
	id, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}

	starship, err := s.catalog.StarshipGet(id)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, struct {
		Msg      string       `json:"msg"`
		Starship StarshipResp `json:"starship"`
	}{Msg: "ok", Starship: newStarshipResp(starship)})
}

func (s *HTTPServer) StarshipCreate(c echo.Context) error {
	req := StarshipReq{}
	if err := BindAndValidate(c, &req); err != nil {
		return err
	}

	model := db.Starship{
		Name:                 *req.Name,
		Model:                req.Model,
		StarshipClass:        req.StarshipClass,
		Manufacturer:         req.Manufacturer,
		CostInCredits:        req.CostInCredits,
		Length:               req.Length,
		Crew:                 req.Crew,
		Passengers:           req.Passengers,
		MaxAtmospheringSpeed: req.MaxAtmospheringSpeed,
		HyperdriveRating:     req.HyperdriveRating,
		MGLT:                 req.MGLT,
		CargoCapacity:        req.CargoCapacity,
		Consumables:          req.Consumables,
		URL:                  req.URL,
		Description:          req.Description,
	}

	created, err := s.catalog.StarshipCreate(&model)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, struct {
		Msg string `json:"msg"`
		ID  uint64 `json:"id"`
	}{Msg: "starship created", ID: created.ID})
}

func (s *HTTPServer) StarshipUpdate(c echo.Context) error {
	id, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}

	req := StarshipReq{}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := s.catalog.StarshipUpdate(id, starshipUpdates(&req))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, struct {
		Msg      string       `json:"msg"`
		Starship StarshipResp `json:"starship"`
	}{Msg: "starship updated", Starship: newStarshipResp(updated)})
}

func (s *HTTPServer) StarshipDelete(c echo.Context) error {
	id, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}

	if err := s.catalog.StarshipDelete(id); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, MsgResp{Msg: "starship deleted"})
}
