package transport

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/holonet-labs/holocron-back/internal/db"
)

type (
	VehicleReq struct {
		Name                 *string `json:"name" validate:"required"`
		Model                *string `json:"model" validate:"required"`
		VehicleClass         *string `json:"vehicle_class" validate:"required"`
		Manufacturer         *string `json:"manufacturer" validate:"required"`
		CostInCredits        *int64  `json:"cost_in_credits" validate:"required"`
		Length               *string `json:"length" validate:"required"`
		Crew                 *string `json:"crew" validate:"required"`
		Passengers           *string `json:"passengers" validate:"required"`
		MaxAtmospheringSpeed *string `json:"max_atmosphering_speed" validate:"required"`
		CargoCapacity        *int64  `json:"cargo_capacity" validate:"required"`
		Consumables          *string `json:"consumables" validate:"required"`
		URL                  *string `json:"url" validate:"required"`
		Description          *string `json:"description" validate:"required"`
	}

	VehicleResp struct {
		ID                   uint64  `json:"id"`
		Name                 string  `json:"name"`
		Model                *string `json:"model"`
		VehicleClass         *string `json:"vehicle_class"`
		Manufacturer         *string `json:"manufacturer"`
		CostInCredits        *int64  `json:"cost_in_credits"`
		Length               *string `json:"length"`
		Crew                 *string `json:"crew"`
		Passengers           *string `json:"passengers"`
		MaxAtmospheringSpeed *string `json:"max_atmosphering_speed"`
		CargoCapacity        *int64  `json:"cargo_capacity"`
		Consumables          *string `json:"consumables"`
		URL                  *string `json:"url"`
		Description          *string `json:"description"`
	}
)

func newVehicleResp(m *db.Vehicle) VehicleResp {
	return VehicleResp{
		ID:                   m.ID,
		Name:                 m.Name,
		Model:                m.Model,
		VehicleClass:         m.VehicleClass,
		Manufacturer:         m.Manufacturer,
		CostInCredits:        m.CostInCredits,
		Length:               m.Length,
		Crew:                 m.Crew,
		Passengers:           m.Passengers,
		MaxAtmospheringSpeed: m.MaxAtmospheringSpeed,
		CargoCapacity:        m.CargoCapacity,
		Consumables:          m.Consumables,
		URL:                  m.URL,
		Description:          m.Description,
	}
}

func vehicleUpdates(req *VehicleReq) map[string]interface{} {
	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Model != nil {
		updates["model"] = *req.Model
	}
	if req.VehicleClass != nil {
		updates["vehicle_class"] = *req.VehicleClass
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

func (s *HTTPServer) VehicleList(c echo.Context) error {
	vehicles, err := s.catalog.VehicleList()
	if err != nil {
		return toHTTPError(err)
	}

	resp := make([]VehicleResp, len(vehicles))
	for i := range vehicles {
		resp[i] = newVehicleResp(&vehicles[i])
	}
	return c.JSON(http.StatusOK, struct {
		Msg      string        `json:"msg"`
		Vehicles []VehicleResp `json:"vehicles"`
	}{Msg: "ok", Vehicles: resp})
}

func (s *HTTPServer) VehicleGet(c echo.Context) error {
	id, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}

	vehicle, err := s.catalog.VehicleGet(id)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, struct {
		Msg     string      `json:"msg"`
		Vehicle VehicleResp `json:"vehicle"`
	}{Msg: "ok", Vehicle: newVehicleResp(vehicle)})
}

func (s *HTTPServer) VehicleCreate(c echo.Context) error {
	req := VehicleReq{}
	if err := BindAndValidate(c, &req); err != nil {
		return err
	}

	model := db.Vehicle{
		Name:                 *req.Name,
		Model:                req.Model,
		VehicleClass:         req.VehicleClass,
		Manufacturer:         req.Manufacturer,
		CostInCredits:        req.CostInCredits,
		Length:               req.Length,
		Crew:                 req.Crew,
		Passengers:           req.Passengers,
		MaxAtmospheringSpeed: req.MaxAtmospheringSpeed,
		CargoCapacity:        req.CargoCapacity,
		Consumables:          req.Consumables,
		URL:                  req.URL,
		Description:          req.Description,
	}

	created, err := s.catalog.VehicleCreate(&model)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, struct {
		Msg string `json:"msg"`
		ID  uint64 `json:"id"`
	}{Msg: "vehicle created", ID: created.ID})
}

func (s *HTTPServer) VehicleUpdate(c echo.Context) error {
	id, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}

	req := VehicleReq{}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := s.catalog.VehicleUpdate(id, vehicleUpdates(&req))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, struct {
		Msg     string      `json:"msg"`
		Vehicle VehicleResp `json:"vehicle"`
	}{Msg: "vehicle updated", Vehicle: newVehicleResp(updated)})
}

func (s *HTTPServer) VehicleDelete(c echo.Context) error {
	id, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}

	if err := s.catalog.VehicleDelete(id); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, MsgResp{Msg: "vehicle deleted"})
}
