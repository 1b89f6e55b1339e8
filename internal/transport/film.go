package transport

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/holonet-labs/holocron-back/internal/db"
)

type (
	FilmReq struct {
		Title        *string `json:"title" validate:"required"`
		EpisodeID    *int64  `json:"episode_id" validate:"required"`
		Director     *string `json:"director" validate:"required"`
		Producer     *string `json:"producer" validate:"required"`
		ReleaseDate  *string `json:"release_date" validate:"required"`
		OpeningCrawl *string `json:"opening_crawl" validate:"required"`
		URL          *string `json:"url" validate:"required"`
		Description  *string `json:"description" validate:"required"`
	}

	FilmResp struct {
		ID           uint64  `json:"id"`
		Title        string  `json:"title"`
		EpisodeID    *int64  `json:"episode_id"`
		Director     *string `json:"director"`
		Producer     *string `json:"producer"`
		ReleaseDate  *string `json:"release_date"`
		OpeningCrawl *string `json:"opening_crawl"`
		URL          *string `json:"url"`
		Description  *string `json:"description"`
	}
)

func newFilmResp(m *db.Film) FilmResp {
	return FilmResp{
		ID:           m.ID,
		Title:        m.Title,
		EpisodeID:    m.EpisodeID,
		Director:     m.Director,
		Producer:     m.Producer,
		ReleaseDate:  m.ReleaseDate,
		OpeningCrawl: m.OpeningCrawl,
		URL:          m.URL,
		Description:  m.Description,
	}
}

func filmUpdates(req *FilmReq) map[string]interface{} {
	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.EpisodeID != nil {
		updates["episode_id"] = *req.EpisodeID
	}
	if req.Director != nil {
		updates["director"] = *req.Director
	}
	if req.Producer != nil {
		updates["producer"] = *req.Producer
	}
	if req.ReleaseDate != nil {
		updates["release_date"] = *req.ReleaseDate
	}
	if req.OpeningCrawl != nil {
		updates["opening_crawl"] = *req.OpeningCrawl
	}
	if req.URL != nil {
		updates["url"] = *req.URL
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	return updates
}

func (s *HTTPServer) FilmList(c echo.Context) error {
	films, err := s.catalog.FilmList()
	if err != nil {
		return toHTTPError(err)
	}

	resp := make([]FilmResp, len(films))
	for i := range films {
		resp[i] = newFilmResp(&films[i])
	}
	return c.JSON(http.StatusOK, struct {
		Msg   string     `json:"msg"`
		Films []FilmResp `json:"films"`
	}{Msg: "ok", Films: resp})
}

func (s *HTTPServer) FilmGet(c echo.Context) error {
	id, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}

	film, err := s.catalog.FilmGet(id)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, struct {
		Msg  string   `json:"msg"`
		Film FilmResp `json:"film"`
	}{Msg: "ok", Film: newFilmResp(film)})
}

func (s *HTTPServer) FilmCreate(c echo.Context) error {
	req := FilmReq{}
	if err := BindAndValidate(c, &req); err != nil {
		return err
	}

	model := db.Film{
		Title:        *req.Title,
		EpisodeID:    req.EpisodeID,
		Director:     req.Director,
		Producer:     req.Producer,
		ReleaseDate:  req.ReleaseDate,
		OpeningCrawl: req.OpeningCrawl,
		URL:          req.URL,
		Description:  req.Description,
	}

	created, err := s.catalog.FilmCreate(&model)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, struct {
		Msg string `json:"msg"`
		ID  uint64 `json:"id"`
	}{Msg: "film created", ID: created.ID})
}

func (s *HTTPServer) FilmUpdate(c echo.Context) error {
	id, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}

	req := FilmReq{}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := s.catalog.FilmUpdate(id, filmUpdates(&req))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, struct {
		Msg  string   `json:"msg"`
		Film FilmResp `json:"film"`
	}{Msg: "film updated", Film: newFilmResp(updated)})
}

func (s *HTTPServer) FilmDelete(c echo.Context) error {
	id, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}

	if err := s.catalog.FilmDelete(id); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, MsgResp{Msg: "film deleted"})
}
