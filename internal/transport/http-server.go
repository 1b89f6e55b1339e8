package transport

import (
	"context"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/holonet-labs/holocron-back/internal/config"
	"github.com/holonet-labs/holocron-back/internal/service"
)

type (
	CustomValidator struct {
		validator *validator.Validate
	}

	MsgResp struct {
		Msg string `json:"msg"`
	}

	HTTPServer struct {
		catalog   *service.Catalog
		account   *service.Account
		favourite *service.Favourite
		logger    *zap.SugaredLogger
	}
)

func NewHTTPServer(lc fx.Lifecycle, cfg *config.Config, catalog *service.Catalog, account *service.Account, favourite *service.Favourite, logger *zap.SugaredLogger) *HTTPServer {
	instance := HTTPServer{
		catalog:   catalog,
		account:   account,
		favourite: favourite,
		logger:    logger,
	}
	e := instance.router()

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				listen := cfg.Host + ":" + cfg.Port
				if err := e.Start(listen); err != nil && err != http.ErrServerClosed {
					e.Logger.Fatal("shutting down the server")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping HTTP server.")
			return e.Shutdown(ctx)
		},
	})

	return &instance
}

func (s *HTTPServer) router() *echo.Echo {
	e := echo.New()

	userG := e.Group("/user")
	userG.GET("", s.UserList)
	userG.POST("", s.UserCreate)
	userG.GET("/:id", s.UserGet)
	userG.PUT("/:id", s.UserUpdate)
	userG.DELETE("/:id", s.UserDelete)
	userG.GET("/:id/favourites", s.FavouriteList)
	userG.DELETE("/:id/favourites/:fid", s.FavouriteDelete)

	e.POST("/login", s.Login)
	e.POST("/favourite", s.FavouriteAdd)

	personG := e.Group("/person")
	personG.GET("", s.PersonList)
	personG.POST("", s.PersonCreate)
	personG.GET("/:id", s.PersonGet)
	personG.PUT("/:id", s.PersonUpdate)
	personG.DELETE("/:id", s.PersonDelete)

	planetG := e.Group("/planet")
	planetG.GET("", s.PlanetList)
	planetG.POST("", s.PlanetCreate)
	planetG.GET("/:id", s.PlanetGet)
	planetG.PUT("/:id", s.PlanetUpdate)
	planetG.DELETE("/:id", s.PlanetDelete)

	filmG := e.Group("/film")
	filmG.GET("", s.FilmList)
	filmG.POST("", s.FilmCreate)
	filmG.GET("/:id", s.FilmGet)
	filmG.PUT("/:id", s.FilmUpdate)
	filmG.DELETE("/:id", s.FilmDelete)

	starshipG := e.Group("/starship")
	starshipG.GET("", s.StarshipList)
	starshipG.POST("", s.StarshipCreate)
	starshipG.GET("/:id", s.StarshipGet)
	starshipG.PUT("/:id", s.StarshipUpdate)
	starshipG.DELETE("/:id", s.StarshipDelete)

	vehicleG := e.Group("/vehicle")
	vehicleG.GET("", s.VehicleList)
	vehicleG.POST("", s.VehicleCreate)
	vehicleG.GET("/:id", s.VehicleGet)
	vehicleG.PUT("/:id", s.VehicleUpdate)
	vehicleG.DELETE("/:id", s.VehicleDelete)

	e.DELETE("/delete_all", s.DeleteAll)

	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })

	e.Use(middleware.CORS())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Use(s.TokenMiddleware)

	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	e.Validator = &CustomValidator{validator: v}

	echo.NotFoundHandler = func(c echo.Context) error {
		return c.NoContent(http.StatusNotFound)
	}

	return e
}

// TokenMiddleware resolves an X-Token header into the request context when
// one is sent. No route requires it; unknown or absent tokens pass through.
func (s *HTTPServer) TokenMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := ""
		for key, values := range c.Request().Header {
			if strings.ToLower(key) == "x-token" {
				token = values[0]
				break
			}
		}
		if token != "" {
			user, err := s.account.UserByToken(token)
			if err == nil {
				c.Set("user", user)
			}
		}
		return next(c)
	}
}

////////

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func BindAndValidate(c echo.Context, v interface{}) error {
	var err error
	if err = c.Bind(v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err = c.Validate(v); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("missing field: %s", fieldErrs[0].Field()))
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func GetParam(c echo.Context, name string) (string, error) {
	value := c.Param(name)
	if value == "" {
		return "", echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("invalid path param '%s'", name))
	}
	return value, nil
}

func GetAndParseParam(c echo.Context, name string) (uint64, error) {
	v, e := GetParam(c, name)
	if e != nil {
		return 0, e
	}
	vv, e := strconv.ParseUint(v, 10, 64)
	if e != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("invalid path param '%s'", name))
	}
	return vv, nil
}

func toHTTPError(err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrDuplicateKey),
		errors.Is(err, service.ErrDuplicateFavourite),
		errors.Is(err, service.ErrInvalidKind):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrLoginPasswordDoesNotMatch):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	return err
}
