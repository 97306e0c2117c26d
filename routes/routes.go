// SPDX-License-Identifier: GPL-3.0-only

package routes

import (
	"geo-lookup-server/commons"
	"geo-lookup-server/handlers"
	"geo-lookup-server/metrics"
	"geo-lookup-server/middlewares"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, h *handlers.GeoHandler, recorder *metrics.Recorder) {
	commons.Logger.Debug("Registering routes")
	conditional := middlewares.ConditionalGetMiddleware(h.Index.Digest())

	e.GET("/", h.RootHandler)
	e.GET("/countries", h.GetCountriesHandler, conditional)
	e.GET("/states/:countryId", h.GetStatesHandler, conditional)
	e.GET("/cities/:stateId", h.GetCitiesHandler, conditional)
	if recorder != nil {
		e.GET("/metrics", echo.WrapHandler(recorder.Handler()))
	}
	commons.Logger.Info("Routes registered successfully")
}
