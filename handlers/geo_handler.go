// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"errors"
	"net/http"

	"geo-lookup-server/geodata"
	"geo-lookup-server/metrics"

	"github.com/labstack/echo/v4"
)

const (
	msgRunning              = "API is running..."
	msgCountriesUnavailable = "Countries data not found"
	msgStatesNotFound       = "Country or states not found"
	msgCitiesNotFound       = "State or cities not found"
)

// GeoHandler serves the lookups of one Index. Metrics may be nil.
type GeoHandler struct {
	Index   *geodata.Index
	Metrics *metrics.Recorder
}

func NewGeoHandler(idx *geodata.Index, recorder *metrics.Recorder) *GeoHandler {
	return &GeoHandler{Index: idx, Metrics: recorder}
}

// RootHandler godoc
// @Summary      Health check
// @Description  Confirms the API process is up.
// @Tags         health
// @Produce      plain
// @Success      200 {string} string "API is running..."
// @Router       / [get]
func (h *GeoHandler) RootHandler(c echo.Context) error {
	return c.String(http.StatusOK, msgRunning)
}

// GetCountriesHandler godoc
// @Summary      List countries
// @Description  Lists every country of the dataset as {id, name}, in dataset order.
// @Tags         countries
// @Produce      json
// @Success      200 {array}   geodata.Place  "Countries"
// @Failure      500 {object}  echo.HTTPError "Countries data not found"
// @Router       /countries [get]
func (h *GeoHandler) GetCountriesHandler(c echo.Context) error {
	logger := c.Logger()

	countries, err := h.Index.ListCountries()
	if err != nil {
		logger.Error("Countries data not found: ", err)
		h.Metrics.ObserveLookup(metrics.OperationCountries, metrics.ResultUnavailable)
		return &echo.HTTPError{
			Code:    http.StatusInternalServerError,
			Message: msgCountriesUnavailable,
		}
	}

	h.Metrics.ObserveLookup(metrics.OperationCountries, metrics.ResultOK)
	return c.JSON(http.StatusOK, countries)
}

// GetStatesHandler godoc
// @Summary      List states of a country
// @Description  Lists the states owned by a country as {id, name}, in dataset order.
// @Tags         states
// @Produce      json
// @Param        countryId path int true "Country ID"
// @Success      200 {array}   geodata.Place  "States"
// @Failure      404 {object}  echo.HTTPError "Country or states not found"
// @Router       /states/{countryId} [get]
func (h *GeoHandler) GetStatesHandler(c echo.Context) error {
	logger := c.Logger()
	raw := c.Param("countryId")

	var (
		states []geodata.Place
		err    = geodata.ErrNotFound
	)
	if countryID, ok := parseIDParam(raw); ok {
		states, err = h.Index.ListStates(countryID)
	}
	if errors.Is(err, geodata.ErrNotFound) {
		logger.Debugf("Country with ID %q or states not found", raw)
		h.Metrics.ObserveLookup(metrics.OperationStates, metrics.ResultNotFound)
		return &echo.HTTPError{
			Code:    http.StatusNotFound,
			Message: msgStatesNotFound,
		}
	}
	if err != nil {
		return err
	}

	h.Metrics.ObserveLookup(metrics.OperationStates, metrics.ResultOK)
	return c.JSON(http.StatusOK, states)
}

// GetCitiesHandler godoc
// @Summary      List cities of a state
// @Description  Lists the cities owned by a state as {id, name}, in dataset order. State IDs are unique across all countries.
// @Tags         cities
// @Produce      json
// @Param        stateId path int true "State ID"
// @Success      200 {array}   geodata.Place  "Cities"
// @Failure      404 {object}  echo.HTTPError "State or cities not found"
// @Router       /cities/{stateId} [get]
func (h *GeoHandler) GetCitiesHandler(c echo.Context) error {
	logger := c.Logger()
	raw := c.Param("stateId")

	var (
		cities []geodata.Place
		err    = geodata.ErrNotFound
	)
	if stateID, ok := parseIDParam(raw); ok {
		cities, err = h.Index.ListCities(stateID)
	}
	if errors.Is(err, geodata.ErrNotFound) {
		logger.Debugf("State with ID %q or cities not found", raw)
		h.Metrics.ObserveLookup(metrics.OperationCities, metrics.ResultNotFound)
		return &echo.HTTPError{
			Code:    http.StatusNotFound,
			Message: msgCitiesNotFound,
		}
	}
	if err != nil {
		return err
	}

	h.Metrics.ObserveLookup(metrics.OperationCities, metrics.ResultOK)
	return c.JSON(http.StatusOK, cities)
}
