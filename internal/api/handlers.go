package api

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	geojson "github.com/paulmach/go.geojson"

	"github.com/janrakshak/floodwatch/internal/domain"
	"github.com/janrakshak/floodwatch/internal/sweep"
)

// predictionView decorates a prediction with the dashboard color scheme for
// its headline risk level.
type predictionView struct {
	domain.PredictionResponse
	RiskColor     string `json:"risk_color"`
	RiskTextColor string `json:"risk_text_color"`
}

func newPredictionView(p domain.PredictionResponse) predictionView {
	level := p.MainPrediction.RiskLevel
	return predictionView{
		PredictionResponse: p,
		RiskColor:          level.Color(),
		RiskTextColor:      level.TextColor(),
	}
}

func (s *Server) handleHealth(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	upstream := "ok"
	if err := s.predictor.Health(ctx); err != nil {
		upstream = "unreachable"
	}
	return c.JSON(http.StatusOK, map[string]string{
		"status":   "healthy",
		"upstream": upstream,
	})
}

func (s *Server) handleReady(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	if err := s.snapshots.CheckReadiness(ctx); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"error":  err.Error(),
		})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ready"})
}

func (s *Server) handlePredictRegional(c echo.Context) error {
	location := c.Param("location")

	var (
		resp domain.PredictionResponse
		err  error
	)
	if c.QueryParam("weather") == "true" {
		resp, err = s.predictor.PredictRegionalWithWeather(c.Request().Context(), location)
	} else {
		resp, err = s.predictor.PredictRegional(c.Request().Context(), location)
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newPredictionView(resp))
}

type coordsRequest struct {
	Lat *float64 `query:"lat" validate:"required,gte=-90,lte=90"`
	Lon *float64 `query:"lon" validate:"required,gte=-180,lte=180"`
}

func (s *Server) handlePredictByCoords(c echo.Context) error {
	var req coordsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "lat and lon must be numbers")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	resp, err := s.predictor.PredictByCoords(c.Request().Context(), *req.Lat, *req.Lon)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newPredictionView(resp))
}

func (s *Server) handleCumulativeRainfall(c echo.Context) error {
	resp, err := s.predictor.PredictRegional(c.Request().Context(), c.Param("location"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{
		"location": c.Param("location"),
		"points":   domain.CumulativeRainfall(resp.DetailedForecast),
	})
}

func (s *Server) handleListLocations(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"locations": domain.AllLocations(),
	})
}

func (s *Server) handleLocationsGeoJSON(c echo.Context) error {
	fc := geojson.NewFeatureCollection()
	for _, loc := range domain.AllLocations() {
		f := geojson.NewPointFeature([]float64{loc.Lon, loc.Lat})
		f.SetProperty("name", loc.Name)
		f.SetProperty("state", loc.State)
		fc.AddFeature(f)
	}
	return c.JSON(http.StatusOK, fc)
}

func (s *Server) handleListStates(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"states": domain.States(),
	})
}

func (s *Server) handleStateLocations(c echo.Context) error {
	state := c.Param("state")
	cities := domain.LocationsByState(state)
	if len(cities) == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "unknown state: "+state)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"state":     state,
		"locations": cities,
	})
}

func (s *Server) handleSummary(c echo.Context) error {
	snap, ok := s.snapshots.Snapshot()
	if !ok {
		return sweep.ErrNoSnapshot
	}
	return c.JSON(http.StatusOK, snap)
}

type accuracyRequest struct {
	Predicted []domain.Event `json:"predicted" validate:"required"`
	Actual    []domain.Event `json:"actual" validate:"required"`
	PairBy    string         `json:"pair_by" validate:"omitempty,oneof=position date"`
}

func (s *Server) handleAccuracy(c echo.Context) error {
	var req accuracyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid accuracy request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	strategy := domain.PairingStrategy(req.PairBy)
	if strategy == "" {
		strategy = domain.PairByPosition
	}

	report, err := domain.EvaluateAccuracy(req.Predicted, req.Actual, strategy)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report)
}

func (s *Server) handleCacheClear(c echo.Context) error {
	if s.cache == nil {
		return c.JSON(http.StatusOK, map[string]any{"enabled": false, "removed": 0})
	}
	removed := s.cache.Invalidate()
	s.logger.Info("prediction cache cleared", "removed", removed)
	return c.JSON(http.StatusOK, map[string]any{"enabled": true, "removed": removed})
}
