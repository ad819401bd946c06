package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/evnav/evnav/pkg/geo"
	"github.com/evnav/evnav/pkg/http/router/routerhelper"
	"github.com/evnav/evnav/pkg/http/usecases"
	"github.com/evnav/evnav/pkg/util"
	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubService struct {
	result *usecases.RouteResult
	err    error
}

func (s *stubService) ShortestPath(origLat, origLon, dstLat, dstLon float64,
	criterion, modelKey string) (*usecases.RouteResult, error) {
	return s.result, s.err
}

func newTestRouter(service RoutingService) *httprouter.Router {
	router := httprouter.New()
	group := routerhelper.NewRouteGroup(router, "/api")
	New(service, zap.NewNop()).Routes(group)
	return router
}

func okResult() *usecases.RouteResult {
	return &usecases.RouteResult{
		Coordinates: []geo.Coordinate{
			geo.NewCoordinate(39.7540, -104.9950),
			geo.NewCoordinate(39.7585, -104.9862),
		},
		Polyline:    "_p~iF~ps|U",
		TotalWeight: 820.5,
		WeightUnit:  "meters",
	}
}

func TestComputeRoutesGet(t *testing.T) {
	router := newTestRouter(&stubService{result: okResult()})

	req := httptest.NewRequest(http.MethodGet,
		"/api/computeRoutes?origin_lat=39.754372&origin_lon=-104.994300"+
			"&destination_lat=39.779098&destination_lon=-104.951241&criterion=distance", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data struct {
			Path        []geo.Coordinate `json:"path"`
			TotalWeight float64          `json:"total_weight"`
			WeightUnit  string           `json:"weight_unit"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data.Path, 2)
	require.Equal(t, 820.5, body.Data.TotalWeight)
	require.Equal(t, "meters", body.Data.WeightUnit)
}

func TestComputeRoutesGetMissingParam(t *testing.T) {
	router := newTestRouter(&stubService{result: okResult()})

	req := httptest.NewRequest(http.MethodGet, "/api/computeRoutes?origin_lat=39.75", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestComputeRoutesPost(t *testing.T) {
	router := newTestRouter(&stubService{result: okResult()})

	body := `{"origin_lat": 39.754372, "origin_lon": -104.994300,
		"destination_lat": 39.779098, "destination_lon": -104.951241,
		"criterion": "energy", "model_key": "Electric"}`
	req := httptest.NewRequest(http.MethodPost, "/api/computeRoutes", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestComputeRoutesPostRejectsBadBody(t *testing.T) {
	router := newTestRouter(&stubService{result: okResult()})

	req := httptest.NewRequest(http.MethodPost, "/api/computeRoutes", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestComputeRoutesPostRejectsBadCriterion(t *testing.T) {
	router := newTestRouter(&stubService{result: okResult()})

	body := `{"origin_lat": 39.75, "origin_lon": -104.99,
		"destination_lat": 39.77, "destination_lon": -104.95, "criterion": "teleport"}`
	req := httptest.NewRequest(http.MethodPost, "/api/computeRoutes", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestComputeRoutesMapsNotFound(t *testing.T) {
	router := newTestRouter(&stubService{
		err: util.WrapErrorf(nil, util.ErrNotFound, "no path between the resolved nodes"),
	})

	req := httptest.NewRequest(http.MethodGet,
		"/api/computeRoutes?origin_lat=39.75&origin_lon=-104.99"+
			"&destination_lat=39.90&destination_lon=-104.80", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}
