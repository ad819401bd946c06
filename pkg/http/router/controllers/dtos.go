package controllers

import (
	"github.com/evnav/evnav/pkg/geo"
	"github.com/evnav/evnav/pkg/http/usecases"
)

type shortestPathRequest struct {
	OriginLat      float64 `json:"origin_lat" validate:"min=-90,max=90"`
	OriginLon      float64 `json:"origin_lon" validate:"min=-180,max=180"`
	DestinationLat float64 `json:"destination_lat" validate:"min=-90,max=90"`
	DestinationLon float64 `json:"destination_lon" validate:"min=-180,max=180"`
	Criterion      string  `json:"criterion" validate:"omitempty,oneof=distance time energy"`
	ModelKey       string  `json:"model_key" validate:"omitempty,max=128"`
}

type shortestPathResponse struct {
	Path        []geo.Coordinate `json:"path"`
	Polyline    string           `json:"polyline"`
	TotalWeight float64          `json:"total_weight"`
	WeightUnit  string           `json:"weight_unit"`
}

func NewShortestPathResponse(result *usecases.RouteResult) shortestPathResponse {
	return shortestPathResponse{
		Path:        result.Coordinates,
		Polyline:    result.Polyline,
		TotalWeight: result.TotalWeight,
		WeightUnit:  result.WeightUnit,
	}
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
