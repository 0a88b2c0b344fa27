package errors

import "net/http"

var (
	ErrDateOutOfRange = New(
		"DATE_OUT_OF_RANGE",
		"Selected date is outside the dataset coverage",
		http.StatusBadRequest,
	)

	ErrInvalidMonth = New(
		"INVALID_MONTH",
		"Month must be between 1 and 12",
		http.StatusBadRequest,
	)

	ErrRegionNotFound = New(
		"REGION_NOT_FOUND",
		"Region not found",
		http.StatusNotFound,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidBoundingBox = New(
		"INVALID_BOUNDING_BOX",
		"Invalid bounding box: min must not exceed max",
		http.StatusBadRequest,
	)

	ErrDatasetError = New(
		"DATASET_ERROR",
		"Dataset read failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrMapboxError = New(
		"MAPBOX_ERROR",
		"Map rendering service request failed",
		http.StatusBadGateway,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
