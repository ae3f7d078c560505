package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"leasing/config"
	"leasing/internal/delivery/http/response"
	"leasing/internal/delivery/http/validator"
	"leasing/internal/domain/entity"
	"leasing/internal/domain/repository"
	"leasing/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"go.uber.org/fx"
)

const (
	defaultListLimit = 100
	maxRadiusKm      = 500
)

// UnitHandlerParams holds dependencies for UnitHandler, injected by Fx.
type UnitHandlerParams struct {
	fx.In

	UnitUC usecase.UnitUsecase
	Config *config.Config
	Logger *slog.Logger
}

// UnitHandler holds dependencies for unit-related handlers
type UnitHandler struct {
	unitUC      usecase.UnitUsecase
	maxPageSize int
	logger      *slog.Logger
}

// NewUnitHandler is the constructor for UnitHandler
func NewUnitHandler(params UnitHandlerParams) *UnitHandler {
	return &UnitHandler{
		unitUC:      params.UnitUC,
		maxPageSize: params.Config.HTTP.MaxPageSize,
		logger:      params.Logger,
	}
}

// LocationRequest is the address and position of a unit
type LocationRequest struct {
	Address   string  `json:"address" validate:"required,max=200"`
	City      string  `json:"city" validate:"required,max=100"`
	State     string  `json:"state" validate:"required,max=50"`
	ZipCode   string  `json:"zip_code" validate:"required,max=10"`
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
}

func (r *LocationRequest) toEntity() entity.Location {
	return entity.Location{
		Address:   r.Address,
		City:      r.City,
		State:     r.State,
		Zip:       r.ZipCode,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
	}
}

// CreateUnitRequest represents the request body for creating a unit
type CreateUnitRequest struct {
	PropertyName string           `json:"property_name" validate:"required,max=200"`
	UnitNumber   string           `json:"unit_number" validate:"required,max=50"`
	Bedrooms     *int             `json:"bedrooms" validate:"required,min=0,max=10"`
	Bathrooms    *float64         `json:"bathrooms" validate:"required,min=0,max=10"`
	SquareFeet   int              `json:"square_feet" validate:"required,min=100,max=10000"`
	Price        *int             `json:"price" validate:"required,min=0,max=100000"`
	Amenities    []string         `json:"amenities" validate:"omitempty,max=50,dive,required,max=50"`
	Location     *LocationRequest `json:"location" validate:"required"`
	Images       []string         `json:"images" validate:"omitempty,max=20,dive,url"`
	Description  string           `json:"description" validate:"required,min=10,max=2000"`
	Status       string           `json:"status" validate:"omitempty,oneof=available pending leased"`
}

// UpdateUnitRequest represents a partial update; omitted fields are kept
type UpdateUnitRequest struct {
	PropertyName *string          `json:"property_name" validate:"omitempty,min=1,max=200"`
	UnitNumber   *string          `json:"unit_number" validate:"omitempty,min=1,max=50"`
	Bedrooms     *int             `json:"bedrooms" validate:"omitempty,min=0,max=10"`
	Bathrooms    *float64         `json:"bathrooms" validate:"omitempty,min=0,max=10"`
	SquareFeet   *int             `json:"square_feet" validate:"omitempty,min=100,max=10000"`
	Price        *int             `json:"price" validate:"omitempty,min=0,max=100000"`
	Amenities    *[]string        `json:"amenities" validate:"omitempty,max=50,dive,required,max=50"`
	Location     *LocationRequest `json:"location"`
	Images       *[]string        `json:"images" validate:"omitempty,max=20,dive,url"`
	Description  *string          `json:"description" validate:"omitempty,min=10,max=2000"`
	Status       *string          `json:"status" validate:"omitempty,oneof=available pending leased"`
}

func (r *UpdateUnitRequest) toPatch() *usecase.UnitPatch {
	patch := &usecase.UnitPatch{
		PropertyName: r.PropertyName,
		UnitNumber:   r.UnitNumber,
		Bedrooms:     r.Bedrooms,
		Bathrooms:    r.Bathrooms,
		SquareFeet:   r.SquareFeet,
		Price:        r.Price,
		Amenities:    r.Amenities,
		Images:       r.Images,
		Description:  r.Description,
	}
	if r.Location != nil {
		location := r.Location.toEntity()
		patch.Location = &location
	}
	if r.Status != nil {
		status := entity.UnitStatus(*r.Status)
		patch.Status = &status
	}

	return patch
}

// listUnitsQuery holds the validated query parameters of ListUnits
type listUnitsQuery struct {
	Skip     int      `json:"skip" validate:"min=0"`
	Limit    int      `json:"limit" validate:"min=1"`
	Status   string   `json:"status" validate:"omitempty,oneof=available pending leased"`
	Bedrooms *int     `json:"bedrooms" validate:"omitempty,min=0,max=10"`
	PriceMin *int     `json:"price_min" validate:"omitempty,min=0"`
	PriceMax *int     `json:"price_max" validate:"omitempty,min=0"`
	City     string   `json:"city" validate:"max=100"`
	Lat      *float64 `json:"lat" validate:"required_with=Lng RadiusKm,omitempty,latitude"`
	Lng      *float64 `json:"lng" validate:"required_with=Lat RadiusKm,omitempty,longitude"`
	RadiusKm *float64 `json:"radius_km" validate:"required_with=Lat Lng,omitempty,gt=0"`
}

// CreateUnit handles creating a unit
func (h *UnitHandler) CreateUnit(c echo.Context) error {
	var req CreateUnitRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid unit input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Unit validation failed", validator.FieldErrors(err))
	}

	input := &usecase.UnitInput{
		PropertyName: req.PropertyName,
		UnitNumber:   req.UnitNumber,
		Bedrooms:     *req.Bedrooms,
		Bathrooms:    *req.Bathrooms,
		SquareFeet:   req.SquareFeet,
		Price:        *req.Price,
		Amenities:    req.Amenities,
		Location:     req.Location.toEntity(),
		Images:       req.Images,
		Description:  req.Description,
		Status:       entity.UnitStatus(req.Status),
	}

	unit, err := h.unitUC.CreateUnit(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, unit)
}

// GetUnit handles retrieving a unit
func (h *UnitHandler) GetUnit(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid unit ID")
	}

	unit, err := h.unitUC.GetUnit(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, unit)
}

// ListUnits handles listing units with filters, highest score first
func (h *UnitHandler) ListUnits(c echo.Context) error {
	query, err := bindListUnitsQuery(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "Invalid query parameters")
	}

	if err := c.Validate(query); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Invalid query parameters", validator.FieldErrors(err))
	}
	if query.Limit > h.maxPageSize {
		return response.BadRequest(c, "VALIDATION_ERROR", "limit must not exceed "+strconv.Itoa(h.maxPageSize))
	}
	if query.RadiusKm != nil && *query.RadiusKm > maxRadiusKm {
		return response.BadRequest(c, "VALIDATION_ERROR", "radius_km must not exceed "+strconv.Itoa(maxRadiusKm))
	}

	page, err := h.unitUC.ListUnits(c.Request().Context(), query.toFilter())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.Page{
		Items:    page.Units,
		Total:    page.Total,
		Page:     page.Page,
		PageSize: page.PageSize,
	})
}

// UpdateUnit handles a partial update of a unit
func (h *UnitHandler) UpdateUnit(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid unit ID")
	}

	var req UpdateUnitRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid unit input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Unit validation failed", validator.FieldErrors(err))
	}

	unit, err := h.unitUC.UpdateUnit(c.Request().Context(), id, req.toPatch())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, unit)
}

// DeleteUnit handles deleting a unit
func (h *UnitHandler) DeleteUnit(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid unit ID")
	}

	if err := h.unitUC.DeleteUnit(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetListingQR renders the listing QR code as PNG
func (h *UnitHandler) GetListingQR(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid unit ID")
	}

	png, err := h.unitUC.GenerateListingQR(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

func bindListUnitsQuery(c echo.Context) (*listUnitsQuery, error) {
	query := &listUnitsQuery{Limit: defaultListLimit}

	var (
		bedrooms, priceMin, priceMax int
		lat, lng, radius             float64
	)
	err := echo.QueryParamsBinder(c).
		Int("skip", &query.Skip).
		Int("limit", &query.Limit).
		String("status", &query.Status).
		String("city", &query.City).
		Int("bedrooms", &bedrooms).
		Int("price_min", &priceMin).
		Int("price_max", &priceMax).
		Float64("lat", &lat).
		Float64("lng", &lng).
		Float64("radius_km", &radius).
		BindError()
	if err != nil {
		return nil, err
	}

	query.Bedrooms = presentOrNil(c, "bedrooms", bedrooms)
	query.PriceMin = presentOrNil(c, "price_min", priceMin)
	query.PriceMax = presentOrNil(c, "price_max", priceMax)
	query.Lat = presentOrNil(c, "lat", lat)
	query.Lng = presentOrNil(c, "lng", lng)
	query.RadiusKm = presentOrNil(c, "radius_km", radius)

	return query, nil
}

func (q *listUnitsQuery) toFilter() repository.UnitFilter {
	filter := repository.UnitFilter{
		Bedrooms: q.Bedrooms,
		PriceMin: q.PriceMin,
		PriceMax: q.PriceMax,
		City:     q.City,
		Offset:   q.Skip,
		Limit:    q.Limit,
	}
	if q.Status != "" {
		status := entity.UnitStatus(q.Status)
		filter.Status = &status
	}
	if q.Lat != nil && q.Lng != nil && q.RadiusKm != nil {
		filter.Near = &repository.GeoRadius{
			Center:   orb.Point{*q.Lng, *q.Lat},
			RadiusKm: *q.RadiusKm,
		}
	}

	return filter
}

func presentOrNil[T any](c echo.Context, name string, value T) *T {
	if c.QueryParam(name) == "" {
		return nil
	}

	return &value
}
