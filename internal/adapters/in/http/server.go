// Package http exposes the shipment tracking API over HTTP using Echo.
// Handlers stay thin: they bind and validate the transport schemas, call the
// command or query handlers, and translate domain errors to status codes.
package http

import (
	"errors"
	"net/http"

	"shipments/internal/core/application/usecases/commands"
	"shipments/internal/core/application/usecases/queries"
	"shipments/internal/pkg/errs"
	"shipments/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createShipmentHandler commands.CreateShipmentCommandHandler
	recordMovementHandler commands.RecordMovementCommandHandler

	// Query handlers
	getShipmentHandler        queries.GetShipmentByTrackingNumberQueryHandler
	getMovementHistoryHandler queries.GetMovementHistoryQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createShipmentHandler commands.CreateShipmentCommandHandler,
	recordMovementHandler commands.RecordMovementCommandHandler,
	getShipmentHandler queries.GetShipmentByTrackingNumberQueryHandler,
	getMovementHistoryHandler queries.GetMovementHistoryQueryHandler,
) *Server {
	return &Server{
		createShipmentHandler:     createShipmentHandler,
		recordMovementHandler:     recordMovementHandler,
		getShipmentHandler:        getShipmentHandler,
		getMovementHistoryHandler: getMovementHistoryHandler,
	}
}

// RegisterRoutes attaches all API routes to the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewValidator()

	e.GET("/health", s.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")
	api.POST("/shipments", s.CreateShipment)
	api.GET("/shipments/:trackingNumber", s.GetShipment)
	api.POST("/shipments/:trackingNumber/movements", s.RecordMovement)
	api.GET("/shipments/:trackingNumber/movements", s.GetMovementHistory)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateShipment handles POST /api/v1/shipments - registers a new shipment
// and returns its tracking number together with the printable label.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var req createShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}
	if err := ctx.Validate(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	cmd, err := commands.NewCreateShipmentCommand(
		contactData(req.Sender),
		contactData(req.Receiver),
		commands.PackageData{
			HeightCm: req.Package.HeightCm,
			WidthCm:  req.Package.WidthCm,
			LengthCm: req.Package.LengthCm,
			WeightKg: req.Package.WeightKg,
		},
		req.DeclaredValue,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	response, err := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	shipmentsCreatedTotal.Inc()
	return ctx.JSON(http.StatusCreated, createShipmentResponse{
		TrackingNumber: response.TrackingNumber,
		LabelPDF:       response.Label,
	})
}

// RecordMovement handles POST /api/v1/shipments/:trackingNumber/movements -
// records a tracking event and advances the shipment's status.
func (s *Server) RecordMovement(ctx echo.Context) error {
	var req recordMovementRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}
	if err := ctx.Validate(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	cmd, err := commands.NewRecordMovementCommand(
		ctx.Param("trackingNumber"), req.BranchID, req.RouteID, req.Status, req.Location)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	if err = s.recordMovementHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	movementsRecordedTotal.WithLabelValues(req.Status).Inc()
	return ctx.NoContent(http.StatusNoContent)
}

// GetShipment handles GET /api/v1/shipments/:trackingNumber.
func (s *Server) GetShipment(ctx echo.Context) error {
	query, err := queries.NewGetShipmentByTrackingNumberQuery(ctx.Param("trackingNumber"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	result, err := s.getShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := shipmentResponse{
		TrackingNumber:      result.TrackingNumber,
		Status:              result.Status,
		SenderName:          result.SenderName,
		ReceiverName:        result.ReceiverName,
		HeightCm:            result.HeightCm,
		WidthCm:             result.WidthCm,
		LengthCm:            result.LengthCm,
		WeightKg:            result.WeightKg,
		DeclaredValue:       result.DeclaredValue,
		CreatedAt:           result.CreatedAt,
		EstimatedDeliveryAt: result.EstimatedDeliveryAt,
	}
	if last := result.LastMovement; last != nil {
		response.LastMovement = &movementResponse{
			BranchID:   last.BranchID,
			RouteID:    last.RouteID,
			Status:     last.Status,
			Location:   last.Location,
			OccurredAt: last.OccurredAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetMovementHistory handles GET /api/v1/shipments/:trackingNumber/movements.
func (s *Server) GetMovementHistory(ctx echo.Context) error {
	query, err := queries.NewGetMovementHistoryQuery(ctx.Param("trackingNumber"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	history, err := s.getMovementHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]movementResponse, len(history))
	for i, event := range history {
		response[i] = movementResponse{
			BranchID:   event.BranchID,
			RouteID:    event.RouteID,
			Status:     event.Status,
			Location:   event.Location,
			OccurredAt: event.OccurredAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// writeError maps application errors to HTTP status codes. Validation
// failures are client errors; unknown tracking numbers are 404; a label
// generation failure after the shipment was persisted is a server error.
func (s *Server) writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, commands.ErrLabelGeneration):
		labelGenerationErrorsTotal.Inc()
		log := logger.Get()
		log.Error().Err(err).Msg("label generation failed after persistence")
		return ctx.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		log := logger.Get()
		log.Error().Err(err).Msg("request failed")
		return ctx.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func contactData(req contactRequest) commands.ContactData {
	return commands.ContactData{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		UserID:    req.UserID,
		Address: commands.AddressData{
			Street:       req.Address.Street,
			Number:       req.Address.Number,
			City:         req.Address.City,
			State:        req.Address.State,
			Country:      req.Address.Country,
			PostalCode:   req.Address.PostalCode,
			Municipality: req.Address.Municipality,
			Borough:      req.Address.Borough,
			Neighborhood: req.Address.Neighborhood,
			Subdivision:  req.Address.Subdivision,
		},
	}
}
