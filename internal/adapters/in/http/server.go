// Package http exposes the application's use cases over a JSON API.
package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"jastip/internal/core/application/usecases/commands"
	"jastip/internal/core/application/usecases/queries"
	"jastip/internal/core/domain/model/batch"
	"jastip/internal/core/domain/model/customer"
	"jastip/internal/core/domain/model/kernel"
	"jastip/internal/core/domain/model/parcel"
	"jastip/internal/core/ports"
	"jastip/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createCustomerHandler     commands.CreateCustomerCommandHandler
	provisionCustomerHandler  commands.ProvisionCustomerCommandHandler
	updateCustomerHandler     commands.UpdateCustomerProfileCommandHandler
	lockCustomerHandler       commands.LockCustomerAddressCommandHandler
	deleteCustomerHandler     commands.DeleteCustomerCommandHandler
	submitPreAlertHandler     commands.SubmitPreAlertCommandHandler
	receiveParcelHandler      commands.ReceiveParcelCommandHandler
	markParcelPaidHandler     commands.MarkParcelPaidCommandHandler
	createBatchHandler        commands.CreateBatchCommandHandler
	addParcelToBatchHandler   commands.AddParcelToBatchCommandHandler
	advanceBatchStatusHandler commands.AdvanceBatchStatusCommandHandler

	// Query handlers
	getCustomersHandler       queries.GetCustomersQueryHandler
	getCustomerParcelsHandler queries.GetCustomerParcelsQueryHandler
	getExpectedParcelsHandler queries.GetExpectedParcelsQueryHandler
	getBatchesHandler         queries.GetBatchesQueryHandler
	getBatchManifestHandler   queries.GetBatchManifestQueryHandler
	getCustomerProfileHandler queries.GetCustomerProfileQueryHandler

	identityProvider ports.IdentityProvider
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createCustomerHandler commands.CreateCustomerCommandHandler,
	provisionCustomerHandler commands.ProvisionCustomerCommandHandler,
	updateCustomerHandler commands.UpdateCustomerProfileCommandHandler,
	lockCustomerHandler commands.LockCustomerAddressCommandHandler,
	deleteCustomerHandler commands.DeleteCustomerCommandHandler,
	submitPreAlertHandler commands.SubmitPreAlertCommandHandler,
	receiveParcelHandler commands.ReceiveParcelCommandHandler,
	markParcelPaidHandler commands.MarkParcelPaidCommandHandler,
	createBatchHandler commands.CreateBatchCommandHandler,
	addParcelToBatchHandler commands.AddParcelToBatchCommandHandler,
	advanceBatchStatusHandler commands.AdvanceBatchStatusCommandHandler,
	getCustomersHandler queries.GetCustomersQueryHandler,
	getCustomerParcelsHandler queries.GetCustomerParcelsQueryHandler,
	getExpectedParcelsHandler queries.GetExpectedParcelsQueryHandler,
	getBatchesHandler queries.GetBatchesQueryHandler,
	getBatchManifestHandler queries.GetBatchManifestQueryHandler,
	getCustomerProfileHandler queries.GetCustomerProfileQueryHandler,
	identityProvider ports.IdentityProvider,
) *Server {
	return &Server{
		createCustomerHandler:     createCustomerHandler,
		provisionCustomerHandler:  provisionCustomerHandler,
		updateCustomerHandler:     updateCustomerHandler,
		lockCustomerHandler:       lockCustomerHandler,
		deleteCustomerHandler:     deleteCustomerHandler,
		submitPreAlertHandler:     submitPreAlertHandler,
		receiveParcelHandler:      receiveParcelHandler,
		markParcelPaidHandler:     markParcelPaidHandler,
		createBatchHandler:        createBatchHandler,
		addParcelToBatchHandler:   addParcelToBatchHandler,
		advanceBatchStatusHandler: advanceBatchStatusHandler,
		getCustomersHandler:       getCustomersHandler,
		getCustomerParcelsHandler: getCustomerParcelsHandler,
		getExpectedParcelsHandler: getExpectedParcelsHandler,
		getBatchesHandler:         getBatchesHandler,
		getBatchManifestHandler:   getBatchManifestHandler,
		getCustomerProfileHandler: getCustomerProfileHandler,
		identityProvider:          identityProvider,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	api.POST("/customers", s.CreateCustomer)
	api.GET("/customers", s.GetCustomers)
	api.PATCH("/customers/:id", s.UpdateCustomer)
	api.DELETE("/customers/:id", s.DeleteCustomer)
	api.POST("/customers/:id/lock", s.LockCustomerAddress)

	api.POST("/parcels/prealert", s.SubmitPreAlert)
	api.GET("/parcels/expected", s.GetExpectedParcels)
	api.POST("/parcels/receive", s.ReceiveParcel)
	api.POST("/parcels/:id/paid", s.MarkParcelPaid)
	api.POST("/parcels/:id/batch", s.AssignParcelToBatch)

	api.POST("/batches", s.CreateBatch)
	api.GET("/batches", s.GetBatches)
	api.POST("/batches/:code/status", s.AdvanceBatchStatus)
	api.GET("/batches/:code/manifest", s.GetBatchManifest)

	api.GET("/portal/me", s.GetPortalProfile)
	api.GET("/portal/parcels", s.GetPortalParcels)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateCustomer handles POST /api/v1/customers - registers a customer.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var request CreateCustomerRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID := kernel.NewUUID()
	createCommand, err := commands.NewCreateCustomerCommand(customerID, request.Name, request.Phone, request.Address)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.createCustomerHandler.Handle(ctx.Request().Context(), createCommand); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": customerID.String()})
}

// GetCustomers handles GET /api/v1/customers - the customer directory.
func (s *Server) GetCustomers(ctx echo.Context) error {
	customers, err := s.getCustomersHandler.Handle(ctx.Request().Context(), queries.NewGetCustomersQuery())
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]Customer, len(customers))
	for i, row := range customers {
		response[i] = Customer{
			ID:            row.ID.String(),
			Name:          row.Name,
			Phone:         row.Phone,
			Address:       row.Address,
			Region:        row.Region,
			Code:          row.Code,
			AddressLocked: row.AddressLocked,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateCustomer handles PATCH /api/v1/customers/:id - profile and address edits.
func (s *Server) UpdateCustomer(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid customer ID")
	}

	var request UpdateCustomerRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	region := kernel.RegionUnknown
	if request.Region != "" {
		region, err = kernel.RegionFromString(request.Region)
		if err != nil {
			return errorResponse(ctx, err)
		}
	}

	updateCommand, err := commands.NewUpdateCustomerProfileCommand(
		customerID,
		request.Name,
		request.Phone,
		request.Address,
		region,
		request.UpdateAddress,
		request.AsAdmin,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.updateCustomerHandler.Handle(ctx.Request().Context(), updateCommand); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteCustomer handles DELETE /api/v1/customers/:id. Parcels keep their
// customer reference; the manifest renders empty customer columns for them.
func (s *Server) DeleteCustomer(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid customer ID")
	}

	deleteCommand, err := commands.NewDeleteCustomerCommand(customerID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.deleteCustomerHandler.Handle(ctx.Request().Context(), deleteCommand); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// LockCustomerAddress handles POST /api/v1/customers/:id/lock.
func (s *Server) LockCustomerAddress(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid customer ID")
	}

	lockCommand, err := commands.NewLockCustomerAddressCommand(customerID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.lockCustomerHandler.Handle(ctx.Request().Context(), lockCommand); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SubmitPreAlert handles POST /api/v1/parcels/prealert - announces an inbound parcel.
func (s *Server) SubmitPreAlert(ctx echo.Context) error {
	var request PreAlertRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(request.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer ID")
	}

	parcelID := kernel.NewUUID()
	preAlertCommand, err := commands.NewSubmitPreAlertCommand(
		parcelID,
		request.TrackingNumber,
		customerID,
		request.Marketplace,
		request.DeclaredValue,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.submitPreAlertHandler.Handle(ctx.Request().Context(), preAlertCommand); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": parcelID.String()})
}

// GetExpectedParcels handles GET /api/v1/parcels/expected - the inbound worklist.
func (s *Server) GetExpectedParcels(ctx echo.Context) error {
	parcels, err := s.getExpectedParcelsHandler.Handle(
		ctx.Request().Context(), queries.NewGetExpectedParcelsQuery(),
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]ExpectedParcel, len(parcels))
	for i, row := range parcels {
		response[i] = ExpectedParcel{
			ID:             row.ID.String(),
			TrackingNumber: row.TrackingNumber,
			Marketplace:    row.Marketplace,
			DeclaredValue:  row.DeclaredValue,
			CustomerName:   row.CustomerName,
			CustomerCode:   row.CustomerCode,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ReceiveParcel handles POST /api/v1/parcels/receive - logs a parcel at the hub.
func (s *Server) ReceiveParcel(ctx echo.Context) error {
	var request ReceiveParcelRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	measurements := parcel.Measurements{
		Weight: request.Weight,
		Length: request.Length,
		Width:  request.Width,
		Height: request.Height,
	}

	receiveCommand, err := commands.NewReceiveParcelCommand(
		request.TrackingNumber, measurements, request.Rack, request.ProofPhoto,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.receiveParcelHandler.Handle(ctx.Request().Context(), receiveCommand); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkParcelPaid handles POST /api/v1/parcels/:id/paid.
func (s *Server) MarkParcelPaid(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid parcel ID")
	}

	paidCommand, err := commands.NewMarkParcelPaidCommand(parcelID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.markParcelPaidHandler.Handle(ctx.Request().Context(), paidCommand); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignParcelToBatch handles POST /api/v1/parcels/:id/batch.
func (s *Server) AssignParcelToBatch(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid parcel ID")
	}

	var request AssignParcelRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	assignCommand, err := commands.NewAddParcelToBatchCommand(
		parcelID, request.BatchCode, request.BagID, request.SealNumber,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.addParcelToBatchHandler.Handle(ctx.Request().Context(), assignCommand); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateBatch handles POST /api/v1/batches - opens an outbound batch.
func (s *Server) CreateBatch(ctx echo.Context) error {
	var request CreateBatchRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	createCommand, err := commands.NewCreateBatchCommand(
		request.Code, timeOrZero(request.ETD), timeOrZero(request.ETA),
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.createBatchHandler.Handle(ctx.Request().Context(), createCommand); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetBatches handles GET /api/v1/batches - the batch board.
func (s *Server) GetBatches(ctx echo.Context) error {
	batches, err := s.getBatchesHandler.Handle(ctx.Request().Context(), queries.NewGetBatchesQuery())
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]Batch, len(batches))
	for i, row := range batches {
		response[i] = Batch{
			Code:        row.Code,
			ETD:         row.ETD,
			ETA:         row.ETA,
			Status:      row.Status,
			ParcelCount: row.ParcelCount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AdvanceBatchStatus handles POST /api/v1/batches/:code/status.
func (s *Server) AdvanceBatchStatus(ctx echo.Context) error {
	var request AdvanceBatchRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := batch.StatusFromString(request.Status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	advanceCommand, err := commands.NewAdvanceBatchStatusCommand(ctx.Param("code"), target)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.advanceBatchStatusHandler.Handle(ctx.Request().Context(), advanceCommand); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetBatchManifest handles GET /api/v1/batches/:code/manifest - downloads the
// shipping manifest as a CSV attachment.
func (s *Server) GetBatchManifest(ctx echo.Context) error {
	query, err := queries.NewGetBatchManifestQuery(ctx.Param("code"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	manifest, err := s.getBatchManifestHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	ctx.Response().Header().Set(
		echo.HeaderContentDisposition, `attachment; filename="`+manifest.Filename+`"`,
	)

	return ctx.Blob(http.StatusOK, "text/csv; charset=utf-8", []byte(manifest.Content))
}

// GetPortalProfile handles GET /api/v1/portal/me - resolves the caller's
// identity, provisions a customer row on first login, and returns the profile.
func (s *Server) GetPortalProfile(ctx echo.Context) error {
	identity, err := s.resolveIdentity(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	provisionCommand, err := commands.NewProvisionCustomerCommand(identity.UserID, identity.DisplayName)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.provisionCustomerHandler.Handle(ctx.Request().Context(), provisionCommand); err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetCustomerProfileQuery(identity.UserID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	profile, err := s.getCustomerProfileHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, PortalProfile{
		ID:            profile.ID.String(),
		Name:          profile.Name,
		Phone:         profile.Phone,
		Address:       profile.Address,
		Region:        profile.Region,
		Code:          profile.Code,
		AddressLocked: profile.AddressLocked,
	})
}

// GetPortalParcels handles GET /api/v1/portal/parcels - the caller's parcels.
func (s *Server) GetPortalParcels(ctx echo.Context) error {
	identity, err := s.resolveIdentity(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	profileQuery, err := queries.NewGetCustomerProfileQuery(identity.UserID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	profile, err := s.getCustomerProfileHandler.Handle(ctx.Request().Context(), profileQuery)
	if err != nil {
		return errorResponse(ctx, err)
	}

	parcelsQuery, err := queries.NewGetCustomerParcelsQuery(profile.ID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	parcels, err := s.getCustomerParcelsHandler.Handle(ctx.Request().Context(), parcelsQuery)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]Parcel, len(parcels))
	for i, row := range parcels {
		response[i] = Parcel{
			ID:             row.ID.String(),
			TrackingNumber: row.TrackingNumber,
			Marketplace:    row.Marketplace,
			Status:         row.Status,
			BillableWeight: row.BillableWeight,
			Fee:            row.Fee,
			BatchCode:      row.BatchCode,
			ProofPhotoURL:  row.ProofPhotoURL,
			PaidAt:         row.PaidAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) resolveIdentity(ctx echo.Context) (ports.Identity, error) {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return ports.Identity{}, errs.NewValueIsRequiredError("accessToken")
	}

	return s.identityProvider.Resolve(ctx.Request().Context(), token)
}

// errorResponse maps application errors onto HTTP status codes.
func errorResponse(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, customer.ErrAddressIsLocked):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, Error{Code: status, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}

func unauthorized(ctx echo.Context) error {
	return ctx.JSON(http.StatusUnauthorized, Error{
		Code:    http.StatusUnauthorized,
		Message: "Missing or invalid access token",
	})
}

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
