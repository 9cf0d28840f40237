package http

import (
	"log/slog"
	"net/http"

	"yardwork/internal/core/application/usecases/commands"
	"yardwork/internal/core/application/usecases/queries"
	"yardwork/internal/core/domain/model/job"
	"yardwork/internal/core/domain/model/kernel"
	"yardwork/internal/core/domain/services"
	"yardwork/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

var _ servers.ServerInterface = (*Server)(nil)

// Handlers groups the use cases the HTTP API exposes.
type Handlers struct {
	// Command handlers
	ClaimJob               commands.ClaimJobCommandHandler
	StartJob               commands.StartJobCommandHandler
	CompleteJob            commands.CompleteJobCommandHandler
	CancelJob              commands.CancelJobCommandHandler
	CreateJob              commands.CreateJobCommandHandler
	CreateEmployee         commands.CreateEmployeeCommandHandler
	AddCoverageArea        commands.AddCoverageAreaCommandHandler
	DeactivateCoverageArea commands.DeactivateCoverageAreaCommandHandler

	// Query handlers
	CheckCoverage       queries.CheckCoverageQueryHandler
	GetJob              queries.GetJobQueryHandler
	GetJobPool          queries.GetJobPoolQueryHandler
	GetZipsWithinRadius queries.GetZipsWithinRadiusQueryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http_server"),
	}
}

// CheckCoverage handles GET /api/v1/coverage/check.
func (s *Server) CheckCoverage(ctx echo.Context, params servers.CheckCoverageParams) error {
	zip, err := kernel.NewZipCode(params.Zip)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewCheckCoverageQuery(zip)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.handlers.CheckCoverage.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCoverageResult(result))
}

// GetZipsWithinRadius handles GET /api/v1/coverage/zips.
func (s *Server) GetZipsWithinRadius(ctx echo.Context, params servers.GetZipsWithinRadiusParams) error {
	zip, err := kernel.NewZipCode(params.Zip)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetZipsWithinRadiusQuery(zip, kernel.Miles(params.Radius))
	if err != nil {
		return s.fail(ctx, err)
	}

	zips, err := s.handlers.GetZipsWithinRadius.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.ZipDistance, len(zips))
	for i, z := range zips {
		response[i] = servers.ZipDistance{Zip: z.Zip.String(), DistanceMiles: float64(z.Distance)}
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetJobPool handles GET /api/v1/jobs/pool.
func (s *Server) GetJobPool(ctx echo.Context, params servers.GetJobPoolParams) error {
	employeeID, err := toKernelUUID("employeeId", params.EmployeeId)
	if err != nil {
		return s.fail(ctx, err)
	}

	var reference *kernel.ZipCode
	if params.ReferenceZip != nil {
		zip, zipErr := kernel.NewZipCode(*params.ReferenceZip)
		if zipErr != nil {
			return s.fail(ctx, zipErr)
		}
		reference = &zip
	}

	var sort services.SortKey
	if params.Sort != nil {
		sort = services.SortKey(*params.Sort)
	}

	query, err := queries.NewGetJobPoolQuery(
		employeeID,
		sort,
		deref(params.Filter),
		deref(params.ServiceType),
		reference,
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	items, err := s.handlers.GetJobPool.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.PoolJob, len(items))
	for i, item := range items {
		response[i] = toPoolJob(item)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateJob handles POST /api/v1/jobs. The ID may be supplied by the caller for idempotent
// imports; otherwise one is generated.
func (s *Server) CreateJob(ctx echo.Context) error {
	var body servers.CreateJobJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	jobID := kernel.NewUUID()
	if body.Id != nil {
		id, err := toKernelUUID("id", *body.Id)
		if err != nil {
			return s.fail(ctx, err)
		}
		jobID = id
	}

	zip, err := kernel.NewZipCode(body.CustomerZip)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCreateJobCommand(jobID, job.Details{
		CustomerName:      body.CustomerName,
		CustomerZip:       zip,
		City:              deref(body.City),
		ServiceType:       body.ServiceType,
		ScheduledDate:     body.ScheduledDate.Time,
		PotentialEarnings: job.Cents(body.PotentialEarningsCents),
	})
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.CreateJob.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondWithJob(ctx, http.StatusCreated, jobID)
}

// GetJob handles GET /api/v1/jobs/{id}.
func (s *Server) GetJob(ctx echo.Context, id servers.JobId) error {
	jobID, err := toKernelUUID("id", id)
	if err != nil {
		return s.fail(ctx, err)
	}

	return s.respondWithJob(ctx, http.StatusOK, jobID)
}

// ClaimJob handles POST /api/v1/jobs/{id}/claim. Every business outcome carries a body;
// only Claimed is a 200.
func (s *Server) ClaimJob(ctx echo.Context, id servers.JobId) error {
	var body servers.ClaimJobJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	jobID, employeeID, err := jobAndEmployee(id, body.EmployeeId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewClaimJobCommand(jobID, employeeID)
	if err != nil {
		return s.fail(ctx, err)
	}

	outcome, err := s.handlers.ClaimJob.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := servers.ClaimResult{Outcome: toClaimOutcome(outcome)}
	if outcome != commands.Claimed {
		return ctx.JSON(claimStatus(outcome), response)
	}

	view, err := s.loadJob(ctx, jobID)
	if err != nil {
		return s.fail(ctx, err)
	}
	apiJob := toJob(view)
	response.Job = &apiJob
	return ctx.JSON(http.StatusOK, response)
}

// StartJob handles POST /api/v1/jobs/{id}/start.
func (s *Server) StartJob(ctx echo.Context, id servers.JobId) error {
	var body servers.StartJobJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	jobID, employeeID, err := jobAndEmployee(id, body.EmployeeId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewStartJobCommand(jobID, employeeID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.StartJob.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondWithJob(ctx, http.StatusOK, jobID)
}

// CompleteJob handles POST /api/v1/jobs/{id}/complete.
func (s *Server) CompleteJob(ctx echo.Context, id servers.JobId) error {
	var body servers.CompleteJobJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	jobID, employeeID, err := jobAndEmployee(id, body.EmployeeId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCompleteJobCommand(jobID, employeeID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.CompleteJob.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondWithJob(ctx, http.StatusOK, jobID)
}

// CancelJob handles POST /api/v1/jobs/{id}/cancel. The body is optional.
func (s *Server) CancelJob(ctx echo.Context, id servers.JobId) error {
	var body servers.CancelJobJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	jobID, err := toKernelUUID("id", id)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCancelJobCommand(jobID, deref(body.Reason))
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.CancelJob.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondWithJob(ctx, http.StatusOK, jobID)
}

// CreateEmployee handles POST /api/v1/employees.
func (s *Server) CreateEmployee(ctx echo.Context) error {
	var body servers.CreateEmployeeJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	employeeID := kernel.NewUUID()
	if body.Id != nil {
		id, err := toKernelUUID("id", *body.Id)
		if err != nil {
			return s.fail(ctx, err)
		}
		employeeID = id
	}

	cmd, err := commands.NewCreateEmployeeCommand(employeeID, body.Name)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.CreateEmployee.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: employeeID.Bytes()})
}

// AddCoverageArea handles POST /api/v1/employees/{id}/areas.
func (s *Server) AddCoverageArea(ctx echo.Context, id servers.EmployeeId) error {
	var body servers.AddCoverageAreaJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	employeeID, err := toKernelUUID("id", id)
	if err != nil {
		return s.fail(ctx, err)
	}

	zip, err := kernel.NewZipCode(body.Zip)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAddCoverageAreaCommand(employeeID, zip, kernel.Miles(body.TravelRadiusMiles))
	if err != nil {
		return s.fail(ctx, err)
	}

	areaID, err := s.handlers.AddCoverageArea.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: areaID.Bytes()})
}

// DeactivateCoverageArea handles DELETE /api/v1/employees/{id}/areas/{areaId}.
func (s *Server) DeactivateCoverageArea(ctx echo.Context, id servers.EmployeeId, areaID openapi_types.UUID) error {
	employeeID, err := toKernelUUID("id", id)
	if err != nil {
		return s.fail(ctx, err)
	}

	area, err := toKernelUUID("areaId", areaID)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewDeactivateCoverageAreaCommand(employeeID, area)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.DeactivateCoverageArea.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) loadJob(ctx echo.Context, jobID kernel.UUID) (queries.JobView, error) {
	query, err := queries.NewGetJobQuery(jobID)
	if err != nil {
		return queries.JobView{}, err
	}
	return s.handlers.GetJob.Handle(ctx.Request().Context(), query)
}

func (s *Server) respondWithJob(ctx echo.Context, status int, jobID kernel.UUID) error {
	view, err := s.loadJob(ctx, jobID)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(status, toJob(view))
}

func jobAndEmployee(jobID, employeeID openapi_types.UUID) (kernel.UUID, kernel.UUID, error) {
	j, err := toKernelUUID("id", jobID)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	e, err := toKernelUUID("employeeId", employeeID)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	return j, e, nil
}
