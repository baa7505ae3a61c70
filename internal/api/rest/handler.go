package rest

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.temporal.io/sdk/client"
	"go.uber.org/zap"

	"github.com/tagin-labs/tagin-verifier/internal/adapter"
	"github.com/tagin-labs/tagin-verifier/internal/analytics"
	"github.com/tagin-labs/tagin-verifier/internal/api/middleware"
	"github.com/tagin-labs/tagin-verifier/internal/api/rest/dto"
	"github.com/tagin-labs/tagin-verifier/internal/domain"
	"github.com/tagin-labs/tagin-verifier/internal/hashbind"
	"github.com/tagin-labs/tagin-verifier/internal/ledger"
	"github.com/tagin-labs/tagin-verifier/internal/logger"
	"github.com/tagin-labs/tagin-verifier/internal/metrics"
	"github.com/tagin-labs/tagin-verifier/internal/scanlog"
	"github.com/tagin-labs/tagin-verifier/internal/store"
	"github.com/tagin-labs/tagin-verifier/internal/store/schema"
	"github.com/tagin-labs/tagin-verifier/internal/verifier"
	"github.com/tagin-labs/tagin-verifier/internal/workflows"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// RegisterProduct validates a product record, binds its canonical
	// digest, mints the ledger entry and persists the row
	// POST /api/v1/products
	RegisterProduct(c *gin.Context)

	// GetProduct retrieves the public passport for one token
	// GET /api/v1/products/:token_id
	GetProduct(c *gin.Context)

	// ListProducts retrieves a manufacturer's products
	// GET /api/v1/products?manufacturer=<address>&limit=<limit>&offset=<offset>
	ListProducts(c *gin.Context)

	// Verify reconciles one token against its ledger binding
	// POST /api/v1/verifications
	Verify(c *gin.Context)

	// AppendScan accepts one externally captured scan event
	// POST /api/v1/scans
	AppendScan(c *gin.Context)

	// GetScanStats returns the aggregate window for a manufacturer
	// GET /api/v1/analytics/scan-stats?manufacturer=<address>&days=<days>
	GetScanStats(c *gin.Context)

	// GetMismatchHeatmap returns the per-city mismatch counts
	// GET /api/v1/analytics/mismatch-heatmap?manufacturer=<address>&days=<days>
	GetMismatchHeatmap(c *gin.Context)

	// StartTransfer starts the whitelist-gated transfer workflow
	// POST /api/v1/transfers
	StartTransfer(c *gin.Context)

	// GetTransferStatus reports the state of a transfer workflow run
	// GET /api/v1/transfers/:workflow_id?run_id=<run_id>
	GetTransferStatus(c *gin.Context)

	// UpdateWhitelist adds or removes an address from the registry
	// whitelist
	// PUT /api/v1/whitelist/:address
	UpdateWhitelist(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	binder       hashbind.Binder
	ledger       ledger.Client
	store        store.Store
	verifier     verifier.Engine
	scanlog      scanlog.Writer
	analytics    analytics.Aggregator
	orchestrator adapter.Orchestrator
	taskQueue    string
}

// NewHandler creates a new REST API handler
func NewHandler(
	binder hashbind.Binder,
	ledgerClient ledger.Client,
	st store.Store,
	engine verifier.Engine,
	writer scanlog.Writer,
	aggregator analytics.Aggregator,
	orchestrator adapter.Orchestrator,
	taskQueue string,
) Handler {
	return &handler{
		binder:       binder,
		ledger:       ledgerClient,
		store:        st,
		verifier:     engine,
		scanlog:      writer,
		analytics:    aggregator,
		orchestrator: orchestrator,
		taskQueue:    taskQueue,
	}
}

// RegisterProduct mints a ledger binding for a manufacturer's product
// record and persists the row with its canonical JSON snapshot
func (h *handler) RegisterProduct(c *gin.Context) {
	var req dto.RegisterProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	manufacturer := middleware.AuthSubject(c)
	if !dto.ValidAddress(manufacturer) {
		respondWithError(c, http.StatusForbidden, errCodeForbidden,
			"Token subject is not a manufacturer address")
		return
	}

	record := req.ToRecord(manufacturer)

	digest, canonical, err := h.binder.Bind(record)
	if err != nil {
		respondDomainError(c, err, "Failed to bind product record")
		return
	}

	existing, err := h.store.GetProductBySerial(c.Request.Context(), manufacturer, record.Serial)
	if err != nil {
		respondInternalError(c, err, "Failed to check for existing product")
		return
	}
	if existing != nil {
		respondDomainError(c, domain.ErrProductAlreadyExists, "Serial already registered")
		return
	}

	tokenID, err := h.ledger.MintProduct(c.Request.Context(), digest)
	if err != nil {
		respondDomainError(c, err, "Failed to mint product")
		return
	}

	row := &schema.Product{
		TokenID:         tokenID,
		Name:            record.Name,
		SerialNumber:    record.Serial,
		Model:           record.Model,
		ProductType:     record.Type,
		Color:           record.Color,
		ManufactureDate: record.ManufactureDate,
		Manufacturer:    manufacturer,
		CurrentOwner:    manufacturer,
		MetadataHash:    fmt.Sprintf("%x", digest),
		CanonicalJSON:   canonical,
	}
	if err := h.store.CreateProduct(c.Request.Context(), row); err != nil {
		// The binding is already on the ledger; surface the failure
		// loudly so the row can be backfilled.
		logger.Error(err,
			zap.String("message", "Product minted but row not persisted"),
			zap.Uint64("token_id", tokenID))
		respondInternalError(c, err, "Failed to persist product")
		return
	}

	metrics.ProductsRegisteredTotal.Inc()

	c.JSON(http.StatusCreated, dto.RegisterProductResponse{
		TokenID:      tokenID,
		MetadataHash: fmt.Sprintf("%x", digest),
		Manufacturer: manufacturer,
	})
}

// GetProduct retrieves the public passport for one token
func (h *handler) GetProduct(c *gin.Context) {
	tokenID, err := domain.ParseTokenID(c.Param("token_id"))
	if err != nil {
		respondBadRequest(c, "Invalid token id")
		return
	}

	product, err := h.store.GetProductByTokenID(c.Request.Context(), tokenID)
	if err != nil {
		respondInternalError(c, err, "Failed to get product")
		return
	}
	if product == nil {
		respondNotFound(c, "Product not found")
		return
	}

	c.JSON(http.StatusOK, dto.MapProductToDTO(product))
}

// ListProducts retrieves a manufacturer's products
func (h *handler) ListProducts(c *gin.Context) {
	manufacturer := c.Query("manufacturer")
	if !dto.ValidAddress(manufacturer) {
		respondBadRequest(c, "manufacturer must be a valid address")
		return
	}

	limit, offset, err := parsePagination(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	products, err := h.store.ListProductsByManufacturer(c.Request.Context(), manufacturer, limit, offset)
	if err != nil {
		respondInternalError(c, err, "Failed to list products")
		return
	}

	productDTOs := make([]dto.ProductResponse, len(products))
	for i := range products {
		productDTOs[i] = *dto.MapProductToDTO(products[i])
	}

	c.JSON(http.StatusOK, dto.ProductListResponse{
		Products: productDTOs,
		Limit:    limit,
		Offset:   offset,
	})
}

// Verify reconciles one token against its ledger binding
func (h *handler) Verify(c *gin.Context) {
	var req dto.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	timer := prometheus.NewTimer(metrics.VerificationDuration)
	result, err := h.verifier.Verify(c.Request.Context(), verifier.VerifyInput{
		TokenID: req.TokenID,
		Source:  domain.ScanSource(req.Source),
		City:    req.City,
	})
	timer.ObserveDuration()
	if err != nil {
		respondDomainError(c, err, "Verification did not reconcile")
		return
	}

	metrics.VerificationsTotal.WithLabelValues(string(result.Verdict.Outcome())).Inc()

	c.JSON(http.StatusOK, dto.MapVerificationToDTO(result))
}

// AppendScan accepts one externally captured scan event
func (h *handler) AppendScan(c *gin.Context) {
	var req dto.ScanEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	recorded, err := h.scanlog.Append(c.Request.Context(), req.ToEvent())
	if err != nil {
		respondDomainError(c, err, "Failed to append scan event")
		return
	}

	metrics.ScanEventsAppendedTotal.WithLabelValues(string(recorded.Source)).Inc()

	c.JSON(http.StatusAccepted, dto.MapScanEventToDTO(recorded))
}

// GetScanStats returns the aggregate window for a manufacturer
func (h *handler) GetScanStats(c *gin.Context) {
	window, ok := h.aggregate(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, window)
}

// GetMismatchHeatmap returns the per-city mismatch counts
func (h *handler) GetMismatchHeatmap(c *gin.Context) {
	window, ok := h.aggregate(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"heatmap": window.Heatmap,
	})
}

// aggregate runs the analytics query shared by the two analytics
// endpoints. Responds with the mapped error itself when the query
// fails.
func (h *handler) aggregate(c *gin.Context) (*domain.AggregateWindow, bool) {
	manufacturer := c.Query("manufacturer")

	days := 0
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondValidationError(c, "days must be an integer")
			return nil, false
		}
		days = parsed
	}

	window, err := h.analytics.ScanStats(c.Request.Context(), manufacturer, days)
	if err != nil {
		respondDomainError(c, err, "Failed to aggregate scans")
		return nil, false
	}

	return window, true
}

// StartTransfer starts the whitelist-gated transfer workflow
func (h *handler) StartTransfer(c *gin.Context) {
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	input := req.ToInput()
	w := workflows.NewWorkerCore(nil)
	options := client.StartWorkflowOptions{
		ID:        fmt.Sprintf("transfer-%d-%s", input.TokenID, uuid.NewString()),
		TaskQueue: h.taskQueue,
	}

	wfRun, err := h.orchestrator.ExecuteWorkflow(c.Request.Context(), options, w.TransferProduct, input)
	if err != nil {
		respondInternalError(c, err, "Failed to start transfer workflow")
		return
	}

	metrics.TransfersStartedTotal.Inc()

	c.JSON(http.StatusAccepted, dto.TransferResponse{
		WorkflowID: wfRun.GetID(),
		RunID:      wfRun.GetRunID(),
	})
}

// GetTransferStatus reports the state of a transfer workflow run
func (h *handler) GetTransferStatus(c *gin.Context) {
	workflowID := c.Param("workflow_id")
	if workflowID == "" {
		respondBadRequest(c, "workflow_id is required")
		return
	}

	// An empty run id resolves to the latest run of the workflow
	runID := c.Query("run_id")

	resp, err := h.orchestrator.DescribeWorkflowExecution(c.Request.Context(), workflowID, runID)
	if err != nil {
		respondInternalError(c, err, "Failed to describe workflow execution")
		return
	}

	info := resp.GetWorkflowExecutionInfo()
	if info == nil {
		respondNotFound(c, "Workflow run not found")
		return
	}

	c.JSON(http.StatusOK, dto.TransferStatusResponse{
		WorkflowID: info.GetExecution().GetWorkflowId(),
		RunID:      info.GetExecution().GetRunId(),
		Status:     info.GetStatus().String(),
	})
}

// UpdateWhitelist adds or removes an address from the registry whitelist
func (h *handler) UpdateWhitelist(c *gin.Context) {
	address := c.Param("address")
	if !dto.ValidAddress(address) {
		respondBadRequest(c, "Invalid address")
		return
	}

	var req dto.WhitelistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	var err error
	if req.Whitelisted {
		err = h.ledger.AddToWhitelist(c.Request.Context(), address)
	} else {
		err = h.ledger.RemoveFromWhitelist(c.Request.Context(), address)
	}
	if err != nil {
		respondDomainError(c, err, "Failed to update whitelist")
		return
	}

	c.JSON(http.StatusOK, dto.WhitelistResponse{
		Address:     address,
		Whitelisted: req.Whitelisted,
	})
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"service": "tagin-verifier-api",
	})
}

// parsePagination reads limit/offset query parameters with defaults
func parsePagination(c *gin.Context) (int, int, error) {
	limit := 50
	offset := 0

	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return 0, 0, fmt.Errorf("limit must be a positive integer")
		}
		limit = parsed
	}

	if raw := c.Query("offset"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return 0, 0, fmt.Errorf("offset must be a non-negative integer")
		}
		offset = parsed
	}

	return limit, offset, nil
}
