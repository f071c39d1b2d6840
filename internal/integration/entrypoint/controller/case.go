package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lawledger/backend/internal/application/usecase/impact"
	"github.com/lawledger/backend/internal/application/usecase/legalcase"
	"github.com/lawledger/backend/internal/domain/entity"
	domainerror "github.com/lawledger/backend/internal/domain/error"
	"github.com/lawledger/backend/internal/integration/entrypoint/dto"
)

// CaseController handles case endpoints.
type CaseController struct {
	createUseCase *legalcase.CreateCaseUseCase
	listUseCase   *legalcase.ListCasesUseCase
	updateUseCase *legalcase.UpdateCaseUseCase
	deleteUseCase *legalcase.DeleteCaseUseCase
	impactUseCase *impact.GetCaseImpactUseCase
}

// NewCaseController creates a new case controller instance.
func NewCaseController(
	createUseCase *legalcase.CreateCaseUseCase,
	listUseCase *legalcase.ListCasesUseCase,
	updateUseCase *legalcase.UpdateCaseUseCase,
	deleteUseCase *legalcase.DeleteCaseUseCase,
	impactUseCase *impact.GetCaseImpactUseCase,
) *CaseController {
	return &CaseController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		impactUseCase: impactUseCase,
	}
}

// Create handles POST /cases requests.
func (c *CaseController) Create(ctx *gin.Context) {
	var req dto.CreateCaseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeCaseTitleRequired),
		})
		return
	}

	clientID, ok := parseOptionalUUID(ctx, req.ClientID, "Invalid client ID format")
	if !ok {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), legalcase.CreateCaseInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      entity.CaseStatus(req.Status),
		ClientID:    clientID,
	})
	if err != nil {
		c.handleCaseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCaseResponse(output.Case))
}

// List handles GET /cases requests. An optional clientId query parameter
// filters cases by owning client.
func (c *CaseController) List(ctx *gin.Context) {
	input := legalcase.ListCasesInput{}

	if clientIDStr := ctx.Query("clientId"); clientIDStr != "" {
		clientID, err := uuid.Parse(clientIDStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid client ID format",
			})
			return
		}
		input.ClientID = &clientID
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve cases",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCaseListResponse(output.Cases))
}

// Update handles PATCH /cases/:id requests.
func (c *CaseController) Update(ctx *gin.Context) {
	caseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid case ID format",
		})
		return
	}

	var req dto.UpdateCaseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	clientID, ok := parseOptionalUUID(ctx, req.ClientID, "Invalid client ID format")
	if !ok {
		return
	}

	input := legalcase.UpdateCaseInput{
		CaseID:       caseID,
		Title:        req.Title,
		Description:  req.Description,
		ClientID:     clientID,
		DetachClient: req.DetachClient,
	}
	if req.Status != nil {
		status := entity.CaseStatus(*req.Status)
		input.Status = &status
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCaseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCaseResponse(output.Case))
}

// Delete handles DELETE /cases/:id requests.
func (c *CaseController) Delete(ctx *gin.Context) {
	caseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid case ID format",
		})
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), legalcase.DeleteCaseInput{
		CaseID: caseID,
	}); err != nil {
		c.handleCaseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Case deleted"})
}

// Impact handles GET /cases/:id/impact requests. It reports how many
// records a delete would remove, so the UI can warn before the cascade.
func (c *CaseController) Impact(ctx *gin.Context) {
	caseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid case ID format",
		})
		return
	}

	output, err := c.impactUseCase.Execute(ctx.Request.Context(), impact.GetCaseImpactInput{
		CaseID: caseID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute case impact",
		})
		return
	}

	ctx.JSON(http.StatusOK, output.Impact)
}

// handleCaseError maps case domain errors to HTTP responses.
func (c *CaseController) handleCaseError(ctx *gin.Context, err error) {
	var caseErr *domainerror.CaseError
	if errors.As(err, &caseErr) {
		statusCode := http.StatusBadRequest
		switch caseErr.Code {
		case domainerror.ErrCodeCaseNotFound:
			statusCode = http.StatusNotFound
		case domainerror.ErrCodeCaseClientNotFound:
			statusCode = http.StatusNotFound
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: caseErr.Message,
			Code:  string(caseErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// parseOptionalUUID parses an optional UUID string from a request body.
// It writes a 400 response and returns false on a malformed value.
func parseOptionalUUID(ctx *gin.Context, raw *string, message string) (*uuid.UUID, bool) {
	if raw == nil || *raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: message,
		})
		return nil, false
	}
	return &id, true
}
