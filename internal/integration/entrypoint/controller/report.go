package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lawledger/backend/internal/application/usecase/report"
	domainerror "github.com/lawledger/backend/internal/domain/error"
	"github.com/lawledger/backend/internal/integration/entrypoint/dto"
)

// ReportController handles financial summary report endpoints.
type ReportController struct {
	generateUseCase *report.GenerateReportUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(generateUseCase *report.GenerateReportUseCase) *ReportController {
	return &ReportController{
		generateUseCase: generateUseCase,
	}
}

// Summary handles GET /reports/summary requests. Both startDate and endDate
// query parameters are required, formatted YYYY-MM-DD. An inverted window is
// not an error: the report comes back with all-zero figures.
func (c *ReportController) Summary(ctx *gin.Context) {
	startDateStr := ctx.Query("startDate")
	if startDateStr == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "startDate query parameter is required",
			Code:  string(domainerror.ErrCodeMissingStartDate),
		})
		return
	}
	endDateStr := ctx.Query("endDate")
	if endDateStr == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "endDate query parameter is required",
			Code:  string(domainerror.ErrCodeMissingEndDate),
		})
		return
	}

	startDate, err := time.Parse("2006-01-02", startDateStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid startDate format. Use YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidDateFormat),
		})
		return
	}
	endDate, err := time.Parse("2006-01-02", endDateStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid endDate format. Use YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidDateFormat),
		})
		return
	}

	output, err := c.generateUseCase.Execute(ctx.Request.Context(), report.GenerateReportInput{
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output.Report)
}

// handleReportError maps report domain errors to HTTP responses.
func (c *ReportController) handleReportError(ctx *gin.Context, err error) {
	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) {
		statusCode := http.StatusBadRequest
		if reportErr.Code == domainerror.ErrCodeReportInternalError {
			statusCode = http.StatusInternalServerError
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: reportErr.Message,
			Code:  string(reportErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
