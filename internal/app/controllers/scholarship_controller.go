package controllers

import (
	"net/http"
	"strconv"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/yigit/grantsphere/internal/app/models/dto"
	"github.com/yigit/grantsphere/internal/app/services"
	"github.com/yigit/grantsphere/internal/catalog"
	"github.com/yigit/grantsphere/internal/middleware"
	"github.com/yigit/grantsphere/internal/pkg/helpers"
	"github.com/yigit/grantsphere/internal/pkg/validation"
)

// ScholarshipController handles the stateless catalog endpoints
type ScholarshipController struct {
	scholarshipService services.ScholarshipService
}

// NewScholarshipController creates a new ScholarshipController
func NewScholarshipController(scholarshipService services.ScholarshipService) *ScholarshipController {
	return &ScholarshipController{
		scholarshipService: scholarshipService,
	}
}

// GetAllScholarships lists the catalog, optionally filtered
// @Summary List scholarships
// @Description Lists the scholarships matching the given filters in catalog order. Each filter category is passed as a repeatable query parameter named by its key; values within a category are ORed and categories are ANDed.
// @Tags scholarships
// @Produce json
// @Param type query []string false "Scholarship type" collectionFormat(multi)
// @Param educationLevel query []string false "Education level" collectionFormat(multi)
// @Param studyForm query []string false "Study form" collectionFormat(multi)
// @Param department query []string false "Institute" collectionFormat(multi)
// @Param course query []string false "Course" collectionFormat(multi)
// @Param achievements query []string false "Achievements" collectionFormat(multi)
// @Param paymentAmount query []string false "Payment amount bracket" collectionFormat(multi)
// @Param paymentFrequency query []string false "Payment frequency" collectionFormat(multi)
// @Param paymentDuration query []string false "Payment duration" collectionFormat(multi)
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse{items=[]dto.ScholarshipRow}} "Scholarships retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter value"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /scholarships [get]
func (c *ScholarshipController) GetAllScholarships(ctx *gin.Context) {
	raw := make(map[string][]string)
	for _, info := range catalog.Categories() {
		values := ctx.QueryArray(string(info.Key))
		if len(values) == 0 {
			continue
		}
		for _, v := range values {
			if utf8.RuneCountInString(v) > validation.OptionMaxLength {
				errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Filter value too long").
					WithField(string(info.Key))
				ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
				return
			}
		}
		raw[string(info.Key)] = values
	}

	sel, err := c.scholarshipService.ParseSelection(raw)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	records, err := c.scholarshipService.Filter(ctx, sel)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	page, size := helpers.ParsePaginationParams(ctx)
	items, pagination := helpers.Paginate(dto.NewScholarshipRows(records), page, size)

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.PaginatedResponse{
		Items:      items,
		Pagination: pagination,
	}))
}

// GetScholarshipByID retrieves a scholarship by ID
// @Summary Get scholarship details
// @Description Returns the detail view of a scholarship with absent fields replaced by placeholders
// @Tags scholarships
// @Produce json
// @Param id path int true "Scholarship ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.ScholarshipDetail} "Scholarship retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid scholarship ID format"
// @Failure 404 {object} dto.ErrorResponse "Scholarship not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /scholarships/{id} [get]
func (c *ScholarshipController) GetScholarshipByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	rec, err := c.scholarshipService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewScholarshipDetail(rec)))
}

// SearchScholarships runs a name search
// @Summary Search scholarships by name
// @Description Case-insensitive substring search over scholarship names. Returns at most the configured number of suggestions in catalog order.
// @Tags scholarships
// @Produce json
// @Param q query string false "Search text"
// @Success 200 {object} dto.APIResponse{data=dto.SearchResponse} "Search completed"
// @Failure 400 {object} dto.ErrorResponse "Search text too long"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /scholarships/search [get]
func (c *ScholarshipController) SearchScholarships(ctx *gin.Context) {
	query := ctx.Query("q")
	if utf8.RuneCountInString(query) > validation.QueryMaxLength {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Search text too long").
			WithField("q").
			WithDetails("q must be at most " + strconv.Itoa(validation.QueryMaxLength) + " characters")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	results, err := c.scholarshipService.Search(ctx, query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SearchResponse{
		Query:    query,
		Results:  dto.NewScholarshipRows(results),
		NotFound: query != "" && len(results) == 0,
	}))
}

// GetFilterCategories lists the filter panel
// @Summary List filter categories
// @Description Returns every filter category with its options in display order, plus the payment amount brackets
// @Tags filters
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.FilterCategoriesResponse} "Filter categories retrieved successfully"
// @Router /filters [get]
func (c *ScholarshipController) GetFilterCategories(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FilterCategoriesResponse{
		Categories: catalog.Categories(),
		Brackets:   catalog.AmountBrackets,
	}))
}

// GetRecommendations returns the carousel content
// @Summary Get recommended scholarships
// @Description Returns the recommended scholarships as cards grouped into carousel pages
// @Tags scholarships
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.RecommendationsResponse} "Recommendations retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /recommendations [get]
func (c *ScholarshipController) GetRecommendations(ctx *gin.Context) {
	records, err := c.scholarshipService.Recommendations(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	groups := catalog.Partition(records, c.scholarshipService.GroupSize())
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.RecommendationsResponse{
		Groups:     dto.NewCarouselGroups(groups),
		GroupCount: len(groups),
	}))
}

// parseIDParam reads a positive integer path parameter. On failure it writes
// a 400 response and returns false.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid scholarship ID").
			WithField(name).
			WithDetails("Scholarship ID must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
