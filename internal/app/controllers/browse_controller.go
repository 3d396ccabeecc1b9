package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/grantsphere/internal/app/models/dto"
	"github.com/yigit/grantsphere/internal/app/services"
	"github.com/yigit/grantsphere/internal/middleware"
)

// BrowseController exposes browse sessions: the per-client view state of
// filters, search, selection and the recommendation carousel
type BrowseController struct {
	browseService services.BrowseService
}

// NewBrowseController creates a new BrowseController
func NewBrowseController(browseService services.BrowseService) *BrowseController {
	return &BrowseController{
		browseService: browseService,
	}
}

func (c *BrowseController) dispatch(ctx *gin.Context, cmd services.Command) {
	state, err := c.browseService.Dispatch(ctx, ctx.Param("id"), cmd)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(state))
}

// CreateSession opens a browse session
// @Summary Create a browse session
// @Description Opens a session showing the full catalog with no filters, an empty search and the carousel on its first page
// @Tags sessions
// @Produce json
// @Success 201 {object} dto.APIResponse{data=dto.BrowseState} "Session created"
// @Failure 503 {object} dto.ErrorResponse "Too many sessions"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sessions [post]
func (c *BrowseController) CreateSession(ctx *gin.Context) {
	state, err := c.browseService.Create(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(state))
}

// GetSession returns the session state
// @Summary Get browse session state
// @Description Returns the current state. Pending filter changes are applied first.
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.APIResponse{data=dto.BrowseState} "Session state"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{id} [get]
func (c *BrowseController) GetSession(ctx *gin.Context) {
	state, err := c.browseService.State(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(state))
}

// DeleteSession closes a session
// @Summary Delete a browse session
// @Tags sessions
// @Param id path string true "Session ID"
// @Success 204 "Session deleted"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{id} [delete]
func (c *BrowseController) DeleteSession(ctx *gin.Context) {
	if err := c.browseService.Delete(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// ToggleFilter checks or unchecks a filter option
// @Summary Toggle a filter option
// @Description Checks or unchecks one option. The table is recomputed after a short debounce; filtersPending reports a recomputation in flight.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.ToggleFilterRequest true "Filter option"
// @Success 200 {object} dto.APIResponse{data=dto.BrowseState} "Filter toggled"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{id}/filters [post]
func (c *BrowseController) ToggleFilter(ctx *gin.Context) {
	var req dto.ToggleFilterRequest
	if !middleware.BindJSON(ctx, &req, false) {
		return
	}
	c.dispatch(ctx, services.Command{
		Kind:     services.CommandToggleFilter,
		Category: req.Category,
		Value:    req.Value,
		Checked:  req.Checked,
	})
}

// ClearFilters unchecks every filter option
// @Summary Clear all filters
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.APIResponse{data=dto.BrowseState} "Filters cleared"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{id}/filters [delete]
func (c *BrowseController) ClearFilters(ctx *gin.Context) {
	c.dispatch(ctx, services.Command{Kind: services.CommandClearFilters})
}

// SetQuery replaces the search text
// @Summary Set the search text
// @Description Recomputes the suggestions. The dropdown opens when there is at least one suggestion and the highlight is reset.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.SetQueryRequest true "Search text"
// @Success 200 {object} dto.APIResponse{data=dto.BrowseState} "Search updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{id}/search [put]
func (c *BrowseController) SetQuery(ctx *gin.Context) {
	var req dto.SetQueryRequest
	if !middleware.BindJSON(ctx, &req, false) {
		return
	}
	c.dispatch(ctx, services.Command{Kind: services.CommandSetQuery, Query: req.Query})
}

// FocusSearch reopens the suggestion dropdown
// @Summary Focus the search input
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.APIResponse{data=dto.BrowseState} "Search focused"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{id}/search/focus [post]
func (c *BrowseController) FocusSearch(ctx *gin.Context) {
	c.dispatch(ctx, services.Command{Kind: services.CommandFocusSearch})
}

// DismissSearch closes the suggestion dropdown
// @Summary Dismiss the suggestion dropdown
// @Description Closes the dropdown as a click outside the search box would
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.APIResponse{data=dto.BrowseState} "Dropdown closed"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{id}/search/focus [delete]
func (c *BrowseController) DismissSearch(ctx *gin.Context) {
	c.dispatch(ctx, services.Command{Kind: services.CommandDismissSearch})
}

// PressKey sends a key to the suggestion dropdown
// @Summary Press a key in the search box
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.KeyRequest true "Key"
// @Success 200 {object} dto.APIResponse{data=dto.BrowseState} "Key applied"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{id}/search/keys [post]
func (c *BrowseController) PressKey(ctx *gin.Context) {
	var req dto.KeyRequest
	if !middleware.BindJSON(ctx, &req, false) {
		return
	}
	c.dispatch(ctx, services.Command{Kind: services.CommandPressKey, Key: req.Key})
}

// SelectSearchResult picks a suggestion
// @Summary Select a search suggestion
// @Description Puts the suggestion's name in the search box, narrows the table to it and opens its details
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.SelectRequest true "Suggestion"
// @Success 200 {object} dto.APIResponse{data=dto.BrowseState} "Suggestion selected"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Session or suggestion not found"
// @Router /sessions/{id}/search/select [post]
func (c *BrowseController) SelectSearchResult(ctx *gin.Context) {
	var req dto.SelectRequest
	if !middleware.BindJSON(ctx, &req, false) {
		return
	}
	c.dispatch(ctx, services.Command{Kind: services.CommandSelectSearchResult, ID: req.ID})
}

// Select opens the details of a table row or carousel card
// @Summary Select a scholarship
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.SelectRequest true "Scholarship"
// @Success 200 {object} dto.APIResponse{data=dto.BrowseState} "Scholarship selected"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Session or scholarship not found"
// @Router /sessions/{id}/selection [post]
func (c *BrowseController) Select(ctx *gin.Context) {
	var req dto.SelectRequest
	if !middleware.BindJSON(ctx, &req, false) {
		return
	}
	c.dispatch(ctx, services.Command{Kind: services.CommandSelect, ID: req.ID})
}

// CloseDetail closes the detail view
// @Summary Close the detail view
// @Description Clears the selection. The table is left as is.
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.APIResponse{data=dto.BrowseState} "Detail closed"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{id}/selection [delete]
func (c *BrowseController) CloseDetail(ctx *gin.Context) {
	c.dispatch(ctx, services.Command{Kind: services.CommandCloseDetail})
}

// Carousel pages the recommendation carousel
// @Summary Page the carousel
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.CarouselRequest true "Carousel action"
// @Success 200 {object} dto.APIResponse{data=dto.BrowseState} "Carousel moved"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{id}/carousel [post]
func (c *BrowseController) Carousel(ctx *gin.Context) {
	var req dto.CarouselRequest
	if !middleware.BindJSON(ctx, &req, false) {
		return
	}
	c.dispatch(ctx, services.Command{Kind: services.CommandCarousel, Action: req.Action, Index: req.Index})
}

// Drag moves the carousel track with a pointer
// @Summary Drag the carousel
// @Description Positions are in percent of the viewport width. Ending a drag snaps to the nearest page.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.DragRequest true "Drag phase"
// @Success 200 {object} dto.APIResponse{data=dto.BrowseState} "Carousel dragged"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{id}/carousel/drag [post]
func (c *BrowseController) Drag(ctx *gin.Context) {
	var req dto.DragRequest
	if !middleware.BindJSON(ctx, &req, false) {
		return
	}
	c.dispatch(ctx, services.Command{Kind: services.CommandDrag, Phase: req.Phase, Position: req.Position})
}

// Dispatch applies a command in generic form
// @Summary Apply a command
// @Description Applies any browse command. kind is one of toggleFilter, clearFilters, setQuery, focusSearch, dismissSearch, pressKey, selectSearchResult, select, closeDetail, carousel, drag.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.CommandRequest true "Command"
// @Success 200 {object} dto.APIResponse{data=dto.BrowseState} "Command applied"
// @Failure 400 {object} dto.ErrorResponse "Invalid command"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{id}/commands [post]
func (c *BrowseController) Dispatch(ctx *gin.Context) {
	var req dto.CommandRequest
	if !middleware.BindJSON(ctx, &req, false) {
		return
	}
	c.dispatch(ctx, services.NewCommand(req))
}
