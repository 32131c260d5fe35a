package sessionapi

import (
	"errors"
	"net/http"
	"time"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/grid"
	"github.com/beka-birhanu/vinom-pathfinder/service"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/gin-gonic/gin"
)

// Controller serves session and grid routes.
type Controller struct {
	sessions  i.SessionManager
	tokenizer i.Tokenizer
	tokenTTL  time.Duration
}

// NewController initializes a Controller.
func NewController(sm i.SessionManager, t i.Tokenizer, tokenTTL time.Duration) (*Controller, error) {
	if sm == nil || t == nil {
		return nil, errors.New("session manager and tokenizer are required")
	}
	if tokenTTL <= 0 {
		return nil, errors.New("token ttl must be positive")
	}

	return &Controller{
		sessions:  sm,
		tokenizer: t,
		tokenTTL:  tokenTTL,
	}, nil
}

// RegisterPublic registers public routes.
func (c *Controller) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/health", c.health)
	route.GET("/presets", c.presets)
	route.POST("/sessions", c.createSession)
}

// RegisterProtected registers routes that need a session token.
func (c *Controller) RegisterProtected(route *gin.RouterGroup) {
	route.DELETE("/sessions", c.closeSession)

	g := route.Group("/grid")
	{
		g.GET("", c.board)
		g.DELETE("", c.clearAll)
		g.PUT("/cells", c.editCell)
		g.POST("/search", c.search)
		g.POST("/trace", c.trace)
		g.POST("/presets/:name", c.loadPreset)
	}
}

func (c *Controller) health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok", "sessions": c.sessions.Count()})
}

func (c *Controller) presets(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, &PresetsResponse{Presets: c.sessions.Presets()})
}

// createSession opens a session and issues its token.
func (c *Controller) createSession(ctx *gin.Context) {
	id, err := c.sessions.Create()
	if err != nil {
		respondError(ctx, err)
		return
	}

	token, err := c.tokenizer.Generate(id, c.tokenTTL)
	if err != nil {
		_ = c.sessions.Delete(id)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue session token"})
		return
	}

	rows, cols := c.sessions.Dimensions()
	ctx.JSON(http.StatusCreated, &SessionResponse{
		SessionID: id.String(),
		Token:     token,
		ExpiresIn: int64(c.tokenTTL / time.Second),
		Rows:      rows,
		Cols:      cols,
	})
}

func (c *Controller) closeSession(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	if err := c.sessions.Delete(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (c *Controller) board(ctx *gin.Context) {
	v, ok := c.visualizer(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, v.Board())
}

func (c *Controller) clearAll(ctx *gin.Context) {
	v, ok := c.visualizer(ctx)
	if !ok {
		return
	}
	v.ClearAll()
	ctx.JSON(http.StatusOK, v.Board())
}

// editCell applies the request's mode to one cell.
func (c *Controller) editCell(ctx *gin.Context) {
	var request CellRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mode, err := dmn.ParseMode(request.Mode)
	if err != nil {
		respondError(ctx, err)
		return
	}

	v, ok := c.visualizer(ctx)
	if !ok {
		return
	}

	if err := v.Apply(mode, grid.Position{Row: *request.Row, Col: *request.Col}); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, v.Board())
}

func (c *Controller) search(ctx *gin.Context) {
	v, ok := c.visualizer(ctx)
	if !ok {
		return
	}

	outcome, err := v.RunSearch()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, &SearchResponse{Outcome: outcome, Board: v.Board()})
}

func (c *Controller) trace(ctx *gin.Context) {
	v, ok := c.visualizer(ctx)
	if !ok {
		return
	}

	steps, outcome, err := v.Trace()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, &TraceResponse{Steps: steps, Outcome: outcome, Board: v.Board()})
}

func (c *Controller) loadPreset(ctx *gin.Context) {
	v, ok := c.visualizer(ctx)
	if !ok {
		return
	}

	if err := v.LoadPreset(ctx.Param("name")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, v.Board())
}

// visualizer resolves the caller's session, writing the error response when
// it cannot.
func (c *Controller) visualizer(ctx *gin.Context) (i.Visualizer, bool) {
	id, ok := sessionID(ctx)
	if !ok {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return nil, false
	}

	v, err := c.sessions.Get(id)
	if err != nil {
		respondError(ctx, err)
		return nil, false
	}
	return v, true
}

// respondError maps service errors to HTTP statuses.
func respondError(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, grid.ErrInvalidCoordinate),
		errors.Is(err, grid.ErrEndpointCell),
		errors.Is(err, grid.ErrCellBlocked),
		errors.Is(err, dmn.ErrUnknownMode):
		status = http.StatusBadRequest
	case errors.Is(err, grid.ErrInvalidLayout):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrSessionNotFound),
		errors.Is(err, service.ErrPresetNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrTooManySessions):
		status = http.StatusServiceUnavailable
	}

	ctx.JSON(status, gin.H{"error": err.Error()})
}
