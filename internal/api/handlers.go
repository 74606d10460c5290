package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/crossplay/wordgrid/internal/auth"
	"github.com/crossplay/wordgrid/internal/db"
	"github.com/crossplay/wordgrid/internal/middleware"
	"github.com/crossplay/wordgrid/internal/models"
	"github.com/crossplay/wordgrid/internal/realtime"
	"github.com/crossplay/wordgrid/pkg/crossword"
	"github.com/crossplay/wordgrid/pkg/output"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type Handlers struct {
	db          *db.Database
	authService *auth.AuthService
	hub         *realtime.Hub
}

func NewHandlers(database *db.Database, authService *auth.AuthService, hub *realtime.Hub) *Handlers {
	return &Handlers{db: database, authService: authService, hub: hub}
}

// Auth Handlers

type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	DisplayName string `json:"displayName" binding:"required,min=2,max=50"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

func (h *Handlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	existingUser, err := h.db.GetUserByEmail(req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	if existingUser != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
		return
	}

	hashedPassword, err := h.authService.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
		return
	}

	user := &models.User{
		ID:          uuid.New().String(),
		Email:       req.Email,
		DisplayName: req.DisplayName,
		Password:    hashedPassword,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := h.db.CreateUser(user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}

	token, err := h.authService.GenerateToken(user.ID, user.Email, user.DisplayName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{User: *user, Token: token})
}

func (h *Handlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.db.GetUserByEmail(req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	if !h.authService.CheckPassword(req.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := h.authService.GenerateToken(user.ID, user.Email, user.DisplayName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, AuthResponse{User: *user, Token: token})
}

func (h *Handlers) GetMe(c *gin.Context) {
	claims := middleware.GetAuthUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	user, err := h.db.GetUserByID(claims.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// Layout Handlers

type BuildLayoutRequest struct {
	Words             []string `json:"words" binding:"required,min=1"`
	BoundaryExclusion bool     `json:"boundaryExclusion"`
	Save              bool     `json:"save"`
}

// BuildLayout constructs a layout from a submitted word list. If the
// caller is authenticated and requested Save, the result is persisted
// under their account; identical word lists always resolve to the same
// stored record via the content hash, regardless of who asked first.
// While the build runs, any client subscribed to this build's ID over
// /api/layouts/:id/ws receives a per-edge progress stream.
func (h *Handlers) BuildLayout(c *gin.Context) {
	var req BuildLayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	buildID := uuid.New().String()
	hash := db.WordListHash(req.Words)

	cfg := crossword.Config{BoundaryExclusion: req.BoundaryExclusion}
	if h.hub != nil {
		cfg.OnEdge = func(prev, next string) {
			h.hub.BroadcastEdge(buildID, prev, next)
		}
	}

	result, err := crossword.Construct(req.Words, cfg)
	if err != nil {
		if h.hub != nil {
			if errors.Is(err, crossword.ErrNoFeasibleLayout) {
				h.hub.BroadcastDone(buildID, false, "")
			} else {
				h.hub.BroadcastError(buildID, err.Error())
			}
		}
		switch {
		case errors.Is(err, crossword.ErrEmptyWordList), errors.Is(err, crossword.ErrDuplicateWord):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, crossword.ErrNoFeasibleLayout):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build layout"})
		}
		return
	}

	if h.hub != nil {
		h.hub.BroadcastDone(buildID, true, result.Grid)
	}

	layoutJSON := output.FormatJSON(req.Words, result)

	record := &models.LayoutRecord{
		ID:        buildID,
		Hash:      hash,
		Words:     req.Words,
		Grid:      result.Grid,
		CreatedAt: time.Now(),
	}
	claims := middleware.GetAuthUser(c)
	if claims != nil {
		record.OwnerID = claims.UserID
	}

	response := gin.H{
		"id":      buildID,
		"words":   layoutJSON.Words,
		"grid":    layoutJSON.Grid,
		"entries": layoutJSON.Entries,
	}

	if req.Save {
		entriesJSON, err := entriesToJSON(layoutJSON.Entries)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to encode entries"})
			return
		}
		record.Entries = entriesJSON

		if err := h.db.SaveLayout(record); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save layout"})
			return
		}

		// An anonymous caller gets a claim token alongside the build ID,
		// so registering or logging in afterward can still transfer this
		// layout onto their account instead of losing it for good.
		if claims == nil {
			claimToken, err := h.authService.GenerateClaimToken(buildID)
			if err == nil {
				response["claimToken"] = claimToken
			}
		}
	}

	c.JSON(http.StatusOK, response)
}

// GetLayout looks up a previously saved layout by its store ID.
func (h *Handlers) GetLayout(c *gin.Context) {
	id := c.Param("id")

	record, err := h.db.GetLayoutByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	if record == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "layout not found"})
		return
	}

	c.JSON(http.StatusOK, record)
}

type ClaimLayoutRequest struct {
	ClaimToken string `json:"claimToken" binding:"required"`
}

// ClaimLayout transfers an anonymously built, saved layout onto the
// authenticated caller's account, provided they hold the claim token
// BuildLayout issued for it.
func (h *Handlers) ClaimLayout(c *gin.Context) {
	claims := middleware.GetAuthUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req ClaimLayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := c.Param("id")
	if err := h.authService.ValidateClaimToken(req.ClaimToken, id); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	if err := h.db.ClaimLayout(id, claims.UserID); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteLayout removes a saved layout. middleware.RequireLayoutOwner has
// already confirmed the caller owns it before this handler runs.
func (h *Handlers) DeleteLayout(c *gin.Context) {
	record := middleware.GetLayoutRecord(c)
	if record == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "layout not found"})
		return
	}

	if err := h.db.DeleteLayout(record.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete layout"})
		return
	}

	c.Status(http.StatusNoContent)
}

// ListLayouts returns the authenticated caller's saved layouts.
func (h *Handlers) ListLayouts(c *gin.Context) {
	claims := middleware.GetAuthUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	records, err := h.db.ListLayoutsByOwner(claims.UserID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	c.JSON(http.StatusOK, records)
}

var layoutProgressUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// LayoutProgress upgrades the connection and streams build-progress
// messages for the build ID named in the URL until the client
// disconnects or the hub sends its final message.
func (h *Handlers) LayoutProgress(c *gin.Context) {
	if h.hub == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "progress streaming not available"})
		return
	}

	buildID := c.Param("id")

	conn, err := layoutProgressUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	client := realtime.NewClient(buildID, conn)
	h.hub.Register(client)
	defer h.hub.Unregister(client)

	client.WritePump()
}

func entriesToJSON(entries []output.EntryJSON) ([]byte, error) {
	return json.Marshal(entries)
}
