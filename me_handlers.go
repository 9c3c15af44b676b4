package main

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MeResponse struct {
	PublicID    string  `json:"publicId"`
	DisplayName *string `json:"displayName,omitempty"`
}

type MeUpdateReq struct {
	DisplayName *string `json:"displayName"`
}

type RestoreReq struct {
	PublicID string `json:"publicId"`
}

func currentPlayer(c *gin.Context, db *gorm.DB) (*Player, bool) {
	pubID, _, ok := playerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no player"})
		return nil, false
	}
	var p Player
	if err := db.First(&p, "public_id = ?", pubID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "player not found"})
		return nil, false
	}
	return &p, true
}

// GET /api/v1/me
func GetMe(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := currentPlayer(c, db)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, MeResponse{PublicID: p.PublicID, DisplayName: p.DisplayName})
	}
}

// PUT /api/v1/me
func UpdateMe(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := currentPlayer(c, db)
		if !ok {
			return
		}

		var req MeUpdateReq
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
			return
		}
		if req.DisplayName != nil {
			name := strings.TrimSpace(*req.DisplayName)
			if n := utf8.RuneCountInString(name); n < 2 || n > 40 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "displayName must be 2..40 chars"})
				return
			}
			p.DisplayName = &name
		}

		if err := db.Save(p).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db"})
			return
		}
		c.JSON(http.StatusOK, MeResponse{PublicID: p.PublicID, DisplayName: p.DisplayName})
	}
}

// GET /api/v1/me/export-key
func ExportKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		pubID, _, ok := playerFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "no player"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"publicId": pubID})
	}
}

// POST /api/v1/me/restore
func RestoreAccount(db *gorm.DB, secureCookies bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RestoreReq
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "publicId required"})
			return
		}
		pubID := strings.TrimSpace(req.PublicID)
		if _, err := uuid.Parse(pubID); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "publicId required"})
			return
		}
		var p Player
		if err := db.First(&p, "public_id = ?", pubID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "player not found"})
			return
		}
		// EnsurePlayer already echoed the caller's old id; overwrite it so
		// header-based clients switch too.
		setPlayerCookie(c, p.PublicID, secureCookies)
		c.Header(publicIDHeader, p.PublicID)
		c.JSON(http.StatusOK, gin.H{"status": "restored", "publicId": p.PublicID})
	}
}
