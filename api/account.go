package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/symtoscan/symtoscan-api/schema"
	"github.com/symtoscan/symtoscan-api/store"
)

// accountDetail is the API to query the authenticated account
func (s *Server) accountDetail(c *gin.Context) {
	a := c.MustGet("account")
	account, ok := a.(*schema.Account)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": account,
	})
}

// getProfile returns the profile document of the authenticated user. A
// 404 tells the client the profile has never been completed, which the
// frontend turns into the completion prompt.
func (s *Server) getProfile(c *gin.Context) {
	requester := c.GetString("requester")

	profile, err := s.mongoStore.GetProfile(requester)
	if err != nil {
		if err == store.ErrProfileNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorProfileNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": profile})
}

// saveProfile upserts the display name and age of the authenticated user.
// The display name is also mirrored into the identity record.
func (s *Server) saveProfile(c *gin.Context) {
	a := c.MustGet("account")
	account, ok := a.(*schema.Account)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	var params struct {
		DisplayName string `json:"display_name"`
		Age         int    `json:"age"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	displayName := strings.TrimSpace(params.DisplayName)
	if displayName == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorMissingDisplayName)
		return
	}

	if err := s.mongoStore.SaveProfile(account.ID.String(), account.Email, displayName, params.Age); err != nil {
		if err == store.ErrInvalidAge {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidAge)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	if err := s.store.UpdateAccountDisplayName(account.ID.String(), displayName); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// updatePreference stores the light/dark preference without touching the
// rest of the profile document.
func (s *Server) updatePreference(c *gin.Context) {
	requester := c.GetString("requester")

	var params struct {
		Theme string `json:"theme"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if err := s.mongoStore.UpdateProfileTheme(requester, params.Theme); err != nil {
		if err == store.ErrInvalidTheme {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidTheme)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
