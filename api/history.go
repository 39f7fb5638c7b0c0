package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/symtoscan/symtoscan-api/schema"
)

const defaultLimit = int64(100)

type historyQueryParams struct {
	Before int64 `form:"before"`
	Limit  int64 `form:"limit"`
}

// getHistory lists the authenticated user's scans, most recent first.
func (s *Server) getHistory(c *gin.Context) {
	account, ok := c.MustGet("account").(*schema.Account)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	var params historyQueryParams
	if err := c.Bind(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	var before, limit int64

	switch {
	case params.Before > 0:
		before = params.Before
	case params.Before == 0:
		before = time.Now().Unix() + 1
	default:
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, fmt.Errorf("negative before"))
		return
	}

	switch {
	case params.Limit > 0:
		limit = params.Limit
	case params.Limit == 0:
		limit = defaultLimit
	default:
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, fmt.Errorf("negative limit"))
		return
	}

	records, err := s.mongoStore.ListScans(account.ID.String(), before, limit)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"scans_history": records})
}
