package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/symtoscan/symtoscan-api/render"
	"github.com/symtoscan/symtoscan-api/scan"
	"github.com/symtoscan/symtoscan-api/schema"
	"github.com/symtoscan/symtoscan-api/store"
)

type scanParams struct {
	Symptoms string                 `json:"symptoms"`
	Images   []schema.CapturedImage `json:"images"`
	Location *schema.Location       `json:"location"`
}

// submitScan runs one symptom scan: analysis, optional facility lookup,
// history persistence. The age on record at scan time is read from the
// stored profile, not from the request.
func (s *Server) submitScan(c *gin.Context) {
	a := c.MustGet("account")
	account, ok := a.(*schema.Account)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	var params scanParams
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	location := params.Location
	if location == nil {
		if l, ok := c.Get("location"); ok {
			location = l.(*schema.Location)
		}
	}

	var age int
	if profile, err := s.mongoStore.GetProfile(account.ID.String()); err == nil {
		age = profile.Age
	} else if err != store.ErrProfileNotFound {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	result, err := s.scanner.Submit(c.Request.Context(), scan.Request{
		ProfileID: account.ID.String(),
		Symptoms:  params.Symptoms,
		Images:    params.Images,
		Age:       age,
		Location:  location,
	})

	var persistenceErr *scan.PersistenceError
	switch {
	case err == nil:
	case errors.Is(err, scan.ErrEmptyInput):
		abortWithEncoding(c, http.StatusBadRequest, errorEmptyScanInput)
		return
	case errors.Is(err, scan.ErrTooManyImages):
		abortWithEncoding(c, http.StatusBadRequest, errorTooManyImages)
		return
	case errors.As(err, &persistenceErr):
		// analysis succeeded but the history write failed; the result is
		// still returned alongside the error
		c.Error(err)
	default:
		abortWithEncoding(c, http.StatusInternalServerError, errorAnalysisFailed, err)
		return
	}

	response := gin.H{
		"analysis":        result.Analysis,
		"analysis_blocks": render.Segment(result.Analysis),
		"places":          result.Places,
	}
	if result.Record != nil {
		response["record_id"] = result.Record.ID
	}
	if persistenceErr != nil {
		response["error"] = errorScanNotSaved
	}

	c.JSON(http.StatusOK, response)
}
