package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/symtoscan/symtoscan-api/api/mocks"
	"github.com/symtoscan/symtoscan-api/schema"
	"github.com/symtoscan/symtoscan-api/store"
)

func newAccountRouter(s *Server) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.recognizeAccountMiddleware())
	router.GET("/me/profile", s.getProfile)
	router.PUT("/me/profile", s.saveProfile)
	router.PATCH("/me/preference", s.updatePreference)
	return router
}

func TestGetProfileNotCompleted(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockSymtoScanCore(ctl)
	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		store:      a,
		mongoStore: m,
	}

	a.EXPECT().GetAccount(gomock.Any()).Return(testAccount(), nil).Times(1)
	m.EXPECT().GetProfile(gomock.Any()).Return(nil, store.ErrProfileNotFound).Times(1)

	req := httptest.NewRequest("GET", "/me/profile", nil)
	w := httptest.NewRecorder()
	newAccountRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status code")

	var resp ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1301), resp.Code)
}

func TestSaveProfile(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockSymtoScanCore(ctl)
	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		store:      a,
		mongoStore: m,
	}

	account := testAccount()
	a.EXPECT().GetAccount(gomock.Any()).Return(account, nil).Times(1)
	m.EXPECT().SaveProfile(account.ID.String(), account.Email, "Alex", 42).Return(nil).Times(1)
	a.EXPECT().UpdateAccountDisplayName(account.ID.String(), "Alex").Return(nil).Times(1)

	body := `{"display_name":" Alex ","age":42}`
	req := httptest.NewRequest("PUT", "/me/profile", strings.NewReader(body))
	w := httptest.NewRecorder()
	newAccountRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}

func TestSaveProfileInvalidAge(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockSymtoScanCore(ctl)
	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		store:      a,
		mongoStore: m,
	}

	a.EXPECT().GetAccount(gomock.Any()).Return(testAccount(), nil).Times(1)
	m.EXPECT().SaveProfile(gomock.Any(), gomock.Any(), gomock.Any(), 150).Return(store.ErrInvalidAge).Times(1)

	body := `{"display_name":"Alex","age":150}`
	req := httptest.NewRequest("PUT", "/me/profile", strings.NewReader(body))
	w := httptest.NewRecorder()
	newAccountRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var resp ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1300), resp.Code)
}

func TestSaveProfileMissingDisplayName(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockSymtoScanCore(ctl)
	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		store:      a,
		mongoStore: m,
	}

	a.EXPECT().GetAccount(gomock.Any()).Return(testAccount(), nil).Times(1)

	body := `{"display_name":"   ","age":42}`
	req := httptest.NewRequest("PUT", "/me/profile", strings.NewReader(body))
	w := httptest.NewRecorder()
	newAccountRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var resp ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1302), resp.Code)
}

func TestUpdatePreference(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockSymtoScanCore(ctl)
	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		store:      a,
		mongoStore: m,
	}

	a.EXPECT().GetAccount(gomock.Any()).Return(testAccount(), nil).Times(1)
	m.EXPECT().UpdateProfileTheme(gomock.Any(), schema.ThemeDark).Return(nil).Times(1)

	req := httptest.NewRequest("PATCH", "/me/preference", strings.NewReader(`{"theme":"dark"}`))
	w := httptest.NewRecorder()
	newAccountRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}

func TestUpdatePreferenceUnknownTheme(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockSymtoScanCore(ctl)
	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		store:      a,
		mongoStore: m,
	}

	a.EXPECT().GetAccount(gomock.Any()).Return(testAccount(), nil).Times(1)
	m.EXPECT().UpdateProfileTheme(gomock.Any(), "sepia").Return(store.ErrInvalidTheme).Times(1)

	req := httptest.NewRequest("PATCH", "/me/preference", strings.NewReader(`{"theme":"sepia"}`))
	w := httptest.NewRecorder()
	newAccountRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var resp ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1303), resp.Code)
}
