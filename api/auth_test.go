package api

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	"github.com/symtoscan/symtoscan-api/api/mocks"
	"github.com/symtoscan/symtoscan-api/store"
)

func newAuthRouter(s *Server) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/signup", s.signup)
	router.POST("/login", s.login)
	return router
}

func testJWTKey(t *testing.T) *rsa.PrivateKey {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	assert.NoError(t, err)
	return key
}

func TestSignup(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockSymtoScanCore(ctl)
	s := Server{
		store:         a,
		jwtPrivateKey: testJWTKey(t),
	}

	viper.Set("jwt.expire", 24)

	account := testAccount()
	a.EXPECT().CreateAccount("tester@example.com", "secret123").Return(account, nil).Times(1)

	// the email is normalized before it reaches the store
	body := `{"email":" Tester@Example.COM ","password":"secret123"}`
	req := httptest.NewRequest("POST", "/signup", strings.NewReader(body))
	w := httptest.NewRecorder()
	newAuthRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp struct {
		Token    string  `json:"jwt_token"`
		ExpireIn float64 `json:"expire_in"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, float64(24*60*60), resp.ExpireIn)
}

func TestSignupInvalidEmail(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := Server{store: mocks.NewMockSymtoScanCore(ctl)}

	for _, email := range []string{"not-an-email", "missing@tld", "@nobody.example", ""} {
		body := `{"email":"` + email + `","password":"secret123"}`
		req := httptest.NewRequest("POST", "/signup", strings.NewReader(body))
		w := httptest.NewRecorder()
		newAuthRouter(&s).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code for %q", email)

		var resp ErrorResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(1100), resp.Code)
	}
}

func TestSignupWeakPassword(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := Server{store: mocks.NewMockSymtoScanCore(ctl)}

	body := `{"email":"tester@example.com","password":"short"}`
	req := httptest.NewRequest("POST", "/signup", strings.NewReader(body))
	w := httptest.NewRecorder()
	newAuthRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var resp ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1104), resp.Code)
}

func TestSignupEmailTaken(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockSymtoScanCore(ctl)
	s := Server{store: a}

	a.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Return(nil, store.ErrEmailTaken).Times(1)

	body := `{"email":"tester@example.com","password":"secret123"}`
	req := httptest.NewRequest("POST", "/signup", strings.NewReader(body))
	w := httptest.NewRecorder()
	newAuthRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status code")

	var resp ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1103), resp.Code)
}

func TestLoginFailures(t *testing.T) {
	tests := []struct {
		name       string
		storeErr   error
		wantStatus int
		wantCode   int64
	}{
		{"unknown email", store.ErrAccountNotFound, http.StatusUnauthorized, 1101},
		{"wrong password", store.ErrWrongPassword, http.StatusUnauthorized, 1102},
		{"disabled account", store.ErrAccountDisabled, http.StatusForbidden, 1106},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()

			a := mocks.NewMockSymtoScanCore(ctl)
			s := Server{store: a}

			a.EXPECT().AuthenticateAccount(gomock.Any(), gomock.Any()).Return(nil, tt.storeErr).Times(1)

			body := `{"email":"tester@example.com","password":"secret123"}`
			req := httptest.NewRequest("POST", "/login", strings.NewReader(body))
			w := httptest.NewRecorder()
			newAuthRouter(&s).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code, "wrong status code")

			var resp ErrorResponse
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCode, resp.Code)
		})
	}
}

func TestParseGeoPosition(t *testing.T) {
	lat, long, err := parseGeoPosition("25.0425;121.6115")
	assert.NoError(t, err)
	assert.Equal(t, 25.0425, lat)
	assert.Equal(t, 121.6115, long)

	for _, gp := range []string{"", "25.0425", "25.0425;121.6115;7", "north;south"} {
		_, _, err := parseGeoPosition(gp)
		assert.Error(t, err, "geo-position %q should not parse", gp)
	}
}
