package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"finance-backend-go/internal/config"
	"finance-backend-go/internal/database"
)

const testPassword = "longpass1"

// apiSuite spins up the full router over an in-memory database for every
// test, so each test sees a fresh store.
type apiSuite struct {
	suite.Suite
	router *gin.Engine
	db     *gorm.DB
}

func (s *apiSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:?_pragma=foreign_keys(1)"), &gorm.Config{})
	s.Require().NoError(err, "failed to open test database")
	s.Require().NoError(database.Migrate(db))

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	cfg := &config.Config{
		AllowOrigins: "*",
		JWTSecret:    "test-secret",
		AccessTTL:    time.Minute,
		RefreshTTL:   time.Hour,
	}

	s.db = db
	s.router = NewServer(cfg, db, logger)
}

func (s *apiSuite) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// registerAndLogin creates a user through the API and returns a usable
// access token.
func (s *apiSuite) registerAndLogin(username string) string {
	w := s.do("POST", "/api/auth/register/", "", gin.H{"username": username, "password": testPassword})
	s.Require().Equal(201, w.Code, "register failed: %s", w.Body.String())

	w = s.do("POST", "/api/auth/login/", "", gin.H{"username": username, "password": testPassword})
	s.Require().Equal(200, w.Code, "login failed: %s", w.Body.String())

	access, ok := s.decode(w)["access"].(string)
	s.Require().True(ok, "login response missing access token")
	return access
}

func (s *apiSuite) decode(w *httptest.ResponseRecorder) map[string]any {
	var m map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &m), "body: %s", w.Body.String())
	return m
}

func (s *apiSuite) decodeList(w *httptest.ResponseRecorder) []map[string]any {
	var l []map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &l), "body: %s", w.Body.String())
	return l
}

// parseTime parses an RFC3339 body field. Timestamp rendering can differ
// between an in-memory response and a DB round-trip, so assertions compare
// instants, never raw strings.
func (s *apiSuite) parseTime(v any) time.Time {
	raw, ok := v.(string)
	s.Require().True(ok, "expected timestamp string, got %T (%v)", v, v)
	t, err := time.Parse(time.RFC3339, raw)
	s.Require().NoError(err)
	return t
}

func (s *apiSuite) fieldError(w *httptest.ResponseRecorder, field string) string {
	errs, ok := s.decode(w)["errors"].(map[string]any)
	s.Require().True(ok, "response has no field errors: %s", w.Body.String())
	msg, _ := errs[field].(string)
	return msg
}
