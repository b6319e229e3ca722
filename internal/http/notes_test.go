package http

import (
	"fmt"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type notesSuite struct {
	apiSuite
}

func TestNotes(t *testing.T) {
	suite.Run(t, new(notesSuite))
}

func (s *notesSuite) createNote(token string, body gin.H) map[string]any {
	w := s.do("POST", "/api/notes/", token, body)
	s.Require().Equal(201, w.Code, w.Body.String())
	return s.decode(w)
}

func (s *notesSuite) TestCreateDefaults() {
	token := s.registerAndLogin("amy")

	created := s.createNote(token, gin.H{"text": "pay rent", "date": "2024-06-01"})
	s.Equal("pay rent", created["text"])
	s.Equal("2024-06-01", created["date"])
	s.Equal("monthly", created["frequency"])
	s.Equal(false, created["completed"])
}

func (s *notesSuite) TestCreateAndRetrieveRoundTrip() {
	token := s.registerAndLogin("amy")

	created := s.createNote(token, gin.H{
		"text":      "water the plants",
		"date":      "2024-06-15",
		"frequency": "weekly",
		"completed": true,
	})

	w := s.do("GET", fmt.Sprintf("/api/notes/%d/", int(created["id"].(float64))), token, nil)
	s.Require().Equal(200, w.Code)
	got := s.decode(w)
	s.Equal("water the plants", got["text"])
	s.Equal("2024-06-15", got["date"])
	s.Equal("weekly", got["frequency"])
	s.Equal(true, got["completed"])
}

func (s *notesSuite) TestCreateValidation() {
	token := s.registerAndLogin("amy")

	w := s.do("POST", "/api/notes/", token, gin.H{})
	s.Equal(400, w.Code)
	s.NotEmpty(s.fieldError(w, "text"))
	s.NotEmpty(s.fieldError(w, "date"))

	w = s.do("POST", "/api/notes/", token, gin.H{"text": "x", "date": "June 1st"})
	s.Equal(400, w.Code)
	s.NotEmpty(s.fieldError(w, "date"))

	w = s.do("POST", "/api/notes/", token, gin.H{"text": "x", "date": "2024-06-01", "frequency": "hourly"})
	s.Equal(400, w.Code)
	s.NotEmpty(s.fieldError(w, "frequency"))
}

func (s *notesSuite) TestListOrderedByDateDesc() {
	token := s.registerAndLogin("amy")

	for _, date := range []string{"2024-03-10", "2024-07-01", "2024-01-05"} {
		s.createNote(token, gin.H{"text": "note for " + date, "date": date})
	}

	w := s.do("GET", "/api/notes/", token, nil)
	s.Require().Equal(200, w.Code)
	list := s.decodeList(w)
	s.Require().Len(list, 3)
	s.Equal("2024-07-01", list[0]["date"])
	s.Equal("2024-03-10", list[1]["date"])
	s.Equal("2024-01-05", list[2]["date"])
}

func (s *notesSuite) TestMarkCompleted() {
	token := s.registerAndLogin("amy")

	created := s.createNote(token, gin.H{"text": "pay rent", "date": "2024-06-01"})
	path := fmt.Sprintf("/api/notes/%d/", int(created["id"].(float64)))

	w := s.do("PATCH", path, token, gin.H{"completed": true})
	s.Require().Equal(200, w.Code)
	s.Equal(true, s.decode(w)["completed"])

	// the other fields are untouched
	w = s.do("GET", path, token, nil)
	s.Require().Equal(200, w.Code)
	got := s.decode(w)
	s.Equal("pay rent", got["text"])
	s.Equal("2024-06-01", got["date"])
}

func (s *notesSuite) TestCrossUserIsolation() {
	amyToken := s.registerAndLogin("amy")
	bobToken := s.registerAndLogin("bob")

	created := s.createNote(amyToken, gin.H{"text": "secret", "date": "2024-06-01"})
	path := fmt.Sprintf("/api/notes/%d/", int(created["id"].(float64)))

	w := s.do("GET", "/api/notes/", bobToken, nil)
	s.Require().Equal(200, w.Code)
	s.Empty(s.decodeList(w))

	s.Equal(404, s.do("GET", path, bobToken, nil).Code)
	s.Equal(404, s.do("PATCH", path, bobToken, gin.H{"text": "mine now"}).Code)
	s.Equal(404, s.do("DELETE", path, bobToken, nil).Code)
}

func (s *notesSuite) TestDelete() {
	token := s.registerAndLogin("amy")

	created := s.createNote(token, gin.H{"text": "pay rent", "date": "2024-06-01"})
	path := fmt.Sprintf("/api/notes/%d/", int(created["id"].(float64)))

	s.Equal(200, s.do("DELETE", path, token, nil).Code)
	s.Equal(404, s.do("GET", path, token, nil).Code)
	s.Equal(404, s.do("DELETE", path, token, nil).Code)
}
