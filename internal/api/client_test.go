package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/clubcompass/clubcompass/internal/config"
	"github.com/clubcompass/clubcompass/internal/quiz"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := New(config.Config{APIURL: srv.URL, Timeout: 5 * time.Second})
	c.http.RetryMax = 0
	return c
}

func TestLoadCatalog(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/quiz/questions" {
			t.Errorf("path = %s, want /api/quiz/questions", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"questions": []map[string]any{
				{"id": 1, "question": "How do you work best?", "options": []string{"Alone", "In a team"}},
			},
		})
	}))

	catalog, err := c.LoadCatalog(context.Background())
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if len(catalog) != 1 || catalog[0].ID != 1 || len(catalog[0].Options) != 2 {
		t.Errorf("catalog = %+v", catalog)
	}
}

func TestLoadCatalog_Empty(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"questions": []any{}})
	}))

	_, err := c.LoadCatalog(context.Background())
	var lerr *quiz.LoadError
	if !errors.As(err, &lerr) {
		t.Fatalf("LoadCatalog error = %v, want *quiz.LoadError", err)
	}
}

func TestLoadCatalog_ServerError(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail": "boom"}`, http.StatusInternalServerError)
	}))

	_, err := c.LoadCatalog(context.Background())
	var lerr *quiz.LoadError
	if !errors.As(err, &lerr) {
		t.Fatalf("LoadCatalog error = %v, want *quiz.LoadError", err)
	}
	var apiErr *Error
	if !errors.As(err, &apiErr) || apiErr.Detail != "boom" {
		t.Errorf("wrapped error = %v, want api detail preserved", err)
	}
}

func TestScore(t *testing.T) {
	var gotAuth string
	var gotBody submitInput

	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(quiz.Result{
			PersonalityType:        "Tech Explorer",
			PersonalityDescription: "You love building things.",
			Recommendations: []quiz.Recommendation{
				{ClubID: "c1", ClubName: "Robotics", MatchPercentage: 92, Reason: "strong technical interest"},
			},
		})
	}))
	c.SetToken("tok-123")

	answers := []quiz.Answer{{QuestionID: 1, Choice: "Coding"}}
	result, err := c.Score(context.Background(), answers)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}

	if gotAuth != "Bearer tok-123" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if len(gotBody.Answers) != 1 || gotBody.Answers[0].Choice != "Coding" {
		t.Errorf("submitted body = %+v", gotBody)
	}
	if result.PersonalityType != "Tech Explorer" || len(result.Recommendations) != 1 {
		t.Errorf("result = %+v", result)
	}
}

func TestScore_MalformedResponse(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Missing personality_type, match_percentage out of range.
		_, _ = w.Write([]byte(`{"personality_description": "x", "recommendations": [{"club_id": "c1", "club_name": "X", "match_percentage": 130, "reason": ""}]}`))
	}))

	_, err := c.Score(context.Background(), []quiz.Answer{{QuestionID: 1, Choice: "A"}})
	var serr *quiz.SubmissionError
	if !errors.As(err, &serr) {
		t.Fatalf("Score error = %v, want *quiz.SubmissionError", err)
	}
}

func TestScore_ServerFailure(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail": "scoring unavailable"}`, http.StatusServiceUnavailable)
	}))

	_, err := c.Score(context.Background(), []quiz.Answer{{QuestionID: 1, Choice: "A"}})
	var serr *quiz.SubmissionError
	if !errors.As(err, &serr) {
		t.Fatalf("Score error = %v, want *quiz.SubmissionError", err)
	}
}

func TestLastResult_None(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("null"))
	}))

	result, err := c.LastResult(context.Background())
	if err != nil {
		t.Fatalf("LastResult: %v", err)
	}
	if result != nil {
		t.Errorf("result = %+v, want nil for never-taken quiz", result)
	}
}

func TestLogin_InstallsToken(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(Token{
			AccessToken: "fresh-token",
			TokenType:   "bearer",
			User:        User{ID: "u1", Name: "Priya", Role: "fresher"},
		})
	}))

	tok, err := c.Login(context.Background(), "priya@example.edu", "hunter2")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if tok.User.Name != "Priya" {
		t.Errorf("user = %+v", tok.User)
	}
	if c.Token() != "fresh-token" {
		t.Errorf("client token = %q, want installed login token", c.Token())
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail": "Invalid email or password"}`, http.StatusUnauthorized)
	}))

	_, err := c.Login(context.Background(), "x@example.edu", "wrong")
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("Login error = %v, want *Error", err)
	}
	if !apiErr.IsAuth() {
		t.Errorf("IsAuth() = false for HTTP %d", apiErr.Status)
	}
	if apiErr.Detail != "Invalid email or password" {
		t.Errorf("Detail = %q", apiErr.Detail)
	}
}

func TestTokenExpired(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	signed := func(exp time.Time) string {
		tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": "u1",
			"exp": exp.Unix(),
		})
		s, err := tok.SignedString([]byte("test-secret"))
		if err != nil {
			t.Fatalf("sign token: %v", err)
		}
		return s
	}

	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{"empty", "", true},
		{"garbage", "not-a-jwt", true},
		{"expired", signed(now.Add(-time.Hour)), true},
		{"valid", signed(now.Add(time.Hour)), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TokenExpired(tt.token, now); got != tt.want {
				t.Errorf("TokenExpired = %v, want %v", got, tt.want)
			}
		})
	}
}
