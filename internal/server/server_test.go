package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"revtrain/internal/badges"
	"revtrain/internal/codeeval"
	"revtrain/internal/codegen"
	"revtrain/internal/errorcatalog"
	"revtrain/internal/llm"
	"revtrain/internal/review"
	"revtrain/internal/store"
	"revtrain/internal/workflow"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeEvents struct {
	store.EventRepo
	reviews   []store.ReviewEventData
	practices []store.PracticeEventData
}

func (f *fakeEvents) AppendPractice(_ context.Context, d store.PracticeEventData) error {
	f.practices = append(f.practices, d)
	return nil
}

func (f *fakeEvents) AppendReview(_ context.Context, d store.ReviewEventData) error {
	f.reviews = append(f.reviews, d)
	return nil
}

func (f *fakeEvents) AppendBadge(_ context.Context, _ store.BadgeEventData) error {
	return nil
}

func (f *fakeEvents) StatsFor(_ context.Context, userID string) (*store.UserStats, error) {
	return &store.UserStats{UserID: userID, Points: 55, Sessions: 1}, nil
}

func (f *fakeEvents) CategoryStatsFor(_ context.Context, _ string) ([]store.CategoryStat, error) {
	return []store.CategoryStat{{Category: "LogicalErrors", Encountered: 2, Identified: 1}}, nil
}

func (f *fakeEvents) HasBadge(_ context.Context, _, _ string) (bool, error) {
	return false, nil
}

func (f *fakeEvents) Leaderboard(_ context.Context, limit int) ([]store.LeaderboardRow, error) {
	rows := []store.LeaderboardRow{
		{UserID: "alice", Points: 120, Sessions: 3, Badges: 2},
		{UserID: "bob", Points: 80, Sessions: 2, Badges: 1},
	}
	if limit < len(rows) {
		rows = rows[:limit]
	}
	return rows, nil
}

type testServer struct {
	ts         *httptest.Server
	client     *http.Client
	genMock    *llm.MockProvider
	evalMock   *llm.MockProvider
	graderMock *llm.MockProvider
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	catalog, err := errorcatalog.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	genMock := llm.NewMockProvider()
	evalMock := llm.NewMockProvider()
	graderMock := llm.NewMockProvider()
	events := &fakeEvents{}
	badgeSvc := badges.NewService(events, nil)

	engine := workflow.NewEngine(
		codegen.NewGenerator(genMock, codegen.DefaultConfig()),
		codeeval.NewEvaluator(evalMock, codeeval.DefaultConfig()),
		review.NewGrader(graderMock, review.DefaultConfig()),
		catalog,
		nil,
	)
	manager := workflow.NewManager(engine, events, badgeSvc, nil)
	srv := New(Config{SecretKey: []byte("0123456789abcdef0123456789abcdef")}, manager, badgeSvc, catalog, nil)

	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatal(err)
	}

	return &testServer{
		ts:         ts,
		client:     &http.Client{Jar: jar},
		genMock:    genMock,
		evalMock:   evalMock,
		graderMock: graderMock,
	}
}

func (s *testServer) do(t *testing.T, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req, err := http.NewRequest(method, s.ts.URL+path, &buf)
	if err != nil {
		t.Fatal(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := s.client.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var decoded map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode %s %s: %v", method, path, err)
	}
	return resp, decoded
}

func queueGeneration(t *testing.T, s *testServer) {
	t.Helper()
	s.genMock.AddResponse(llm.TextResponse("```java-annotated\n" +
		"public class Order {\n" +
		"    int qty; // ERROR: LOGICAL - Off-by-one error\n" +
		"}\n" +
		"```\n" +
		"```java-clean\n" +
		"public class Order {\n" +
		"    int qty;\n" +
		"}\n" +
		"```\n"))

	eval, err := json.Marshal(codeeval.Evaluation{
		FoundErrors:   []string{"LogicalErrors - Off-by-one error", "SyntaxErrors - Missing semicolon"},
		MissingErrors: []string{},
	})
	if err != nil {
		t.Fatal(err)
	}
	s.evalMock.AddResponse(llm.MockResponse{Content: eval})
}

func createSession(t *testing.T, s *testServer) map[string]any {
	t.Helper()
	queueGeneration(t, s)
	resp, body := s.do(t, http.MethodPost, "/api/sessions", map[string]any{
		"selected_errors": []map[string]string{
			{"category": "LogicalErrors", "name": "Off-by-one error"},
			{"category": "SyntaxErrors", "name": "Missing semicolon"},
		},
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create session: status %d, body %v", resp.StatusCode, body)
	}
	return body
}

func TestCreateSessionHidesDefects(t *testing.T) {
	s := newTestServer(t)
	body := createSession(t, s)

	code, _ := body["code"].(string)
	if code == "" {
		t.Fatal("response missing code")
	}
	if strings.Contains(code, "ERROR") {
		t.Errorf("served code leaks defect markers:\n%s", code)
	}
	if body["error_count"].(float64) != 2 {
		t.Errorf("error_count = %v, want 2", body["error_count"])
	}
	if body["completed"].(bool) {
		t.Error("fresh session marked completed")
	}
	for _, forbidden := range []string{"annotated", "requested_errors", "known_problems"} {
		if _, ok := body[forbidden]; ok {
			t.Errorf("response leaks %q", forbidden)
		}
	}
}

func TestCurrentSessionRoundTrip(t *testing.T) {
	s := newTestServer(t)
	created := createSession(t, s)

	resp, body := s.do(t, http.MethodGet, "/api/sessions/current", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("current session: status %d", resp.StatusCode)
	}
	if body["id"] != created["id"] {
		t.Errorf("id = %v, want %v", body["id"], created["id"])
	}
}

func TestCurrentSessionWithoutCookie(t *testing.T) {
	s := newTestServer(t)
	resp, _ := s.do(t, http.MethodGet, "/api/sessions/current", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestSubmitReviewBadFormat(t *testing.T) {
	s := newTestServer(t)
	createSession(t, s)

	resp, body := s.do(t, http.MethodPost, "/api/sessions/current/review", map[string]string{
		"review": "looks fine to me",
	})
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422 (%v)", resp.StatusCode, body)
	}
}

func TestSubmitReviewCompletesSession(t *testing.T) {
	s := newTestServer(t)
	createSession(t, s)

	analysis, err := json.Marshal(review.Analysis{
		IdentifiedProblems: []string{"LogicalErrors - Off-by-one error", "SyntaxErrors - Missing semicolon"},
		MissedProblems:     []string{},
	})
	if err != nil {
		t.Fatal(err)
	}
	s.graderMock.AddResponse(llm.MockResponse{Content: analysis})
	s.graderMock.AddResponse(llm.TextResponse("# Session Report"))

	resp, body := s.do(t, http.MethodPost, "/api/sessions/current/review", map[string]string{
		"review": "Line 2: quantity is off by one\nLine 3: missing semicolon",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body %v", resp.StatusCode, body)
	}
	if body["completed"] != true {
		t.Fatalf("session not completed: %v", body)
	}
	if body["report"] != "# Session Report" {
		t.Errorf("report = %v", body["report"])
	}

	// The completed session is gone from the registry.
	resp, _ = s.do(t, http.MethodGet, "/api/sessions/current", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("completed session still current: status %d", resp.StatusCode)
	}
}

func TestSubmitReviewSerializesPerSession(t *testing.T) {
	s := newTestServer(t)
	createSession(t, s)

	weak, err := json.Marshal(review.Analysis{
		IdentifiedProblems: []string{"LogicalErrors - Off-by-one error"},
		MissedProblems:     []string{"SyntaxErrors - Missing semicolon"},
	})
	if err != nil {
		t.Fatal(err)
	}
	// Two submissions, each grading insufficient with a guidance follow-up.
	s.graderMock.AddResponse(llm.MockResponse{Content: weak})
	s.graderMock.AddResponse(llm.TextResponse("hint 1"))
	s.graderMock.AddResponse(llm.MockResponse{Content: weak})
	s.graderMock.AddResponse(llm.TextResponse("hint 2"))

	submit := func() (int, map[string]any, error) {
		payload := bytes.NewBufferString(`{"review": "Line 2: quantity is off by one"}`)
		req, err := http.NewRequest(http.MethodPost, s.ts.URL+"/api/sessions/current/review", payload)
		if err != nil {
			return 0, nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		resp, err := s.client.Do(req)
		if err != nil {
			return 0, nil, err
		}
		defer resp.Body.Close()
		var body map[string]any
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return 0, nil, err
		}
		return resp.StatusCode, body, nil
	}

	type outcome struct {
		status int
		body   map[string]any
		err    error
	}
	results := make(chan outcome, 2)
	for i := 0; i < 2; i++ {
		go func() {
			status, body, err := submit()
			results <- outcome{status, body, err}
		}()
	}

	remaining := map[float64]bool{}
	for i := 0; i < 2; i++ {
		r := <-results
		if r.err != nil {
			t.Fatalf("concurrent submit: %v", r.err)
		}
		if r.status != http.StatusOK {
			t.Fatalf("concurrent submit: status %d, body %v", r.status, r.body)
		}
		remaining[r.body["iterations_remaining"].(float64)] = true
	}
	// Serialized grading means the two submissions saw different iterations.
	if !remaining[2] || !remaining[1] {
		t.Errorf("iterations_remaining seen = %v, want {2, 1}", remaining)
	}

	resp, body := s.do(t, http.MethodGet, "/api/sessions/current", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("current session: status %d", resp.StatusCode)
	}
	if body["current_iteration"].(float64) != 3 {
		t.Errorf("current_iteration = %v, want 3", body["current_iteration"])
	}
	attempts := body["attempts"].([]any)
	if len(attempts) != 2 {
		t.Fatalf("attempts = %d, want 2", len(attempts))
	}
	seen := map[float64]bool{}
	for _, a := range attempts {
		seen[a.(map[string]any)["iteration"].(float64)] = true
	}
	if !seen[1] || !seen[2] {
		t.Errorf("attempt iterations = %v, want 1 and 2", seen)
	}
}

func TestCatalogEndpoints(t *testing.T) {
	s := newTestServer(t)

	resp, body := s.do(t, http.MethodGet, "/api/catalog/categories", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("categories: status %d", resp.StatusCode)
	}
	cats, _ := body["categories"].([]any)
	if len(cats) == 0 {
		t.Fatal("no categories returned")
	}

	resp, body = s.do(t, http.MethodGet, "/api/catalog/errors?category=LogicalErrors", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("errors: status %d", resp.StatusCode)
	}
	errs, _ := body["errors"].([]any)
	if len(errs) == 0 {
		t.Fatal("no errors returned for LogicalErrors")
	}

	resp, _ = s.do(t, http.MethodGet, "/api/catalog/errors?category=NoSuchCategory", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown category: status %d, want 404", resp.StatusCode)
	}

	resp, _ = s.do(t, http.MethodGet, "/api/catalog/errors", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("no filter: status %d, want 400", resp.StatusCode)
	}
}

func TestLeaderboardAndProfile(t *testing.T) {
	s := newTestServer(t)

	resp, body := s.do(t, http.MethodGet, "/api/leaderboard?limit=1", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("leaderboard: status %d", resp.StatusCode)
	}
	rows, _ := body["leaderboard"].([]any)
	if len(rows) != 1 {
		t.Errorf("leaderboard rows = %d, want 1", len(rows))
	}

	resp, body = s.do(t, http.MethodGet, "/api/profile", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("profile: status %d", resp.StatusCode)
	}
	if body["points"].(float64) != 55 {
		t.Errorf("points = %v, want 55", body["points"])
	}
}
