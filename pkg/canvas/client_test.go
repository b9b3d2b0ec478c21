package canvas_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"task-planner/pkg/canvas"
)

func TestListAssignmentsPaginates(t *testing.T) {
	var srvURL string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.URL.Path != "/api/v1/courses/101/assignments" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch r.URL.Query().Get("page") {
		case "":
			if r.URL.Query().Get("per_page") != "100" {
				t.Errorf("per_page = %q", r.URL.Query().Get("per_page"))
			}
			w.Header().Set("Link", fmt.Sprintf(`<%s/api/v1/courses/101/assignments?page=2&per_page=100>; rel="next", <%s/api/v1/courses/101/assignments?page=1&per_page=100>; rel="first"`, srvURL, srvURL))
			w.Write([]byte(`[{"id": 1, "name": "Essay", "due_at": "2025-03-05T23:59:00Z", "points_possible": 20, "assignment_group_id": 7}]`))
		case "2":
			w.Header().Set("Link", fmt.Sprintf(`<%s/api/v1/courses/101/assignments?page=1&per_page=100>; rel="first"`, srvURL))
			w.Write([]byte(`[{"id": 2, "name": "Reading", "due_at": null, "assignment_group_id": 8}]`))
		default:
			w.WriteHeader(http.StatusBadRequest)
		}
	}))
	defer ts.Close()
	srvURL = ts.URL

	client := canvas.NewClient(ts.URL+"/", "secret", canvas.WithRequestsPerMinute(6000))
	got, err := client.ListAssignments(context.Background(), "101")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 assignments across pages, got %d", len(got))
	}
	if got[0].DueAt == nil || *got[0].DueAt != "2025-03-05T23:59:00Z" || got[0].PointsPossible == nil || *got[0].PointsPossible != 20 {
		t.Errorf("unexpected first assignment: %+v", got[0])
	}
	if got[1].DueAt != nil || got[1].AssignmentGroupID != 8 {
		t.Errorf("unexpected second assignment: %+v", got[1])
	}
}

func TestListAssignmentGroups(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/courses/101/assignment_groups" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(`[{"id": 7, "name": "Essays", "group_weight": 40}, {"id": 8, "name": "Reading", "group_weight": 10.5}]`))
	}))
	defer ts.Close()

	groups, err := canvas.NewClient(ts.URL, "secret", canvas.WithHTTPClient(ts.Client())).ListAssignmentGroups(context.Background(), "101")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(groups) != 2 || groups[1].GroupWeight != 10.5 {
		t.Errorf("unexpected groups: %+v", groups)
	}
}

func TestClientErrors(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/courses/401/assignments":
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"errors":[{"message":"Invalid access token."}]}`))
		case "/api/v1/courses/500/assignments":
			w.Write([]byte(`not json`))
		}
	}))
	defer ts.Close()

	client := canvas.NewClient(ts.URL, "bad")

	_, err := client.ListAssignments(context.Background(), "401")
	var apiErr *canvas.APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected APIError 401, got %v", err)
	}

	if _, err := client.ListAssignments(context.Background(), "500"); err == nil {
		t.Errorf("expected decode error")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := client.ListAssignmentGroups(ctx, "401"); err == nil {
		t.Errorf("expected error for cancelled context")
	}
}
