package strapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestQueryValues(t *testing.T) {
	q := Query{
		Populate: []string{"featuredImage", "author", "category"},
		Filters: []Filter{
			{Field: []string{"isPublished"}, Value: "true"},
			{Field: []string{"category", "slug"}, Value: "civic-education"},
		},
		Sort: []string{"publishDate:desc"},
	}

	v := q.values()

	if got, want := v.Get("populate"), "featuredImage,author,category"; got != want {
		t.Fatalf("populate = %q, want %q", got, want)
	}
	if got, want := v.Get("filters[isPublished][$eq]"), "true"; got != want {
		t.Fatalf("isPublished filter = %q, want %q", got, want)
	}
	if got, want := v.Get("filters[category][slug][$eq]"), "civic-education"; got != want {
		t.Fatalf("nested filter = %q, want %q", got, want)
	}
	if got, want := v.Get("sort"), "publishDate:desc"; got != want {
		t.Fatalf("sort = %q, want %q", got, want)
	}
}

func TestClientDecodesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/categories" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []map[string]interface{}{
				{"id": 1, "name": "Explainer", "slug": "explainer"},
				{"id": 2, "name": "Trends", "slug": "trends"},
			},
			"meta": map[string]interface{}{
				"pagination": map[string]int{"page": 1, "pageSize": 25, "pageCount": 1, "total": 2},
			},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	var categories []Category
	page, err := c.getList(context.Background(), "/categories", Query{}, &categories)
	if err != nil {
		t.Fatalf("getList: %v", err)
	}

	if len(categories) != 2 {
		t.Fatalf("got %d categories, want 2", len(categories))
	}
	if categories[0].Name != "Explainer" || categories[1].Slug != "trends" {
		t.Fatalf("decoded wrong records: %+v", categories)
	}
	if page == nil || page.Total != 2 {
		t.Fatalf("pagination = %+v, want total 2", page)
	}
}

func TestClientServerErrorNoRetry(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	var categories []Category
	_, err := c.getList(context.Background(), "/categories", Query{}, &categories)
	if err == nil {
		t.Fatal("expected error for 500 response")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.Status != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", apiErr.Status)
	}
	if apiErr.Body != "boom" {
		t.Fatalf("body = %q, want %q", apiErr.Body, "boom")
	}
	if calls != 1 {
		t.Fatalf("made %d requests, want exactly 1 (no retry)", calls)
	}
}

func TestClientTransportError(t *testing.T) {
	// Closed server: connection refused
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewClient(srv.URL, "")
	var categories []Category
	_, err := c.getList(context.Background(), "/categories", Query{}, &categories)
	if err == nil {
		t.Fatal("expected transport error")
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Fatalf("transport failure should not be an *APIError: %v", err)
	}
}

func TestClientBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got, want := r.Header.Get("Authorization"), "Bearer sekrit"; got != want {
			t.Errorf("Authorization = %q, want %q", got, want)
		}
		w.Write([]byte(`{"data": []}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "sekrit")
	var categories []Category
	if _, err := c.getList(context.Background(), "/categories", Query{}, &categories); err != nil {
		t.Fatalf("getList: %v", err)
	}
}

func TestClientNoTokenNoHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "" {
			t.Errorf("unexpected Authorization header %q", got)
		}
		w.Write([]byte(`{"data": []}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	var categories []Category
	if _, err := c.getList(context.Background(), "/categories", Query{}, &categories); err != nil {
		t.Fatalf("getList: %v", err)
	}
}

func TestClientCreateWrapsData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		var body map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if _, ok := body["data"]; !ok {
			t.Error("payload not wrapped in data envelope")
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"data": {"id": 1}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok")
	err := c.Create(context.Background(), "/categories", map[string]string{"name": "Youth", "slug": "youth"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
}
