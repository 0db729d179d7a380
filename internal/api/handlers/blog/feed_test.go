package blog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"Inkwell/internal/core/feed"
	"Inkwell/internal/core/posts"
)

// fakeFeedService decodes the cursor like the real one and returns a canned
// page, so the handler's status mapping can be tested in isolation.
type fakeFeedService struct {
	page     *feed.FeedPage
	resp     *feed.PageResponse
	displays map[string]*feed.DisplayPost
}

func (f *fakeFeedService) GetFeed(_ context.Context, cursor string, size int) (*feed.FeedPage, error) {
	if cursor != "" {
		if _, err := feed.DecodeCursor(cursor); err != nil {
			return nil, err
		}
	}
	if _, err := normalize(size); err != nil {
		return nil, err
	}
	return f.page, nil
}

func (f *fakeFeedService) GetPage(_ context.Context, page, size int) (*feed.PageResponse, error) {
	if page < 0 {
		return nil, feed.NewValidationError("page", "page must not be negative")
	}
	if _, err := normalize(size); err != nil {
		return nil, err
	}
	return f.resp, nil
}

func (f *fakeFeedService) GetDisplay(_ context.Context, id string) (*feed.DisplayPost, error) {
	display, ok := f.displays[id]
	if !ok {
		return nil, posts.ErrNotFound
	}
	return display, nil
}

func normalize(size int) (int, error) {
	if size < 0 || size > feed.MaxPageSize {
		return 0, feed.NewValidationError("size", "size out of range")
	}
	return size, nil
}

func serveFeed(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	handler := NewFeedHandler(&fakeFeedService{
		page: &feed.FeedPage{Content: []feed.DisplayPost{}},
		resp: &feed.PageResponse{Content: []feed.DisplayPost{}},
	})

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	if strings.HasPrefix(target, "/blogs/paginated") {
		handler.GetPaginated(rec, req)
	} else {
		handler.GetFeed(rec, req)
	}
	return rec
}

func TestGetDisplayHandler(t *testing.T) {
	handler := NewFeedHandler(&fakeFeedService{
		displays: map[string]*feed.DisplayPost{
			"post-1": {ID: "post-1", AuthorName: "Alice", Title: "Hello"},
			"post-2": {ID: "post-2", AuthorName: feed.FallbackAuthorName, Title: "Orphaned"},
		},
	})
	router := chi.NewRouter()
	router.Get("/blogs/{id}/display", handler.GetDisplay)

	tests := []struct {
		name       string
		id         string
		wantStatus int
		wantAuthor string
	}{
		{"resolved author", "post-1", http.StatusOK, "Alice"},
		{"fallback author", "post-2", http.StatusOK, feed.FallbackAuthorName},
		{"missing post", "post-9", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/blogs/"+tt.id+"/display", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.wantAuthor == "" {
				return
			}
			var display feed.DisplayPost
			if err := json.Unmarshal(rec.Body.Bytes(), &display); err != nil {
				t.Fatalf("body is not a display post: %v", err)
			}
			if display.AuthorName != tt.wantAuthor {
				t.Errorf("authorName = %q, want %q", display.AuthorName, tt.wantAuthor)
			}
		})
	}
}

func TestGetFeedStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantError  string
	}{
		{"no params", "/blogs/feed", http.StatusOK, ""},
		{"valid size", "/blogs/feed?size=20", http.StatusOK, ""},
		{"malformed cursor", "/blogs/feed?cursor=%40%40broken%40%40", http.StatusBadRequest, "InvalidCursor"},
		{"non-numeric size", "/blogs/feed?size=ten", http.StatusBadRequest, "InvalidRequest"},
		{"negative size", "/blogs/feed?size=-5", http.StatusBadRequest, "InvalidRequest"},
		{"paginated ok", "/blogs/paginated?page=0&size=10", http.StatusOK, ""},
		{"paginated bad page", "/blogs/paginated?page=one", http.StatusBadRequest, "InvalidRequest"},
		{"paginated negative page", "/blogs/paginated?page=-1", http.StatusBadRequest, "InvalidRequest"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serveFeed(t, tt.target)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.wantError == "" {
				return
			}
			var body apiError
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("error body is not JSON: %v", err)
			}
			if body.Error != tt.wantError {
				t.Errorf("error type = %q, want %q", body.Error, tt.wantError)
			}
		})
	}
}
