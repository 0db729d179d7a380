package feed

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"Inkwell/internal/core/posts"
	"Inkwell/internal/userinfo"
)

// fakeGateway serves feed queries from an in-memory slice, ordered the way
// the real store orders them: createdAt descending, id descending.
type fakeGateway struct {
	posts []*posts.Post
	err   error

	countErr error
}

func (f *fakeGateway) sorted() []*posts.Post {
	out := make([]*posts.Post, len(f.posts))
	copy(out, f.posts)
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

func (f *fakeGateway) GetByID(_ context.Context, id string) (*posts.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, posts.ErrNotFound
}

func (f *fakeGateway) ListNewest(_ context.Context, limit int) ([]*posts.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	all := f.sorted()
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeGateway) ListBefore(_ context.Context, before time.Time, limit int) ([]*posts.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*posts.Post
	for _, p := range f.sorted() {
		if p.CreatedAt.Before(before) {
			out = append(out, p)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeGateway) ListPage(_ context.Context, page, size int) ([]*posts.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	all := f.sorted()
	start := page * size
	if start >= len(all) {
		return nil, nil
	}
	end := start + size
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], nil
}

func (f *fakeGateway) Count(_ context.Context) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return int64(len(f.posts)), nil
}

// fakeDirectory resolves from a fixed map; ids not in the map stay
// unresolved, exactly like a lookup failure.
type fakeDirectory struct {
	users map[string]userinfo.UserInfo
	calls int
}

func (f *fakeDirectory) LookupAll(_ context.Context, userIDs []string) map[string]userinfo.UserInfo {
	f.calls++
	out := make(map[string]userinfo.UserInfo)
	for _, id := range userIDs {
		if info, ok := f.users[id]; ok {
			out[id] = info
		}
	}
	return out
}

var baseTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// seedPosts creates n posts with strictly increasing creation times, author
// alternating between two users.
func seedPosts(n int) []*posts.Post {
	out := make([]*posts.Post, 0, n)
	authors := []string{"6f1f6e0a-8b62-4c5e-9a34-0c3e6f1d2b01", "7a2b3c4d-5e6f-4a7b-8c9d-0e1f2a3b4c02"}
	for i := 1; i <= n; i++ {
		out = append(out, &posts.Post{
			ID:        fmt.Sprintf("post-%03d", i),
			AuthorID:  authors[i%2],
			Title:     fmt.Sprintf("Title %d", i),
			Content:   "body",
			CreatedAt: baseTime.Add(time.Duration(i) * time.Minute),
		})
	}
	return out
}

func newTestService(gateway *fakeGateway, directory *fakeDirectory) Service {
	return NewFeedService(gateway, directory, nil)
}

func TestGetFeedWalksAllPages(t *testing.T) {
	all := seedPosts(25)
	gateway := &fakeGateway{posts: all}
	directory := &fakeDirectory{users: map[string]userinfo.UserInfo{}}
	svc := newTestService(gateway, directory)

	// First page: posts 25..16, more to come.
	page1, err := svc.GetFeed(context.Background(), "", 10)
	if err != nil {
		t.Fatalf("GetFeed(first page) returned error: %v", err)
	}
	if len(page1.Content) != 10 || page1.Size != 10 {
		t.Fatalf("first page has %d items (size %d), want 10", len(page1.Content), page1.Size)
	}
	if !page1.HasMore {
		t.Error("first page should have more")
	}
	if page1.Content[0].ID != "post-025" || page1.Content[9].ID != "post-016" {
		t.Errorf("first page spans %s..%s, want post-025..post-016", page1.Content[0].ID, page1.Content[9].ID)
	}
	wantCursor := EncodeCursor(baseTime.Add(16 * time.Minute))
	if page1.NextCursor != wantCursor {
		t.Errorf("first page cursor = %q, want creation time of post-016", page1.NextCursor)
	}

	// Second page continues from the cursor without overlap.
	page2, err := svc.GetFeed(context.Background(), page1.NextCursor, 10)
	if err != nil {
		t.Fatalf("GetFeed(second page) returned error: %v", err)
	}
	if page2.Content[0].ID != "post-015" || page2.Content[9].ID != "post-006" {
		t.Errorf("second page spans %s..%s, want post-015..post-006", page2.Content[0].ID, page2.Content[9].ID)
	}
	if !page2.HasMore {
		t.Error("second page should have more")
	}

	// Last page: only 5 posts remain, no cursor past the end.
	page3, err := svc.GetFeed(context.Background(), page2.NextCursor, 10)
	if err != nil {
		t.Fatalf("GetFeed(last page) returned error: %v", err)
	}
	if len(page3.Content) != 5 {
		t.Fatalf("last page has %d items, want 5", len(page3.Content))
	}
	if page3.HasMore {
		t.Error("last page should not have more")
	}
	if page3.NextCursor != "" {
		t.Errorf("last page cursor = %q, want empty", page3.NextCursor)
	}
	if page3.Content[4].ID != "post-001" {
		t.Errorf("last item = %s, want post-001", page3.Content[4].ID)
	}
}

func TestGetFeedIsIdempotentPerCursor(t *testing.T) {
	gateway := &fakeGateway{posts: seedPosts(12)}
	svc := newTestService(gateway, &fakeDirectory{})

	first, err := svc.GetFeed(context.Background(), "", 5)
	if err != nil {
		t.Fatal(err)
	}
	again, err := svc.GetFeed(context.Background(), "", 5)
	if err != nil {
		t.Fatal(err)
	}
	if first.NextCursor != again.NextCursor || len(first.Content) != len(again.Content) {
		t.Error("same cursor should produce the same page when the store is unchanged")
	}
	for i := range first.Content {
		if first.Content[i].ID != again.Content[i].ID {
			t.Errorf("item %d differs between identical requests", i)
		}
	}
}

func TestGetFeedOrderIsNewestFirst(t *testing.T) {
	gateway := &fakeGateway{posts: seedPosts(8)}
	svc := newTestService(gateway, &fakeDirectory{})

	page, err := svc.GetFeed(context.Background(), "", 8)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(page.Content); i++ {
		if page.Content[i].CreatedAt.After(page.Content[i-1].CreatedAt) {
			t.Fatalf("page not in descending order at index %d", i)
		}
	}
}

func TestGetFeedInvalidCursor(t *testing.T) {
	gateway := &fakeGateway{posts: seedPosts(3)}
	svc := newTestService(gateway, &fakeDirectory{})

	_, err := svc.GetFeed(context.Background(), "@@not-a-cursor@@", 10)
	if !errors.Is(err, ErrInvalidCursor) {
		t.Errorf("GetFeed with bad cursor = %v, want ErrInvalidCursor", err)
	}
}

func TestGetFeedStoreFailureReturnsEmptyPage(t *testing.T) {
	gateway := &fakeGateway{err: errors.New("connection reset")}
	svc := newTestService(gateway, &fakeDirectory{})

	page, err := svc.GetFeed(context.Background(), "", 10)
	if err != nil {
		t.Fatalf("store failure should not surface as an error, got %v", err)
	}
	if len(page.Content) != 0 || page.HasMore || page.NextCursor != "" {
		t.Errorf("store failure should yield an empty page, got %+v", page)
	}
	if page.Content == nil {
		t.Error("empty page must serialize content as [], not null")
	}
}

func TestGetFeedSizeValidation(t *testing.T) {
	gateway := &fakeGateway{posts: seedPosts(30)}
	svc := newTestService(gateway, &fakeDirectory{})

	tests := []struct {
		name     string
		size     int
		wantErr  bool
		wantSize int
	}{
		{"zero uses default", 0, false, DefaultPageSize},
		{"explicit size honored", 7, false, 7},
		{"max size allowed", 100, false, 30},
		{"negative rejected", -1, true, 0},
		{"over max rejected", 101, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := svc.GetFeed(context.Background(), "", tt.size)
			if tt.wantErr {
				if !IsValidationError(err) {
					t.Errorf("size %d: got %v, want validation error", tt.size, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("size %d: unexpected error %v", tt.size, err)
			}
			if len(page.Content) != tt.wantSize {
				t.Errorf("size %d: got %d items, want %d", tt.size, len(page.Content), tt.wantSize)
			}
		})
	}
}

func TestComposeResolvesAuthors(t *testing.T) {
	all := seedPosts(4)
	directory := &fakeDirectory{users: map[string]userinfo.UserInfo{
		all[0].AuthorID: {Name: "Alice", Avatar: "https://cdn.example/alice.png"},
		all[1].AuthorID: {Name: "Bob"},
	}}
	svc := newTestService(&fakeGateway{posts: all}, directory)

	page, err := svc.GetFeed(context.Background(), "", 4)
	if err != nil {
		t.Fatal(err)
	}
	if directory.calls != 1 {
		t.Errorf("directory called %d times for one page, want 1", directory.calls)
	}
	for _, item := range page.Content {
		if item.AuthorName == "" {
			t.Errorf("post %s has empty author name", item.ID)
		}
	}
}

func TestComposeFallsBackWhenDirectoryIsDown(t *testing.T) {
	// Directory resolves nothing, as when the user service is unreachable.
	svc := newTestService(&fakeGateway{posts: seedPosts(5)}, &fakeDirectory{})

	page, err := svc.GetFeed(context.Background(), "", 5)
	if err != nil {
		t.Fatalf("unresolved authors must not fail the page, got %v", err)
	}
	if len(page.Content) != 5 {
		t.Fatalf("got %d items, want all 5; posts must never be dropped", len(page.Content))
	}
	for _, item := range page.Content {
		if item.AuthorName != FallbackAuthorName {
			t.Errorf("post %s author = %q, want %q", item.ID, item.AuthorName, FallbackAuthorName)
		}
		if item.AuthorAvatar != "" {
			t.Errorf("post %s fallback avatar = %q, want empty", item.ID, item.AuthorAvatar)
		}
	}
}

func TestComposePartialResolution(t *testing.T) {
	all := seedPosts(5)
	// Only the even-indexed author resolves; the other gets the fallback.
	directory := &fakeDirectory{users: map[string]userinfo.UserInfo{
		all[1].AuthorID: {Name: "Carol"},
	}}
	svc := newTestService(&fakeGateway{posts: all}, directory)

	page, err := svc.GetFeed(context.Background(), "", 5)
	if err != nil {
		t.Fatal(err)
	}
	var resolved, fellBack int
	for _, item := range page.Content {
		switch item.AuthorName {
		case "Carol":
			resolved++
		case FallbackAuthorName:
			fellBack++
		default:
			t.Errorf("unexpected author name %q", item.AuthorName)
		}
	}
	if resolved == 0 || fellBack == 0 {
		t.Errorf("want a mix of resolved and fallback authors, got %d/%d", resolved, fellBack)
	}
}

func TestComposeEmptyNameGetsFallback(t *testing.T) {
	all := seedPosts(2)
	directory := &fakeDirectory{users: map[string]userinfo.UserInfo{
		all[0].AuthorID: {Name: "", Avatar: "https://cdn.example/ghost.png"},
		all[1].AuthorID: {Name: "", Avatar: ""},
	}}
	svc := newTestService(&fakeGateway{posts: all}, directory)

	page, err := svc.GetFeed(context.Background(), "", 2)
	if err != nil {
		t.Fatal(err)
	}
	for _, item := range page.Content {
		if item.AuthorName != FallbackAuthorName {
			t.Errorf("empty resolved name should fall back, got %q", item.AuthorName)
		}
	}
}

func TestGetDisplay(t *testing.T) {
	all := seedPosts(3)
	directory := &fakeDirectory{users: map[string]userinfo.UserInfo{
		all[0].AuthorID: {Name: "Alice", Avatar: "https://cdn.example/alice.png"},
	}}
	svc := newTestService(&fakeGateway{posts: all}, directory)

	display, err := svc.GetDisplay(context.Background(), all[0].ID)
	if err != nil {
		t.Fatalf("GetDisplay returned error: %v", err)
	}
	if display.ID != all[0].ID || display.Title != all[0].Title {
		t.Errorf("wrong post: %+v", display)
	}
	if display.AuthorName != "Alice" || display.AuthorAvatar != "https://cdn.example/alice.png" {
		t.Errorf("author not resolved: %+v", display)
	}
}

func TestGetDisplayFallsBack(t *testing.T) {
	all := seedPosts(1)
	svc := newTestService(&fakeGateway{posts: all}, &fakeDirectory{})

	display, err := svc.GetDisplay(context.Background(), all[0].ID)
	if err != nil {
		t.Fatalf("unresolved author must not fail the lookup, got %v", err)
	}
	if display.AuthorName != FallbackAuthorName {
		t.Errorf("author = %q, want %q", display.AuthorName, FallbackAuthorName)
	}
}

func TestGetDisplayNotFound(t *testing.T) {
	svc := newTestService(&fakeGateway{posts: seedPosts(1)}, &fakeDirectory{})

	_, err := svc.GetDisplay(context.Background(), "no-such-post")
	if !errors.Is(err, posts.ErrNotFound) {
		t.Errorf("got %v, want posts.ErrNotFound", err)
	}
}

func TestGetPage(t *testing.T) {
	gateway := &fakeGateway{posts: seedPosts(25)}
	svc := newTestService(gateway, &fakeDirectory{})

	tests := []struct {
		name         string
		page         int
		wantItems    int
		wantHasNext  bool
		wantHasPrev  bool
		wantFirstID  string
	}{
		{"first page", 0, 10, true, false, "post-025"},
		{"middle page", 1, 10, true, true, "post-015"},
		{"last page", 2, 5, false, true, "post-005"},
		{"past the end", 3, 0, false, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.GetPage(context.Background(), tt.page, 10)
			if err != nil {
				t.Fatal(err)
			}
			if len(resp.Content) != tt.wantItems {
				t.Errorf("page %d has %d items, want %d", tt.page, len(resp.Content), tt.wantItems)
			}
			if resp.TotalElements != 25 || resp.TotalPages != 3 {
				t.Errorf("totals = %d elements / %d pages, want 25 / 3", resp.TotalElements, resp.TotalPages)
			}
			if resp.HasNext != tt.wantHasNext || resp.HasPrevious != tt.wantHasPrev {
				t.Errorf("hasNext/hasPrevious = %v/%v, want %v/%v",
					resp.HasNext, resp.HasPrevious, tt.wantHasNext, tt.wantHasPrev)
			}
			if tt.wantItems > 0 && resp.Content[0].ID != tt.wantFirstID {
				t.Errorf("first item = %s, want %s", resp.Content[0].ID, tt.wantFirstID)
			}
		})
	}
}

func TestGetPageCursors(t *testing.T) {
	gateway := &fakeGateway{posts: seedPosts(25)}
	svc := newTestService(gateway, &fakeDirectory{})

	resp, err := svc.GetPage(context.Background(), 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if resp.NextCursor != EncodeCursor(baseTime.Add(6*time.Minute)) {
		t.Errorf("next cursor should encode the last item's creation time")
	}
	if resp.PreviousCursor != EncodeCursor(baseTime.Add(15*time.Minute)) {
		t.Errorf("previous cursor should encode the first item's creation time")
	}
}

func TestGetPageNegativePage(t *testing.T) {
	svc := newTestService(&fakeGateway{}, &fakeDirectory{})

	_, err := svc.GetPage(context.Background(), -1, 10)
	if !IsValidationError(err) {
		t.Errorf("negative page: got %v, want validation error", err)
	}
}

func TestGetPageStoreFailure(t *testing.T) {
	tests := []struct {
		name    string
		gateway *fakeGateway
	}{
		{"page query fails", &fakeGateway{err: errors.New("timeout")}},
		{"count fails", &fakeGateway{posts: seedPosts(5), countErr: errors.New("timeout")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(tt.gateway, &fakeDirectory{})
			resp, err := svc.GetPage(context.Background(), 2, 10)
			if err != nil {
				t.Fatalf("store failure should not surface as an error, got %v", err)
			}
			if len(resp.Content) != 0 || resp.TotalElements != 0 {
				t.Errorf("store failure should yield an empty response, got %+v", resp)
			}
			if resp.Page != 2 || resp.Size != 10 {
				t.Errorf("empty response should echo page/size, got %d/%d", resp.Page, resp.Size)
			}
		})
	}
}
