package services

import (
	"testing"
	"time"

	"herhub/internal/models"
)

func TestFilterTypeTag(t *testing.T) {
	cases := []struct {
		filter string
		want   string
	}{
		{FilterAll, ""},
		{FilterResources, "resource"},
		{FilterPhotoPosts, "image"},
		{FilterAdvice, "tip"},
		{FilterAskForHelp, "chat"},
		{"Something Else", ""},
	}
	for _, tc := range cases {
		if got := FilterTypeTag(tc.filter); got != tc.want {
			t.Errorf("FilterTypeTag(%q) = %q, want %q", tc.filter, got, tc.want)
		}
	}
}

func TestFilterLabelForTagRoundTrip(t *testing.T) {
	for _, filter := range []string{FilterResources, FilterPhotoPosts, FilterAdvice, FilterAskForHelp} {
		tag := FilterTypeTag(filter)
		if got := FilterLabelForTag(tag); got != filter {
			t.Errorf("FilterLabelForTag(%q) = %q, want %q", tag, got, filter)
		}
	}
	if got := FilterLabelForTag(models.PostTypePoll); got != "" {
		t.Errorf("FilterLabelForTag(poll) = %q, want empty", got)
	}
}

func TestOrderClause(t *testing.T) {
	if got := OrderClause(SortNewest); got != "created_at DESC" {
		t.Errorf("OrderClause(newest) = %q", got)
	}
	if got := OrderClause(SortMostPopular); got != "likes_count DESC" {
		t.Errorf("OrderClause(most_popular) = %q", got)
	}
	if got := OrderClause("weird"); got != "" {
		t.Errorf("OrderClause(weird) = %q, want empty fallback", got)
	}
}

func TestPaginate(t *testing.T) {
	cases := []struct {
		name           string
		page, limit    int
		total          int64
		wantSkip       int
		wantTotalPages int
		wantHasMore    bool
	}{
		{"first page", 1, 10, 25, 0, 3, true},
		{"middle page", 2, 10, 25, 10, 3, true},
		{"last page", 3, 10, 25, 20, 3, false},
		{"past the end", 5, 10, 25, 40, 3, false},
		{"exact fit", 2, 5, 10, 5, 2, false},
		{"empty store", 1, 10, 0, 0, 0, false},
		{"defaults applied", 0, 0, 25, 0, 3, true},
	}
	for _, tc := range cases {
		skip, p := Paginate(tc.page, tc.limit, tc.total)
		if skip != tc.wantSkip {
			t.Errorf("%s: skip = %d, want %d", tc.name, skip, tc.wantSkip)
		}
		if p.TotalPages != tc.wantTotalPages {
			t.Errorf("%s: totalPages = %d, want %d", tc.name, p.TotalPages, tc.wantTotalPages)
		}
		if p.HasMore != tc.wantHasMore {
			t.Errorf("%s: hasMore = %v, want %v", tc.name, p.HasMore, tc.wantHasMore)
		}
		if p.TotalItems != tc.total {
			t.Errorf("%s: totalItems = %d, want %d", tc.name, p.TotalItems, tc.total)
		}
	}
}

func TestPaginateSkipFormula(t *testing.T) {
	for page := 1; page <= 7; page++ {
		for _, limit := range []int{1, 3, 10} {
			skip, p := Paginate(page, limit, 100)
			if skip != (page-1)*limit {
				t.Fatalf("skip for page=%d limit=%d: got %d", page, limit, skip)
			}
			if p.CurrentPage != page || p.Limit != limit {
				t.Fatalf("pagination echo mismatch: %+v", p)
			}
		}
	}
}

func TestAssembleFeed(t *testing.T) {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	posts := []models.Post{
		{
			ID:  1,
			Pid: "abc123xy",
			User: models.User{
				Username: "rosa",
				Avatar:   "/uploads/avatars/rosa.png",
			},
			Type:          models.PostTypeTip,
			Text:          "water your plants",
			LikesCount:    4,
			CommentsCount: 2,
			CreatedAt:     created,
		},
		{
			ID:        2,
			Pid:       "def456zw",
			User:      models.User{Username: "maya"},
			Type:      models.PostTypeImage,
			ImageURL:  "/uploads/posts/x.png",
			CreatedAt: created,
		},
	}

	liked := map[uint]bool{1: true}
	saved := map[uint]bool{2: true}

	got := AssembleFeed(posts, liked, saved)
	if len(got) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(got))
	}

	first := got[0]
	if first.ID != "abc123xy" || first.Author != "rosa" {
		t.Errorf("unexpected identity fields: %+v", first)
	}
	if first.AuthorAvatar == nil || *first.AuthorAvatar != "/uploads/avatars/rosa.png" {
		t.Errorf("avatar not carried over: %+v", first.AuthorAvatar)
	}
	if !first.IsLiked || first.IsSaved {
		t.Errorf("membership flags wrong: liked=%v saved=%v", first.IsLiked, first.IsSaved)
	}
	if first.ImageURL != nil {
		t.Errorf("expected nil imageUrl for a tip post, got %v", *first.ImageURL)
	}

	second := got[1]
	if second.IsLiked || !second.IsSaved {
		t.Errorf("membership flags wrong: liked=%v saved=%v", second.IsLiked, second.IsSaved)
	}
	if second.AuthorAvatar != nil {
		t.Errorf("expected nil avatar, got %v", *second.AuthorAvatar)
	}
	if second.ImageURL == nil || *second.ImageURL != "/uploads/posts/x.png" {
		t.Errorf("imageUrl not carried over")
	}
	if second.Text != "" {
		t.Errorf("expected empty text, got %q", second.Text)
	}
}

func TestAssembleFeedEmptySets(t *testing.T) {
	posts := []models.Post{
		{ID: 1, Pid: "abc", User: models.User{Username: "rosa"}},
	}
	// A requester with no membership rows (or one that no longer exists)
	// gets every flag false.
	got := AssembleFeed(posts, map[uint]bool{}, map[uint]bool{})
	if got[0].IsLiked || got[0].IsSaved {
		t.Errorf("expected all flags false, got %+v", got[0])
	}
}

func TestLikedSavedSetsDegradedRequester(t *testing.T) {
	// No requester and no posts both short-circuit to empty sets without
	// touching the store, and neither is an error.
	liked, saved, err := LikedSavedSets(0, []uint{1, 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(liked) != 0 || len(saved) != 0 {
		t.Errorf("expected empty sets, got liked=%v saved=%v", liked, saved)
	}

	liked, saved, err = LikedSavedSets(7, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(liked) != 0 || len(saved) != 0 {
		t.Errorf("expected empty sets, got liked=%v saved=%v", liked, saved)
	}
}

func TestPostIDs(t *testing.T) {
	ids := PostIDs([]models.Post{{ID: 3}, {ID: 9}})
	if len(ids) != 2 || ids[0] != 3 || ids[1] != 9 {
		t.Errorf("PostIDs mismatch: %v", ids)
	}
}
