package repository

import (
	"fmt"
	"testing"
	"time"

	"anima/internal/models"
)

func newArticleRepo(t *testing.T) *ArticleRepository {
	t.Helper()
	return NewArticleRepository(newTestDB(t))
}

func createArticle(t *testing.T, repo *ArticleRepository, slug string) models.Article {
	t.Helper()
	a := models.Article{Slug: slug, Title: "Title " + slug}
	if err := repo.Create(&a); err != nil {
		t.Fatalf("create article: %v", err)
	}
	return a
}

func TestArticleStartsAsDraft(t *testing.T) {
	repo := newArticleRepo(t)
	a := createArticle(t, repo, "anxiety-basics")

	if a.IsPublished {
		t.Fatalf("new article must start unpublished")
	}
	visible, err := repo.ListVisible()
	if err != nil {
		t.Fatalf("listvisible: %v", err)
	}
	if len(visible) != 0 {
		t.Fatalf("draft leaked into public list")
	}
	all, err := repo.ListAll()
	if err != nil {
		t.Fatalf("listall: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("draft missing from admin list")
	}
}

func TestPublishSetsTimestampOnceOnly(t *testing.T) {
	repo := newArticleRepo(t)
	a := createArticle(t, repo, "sleep-hygiene")

	published, err := repo.Publish(a.ID)
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if !published.IsPublished || published.PublishedAt == nil {
		t.Fatalf("publish did not set state: %+v", published)
	}
	first := *published.PublishedAt

	time.Sleep(10 * time.Millisecond)
	republished, err := repo.Publish(a.ID)
	if err != nil {
		t.Fatalf("republish: %v", err)
	}
	if !republished.PublishedAt.Equal(first) {
		t.Fatalf("republish moved published_at: %v -> %v", first, *republished.PublishedAt)
	}
}

func TestUnpublishKeepsTimestamp(t *testing.T) {
	repo := newArticleRepo(t)
	a := createArticle(t, repo, "grief-support")

	published, err := repo.Publish(a.ID)
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	first := *published.PublishedAt

	draft, err := repo.Unpublish(a.ID)
	if err != nil {
		t.Fatalf("unpublish: %v", err)
	}
	if draft.IsPublished {
		t.Fatalf("unpublish did not clear flag")
	}
	if draft.PublishedAt == nil || !draft.PublishedAt.Equal(first) {
		t.Fatalf("unpublish must keep published_at, got %v", draft.PublishedAt)
	}

	// Publishing again after unpublish keeps the original first-published time.
	again, err := repo.Publish(a.ID)
	if err != nil {
		t.Fatalf("second publish: %v", err)
	}
	if !again.PublishedAt.Equal(first) {
		t.Fatalf("second publish moved published_at: %v -> %v", first, *again.PublishedAt)
	}
}

func TestGetBySlugRespectsPublishGate(t *testing.T) {
	repo := newArticleRepo(t)
	a := createArticle(t, repo, "mindfulness-intro")

	if _, err := repo.GetBySlug("mindfulness-intro", true); err == nil {
		t.Fatalf("draft must be invisible to public slug lookup")
	}
	if _, err := repo.GetBySlug("mindfulness-intro", false); err != nil {
		t.Fatalf("admin slug lookup: %v", err)
	}
	if _, err := repo.Publish(a.ID); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if _, err := repo.GetBySlug("mindfulness-intro", true); err != nil {
		t.Fatalf("published slug lookup: %v", err)
	}
}

func TestFeaturedCapAndFilter(t *testing.T) {
	repo := newArticleRepo(t)

	for i := 0; i < 8; i++ {
		a := createArticle(t, repo, fmt.Sprintf("featured-%d", i))
		if _, err := repo.Update(a.ID, map[string]any{"is_featured": true, "sort_order": i}); err != nil {
			t.Fatalf("feature: %v", err)
		}
		if _, err := repo.Publish(a.ID); err != nil {
			t.Fatalf("publish: %v", err)
		}
	}
	// One featured draft and one published non-featured must not appear.
	draft := createArticle(t, repo, "featured-draft")
	if _, err := repo.Update(draft.ID, map[string]any{"is_featured": true}); err != nil {
		t.Fatalf("feature draft: %v", err)
	}
	plain := createArticle(t, repo, "plain")
	if _, err := repo.Publish(plain.ID); err != nil {
		t.Fatalf("publish plain: %v", err)
	}

	list, err := repo.Featured()
	if err != nil {
		t.Fatalf("featured: %v", err)
	}
	if len(list) != FeaturedLimit {
		t.Fatalf("expected cap of %d, got %d", FeaturedLimit, len(list))
	}
	for _, a := range list {
		if !a.IsFeatured || !a.IsPublished {
			t.Fatalf("non-qualifying article in featured list: %+v", a)
		}
		if a.Slug == "featured-draft" || a.Slug == "plain" {
			t.Fatalf("filter leak: %s", a.Slug)
		}
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].SortOrder > list[i].SortOrder {
			t.Fatalf("featured list not ordered by sort_order")
		}
	}
}
