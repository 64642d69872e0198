package taxonomy_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"resort-cms/internal/domain/entity"
	"resort-cms/internal/handler/http/taxonomy"
	"resort-cms/internal/repository"
	taxUC "resort-cms/internal/usecase/taxonomy"
)

type stubTags struct {
	repository.TagRepository
	byArticle map[int64][]*entity.Tag
}

func (s *stubTags) ListForArticle(_ context.Context, articleID int64) ([]*entity.Tag, error) {
	return s.byArticle[articleID], nil
}

type stubSections struct {
	repository.SectionRepository
	byArticle map[int64][]repository.ArticleSection
}

func (s *stubSections) ListForArticle(_ context.Context, articleID int64) ([]repository.ArticleSection, error) {
	return s.byArticle[articleID], nil
}

type stubCategories struct{ repository.CategoryRepository }

type stubArticles struct{ repository.ArticleRepository }

// rejectAll stands in for the auth chain when no credentials are presented.
func rejectAll(http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
}

func newMux() *http.ServeMux {
	svc := &taxUC.Service{
		Tags: &stubTags{byArticle: map[int64][]*entity.Tag{
			10: {{ID: 1, Name: "Wellness", Slug: "wellness", CreatedAt: time.Now()}},
		}},
		Sections: &stubSections{byArticle: map[int64][]repository.ArticleSection{
			10: {{SectionID: 3, PageKey: "home", SectionKey: "latest_news", SectionName: "Latest News"}},
		}},
		Categories: &stubCategories{},
		Articles:   &stubArticles{},
	}
	mux := http.NewServeMux()
	taxonomy.Register(mux, svc, rejectAll, rejectAll)
	return mux
}

// Visitors render tag chips and section placements without credentials;
// only association changes and vocabulary management sit behind the guards.
func TestRegister_ArticleReadsArePublic(t *testing.T) {
	mux := newMux()

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/articles/10/tags", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /articles/10/tags status=%d, want 200 without credentials", rec.Code)
	}
	var tags []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &tags); err != nil {
		t.Fatalf("decode tags: %v", err)
	}
	if len(tags) != 1 || tags[0]["slug"] != "wellness" {
		t.Fatalf("tags=%v", tags)
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/articles/10/sections", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /articles/10/sections status=%d, want 200 without credentials", rec.Code)
	}
	var sections []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &sections); err != nil {
		t.Fatalf("decode sections: %v", err)
	}
	if len(sections) != 1 || sections[0]["pageKey"] != "home" {
		t.Fatalf("sections=%v", sections)
	}
}

func TestRegister_WritesStayGuarded(t *testing.T) {
	mux := newMux()

	writes := []struct {
		method, target string
	}{
		{http.MethodPut, "/admin/articles/10/tags"},
		{http.MethodPut, "/admin/articles/10/sections"},
		{http.MethodPost, "/admin/tags"},
		{http.MethodDelete, "/admin/tags/1"},
		{http.MethodPost, "/admin/categories"},
	}
	for _, w := range writes {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(w.method, w.target, nil))
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s status=%d, want 401 without credentials", w.method, w.target, rec.Code)
		}
	}
}
