package postgres_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	"resort-cms/internal/domain/entity"
	pg "resort-cms/internal/infra/adapter/persistence/postgres"
	"resort-cms/internal/repository"
)

var articleCols = []string{
	"id", "title", "slug", "content", "excerpt", "cover_image", "category_id",
	"author_id", "author_name", "author_email", "status", "published_at",
	"scheduled_publish_at", "meta_description", "meta_keywords", "og_image",
	"created_at", "updated_at",
}

func artRow(a *entity.Article) *sqlmock.Rows {
	return sqlmock.NewRows(articleCols).AddRow(
		a.ID, a.Title, a.Slug, a.Content, a.Excerpt, a.CoverImage, a.CategoryID,
		a.AuthorID, a.AuthorName, a.AuthorEmail, string(a.Status), a.PublishedAt,
		a.ScheduledPublishAt, a.MetaDescription, a.MetaKeywords, a.OGImage,
		a.CreatedAt, a.UpdatedAt,
	)
}

func TestArticleRepo_Get(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	want := &entity.Article{
		ID: 1, Title: "New spa menu", Slug: "new-spa-menu", Content: "body",
		AuthorID: 7, AuthorName: "Sato", AuthorEmail: "sato@example.com",
		Status: entity.StatusDraft, CreatedAt: now, UpdatedAt: now,
	}

	mock.ExpectQuery(regexp.QuoteMeta("FROM articles")).
		WithArgs(int64(1)).
		WillReturnRows(artRow(want))

	repo := pg.NewArticleRepo(db)
	got, err := repo.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_Get_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("FROM articles")).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(articleCols))

	repo := pg.NewArticleRepo(db)
	got, err := repo.Get(context.Background(), 99)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for missing row, got %+v", got)
	}
}

func TestArticleRepo_GetPublishedBySlug_SkipsDrafts(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("slug = $1 AND status = 'published'")).
		WithArgs("draft-only").
		WillReturnRows(sqlmock.NewRows(articleCols))

	repo := pg.NewArticleRepo(db)
	got, err := repo.GetPublishedBySlug(context.Background(), "draft-only")
	if err != nil {
		t.Fatalf("GetPublishedBySlug err=%v", err)
	}
	if got != nil {
		t.Fatalf("draft must not resolve through the public path, got %+v", got)
	}
}

func TestArticleRepo_ListPublished_WithFilters(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	catID := int64(3)
	mock.ExpectQuery(`ORDER BY published_at DESC`).
		WithArgs(catID, "%onsen%", 20, 10).
		WillReturnRows(artRow(&entity.Article{
			ID: 1, Title: "Onsen guide", Slug: "onsen-guide",
			Status: entity.StatusPublished, PublishedAt: &now,
			CreatedAt: now, UpdatedAt: now,
		}))

	repo := pg.NewArticleRepo(db)
	got, err := repo.ListPublished(context.Background(),
		repository.PublishedFilter{CategoryID: &catID, Search: "onsen"}, 10, 20)
	if err != nil || len(got) != 1 {
		t.Fatalf("ListPublished err=%v len=%d", err, len(got))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_CountAdmin_ScopedToAuthor(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM articles WHERE author_email = $1")).
		WithArgs("sato@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	repo := pg.NewArticleRepo(db)
	got, err := repo.CountAdmin(context.Background(),
		repository.AdminFilter{AuthorEmail: "sato@example.com"})
	if err != nil || got != 4 {
		t.Fatalf("CountAdmin got=%d err=%v", got, err)
	}
}

func TestArticleRepo_SlugTaken(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs("new-spa-menu", int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	repo := pg.NewArticleRepo(db)
	taken, err := repo.SlugTaken(context.Background(), "new-spa-menu", 5)
	if err != nil || !taken {
		t.Fatalf("SlugTaken got=%v err=%v", taken, err)
	}
}

func TestArticleRepo_Create_ReturnsID(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO articles")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

	repo := pg.NewArticleRepo(db)
	a := &entity.Article{Title: "t", Slug: "t", Content: "c", Status: entity.StatusDraft}
	if err := repo.Create(context.Background(), a); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if a.ID != 42 {
		t.Fatalf("Create did not set ID, got %d", a.ID)
	}
}

func TestArticleRepo_Update_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE articles")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := pg.NewArticleRepo(db)
	err := repo.Update(context.Background(), &entity.Article{ID: 99, Status: entity.StatusDraft})
	if err == nil {
		t.Fatal("expected error for zero rows affected")
	}
}

func TestArticleRepo_Delete_Transactional(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM article_tags WHERE article_id = $1")).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM article_sections WHERE article_id = $1")).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM articles WHERE id = $1")).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := pg.NewArticleRepo(db)
	if err := repo.Delete(context.Background(), 7); err != nil {
		t.Fatalf("Delete err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_ListDueScheduled(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	due := now.Add(-time.Minute)
	mock.ExpectQuery(regexp.QuoteMeta("scheduled_publish_at <= $1")).
		WithArgs(now).
		WillReturnRows(artRow(&entity.Article{
			ID: 3, Title: "Autumn menu", Slug: "autumn-menu",
			Status: entity.StatusDraft, ScheduledPublishAt: &due,
			CreatedAt: now, UpdatedAt: now,
		}))

	repo := pg.NewArticleRepo(db)
	got, err := repo.ListDueScheduled(context.Background(), now)
	if err != nil || len(got) != 1 {
		t.Fatalf("ListDueScheduled err=%v len=%d", err, len(got))
	}
}

func TestArticleRepo_MarkPublished(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	at := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta("SET status = 'published', published_at = $1, updated_at = $1\nWHERE id = $2\n  AND status = 'draft'")).
		WithArgs(at, int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := pg.NewArticleRepo(db)
	if err := repo.MarkPublished(context.Background(), 3, at); err != nil {
		t.Fatalf("MarkPublished err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

// An article published by hand after the due-list query matches zero rows,
// keeping its original published_at; the publisher treats that as success.
func TestArticleRepo_MarkPublished_SkipsAlreadyPublished(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	at := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta("AND status = 'draft'")).
		WithArgs(at, int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := pg.NewArticleRepo(db)
	if err := repo.MarkPublished(context.Background(), 3, at); err != nil {
		t.Fatalf("MarkPublished err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
