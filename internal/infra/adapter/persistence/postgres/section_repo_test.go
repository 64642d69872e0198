package postgres_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	pg "resort-cms/internal/infra/adapter/persistence/postgres"
)

func TestSectionRepo_ListActive(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE is_active = TRUE")).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "page_key", "section_key", "section_name",
			"description", "display_order", "is_active", "created_at",
		}).AddRow(1, "home", "latest_news", "Latest News", "", 0, true, time.Now()))

	repo := pg.NewSectionRepo(db)
	got, err := repo.ListActive(context.Background())
	if err != nil || len(got) != 1 {
		t.Fatalf("ListActive err=%v len=%d", err, len(got))
	}
	if got[0].PageKey != "home" || got[0].SectionKey != "latest_news" {
		t.Fatalf("unexpected section %+v", got[0])
	}
}

// Display order must follow slice position, not section ID.
func TestSectionRepo_ReplaceForArticle_RecordsOrder(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM article_sections WHERE article_id = $1")).
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO article_sections")).
		WithArgs(int64(9), int64(30), 0).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO article_sections")).
		WithArgs(int64(9), int64(10), 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := pg.NewSectionRepo(db)
	if err := repo.ReplaceForArticle(context.Background(), 9, []int64{30, 10}); err != nil {
		t.Fatalf("ReplaceForArticle err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
