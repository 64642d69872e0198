package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"resort-cms/internal/domain/entity"
	pg "resort-cms/internal/infra/adapter/persistence/postgres"
)

func TestTagRepo_ExistsByNameOrSlug(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE name = $1 OR slug = $2")).
		WithArgs("Wellness", "wellness").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	repo := pg.NewTagRepo(db)
	exists, err := repo.ExistsByNameOrSlug(context.Background(), "Wellness", "wellness")
	if err != nil || !exists {
		t.Fatalf("ExistsByNameOrSlug got=%v err=%v", exists, err)
	}
}

func TestTagRepo_Create_ReturnsID(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO tags")).
		WithArgs("Wellness", "wellness", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	repo := pg.NewTagRepo(db)
	tag := &entity.Tag{Name: "Wellness", Slug: "wellness", CreatedAt: time.Now()}
	if err := repo.Create(context.Background(), tag); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if tag.ID != 11 {
		t.Fatalf("Create did not set ID, got %d", tag.ID)
	}
}

func TestTagRepo_Delete_CascadesJunctions(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM article_tags WHERE tag_id = $1")).
		WithArgs(int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM tags WHERE id = $1")).
		WithArgs(int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := pg.NewTagRepo(db)
	if err := repo.Delete(context.Background(), 11); err != nil {
		t.Fatalf("Delete err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestTagRepo_ReplaceForArticle(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM article_tags WHERE article_id = $1")).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO article_tags")).
		WithArgs(int64(5), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO article_tags")).
		WithArgs(int64(5), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := pg.NewTagRepo(db)
	if err := repo.ReplaceForArticle(context.Background(), 5, []int64{1, 2}); err != nil {
		t.Fatalf("ReplaceForArticle err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

// A failed insert must roll back the delete, leaving the old set intact.
func TestTagRepo_ReplaceForArticle_RollsBackOnFailure(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM article_tags WHERE article_id = $1")).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO article_tags")).
		WithArgs(int64(5), int64(999)).
		WillReturnError(errors.New("foreign key violation"))
	mock.ExpectRollback()

	repo := pg.NewTagRepo(db)
	if err := repo.ReplaceForArticle(context.Background(), 5, []int64{999}); err == nil {
		t.Fatal("expected error from failing insert")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestTagRepo_ReplaceForArticle_EmptyClearsAll(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM article_tags WHERE article_id = $1")).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	repo := pg.NewTagRepo(db)
	if err := repo.ReplaceForArticle(context.Background(), 5, nil); err != nil {
		t.Fatalf("ReplaceForArticle err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
