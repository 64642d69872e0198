package db

import (
	"database/sql"
	_ "embed"
)

//go:embed seeds/page_sections.sql
var seedPageSectionsSQL string

// MigrateUp creates the CMS schema and seeds the default page sections.
// Statements are idempotent so the migration can run on every startup.
func MigrateUp(db *sql.DB) error {
	tables := []string{
		`CREATE TABLE IF NOT EXISTS article_categories (
    id          SERIAL PRIMARY KEY,
    name        VARCHAR(100) NOT NULL,
    slug        VARCHAR(100) NOT NULL UNIQUE,
    description TEXT NOT NULL DEFAULT '',
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
		`CREATE TABLE IF NOT EXISTS articles (
    id                   SERIAL PRIMARY KEY,
    title                VARCHAR(255) NOT NULL,
    slug                 VARCHAR(255) NOT NULL UNIQUE,
    content              TEXT NOT NULL,
    excerpt              TEXT NOT NULL DEFAULT '',
    cover_image          VARCHAR(500) NOT NULL DEFAULT '',
    category_id          INTEGER REFERENCES article_categories(id),
    author_id            INTEGER NOT NULL,
    author_name          VARCHAR(255) NOT NULL,
    author_email         VARCHAR(320) NOT NULL,
    status               VARCHAR(20) NOT NULL DEFAULT 'draft',
    published_at         TIMESTAMPTZ,
    scheduled_publish_at TIMESTAMPTZ,
    meta_description     VARCHAR(160) NOT NULL DEFAULT '',
    meta_keywords        VARCHAR(255) NOT NULL DEFAULT '',
    og_image             VARCHAR(500) NOT NULL DEFAULT '',
    created_at           TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at           TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
		`CREATE TABLE IF NOT EXISTS allowed_authors (
    id         SERIAL PRIMARY KEY,
    email      VARCHAR(320) NOT NULL UNIQUE,
    name       VARCHAR(255) NOT NULL,
    role       VARCHAR(20) NOT NULL DEFAULT 'author',
    added_by   INTEGER,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
		`CREATE TABLE IF NOT EXISTS tags (
    id         SERIAL PRIMARY KEY,
    name       VARCHAR(50) NOT NULL UNIQUE,
    slug       VARCHAR(50) NOT NULL UNIQUE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
		`CREATE TABLE IF NOT EXISTS article_tags (
    article_id INTEGER NOT NULL REFERENCES articles(id),
    tag_id     INTEGER NOT NULL REFERENCES tags(id),
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    PRIMARY KEY (article_id, tag_id)
)`,
		`CREATE TABLE IF NOT EXISTS page_sections (
    id            SERIAL PRIMARY KEY,
    page_key      VARCHAR(50) NOT NULL,
    section_key   VARCHAR(50) NOT NULL,
    section_name  VARCHAR(100) NOT NULL,
    description   TEXT NOT NULL DEFAULT '',
    display_order INTEGER NOT NULL DEFAULT 0,
    is_active     BOOLEAN NOT NULL DEFAULT TRUE,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
    UNIQUE (page_key, section_key)
)`,
		`CREATE TABLE IF NOT EXISTS article_sections (
    id            SERIAL PRIMARY KEY,
    article_id    INTEGER NOT NULL REFERENCES articles(id),
    section_id    INTEGER NOT NULL REFERENCES page_sections(id),
    display_order INTEGER NOT NULL DEFAULT 0,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
    UNIQUE (article_id, section_id)
)`,
	}
	for _, stmt := range tables {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	indexes := []string{
		// public listing: ORDER BY published_at DESC over published rows
		`CREATE INDEX IF NOT EXISTS idx_articles_status_published_at ON articles(status, published_at DESC)`,
		// editor listing: ORDER BY updated_at DESC
		`CREATE INDEX IF NOT EXISTS idx_articles_updated_at ON articles(updated_at DESC)`,
		// scheduled publisher pass
		`CREATE INDEX IF NOT EXISTS idx_articles_scheduled_publish_at ON articles(scheduled_publish_at) WHERE scheduled_publish_at IS NOT NULL`,
		// ownership scoping for non-admin authors
		`CREATE INDEX IF NOT EXISTS idx_articles_author_email ON articles(author_email)`,
		`CREATE INDEX IF NOT EXISTS idx_article_tags_tag_id ON article_tags(tag_id)`,
		`CREATE INDEX IF NOT EXISTS idx_article_sections_article_id ON article_sections(article_id)`,
	}
	for _, stmt := range indexes {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	if _, err := db.Exec(seedPageSectionsSQL); err != nil {
		return err
	}
	return nil
}
