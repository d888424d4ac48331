package repository_test

import (
	"os"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const testSchemaSQL = `
CREATE EXTENSION IF NOT EXISTS pgcrypto;
CREATE TABLE IF NOT EXISTS products (
  id BIGSERIAL PRIMARY KEY,
  name TEXT NOT NULL,
  slug TEXT NOT NULL CONSTRAINT products_slug_key UNIQUE,
  description TEXT,
  price NUMERIC(12,2) NOT NULL,
  image_url TEXT,
  images TEXT[],
  product_type TEXT,
  stock_quantity INTEGER NOT NULL DEFAULT 0,
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE TABLE IF NOT EXISTS categories (
  id BIGSERIAL PRIMARY KEY,
  name TEXT NOT NULL CONSTRAINT categories_name_key UNIQUE,
  slug TEXT NOT NULL CONSTRAINT categories_slug_key UNIQUE,
  description TEXT,
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE TABLE IF NOT EXISTS articles (
  id BIGSERIAL PRIMARY KEY,
  title TEXT NOT NULL,
  slug TEXT NOT NULL CONSTRAINT articles_slug_key UNIQUE,
  excerpt TEXT,
  content TEXT NOT NULL,
  image_url TEXT,
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE TABLE IF NOT EXISTS profiles (
  id UUID PRIMARY KEY,
  username TEXT CONSTRAINT profiles_username_key UNIQUE,
  full_name TEXT,
  website TEXT,
  avatar_url TEXT,
  role TEXT NOT NULL DEFAULT 'user',
  updated_at TIMESTAMPTZ
);
CREATE TABLE IF NOT EXISTS media (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  storage_bucket_id TEXT NOT NULL,
  storage_object_path TEXT NOT NULL,
  alt_text TEXT,
  title TEXT,
  caption TEXT,
  original_filename TEXT,
  mime_type TEXT,
  size_kb BIGINT,
  uploaded_by UUID,
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

func openTestDB(t *testing.T) (*gorm.DB, string) {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect db: %v", err)
	}
	if err := db.Exec(testSchemaSQL).Error; err != nil {
		t.Fatalf("failed schema setup: %v", err)
	}
	return db, dsn
}
