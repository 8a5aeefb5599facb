package leadsapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"landing-app/internal/domain/pages"
)

// openLeadsDB builds an in-memory database carrying the leads table with the
// same composite unique index the model tags produce on Postgres. SQLite
// matches Postgres in treating NULLs as distinct inside a unique index, so
// the page-less duplicate behavior is the same.
func openLeadsDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	// single connection so every statement sees the same in-memory db
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec(`CREATE TABLE leads (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		email TEXT NOT NULL,
		first_name TEXT,
		last_name TEXT,
		phone TEXT,
		page_id TEXT,
		campaign_id TEXT,
		source TEXT,
		status TEXT NOT NULL DEFAULT 'new',
		notes TEXT,
		created_at DATETIME,
		updated_at DATETIME
	)`).Error)
	require.NoError(t, db.Exec(
		`CREATE UNIQUE INDEX idx_leads_email_page ON leads(email, page_id)`,
	).Error)

	return db
}

func countLeads(t *testing.T, db *gorm.DB, email string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Table("leads").Where("email = ?", email).Count(&n).Error)
	return n
}

func TestSubmitDeduplicatesSamePage(t *testing.T) {
	db := openLeadsDB(t)
	page := &pages.LandingPage{ID: "5f1d6f0a-0000-0000-0000-000000000001", Slug: "webinar"}
	sub := Submission{Name: "Ana", Email: "x@example.com"}

	first, created, err := Submit(db, page, sub)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.True(t, created)

	second, created, err := Submit(db, page, sub)
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.False(t, created)

	// the repeat signup acknowledges the existing lead, writes nothing
	assert.Equal(t, first.ID, second.ID)
	assert.EqualValues(t, 1, countLeads(t, db, "x@example.com"))
}

func TestSubmitDeduplicatesWithoutSourcePage(t *testing.T) {
	db := openLeadsDB(t)
	sub := Submission{Name: "Ana", Email: "x@example.com"}

	first, created, err := Submit(db, nil, sub)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.True(t, created)

	second, created, err := Submit(db, nil, sub)
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.False(t, created)

	assert.Equal(t, first.ID, second.ID)
	assert.EqualValues(t, 1, countLeads(t, db, "x@example.com"))
}

func TestSubmitAllowsSameEmailAcrossPages(t *testing.T) {
	db := openLeadsDB(t)
	pageA := &pages.LandingPage{ID: "5f1d6f0a-0000-0000-0000-00000000000a", Slug: "webinar"}
	pageB := &pages.LandingPage{ID: "5f1d6f0a-0000-0000-0000-00000000000b", Slug: "ebook"}
	sub := Submission{Name: "Ana", Email: "x@example.com"}

	_, created, err := Submit(db, pageA, sub)
	require.NoError(t, err)
	assert.True(t, created)

	// uniqueness is scoped per page: a second page of the same campaign may
	// capture the same visitor
	_, created, err = Submit(db, pageB, sub)
	require.NoError(t, err)
	assert.True(t, created)

	assert.EqualValues(t, 2, countLeads(t, db, "x@example.com"))
}

func TestSubmitNormalizesEmailScope(t *testing.T) {
	db := openLeadsDB(t)
	page := &pages.LandingPage{ID: "5f1d6f0a-0000-0000-0000-000000000001", Slug: "webinar"}

	_, created, err := Submit(db, page, Submission{Name: "Ana", Email: "X@Example.com"})
	require.NoError(t, err)
	assert.True(t, created)

	_, created, err = Submit(db, page, Submission{Name: "Ana", Email: " x@example.com "})
	require.NoError(t, err)
	assert.False(t, created)

	assert.EqualValues(t, 1, countLeads(t, db, "x@example.com"))
}
