package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jj55j7/fridge-mate/config"
	"github.com/jj55j7/fridge-mate/models"
)

func setupLikeDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.FoodPost{}, &models.MatchRecord{}))

	prev := config.DB
	config.DB = db
	t.Cleanup(func() { config.DB = prev })
	return db
}

func makeUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()
	u := &models.User{Email: name + "@example.com", Username: name, Password: "x"}
	require.NoError(t, db.Create(u).Error)
	return u
}

func TestRecordLike_MutualFlow(t *testing.T) {
	db := setupLikeDB(t)
	svc := testMatchService()
	alice := makeUser(t, db, "alice")
	bob := makeUser(t, db, "bob")

	mutual, err := RecordLike(svc, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, mutual)

	// Liking again is a no-op, not a second row.
	mutual, err = RecordLike(svc, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, mutual)
	var count int64
	db.Model(&models.MatchRecord{}).Count(&count)
	assert.EqualValues(t, 1, count)

	// The returned like completes the match and flags both rows.
	mutual, err = RecordLike(svc, bob.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, mutual)

	var records []models.MatchRecord
	require.NoError(t, db.Find(&records).Error)
	require.Len(t, records, 2)
	for _, r := range records {
		assert.True(t, r.Mutual, "row %d->%d not flagged", r.UserID, r.TargetID)
	}

	matches, err := MutualMatchesFor(alice.ID)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, bob.ID, matches[0].ID)
}

func TestRecordLike_Rejections(t *testing.T) {
	db := setupLikeDB(t)
	svc := testMatchService()
	alice := makeUser(t, db, "alice")

	_, err := RecordLike(svc, alice.ID, alice.ID)
	assert.Error(t, err)

	_, err = RecordLike(svc, alice.ID, 9999)
	assert.Error(t, err)
}

// A failed mutual-flag write must surface as an error and must not
// report the pair as matched.
func TestRecordLike_MutualWriteFailure(t *testing.T) {
	db := setupLikeDB(t)
	svc := testMatchService()
	alice := makeUser(t, db, "alice")
	bob := makeUser(t, db, "bob")

	require.NoError(t, db.Create(&models.MatchRecord{UserID: alice.ID, TargetID: bob.ID}).Error)
	require.NoError(t, db.Create(&models.MatchRecord{UserID: bob.ID, TargetID: alice.ID}).Error)
	require.NoError(t, db.Exec(`CREATE TRIGGER reject_like_updates BEFORE UPDATE ON match_records
		BEGIN SELECT RAISE(ABORT, 'update rejected'); END`).Error)

	mutual, err := RecordLike(svc, bob.ID, alice.ID)
	assert.Error(t, err)
	assert.False(t, mutual)

	var records []models.MatchRecord
	require.NoError(t, db.Find(&records).Error)
	for _, r := range records {
		assert.False(t, r.Mutual)
	}
}
