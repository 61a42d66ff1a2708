package repository

import (
	"neuroscreen_backend/internal/model"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.ModalityResult{}))
	return db
}

func TestUpsertOverwritesPriorResult(t *testing.T) {
	repo := NewModalityRepository(newTestDB(t))

	require.NoError(t, repo.Upsert(&model.ModalityResult{
		UserID: 1, Modality: model.ModalitySpeech, Score: 40, LabelEN: "first",
	}))
	require.NoError(t, repo.Upsert(&model.ModalityResult{
		UserID: 1, Modality: model.ModalitySpeech, Score: 75, LabelEN: "second",
	}))

	var count int64
	require.NoError(t, repo.DB.Model(&model.ModalityResult{}).Where("user_id = ?", 1).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	result, err := repo.FindByUserAndModality(1, model.ModalitySpeech)
	require.NoError(t, err)
	assert.Equal(t, 75.0, result.Score)
	assert.Equal(t, "second", result.LabelEN)
}

func TestRetakeAfterReset(t *testing.T) {
	repo := NewModalityRepository(newTestDB(t))

	require.NoError(t, repo.Upsert(&model.ModalityResult{
		UserID: 1, Modality: model.ModalitySpeech, Score: 40,
	}))
	require.NoError(t, repo.DeleteByUserID(1))

	set, err := repo.ScoreSet(1)
	require.NoError(t, err)
	assert.Nil(t, set.Speech)

	// A retake after a reset must land in the freed slot and be visible.
	require.NoError(t, repo.Upsert(&model.ModalityResult{
		UserID: 1, Modality: model.ModalitySpeech, Score: 75,
	}))

	set, err = repo.ScoreSet(1)
	require.NoError(t, err)
	require.NotNil(t, set.Speech)
	assert.Equal(t, 75.0, set.Speech.Score)
}

func TestDeleteByUserIDLeavesOtherUsersAlone(t *testing.T) {
	repo := NewModalityRepository(newTestDB(t))

	require.NoError(t, repo.Upsert(&model.ModalityResult{
		UserID: 1, Modality: model.ModalityVision, Score: 60,
	}))
	require.NoError(t, repo.Upsert(&model.ModalityResult{
		UserID: 2, Modality: model.ModalityVision, Score: 90,
	}))

	require.NoError(t, repo.DeleteByUserID(1))

	set, err := repo.ScoreSet(2)
	require.NoError(t, err)
	require.NotNil(t, set.Vision)
	assert.Equal(t, 90.0, set.Vision.Score)
}
