package mappers_test

import (
	"testing"
	"time"

	"github.com/bionicotaku/lingo-services-course/internal/repositories/coursedb"
	"github.com/bionicotaku/lingo-services-course/internal/repositories/mappers"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildUpdateChapterParams(t *testing.T) {
	t.Run("only provided fields are valid", func(t *testing.T) {
		chapterID := uuid.New()
		title := "Intro"
		free := true

		params := mappers.BuildUpdateChapterParams(chapterID, &title, nil, nil, &free)

		assert.Equal(t, chapterID, params.ID)
		assert.True(t, params.Title.Valid)
		assert.Equal(t, title, params.Title.String)
		assert.False(t, params.Description.Valid)
		assert.False(t, params.VideoUrl.Valid)
		assert.True(t, params.IsFree.Valid)
		assert.True(t, params.IsFree.Bool)
	})

	t.Run("false flag is still written", func(t *testing.T) {
		free := false
		params := mappers.BuildUpdateChapterParams(uuid.New(), nil, nil, nil, &free)
		assert.True(t, params.IsFree.Valid)
		assert.False(t, params.IsFree.Bool)
		assert.False(t, params.Title.Valid)
	})
}

func TestChapterFromRow(t *testing.T) {
	now := time.Now()
	row := coursedb.CourseChapter{
		ID:          uuid.New(),
		CourseID:    uuid.New(),
		Title:       "Chapter",
		Description: pgtype.Text{String: "desc", Valid: true},
		Position:    3,
		IsPublished: true,
		CreatedAt:   pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:   pgtype.Timestamptz{Time: now, Valid: true},
	}

	chapter := mappers.ChapterFromRow(row)

	require.NotNil(t, chapter.Description)
	assert.Equal(t, "desc", *chapter.Description)
	assert.Nil(t, chapter.VideoURL)
	assert.Equal(t, int32(3), chapter.Position)
	assert.True(t, chapter.IsPublished)
	assert.Equal(t, time.UTC, chapter.CreatedAt.Location())
	assert.WithinDuration(t, now, chapter.UpdatedAt, time.Second)
}

func TestCourseFromRowPrice(t *testing.T) {
	row := coursedb.CourseCourse{ID: uuid.New(), UserID: "owner", Title: "Go"}
	course := mappers.CourseFromRow(row)
	assert.Nil(t, course.PriceCents)

	row.PriceCents = pgtype.Int8{Int64: 1999, Valid: true}
	course = mappers.CourseFromRow(row)
	require.NotNil(t, course.PriceCents)
	assert.Equal(t, int64(1999), *course.PriceCents)
}

func TestAssetCleanupJobFromRow(t *testing.T) {
	row := coursedb.CourseAssetCleanupJob{
		ID:          uuid.New(),
		AssetID:     "asset-1",
		ChapterID:   uuid.New(),
		Attempts:    2,
		AvailableAt: pgtype.Timestamptz{Time: time.Now(), Valid: true},
		LastError:   pgtype.Text{String: "timeout", Valid: true},
	}
	job := mappers.AssetCleanupJobFromRow(row)
	assert.Equal(t, "asset-1", job.AssetID)
	assert.Equal(t, int32(2), job.Attempts)
	require.NotNil(t, job.LastError)
	assert.Equal(t, "timeout", *job.LastError)
	assert.Nil(t, job.LockToken)
	assert.Nil(t, job.CompletedAt)
}
