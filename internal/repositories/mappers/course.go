// Package mappers 负责 coursedb 行与 po 领域对象之间的转换。
package mappers

import (
	"time"

	"github.com/bionicotaku/lingo-services-course/internal/models/po"
	"github.com/bionicotaku/lingo-services-course/internal/repositories/coursedb"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// CourseFromRow 将 sqlc CourseCourse 转换为领域对象。
func CourseFromRow(row coursedb.CourseCourse) *po.Course {
	return &po.Course{
		ID:          row.ID,
		UserID:      row.UserID,
		Title:       row.Title,
		PriceCents:  int8Ptr(row.PriceCents),
		IsPublished: row.IsPublished,
		CreatedAt:   mustTimestamp(row.CreatedAt),
		UpdatedAt:   mustTimestamp(row.UpdatedAt),
	}
}

// ChapterFromRow 将 sqlc CourseChapter 转换为领域对象。
func ChapterFromRow(row coursedb.CourseChapter) *po.Chapter {
	return &po.Chapter{
		ID:          row.ID,
		CourseID:    row.CourseID,
		Title:       row.Title,
		Description: textPtr(row.Description),
		VideoURL:    textPtr(row.VideoUrl),
		Position:    row.Position,
		IsPublished: row.IsPublished,
		IsFree:      row.IsFree,
		CreatedAt:   mustTimestamp(row.CreatedAt),
		UpdatedAt:   mustTimestamp(row.UpdatedAt),
	}
}

// ChaptersFromRows 批量转换章节行，保持查询顺序。
func ChaptersFromRows(rows []coursedb.CourseChapter) []*po.Chapter {
	out := make([]*po.Chapter, 0, len(rows))
	for _, row := range rows {
		out = append(out, ChapterFromRow(row))
	}
	return out
}

// PurchaseFromRow 转换购买记录。
func PurchaseFromRow(row coursedb.CoursePurchase) *po.Purchase {
	return &po.Purchase{
		ID:        row.ID,
		UserID:    row.UserID,
		CourseID:  row.CourseID,
		CreatedAt: mustTimestamp(row.CreatedAt),
		UpdatedAt: mustTimestamp(row.UpdatedAt),
	}
}

// AttachmentFromRow 转换附件记录。
func AttachmentFromRow(row coursedb.CourseAttachment) *po.Attachment {
	return &po.Attachment{
		ID:        row.ID,
		CourseID:  row.CourseID,
		Name:      row.Name,
		URL:       row.Url,
		CreatedAt: mustTimestamp(row.CreatedAt),
		UpdatedAt: mustTimestamp(row.UpdatedAt),
	}
}

// UserProgressFromRow 转换进度记录。
func UserProgressFromRow(row coursedb.CourseUserProgress) *po.UserProgress {
	return &po.UserProgress{
		ID:          row.ID,
		UserID:      row.UserID,
		ChapterID:   row.ChapterID,
		IsCompleted: row.IsCompleted,
		CreatedAt:   mustTimestamp(row.CreatedAt),
		UpdatedAt:   mustTimestamp(row.UpdatedAt),
	}
}

// VideoAssetFromRow 转换视频资产记录。
func VideoAssetFromRow(row coursedb.CourseVideoAsset) *po.VideoAsset {
	return &po.VideoAsset{
		ID:         row.ID,
		ChapterID:  row.ChapterID,
		AssetID:    row.AssetID,
		PlaybackID: textPtr(row.PlaybackID),
		CreatedAt:  mustTimestamp(row.CreatedAt),
	}
}

// AssetCleanupJobFromRow 转换清理任务。
func AssetCleanupJobFromRow(row coursedb.CourseAssetCleanupJob) *po.AssetCleanupJob {
	return &po.AssetCleanupJob{
		ID:          row.ID,
		AssetID:     row.AssetID,
		ChapterID:   row.ChapterID,
		Attempts:    row.Attempts,
		AvailableAt: mustTimestamp(row.AvailableAt),
		LockToken:   textPtr(row.LockToken),
		LockedAt:    timestampPtr(row.LockedAt),
		LastError:   textPtr(row.LastError),
		CompletedAt: timestampPtr(row.CompletedAt),
		CreatedAt:   mustTimestamp(row.CreatedAt),
		UpdatedAt:   mustTimestamp(row.UpdatedAt),
	}
}

// BuildUpdateChapterParams 构造章节部分更新参数，nil 字段保持原值。
func BuildUpdateChapterParams(chapterID uuid.UUID, title, description, videoURL *string, isFree *bool) coursedb.UpdateChapterParams {
	return coursedb.UpdateChapterParams{
		Title:       ToPgText(title),
		Description: ToPgText(description),
		VideoUrl:    ToPgText(videoURL),
		IsFree:      ToPgBool(isFree),
		ID:          chapterID,
	}
}

// ToPgTimestamptz 将 time.Time 转换为 pgtype.Timestamptz。
func ToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	if t.IsZero() {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: t.UTC(), Valid: true}
}
