// Package vo 定义课程服务向控制器返回的视图对象。
package vo

import (
	"time"

	"github.com/bionicotaku/lingo-services-course/internal/models/po"
)

// Chapter 为章节的对外视图。
type Chapter struct {
	ID          string
	CourseID    string
	Title       string
	Description *string
	VideoURL    *string
	Position    int32
	IsPublished bool
	IsFree      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewChapterFromPO 将持久化章节转换为视图。
func NewChapterFromPO(chapter *po.Chapter) *Chapter {
	if chapter == nil {
		return nil
	}
	return &Chapter{
		ID:          chapter.ID.String(),
		CourseID:    chapter.CourseID.String(),
		Title:       chapter.Title,
		Description: chapter.Description,
		VideoURL:    chapter.VideoURL,
		Position:    chapter.Position,
		IsPublished: chapter.IsPublished,
		IsFree:      chapter.IsFree,
		CreatedAt:   chapter.CreatedAt,
		UpdatedAt:   chapter.UpdatedAt,
	}
}

// VideoAsset 为视频资产视图，仅在免费或已购买时返回。
type VideoAsset struct {
	ID         string
	AssetID    string
	PlaybackID *string
}

// Attachment 为附件视图。
type Attachment struct {
	ID   string
	Name string
	URL  string
}

// Purchase 为购买记录视图。
type Purchase struct {
	ID        string
	CreatedAt time.Time
}

// UserProgress 为观看进度视图。
type UserProgress struct {
	IsCompleted bool
	UpdatedAt   time.Time
}

// ChapterDetail 聚合章节页面展示所需的全部数据。
// VideoAsset 与 NextChapter 在章节非免费且用户未购买时为空；
// Attachments 仅在用户已购买时填充。
type ChapterDetail struct {
	Chapter      *Chapter
	PriceCents   *int64
	VideoAsset   *VideoAsset
	Attachments  []Attachment
	NextChapter  *Chapter
	UserProgress *UserProgress
	Purchase     *Purchase
}
