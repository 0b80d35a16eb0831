// Package po 定义与 course schema 表一一对应的持久化对象。
package po

import (
	"time"

	"github.com/google/uuid"
)

// Course 表示 course.courses 表中的课程记录。
type Course struct {
	ID          uuid.UUID
	UserID      string
	Title       string
	PriceCents  *int64
	IsPublished bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Chapter 表示 course.chapters 表中的章节记录。
type Chapter struct {
	ID          uuid.UUID
	CourseID    uuid.UUID
	Title       string
	Description *string
	VideoURL    *string
	Position    int32
	IsPublished bool
	IsFree      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Purchase 表示用户对课程的购买记录。
type Purchase struct {
	ID        uuid.UUID
	UserID    string
	CourseID  uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Attachment 表示课程附件。
type Attachment struct {
	ID        uuid.UUID
	CourseID  uuid.UUID
	Name      string
	URL       string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserProgress 表示 (user, chapter) 维度的完成状态。
type UserProgress struct {
	ID          uuid.UUID
	UserID      string
	ChapterID   uuid.UUID
	IsCompleted bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// VideoAsset 表示章节在视频托管方的资产引用，每个章节至多一条。
type VideoAsset struct {
	ID         uuid.UUID
	ChapterID  uuid.UUID
	AssetID    string
	PlaybackID *string
	CreatedAt  time.Time
}
