// Package dto 定义 HTTP 请求与响应体，以及与视图对象之间的转换。
package dto

import (
	"time"

	"github.com/bionicotaku/lingo-services-course/internal/models/vo"
)

// CreateChapterRequest 为新建章节请求体。
type CreateChapterRequest struct {
	Title string `json:"title" validate:"required,max=512"`
}

// ReorderItem 为单个章节的新 position。
type ReorderItem struct {
	ID       string `json:"id" validate:"required"`
	Position int32  `json:"position"`
}

// ReorderChaptersRequest 为批量调整顺序请求体。
type ReorderChaptersRequest struct {
	List []ReorderItem `json:"list" validate:"required,dive"`
}

// UpdateProgressRequest 为学习进度写入请求体。
type UpdateProgressRequest struct {
	IsCompleted *bool `json:"isCompleted" validate:"required"`
}

// Chapter 为章节响应体。
type Chapter struct {
	ID          string    `json:"id"`
	CourseID    string    `json:"courseId"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	VideoURL    *string   `json:"videoUrl"`
	Position    int32     `json:"position"`
	IsPublished bool      `json:"isPublished"`
	IsFree      bool      `json:"isFree"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CoursePrice 为章节详情中携带的课程价格。
type CoursePrice struct {
	Price *int64 `json:"price"`
}

// MuxData 为章节视频资产。
type MuxData struct {
	ID         string  `json:"id"`
	AssetID    string  `json:"assetId"`
	PlaybackID *string `json:"playbackId"`
}

// Attachment 为课程附件。
type Attachment struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// UserProgress 为学习进度。
type UserProgress struct {
	IsCompleted bool      `json:"isCompleted"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Purchase 为购买记录。
type Purchase struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

// ChapterDetail 为章节详情响应体。
type ChapterDetail struct {
	Chapter      *Chapter      `json:"chapter"`
	Course       CoursePrice   `json:"course"`
	MuxData      *MuxData      `json:"muxData"`
	Attachments  []Attachment  `json:"attachments"`
	NextChapter  *Chapter      `json:"nextChapter"`
	UserProgress *UserProgress `json:"userProgress"`
	Purchase     *Purchase     `json:"purchase"`
}

// DeleteChapterResponse 为删除结果。
type DeleteChapterResponse struct {
	ID string `json:"id"`
}

// ToChapter 转换章节视图。
func ToChapter(c *vo.Chapter) *Chapter {
	if c == nil {
		return nil
	}
	return &Chapter{
		ID:          c.ID,
		CourseID:    c.CourseID,
		Title:       c.Title,
		Description: c.Description,
		VideoURL:    c.VideoURL,
		Position:    c.Position,
		IsPublished: c.IsPublished,
		IsFree:      c.IsFree,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ToChapters 转换章节列表，保持顺序。
func ToChapters(chapters []*vo.Chapter) []*Chapter {
	out := make([]*Chapter, 0, len(chapters))
	for _, c := range chapters {
		out = append(out, ToChapter(c))
	}
	return out
}

// ToUserProgress 转换学习进度。
func ToUserProgress(p *vo.UserProgress) *UserProgress {
	if p == nil {
		return nil
	}
	return &UserProgress{IsCompleted: p.IsCompleted, UpdatedAt: p.UpdatedAt}
}

// ToChapterDetail 转换章节详情。
func ToChapterDetail(d *vo.ChapterDetail) *ChapterDetail {
	if d == nil {
		return nil
	}
	out := &ChapterDetail{
		Chapter:      ToChapter(d.Chapter),
		Course:       CoursePrice{Price: d.PriceCents},
		NextChapter:  ToChapter(d.NextChapter),
		UserProgress: ToUserProgress(d.UserProgress),
		Attachments:  make([]Attachment, 0, len(d.Attachments)),
	}
	if d.VideoAsset != nil {
		out.MuxData = &MuxData{ID: d.VideoAsset.ID, AssetID: d.VideoAsset.AssetID, PlaybackID: d.VideoAsset.PlaybackID}
	}
	for _, a := range d.Attachments {
		out.Attachments = append(out.Attachments, Attachment{ID: a.ID, Name: a.Name, URL: a.URL})
	}
	if d.Purchase != nil {
		out.Purchase = &Purchase{ID: d.Purchase.ID, CreatedAt: d.Purchase.CreatedAt}
	}
	return out
}
