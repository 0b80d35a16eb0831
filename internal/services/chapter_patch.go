package services

import (
	"github.com/bionicotaku/lingo-services-course/internal/repositories"
)

// ChapterPatchOp 是章节部分更新的单个操作，每个可识别字段对应一个变体。
// 操作按调用方给出的顺序执行。
type ChapterPatchOp interface {
	isChapterPatchOp()
}

// SetChapterTitle 修改标题。
type SetChapterTitle struct{ Title string }

// SetChapterDescription 修改描述。
type SetChapterDescription struct{ Description string }

// SetChapterFree 修改免费试看标记。
type SetChapterFree struct{ IsFree bool }

// SetChapterVideoURL 修改视频源地址并触发视频资产同步。
type SetChapterVideoURL struct{ VideoURL string }

func (SetChapterTitle) isChapterPatchOp()       {}
func (SetChapterDescription) isChapterPatchOp() {}
func (SetChapterFree) isChapterPatchOp()        {}
func (SetChapterVideoURL) isChapterPatchOp()    {}

// applyField 将非副作用字段写入待更新集合，返回是否已处理。
func applyField(pending *repositories.UpdateChapterInput, op ChapterPatchOp) bool {
	switch v := op.(type) {
	case SetChapterTitle:
		title := v.Title
		pending.Title = &title
	case SetChapterDescription:
		desc := v.Description
		pending.Description = &desc
	case SetChapterFree:
		free := v.IsFree
		pending.IsFree = &free
	default:
		return false
	}
	return true
}
