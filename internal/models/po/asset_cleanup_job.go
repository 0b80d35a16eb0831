package po

import (
	"time"

	"github.com/google/uuid"
)

// AssetCleanupJob 表示远端资产删除失败后的补偿任务。
type AssetCleanupJob struct {
	ID          uuid.UUID
	AssetID     string
	ChapterID   uuid.UUID
	Attempts    int32
	AvailableAt time.Time
	LockToken   *string
	LockedAt    *time.Time
	LastError   *string
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
