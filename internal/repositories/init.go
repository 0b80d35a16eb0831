package repositories

import "github.com/google/wire"

// ProviderSet 暴露 Repository 层的构造函数供 Wire 依赖注入使用。
var ProviderSet = wire.NewSet(
	NewCourseRepository,
	NewChapterRepository,
	NewPurchaseRepository,
	NewAttachmentRepository,
	NewUserProgressRepository,
	NewVideoAssetRepository,
	NewAssetCleanupRepository, // ← 远端删除补偿任务
)
