// Package services 包含应用业务用例的编排逻辑。
// 该层负责协调 Repository 和 Clients，实现核心业务规则，不直接依赖传输层或基础设施细节。
package services

import (
	"github.com/bionicotaku/lingo-services-course/internal/clients/mux"
	"github.com/bionicotaku/lingo-services-course/internal/repositories"
	"github.com/google/wire"
)

// ProviderSet 暴露 Services 层的构造函数供 Wire 依赖注入使用。
var ProviderSet = wire.NewSet(
	NewAssetReleaser,
	NewVideoAssetSync,
	NewChapterService,
	wire.Bind(new(CourseRepository), new(*repositories.CourseRepository)),
	wire.Bind(new(ChapterRepository), new(*repositories.ChapterRepository)),
	wire.Bind(new(PurchaseRepository), new(*repositories.PurchaseRepository)),
	wire.Bind(new(AttachmentRepository), new(*repositories.AttachmentRepository)),
	wire.Bind(new(UserProgressRepository), new(*repositories.UserProgressRepository)),
	wire.Bind(new(VideoAssetRepository), new(*repositories.VideoAssetRepository)),
	wire.Bind(new(AssetCleanupEnqueuer), new(*repositories.AssetCleanupRepository)),
	wire.Bind(new(VideoProvider), new(*mux.Client)),
	wire.Bind(new(ChapterServiceInterface), new(*ChapterService)),
)
