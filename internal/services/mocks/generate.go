package mocks

//go:generate go run github.com/golang/mock/mockgen -destination=mock_course_repository.go -package=mocks github.com/bionicotaku/lingo-services-course/internal/services CourseRepository
//go:generate go run github.com/golang/mock/mockgen -destination=mock_chapter_repository.go -package=mocks github.com/bionicotaku/lingo-services-course/internal/services ChapterRepository
//go:generate go run github.com/golang/mock/mockgen -destination=mock_purchase_repository.go -package=mocks github.com/bionicotaku/lingo-services-course/internal/services PurchaseRepository
//go:generate go run github.com/golang/mock/mockgen -destination=mock_attachment_repository.go -package=mocks github.com/bionicotaku/lingo-services-course/internal/services AttachmentRepository
//go:generate go run github.com/golang/mock/mockgen -destination=mock_user_progress_repository.go -package=mocks github.com/bionicotaku/lingo-services-course/internal/services UserProgressRepository
//go:generate go run github.com/golang/mock/mockgen -destination=mock_video_asset_repository.go -package=mocks github.com/bionicotaku/lingo-services-course/internal/services VideoAssetRepository
//go:generate go run github.com/golang/mock/mockgen -destination=mock_asset_cleanup_enqueuer.go -package=mocks github.com/bionicotaku/lingo-services-course/internal/services AssetCleanupEnqueuer
//go:generate go run github.com/golang/mock/mockgen -destination=mock_video_provider.go -package=mocks github.com/bionicotaku/lingo-services-course/internal/services VideoProvider
//go:generate go run github.com/golang/mock/mockgen -destination=mock_chapter_service.go -package=mocks github.com/bionicotaku/lingo-services-course/internal/services ChapterServiceInterface
