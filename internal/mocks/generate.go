// Package mocks provides generated mock implementations of the internal/core
// ports for service and handler tests.
//
// The mocks are generated with go.uber.org/mock (gomock). To regenerate after
// an interface change, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	repo := mocks.NewMockPostingRepository(ctrl)
//	repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(posting, nil)
package mocks

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=posting_repository_mock.go github.com/fixly/fixly-api/internal/core PostingRepository

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=bid_repository_mock.go github.com/fixly/fixly-api/internal/core BidRepository

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=engagement_repository_mock.go github.com/fixly/fixly-api/internal/core EngagementRepository

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=token_revoker_mock.go github.com/fixly/fixly-api/internal/core TokenRevoker
