package webpage

import (
	"context"

	"github.com/mlevkov/contentproc/internal/entity"
)

type QAUsecase interface {
	StoreWebpage(ctx context.Context, req *entity.StoreWebpageRequest) (*entity.StoreWebpageResponse, error)
	Ask(ctx context.Context, req *entity.AskRequest) (*entity.AskResponse, error)
	GetSessionInfo(ctx context.Context, sessionID string) (*entity.Session, error)
	ListSessions(ctx context.Context) *entity.SessionListResponse
	DeleteSession(ctx context.Context, sessionID string) entity.DeleteResult
}
