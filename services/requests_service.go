package services

import (
	"context"

	"paybox/entity"
)

// Requests builds signed gateway requests for the supported payment
// variants and renders the browser redirect artifact.
type Requests interface {
	Authorize(ctx context.Context, order *entity.OrderRequest) (*entity.BuiltRequest, error)
	AuthorizeWithCapture(ctx context.Context, order *entity.OrderRequest) (*entity.BuiltRequest, error)
	AuthorizeInstallments(ctx context.Context, order *entity.OrderRequest) (*entity.BuiltRequest, error)
	Subscribe(ctx context.Context, order *entity.OrderRequest) (*entity.BuiltRequest, error)

	RedirectForm(request *entity.BuiltRequest) (string, error)
}

// Publisher announces built requests to downstream consumers.
type Publisher interface {
	Publish(event *entity.RequestEvent) error
}
