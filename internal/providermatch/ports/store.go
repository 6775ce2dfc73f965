package ports

import (
	"context"

	"github.com/tfalohun/olera-sub001/internal/providermatch/models"
	id "github.com/tfalohun/olera-sub001/pkg/domain"
)

//go:generate mockgen -source=store.go -destination=mocks/store.go -package=mocks RequesterStore,RelationshipStore,CandidateStore

// RequesterStore reads requester profiles maintained elsewhere.
type RequesterStore interface {
	// FindRequester returns nil, nil when the user has no profile.
	FindRequester(ctx context.Context, userID id.UserID) (*models.Requester, error)
}

// RelationshipStore reads a requester's history with candidates.
type RelationshipStore interface {
	ListRelationships(ctx context.Context, userID id.UserID) ([]models.Relationship, error)
}

// CandidateStore runs one search pass over the provider catalog.
type CandidateStore interface {
	SearchCandidates(ctx context.Context, q models.Query) (models.Page, error)
}
