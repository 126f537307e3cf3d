package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"assetnotifier/internal/domain/entity"
	"assetnotifier/internal/domain/repository"
	"assetnotifier/pkg/errors"
)

type firestorePublicLinkRepository struct {
	client *firestore.Client
}

func NewFirestorePublicLinkRepository(client *firestore.Client) repository.PublicLinkRepository {
	return &firestorePublicLinkRepository{
		client: client,
	}
}

func (r *firestorePublicLinkRepository) Create(ctx context.Context, link *entity.PublicLink) (string, error) {
	link.ID = uuid.New().String()
	link.CreatedAt = time.Now()

	// The content platform derives these when the rendition materializes;
	// this store computes them at write time.
	link.RelativeURL = fmt.Sprintf("%s/%s", link.AssetID, link.Rendition)
	link.VersionHash = strings.ReplaceAll(uuid.New().String(), "-", "")[:12]

	_, err := r.client.Collection("public_links").Doc(link.ID).Set(ctx, link)
	if err != nil {
		return "", errors.Internal("Failed to create public link", err)
	}

	return link.ID, nil
}

func (r *firestorePublicLinkRepository) GetByID(ctx context.Context, id string) (*entity.PublicLink, error) {
	doc, err := r.client.Collection("public_links").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Public link", err)
		}
		return nil, errors.Internal("Failed to get public link", err)
	}

	var link entity.PublicLink
	if err := doc.DataTo(&link); err != nil {
		return nil, errors.Internal("Failed to parse public link", err)
	}

	return &link, nil
}
