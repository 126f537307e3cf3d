package entity

import (
	"time"
)

// PublicLink is a durable external URL record for one rendition of one asset.
// RelativeURL and VersionHash are derived by the backing store; both stay
// empty until the link has materialized.
type PublicLink struct {
	ID          string    `json:"id" firestore:"id"`
	AssetID     string    `json:"asset_id" firestore:"assetId"`
	Rendition   string    `json:"rendition" firestore:"rendition"`
	RelativeURL string    `json:"relative_url,omitempty" firestore:"relativeUrl"`
	VersionHash string    `json:"version_hash,omitempty" firestore:"versionHash"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
}
