package entity

const (
	AssetStatusSubmitted = "SubmittedForApproval"
	AssetStatusApproved  = "Approved"
	AssetStatusRejected  = "Rejected"
)

// Asset is the repository entity whose lifecycle transition triggers a
// workflow. It is read-only for the duration of an invocation.
type Asset struct {
	ID              string            `json:"id" firestore:"id"`
	FileName        string            `json:"file_name" firestore:"fileName"`
	CreatedOn       string            `json:"created_on" firestore:"createdOn"`
	CreatedBy       string            `json:"created_by" firestore:"createdBy"`
	Version         int64             `json:"version" firestore:"version"`
	Descriptions    map[string]string `json:"descriptions,omitempty" firestore:"descriptions"`
	RejectionReason string            `json:"rejection_reason,omitempty" firestore:"rejectionReason"`
	Status          string            `json:"status" firestore:"status"`
}

// Description returns the locale-scoped description, empty if not set.
func (a *Asset) Description(locale string) string {
	if a.Descriptions == nil {
		return ""
	}
	return a.Descriptions[locale]
}
