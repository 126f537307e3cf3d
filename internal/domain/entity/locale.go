package entity

// Locale is a culture registered in the repository, e.g. code "en-US" with
// display name "English (United States)".
type Locale struct {
	Code        string `json:"code" firestore:"code"`
	DisplayName string `json:"display_name" firestore:"displayName"`
}
