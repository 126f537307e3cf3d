package entity

// User is a directory entity. Username is the addressable mail identity in
// localpart@domain form. GroupIDs is the membership relation.
type User struct {
	ID       string   `json:"id" firestore:"id"`
	Username string   `json:"username" firestore:"username"`
	GroupIDs []string `json:"group_ids,omitempty" firestore:"groupIds"`
}

// MemberOf reports whether the user's membership relation names the given
// group. An empty group id never matches.
func (u *User) MemberOf(groupID string) bool {
	if groupID == "" {
		return false
	}
	for _, id := range u.GroupIDs {
		if id == groupID {
			return true
		}
	}
	return false
}

type UserGroup struct {
	ID   string `json:"id" firestore:"id"`
	Name string `json:"name" firestore:"name"`
}
