package models

// User is the single document stored per participant. Matchmaking state for
// a user being matched (swipingPools, matches) lives on that user's own
// document but is written by other users' actions: a matchmaker swiping for
// a friend updates the friend's and the candidate's records, never their own.
type User struct {
	UserID       string                `dynamodbav:"userId" json:"userId"`
	Name         string                `dynamodbav:"name,omitempty" json:"name,omitempty"`
	PhoneNumber  string                `dynamodbav:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	UserType     string                `dynamodbav:"userType,omitempty" json:"userType,omitempty"`
	Gender       string                `dynamodbav:"gender,omitempty" json:"gender,omitempty"`
	Sexuality    string                `dynamodbav:"sexuality,omitempty" json:"sexuality,omitempty"`
	Friends      []string              `dynamodbav:"friends,omitempty" json:"friends,omitempty"`
	SwipingPools map[string]SwipePool  `dynamodbav:"swipingPools" json:"swipingPools"`
	Matches      map[string]MatchEntry `dynamodbav:"matches" json:"matches"`
}

// IsDater reports whether the user can appear as a candidate in swiping pools.
func (u *User) IsDater() bool {
	return u.UserType == UserTypeDater || u.UserType == UserTypeDaterAndMatchMaker
}

// IsMatchMaker reports whether the user can swipe on behalf of friends.
func (u *User) IsMatchMaker() bool {
	return u.UserType == UserTypeMatchMaker || u.UserType == UserTypeDaterAndMatchMaker
}

// HasFriend reports whether friendID is already in the user's friends list.
func (u *User) HasFriend(friendID string) bool {
	for _, id := range u.Friends {
		if id == friendID {
			return true
		}
	}
	return false
}

// UsersTable is the DynamoDB table name for user documents
const UsersTable = "Users"
