package models

// TrendingTopic is one entry of the hashtag leaderboard.
type TrendingTopic struct {
	Tag   string `json:"tag"`
	Count int64  `json:"count"`
}

// SearchResults groups the two result sets of a search query.
type SearchResults struct {
	Users []User `json:"users"`
	Posts []Post `json:"posts"`
}
