package models

type Profile struct {
	ID       int64  `db:"id"`
	Username string `db:"username"`
	FullName string `db:"full_name"`
}

type RankingEntry struct {
	Position         int
	UserID           int64
	DisplayName      string
	Initials         string
	TotalPoints      int
	CurrentStreak    int
	LongestStreak    int
	LessonsCompleted int
}
