package lanterns

import "time"

// Lantern is an anonymous mood note released into the shared sky. Author
// names are self-chosen handles, never account identifiers.
type Lantern struct {
	ID         string    `json:"id"`
	MoodID     string    `json:"mood_id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"author_name"`
	CreatedAt  time.Time `json:"created_at"`
	Replies    []Reply   `json:"replies"`
}

type Reply struct {
	ID         string    `json:"id"`
	LanternID  string    `json:"lantern_id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"author_name"`
	CreatedAt  time.Time `json:"created_at"`
}

type CreateInput struct {
	MoodID     string `json:"moodId"`
	Text       string `json:"text"`
	AuthorName string `json:"authorName"`
}

type ReplyInput struct {
	Text       string `json:"text"`
	AuthorName string `json:"authorName"`
}

type ListResult struct {
	Source   string    `json:"source"`
	Lanterns []Lantern `json:"lanterns"`
}

type LanternResult struct {
	Source  string   `json:"source"`
	Lantern *Lantern `json:"lantern"`
}

type RepliesResult struct {
	Source  string  `json:"source"`
	Replies []Reply `json:"replies"`
}

type ReplyResult struct {
	Source string `json:"source"`
	Reply  *Reply `json:"reply"`
}
