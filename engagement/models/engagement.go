package models

import "time"

// Like is a single like row scoped to a (news, identity) pair. Exactly one of
// UserID/GuestID is set.
type Like struct {
	ID        int64     `db:"id" json:"id"`
	NewsID    int64     `db:"news_id" json:"newsId"`
	UserID    *int64    `db:"user_id" json:"userId,omitempty"`
	GuestID   *string   `db:"guest_id" json:"guestId,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// View is a single view row scoped to a (news, identity) pair. First view
// wins; later views for the same pair are no-ops.
type View struct {
	ID        int64     `db:"id" json:"id"`
	NewsID    int64     `db:"news_id" json:"newsId"`
	UserID    *int64    `db:"user_id" json:"userId,omitempty"`
	GuestID   *string   `db:"guest_id" json:"guestId,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// Counts holds the aggregate like/view cardinality for one news item.
type Counts struct {
	Likes int64
	Views int64
}

// Annotation is the per-identity engagement view of one news item, attached
// to every listed or fetched article.
type Annotation struct {
	LikeCount    int64
	ViewCount    int64
	IsLiked      bool
	IsBookmarked bool
}
