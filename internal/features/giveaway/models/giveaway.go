package models

import "time"

// Status is the lifecycle state of a giveaway.
type Status string

const (
	StatusRunning   Status = "running"
	StatusEnded     Status = "ended"
	StatusCancelled Status = "cancelled"
)

// Giveaway is a single prize draw announced in a channel.
type Giveaway struct {
	ID          int64     `json:"id"`
	GuildID     string    `json:"guild_id"`
	ChannelID   string    `json:"channel_id"`
	MessageID   string    `json:"message_id,omitempty"` // set once the announcement is posted
	Prize       string    `json:"prize"`
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description,omitempty"`
	Winners     int       `json:"winners"`
	HostID      string    `json:"host_id,omitempty"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	EndsAt      time.Time `json:"ends_at"`
	Status      Status    `json:"status"`
}

// Entry is one user's participation in a giveaway. A user may hold at most
// one entry per giveaway; the store enforces the pair uniqueness.
type Entry struct {
	GiveawayID int64     `json:"giveaway_id"`
	UserID     string    `json:"user_id"`
	JoinedAt   time.Time `json:"joined_at"`
}
