package chat

import "time"

// User is a signed-in display name. Names are unique while signed in and
// compared with exact string match; there is no sign-out.
type User struct {
	Name      string    `gorm:"primaryKey" json:"user"`
	CreatedAt time.Time `json:"-"`
}

// Message is one entry of the append-only log. Index is assigned by the log
// itself and equals the message's zero-based position in send order.
type Message struct {
	Index     int       `gorm:"column:idx;primaryKey;autoIncrement:false" json:"index"`
	UserName  string    `gorm:"index;not null" json:"user"`
	Body      string    `gorm:"not null" json:"message"`
	CreatedAt time.Time `json:"-"`
}
