package models

import "time"

// User is a registered account. Records are created at signup and never
// updated or deleted afterwards.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"size:255" json:"-"` // bcrypt digest, never plaintext
	CreatedAt time.Time `json:"created_at"`
}

// Post is a short text entry. CreatedAt is stamped once in JST at creation
// and is not touched on edit. Posts carry no author link: any logged-in
// user may edit or delete any post.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:50;not null" json:"title"`
	Body      string    `gorm:"size:400;not null" json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

var jst = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		return time.FixedZone("JST", 9*60*60)
	}
	return loc
}()

// NowJST returns the current time in Asia/Tokyo, the zone post timestamps
// are recorded in.
func NowJST() time.Time {
	return time.Now().In(jst)
}
