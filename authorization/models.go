package authorization

import "time"

// User is a locally registered account. Rows are written once at
// registration and never mutated or deleted afterwards.
type User struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:50;uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// Identity is the caller-facing view of an account returned by the
// register, login and profile endpoints.
type Identity struct {
	UserID   uint64 `json:"user_id"`
	Username string `json:"username"`
}

// RegisterRequest is the payload accepted by POST /auth/register. The
// captcha fields are only consulted when CAPTCHA_REQUIRED is enabled.
type RegisterRequest struct {
	Username      string `json:"username"`
	Password      string `json:"password"`
	CaptchaID     string `json:"captcha_id"`
	CaptchaAnswer string `json:"captcha_answer"`
}

// LoginRequest is the payload accepted by POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
