package model

// Notification per user message, shown on the web and mailed by the email job
type Notification struct {
	Base
	UserWallet  string           `json:"user_wallet" gorm:"type:VARCHAR(42);index"`
	Title       string           `json:"title"`
	Message     string           `json:"message"`
	Type        NotificationType `json:"type" gorm:"type:VARCHAR(20)"`
	WebStatus   WebStatus        `json:"web_status" gorm:"type:VARCHAR(16);index"`
	EmailStatus EmailStatus      `json:"email_status" gorm:"type:VARCHAR(16);index"`
}
