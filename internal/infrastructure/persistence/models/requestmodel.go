package models

// RequestModel is the storage row for a help request. The composite queue
// index backs the "priority ASC, created_at ASC" listing; the version column
// backs the compare-and-swap on every write.
type RequestModel struct {
	ID           string  `gorm:"primaryKey;size:36"`
	Title        string  `gorm:"size:255;not null"`
	Description  string  `gorm:"type:text;not null"`
	CreatorID    string  `gorm:"size:36;not null;index"`
	LabSessionID string  `gorm:"size:36;index"`
	Status       string  `gorm:"size:20;not null;index"`
	Priority     int64   `gorm:"not null;index:idx_requests_queue,priority:1"`
	AssigneeID   *string `gorm:"size:36;index"`
	Metadata     string  `gorm:"type:text"`
	Version      int64   `gorm:"not null;default:0"`
	CreatedAt    int64   `gorm:"not null;index:idx_requests_queue,priority:2"`
	UpdatedAt    int64   `gorm:"not null"`
	ResolvedAt   *int64

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (RequestModel) TableName() string {
	return "requests"
}

// ReplyModel is one row of a request's append-only thread.
type ReplyModel struct {
	ID        string `gorm:"primaryKey;size:36"`
	RequestID string `gorm:"size:36;not null;index"`
	TAID      string `gorm:"column:ta_id;size:36;not null;index"`
	Message   string `gorm:"type:text;not null"`
	CreatedAt int64  `gorm:"not null;index"`
}

func (ReplyModel) TableName() string {
	return "replies"
}
