package journal

import "time"

// Record is one persisted file.
type Record struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	SessionID string    `gorm:"column:session_id;type:varchar(36);index" json:"session_id"`
	Version   string    `gorm:"column:version;type:varchar(16)" json:"version"`
	File      string    `gorm:"column:file;type:varchar(32)" json:"file"`
	Path      string    `gorm:"column:path;type:varchar(255)" json:"path"`
	Failed    bool      `gorm:"column:failed" json:"failed"`
	Error     string    `gorm:"column:error;type:text" json:"error,omitempty"`
	SavedAt   time.Time `gorm:"column:saved_at;type:datetime;index" json:"saved_at"`
}

// TableName returns the table name for the record model.
func (Record) TableName() string {
	return "save_records"
}
