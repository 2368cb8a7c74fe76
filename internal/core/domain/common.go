package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID Reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID Reference
}

// Stamp fills the audit fields for a newly created record.
func (a *AuditFields) Stamp(userID string, now time.Time) {
	a.CreatedAt = now
	a.CreatedBy = userID
	a.LastUpdatedAt = now
	a.LastUpdatedBy = userID
}

// Touch records an update by userID.
func (a *AuditFields) Touch(userID string, now time.Time) {
	a.LastUpdatedAt = now
	a.LastUpdatedBy = userID
}
