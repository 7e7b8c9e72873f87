package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID Reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID Reference
}

// DateWindow is an inclusive date range used by reporting queries.
type DateWindow struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// TrailingWindow returns the window of the given length ending at now.
func TrailingWindow(now time.Time, length time.Duration) DateWindow {
	return DateWindow{From: now.Add(-length), To: now}
}

// Contains reports whether t falls inside the window, bounds included.
func (w DateWindow) Contains(t time.Time) bool {
	return !t.Before(w.From) && !t.After(w.To)
}
