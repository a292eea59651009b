package models

import "time"

// ChecklistItem is a single line in a checklist. Items are always created
// and updated through the remote API; the server assigns ids.
type ChecklistItem struct {
	ID          int       `json:"id"`
	Text        string    `json:"text"`
	Checked     bool      `json:"checked"`
	ChecklistID int       `json:"checklist_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Checklist is a named list of items. The authoritative copy lives
// server-side; the in-memory copy is a mirror that is resynchronized on
// every successful mutation response.
type Checklist struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	UserID    int             `json:"user_id"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	Items     []ChecklistItem `json:"items"`
}

// ChecklistItemCreate is the payload for adding an item.
type ChecklistItemCreate struct {
	Text    string `json:"text"`
	Checked bool   `json:"checked"`
}

// ChecklistItemUpdate is a partial update; nil fields are left unchanged
// by the server.
type ChecklistItemUpdate struct {
	Text    *string `json:"text,omitempty"`
	Checked *bool   `json:"checked,omitempty"`
}

// ChecklistCreate is the payload for creating a checklist, optionally with
// an initial batch of items.
type ChecklistCreate struct {
	Name  string                `json:"name"`
	Items []ChecklistItemCreate `json:"items,omitempty"`
}

// ChecklistUpdate renames a checklist.
type ChecklistUpdate struct {
	Name string `json:"name"`
}
