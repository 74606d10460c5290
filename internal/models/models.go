package models

import "time"

// User represents an account that can save and list constructed layouts.
type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	Password    string    `json:"-"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// LayoutRecord is a constructed crossword layout as persisted by the
// store: the input word list, the rendered grid and its numbered
// entries, keyed by a content hash of the (sorted) word list so saving
// the same input again updates the existing record.
type LayoutRecord struct {
	ID        string    `json:"id"`
	Hash      string    `json:"hash"`
	OwnerID   string    `json:"ownerId,omitempty"`
	Words     []string  `json:"words"`
	Grid      string    `json:"grid"`
	Entries   []byte    `json:"entries"` // json-encoded []output.EntryJSON
	CreatedAt time.Time `json:"createdAt"`
}
