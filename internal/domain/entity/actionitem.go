package entity

import "time"

// ActionItem is a recurring reminder owned by a single user in a channel.
// JSON keys match the on-disk store format.
type ActionItem struct {
	ID           string    `json:"id"`
	OwnerUserID  string    `json:"ownerUserId"`
	Description  string    `json:"description"`
	Cadence      string    `json:"cadence"`
	CreatedAt    time.Time `json:"creationTime"`
	LastNotified time.Time `json:"lastNotified"`
}

// Clone returns an independent copy of the item
func (a *ActionItem) Clone() *ActionItem {
	if a == nil {
		return nil
	}
	cp := *a
	return &cp
}
