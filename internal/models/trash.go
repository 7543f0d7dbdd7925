package models

// TrashItem is a soft-deleted content item awaiting restore or purge.
// OriginalType records which live collection it was removed from and
// DeletedAt the RFC3339 deletion timestamp; both are stripped on restore.
type TrashItem struct {
	ContentItem
	OriginalType ContentType `json:"originalType"`
	DeletedAt    string      `json:"deletedAt"`
}
