package models

import "strconv"

// DedupeSlug suffixes slug with -2, -3, ... until no other item in the
// collection claims it. selfID excludes the item being written so an
// update keeps its own slug.
func DedupeSlug(items []ContentItem, slug, selfID string) string {
	taken := func(candidate string) bool {
		for _, it := range items {
			if it.ID != selfID && it.Slug == candidate {
				return true
			}
		}
		return false
	}
	if !taken(slug) {
		return slug
	}
	for n := 2; ; n++ {
		candidate := slug + "-" + strconv.Itoa(n)
		if !taken(candidate) {
			return candidate
		}
	}
}
