package models

// ContentType discriminates the two live collections.
type ContentType string

const (
	TypeArticle   ContentType = "ARTICLE"
	TypeCaseStudy ContentType = "CASE_STUDY"
)

// Valid reports whether t names a known collection.
func (t ContentType) Valid() bool {
	return t == TypeArticle || t == TypeCaseStudy
}

// ContentStatus is the publication state of a content item.
type ContentStatus string

const (
	StatusDraft     ContentStatus = "DRAFT"
	StatusPublished ContentStatus = "PUBLISHED"
)

// ContentBase holds the fields shared by articles and case studies.
// ID is a UUID string assigned at creation and immutable afterwards
// (the seed set keeps its original short ids).
type ContentBase struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Slug     string        `json:"slug"`
	Summary  string        `json:"summary"`
	Content  string        `json:"content"`
	Tags     []string      `json:"tags"`
	Status   ContentStatus `json:"status"`
	Date     string        `json:"date"`
	ImageURL string        `json:"imageUrl,omitempty"`
}

// Article is a blog article.
type Article struct {
	ContentBase
}

// CaseStudy is a client case study with engagement-specific fields.
type CaseStudy struct {
	ContentBase
	Client      string `json:"client,omitempty"`
	Environment string `json:"environment,omitempty"`
	Outcome     string `json:"outcome,omitempty"`
}

// ContentItem is the stored shape for both variants. The case-study
// fields are omitted from the serialized form when empty, so an article
// round-trips without them ever appearing.
type ContentItem struct {
	ContentBase
	Client      string `json:"client,omitempty"`
	Environment string `json:"environment,omitempty"`
	Outcome     string `json:"outcome,omitempty"`
}

// AsArticle narrows the stored item to the article variant.
func (i ContentItem) AsArticle() Article {
	return Article{ContentBase: i.ContentBase}
}

// AsCaseStudy narrows the stored item to the case-study variant.
func (i ContentItem) AsCaseStudy() CaseStudy {
	return CaseStudy{
		ContentBase: i.ContentBase,
		Client:      i.Client,
		Environment: i.Environment,
		Outcome:     i.Outcome,
	}
}

// ItemFromArticle widens an article into the stored shape.
func ItemFromArticle(a Article) ContentItem {
	return ContentItem{ContentBase: a.ContentBase}
}

// ItemFromCaseStudy widens a case study into the stored shape.
func ItemFromCaseStudy(cs CaseStudy) ContentItem {
	return ContentItem{
		ContentBase: cs.ContentBase,
		Client:      cs.Client,
		Environment: cs.Environment,
		Outcome:     cs.Outcome,
	}
}
