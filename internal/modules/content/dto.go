package content

import "github.com/msadmin/core/internal/models"

// SaveContentDTO is the request body for creating or updating an item.
// An empty ID means create; an existing ID replaces in place. An empty
// slug is derived from the title.
type SaveContentDTO struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"   binding:"required"`
	Slug     string   `json:"slug"`
	Summary  string   `json:"summary"`
	Content  string   `json:"content"`
	Tags     []string `json:"tags"`
	Status   string   `json:"status"`
	Date     string   `json:"date"`
	ImageURL string   `json:"imageUrl"`

	// Case-study fields, ignored for articles.
	Client      string `json:"client"`
	Environment string `json:"environment"`
	Outcome     string `json:"outcome"`
}

func (d *SaveContentDTO) toItem(t models.ContentType) models.ContentItem {
	status := models.ContentStatus(d.Status)
	if status != models.StatusPublished {
		status = models.StatusDraft
	}
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	item := models.ContentItem{
		ContentBase: models.ContentBase{
			ID:       d.ID,
			Title:    d.Title,
			Slug:     d.Slug,
			Summary:  d.Summary,
			Content:  d.Content,
			Tags:     tags,
			Status:   status,
			Date:     d.Date,
			ImageURL: d.ImageURL,
		},
	}
	if t == models.TypeCaseStudy {
		item.Client = d.Client
		item.Environment = d.Environment
		item.Outcome = d.Outcome
	}
	return item
}
