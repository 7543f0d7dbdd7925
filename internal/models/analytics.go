package models

// AnalyticsDay is one day of page-view counts. Date is a YYYY-MM-DD key
// bucketed in UTC so day boundaries stay deterministic.
type AnalyticsDay struct {
	Date  string `json:"date"`
	Views int    `json:"views"`
}

// DashboardStats is the derived admin overview. It is recomputed on
// demand and never persisted.
type DashboardStats struct {
	TotalArticles    int   `json:"totalArticles"`
	TotalCaseStudies int   `json:"totalCaseStudies"`
	TotalViews       int   `json:"totalViews"`
	StorageUsedBytes int64 `json:"storageUsedBytes"`
	StorageQuota     int64 `json:"storageQuotaBytes"`
	TrashCount       int   `json:"trashCount"`
}
