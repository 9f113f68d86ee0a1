package analytics

// Overview is the headline engagement report.
type Overview struct {
	TotalPosts         int     `json:"totalPosts"`
	TotalViews         int64   `json:"totalViews"`
	TotalLikes         int64   `json:"totalLikes"`
	TotalShares        int64   `json:"totalShares"`
	TotalComments      int64   `json:"totalComments"`
	AvgReadTimeMinutes float64 `json:"avgReadTimeMinutes"`
	EngagementRate     float64 `json:"engagementRate"`
}

// CategoryStat aggregates one category.
type CategoryStat struct {
	Category string `json:"category"`
	Posts    int    `json:"posts"`
	Views    int64  `json:"views"`
}

// TopPost is one entry in a top-N ranking.
type TopPost struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Value    int64  `json:"value"`
}

// PostingFrequency groups post creation over calendar buckets.
type PostingFrequency struct {
	ByMonth   map[string]int `json:"byMonth"`
	ByWeekday map[string]int `json:"byWeekday"`
}

// StorageProjection is a back-of-the-envelope capacity estimate. It rests on
// a fixed average post size, not measured bytes; Approximate is always true
// and the figures must not be treated as ground truth.
type StorageProjection struct {
	Approximate      bool    `json:"approximate"`
	AvgPostSizeKB    int64   `json:"avgPostSizeKB"`
	CapacityMB       int64   `json:"capacityMB"`
	EstimatedUsedMB  float64 `json:"estimatedUsedMB"`
	PercentUsed      float64 `json:"percentUsed"`
	PostsRemaining   int64   `json:"postsRemaining"`
	PostsPerMonth    float64 `json:"postsPerMonth"`
	MonthsUntilFull  float64 `json:"monthsUntilFull"`
	TotalPostsStored int     `json:"totalPostsStored"`
}
