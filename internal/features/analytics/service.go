package analytics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/inkwell-app/inkwell/internal/features/blogs"
)

// Capacity assumptions for the storage projection. AvgPostSizeKB is a fixed
// estimate, not a measurement of stored bytes.
const (
	AvgPostSizeKB = 250
	CapacityMB    = 10 * 1024
)

// Counter fields accepted by the top-N ranking.
var topFields = map[string]func(*blogs.Post) int64{
	"views":        func(p *blogs.Post) int64 { return p.Views },
	"likes":        func(p *blogs.Post) int64 { return p.Likes },
	"shares":       func(p *blogs.Post) int64 { return p.Shares },
	"commentCount": func(p *blogs.Post) int64 { return p.CommentCount },
	"readCount":    func(p *blogs.Post) int64 { return p.ReadCount },
}

// ValidTopField reports whether field can be ranked on.
func ValidTopField(field string) bool {
	_, ok := topFields[field]
	return ok
}

// FilterWindow keeps posts created within the trailing window of the given
// number of days. days <= 0 keeps everything.
func FilterWindow(posts []blogs.Post, days int, now time.Time) []blogs.Post {
	if days <= 0 {
		return posts
	}

	cutoff := now.AddDate(0, 0, -days)
	var filtered []blogs.Post
	for _, p := range posts {
		if p.CreatedAt.After(cutoff) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// ComputeOverview derives the headline totals, the average read time and the
// engagement rate. Engagement rate is zero (never NaN) when no views exist.
func ComputeOverview(posts []blogs.Post) Overview {
	o := Overview{TotalPosts: len(posts)}

	var readTimeSum float64
	for i := range posts {
		p := &posts[i]
		o.TotalViews += p.Views
		o.TotalLikes += p.Likes
		o.TotalShares += p.Shares
		o.TotalComments += p.CommentCount

		if p.ReadCount > 0 {
			readTimeSum += float64(p.ReadTimeSeconds) / float64(p.ReadCount)
		}
	}

	if len(posts) > 0 {
		o.AvgReadTimeMinutes = round2(readTimeSum / float64(len(posts)) / 60)
	}

	if o.TotalViews > 0 {
		engaged := float64(o.TotalLikes + o.TotalShares + o.TotalComments)
		o.EngagementRate = round2(engaged / float64(o.TotalViews) * 100)
	}

	return o
}

// TopBy ranks posts by one counter, descending, capped at limit.
func TopBy(posts []blogs.Post, field string, limit int) ([]TopPost, error) {
	extract, ok := topFields[field]
	if !ok {
		return nil, fmt.Errorf("unknown ranking field %q", field)
	}
	if limit <= 0 {
		limit = 5
	}

	ranked := make([]TopPost, 0, len(posts))
	for i := range posts {
		ranked = append(ranked, TopPost{
			ID:       posts[i].ID.Hex(),
			Title:    posts[i].Title,
			Category: posts[i].Category,
			Value:    extract(&posts[i]),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Value > ranked[j].Value })

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

// CategoryStats groups posts and views per category, most posts first.
func CategoryStats(posts []blogs.Post) []CategoryStat {
	byCategory := make(map[string]*CategoryStat)
	for i := range posts {
		category := posts[i].Category
		if category == "" {
			category = "uncategorized"
		}
		stat, ok := byCategory[category]
		if !ok {
			stat = &CategoryStat{Category: category}
			byCategory[category] = stat
		}
		stat.Posts++
		stat.Views += posts[i].Views
	}

	stats := make([]CategoryStat, 0, len(byCategory))
	for _, s := range byCategory {
		stats = append(stats, *s)
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Posts != stats[j].Posts {
			return stats[i].Posts > stats[j].Posts
		}
		return stats[i].Category < stats[j].Category
	})
	return stats
}

// Frequency buckets post creation by month (YYYY-MM) and weekday.
func Frequency(posts []blogs.Post) PostingFrequency {
	freq := PostingFrequency{
		ByMonth:   make(map[string]int),
		ByWeekday: make(map[string]int),
	}
	for i := range posts {
		created := posts[i].CreatedAt
		freq.ByMonth[created.Format("2006-01")]++
		freq.ByWeekday[created.Weekday().String()]++
	}
	return freq
}

// Project estimates storage usage from the fixed average post size. The
// posting rate comes from the span between oldest and newest post.
func Project(posts []blogs.Post, now time.Time) StorageProjection {
	proj := StorageProjection{
		Approximate:      true,
		AvgPostSizeKB:    AvgPostSizeKB,
		CapacityMB:       CapacityMB,
		TotalPostsStored: len(posts),
	}

	usedMB := float64(len(posts)) * AvgPostSizeKB / 1024
	proj.EstimatedUsedMB = round2(usedMB)
	proj.PercentUsed = round2(usedMB / CapacityMB * 100)
	proj.PostsRemaining = (CapacityMB*1024 - int64(len(posts))*AvgPostSizeKB) / AvgPostSizeKB
	if proj.PostsRemaining < 0 {
		proj.PostsRemaining = 0
	}

	if len(posts) > 0 {
		oldest := posts[0].CreatedAt
		for i := range posts {
			if posts[i].CreatedAt.Before(oldest) {
				oldest = posts[i].CreatedAt
			}
		}
		months := now.Sub(oldest).Hours() / 24 / 30
		if months < 1 {
			months = 1
		}
		proj.PostsPerMonth = round2(float64(len(posts)) / months)
		if proj.PostsPerMonth > 0 {
			proj.MonthsUntilFull = round2(float64(proj.PostsRemaining) / proj.PostsPerMonth)
		}
	}

	return proj
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
