package services

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"yardwork/internal/core/domain/model/job"
	"yardwork/internal/core/domain/model/kernel"
	"yardwork/internal/pkg/errs"
)

// SortKey selects the single ordering applied to a pool view.
type SortKey string

const (
	SortDate     SortKey = "date"
	SortEarnings SortKey = "earnings"
	SortUrgency  SortKey = "urgency"
	SortDistance SortKey = "distance"
)

// ParseSortKey maps a request parameter to a SortKey. Empty means SortDate.
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case "":
		return SortDate, nil
	case SortDate, SortEarnings, SortUrgency, SortDistance:
		return k, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("sort", fmt.Errorf("%q is not a sort key", s))
	}
}

// PoolQuery is a stateless description of one pool view.
type PoolQuery struct {
	// ServiceType keeps only jobs of this type, compared case-insensitively. Empty keeps all.
	ServiceType string
	// Statuses keeps jobs in any of these statuses. Empty means Available only.
	Statuses []job.Status
	// Search is a case-insensitive substring matched against customer name, city and ZIP.
	Search string
	Sort   SortKey
	// ReferenceZip is the origin for SortDistance and for PoolEntry.Distance.
	ReferenceZip *kernel.ZipCode
	// Now anchors "today" for SortUrgency. Its location decides calendar days.
	Now time.Time
}

// PoolEntry is a job in a pool view. Distance is nil when there is no reference ZIP or
// either ZIP is unknown.
type PoolEntry struct {
	Job      *job.Job
	Distance *kernel.Miles
}

// JobPool filters and orders jobs for a worker's view. It is a pure projection: the
// result is rebuilt on every call and jobs are never modified.
type JobPool struct {
	geo Locator
}

func NewJobPool(geo Locator) JobPool {
	return JobPool{geo: geo}
}

// Query returns the matching jobs in the requested order. Every ordering is stable, so jobs
// that compare equal keep their input order.
func (p JobPool) Query(jobs []*job.Job, q PoolQuery) []PoolEntry {
	statuses := q.Statuses
	if len(statuses) == 0 {
		statuses = []job.Status{job.Available}
	}
	search := strings.ToLower(strings.TrimSpace(q.Search))
	serviceType := strings.TrimSpace(q.ServiceType)

	entries := make([]PoolEntry, 0, len(jobs))
	for _, j := range jobs {
		if j == nil || !slices.Contains(statuses, j.Status()) {
			continue
		}
		if serviceType != "" && !strings.EqualFold(serviceType, j.ServiceType()) {
			continue
		}
		if search != "" && !matches(j, search) {
			continue
		}
		entries = append(entries, PoolEntry{Job: j, Distance: p.distance(q.ReferenceZip, j)})
	}

	switch q.Sort {
	case SortEarnings:
		slices.SortStableFunc(entries, func(a, b PoolEntry) int {
			return compareDesc(a.Job.PotentialEarnings(), b.Job.PotentialEarnings())
		})
	case SortUrgency:
		now := q.Now
		if now.IsZero() {
			now = time.Now()
		}
		slices.SortStableFunc(entries, func(a, b PoolEntry) int {
			ua, ub := isUrgent(a.Job, now), isUrgent(b.Job, now)
			if ua != ub {
				if ua {
					return -1
				}
				return 1
			}
			return a.Job.ScheduledDate().Compare(b.Job.ScheduledDate())
		})
	case SortDistance:
		slices.SortStableFunc(entries, func(a, b PoolEntry) int {
			switch {
			case a.Distance == nil && b.Distance == nil:
				return 0
			case a.Distance == nil:
				return 1
			case b.Distance == nil:
				return -1
			default:
				return compareAsc(*a.Distance, *b.Distance)
			}
		})
	default:
		slices.SortStableFunc(entries, func(a, b PoolEntry) int {
			return a.Job.ScheduledDate().Compare(b.Job.ScheduledDate())
		})
	}

	return entries
}

func (p JobPool) distance(ref *kernel.ZipCode, j *job.Job) *kernel.Miles {
	if ref == nil || p.geo == nil {
		return nil
	}
	d, ok := p.geo.Distance(*ref, j.CustomerZip())
	if !ok {
		return nil
	}
	return &d
}

func matches(j *job.Job, needle string) bool {
	return strings.Contains(strings.ToLower(j.CustomerName()), needle) ||
		strings.Contains(strings.ToLower(j.City()), needle) ||
		strings.Contains(j.CustomerZip().String(), needle)
}

// isUrgent reports whether the job falls on today's or tomorrow's calendar day in now's location.
func isUrgent(j *job.Job, now time.Time) bool {
	loc := now.Location()
	today := startOfDay(now)
	day := startOfDay(j.ScheduledDate().In(loc))
	return day.Equal(today) || day.Equal(today.AddDate(0, 0, 1))
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func compareAsc[T ~int64 | ~float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareDesc[T ~int64 | ~float64](a, b T) int {
	return compareAsc(b, a)
}
