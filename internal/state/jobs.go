package state

import (
	"context"
	"fmt"
	"slices"

	"nathanbeddoewebdev/hirectl/internal/domain"
	"nathanbeddoewebdev/hirectl/internal/swrcache"
)

// JobsData holds search results, the employer's postings and the talent's
// matches.
type JobsData struct {
	Query        domain.JobQuery
	Results      *domain.JobPage
	Selected     *domain.Job
	Mine         []domain.Job
	Matches      []domain.Match
	Applications []domain.Application
}

// JobsSlice tracks job listings.
type JobsSlice struct {
	base[JobsData]
}

// Search runs a job search. A newer search cancels an older one, so fast
// typing only ever commits the last query's results.
func (j *JobsSlice) Search(ctx context.Context, q domain.JobQuery) error {
	fetch := func(ctx context.Context) (*domain.JobPage, error) {
		return j.store.api.SearchJobs(ctx, q)
	}
	if c := j.store.userCache(); c != nil {
		fetch = func(ctx context.Context) (*domain.JobPage, error) {
			return swrcache.GetOrFetch(c, ctx, searchCacheKey(q), func(ctx context.Context) (*domain.JobPage, error) {
				return j.store.api.SearchJobs(ctx, q)
			})
		}
	}
	return run(ctx, &j.base, "search", fetch, func(d *JobsData, p *domain.JobPage) {
		d.Query = q
		d.Results = p
	})
}

// Select loads one job for the detail view.
func (j *JobsSlice) Select(ctx context.Context, id string) error {
	return run(ctx, &j.base, "select", func(ctx context.Context) (*domain.Job, error) {
		return j.store.api.GetJob(ctx, id)
	}, func(d *JobsData, job *domain.Job) {
		d.Selected = job
	})
}

// LoadMine fetches the employer's own postings.
func (j *JobsSlice) LoadMine(ctx context.Context) error {
	return run(ctx, &j.base, "mine", j.store.api.ListMyJobs, func(d *JobsData, jobs []domain.Job) {
		d.Mine = jobs
	})
}

// LoadMatches fetches recommended jobs for the talent.
func (j *JobsSlice) LoadMatches(ctx context.Context, limit int) error {
	return run(ctx, &j.base, "matches", func(ctx context.Context) ([]domain.Match, error) {
		return j.store.api.Matches(ctx, limit)
	}, func(d *JobsData, m []domain.Match) {
		d.Matches = m
	})
}

// Apply submits an application and records it.
func (j *JobsSlice) Apply(ctx context.Context, jobID, coverLetter string) error {
	return run(ctx, &j.base, "apply", func(ctx context.Context) (*domain.Application, error) {
		return j.store.api.ApplyToJob(ctx, jobID, coverLetter)
	}, func(d *JobsData, a *domain.Application) {
		d.Applications = append(slices.Clone(d.Applications), *a)
	})
}

// Create publishes a posting and prepends it to Mine.
func (j *JobsSlice) Create(ctx context.Context, in domain.JobInput) error {
	return run(ctx, &j.base, "create", func(ctx context.Context) (*domain.Job, error) {
		return j.store.api.CreateJob(ctx, in)
	}, func(d *JobsData, job *domain.Job) {
		d.Mine = append([]domain.Job{*job}, d.Mine...)
	})
}

// Delete removes a posting from the backend and from Mine.
func (j *JobsSlice) Delete(ctx context.Context, id string) error {
	return run(ctx, &j.base, "delete", func(ctx context.Context) (string, error) {
		return id, j.store.api.DeleteJob(ctx, id)
	}, func(d *JobsData, id string) {
		d.Mine = slices.DeleteFunc(slices.Clone(d.Mine), func(job domain.Job) bool { return job.ID == id })
	})
}

func searchCacheKey(q domain.JobQuery) string {
	return fmt.Sprintf("jobs-search-%s-%s-%t-%s-%d-%d", q.Text, q.Location, q.Remote, q.EmploymentType, q.Page, q.PerPage)
}
