package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"nathanbeddoewebdev/hirectl/internal/domain"
)

func jobQueryValues(q domain.JobQuery) url.Values {
	v := url.Values{}
	if q.Text != "" {
		v.Set("q", q.Text)
	}
	if q.Location != "" {
		v.Set("location", q.Location)
	}
	if q.Remote {
		v.Set("remote", "true")
	}
	if q.EmploymentType != "" {
		v.Set("employmentType", q.EmploymentType)
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.PerPage > 0 {
		v.Set("perPage", strconv.Itoa(q.PerPage))
	}
	return v
}

// SearchJobs returns one page of open jobs.
func (c *Client) SearchJobs(ctx context.Context, q domain.JobQuery) (*domain.JobPage, error) {
	var page domain.JobPage
	if err := c.getJSON(ctx, "/jobs", jobQueryValues(q), &page); err != nil {
		return nil, fmt.Errorf("search jobs: %w", err)
	}
	if page.Page == 0 {
		page.Page = max(q.Page, 1)
	}
	if page.Total == 0 {
		page.Total = len(page.Items)
	}
	return &page, nil
}

// GetJob returns a single job.
func (c *Client) GetJob(ctx context.Context, id string) (*domain.Job, error) {
	var j domain.Job
	if err := c.getJSON(ctx, "/jobs/"+escape(id), nil, &j); err != nil {
		return nil, fmt.Errorf("get job %q: %w", id, err)
	}
	return &j, nil
}

// ApplyToJob submits the current talent's application.
func (c *Client) ApplyToJob(ctx context.Context, id, coverLetter string) (*domain.Application, error) {
	body := map[string]string{}
	if coverLetter != "" {
		body["coverLetter"] = coverLetter
	}
	var a domain.Application
	if err := c.sendJSON(ctx, http.MethodPost, "/jobs/"+escape(id)+"/apply", body, &a); err != nil {
		return nil, fmt.Errorf("apply to job %q: %w", id, err)
	}
	if a.JobID == "" {
		a.JobID = id
	}
	return &a, nil
}

// ListMyJobs returns the postings owned by the current employer.
func (c *Client) ListMyJobs(ctx context.Context) ([]domain.Job, error) {
	var jobs []domain.Job
	if err := c.getJSON(ctx, "/jobs/mine", nil, &jobs); err != nil {
		return nil, fmt.Errorf("list my jobs: %w", err)
	}
	return jobs, nil
}

// ListApplications returns the current talent's applications.
func (c *Client) ListApplications(ctx context.Context) ([]domain.Application, error) {
	var apps []domain.Application
	if err := c.getJSON(ctx, "/applications", nil, &apps); err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return apps, nil
}

// CreateJob publishes a new posting.
func (c *Client) CreateJob(ctx context.Context, in domain.JobInput) (*domain.Job, error) {
	var j domain.Job
	if err := c.sendJSON(ctx, http.MethodPost, "/jobs", in, &j); err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}
	return &j, nil
}

// UpdateJob patches an existing posting.
func (c *Client) UpdateJob(ctx context.Context, id string, in domain.JobInput) (*domain.Job, error) {
	var j domain.Job
	if err := c.sendJSON(ctx, http.MethodPatch, "/jobs/"+escape(id), in, &j); err != nil {
		return nil, fmt.Errorf("update job %q: %w", id, err)
	}
	return &j, nil
}

// DeleteJob removes a posting.
func (c *Client) DeleteJob(ctx context.Context, id string) error {
	if err := c.sendJSON(ctx, http.MethodDelete, "/jobs/"+escape(id), nil, nil); err != nil {
		return fmt.Errorf("delete job %q: %w", id, err)
	}
	return nil
}

// Matches returns jobs recommended for the current talent, best first.
func (c *Client) Matches(ctx context.Context, limit int) ([]domain.Match, error) {
	v := url.Values{}
	if limit > 0 {
		v.Set("limit", strconv.Itoa(limit))
	}
	var out []domain.Match
	if err := c.getJSON(ctx, "/matches", v, &out); err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return out, nil
}
