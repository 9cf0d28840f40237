package queries

import (
	"context"
)

type GetJobQueryHandler struct {
	repos Repositories
}

func NewGetJobQueryHandler(repos Repositories) GetJobQueryHandler {
	return GetJobQueryHandler{repos: repos}
}

// Handle returns errs.ObjectNotFoundError for an unknown job.
func (h GetJobQueryHandler) Handle(ctx context.Context, query GetJobQuery) (JobView, error) {
	if err := query.Validate(); err != nil {
		return JobView{}, err
	}

	j, err := h.repos.JobRepository().Get(ctx, query.JobID())
	if err != nil {
		return JobView{}, err
	}

	return newJobView(j), nil
}
