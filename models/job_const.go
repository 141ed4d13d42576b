package models

type JobStatus string

const (
	JobStatusActive   JobStatus = "active"
	JobStatusArchived JobStatus = "archived"
)

func (s JobStatus) IsValid() bool {
	switch s {
	case JobStatusActive, JobStatusArchived:
		return true
	}
	return false
}

type JobSort string

const (
	JobSortPosition JobSort = "position"
	JobSortTitle    JobSort = "title"
	JobSortCreated  JobSort = "created"
)
