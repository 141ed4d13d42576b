package models

type UserRole string

const (
	AdminRole     UserRole = "ADMIN_ROLE"
	CandidateRole UserRole = "CANDIDATE_ROLE"
)

var roleHumanName = map[UserRole]string{
	AdminRole:     "Recruiter",
	CandidateRole: "Candidate",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == AdminRole
}

const SystemUser = "System"
