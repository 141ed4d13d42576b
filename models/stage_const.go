package models

type CandidateStage string

const (
	StageApplied  CandidateStage = "applied"
	StageScreen   CandidateStage = "screen"
	StageTech     CandidateStage = "tech"
	StageOffer    CandidateStage = "offer"
	StageHired    CandidateStage = "hired"
	StageRejected CandidateStage = "rejected"
)

// PipelineStages lists the stages in pipeline order.
var PipelineStages = []CandidateStage{
	StageApplied,
	StageScreen,
	StageTech,
	StageOffer,
	StageHired,
	StageRejected,
}

var stageHumanName = map[CandidateStage]string{
	StageApplied:  "Applied",
	StageScreen:   "Screening",
	StageTech:     "Technical interview",
	StageOffer:    "Offer",
	StageHired:    "Hired",
	StageRejected: "Rejected",
}

func (s CandidateStage) ToHuman() string {
	if human, exist := stageHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s CandidateStage) IsValid() bool {
	_, exist := stageHumanName[s]
	return exist
}

// Terminal reports whether a candidate can leave the stage.
func (s CandidateStage) Terminal() bool {
	return s == StageHired || s == StageRejected
}
