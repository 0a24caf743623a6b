package models

// FrogVisitResult represents the outcome of a daily frog visit
type FrogVisitResult struct {
	Stage          int    `json:"stage"`
	StageName      string `json:"stageName"`
	Classification string `json:"classification"`
}

// FrogStageNames maps each growth stage to its display name
var FrogStageNames = [MaxFrogStage + 1]string{
	"Huevo",
	"Embriones",
	"Renacuajo (2 patas)",
	"Renacuajo (4 patas)",
	"Rana Adulta",
}
