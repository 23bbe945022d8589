package dto

// StudyPartner is one scored recommendation. CurrentClass carries the course
// code when the candidate is in class right now; otherwise NextClass carries
// a "<code> @ <12-hour time>" label when a later class exists today.
type StudyPartner struct {
	ID            string   `json:"id"`
	Username      string   `json:"username"`
	Major         string   `json:"major"`
	Avatar        string   `json:"avatar,omitempty"`
	Score         int      `json:"score"`
	SharedClasses []string `json:"shared_classes"`
	CurrentClass  string   `json:"current_class,omitempty"`
	NextClass     string   `json:"next_class,omitempty"`
	Reason        string   `json:"reason"`
}
