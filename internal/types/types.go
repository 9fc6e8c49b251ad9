package types

// Status 申请状态
type Status string

const (
	StatusAccepted Status = "accepted" // 已录取
	StatusApplied  Status = "applied"  // 已申请，等待结果
	StatusRejected Status = "rejected" // 被拒绝
)

// AllStatuses 按展示顺序返回所有状态
func AllStatuses() []Status {
	return []Status{StatusAccepted, StatusApplied, StatusRejected}
}

// DocumentType 文档类型，决定文档链接的图标
type DocumentType string

const (
	DocumentOffer       DocumentType = "offer"
	DocumentScholarship DocumentType = "scholarship"
	DocumentOther       DocumentType = "other"
)

// AllDocumentTypes 返回所有文档类型
func AllDocumentTypes() []DocumentType {
	return []DocumentType{DocumentOffer, DocumentScholarship, DocumentOther}
}

// DecisionPending 尚未出结果时的决定日期占位
const DecisionPending = "Pending"

type Document struct {
	Name string       `json:"name"`
	URL  string       `json:"url"`
	Type DocumentType `json:"type"`
}

type Scholarship struct {
	Name   string `json:"name"`
	Amount string `json:"amount"` // 展示用金额，如 "$17,500/year"
}

type Application struct {
	ID           string        `json:"id"`
	University   string        `json:"university"`
	Status       Status        `json:"status"`
	AppliedOn    string        `json:"applied_on"`
	DecisionDate string        `json:"decision_date"`
	Documents    []Document    `json:"documents"`
	Scholarships []Scholarship `json:"scholarships,omitempty"`
}

// DecisionPending 学校是否尚未给出结果
func (a Application) DecisionPending() bool {
	return a.DecisionDate == DecisionPending
}
