package types

// Field length caps enforced at write time.
const (
	MaxTitleLen   = 200
	MaxMetricLen  = 100
	MaxCommentLen = 2000
)

// Objective is a tracked objective. It owns zero or more KeyResults and one
// monthly comment slot per month in the tracking window.
type Objective struct {
	ID           int64  `db:"id" json:"id"`
	Title        string `db:"title" json:"title"`
	Description  string `db:"description" json:"description"`
	Driver       string `db:"driver" json:"driver"`
	CreatedDate  string `db:"created_date" json:"created_date"`
	ModifiedDate string `db:"modified_date" json:"modified_date"`
}

// KeyResult is a measurable result under one Objective. Inverse marks a
// lower-is-better metric; it is stored as INTEGER 0/1 and converted at the
// persistence edge only.
type KeyResult struct {
	ID           int64  `db:"id" json:"id"`
	ObjectiveID  int64  `db:"objective_id" json:"objective_id"`
	Title        string `db:"title" json:"title"`
	Metric       string `db:"metric" json:"metric"`
	Unit         string `db:"unit" json:"unit"`
	Inverse      bool   `db:"-" json:"inverse_metric"`
	CreatedDate  string `db:"created_date" json:"created_date"`
	ModifiedDate string `db:"modified_date" json:"modified_date"`
}

// MonthlyData is one (key result, month) cell. Exactly one row exists per
// month in the tracking window, provisioned when the key result is created.
type MonthlyData struct {
	ID          int64   `db:"id" json:"id"`
	KeyResultID int64   `db:"key_result_id" json:"key_result_id"`
	Month       string  `db:"month" json:"month"`
	Target      float64 `db:"target" json:"target"`
	Actual      float64 `db:"actual" json:"actual"`
	LastUpdated string  `db:"last_updated" json:"last_updated"`
}

// ObjectiveComment is the monthly commentary slot for an objective.
type ObjectiveComment struct {
	ID          int64  `db:"id" json:"id"`
	ObjectiveID int64  `db:"objective_id" json:"objective_id"`
	Month       string `db:"month" json:"month"`
	Comment     string `db:"comment" json:"comment"`
	LastUpdated string `db:"last_updated" json:"last_updated"`
}

// KeyResultDetails pairs a key result with its full monthly series,
// ordered by month ascending.
type KeyResultDetails struct {
	KeyResult
	MonthlyData []MonthlyData `json:"monthly_data"`
}

// ObjectiveDetails is the composite read used by the dashboard and reports:
// an objective with all its key results (each with monthly data) and all its
// comments.
type ObjectiveDetails struct {
	Objective
	KeyResults []KeyResultDetails `json:"key_results"`
	Comments   []ObjectiveComment `json:"comments"`
}

// ObjectiveInput carries the writable objective fields for create and update.
type ObjectiveInput struct {
	Title       string `validate:"required,max=200"`
	Description string
	Driver      string `validate:"required"`
}

// KeyResultInput carries the writable key result fields for create and update.
type KeyResultInput struct {
	Title   string `validate:"required,max=200"`
	Metric  string `validate:"required,max=100"`
	Unit    string
	Inverse bool
}

// MonthlyUpdate is a partial update of one monthly cell. Nil fields are left
// untouched; when both are nil the update is a no-op.
type MonthlyUpdate struct {
	Target *float64 `validate:"omitempty,gte=0"`
	Actual *float64 `validate:"omitempty,gte=0"`
}

// IsEmpty reports whether the update carries no fields.
func (u MonthlyUpdate) IsEmpty() bool {
	return u.Target == nil && u.Actual == nil
}
