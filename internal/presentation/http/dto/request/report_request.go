package request

// GenerateReportRequest saves a run of the sales report
type GenerateReportRequest struct {
	Title    string `json:"title" binding:"max=255"`
	Month    string `json:"month"`
	Year     string `json:"year"`
	Category string `json:"category"`
}

// UpdateReportRequest edits a saved report's metadata
type UpdateReportRequest struct {
	Title     *string `json:"title" binding:"omitempty,min=1,max=255"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}
