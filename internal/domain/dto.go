package domain

// PageMeta is the pagination envelope accompanying every list response.
type PageMeta struct {
	Total   int64 `json:"total"`
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
}

// PaginatedResponse wraps a page of rows with its meta.
type PaginatedResponse struct {
	Data any      `json:"data"`
	Meta PageMeta `json:"meta"`
}

// DashboardTotals holds the row count per entity table.
type DashboardTotals struct {
	Properties int64 `json:"properties"`
	Clients    int64 `json:"clients"`
	Visits     int64 `json:"visits"`
	Contracts  int64 `json:"contracts"`
}

// MonthlyRevenue is one row of the revenue rollup: the sum of contract values
// for one start-date month. Reference is YYYY-MM.
type MonthlyRevenue struct {
	Reference string  `json:"reference"`
	Total     float64 `json:"total"`
}

// DashboardMetrics is the cross-entity snapshot served by /api/dashboard.
type DashboardMetrics struct {
	Totals             DashboardTotals  `json:"totals"`
	PropertiesByStatus map[string]int64 `json:"properties_by_status"`
	ClientsByStage     map[string]int64 `json:"clients_by_stage"`
	UpcomingVisits     []Visit          `json:"upcoming_visits"`
	ExpiringContracts  []Contract       `json:"expiring_contracts"`
	Revenue            []MonthlyRevenue `json:"revenue"`
}

// AgendaReport is the snapshot emitted by the periodic notifier and the
// notify CLI. Each run is an independent, idempotent read.
type AgendaReport struct {
	GeneratedAt       string     `json:"generated_at"`
	UpcomingVisits    []Visit    `json:"upcoming_visits"`
	ExpiringContracts []Contract `json:"expiring_contracts"`
}

// DeleteResponse acknowledges a delete. Deletes are idempotent; Deleted is
// true when a row was actually removed.
type DeleteResponse struct {
	Deleted bool `json:"deleted"`
}
