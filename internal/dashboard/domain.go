package dashboard

import "time"

// Summary is the aggregated snapshot served to the dashboard.
type Summary struct {
	ProjectStatusCounts map[string]int `json:"projectStatusCounts"`
	TotalProjects       int            `json:"totalProjects"`
	OpenIssues          int            `json:"openIssues"`
	OverdueTasks        int            `json:"overdueTasks"`
	LowStockItems       int            `json:"lowStockItems"`
	TotalBudget         float64        `json:"totalBudget"`
	TotalActualCost     float64        `json:"totalActualCost"`
	BudgetDisplay       string         `json:"budgetDisplay"`
	ActualCostDisplay   string         `json:"actualCostDisplay"`
	GeneratedAt         time.Time      `json:"generatedAt"`
}
