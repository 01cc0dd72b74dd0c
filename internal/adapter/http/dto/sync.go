package dto

type SyncHabitsRequest struct {
	UserEmail string `json:"userEmail" binding:"required"`
}

type SyncHabitsResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

type MigrateTasksResponse struct {
	Message string `json:"message"`
	Count   int64  `json:"count"`
}
