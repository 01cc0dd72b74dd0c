package dto

type TaskItem struct {
	ID            string  `json:"id"`
	UserEmail     string  `json:"userEmail"`
	Text          string  `json:"text"`
	Completed     bool    `json:"completed"`
	Priority      string  `json:"priority"`
	Category      string  `json:"category"`
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	Details       string  `json:"details"`
	IsHabit       bool    `json:"isHabit"`
	LinkedHabitID *string `json:"linkedHabitId"`
}

type CreateTaskRequest struct {
	UserEmail     string  `json:"userEmail" binding:"required"`
	Text          string  `json:"text" binding:"required"`
	Priority      *string `json:"priority" binding:"omitempty,oneof=low medium high"`
	Category      *string `json:"category" binding:"omitempty,max=255"`
	Date          *string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Time          *string `json:"time" binding:"omitempty,datetime=15:04"`
	Details       *string `json:"details"`
	IsHabit       *bool   `json:"isHabit"`
	LinkedHabitID *string `json:"linkedHabitId"`
}

type ToggleTaskRequest struct {
	Completed *bool `json:"completed" binding:"required"`
}

type DeleteTaskResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}
