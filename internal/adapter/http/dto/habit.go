package dto

type StreakEntryItem struct {
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
}

type HabitItem struct {
	ID        string            `json:"id"`
	UserEmail string            `json:"userEmail"`
	Name      string            `json:"name"`
	Category  string            `json:"category"`
	Streak    []StreakEntryItem `json:"streak"`
}

type CreateHabitRequest struct {
	UserEmail string  `json:"userEmail" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Category  *string `json:"category" binding:"omitempty,max=255"`
}

type CreateHabitResponse struct {
	Message string    `json:"message"`
	Habit   HabitItem `json:"habit"`
}

type SetStreakEntryRequest struct {
	Date      string `json:"date" binding:"required,datetime=2006-01-02"`
	Completed *bool  `json:"completed" binding:"required"`
}

type SetStreakEntryResponse struct {
	Habit HabitItem `json:"habit"`
}

type DeleteHabitResponse struct {
	Message string `json:"message"`
}
