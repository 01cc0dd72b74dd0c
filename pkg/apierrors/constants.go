package apierrors

const (
	MsgUserEmailRequired  = "userEmailRequired"
	MsgInvalidTaskID      = "invalidTaskID"
	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgTaskNotFound       = "taskNotFound"
	MsgFailListTasks      = "failListTasks"
	MsgFailCreateTask     = "failCreateTask"
	MsgFailUpdateTask     = "failUpdateTask"
	MsgFailDeleteTask     = "failDeleteTask"

	MsgInvalidHabitID      = "invalidHabitID"
	MsgInvalidHabitPayload = "invalidHabitPayload"
	MsgHabitNotFound       = "habitNotFound"
	MsgFailListHabits      = "failListHabits"
	MsgFailCreateHabit     = "failCreateHabit"
	MsgFailUpdateHabit     = "failUpdateHabit"
	MsgFailDeleteHabit     = "failDeleteHabit"

	MsgFailSyncHabits   = "failSyncHabits"
	MsgFailMigrateTasks = "failMigrateTasks"

	MsgInvalidAuthPayload = "invalidAuthPayload"
	MsgEmailTaken         = "emailTaken"
	MsgInvalidCredentials = "invalidCredentials"
	MsgFailRegister       = "failRegister"
	MsgFailLogin          = "failLogin"
)
