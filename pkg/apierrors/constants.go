package apierrors

const (
	MsgUserExists         = "userExists"
	MsgInvalidCredentials = "invalidCredentials"
	MsgUserNotFound       = "userNotFound"
	MsgTaskNotFound       = "taskNotFound"
	MsgRolesNotFound      = "rolesNotFound"
	MsgTokenExpired       = "tokenExpired"
	MsgTokenInvalid       = "tokenInvalid"
	MsgNotAuthenticated   = "notAuthenticated"
	MsgInvalidUserPayload = "invalidUserPayload"
	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgInvalidTaskID      = "invalidTaskID"
	MsgFailRegisterUser   = "failRegisterUser"
	MsgFailLoginUser      = "failLoginUser"
	MsgFailGetUser        = "failGetUser"
	MsgFailUpdateUser     = "failUpdateUser"
	MsgFailDeleteUser     = "failDeleteUser"
	MsgFailListTasks      = "failListTasks"
	MsgFailGetTask        = "failGetTask"
	MsgFailCreateTask     = "failCreateTask"
	MsgFailUpdateTask     = "failUpdateTask"
	MsgFailListRoles      = "failListRoles"

	MsgUserRegistered = "userRegistered"
	MsgUserUpdated    = "userUpdated"
	MsgUserDeleted    = "userDeleted"
	MsgTaskUpdated    = "taskUpdated"
)
