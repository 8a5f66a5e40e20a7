package code

// 错误码消息映射（固定英文消息；需要本地化的响应由 i18n 层负责）
var codeMessageMap = map[int]string{
	// 通用错误码
	ErrSuccess:      "Success",
	ErrUnknown:      "Internal server error",
	ErrBind:         "Invalid request parameters",
	ErrValidation:   "Request validation failed",
	ErrTokenInvalid: "Invalid or expired token",
	ErrForbidden:    "Admin access required",

	// 学生账户相关错误码
	ErrStudentNotFound:     "Student not found",
	ErrStudentAlreadyExist: "User already exists",
	ErrInvalidCredentials:  "Invalid credentials",

	// 警报相关错误码
	ErrAlertNotFound:      "Alert not found",
	ErrAlertStatusInvalid: "Invalid alert status",

	// 数据库相关错误码
	ErrDatabase: "Database error",
}

// 错误码HTTP状态码映射
var codeStatusMap = map[int]int{
	// 通用错误码
	ErrSuccess:      StatusOK,
	ErrUnknown:      StatusInternalServerError,
	ErrBind:         StatusBadRequest,
	ErrValidation:   StatusBadRequest,
	ErrTokenInvalid: StatusUnauthorized,
	ErrForbidden:    StatusForbidden,

	// 学生账户相关错误码
	ErrStudentNotFound:     StatusNotFound,
	ErrStudentAlreadyExist: StatusConflict,
	ErrInvalidCredentials:  StatusUnauthorized,

	// 警报相关错误码
	ErrAlertNotFound:      StatusNotFound,
	ErrAlertStatusInvalid: StatusBadRequest,

	// 数据库相关错误码
	ErrDatabase: StatusInternalServerError,
}

// GetMessage 获取错误码对应的消息
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "Unknown error"
}

// GetStatus 获取错误码对应的HTTP状态码
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
