package response

// AppError 接口错误：业务码、文案 key 与本地化后的提示
type AppError struct {
	Code    int
	Key     string
	Message string
	Err     error
}

// NewAppError 创建接口错误
func NewAppError(code int, key, message string, err error) *AppError {
	if message == "" {
		message = key
	}
	return &AppError{Code: code, Key: key, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *AppError) Unwrap() error {
	return e.Err
}
