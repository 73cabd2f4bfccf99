package types

type OperationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func Succeeded(message string) OperationResult {
	return OperationResult{Success: true, Message: message}
}

func Failed(message string) OperationResult {
	return OperationResult{Success: false, Message: message}
}
