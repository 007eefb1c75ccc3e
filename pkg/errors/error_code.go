package errors

const (
	CodeInitializeError int = 7001
	CodeLackOfConfig    int = 7002

	CodeBackendUnreachable int = 8001
	CodeQueryError         int = 8002

	CodeAuthError     int = 9001
	CodeDeliveryError int = 9002

	CodeInternalError int = 5000
)
