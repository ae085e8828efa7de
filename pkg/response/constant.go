package response

const (
	MessageSuccess      = "Success"
	BadRequestErrorCode = 1
)
