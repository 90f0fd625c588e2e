package constants

const (
	StatusError              = "Error"
	StatusAlreadyRegistered  = "User already registered"
	StatusUserNotFound       = "User not found"
	StatusInsertFailed       = "Unable to insert"
	StatusSessionNotFound    = "Game session not found"
	StatusSessionClosed      = "Game session already completed"
	StatusInvalidCredentials = "Invalid email or password"
)

const (
	MsgBackupQuestions    = "Using backup questions"
	MsgConnectionIssue    = "Connection issue"
	MsgRegistrationNeeded = "Create a free account to keep chatting with Deputy Dan"
	MsgDuplicateBadge     = "Badge already earned"
)
