package ai

// AIError is a custom error type for AI-related errors
type AIError string

// Error implements the error interface
func (e AIError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig          AIError = "config cannot be nil"
	ErrEmptyAPIKey        AIError = "API key cannot be empty"
	ErrEmptyModel         AIError = "model cannot be empty"
	ErrEmptyResponse      AIError = "no response from model"
	ErrQuestionGeneration AIError = "could not generate a sufficiently distinct question pair"
)
