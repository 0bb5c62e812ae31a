package games

// GamesError is a custom error type for challenge source errors
type GamesError string

// Error implements the error interface
func (e GamesError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig    GamesError = "config cannot be nil"
	ErrNilRandom    GamesError = "random source cannot be nil"
	ErrNilAIService GamesError = "AI service cannot be nil"
	ErrUnknownKind  GamesError = "unknown game kind"
	ErrExhausted    GamesError = "challenge pool exhausted"
)
