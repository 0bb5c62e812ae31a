package leaderboard

import (
	"context"
	"sync"

	"github.com/arcadebot/arcadebot/internal/common/clock"
	"github.com/arcadebot/arcadebot/internal/models"
	leaderboardRepo "github.com/arcadebot/arcadebot/internal/repositories/leaderboard"
	pointsRepo "github.com/arcadebot/arcadebot/internal/repositories/points"
)

// defaultCapacity bounds the shared winners list when the config leaves it unset
const defaultCapacity = 10

// service implements the Service interface
type service struct {
	capacity        int
	leaderboardRepo leaderboardRepo.Repository
	pointsRepo      pointsRepo.Repository
	clock           clock.Clock

	// Serializes every read-modify-write of the shared list so concurrent
	// sessions across channels cannot interleave their updates
	mu sync.Mutex
}

// New creates a new leaderboard service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.LeaderboardRepo == nil {
		return nil, ErrNilLeaderboardRepo
	}

	if cfg.PointsRepo == nil {
		return nil, ErrNilPointsRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	capacity := cfg.Capacity
	if capacity <= 0 {
		capacity = defaultCapacity
	}

	return &service{
		capacity:        capacity,
		leaderboardRepo: cfg.LeaderboardRepo,
		pointsRepo:      cfg.PointsRepo,
		clock:           cfg.Clock,
	}, nil
}

// AddWinner records a round winner on the shared list. Re-adding a user who
// already has an entry is a strict no-op: the call returns ResultAlreadyPresent
// and the stored username is left untouched. NewlyFull reports the single
// below-capacity to at-capacity transition, so a list that is already full
// (reset pending) never reports it again.
func (s *service) AddWinner(ctx context.Context, input *AddWinnerInput) (*AddWinnerOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrEmptyUserID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.leaderboardRepo.GetRecentWinners(ctx, &leaderboardRepo.GetRecentWinnersInput{})
	if err != nil {
		return nil, err
	}

	entries := current.Entries
	for _, entry := range entries {
		if entry.UserID == input.UserID {
			return &AddWinnerOutput{
				Result:  ResultAlreadyPresent,
				Entries: entries,
			}, nil
		}
	}

	wasFull := len(entries) >= s.capacity

	entries = append(entries, &models.LeaderboardEntry{
		UserID:   input.UserID,
		Username: input.Username,
		GameKind: input.GameKind,
		HostID:   input.HostID,
		HostName: input.HostName,
		WonAt:    s.clock.Now(),
	})

	// Keep the most recent entries only
	if len(entries) > s.capacity {
		entries = entries[len(entries)-s.capacity:]
	}

	if err := s.leaderboardRepo.SaveRecentWinners(ctx, &leaderboardRepo.SaveRecentWinnersInput{
		Entries: entries,
	}); err != nil {
		return nil, err
	}

	return &AddWinnerOutput{
		Result:    ResultAdded,
		NewlyFull: !wasFull && len(entries) >= s.capacity,
		Entries:   entries,
	}, nil
}

// ListWinners returns the current list in insertion order, oldest first
func (s *service) ListWinners(ctx context.Context, input *ListWinnersInput) (*ListWinnersOutput, error) {
	current, err := s.leaderboardRepo.GetRecentWinners(ctx, &leaderboardRepo.GetRecentWinnersInput{})
	if err != nil {
		return nil, err
	}

	return &ListWinnersOutput{Entries: current.Entries}, nil
}

// IsFull reports whether the list has reached capacity
func (s *service) IsFull(ctx context.Context, input *IsFullInput) (*IsFullOutput, error) {
	current, err := s.leaderboardRepo.GetRecentWinners(ctx, &leaderboardRepo.GetRecentWinnersInput{})
	if err != nil {
		return nil, err
	}

	return &IsFullOutput{Full: len(current.Entries) >= s.capacity}, nil
}

// Reset clears the shared winners list
func (s *service) Reset(ctx context.Context, input *ResetInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.leaderboardRepo.SaveRecentWinners(ctx, &leaderboardRepo.SaveRecentWinnersInput{
		Entries: []*models.LeaderboardEntry{},
	})
}

// AwardPoints credits a user on the cumulative points ledger
func (s *service) AwardPoints(ctx context.Context, input *AwardPointsInput) (*AwardPointsOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrEmptyUserID
	}

	if input.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	out, err := s.pointsRepo.AwardPoints(ctx, &pointsRepo.AwardPointsInput{
		UserID: input.UserID,
		Amount: input.Amount,
	})
	if err != nil {
		return nil, err
	}

	return &AwardPointsOutput{Total: out.Total}, nil
}

// GetPoints returns a user's point total
func (s *service) GetPoints(ctx context.Context, input *GetPointsInput) (*GetPointsOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrEmptyUserID
	}

	out, err := s.pointsRepo.GetPoints(ctx, &pointsRepo.GetPointsInput{
		UserID: input.UserID,
	})
	if err != nil {
		return nil, err
	}

	return &GetPointsOutput{Total: out.Total}, nil
}

// TopPoints returns the highest point totals, descending
func (s *service) TopPoints(ctx context.Context, input *TopPointsInput) (*TopPointsOutput, error) {
	n := defaultCapacity
	if input != nil && input.N > 0 {
		n = input.N
	}

	out, err := s.pointsRepo.TopN(ctx, &pointsRepo.TopNInput{N: n})
	if err != nil {
		return nil, err
	}

	return &TopPointsOutput{Entries: out.Entries}, nil
}

// ResetPoints clears the points ledger
func (s *service) ResetPoints(ctx context.Context, input *ResetPointsInput) error {
	return s.pointsRepo.Reset(ctx, &pointsRepo.ResetInput{})
}

// GetPublishedMessage returns the tracked leaderboard message for a channel
func (s *service) GetPublishedMessage(ctx context.Context, input *GetPublishedMessageInput) (*GetPublishedMessageOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, ErrEmptyChannelID
	}

	out, err := s.leaderboardRepo.GetLastPublishedMessage(ctx, &leaderboardRepo.GetLastPublishedMessageInput{
		ChannelID: input.ChannelID,
	})
	if err != nil {
		return nil, err
	}

	return &GetPublishedMessageOutput{MessageID: out.MessageID}, nil
}

// TrackPublishedMessage remembers a published leaderboard message
func (s *service) TrackPublishedMessage(ctx context.Context, input *TrackPublishedMessageInput) error {
	if input == nil || input.ChannelID == "" {
		return ErrEmptyChannelID
	}

	if input.MessageID == "" {
		return ErrEmptyMessageID
	}

	return s.leaderboardRepo.SetLastPublishedMessage(ctx, &leaderboardRepo.SetLastPublishedMessageInput{
		ChannelID: input.ChannelID,
		MessageID: input.MessageID,
	})
}
