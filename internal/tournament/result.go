package tournament

import (
	"fmt"

	"github.com/lox/ginforbots/internal/game"
	"github.com/lox/ginforbots/internal/rules"
)

// MatchResult aggregates the games of one multi-game match between two
// bots. Indexing is by roster bot, not seat: seat alternation is
// resolved before recording.
type MatchResult struct {
	Bot0Name string
	Bot1Name string

	GamesPlayed int
	Bot0Wins    int
	Bot1Wins    int
	Draws       int

	Bot0Points int
	Bot1Points int

	Bot0Gins      int
	Bot1Gins      int
	Bot0Undercuts int
	Bot1Undercuts int

	Errors []string
}

// NewMatchResult creates an empty result for the named pairing.
func NewMatchResult(bot0Name, bot1Name string) *MatchResult {
	return &MatchResult{Bot0Name: bot0Name, Bot1Name: bot1Name}
}

// RecordGame folds one game result in. bot0Index says which player
// index bot0 occupied for this game.
func (m *MatchResult) RecordGame(result game.Result, bot0Index int) {
	m.GamesPlayed++

	if result.Winner == game.NoPlayer {
		m.Draws++
		return
	}

	bot0Won := result.Winner == bot0Index
	if bot0Won {
		m.Bot0Wins++
		m.Bot0Points += result.Score
	} else {
		m.Bot1Wins++
		m.Bot1Points += result.Score
	}

	switch result.Kind {
	case rules.ResultGin:
		if bot0Won {
			m.Bot0Gins++
		} else {
			m.Bot1Gins++
		}
	case rules.ResultUndercut:
		if bot0Won {
			m.Bot0Undercuts++
		} else {
			m.Bot1Undercuts++
		}
	}
}

// RecordError records a per-game failure (invalid move, timeout, or
// bot panic). The match keeps going.
func (m *MatchResult) RecordError(gameNum int, err error) {
	m.Errors = append(m.Errors, fmt.Sprintf("game %d: %v", gameNum, err))
}

func (m *MatchResult) String() string {
	return fmt.Sprintf("%s vs %s: %d-%d-%d", m.Bot0Name, m.Bot1Name, m.Bot0Wins, m.Bot1Wins, m.Draws)
}

// BotStats aggregates one bot's results across a tournament.
type BotStats struct {
	Name        string
	GamesPlayed int
	Wins        int
	Losses      int
	Draws       int
	TotalPoints int
	Gins        int
	Undercuts   int
	Errors      int

	// HeadToHead maps opponent name to (wins, losses) against them.
	HeadToHead map[string][2]int
}

// NewBotStats creates empty stats for a named bot.
func NewBotStats(name string) *BotStats {
	return &BotStats{Name: name, HeadToHead: make(map[string][2]int)}
}

// WinRate is wins over decided games (draws excluded).
func (s *BotStats) WinRate() float64 {
	decided := s.Wins + s.Losses
	if decided == 0 {
		return 0
	}
	return float64(s.Wins) / float64(decided)
}

// AvgPoints is total points per game played.
func (s *BotStats) AvgPoints() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.TotalPoints) / float64(s.GamesPlayed)
}

// RecordMatch folds a match result into this bot's stats. isBot0 says
// which side of the MatchResult this bot was.
func (s *BotStats) RecordMatch(opponentName string, match *MatchResult, isBot0 bool) {
	var wins, losses, points, gins, undercuts int
	if isBot0 {
		wins, losses = match.Bot0Wins, match.Bot1Wins
		points, gins, undercuts = match.Bot0Points, match.Bot0Gins, match.Bot0Undercuts
	} else {
		wins, losses = match.Bot1Wins, match.Bot0Wins
		points, gins, undercuts = match.Bot1Points, match.Bot1Gins, match.Bot1Undercuts
	}

	s.Wins += wins
	s.Losses += losses
	s.Draws += match.Draws
	s.GamesPlayed += match.GamesPlayed
	s.TotalPoints += points
	s.Gins += gins
	s.Undercuts += undercuts
	s.Errors += len(match.Errors)
	s.HeadToHead[opponentName] = [2]int{wins, losses}
}
