package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ScoringSuite struct {
	suite.Suite
}

func TestScoringSuite(t *testing.T) {
	suite.Run(t, new(ScoringSuite))
}

func (s *ScoringSuite) TestMaximumScore() {
	s.Equal(1000, CalculateScore(1, 0))
}

func (s *ScoringSuite) TestCluesAndTimePenalties() {
	s.Equal(791, CalculateScore(3, 95))
}

func (s *ScoringSuite) TestZeroCluesHasNoNegativePenalty() {
	s.Equal(1000, CalculateScore(0, 0))
	s.Equal(1000, CalculateScore(-4, 9))
}

func (s *ScoringSuite) TestNegativeTimeHasNoPenalty() {
	s.Equal(1000, CalculateScore(1, -50))
}

func (s *ScoringSuite) TestFloor() {
	s.Equal(100, CalculateScore(10, 0))
	s.Equal(100, CalculateScore(1, 1_000_000))
	s.Equal(100, CalculateScore(50, 50_000))
}

func (s *ScoringSuite) TestNeverBelowFloor() {
	for c := -2; c <= 20; c++ {
		for t := -20; t <= 20_000; t += 137 {
			s.GreaterOrEqual(CalculateScore(c, t), 100)
			s.LessOrEqual(CalculateScore(c, t), 1000)
		}
	}
}

func (s *ScoringSuite) TestMonotonicInTime() {
	for c := 0; c <= 8; c++ {
		prev := CalculateScore(c, 0)
		for t := 1; t <= 12_000; t++ {
			cur := CalculateScore(c, t)
			s.Require().LessOrEqual(cur, prev, "clues=%d t=%d", c, t)
			prev = cur
		}
	}
}

func (s *ScoringSuite) TestMonotonicInClues() {
	for t := 0; t <= 3_000; t += 7 {
		prev := CalculateScore(0, t)
		for c := 1; c <= 15; c++ {
			cur := CalculateScore(c, t)
			s.Require().LessOrEqual(cur, prev, "clues=%d t=%d", c, t)
			prev = cur
		}
	}
}

func (s *ScoringSuite) TestLargeInputsSaturateAtFloor() {
	s.Equal(100, CalculateScore(math.MaxInt, math.MaxInt))
	s.Equal(100, CalculateScore(math.MaxInt/100+1, math.MaxInt))
	s.Equal(100, CalculateScore(math.MaxInt/50, 0))
	s.Equal(100, CalculateScore(1, math.MaxInt))
	s.Equal(1000, CalculateScore(math.MinInt, math.MinInt))
}

func (s *ScoringSuite) TestMonotonicNearMaxInt() {
	inputs := []int{0, 1, 2, 9, 10, 11, math.MaxInt / 100, math.MaxInt/100 + 1, math.MaxInt / 50, math.MaxInt - 1, math.MaxInt}
	for _, c := range inputs {
		for i := 1; i < len(inputs); i++ {
			s.Require().LessOrEqual(CalculateScore(c, inputs[i]), CalculateScore(c, inputs[i-1]), "clues=%d", c)
			s.Require().LessOrEqual(CalculateScore(inputs[i], c), CalculateScore(inputs[i-1], c), "t=%d", c)
		}
	}
}

func (s *ScoringSuite) TestFormatTime() {
	s.Equal("0:00", FormatTime(0))
	s.Equal("0:09", FormatTime(9))
	s.Equal("1:35", FormatTime(95))
	s.Equal("61:01", FormatTime(3661))
	s.Equal("0:00", FormatTime(-3))
}
