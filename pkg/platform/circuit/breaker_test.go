package circuit

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type BreakerSuite struct {
	suite.Suite
	now time.Time
}

func TestBreakerSuite(t *testing.T) {
	suite.Run(t, new(BreakerSuite))
}

func (s *BreakerSuite) SetupTest() {
	s.now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
}

func (s *BreakerSuite) breaker(opts ...Option) *Breaker {
	opts = append([]Option{WithClock(func() time.Time { return s.now })}, opts...)
	return New("catalog-cache", opts...)
}

func (s *BreakerSuite) TestDefaults() {
	b := s.breaker()
	s.Equal("catalog-cache", b.Name())
	s.Equal(StateClosed, b.State())
	s.True(b.Allow())

	for range defaultFailureThreshold - 1 {
		b.RecordFailure()
	}
	s.False(b.IsOpen())
	b.RecordFailure()
	s.True(b.IsOpen())
}

func (s *BreakerSuite) TestTransitionsAreReportedOnce() {
	b := s.breaker(WithFailureThreshold(3), WithSuccessThreshold(1))

	var opened, closed int
	for range 6 {
		if _, c := b.RecordFailure(); c.Opened {
			opened++
		}
	}
	for range 3 {
		if _, c := b.RecordSuccess(); c.Closed {
			closed++
		}
	}
	s.Equal(1, opened)
	s.Equal(1, closed)
	s.Equal(StateClosed, b.State())
}

func (s *BreakerSuite) TestFallbackFlags() {
	b := s.breaker(WithFailureThreshold(1), WithSuccessThreshold(2))

	useFallback, _ := b.RecordFailure()
	s.True(useFallback)

	usePrimary, _ := b.RecordSuccess()
	s.False(usePrimary, "one success is not enough to close")

	usePrimary, _ = b.RecordSuccess()
	s.True(usePrimary)
}

func (s *BreakerSuite) TestRunsMustBeConsecutive() {
	b := s.breaker(WithFailureThreshold(2), WithSuccessThreshold(2))

	b.RecordFailure()
	b.RecordSuccess()
	b.RecordFailure()
	s.False(b.IsOpen(), "success in between restarts the failure run")

	b.RecordFailure()
	s.Require().True(b.IsOpen())

	b.RecordSuccess()
	b.RecordFailure()
	b.RecordSuccess()
	s.True(b.IsOpen(), "failure in between restarts the success run")
}

func (s *BreakerSuite) TestProbeSpacing() {
	b := s.breaker(WithFailureThreshold(1), WithCooldown(time.Minute))
	b.RecordFailure()

	s.False(b.Allow())
	s.now = s.now.Add(59 * time.Second)
	s.False(b.Allow())

	s.now = s.now.Add(time.Second)
	s.True(b.Allow())
	s.False(b.Allow())

	s.now = s.now.Add(time.Minute)
	s.True(b.Allow())
}

func (s *BreakerSuite) TestReset() {
	b := s.breaker(WithFailureThreshold(1))
	b.RecordFailure()
	b.Reset()
	s.Equal(StateClosed, b.State())
	s.True(b.Allow())
}

func (s *BreakerSuite) TestConcurrentFailuresOpenOnce() {
	b := s.breaker(WithFailureThreshold(10))
	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		opened int
	)
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, c := b.RecordFailure(); c.Opened {
				mu.Lock()
				opened++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	s.Equal(1, opened)
	s.True(b.IsOpen())
}
