package study

import "sync"

// cardLocks serializes work on the same card within the process.
// Entries are dropped once nobody holds or waits for them.
type cardLocks struct {
	mu    sync.Mutex
	locks map[string]*cardLock
}

type cardLock struct {
	mu      sync.Mutex
	holders int
}

func newCardLocks() *cardLocks {
	return &cardLocks{locks: make(map[string]*cardLock)}
}

// Lock blocks until the card is free and returns the unlock function.
func (l *cardLocks) Lock(cardID string) func() {
	l.mu.Lock()
	lock, ok := l.locks[cardID]
	if !ok {
		lock = &cardLock{}
		l.locks[cardID] = lock
	}
	lock.holders++
	l.mu.Unlock()

	lock.mu.Lock()
	return func() {
		lock.mu.Unlock()

		l.mu.Lock()
		defer l.mu.Unlock()
		lock.holders--
		if lock.holders == 0 {
			delete(l.locks, cardID)
		}
	}
}

func (l *cardLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
