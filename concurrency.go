package paperdex

import "sync"

// ═══════════════════════════════════════════════════════════════════════════════
// WRITER-PREFERRING READ/WRITE LOCK
// ═══════════════════════════════════════════════════════════════════════════════
// sync.RWMutex does not guarantee writers are not starved by a steady stream of
// readers. This engine needs the opposite bias: once a writer is waiting, new
// readers queue behind it so indexing/merge work is never indefinitely
// postponed by search traffic. rwMutex implements that bias directly on top of
// sync.Mutex + sync.Cond.
//
// No other code in this package creates or uses an rwMutex.
// ═══════════════════════════════════════════════════════════════════════════════

type rwMutex struct {
	mu            sync.Mutex
	cond          *sync.Cond
	activeReaders int
	writerActive  bool
	waitingWriter int
}

func newRWMutex() *rwMutex {
	m := &rwMutex{}
	m.cond = sync.NewCond(&m.mu)
	return m
}

// RLock blocks while a writer holds or is waiting for the lock.
func (m *rwMutex) RLock() {
	m.mu.Lock()
	for m.writerActive || m.waitingWriter > 0 {
		m.cond.Wait()
	}
	m.activeReaders++
	m.mu.Unlock()
}

func (m *rwMutex) RUnlock() {
	m.mu.Lock()
	m.activeReaders--
	if m.activeReaders == 0 {
		m.cond.Broadcast()
	}
	m.mu.Unlock()
}

// Lock blocks until no readers and no other writer hold the lock. A waiting
// writer is recorded before blocking so that subsequently arriving readers
// queue behind it instead of overtaking it.
func (m *rwMutex) Lock() {
	m.mu.Lock()
	m.waitingWriter++
	for m.writerActive || m.activeReaders > 0 {
		m.cond.Wait()
	}
	m.waitingWriter--
	m.writerActive = true
	m.mu.Unlock()
}

func (m *rwMutex) Unlock() {
	m.mu.Lock()
	m.writerActive = false
	m.cond.Broadcast()
	m.mu.Unlock()
}
