package throttle

import (
	"log"
	"sync"
	"time"
)

type BucketStore[K comparable] struct {
	groups map[string]*BucketGroup[K]
}

func NewBucketStore[K comparable]() *BucketStore[K] {
	return &BucketStore[K]{
		groups: make(map[string]*BucketGroup[K]),
	}
}

func (s *BucketStore[K]) GetBucketGroup(id string) (*BucketGroup[K], bool) {
	g, ok := s.groups[id]
	return g, ok
}

func (s *BucketStore[K]) GetBucket(groupID string, userID K) (*Bucket[K], bool) {
	g, ok := s.groups[groupID]
	if !ok {
		return nil, false
	}
	return g.GetBucket(userID)
}

func (s *BucketStore[K]) SetBucketGroup(id string, conf *BucketConf) {
	s.groups[id] = &BucketGroup[K]{
		conf:    conf,
		buckets: &sync.Map{},
	}
}

func (s *BucketStore[K]) Allow(groupID string, userID K, now time.Time) bool {
	g, ok := s.GetBucketGroup(groupID)
	if !ok {
		return false // Invalid groupID always Blocked
	}
	b, ok := g.GetBucket(userID)
	if ok {
		return b.Allow(now)
	}
	// consume 1 token from the fresh bucket
	g.SetBucket(userID, g.conf.Burst-1, now)
	return true
}

func (s *BucketStore[K]) Cleanup(olderThan time.Duration, now time.Time) {
	for _, g := range s.groups {
		g.buckets.Range(func(key, value any) bool {
			b := value.(*Bucket[K])
			// lock per bucket while checking/removing
			b.mu.Lock()
			last := b.lastCheck
			b.mu.Unlock()

			if now.Sub(last) > olderThan {
				g.buckets.Delete(key)
			}
			return true // continue iteration
		})
	}
}

// StartCleanUpService starts a background goroutine that periodically
// cleans up expired buckets. It runs forever until the process exits.
//   - period: how often to wake up
//   - olderThan: how old a bucket must be to be deleted
func (s *BucketStore[K]) StartCleanUpService(period time.Duration, olderThan time.Duration) {
	log.Printf("[INFO][Throttle] starting cleanup service period=%v olderthan=%v", period, olderThan)
	go func() {
		ticker := time.NewTicker(period)
		defer ticker.Stop()

		for now := range ticker.C {
			func() {
				defer func() {
					if r := recover(); r != nil {
						log.Printf("[PANIC] recovered in throttle bucketstore cleanup: %v", r)
					}
				}()
				log.Println("[INFO][Throttle] cleanup cycle ...")
				s.Cleanup(olderThan, now)
			}()
		}
	}()
}
