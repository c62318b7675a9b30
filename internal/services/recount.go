package services

import (
	"log"
	"sync"
	"time"

	"herhub/internal/db"
	"herhub/internal/models"
)

// RecountService reconciles the cached likes_count and comments_count
// columns with the underlying sets, off the request path. The mutation
// handlers keep the counters consistent transactionally; this worker repairs
// drift (a crash between writes, manual data edits) so the cached-count
// invariant is self-healing.
type RecountService struct {
	queue   chan uint
	pending map[uint]bool
	mu      sync.Mutex
}

var (
	recountService *RecountService
	recountOnce    sync.Once
)

// GetRecountService returns the singleton, starting the background worker on
// first use.
func GetRecountService() *RecountService {
	recountOnce.Do(func() {
		recountService = &RecountService{
			queue:   make(chan uint, 1000),
			pending: make(map[uint]bool),
		}
		go recountService.worker()
	})
	return recountService
}

// Schedule queues a post for reconciliation. Duplicate requests for a post
// already in the queue are dropped; a full queue drops the request rather
// than blocking the caller.
func (s *RecountService) Schedule(postID uint) {
	s.mu.Lock()
	if s.pending[postID] {
		s.mu.Unlock()
		return
	}
	s.pending[postID] = true
	s.mu.Unlock()

	select {
	case s.queue <- postID:
	default:
		s.mu.Lock()
		delete(s.pending, postID)
		s.mu.Unlock()
		log.Printf("recount queue full, skipping post %d", postID)
	}
}

func (s *RecountService) worker() {
	batch := make([]uint, 0, 50)
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case postID := <-s.queue:
			batch = append(batch, postID)
			if len(batch) >= 50 {
				s.processBatch(batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				s.processBatch(batch)
				batch = batch[:0]
			}
		}
	}
}

func (s *RecountService) processBatch(postIDs []uint) {
	for _, postID := range postIDs {
		s.recount(postID)

		s.mu.Lock()
		delete(s.pending, postID)
		s.mu.Unlock()
	}
}

func (s *RecountService) recount(postID uint) {
	var post models.Post
	if err := db.DB.First(&post, postID).Error; err != nil {
		log.Printf("recount skipped, post %d not found", postID)
		return
	}

	var likes int64
	db.DB.Model(&models.Like{}).Where("post_id = ?", postID).Count(&likes)

	var comments int64
	db.DB.Model(&models.Comment{}).Where("post_id = ?", postID).Count(&comments)

	if int(likes) == post.LikesCount && int(comments) == post.CommentsCount {
		return
	}

	if err := db.DB.Model(&models.Post{}).Where("id = ?", postID).
		UpdateColumns(map[string]interface{}{
			"likes_count":    likes,
			"comments_count": comments,
		}).Error; err != nil {
		log.Printf("recount failed for post %d: %v", postID, err)
	}
}
