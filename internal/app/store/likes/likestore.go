// Package likestore owns the likes collection and the denormalized
// likes_count kept on video records.
package likestore

import (
	"errors"
	"time"

	"github.com/geolearnhq/geolearn/internal/app/store/jsonstore"
	"github.com/geolearnhq/geolearn/internal/domain/models"
)

// ErrVideoNotFound is returned when toggling a like on an unknown video.
var ErrVideoNotFound = errors.New("video not found")

// Store provides access to the likes collection.
type Store struct {
	db *jsonstore.DB
}

// New creates a likes Store backed by the given data directory.
func New(db *jsonstore.DB) *Store { return &Store{db: db} }

// Toggle flips the like state for (userID, videoID): an existing like is
// removed, a missing one is inserted with the current timestamp. The
// video's likes_count is then recomputed from the surviving like set and
// persisted. Recomputing from scratch rather than incrementing is
// deliberate: it heals any drift a previous bug or race left behind.
func (s *Store) Toggle(userID, videoID string) (liked bool, likesCount int, err error) {
	videos, err := jsonstore.Load[models.Video](s.db, jsonstore.Videos)
	if err != nil {
		return false, 0, err
	}
	videoIdx := -1
	for i, v := range videos {
		if v.ID == videoID {
			videoIdx = i
			break
		}
	}
	if videoIdx < 0 {
		return false, 0, ErrVideoNotFound
	}

	likes, err := jsonstore.Load[models.Like](s.db, jsonstore.Likes)
	if err != nil {
		return false, 0, err
	}

	liked = true
	kept := make([]models.Like, 0, len(likes)+1)
	for _, l := range likes {
		if l.UserID == userID && l.VideoID == videoID {
			liked = false // existing like: drop it
			continue
		}
		kept = append(kept, l)
	}
	if liked {
		kept = append(kept, models.Like{
			UserID:    userID,
			VideoID:   videoID,
			Timestamp: time.Now().UTC(),
		})
	}
	if err := jsonstore.Save(s.db, jsonstore.Likes, kept); err != nil {
		return false, 0, err
	}

	likesCount = 0
	for _, l := range kept {
		if l.VideoID == videoID {
			likesCount++
		}
	}
	videos[videoIdx].LikesCount = likesCount
	if err := jsonstore.Save(s.db, jsonstore.Videos, videos); err != nil {
		return false, 0, err
	}
	return liked, likesCount, nil
}

// IsLiked reports whether userID currently likes videoID.
func (s *Store) IsLiked(userID, videoID string) (bool, error) {
	likes, err := jsonstore.Load[models.Like](s.db, jsonstore.Likes)
	if err != nil {
		return false, err
	}
	for _, l := range likes {
		if l.UserID == userID && l.VideoID == videoID {
			return true, nil
		}
	}
	return false, nil
}

// VideoIDsByUser returns the IDs of every video the user likes, in stored
// order. Used by the profile page.
func (s *Store) VideoIDsByUser(userID string) ([]string, error) {
	likes, err := jsonstore.Load[models.Like](s.db, jsonstore.Likes)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(likes))
	for _, l := range likes {
		if l.UserID == userID {
			ids = append(ids, l.VideoID)
		}
	}
	return ids, nil
}

// Count returns the number of likes across all videos.
func (s *Store) Count() (int, error) {
	likes, err := jsonstore.Load[models.Like](s.db, jsonstore.Likes)
	if err != nil {
		return 0, err
	}
	return len(likes), nil
}
