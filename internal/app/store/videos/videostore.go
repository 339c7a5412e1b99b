// Package videostore owns the videos collection, including the cascade
// that keeps dependent collections consistent when a video is deleted.
package videostore

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/geolearnhq/geolearn/internal/app/store/jsonstore"
	"github.com/geolearnhq/geolearn/internal/domain/models"
)

// ErrNotFound is returned when no video has the requested ID.
var ErrNotFound = errors.New("video not found")

// Sort orders accepted by List. Anything else falls back to SortRecent.
const (
	SortMostLiked  = "most_liked"
	SortMostViewed = "most_viewed"
	SortRecent     = "recently_uploaded"
)

// Store provides access to the videos collection.
type Store struct {
	db *jsonstore.DB
}

// New creates a videos Store backed by the given data directory.
func New(db *jsonstore.DB) *Store { return &Store{db: db} }

// List returns videos filtered by category ("" or "all" means no filter)
// and sorted by the requested order. Sorting is stable, so ties keep their
// stored relative order; a missing uploaded_at sorts as the oldest.
func (s *Store) List(category, sortBy string) ([]models.Video, error) {
	videos, err := jsonstore.Load[models.Video](s.db, jsonstore.Videos)
	if err != nil {
		return nil, err
	}

	if category != "" && category != "all" {
		filtered := make([]models.Video, 0, len(videos))
		for _, v := range videos {
			if v.Category == category {
				filtered = append(filtered, v)
			}
		}
		videos = filtered
	}

	switch sortBy {
	case SortMostLiked:
		sort.SliceStable(videos, func(i, j int) bool {
			return videos[i].LikesCount > videos[j].LikesCount
		})
	case SortMostViewed:
		sort.SliceStable(videos, func(i, j int) bool {
			return videos[i].Views > videos[j].Views
		})
	default: // SortRecent
		sort.SliceStable(videos, func(i, j int) bool {
			return videos[i].UploadedAt.After(videos[j].UploadedAt)
		})
	}
	return videos, nil
}

// Categories returns the distinct categories of the stored videos, sorted,
// with videos lacking a category counted under the default.
func (s *Store) Categories() ([]string, error) {
	videos, err := jsonstore.Load[models.Video](s.db, jsonstore.Videos)
	if err != nil {
		return nil, err
	}
	seen := map[string]struct{}{}
	for _, v := range videos {
		cat := v.Category
		if cat == "" {
			cat = models.DefaultCategory
		}
		seen[cat] = struct{}{}
	}
	cats := make([]string, 0, len(seen))
	for cat := range seen {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	return cats, nil
}

// GetByID returns the video with the given ID.
func (s *Store) GetByID(id string) (models.Video, error) {
	videos, err := jsonstore.Load[models.Video](s.db, jsonstore.Videos)
	if err != nil {
		return models.Video{}, err
	}
	for _, v := range videos {
		if v.ID == id {
			return v, nil
		}
	}
	return models.Video{}, ErrNotFound
}

// CreateInput carries the fields of a new video.
type CreateInput struct {
	Title        string
	Description  string
	Category     string
	VideoURL     string
	ThumbnailURL string
}

// Create appends a new video with a fresh ID, zero counters, and the
// current upload time.
func (s *Store) Create(in CreateInput) (models.Video, error) {
	videos, err := jsonstore.Load[models.Video](s.db, jsonstore.Videos)
	if err != nil {
		return models.Video{}, err
	}
	video := models.Video{
		ID:           uuid.NewString(),
		Title:        in.Title,
		Description:  in.Description,
		Category:     in.Category,
		VideoURL:     in.VideoURL,
		ThumbnailURL: in.ThumbnailURL,
		UploadedAt:   time.Now().UTC(),
		Views:        0,
		LikesCount:   0,
	}
	videos = append(videos, video)
	if err := jsonstore.Save(s.db, jsonstore.Videos, videos); err != nil {
		return models.Video{}, err
	}
	return video, nil
}

// Update edits the descriptive fields of a video in place. Counters and
// the upload time are not editable.
func (s *Store) Update(id string, in CreateInput) error {
	videos, err := jsonstore.Load[models.Video](s.db, jsonstore.Videos)
	if err != nil {
		return err
	}
	for i := range videos {
		if videos[i].ID != id {
			continue
		}
		videos[i].Title = in.Title
		videos[i].Description = in.Description
		videos[i].Category = in.Category
		videos[i].VideoURL = in.VideoURL
		videos[i].ThumbnailURL = in.ThumbnailURL
		return jsonstore.Save(s.db, jsonstore.Videos, videos)
	}
	return ErrNotFound
}

// Delete removes the video and cascades to every like, enrollment, and
// suggestion that references it. The four saves run sequentially with no
// rollback; a failure partway leaves the remaining collections untouched,
// which is an accepted failure mode of the flat-file design. Ads and
// donation comments never reference videos and are not involved.
func (s *Store) Delete(id string) error {
	videos, err := jsonstore.Load[models.Video](s.db, jsonstore.Videos)
	if err != nil {
		return err
	}
	kept := videos[:0]
	for _, v := range videos {
		if v.ID != id {
			kept = append(kept, v)
		}
	}
	if err := jsonstore.Save(s.db, jsonstore.Videos, kept); err != nil {
		return err
	}

	likes, err := jsonstore.Load[models.Like](s.db, jsonstore.Likes)
	if err != nil {
		return err
	}
	keptLikes := likes[:0]
	for _, l := range likes {
		if l.VideoID != id {
			keptLikes = append(keptLikes, l)
		}
	}
	if err := jsonstore.Save(s.db, jsonstore.Likes, keptLikes); err != nil {
		return err
	}

	enrollments, err := jsonstore.Load[models.Enrollment](s.db, jsonstore.Enrollments)
	if err != nil {
		return err
	}
	keptEnrollments := enrollments[:0]
	for _, e := range enrollments {
		if e.VideoID != id {
			keptEnrollments = append(keptEnrollments, e)
		}
	}
	if err := jsonstore.Save(s.db, jsonstore.Enrollments, keptEnrollments); err != nil {
		return err
	}

	suggestions, err := jsonstore.Load[models.Suggestion](s.db, jsonstore.Suggestions)
	if err != nil {
		return err
	}
	keptSuggestions := suggestions[:0]
	for _, sg := range suggestions {
		if sg.VideoID != id {
			keptSuggestions = append(keptSuggestions, sg)
		}
	}
	return jsonstore.Save(s.db, jsonstore.Suggestions, keptSuggestions)
}

// RecordView increments the view counter and returns the updated video.
// Views are counted per detail-page hit, not deduplicated per user; the
// inflation is a known characteristic carried over from the original.
func (s *Store) RecordView(id string) (models.Video, error) {
	videos, err := jsonstore.Load[models.Video](s.db, jsonstore.Videos)
	if err != nil {
		return models.Video{}, err
	}
	for i := range videos {
		if videos[i].ID != id {
			continue
		}
		videos[i].Views++
		if err := jsonstore.Save(s.db, jsonstore.Videos, videos); err != nil {
			return models.Video{}, err
		}
		return videos[i], nil
	}
	return models.Video{}, ErrNotFound
}

// ViewsByCategory sums view counts per category and returns parallel
// label/value slices with categories sorted by name.
func (s *Store) ViewsByCategory() (labels []string, data []int, err error) {
	videos, err := jsonstore.Load[models.Video](s.db, jsonstore.Videos)
	if err != nil {
		return nil, nil, err
	}

	totals := map[string]int{}
	for _, v := range videos {
		cat := v.Category
		if cat == "" {
			cat = models.DefaultCategory
		}
		totals[cat] += v.Views
	}

	labels = make([]string, 0, len(totals))
	for cat := range totals {
		labels = append(labels, cat)
	}
	sort.Strings(labels)

	data = make([]int, len(labels))
	for i, cat := range labels {
		data[i] = totals[cat]
	}
	return labels, data, nil
}

// TopLiked returns the titles and like counts of the n most liked videos,
// descending by count.
func (s *Store) TopLiked(n int) (labels []string, data []int, err error) {
	videos, err := jsonstore.Load[models.Video](s.db, jsonstore.Videos)
	if err != nil {
		return nil, nil, err
	}
	sort.SliceStable(videos, func(i, j int) bool {
		return videos[i].LikesCount > videos[j].LikesCount
	})
	if len(videos) > n {
		videos = videos[:n]
	}

	labels = make([]string, len(videos))
	data = make([]int, len(videos))
	for i, v := range videos {
		labels[i] = v.Title
		data[i] = v.LikesCount
	}
	return labels, data, nil
}
