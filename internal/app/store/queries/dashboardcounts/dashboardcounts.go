// Package dashboardcounts computes the headline totals for the admin
// dashboard in one pass over the collections.
package dashboardcounts

import (
	"time"

	"github.com/geolearnhq/geolearn/internal/app/store/jsonstore"
	"github.com/geolearnhq/geolearn/internal/domain/models"
)

// Counts holds the dashboard totals.
type Counts struct {
	Users           int
	Videos          int
	Enrollments     int
	UniqueEnrollees int
	Likes           int
	NewUsers7Days   int
	NewVideos7Days  int
}

// Fetch loads the collections and tallies the dashboard numbers. The
// seven-day windows are measured from now.
func Fetch(db *jsonstore.DB) (Counts, error) {
	var c Counts

	users, err := jsonstore.Load[models.User](db, jsonstore.Users)
	if err != nil {
		return c, err
	}
	videos, err := jsonstore.Load[models.Video](db, jsonstore.Videos)
	if err != nil {
		return c, err
	}
	enrollments, err := jsonstore.Load[models.Enrollment](db, jsonstore.Enrollments)
	if err != nil {
		return c, err
	}
	likes, err := jsonstore.Load[models.Like](db, jsonstore.Likes)
	if err != nil {
		return c, err
	}

	c.Users = len(users)
	c.Videos = len(videos)
	c.Enrollments = len(enrollments)
	c.Likes = len(likes)

	enrollees := map[string]struct{}{}
	for _, e := range enrollments {
		enrollees[e.UserID] = struct{}{}
	}
	c.UniqueEnrollees = len(enrollees)

	weekAgo := time.Now().UTC().AddDate(0, 0, -7)
	for _, u := range users {
		if u.CreatedAt.After(weekAgo) {
			c.NewUsers7Days++
		}
	}
	for _, v := range videos {
		if v.UploadedAt.After(weekAgo) {
			c.NewVideos7Days++
		}
	}
	return c, nil
}
