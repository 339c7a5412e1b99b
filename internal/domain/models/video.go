package models

import "time"

// Video is a course video in the library.
//
// LikesCount is denormalized from the likes collection and is recomputed
// from scratch on every like/unlike so drift self-corrects.
type Video struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	VideoURL     string    `json:"video_url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	UploadedAt   time.Time `json:"uploaded_at"`
	Views        int       `json:"views"`
	LikesCount   int       `json:"likes_count"`
}

// DefaultCategory is used when a stored video has no category.
const DefaultCategory = "Uncategorized"

// Categories is the fixed list offered on the admin add/edit video forms.
var Categories = []string{
	"Cartography",
	"GIS",
	"Remote Sensing",
	"Survey",
	"Photogrammetry",
	"Web Development",
	"Community Contributions",
}
