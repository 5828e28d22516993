package models

// UploadResponse describes a stored media object. URL is what gets saved on
// news articles, banners and avatars.
type UploadResponse struct {
	Key         string `json:"key"`
	URL         string `json:"url"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}
