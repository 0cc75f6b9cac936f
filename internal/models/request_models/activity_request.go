package request_models

// LikeActivityRequest uses a pointer so that an explicit false passes the
// required check.
type LikeActivityRequest struct {
	Liked *bool `json:"liked" binding:"required"`
}
