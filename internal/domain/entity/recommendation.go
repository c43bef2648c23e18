package entity

// GameRecommendation is a single game suggested by the model.
type GameRecommendation struct {
	Name        string   `json:"name" validate:"required"`
	Price       string   `json:"price" validate:"required"`        // e.g. "$19.99" or "Free to Play"
	Overview    string   `json:"overview" validate:"required"`     // 2-3 sentences
	Reason      string   `json:"reason" validate:"required"`       // why it fits this group
	PlayerCount string   `json:"player_count" validate:"required"` // e.g. "2-4 players"
	Tags        []string `json:"tags" validate:"required,min=1,dive,required"`
}

// RecommendationList is the envelope the model is asked to emit.
type RecommendationList struct {
	Recommendations []GameRecommendation `json:"recommendations" validate:"required,min=1,dive"`
}

// RecommendationRequest is the body of POST /api/recommendations.
// Empty lists are valid; absent or null lists and null elements are not.
// Elements are pointers so a JSON null stays distinguishable from "".
type RecommendationRequest struct {
	CommonGames  []*string `json:"common_games" validate:"required,dive,required"`
	SharedGenres []*string `json:"shared_genres" validate:"required,dive,required"`
	FriendNames  []*string `json:"friend_names" validate:"required,dive,required"`
}

// Games returns the owned games; call after validation.
func (r RecommendationRequest) Games() []string { return deref(r.CommonGames) }

func (r RecommendationRequest) Genres() []string { return deref(r.SharedGenres) }

func (r RecommendationRequest) Friends() []string { return deref(r.FriendNames) }

func deref(items []*string) []string {
	out := make([]string, 0, len(items))
	for _, s := range items {
		if s != nil {
			out = append(out, *s)
		}
	}
	return out
}

// RecommendationResponse is always returned with HTTP 200; callers inspect Success.
type RecommendationResponse struct {
	Recommendations []GameRecommendation `json:"recommendations"`
	Success         bool                 `json:"success"`
	Error           *string              `json:"error"`
}

// NewSuccessResponse wraps recs for the wire.
func NewSuccessResponse(recs []GameRecommendation) RecommendationResponse {
	if recs == nil {
		recs = []GameRecommendation{}
	}
	return RecommendationResponse{Recommendations: recs, Success: true}
}

// NewFailureResponse reports err as a domain-level failure.
func NewFailureResponse(err error) RecommendationResponse {
	msg := err.Error()
	return RecommendationResponse{
		Recommendations: []GameRecommendation{},
		Success:         false,
		Error:           &msg,
	}
}

type HealthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
