package response

import (
	"time"

	"aqualux-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ServiceResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       int32     `json:"price"`
	DurationMin int32     `json:"durationMin"`
	Features    []string  `json:"features"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromServiceView(view *queries.ServiceView) *ServiceResponse {
	resp := &ServiceResponse{}
	_ = copier.Copy(resp, view)
	return resp
}

func FromServiceViews(views []*queries.ServiceView) []*ServiceResponse {
	resp := make([]*ServiceResponse, len(views))
	for i, v := range views {
		resp[i] = FromServiceView(v)
	}
	return resp
}
