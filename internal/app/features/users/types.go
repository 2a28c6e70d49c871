// internal/app/features/users/types.go
package users

import "github.com/dalemusser/redlight/internal/domain/models"

// createRequest is the body of POST /users. Role defaults to
// participant when absent.
type createRequest struct {
	Name  string `json:"name" validate:"required,max=100" label:"Name"`
	Email string `json:"email" validate:"required,email" label:"Email"`
	Role  string `json:"role" validate:"omitempty" label:"Role"`
	Age   *int   `json:"age" validate:"omitempty,gt=0" label:"Age"`
}

// userResponse is the JSON shape of a user.
type userResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	PhotoRef string `json:"photo_ref,omitempty"`
}

func toUserResponse(u models.User) userResponse {
	return userResponse{
		ID:       u.ID.Hex(),
		Name:     u.Name,
		Email:    u.Email,
		Role:     u.Role,
		PhotoRef: u.PhotoRef,
	}
}

func toUserResponses(us []models.User) []userResponse {
	out := make([]userResponse, 0, len(us))
	for _, u := range us {
		out = append(out, toUserResponse(u))
	}
	return out
}
