package adminusers

import (
	"net/http"

	"github.com/encodersih/alumni-connect/internal/app/system/inputval"
	"github.com/encodersih/alumni-connect/internal/app/system/respond"
	"github.com/encodersih/alumni-connect/internal/app/system/timeouts"
	"github.com/encodersih/alumni-connect/internal/domain/models"
)

// HandleCreate handles POST /users. New accounts start active with an
// incomplete profile.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in createUserInput
	if err := respond.Decode(w, r, &in); err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	if err := inputval.Validate(in).Err(); err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "create user")
	defer cancel()

	u, err := h.Users.Create(ctx, models.User{
		Email:     in.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		UserType:  in.UserType,
	})
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	h.Audit.UserCreated(r.Context(), r, u)
	respond.JSON(w, http.StatusCreated, userResponse{
		Success: true,
		User:    u,
		Message: "User created successfully",
	})
}
