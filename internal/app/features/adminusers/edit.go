package adminusers

import (
	"net/http"

	"github.com/encodersih/alumni-connect/internal/app/system/inputval"
	"github.com/encodersih/alumni-connect/internal/app/system/respond"
	"github.com/encodersih/alumni-connect/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HandleSetActive handles PUT /users {user_id, is_active}.
func (h *Handler) HandleSetActive(w http.ResponseWriter, r *http.Request) {
	var in setActiveInput
	if err := respond.Decode(w, r, &in); err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	if err := inputval.Validate(in).Err(); err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	id, _ := primitive.ObjectIDFromHex(in.UserID)

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "set user active")
	defer cancel()

	u, err := h.Users.SetActive(ctx, id, *in.IsActive)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	h.Audit.UserActiveChanged(r.Context(), r, u)
	msg := "User deactivated successfully"
	if u.IsActive {
		msg = "User activated successfully"
	}
	respond.JSON(w, http.StatusOK, userResponse{Success: true, User: u, Message: msg})
}
