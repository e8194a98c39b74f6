package handlers

import (
	"net/http"

	"fintrack-server/src/util"
)

// Me returns the profile of the authenticated user.
func Me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}
		util.WriteJSON(w, http.StatusOK, user)
	}
}
