package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/casaflow/property-service/internal/utils"
)

// decodeAndRespond parses the JSON body into dst, answering 400 itself
// on failure. Returns false when the caller should bail out.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Malformed JSON body", nil, err)
		return false
	}
	return true
}

// pathID extracts the {id} mux var, answering 400 itself on failure.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := mux.Vars(r)["id"]
	id, err := uuid.Parse(raw)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid id in path", nil, err)
		return uuid.Nil, false
	}
	return id, true
}
