package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"student-directory/middleware"
	"student-directory/models"
	"student-directory/registry"

	"github.com/gorilla/mux"
)

type GroupHandler struct {
	groups *registry.GroupRegistry
}

func NewGroupHandler(groups *registry.GroupRegistry) *GroupHandler {
	return &GroupHandler{groups: groups}
}

func (h *GroupHandler) GetGroups(w http.ResponseWriter, r *http.Request) {
	groups := h.groups.List()
	log.Printf("📋 Returning %d groups", len(groups))
	writeJSON(w, http.StatusOK, groups)
}

func (h *GroupHandler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("❌ Error reading request body: %v", err)
		writeError(w, http.StatusBadRequest, "Cannot read request body")
		return
	}

	var createReq models.CreateGroupRequest
	if err := json.Unmarshal(body, &createReq); err != nil {
		log.Printf("❌ Error decoding JSON: %v", err)
		writeError(w, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	log.Printf("➕ [%s] Creating group: Name='%s', Members=%q",
		middleware.GetRequestID(r.Context()), createReq.GroupName, createReq.Members)

	group, err := h.groups.Create(createReq.GroupName, createReq.Members)
	if err != nil {
		if errors.Is(err, registry.ErrDuplicateGroup) {
			log.Printf("❌ Group '%s' with the same members already exists", createReq.GroupName)
			// 404 rather than 409 is what existing clients expect.
			writeError(w, http.StatusNotFound, "Group already exists")
			return
		}
		log.Printf("❌ Error creating group: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	log.Printf("✅ Group created successfully with ID: %d", group.ID)
	writeJSON(w, http.StatusOK, group)
}

func (h *GroupHandler) DeleteGroup(w http.ResponseWriter, r *http.Request) {
	id := groupID(r)
	log.Printf("🗑️ [%s] Deleting group with ID: %d", middleware.GetRequestID(r.Context()), id)

	if err := h.groups.Delete(id); err != nil {
		if errors.Is(err, registry.ErrGroupNotFound) {
			log.Printf("❌ Group with ID %d not found", id)
			writeError(w, http.StatusNotFound, "Group not found")
			return
		}
		log.Printf("❌ Error deleting group: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	log.Printf("✅ Group %d deleted", id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *GroupHandler) GetGroup(w http.ResponseWriter, r *http.Request) {
	id := groupID(r)

	group, err := h.groups.GetExpanded(id)
	if err != nil {
		if errors.Is(err, registry.ErrGroupNotFound) {
			log.Printf("❌ Group with ID %d not found", id)
			// Plain text on purpose: this route never answered with JSON errors.
			writeText(w, http.StatusNotFound, "Group not found")
			return
		}
		log.Printf("❌ Error fetching group: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, group)
}

// groupID parses the {id} route variable. Ids that are not integers map
// to -1, which never matches an allocated group.
func groupID(r *http.Request) int {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		log.Printf("⚠️ Non-numeric group ID %q", mux.Vars(r)["id"])
		return -1
	}
	return id
}
