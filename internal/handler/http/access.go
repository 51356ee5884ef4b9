package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/learnhub-center/backoffice/internal/domain/access"
	"github.com/learnhub-center/backoffice/internal/handler/http/response"
)

type AccessHandler interface {
	MyPermissions(w http.ResponseWriter, r *http.Request)
	LookupCapability(w http.ResponseWriter, r *http.Request)
}

type AccessHandlerImpl struct{}

func NewAccessHandler() AccessHandler {
	return &AccessHandlerImpl{}
}

type MyPermissionsResponse struct {
	StaffID      string                      `json:"staff_id"`
	Name         string                      `json:"name"`
	Role         access.Role                 `json:"role"`
	Menu         []access.Module             `json:"menu"`
	Capabilities []access.CapabilityResponse `json:"capabilities"`
}

type CapabilityLookupResponse struct {
	Role       access.Role               `json:"role"`
	Capability access.CapabilityResponse `json:"capability"`
	Action     access.Action             `json:"action,omitempty"`
	Allowed    *bool                     `json:"allowed,omitempty"`
}

func actorFrom(r *http.Request) (access.Actor, error) {
	actor, ok := access.ActorFrom(r.Context())
	if !ok {
		return access.Actor{}, access.ErrActorMissing
	}
	return actor, nil
}

// MyPermissions implements AccessHandler.
func (h *AccessHandlerImpl) MyPermissions(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, MyPermissionsResponse{
		StaffID:      actor.StaffID,
		Name:         actor.Name,
		Role:         actor.Role,
		Menu:         access.VisibleMenuItems(actor.Role),
		Capabilities: access.Capabilities(actor.Role),
	})
}

// LookupCapability implements AccessHandler. ?action= additionally reports
// whether that action is allowed.
func (h *AccessHandlerImpl) LookupCapability(w http.ResponseWriter, r *http.Request) {
	role := access.Role(chi.URLParam(r, "role"))
	if !role.Valid() {
		response.HandleError(w, access.ErrUnknownRole)
		return
	}
	module := access.Module(chi.URLParam(r, "module"))
	if !module.Valid() {
		response.HandleError(w, access.ErrUnknownModule)
		return
	}

	resp := CapabilityLookupResponse{
		Role:       role,
		Capability: access.Lookup(role, module).Response(module),
	}

	if raw := r.URL.Query().Get("action"); raw != "" {
		action := access.Action(raw)
		if !action.Valid() {
			response.HandleError(w, access.ErrUnknownAction)
			return
		}
		allowed := access.HasPermission(role, module, action)
		resp.Action = action
		resp.Allowed = &allowed
	}

	response.Success(w, resp)
}
