package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gofrs/uuid"
	"github.com/gorilla/mux"

	"github.com/leadbook/leadbook/internal/database"
	"github.com/leadbook/leadbook/pkg/model"
	"github.com/leadbook/leadbook/pkg/util/cors"
)

// SetupRoutes initializes user routes.
func SetupRoutes(r *mux.Router, svc *Service) {
	s := r.PathPrefix("/api").Subrouter()
	s.Use(mux.CORSMethodMiddleware(s))
	s.Use(cors.Middleware)

	h := userHandler{svc}
	s.HandleFunc("/users", h.HandleUsers).Methods(http.MethodOptions, http.MethodGet, http.MethodPost)
	s.HandleFunc("/users/{user_id}", h.HandleUser).Methods(http.MethodOptions, http.MethodGet, http.MethodPatch, http.MethodDelete)
}

type userHandler struct {
	svc *Service
}

func (h userHandler) HandleUsers(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.ListUsers(w, r)
	case http.MethodPost:
		h.CreateUser(w, r)
	default:
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}
}

func (h userHandler) HandleUser(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.GetUser(w, r)
	case http.MethodPatch:
		h.UpdateUser(w, r)
	case http.MethodDelete:
		h.DeleteUser(w, r)
	default:
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}
}

func (h userHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), database.DefaultTimeout)
	defer cancel()

	users, err := h.svc.List(ctx)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"users": users})
}

func (h userHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var input map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, model.Err(model.KindInvalidArgument))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), database.DefaultTimeout)
	defer cancel()

	result, err := h.svc.Create(ctx, input)
	if err != nil {
		writeError(w, err)
		return
	}

	body := map[string]interface{}{"newUser": result.User}
	if result.Warning != nil {
		body["warning"] = result.Warning
	}
	writeJSON(w, http.StatusCreated, body)
}

func (h userHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), database.DefaultTimeout)
	defer cancel()

	u, err := h.svc.Get(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"user": u})
}

func (h userHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var input map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, model.Err(model.KindInvalidArgument))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), database.DefaultTimeout)
	defer cancel()

	u, err := h.svc.Update(ctx, id, input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"updatedUser": u})
}

func (h userHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), database.DefaultTimeout)
	defer cancel()

	if err := h.svc.Delete(ctx, id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"msg": "User deleted!"})
}

// parseID reads the user_id path variable. A token that is not an integer
// is a caller error, reported as KindInvalidArgument; this policy is
// applied uniformly to get, update and delete.
func parseID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(mux.Vars(r)["user_id"])
	if err != nil {
		return 0, model.Err(model.KindInvalidArgument)
	}
	return id, nil
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	b, err := json.Marshal(body)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(b)))
	w.WriteHeader(status)
	w.Write(b)
}

// writeError translates a classified error into a status and {msg} body.
// Unclassified errors are logged under a generated reference id and
// reported as a bare internal error.
func writeError(w http.ResponseWriter, err error) {
	kind := model.KindInternalError
	msg := kind.DefaultMessage()

	var reqErr *model.Error
	if errors.As(err, &reqErr) {
		kind = reqErr.Kind
		msg = reqErr.Msg
	}

	if kind == model.KindInternalError {
		errID, _ := uuid.NewV4()
		log.Printf("internal error %s: %v\n", errID, err)
		msg = kind.DefaultMessage()
	}

	writeJSON(w, kind.StatusCode(), map[string]string{"msg": msg})
}
