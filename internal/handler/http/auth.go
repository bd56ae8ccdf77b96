package http

import (
	"encoding/json"
	"net/http"

	"github.com/mlukin/go-expense-tracker/internal/logger"
	"github.com/mlukin/go-expense-tracker/internal/utils"
	"github.com/mlukin/go-expense-tracker/models"
)

// register handles POST /api/auth/register. A successful registration
// answers 201 Created with the new account and a freshly minted token.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, request)
	if err != nil {
		log.Err(err).Msg("user registration failed")
		utils.WriteJSONError(w, messageFromError(err), statusFromError(err))
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.AuthResponse{
		ID:    registeredUser.UserID,
		Name:  registeredUser.Name,
		Email: registeredUser.Email,
		Token: token.String(),
	}, http.StatusCreated)
}

// login handles POST /api/auth/login. Credential failures answer 401 with a
// message that does not reveal whether the email is registered.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		log.Err(err).Msg("user login failed")
		utils.WriteJSONError(w, messageFromError(err), statusFromError(err))
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.AuthResponse{
		ID:    foundUser.UserID,
		Name:  foundUser.Name,
		Email: foundUser.Email,
		Token: token.String(),
	}, http.StatusOK)
}

// updateProfile handles PUT /api/auth/update. Only the caller's own account
// can be changed; the response carries a fresh token while previously issued
// tokens remain valid until their own expiry.
func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var request models.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updatedUser, err := h.services.AuthService.UpdateProfile(ctx, userID, request)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("profile update failed")
		utils.WriteJSONError(w, messageFromError(err), statusFromError(err))
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, updatedUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.AuthResponse{
		ID:    updatedUser.UserID,
		Name:  updatedUser.Name,
		Email: updatedUser.Email,
		Token: token.String(),
	}, http.StatusOK)
}
