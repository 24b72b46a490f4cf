package handlers

import (
	"net/http"

	"github.com/genads/genads-api/pkg/middleware"
	"github.com/genads/genads-api/pkg/store"
	"github.com/genads/genads-api/pkg/utils"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type SignUpRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignUp registers a new user. The duplicate-email guard is a lookup before
// the insert; two concurrent signups with the same email can both pass it.
func (h *Handlers) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Debugf("SignUp: invalid request body: %v", err)
		utils.ResponseWithError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if h.users == nil {
		utils.ResponseWithError(c, http.StatusInternalServerError, "Database not available", nil)
		return
	}

	existing, err := h.users.FindUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		log.Errorf("SignUp: error finding user by email %q: %v", req.Email, err)
		utils.ResponseWithError(c, http.StatusInternalServerError, "Failed to check existing user", nil)
		return
	}
	if existing != nil {
		utils.ResponseWithError(c, http.StatusBadRequest, "Email already registered", nil)
		return
	}

	user := &store.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: h.passwords.Hash(req.Password),
	}
	id, err := h.users.InsertUser(c.Request.Context(), user)
	if err != nil {
		log.Errorf("SignUp: error creating user: %v", err)
		utils.ResponseWithError(c, http.StatusInternalServerError, "Failed to create user", nil)
		return
	}

	utils.ResponseWithSuccess(c, http.StatusCreated, "User created successfully", gin.H{
		"id":    id,
		"name":  user.Name,
		"email": user.Email,
	})
}

// SignIn checks credentials and returns the user summary plus a JWT. Unknown
// email and wrong password produce the identical response.
func (h *Handlers) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Debugf("SignIn: invalid request body: %v", err)
		utils.ResponseWithError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if h.users == nil {
		utils.ResponseWithError(c, http.StatusInternalServerError, "Database not available", nil)
		return
	}

	user, err := h.users.FindUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		log.Errorf("SignIn: error finding user by email: %v", err)
		utils.ResponseWithError(c, http.StatusInternalServerError, "Signin failed", nil)
		return
	}
	if user == nil || !h.passwords.Verify(req.Password, user.PasswordHash) {
		utils.ResponseWithError(c, http.StatusUnauthorized, "Invalid credentials", nil)
		return
	}

	token, err := h.tokens.Generate(user.ID.Hex(), user.Email, user.Name)
	if err != nil {
		// The signin itself succeeded; hand back the summary without a token.
		log.Errorf("SignIn: failed to generate token for %s: %v", user.Email, err)
	}

	log.Infof("User %s signed in", user.Email)
	utils.ResponseWithSuccess(c, http.StatusOK, "signed_in", gin.H{
		"email":      user.Email,
		"name":       user.Name,
		"avatar_url": user.AvatarURL,
		"token":      token,
	})
}

// Me returns the profile of the authenticated user.
func (h *Handlers) Me(c *gin.Context) {
	claims, exists := middleware.GetUserClaimsFromContext(c)
	if !exists {
		log.Error("Me: user claims not found in context")
		utils.ResponseWithError(c, http.StatusInternalServerError, "Authentication error: user claims not found", nil)
		return
	}

	avatarURL := ""
	if h.users != nil {
		user, err := h.users.FindUserByEmail(c.Request.Context(), claims.Email)
		if err != nil {
			log.Errorf("Me: error loading user %s: %v", claims.Email, err)
		} else if user != nil {
			avatarURL = user.AvatarURL
		}
	}

	utils.ResponseWithSuccess(c, http.StatusOK, "Profile", gin.H{
		"user_id":    claims.UserID,
		"email":      claims.Email,
		"name":       claims.Name,
		"avatar_url": avatarURL,
	})
}
