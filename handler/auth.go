package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/phbpx/hotel"
	"github.com/phbpx/hotel/auth"
)

var errCredentialsRequired = errors.New("username and password are required")

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	auth.Identity
	Token string `json:"token"`
}

type AuthHandler struct {
	users        hotel.UserService
	tokens       *auth.Tokens
	secureCookie bool
	log          Logger
}

func NewAuthHandler(users hotel.UserService, tokens *auth.Tokens, secureCookie bool, log Logger) *AuthHandler {
	return &AuthHandler{
		users:        users,
		tokens:       tokens,
		secureCookie: secureCookie,
		log:          log,
	}
}

// Register creates a regular account. Admin accounts are only created by
// seeding at startup.
func (ah AuthHandler) Register(rw http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var creds credentials
	if err := decode(rw, r, &creds); err != nil {
		ah.log.Errorw("Register", "error", err.Error())
		respondErr(ctx, rw, http.StatusBadRequest, err)
		return
	}

	creds.Username = strings.TrimSpace(creds.Username)
	if creds.Username == "" || creds.Password == "" {
		respondErr(ctx, rw, http.StatusBadRequest, errCredentialsRequired)
		return
	}

	hash, err := auth.HashPassword(creds.Password)
	if err != nil {
		ah.log.Errorw("Register", "error", err.Error())
		respondErr(ctx, rw, http.StatusInternalServerError, err)
		return
	}

	user := hotel.User{
		ID:           uuid.NewString(),
		Username:     creds.Username,
		PasswordHash: hash,
		Role:         hotel.RoleUser,
	}

	if err := ah.users.Create(ctx, user); err != nil {
		ah.log.Errorw("Register", "error", err.Error())
		switch {
		case errors.Is(err, hotel.ErrDuplicatedUsername):
			respondErr(ctx, rw, http.StatusConflict, err)
		default:
			respondErr(ctx, rw, http.StatusInternalServerError, err)
		}
		return
	}

	respond(ctx, rw, http.StatusCreated, user)
}

func (ah AuthHandler) Login(rw http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var creds credentials
	if err := decode(rw, r, &creds); err != nil {
		ah.log.Errorw("Login", "error", err.Error())
		respondErr(ctx, rw, http.StatusBadRequest, err)
		return
	}

	user, err := ah.users.GetByUsername(ctx, creds.Username)
	if err != nil {
		if !errors.Is(err, hotel.ErrUserNotFound) {
			ah.log.Errorw("Login", "error", err.Error())
			respondErr(ctx, rw, http.StatusInternalServerError, err)
			return
		}
		respondErr(ctx, rw, http.StatusUnauthorized, auth.ErrInvalidCredentials)
		return
	}

	if err := auth.CheckPassword(user.PasswordHash, creds.Password); err != nil {
		respondErr(ctx, rw, http.StatusUnauthorized, err)
		return
	}

	id := auth.Identity{UserID: user.ID, Username: user.Username, Role: user.Role}
	token, err := ah.tokens.Issue(id)
	if err != nil {
		ah.log.Errorw("Login", "error", err.Error())
		respondErr(ctx, rw, http.StatusInternalServerError, err)
		return
	}

	http.SetCookie(rw, &http.Cookie{
		Name:     tokenCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   ah.secureCookie,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(ah.tokens.TTL() / time.Second),
	})

	ah.log.Infow("Login", "username", user.Username, "role", user.Role)
	respond(ctx, rw, http.StatusOK, loginResponse{Identity: id, Token: token})
}

func (ah AuthHandler) Logout(rw http.ResponseWriter, r *http.Request) {
	http.SetCookie(rw, &http.Cookie{
		Name:     tokenCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   ah.secureCookie,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
	respond(r.Context(), rw, http.StatusNoContent, nil)
}

func (ah AuthHandler) Me(rw http.ResponseWriter, r *http.Request) {
	id, _ := auth.FromContext(r.Context())
	respond(r.Context(), rw, http.StatusOK, id)
}
