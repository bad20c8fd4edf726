package devserver

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/sitrack/internal/devserver/auth"
	"github.com/dmitrijs2005/sitrack/internal/devserver/users"
	"github.com/dmitrijs2005/sitrack/internal/logging"
	"github.com/gin-gonic/gin"
)

type accountHandlers struct {
	users  *users.Service
	tokens auth.TokenConfig
	log    logging.Logger
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *accountHandlers) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Username dan password wajib diisi")
		return
	}

	u, err := h.users.Authenticate(req.Username, req.Password)
	if err != nil {
		h.log.Info(c.Request.Context(), "login rejected", "username", req.Username)
		fail(c, http.StatusUnauthorized, "Username atau password salah")
		return
	}

	token, err := auth.CreateToken(u.Username, u.Role, h.tokens)
	if err != nil {
		h.log.Error(c.Request.Context(), "create token", "error", err)
		fail(c, http.StatusInternalServerError, "Gagal membuat token")
		return
	}
	respond(c, http.StatusOK, "Login berhasil", gin.H{"token": token, "username": u.Username, "role": u.Role})
}

// logout only acknowledges; tokens are stateless and expire on their own.
func (h *accountHandlers) logout(c *gin.Context) {
	respond(c, http.StatusOK, "Logout berhasil", nil)
}

func (h *accountHandlers) listUsers(c *gin.Context) {
	respond(c, http.StatusOK, "Data ditemukan", h.users.List())
}

type createUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (h *accountHandlers) createUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Payload tidak valid")
		return
	}

	u, err := h.users.Create(req.Username, req.Password, req.Role)
	switch {
	case errors.Is(err, users.ErrAlreadyExists):
		fail(c, http.StatusConflict, "Username sudah digunakan")
		return
	case errors.Is(err, users.ErrValidation):
		fail(c, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		fail(c, http.StatusInternalServerError, "Gagal membuat user")
		return
	}
	respond(c, http.StatusCreated, "User berhasil ditambahkan", u)
}
