// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"timetable_backend/internals/configs"
	d "timetable_backend/internals/features/users/auth/dto"
	m "timetable_backend/internals/features/users/user/model"
	helper "timetable_backend/internals/helpers"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

/* =========================
   Controller & Constructor
   ========================= */

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *AuthController {
	return &AuthController{DB: db, Validate: v}
}

func signToken(u *m.UserModel, secret string, ttl time.Duration, kind string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  u.UserID.String(),
		"role": u.UserRole,
		"typ":  kind,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func issueTokens(u *m.UserModel) (d.TokenResponse, error) {
	access, err := signToken(u, configs.JWTSecret, accessTokenTTL, "access")
	if err != nil {
		return d.TokenResponse{}, err
	}
	refresh, err := signToken(u, configs.JWTRefreshSecret, refreshTokenTTL, "refresh")
	if err != nil {
		return d.TokenResponse{}, err
	}
	return d.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         d.FromModel(u),
	}, nil
}

/* =========================
   Register
   ========================= */

func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var req d.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	// admin-gated, except the very first account which bootstraps as admin
	var userCount int64
	if err := ctl.DB.Model(&m.UserModel{}).Count(&userCount).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	callerRole, _ := c.Locals("user_role").(string)
	if userCount > 0 && callerRole != m.RoleAdmin {
		return helper.JsonError(c, http.StatusForbidden, "only admins may register accounts")
	}

	var count int64
	if err := ctl.DB.Model(&m.UserModel{}).Where("user_email = ?", email).Count(&count).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	if count > 0 {
		return helper.JsonError(c, http.StatusConflict, "email already registered")
	}

	role := req.Role
	if role == "" {
		role = m.RoleViewer
	}
	if userCount == 0 {
		role = m.RoleAdmin
	}
	user := m.UserModel{
		UserName:  strings.TrimSpace(req.UserName),
		UserEmail: email,
		UserRole:  role,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&user).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Account created", d.FromModel(&user))
}

/* =========================
   Login
   ========================= */

func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req d.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user m.UserModel
	if err := ctl.DB.First(&user, "user_email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusUnauthorized, "invalid credentials")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	if !user.CheckPassword(req.Password) {
		return helper.JsonError(c, http.StatusUnauthorized, "invalid credentials")
	}

	tokens, err := issueTokens(&user)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Login success", tokens)
}

/* =========================
   Refresh
   ========================= */

func (ctl *AuthController) Refresh(c *fiber.Ctx) error {
	var req d.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(req.RefreshToken, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(configs.JWTRefreshSecret), nil
	}); err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, "invalid refresh token")
	}
	if typ, _ := claims["typ"].(string); typ != "refresh" {
		return helper.JsonError(c, http.StatusUnauthorized, "not a refresh token")
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return helper.JsonError(c, http.StatusUnauthorized, "invalid refresh token")
	}

	var user m.UserModel
	if err := ctl.DB.First(&user, "user_id = ?", sub).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusUnauthorized, "user no longer exists")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	tokens, err := issueTokens(&user)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Token refreshed", tokens)
}

/* =========================
   Me
   ========================= */

func (ctl *AuthController) Me(c *fiber.Ctx) error {
	sub, _ := c.Locals("user_id").(string)
	if sub == "" {
		return helper.JsonError(c, http.StatusUnauthorized, "unauthorized")
	}

	var user m.UserModel
	if err := ctl.DB.First(&user, "user_id = ?", sub).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "user not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", d.FromModel(&user))
}
