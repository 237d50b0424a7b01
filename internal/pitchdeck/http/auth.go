package http

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/aussiebroadwan/pitchdeck/internal/pitchdeck/service"
	"github.com/aussiebroadwan/pitchdeck/pkg/httpx"
	"github.com/aussiebroadwan/pitchdeck/pkg/pitchsdk"
	"github.com/aussiebroadwan/pitchdeck/pkg/slogx"
)

const msgAccountCreated = "Account created successfully! You are now logged in."

type AuthHandler struct {
	AuthService  *service.AuthService
	TokenService *service.TokenService
	ExposeStack  bool
}

// HandleSignup registers a founder or community account.
//
//	@Summary		Sign up
//	@Description	Creates an account and returns a session token. Role defaults to founder.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		pitchsdk.SignupRequest						true	"Account details"
//	@Success		201		{object}	pitchsdk.Response[pitchsdk.AuthData]	"Account created"
//	@Failure		400		{object}	pitchsdk.Response[any]					"Validation failed"
//	@Failure		409		{object}	pitchsdk.Response[any]					"Email already registered"
//	@Failure		429		{object}	pitchsdk.Response[any]					"Rate limited"
//	@Router			/auth/signup [post].
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var in service.SignupInput
	if !decodeBody(w, r, &in) {
		return
	}

	sess, err := h.AuthService.Signup(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err, h.ExposeStack)
		return
	}
	httpx.WriteSuccess(w, http.StatusCreated, msgAccountCreated, toAuthData(sess.Account, &sess.Token))
}

// HandleSignupInvestor registers an investor account.
//
//	@Summary		Sign up as investor
//	@Description	Creates an investor account with optional investment preferences.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		pitchsdk.InvestorSignupRequest			true	"Investor details"
//	@Success		201		{object}	pitchsdk.Response[pitchsdk.AuthData]	"Account created"
//	@Failure		400		{object}	pitchsdk.Response[any]					"Validation failed"
//	@Failure		409		{object}	pitchsdk.Response[any]					"Email already registered"
//	@Router			/auth/signup/investor [post].
func (h *AuthHandler) HandleSignupInvestor(w http.ResponseWriter, r *http.Request) {
	var in service.InvestorSignupInput
	if !decodeBody(w, r, &in) {
		return
	}

	sess, err := h.AuthService.SignupInvestor(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err, h.ExposeStack)
		return
	}
	httpx.WriteSuccess(w, http.StatusCreated, msgAccountCreated, toAuthData(sess.Account, &sess.Token))
}

// HandleLogin authenticates with email and password.
//
//	@Summary		Log in
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		pitchsdk.LoginRequest					true	"Credentials"
//	@Success		200		{object}	pitchsdk.Response[pitchsdk.AuthData]	"Logged in"
//	@Failure		400		{object}	pitchsdk.Response[any]					"Validation failed"
//	@Failure		401		{object}	pitchsdk.Response[any]					"Invalid email or password"
//	@Router			/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var in service.LoginInput
	if !decodeBody(w, r, &in) {
		return
	}

	sess, err := h.AuthService.Login(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err, h.ExposeStack)
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, "Login successful", toAuthData(sess.Account, &sess.Token))
}

// HandleMe returns the authenticated user.
//
//	@Summary		Current user
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	pitchsdk.Response[pitchsdk.MeData]	"Current user"
//	@Failure		401	{object}	pitchsdk.Response[any]				"Missing, invalid or revoked token"
//	@Failure		404	{object}	pitchsdk.Response[any]				"User no longer exists"
//	@Router			/auth/me [get].
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	acc, err := h.AuthService.Me(r.Context(), httpx.UserIDFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, r, err, h.ExposeStack)
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, "", pitchsdk.MeData{User: toUser(acc)})
}

// HandleUpdateProfile applies a partial profile update.
//
//	@Summary		Update profile
//	@Description	Only the fields present in the body change. When the role changes a new token is returned in data.token.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		pitchsdk.UpdateProfileRequest			true	"Fields to change"
//	@Success		200		{object}	pitchsdk.Response[pitchsdk.AuthData]	"Updated user"
//	@Failure		400		{object}	pitchsdk.Response[any]					"Validation failed"
//	@Failure		401		{object}	pitchsdk.Response[any]					"Missing, invalid or revoked token"
//	@Router			/auth/profile [put].
func (h *AuthHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var in service.ProfileInput
	if !decodeBody(w, r, &in) {
		return
	}

	claims, _ := httpx.ClaimsFromContext(r.Context())
	res, err := h.AuthService.UpdateProfile(r.Context(), claims, in)
	if err != nil {
		writeServiceError(w, r, err, h.ExposeStack)
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, "Profile updated successfully", toAuthData(res.Account, res.Token))
}

// HandleLogout revokes the presented token, if any. It always succeeds.
//
//	@Summary		Log out
//	@Description	Revokes the bearer token when one is presented. The client must also discard it.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	pitchsdk.Response[any]	"Logged out"
//	@Router			/auth/logout [post].
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if raw := httpx.BearerToken(r); raw != "" {
		err := h.TokenService.Revoke(r.Context(), raw)
		if err != nil && !errors.Is(err, service.ErrInvalidToken) {
			slogx.FromContext(r.Context()).Warn("token revocation failed", "err", err)
		}
	}
	httpx.WriteSuccess(w, http.StatusOK, "Logout successful. Please remove the token from client-side storage.", nil)
}

// OAuthHandler drives the Google sign-in redirect flow.
type OAuthHandler struct {
	OAuthService *service.OAuthService
	FrontendURL  string
}

// HandleBegin redirects to the Google consent page.
//
//	@Summary		Sign in with Google
//	@Tags			Auth
//	@Success		302
//	@Failure		503	{object}	pitchsdk.Response[any]	"Google OAuth is not configured"
//	@Router			/auth/google [get].
func (h *OAuthHandler) HandleBegin(w http.ResponseWriter, r *http.Request) {
	if !h.OAuthService.Enabled() {
		httpx.WriteError(w, http.StatusServiceUnavailable, "Google OAuth is not configured on this server")
		return
	}

	target, err := h.OAuthService.Begin(r.Context())
	if err != nil {
		slogx.FromContext(r.Context()).Error("oauth begin failed", "err", err)
		h.redirect(w, r, "/auth/error", nil)
		return
	}
	httpx.NoCache(w)
	http.Redirect(w, r, target, http.StatusFound)
}

// HandleCallback completes the Google round trip and hands the token to the
// frontend.
//
//	@Summary		Google sign-in callback
//	@Tags			Auth
//	@Param			state	query	string	true	"State issued by /auth/google"
//	@Param			code	query	string	true	"Authorization code"
//	@Success		302
//	@Failure		503	{object}	pitchsdk.Response[any]	"Google OAuth is not configured"
//	@Router			/auth/google/callback [get].
func (h *OAuthHandler) HandleCallback(w http.ResponseWriter, r *http.Request) {
	if !h.OAuthService.Enabled() {
		httpx.WriteError(w, http.StatusServiceUnavailable, "Google OAuth is not configured on this server")
		return
	}

	log := slogx.FromContext(r.Context())
	q := r.URL.Query()

	if e := q.Get("error"); e != "" {
		log.Info("google sign-in declined", "error", e)
		h.redirect(w, r, "/auth/error", nil)
		return
	}

	sess, err := h.OAuthService.Complete(r.Context(), q.Get("state"), q.Get("code"))
	if err != nil {
		log.Warn("google sign-in failed", "err", err)
		h.redirect(w, r, "/auth/error", nil)
		return
	}

	h.redirect(w, r, "/auth/callback", url.Values{"token": {sess.Token.Token}})
}

// HandleError is where failed sign-ins land when no frontend is configured.
//
//	@Summary		Sign-in failure
//	@Tags			Auth
//	@Produce		json
//	@Failure		400	{object}	pitchsdk.Response[any]	"Authentication failed"
//	@Router			/auth/error [get].
func (h *OAuthHandler) HandleError(w http.ResponseWriter, r *http.Request) {
	httpx.WriteError(w, http.StatusBadRequest, "Authentication failed. Please try again.")
}

func (h *OAuthHandler) redirect(w http.ResponseWriter, r *http.Request, path string, q url.Values) {
	target := strings.TrimSuffix(h.FrontendURL, "/") + path
	if len(q) > 0 {
		target += "?" + q.Encode()
	}
	httpx.NoCache(w)
	http.Redirect(w, r, target, http.StatusFound)
}
