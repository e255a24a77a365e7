// ════════════════════════════════════════════════════════════
// Path: controllers/ecommerce/auth_controller/google_callback.go
// Google OAuth Callback Handler
// ════════════════════════════════════════════════════════════

package auth_controller

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/digilinkbd/BestWareHub-sub002/config"
	"github.com/digilinkbd/BestWareHub-sub002/utils"
	"github.com/gin-gonic/gin"
)

// googleIDClaims is what we read out of the verified Google ID token.
type googleIDClaims struct {
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// GoogleCallback godoc
// @Summary Google OAuth callback
// @Description Handles the callback from Google. Verifies the state token, exchanges the authorization code, verifies the ID token, creates or updates the customer record, issues a session cookie and redirects back to the storefront.
// @Tags Auth - Google OAuth
// @Produce json
// @Success 307 "Redirect to storefront after successful login"
// @Failure 400 {object} models.ApiResponse "Invalid state or missing authorization code"
// @Failure 401 {object} models.ApiResponse "Token exchange or verification failure"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /auth/google/callback [get]
func GoogleCallback(c *gin.Context) {
	state := c.Query("state")
	savedState, err := c.Cookie("oauth_state")
	if err != nil || state != savedState {
		log.Printf("❌ OAuth state mismatch")
		redirectToFrontendWithError(c, "Invalid state token")
		return
	}

	// Clear state cookie
	c.SetCookie("oauth_state", "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		log.Printf("❌ No authorization code")
		redirectToFrontendWithError(c, "No authorization code")
		return
	}

	token, err := config.GoogleOAuthConfig.Exchange(context.Background(), code)
	if err != nil {
		log.Printf("❌ Code exchange failed: %v", err)
		redirectToFrontendWithError(c, "Failed to exchange token")
		return
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok {
		log.Printf("❌ No id_token in token response")
		redirectToFrontendWithError(c, "No ID token from Google")
		return
	}

	idToken, err := config.OIDCVerifier.Verify(context.Background(), rawIDToken)
	if err != nil {
		log.Printf("❌ ID token verification failed: %v", err)
		redirectToFrontendWithError(c, "Failed to verify ID token")
		return
	}

	var claims googleIDClaims
	if err := idToken.Claims(&claims); err != nil {
		log.Printf("❌ Failed to parse ID token claims: %v", err)
		redirectToFrontendWithError(c, "Failed to read user info")
		return
	}

	if claims.Sub == "" || claims.Email == "" {
		log.Printf("❌ Incomplete Google profile")
		redirectToFrontendWithError(c, "Incomplete Google profile")
		return
	}

	if !claims.EmailVerified {
		log.Printf("❌ Unverified Google email: %s", claims.Email)
		redirectToFrontendWithError(c, "Google email is not verified")
		return
	}

	user, err := upsertCustomer(c, &claims)
	if err != nil {
		log.Printf("❌ DB error: %v", err)
		redirectToFrontendWithError(c, "Database error")
		return
	}

	// Log login event
	if err := utils.LogLoginEvent(c, user.ID); err != nil {
		log.Printf("⚠️  Failed to log login event: %v", err)
	}

	jwtToken, err := utils.GenerateCustomerJWT(user.ID, user.Email, user.Name)
	if err != nil {
		log.Printf("❌ JWT error: %v", err)
		redirectToFrontendWithError(c, "Failed to generate token")
		return
	}

	isProd := os.Getenv("ENV") == "production"
	c.SetCookie(
		"auth_token",
		jwtToken,
		24*60*60, // 24 hours
		"/",
		"",
		isProd,
		true, // httpOnly
	)

	log.Printf("✅ Login successful: %s", user.Email)

	frontendURL := config.GetFrontendURL()
	c.Redirect(http.StatusTemporaryRedirect, frontendURL+"/auth-popup")
}
