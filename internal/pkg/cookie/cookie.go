package cookie

import (
	"net/http"
	"time"

	"hotel-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookieName  = "access_token"
	RefreshTokenCookieName = "refresh_token"
)

// Jar writes the auth token pair as HttpOnly cookies scoped by CookieConfig.
type Jar struct {
	cfg config.CookieConfig
}

func NewJar(cfg config.CookieConfig) *Jar {
	return &Jar{cfg: cfg}
}

func (j *Jar) SetTokens(c *gin.Context, accessToken, refreshToken string, accessTTL, refreshTTL time.Duration) {
	c.SetSameSite(sameSite(j.cfg.SameSite))
	j.set(c, AccessTokenCookieName, accessToken, int(accessTTL.Seconds()))
	j.set(c, RefreshTokenCookieName, refreshToken, int(refreshTTL.Seconds()))
}

func (j *Jar) Clear(c *gin.Context) {
	c.SetSameSite(sameSite(j.cfg.SameSite))
	j.set(c, AccessTokenCookieName, "", -1)
	j.set(c, RefreshTokenCookieName, "", -1)
}

func (j *Jar) set(c *gin.Context, name, value string, maxAge int) {
	c.SetCookie(name, value, maxAge, "/", j.cfg.Domain, j.cfg.Secure, true)
}

func AccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

func RefreshToken(c *gin.Context) string {
	token, _ := c.Cookie(RefreshTokenCookieName)
	return token
}

func sameSite(mode string) http.SameSite {
	switch mode {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
