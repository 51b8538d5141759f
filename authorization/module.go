package authorization

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	jwt "github.com/appleboy/gin-jwt/v2"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	identityKey    = "user_id"
	defaultTimeout = time.Hour
)

// Module wires together the JWT middleware and backing services.
type Module struct {
	db            *gorm.DB
	users         *UserStore
	service       *AuthService
	jwtMiddleware *jwt.GinJWTMiddleware
	captcha       *CaptchaStore
}

// RegisterRoutes bootstraps the authentication endpoints under /auth.
func RegisterRoutes(router *gin.Engine) (*Module, error) {
	db, err := openDatabaseFromEnv()
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&User{}); err != nil {
		return nil, fmt.Errorf("authorization: migrate models: %w", err)
	}

	users := &UserStore{db: db}
	service := &AuthService{users: users}

	// The captcha is opt-in. With it disabled, registration depends on
	// nothing beyond the credential rules themselves.
	var captchaStore *CaptchaStore
	if strings.EqualFold(strings.TrimSpace(os.Getenv("CAPTCHA_REQUIRED")), "true") {
		captchaStore = NewCaptchaStore(3 * time.Minute)
	}

	middleware, err := buildJWTMiddleware(service)
	if err != nil {
		return nil, err
	}

	authGroup := router.Group("/auth")

	authGroup.GET("/captcha", func(c *gin.Context) {
		if captchaStore == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "captcha is not enabled"})
			return
		}
		challenge := captchaStore.Issue()
		c.JSON(http.StatusOK, gin.H{
			"captcha_id": challenge.ID,
			"image":      challenge.ImageBase64,
			"expires_at": challenge.ExpiresAt.UTC(),
		})
	})

	authGroup.POST("/register", func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
			return
		}

		if captchaStore != nil && !captchaStore.Verify(req.CaptchaID, req.CaptchaAnswer) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid captcha"})
			return
		}

		user, err := service.Register(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, ErrUsernameTaken):
				c.JSON(http.StatusConflict, gin.H{"error": "username already exists"})
			case isValidationError(err):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register"})
			}
			return
		}

		c.JSON(http.StatusCreated, gin.H{"user": Identity{UserID: user.ID, Username: user.Username}})
	})

	authGroup.POST("/login", middleware.LoginHandler)
	authGroup.POST("/refresh", middleware.RefreshHandler)

	secured := authGroup.Group("")
	secured.Use(middleware.MiddlewareFunc())
	secured.GET("/profile", func(c *gin.Context) {
		claims := jwt.ExtractClaims(c)
		userID := extractUserID(claims)
		if userID == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load user"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"user": Identity{UserID: user.ID, Username: user.Username}})
	})

	return &Module{db: db, users: users, service: service, jwtMiddleware: middleware, captcha: captchaStore}, nil
}

func buildJWTMiddleware(service *AuthService) (*jwt.GinJWTMiddleware, error) {
	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		return nil, errors.New("authorization: JWT_SECRET environment variable is required")
	}

	return jwt.New(&jwt.GinJWTMiddleware{
		Realm:       "andrate",
		Key:         []byte(secret),
		Timeout:     defaultTimeout,
		MaxRefresh:  24 * time.Hour,
		IdentityKey: identityKey,
		PayloadFunc: func(data interface{}) jwt.MapClaims {
			if user, ok := data.(*User); ok {
				return jwt.MapClaims{
					identityKey: user.ID,
					"username":  user.Username,
				}
			}
			return jwt.MapClaims{}
		},
		IdentityHandler: func(c *gin.Context) interface{} {
			claims := jwt.ExtractClaims(c)
			username, _ := claims["username"].(string)
			return &Identity{UserID: extractUserID(claims), Username: username}
		},
		Authenticator: func(c *gin.Context) (interface{}, error) {
			var req LoginRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, jwt.ErrMissingLoginValues
			}

			user, err := service.Authenticate(c.Request.Context(), req.Username, req.Password)
			if err != nil {
				if errors.Is(err, ErrInvalidCredentials) || isValidationError(err) {
					return nil, jwt.ErrFailedAuthentication
				}
				return nil, err
			}
			return user, nil
		},
		Unauthorized: func(c *gin.Context, code int, message string) {
			// One indistinguishable message for unknown user and wrong password.
			if message == jwt.ErrFailedAuthentication.Error() {
				message = "invalid username or password"
			}
			c.JSON(code, gin.H{"error": message})
		},
	})
}

func extractUserID(claims jwt.MapClaims) uint64 {
	idValue, ok := claims[identityKey]
	if !ok {
		return 0
	}

	switch v := idValue.(type) {
	case float64:
		return uint64(v)
	case int64:
		return uint64(v)
	case uint64:
		return v
	case int:
		return uint64(v)
	case uint:
		return uint64(v)
	default:
		return 0
	}
}
