package handlers

import (
	"database/sql"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/freshmart-dev/freshmart-golang/internal/auth"
	"github.com/freshmart-dev/freshmart-golang/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
)

// RegisterUserInput holds the input for local account registration. Kept
// separate from models.User so callers cannot set id or role.
type RegisterUserInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginInput holds the local login credentials.
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

const userColumns = "id, google_id, name, email, role, password_hash, created_at, updated_at"

// Register is the handler for POST /api/auth/register
func (h *Handlers) Register(c *gin.Context) {
	var input RegisterUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var password models.Password
	if err := password.Set(input.Password); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	now := time.Now().UTC()
	user := models.User{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Email:        input.Email,
		Role:         models.RoleCustomer,
		PasswordHash: password.Hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	query := `
		INSERT INTO users
		(id, name, email, role, password_hash, created_at, updated_at)
		VALUES
		(?, ?, ?, ?, ?, ?, ?)`

	_, err := h.DB.Exec(query, user.ID, user.Name, user.Email, user.Role, user.PasswordHash, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		if me, ok := err.(*mysql.MySQLError); ok && me.Number == 1062 {
			c.JSON(http.StatusConflict, gin.H{"error": "An account with this email already exists"})
			return
		}
		log.Printf("Error creating user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating account"})
		return
	}

	token, err := auth.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token, "user": user})
}

// Login is the handler for POST /api/auth/login
func (h *Handlers) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.fetchUserBy("email", input.Email)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		log.Printf("Error fetching user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error logging in"})
		return
	}

	password := models.Password{Hash: user.PasswordHash}
	matches, err := password.Matches(input.Password)
	if err != nil || !matches {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := auth.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// GetProfile is the handler for GET /api/auth/profile
func (h *Handlers) GetProfile(c *gin.Context) {
	userIDRaw, _ := c.Get("userID")
	userID := userIDRaw.(string)

	user, err := h.fetchUserBy("id", userID)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		log.Printf("Error fetching profile: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Logout is the handler for GET /api/auth/logout
// Tokens are stateless; the redirect exists for parity with the session
// based flow the frontends were written against.
func (h *Handlers) Logout(c *gin.Context) {
	c.Redirect(http.StatusFound, frontendURL())
}

// GoogleLogin is the handler for GET /api/auth/google
func (h *Handlers) GoogleLogin(c *gin.Context) {
	state := uuid.New().String()
	c.SetCookie("oauth_state", state, 300, "/", "", false, true)
	c.Redirect(http.StatusFound, auth.GoogleOAuthConfig().AuthCodeURL(state))
}

// GoogleCallback is the handler for GET /api/auth/google/callback
// Exchanges the code, upserts the user by Google ID and redirects back to
// the frontend with a freshly issued token.
func (h *Handlers) GoogleCallback(c *gin.Context) {
	state, err := c.Cookie("oauth_state")
	if err != nil || state == "" || state != c.Query("state") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid OAuth state"})
		return
	}

	gu, err := auth.FetchGoogleUser(c.Request.Context(), auth.GoogleOAuthConfig(), c.Query("code"))
	if err != nil {
		log.Printf("Google OAuth exchange failed: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Google sign-in failed"})
		return
	}

	var userID string
	err = h.DB.QueryRow("SELECT id FROM users WHERE google_id = ?", gu.ID).Scan(&userID)
	if err == sql.ErrNoRows {
		now := time.Now().UTC()
		userID = uuid.New().String()
		_, err = h.DB.Exec(
			"INSERT INTO users (id, google_id, name, email, role, password_hash, created_at, updated_at) VALUES (?, ?, ?, ?, ?, '', ?, ?)",
			userID, gu.ID, gu.Name, gu.Email, models.RoleCustomer, now, now,
		)
	}
	if err != nil {
		log.Printf("Error upserting Google user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Google sign-in failed"})
		return
	}

	token, err := auth.GenerateToken(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.Redirect(http.StatusFound, frontendURL()+"/login?token="+token+"&userId="+userID)
}

// GetAllCustomers is the handler for GET /api/admin/customers
func (h *Handlers) GetAllCustomers(c *gin.Context) {
	rows, err := h.DB.Query("SELECT "+userColumns+" FROM users WHERE role = ? ORDER BY created_at DESC", models.RoleCustomer)
	if err != nil {
		log.Printf("Error fetching customers: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching customers"})
		return
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		user, err := scanUser(rows.Scan)
		if err != nil {
			log.Printf("Error scanning user row: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching customers"})
			return
		}
		users = append(users, *user)
	}

	c.JSON(http.StatusOK, users)
}

func (h *Handlers) fetchUserBy(column, value string) (*models.User, error) {
	row := h.DB.QueryRow("SELECT "+userColumns+" FROM users WHERE "+column+" = ?", value)
	return scanUser(row.Scan)
}

func scanUser(scan func(dest ...interface{}) error) (*models.User, error) {
	var user models.User
	var googleID sql.NullString
	err := scan(&user.ID, &googleID, &user.Name, &user.Email, &user.Role, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if googleID.Valid {
		user.GoogleID = &googleID.String
	}
	return &user, nil
}

func frontendURL() string {
	if url := os.Getenv("FRONTEND_URL"); url != "" {
		return url
	}
	return "http://localhost:5173"
}
