package models

import (
	"context"
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"

	"bitbucket.org/kuhldata/merchdash_backend/config"
	"bitbucket.org/kuhldata/merchdash_backend/utils"
)

type UserRole string

const (
	RoleAdmin  UserRole = "A"
	RoleViewer UserRole = "V"
)

type User struct {
	ID        int       `gorm:"primary_key" json:"id"`
	Username  string    `gorm:"size:100;not null;unique" json:"username" binding:"required"`
	Name      string    `gorm:"size:100;not null" json:"name" binding:"required"`
	Email     *string   `gorm:"size:100;unique" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	IsActive  *bool     `gorm:"not null" json:"is_active"`
	Role      UserRole  `gorm:"type:enum('A','V');default:V" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

/*
caches:
	User:$username
	Tokens:$username
	Token:$token
*/

func (user User) RemoveInstanceRedis() error {
	return config.RemoveRedisKey("User:" + user.Username)
}

type LoginInfo struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func Login(ctx context.Context, username string, password string) (*LoginInfo, error) {
	db := config.GetDB()
	var result LoginInfo

	user := User{}

	exists, err := config.GetRedisObject("User:"+username, &user)
	if err != nil {
		return &result, err
	}
	if !exists {
		err = db.WithContext(ctx).Model(&User{}).Where("username = ?", username).Take(&user).Error
		if err != nil {
			return &result, errors.New("invalid username or password")
		}
	}

	// any compare failure rejects the login, including a corrupt stored hash
	if err := utils.ComparePassword(user.Password, password); err != nil {
		return &result, errors.New("invalid username or password")
	}

	if user.IsActive == nil || !*user.IsActive {
		return &result, errors.New("user is disabled")
	}

	token := uuid.New()
	result.Token = token.String()
	result.Name = user.Name
	if user.Role == RoleAdmin {
		result.Role = "Admin"
	} else {
		result.Role = "Viewer"
	}

	tokenLifespan, err := strconv.Atoi(os.Getenv("TOKEN_HOUR_LIFESPAN"))
	if err != nil {
		tokenLifespan = 24
	}

	// track every live token per user so a password change can revoke all
	if err := config.AddRedisSet("Tokens:"+user.Username, token.String()); err != nil {
		return nil, err
	}
	if err := config.SetRedisValue("Token:"+token.String(), user.Username, time.Duration(tokenLifespan)*time.Hour); err != nil {
		return &result, err
	}

	return &result, nil
}

// Logout destroys the current session.
func Logout(ctx context.Context) (bool, error) {
	token, ok := utils.GetTokenFromContext(ctx)
	if !ok || token == "" {
		return false, errors.New("token is required")
	}
	if err := config.RemoveRedisKey("Token:" + token); err != nil {
		return false, nil
	}
	username, ok := utils.GetUsernameFromContext(ctx)
	if !ok || username == "" {
		return false, errors.New("user not found")
	}
	if err := config.RemoveRedisSetMember("Tokens:"+username, token); err != nil {
		return false, err
	}
	return true, nil
}

func GetUserByUsername(ctx context.Context, username string) (*User, error) {
	db := config.GetDB()
	var user User
	if err := db.WithContext(ctx).Model(&User{}).Where("username = ?", username).Take(&user).Error; err != nil {
		return nil, utils.ErrorRecordNotFound
	}
	return &user, nil
}

// UpsertUser creates or updates a user, hashing the supplied password.
// Used by the seed-admin maintenance command.
func UpsertUser(ctx context.Context, username string, name string, password string, role UserRole) (*User, error) {
	db := config.GetDB()

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	var user User
	err = db.WithContext(ctx).Model(&User{}).Where("username = ?", username).Take(&user).Error
	if err != nil {
		user = User{
			Username: username,
			Name:     name,
			Password: string(hashed),
			IsActive: utils.NewTrue(),
			Role:     role,
		}
		if err := db.WithContext(ctx).Create(&user).Error; err != nil {
			return nil, err
		}
		return &user, nil
	}

	user.Name = name
	user.Password = string(hashed)
	user.Role = role
	user.IsActive = utils.NewTrue()
	if err := db.WithContext(ctx).Save(&user).Error; err != nil {
		return nil, err
	}
	if err := user.RemoveInstanceRedis(); err != nil {
		return nil, err
	}
	return &user, nil
}
