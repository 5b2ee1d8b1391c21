package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sanyokkme/fiyouai/types"
)

// AuthService talks to the hosted auth provider for account creation and
// password logins, and verifies the access tokens it issues.
type AuthService struct {
	baseURL    string
	serviceKey string
	jwtSecret  string
	client     *http.Client
}

func NewAuthService(baseURL, serviceKey, jwtSecret string) *AuthService {
	return &AuthService{
		baseURL:    baseURL,
		serviceKey: serviceKey,
		jwtSecret:  jwtSecret,
		client:     &http.Client{Timeout: 15 * time.Second},
	}
}

func (a *AuthService) post(path string, payload any, out any) (int, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("failed to encode auth request: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, a.baseURL+"/auth/v1"+path, bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	req.Header.Set("apikey", a.serviceKey)
	req.Header.Set("Authorization", "Bearer "+a.serviceKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("auth request failed: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("failed to read auth response: %v", err)
	}
	if resp.StatusCode >= 400 {
		return resp.StatusCode, fmt.Errorf("auth request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return resp.StatusCode, fmt.Errorf("failed to parse auth response: %v", err)
		}
	}
	return resp.StatusCode, nil
}

// SignUp creates an account and returns the new user id
func (a *AuthService) SignUp(email, password string) (string, error) {
	var result struct {
		ID   string `json:"id"`
		User struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	if _, err := a.post("/signup", map[string]string{"email": email, "password": password}, &result); err != nil {
		return "", err
	}

	userID := result.ID
	if userID == "" {
		userID = result.User.ID
	}
	if userID == "" {
		return "", fmt.Errorf("no user id in signup response")
	}
	return userID, nil
}

// SignIn performs a password login and returns the session tokens
func (a *AuthService) SignIn(email, password string) (*types.Session, error) {
	var result struct {
		AccessToken string `json:"access_token"`
		User        struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
	}
	_, err := a.post("/token?grant_type=password", map[string]string{"email": email, "password": password}, &result)
	if err != nil {
		return nil, err
	}
	if result.AccessToken == "" {
		return nil, fmt.Errorf("no session in login response")
	}

	return &types.Session{
		UserID:      result.User.ID,
		Email:       result.User.Email,
		AccessToken: result.AccessToken,
	}, nil
}

// DeleteUser removes an account via the admin API. Used to roll back a
// signup when the profile row cannot be created.
func (a *AuthService) DeleteUser(userID string) error {
	req, err := http.NewRequest(http.MethodDelete, a.baseURL+"/auth/v1/admin/users/"+userID, nil)
	if err != nil {
		return err
	}
	req.Header.Set("apikey", a.serviceKey)
	req.Header.Set("Authorization", "Bearer "+a.serviceKey)

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("delete user request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("delete user failed with status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

// VerifyToken validates an access token (HS256, "authenticated"
// audience) and returns the user id from its subject claim
func (a *AuthService) VerifyToken(token string) (string, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(a.jwtSecret), nil
	}, jwt.WithAudience("authenticated"))
	if err != nil || !parsed.Valid {
		return "", fmt.Errorf("invalid token")
	}

	sub, err := parsed.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", fmt.Errorf("invalid token")
	}
	return sub, nil
}
